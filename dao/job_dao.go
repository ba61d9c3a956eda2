// dao/job_dao.go

package dao

import (
	"context"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/audit"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	bo_neo4j "github.com/scoutdesk/backoffice/model/neo4j"
)

type JobDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewJobDAO(driver neo4j.Driver, auditService audit.Service) *JobDAO {
	return &JobDAO{Driver: driver, AuditService: auditService}
}

func (dao *JobDAO) CreateJob(ctx context.Context, job model.JobPosting) error {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (j:` + bo_neo4j.LabelJobPosting + ` {
            id: $id,
            title: $title,
            description: $description,
            agencyId: $agencyId,
            location: $location,
            contractType: $contractType,
            tags: $tags,
            published: $published,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        WITH j
        OPTIONAL MATCH (p:` + bo_neo4j.LabelProfile + ` {id: $agencyId})
        FOREACH (_ IN CASE WHEN p IS NULL THEN [] ELSE [1] END |
            MERGE (j)-[:` + bo_neo4j.RelPostedBy + `]->(p))
        `
		_, err := transaction.Run(query, jobParams(job))
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to create job posting",
			zap.Error(err),
			zap.String("jobID", job.ID),
			zap.Duration("duration", time.Since(start)))
		return err
	}

	logAudit(ctx, dao.AuditService, "CREATE_JOB", "JobPosting", job.ID, nil)
	return nil
}

func (dao *JobDAO) GetJob(ctx context.Context, jobID string) (*model.JobPosting, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (j:`+bo_neo4j.LabelJobPosting+` {id: $id})
        RETURN j
        `, map[string]interface{}{"id": jobID})
		if err != nil {
			return nil, err
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToJob(node), nil
		}
		return nil, apperrors.ErrJobNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.JobPosting), nil
}

func (dao *JobDAO) UpdateJob(ctx context.Context, job model.JobPosting) (*model.JobPosting, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (j:` + bo_neo4j.LabelJobPosting + ` {id: $id})
        SET j.title = $title,
            j.description = $description,
            j.location = $location,
            j.contractType = $contractType,
            j.tags = $tags,
            j.published = $published,
            j.updatedAt = $updatedAt
        RETURN j
        `
		result, err := transaction.Run(query, jobParams(job))
		if err != nil {
			return nil, err
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToJob(node), nil
		}
		return nil, apperrors.ErrJobNotFound
	})

	if err != nil {
		logger.Error("Failed to update job posting", zap.Error(err), zap.String("jobID", job.ID))
		return nil, err
	}

	updated := result.(*model.JobPosting)
	logAudit(ctx, dao.AuditService, "UPDATE_JOB", "JobPosting", updated.ID, nil)
	return updated, nil
}

func (dao *JobDAO) DeleteJob(ctx context.Context, jobID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (j:`+bo_neo4j.LabelJobPosting+` {id: $id})
        DETACH DELETE j
        RETURN count(j) as deleted
        `, map[string]interface{}{"id": jobID})
		if err != nil {
			return nil, err
		}
		if result.Next() {
			if result.Record().Values[0].(int64) == 0 {
				return nil, apperrors.ErrJobNotFound
			}
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete job posting", zap.Error(err), zap.String("jobID", jobID))
		return err
	}

	logAudit(ctx, dao.AuditService, "DELETE_JOB", "JobPosting", jobID, nil)
	return nil
}

func (dao *JobDAO) ListJobs(ctx context.Context, limit int, offset int) ([]*model.JobPosting, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (j:`+bo_neo4j.LabelJobPosting+`)
        RETURN j
        ORDER BY j.createdAt DESC
        SKIP $offset LIMIT $limit
        `, map[string]interface{}{"offset": offset, "limit": limit})
		if err != nil {
			return nil, err
		}

		var jobs []*model.JobPosting
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			jobs = append(jobs, mapNodeToJob(node))
		}
		return jobs, nil
	})

	if err != nil {
		logger.Error("Failed to list job postings", zap.Error(err))
		return nil, err
	}

	return result.([]*model.JobPosting), nil
}

// SearchJobs filters postings on the optional criteria fields.
func (dao *JobDAO) SearchJobs(ctx context.Context, criteria model.JobSearchCriteria) ([]*model.JobPosting, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	var queryBuilder strings.Builder
	queryBuilder.WriteString("MATCH (j:" + bo_neo4j.LabelJobPosting + ") WHERE 1=1")

	params := make(map[string]interface{})

	if criteria.AgencyID != "" {
		queryBuilder.WriteString(" AND j.agencyId = $agencyId")
		params["agencyId"] = criteria.AgencyID
	}

	if criteria.Location != "" {
		queryBuilder.WriteString(" AND toLower(j.location) CONTAINS toLower($location)")
		params["location"] = criteria.Location
	}

	if criteria.Published != nil {
		queryBuilder.WriteString(" AND j.published = $published")
		params["published"] = *criteria.Published
	}

	queryBuilder.WriteString(" RETURN j ORDER BY j.createdAt DESC")

	if criteria.Offset > 0 {
		queryBuilder.WriteString(" SKIP $offset")
		params["offset"] = criteria.Offset
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 10
	}
	queryBuilder.WriteString(" LIMIT $limit")
	params["limit"] = limit

	result, err := session.Run(queryBuilder.String(), params)
	if err != nil {
		logger.Error("Failed to execute job search query",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, apperrors.ErrDatabaseOperation
	}

	var jobs []*model.JobPosting
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		jobs = append(jobs, mapNodeToJob(node))
	}

	return jobs, nil
}

func jobParams(job model.JobPosting) map[string]interface{} {
	return map[string]interface{}{
		"id":           job.ID,
		"title":        job.Title,
		"description":  job.Description,
		"agencyId":     job.AgencyID,
		"location":     job.Location,
		"contractType": job.ContractType,
		"tags":         job.Tags,
		"published":    job.Published,
		"createdAt":    job.CreatedAt.Format(time.RFC3339),
		"updatedAt":    job.UpdatedAt.Format(time.RFC3339),
	}
}

func mapNodeToJob(node neo4j.Node) *model.JobPosting {
	props := node.Props

	job := &model.JobPosting{
		ID:           nodeString(props, "id"),
		Title:        nodeString(props, "title"),
		Description:  nodeString(props, "description"),
		AgencyID:     nodeString(props, "agencyId"),
		Location:     nodeString(props, "location"),
		ContractType: nodeString(props, "contractType"),
		Published:    nodeBool(props, "published"),
		CreatedAt:    nodeTime(props, "createdAt"),
		UpdatedAt:    nodeTime(props, "updatedAt"),
	}

	if raw, ok := props["tags"].([]interface{}); ok {
		for _, tag := range raw {
			if text, ok := tag.(string); ok {
				job.Tags = append(job.Tags, text)
			}
		}
	}

	return job
}
