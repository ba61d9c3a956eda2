// dao/user_type_dao.go

package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/audit"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	bo_neo4j "github.com/scoutdesk/backoffice/model/neo4j"
)

type UserTypeDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewUserTypeDAO(driver neo4j.Driver, auditService audit.Service) *UserTypeDAO {
	dao := &UserTypeDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for UserType", zap.Error(err))
	}
	return dao
}

func (dao *UserTypeDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on UserType slug")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
		CREATE CONSTRAINT unique_user_type_slug IF NOT EXISTS
		FOR (ut:` + bo_neo4j.LabelUserType + `) REQUIRE ut.slug IS UNIQUE
		`
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on UserType slug", zap.Error(err))
		return err
	}

	return nil
}

// CreateUserType persists the config and links one USES_ATTRIBUTE edge per
// referenced attribute. The edges are what the integrity guard counts when
// an attribute delete is requested.
func (dao *UserTypeDAO) CreateUserType(ctx context.Context, userType model.UserTypeConfig) error {
	start := time.Now()
	logger.Info("Creating new user type", zap.String("slug", userType.Slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		existing, err := transaction.Run(`
        MATCH (ut:`+bo_neo4j.LabelUserType+` {slug: $slug})
        RETURN ut.slug
        `, map[string]interface{}{"slug": userType.Slug})
		if err != nil {
			return nil, err
		}
		if existing.Next() {
			return nil, apperrors.ErrUserTypeConflict
		}

		fieldsJSON, err := json.Marshal(userType.Fields)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field bindings: %w", err)
		}

		// Every binding must gain its edge. If an attribute vanished since
		// validation, fewer nodes match than slugs were given; the create is
		// rolled back rather than persisting a config whose fields JSON
		// references attributes the graph no longer links.
		query := `
        CREATE (ut:` + bo_neo4j.LabelUserType + ` {
            slug: $slug,
            name: $name,
            parentType: $parentType,
            fields: $fields,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        WITH ut
        OPTIONAL MATCH (a:` + bo_neo4j.LabelAttribute + `) WHERE a.slug IN $attributeSlugs
        WITH ut, collect(a) AS attrs
        FOREACH (attr IN attrs | MERGE (ut)-[:` + bo_neo4j.RelUsesAttribute + `]->(attr))
        RETURN size(attrs) AS linked
        `

		attributeSlugs := userType.AttributeSlugs()
		params := map[string]interface{}{
			"slug":           userType.Slug,
			"name":           userType.Name,
			"parentType":     string(userType.ParentType),
			"fields":         string(fieldsJSON),
			"createdAt":      userType.CreatedAt.Format(time.RFC3339),
			"updatedAt":      userType.UpdatedAt.Format(time.RFC3339),
			"attributeSlugs": attributeSlugs,
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}
		if !result.Next() {
			return nil, apperrors.ErrDatabaseOperation
		}
		if linked := result.Record().Values[0].(int64); int(linked) < len(attributeSlugs) {
			return nil, apperrors.NewValidationError("fields", "binding references an unknown attribute")
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user type",
			zap.Error(err),
			zap.String("slug", userType.Slug),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("User type created successfully",
		zap.String("slug", userType.Slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "CREATE_USER_TYPE", "UserType", userType.Slug, userType)
	return nil
}

func (dao *UserTypeDAO) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (ut:`+bo_neo4j.LabelUserType+` {slug: $slug})
        RETURN ut
        `, map[string]interface{}{"slug": slug})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToUserType(node)
		}

		return nil, apperrors.ErrUserTypeNotFound
	})

	if err != nil {
		return nil, err
	}

	return result.(*model.UserTypeConfig), nil
}

// UpdateUserType overwrites the mutable fields and rebuilds the
// USES_ATTRIBUTE edges to mirror the new binding list. The slug is
// write-once and only used for matching.
func (dao *UserTypeDAO) UpdateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	start := time.Now()
	logger.Info("Updating user type", zap.String("slug", userType.Slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		fieldsJSON, err := json.Marshal(userType.Fields)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field bindings: %w", err)
		}

		// Same strictness as create: if rebuilding the edges matched fewer
		// attributes than the binding list names, one vanished mid-flight and
		// the whole update is rolled back.
		query := `
        MATCH (ut:` + bo_neo4j.LabelUserType + ` {slug: $slug})
        SET ut.name = $name,
            ut.parentType = $parentType,
            ut.fields = $fields,
            ut.updatedAt = $updatedAt
        WITH ut
        OPTIONAL MATCH (ut)-[r:` + bo_neo4j.RelUsesAttribute + `]->()
        DELETE r
        WITH DISTINCT ut
        OPTIONAL MATCH (a:` + bo_neo4j.LabelAttribute + `) WHERE a.slug IN $attributeSlugs
        WITH ut, collect(a) AS attrs
        FOREACH (attr IN attrs | MERGE (ut)-[:` + bo_neo4j.RelUsesAttribute + `]->(attr))
        RETURN ut, size(attrs) AS linked
        `

		attributeSlugs := userType.AttributeSlugs()
		params := map[string]interface{}{
			"slug":           userType.Slug,
			"name":           userType.Name,
			"parentType":     string(userType.ParentType),
			"fields":         string(fieldsJSON),
			"updatedAt":      userType.UpdatedAt.Format(time.RFC3339),
			"attributeSlugs": attributeSlugs,
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			record := result.Record()
			if linked := record.Values[1].(int64); int(linked) < len(attributeSlugs) {
				return nil, apperrors.NewValidationError("fields", "binding references an unknown attribute")
			}
			node := record.Values[0].(neo4j.Node)
			return mapNodeToUserType(node)
		}

		return nil, apperrors.ErrUserTypeNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update user type",
			zap.Error(err),
			zap.String("slug", userType.Slug),
			zap.Duration("duration", duration))
		return nil, err
	}

	updated := result.(*model.UserTypeConfig)
	logger.Info("User type updated successfully",
		zap.String("slug", updated.Slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "UPDATE_USER_TYPE", "UserType", updated.Slug, updated)
	return updated, nil
}

func (dao *UserTypeDAO) DeleteUserType(ctx context.Context, slug string) error {
	start := time.Now()
	logger.Info("Deleting user type", zap.String("slug", slug))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	// Profile count and delete run in the same transaction, so a profile
	// created after the service's guard check still blocks the delete.
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (ut:`+bo_neo4j.LabelUserType+` {slug: $slug})
        OPTIONAL MATCH (p:`+bo_neo4j.LabelProfile+`)-[:`+bo_neo4j.RelHasUserType+`]->(ut)
        WITH ut, count(p) AS refs
        FOREACH (_ IN CASE WHEN refs = 0 THEN [1] ELSE [] END | DETACH DELETE ut)
        RETURN refs
        `, map[string]interface{}{"slug": slug})
		if err != nil {
			return nil, err
		}

		if !result.Next() {
			return nil, apperrors.ErrUserTypeNotFound
		}
		if refs := result.Record().Values[0].(int64); refs > 0 {
			return nil, &apperrors.ConflictError{
				Resource:  "user type",
				Slug:      slug,
				BlockedBy: "profile",
				Count:     int(refs),
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete user type",
			zap.Error(err),
			zap.String("slug", slug),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("User type deleted successfully",
		zap.String("slug", slug),
		zap.Duration("duration", duration))

	logAudit(ctx, dao.AuditService, "DELETE_USER_TYPE", "UserType", slug, nil)
	return nil
}

func (dao *UserTypeDAO) ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (ut:`+bo_neo4j.LabelUserType+`)
        RETURN ut
        ORDER BY ut.slug
        SKIP $offset LIMIT $limit
        `, map[string]interface{}{"offset": offset, "limit": limit})
		if err != nil {
			return nil, err
		}

		var userTypes []*model.UserTypeConfig
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			userType, err := mapNodeToUserType(node)
			if err != nil {
				return nil, err
			}
			userTypes = append(userTypes, userType)
		}
		return userTypes, nil
	})

	if err != nil {
		logger.Error("Failed to list user types", zap.Error(err))
		return nil, err
	}

	return result.([]*model.UserTypeConfig), nil
}

// CountUserTypesReferencing reports how many user types bind the attribute,
// with a sample of their slugs for the conflict message.
func (dao *UserTypeDAO) CountUserTypesReferencing(ctx context.Context, attributeSlug string) (int, []string, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (ut:`+bo_neo4j.LabelUserType+`)-[:`+bo_neo4j.RelUsesAttribute+`]->(a:`+bo_neo4j.LabelAttribute+` {slug: $slug})
        RETURN count(ut) as total, collect(ut.slug)[..5] as sample
        `, map[string]interface{}{"slug": attributeSlug})
		if err != nil {
			return nil, err
		}

		if result.Next() {
			record := result.Record()
			total := record.Values[0].(int64)
			var sample []string
			for _, value := range record.Values[1].([]interface{}) {
				sample = append(sample, value.(string))
			}
			return []interface{}{int(total), sample}, nil
		}
		return []interface{}{0, []string(nil)}, nil
	})

	if err != nil {
		logger.Error("Failed to count referencing user types",
			zap.Error(err),
			zap.String("attributeSlug", attributeSlug))
		return 0, nil, err
	}

	pair := result.([]interface{})
	return pair[0].(int), pair[1].([]string), nil
}

func mapNodeToUserType(node neo4j.Node) (*model.UserTypeConfig, error) {
	props := node.Props

	userType := &model.UserTypeConfig{
		Slug:       nodeString(props, "slug"),
		Name:       nodeString(props, "name"),
		ParentType: model.ParentType(nodeString(props, "parentType")),
		CreatedAt:  nodeTime(props, "createdAt"),
		UpdatedAt:  nodeTime(props, "updatedAt"),
	}

	if fieldsJSON := nodeString(props, "fields"); fieldsJSON != "" {
		if err := json.Unmarshal([]byte(fieldsJSON), &userType.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal field bindings for %s: %w", userType.Slug, err)
		}
	}

	return userType, nil
}
