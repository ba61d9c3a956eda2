// dao/announcement_dao.go

package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/audit"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	bo_neo4j "github.com/scoutdesk/backoffice/model/neo4j"
	helper_util "github.com/scoutdesk/backoffice/util/helper"
)

type AnnouncementDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewAnnouncementDAO(driver neo4j.Driver, auditService audit.Service) *AnnouncementDAO {
	return &AnnouncementDAO{Driver: driver, AuditService: auditService}
}

func (dao *AnnouncementDAO) CreateAnnouncement(ctx context.Context, announcement model.Announcement) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (an:` + bo_neo4j.LabelAnnouncement + ` {
            id: $id,
            title: $title,
            body: $body,
            audience: $audience,
            publishedAt: $publishedAt,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        `
		_, err := transaction.Run(query, announcementParams(announcement))
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to create announcement", zap.Error(err), zap.String("announcementID", announcement.ID))
		return err
	}

	logAudit(ctx, dao.AuditService, "CREATE_ANNOUNCEMENT", "Announcement", announcement.ID, nil)
	return nil
}

func (dao *AnnouncementDAO) GetAnnouncement(ctx context.Context, announcementID string) (*model.Announcement, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (an:`+bo_neo4j.LabelAnnouncement+` {id: $id})
        RETURN an
        `, map[string]interface{}{"id": announcementID})
		if err != nil {
			return nil, err
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToAnnouncement(node), nil
		}
		return nil, apperrors.ErrAnnouncementNotFound
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.Announcement), nil
}

func (dao *AnnouncementDAO) UpdateAnnouncement(ctx context.Context, announcement model.Announcement) (*model.Announcement, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (an:` + bo_neo4j.LabelAnnouncement + ` {id: $id})
        SET an.title = $title,
            an.body = $body,
            an.audience = $audience,
            an.publishedAt = $publishedAt,
            an.updatedAt = $updatedAt
        RETURN an
        `
		result, err := transaction.Run(query, announcementParams(announcement))
		if err != nil {
			return nil, err
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToAnnouncement(node), nil
		}
		return nil, apperrors.ErrAnnouncementNotFound
	})

	if err != nil {
		logger.Error("Failed to update announcement", zap.Error(err), zap.String("announcementID", announcement.ID))
		return nil, err
	}

	updated := result.(*model.Announcement)
	logAudit(ctx, dao.AuditService, "UPDATE_ANNOUNCEMENT", "Announcement", updated.ID, nil)
	return updated, nil
}

func (dao *AnnouncementDAO) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (an:`+bo_neo4j.LabelAnnouncement+` {id: $id})
        DETACH DELETE an
        RETURN count(an) as deleted
        `, map[string]interface{}{"id": announcementID})
		if err != nil {
			return nil, err
		}
		if result.Next() {
			if result.Record().Values[0].(int64) == 0 {
				return nil, apperrors.ErrAnnouncementNotFound
			}
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Failed to delete announcement", zap.Error(err), zap.String("announcementID", announcementID))
		return err
	}

	logAudit(ctx, dao.AuditService, "DELETE_ANNOUNCEMENT", "Announcement", announcementID, nil)
	return nil
}

func (dao *AnnouncementDAO) ListAnnouncements(ctx context.Context, limit int, offset int) ([]*model.Announcement, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		result, err := transaction.Run(`
        MATCH (an:`+bo_neo4j.LabelAnnouncement+`)
        RETURN an
        ORDER BY an.createdAt DESC
        SKIP $offset LIMIT $limit
        `, map[string]interface{}{"offset": offset, "limit": limit})
		if err != nil {
			return nil, err
		}

		var announcements []*model.Announcement
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			announcements = append(announcements, mapNodeToAnnouncement(node))
		}
		return announcements, nil
	})

	if err != nil {
		logger.Error("Failed to list announcements", zap.Error(err))
		return nil, err
	}

	return result.([]*model.Announcement), nil
}

func announcementParams(announcement model.Announcement) map[string]interface{} {
	publishedAt := ""
	if announcement.PublishedAt != nil {
		publishedAt = announcement.PublishedAt.Format(time.RFC3339)
	}
	return map[string]interface{}{
		"id":          announcement.ID,
		"title":       announcement.Title,
		"body":        announcement.Body,
		"audience":    string(announcement.Audience),
		"publishedAt": publishedAt,
		"createdAt":   announcement.CreatedAt.Format(time.RFC3339),
		"updatedAt":   announcement.UpdatedAt.Format(time.RFC3339),
	}
}

func mapNodeToAnnouncement(node neo4j.Node) *model.Announcement {
	props := node.Props

	announcement := &model.Announcement{
		ID:        nodeString(props, "id"),
		Title:     nodeString(props, "title"),
		Body:      nodeString(props, "body"),
		Audience:  model.ParentType(nodeString(props, "audience")),
		CreatedAt: nodeTime(props, "createdAt"),
		UpdatedAt: nodeTime(props, "updatedAt"),
	}

	if raw := nodeString(props, "publishedAt"); raw != "" {
		if parsed, err := helper_util.ParseNullableTime(raw); err == nil {
			announcement.PublishedAt = parsed
		}
	}

	return announcement
}
