// service/announcement_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/dao"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/util"
)

// IAnnouncementService defines the interface for announcement operations
type IAnnouncementService interface {
	CreateAnnouncement(ctx context.Context, announcement model.Announcement) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcementID string, announcement model.Announcement) (*model.Announcement, error)
	PublishAnnouncement(ctx context.Context, announcementID string) (*model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID string) error
	GetAnnouncement(ctx context.Context, announcementID string) (*model.Announcement, error)
	ListAnnouncements(ctx context.Context, limit int, offset int) ([]*model.Announcement, error)
}

// AnnouncementService handles business logic for operator announcements
type AnnouncementService struct {
	announcementDAO *dao.AnnouncementDAO
	validationUtil  *util.ValidationUtil
	eventBus        *util.EventBus
}

var _ IAnnouncementService = &AnnouncementService{}

// NewAnnouncementService creates a new instance of AnnouncementService
func NewAnnouncementService(announcementDAO *dao.AnnouncementDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *AnnouncementService {
	return &AnnouncementService{
		announcementDAO: announcementDAO,
		validationUtil:  validationUtil,
		eventBus:        eventBus,
	}
}

// CreateAnnouncement registers a new notice as a draft; publishing is a
// separate step.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, announcement model.Announcement) (*model.Announcement, error) {
	if err := s.validationUtil.ValidateAnnouncement(announcement); err != nil {
		logger.Error("Validation for announcement failed", zap.Error(err))
		return nil, err
	}

	announcement.ID = uuid.New().String()
	announcement.PublishedAt = nil
	announcement.CreatedAt = time.Now()
	announcement.UpdatedAt = time.Now()

	if err := s.announcementDAO.CreateAnnouncement(ctx, announcement); err != nil {
		logger.Error("Error creating announcement", zap.Error(err), zap.String("announcementID", announcement.ID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "announcement.created", announcement)

	logger.Info("Announcement created successfully", zap.String("announcementID", announcement.ID))
	return &announcement, nil
}

// UpdateAnnouncement applies changes to an existing notice
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, announcementID string, announcement model.Announcement) (*model.Announcement, error) {
	existing, err := s.announcementDAO.GetAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, err
	}

	announcement.ID = announcementID
	if err := s.validationUtil.ValidateAnnouncement(announcement); err != nil {
		logger.Error("Validation for announcement failed", zap.Error(err))
		return nil, err
	}

	announcement.PublishedAt = existing.PublishedAt
	announcement.CreatedAt = existing.CreatedAt
	announcement.UpdatedAt = time.Now()

	updated, err := s.announcementDAO.UpdateAnnouncement(ctx, announcement)
	if err != nil {
		logger.Error("Error updating announcement", zap.Error(err), zap.String("announcementID", announcementID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "announcement.updated", *updated)

	logger.Info("Announcement updated successfully", zap.String("announcementID", announcementID))
	return updated, nil
}

// PublishAnnouncement stamps the notice as live. Publishing an already
// published notice refreshes the timestamp.
func (s *AnnouncementService) PublishAnnouncement(ctx context.Context, announcementID string) (*model.Announcement, error) {
	existing, err := s.announcementDAO.GetAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.PublishedAt = &now
	existing.UpdatedAt = now

	updated, err := s.announcementDAO.UpdateAnnouncement(ctx, *existing)
	if err != nil {
		logger.Error("Error publishing announcement", zap.Error(err), zap.String("announcementID", announcementID))
		return nil, err
	}

	s.eventBus.Publish(ctx, "announcement.published", *updated)

	logger.Info("Announcement published", zap.String("announcementID", announcementID))
	return updated, nil
}

// DeleteAnnouncement removes a notice
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	if err := s.announcementDAO.DeleteAnnouncement(ctx, announcementID); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, "announcement.deleted", announcementID)

	logger.Info("Announcement deleted successfully", zap.String("announcementID", announcementID))
	return nil
}

// GetAnnouncement retrieves a notice by ID
func (s *AnnouncementService) GetAnnouncement(ctx context.Context, announcementID string) (*model.Announcement, error) {
	return s.announcementDAO.GetAnnouncement(ctx, announcementID)
}

// ListAnnouncements retrieves notices with pagination
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, limit int, offset int) ([]*model.Announcement, error) {
	return s.announcementDAO.ListAnnouncements(ctx, limit, offset)
}
