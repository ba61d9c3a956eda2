// service/attribute_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/util"
)

// IAttributeService defines the interface for attribute registry operations
type IAttributeService interface {
	CreateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error)
	UpdateAttribute(ctx context.Context, slug string, attribute model.Attribute) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, slug string) error
	GetAttribute(ctx context.Context, slug string) (*model.Attribute, error)
	GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error)
	ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error)
}

// AttributeService handles business logic for the attribute registry
type AttributeService struct {
	attributeDAO    IAttributeDAO
	integrityGuard  IIntegrityGuard
	validationUtil  *util.ValidationUtil
	cacheService    ICacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAttributeService = &AttributeService{}

// NewAttributeService creates a new instance of AttributeService
func NewAttributeService(attributeDAO IAttributeDAO, integrityGuard IIntegrityGuard, validationUtil *util.ValidationUtil, cacheService ICacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *AttributeService {
	service := &AttributeService{
		attributeDAO:    attributeDAO,
		integrityGuard:  integrityGuard,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("attribute.created", service.handleAttributeChanged)
	eventBus.Subscribe("attribute.updated", service.handleAttributeChanged)
	eventBus.Subscribe("attribute.deleted", service.handleAttributeDeleted)

	return service
}

func (s *AttributeService) handleAttributeChanged(ctx context.Context, event util.Event) error {
	attribute := event.Payload.(model.Attribute)
	changeType := "created"
	if event.Type == "attribute.updated" {
		changeType = "updated"
	}

	if err := s.notificationSvc.NotifyAttributeChange(ctx, changeType, attribute); err != nil {
		logger.Warn("Failed to send attribute change notification", zap.Error(err), zap.String("slug", attribute.Slug))
	}
	return nil
}

func (s *AttributeService) handleAttributeDeleted(ctx context.Context, event util.Event) error {
	slug := event.Payload.(string)
	logger.Info("Attribute deleted event received", zap.String("slug", slug))

	if err := s.notificationSvc.NotifyAttributeChange(ctx, "deleted", model.Attribute{Slug: slug}); err != nil {
		logger.Warn("Failed to send attribute deletion notification", zap.Error(err), zap.String("slug", slug))
	}
	return nil
}

// CreateAttribute registers a new field definition
func (s *AttributeService) CreateAttribute(ctx context.Context, attribute model.Attribute) (*model.Attribute, error) {
	if err := s.validationUtil.ValidateAttribute(attribute); err != nil {
		logger.Error("Validation for attribute data failed", zap.Error(err))
		return nil, err
	}

	attribute.CreatedAt = time.Now()
	attribute.UpdatedAt = time.Now()
	if attribute.DefaultOptions == nil {
		attribute.DefaultOptions = model.OptionList{}
	}

	if err := s.attributeDAO.CreateAttribute(ctx, attribute); err != nil {
		if err == apperrors.ErrAttributeConflict {
			return nil, &apperrors.ConflictError{Resource: "attribute", Slug: attribute.Slug}
		}
		logger.Error("Error creating attribute", zap.Error(err), zap.String("slug", attribute.Slug))
		return nil, err
	}

	if err := s.cacheService.SetAttribute(ctx, attribute); err != nil {
		logger.Warn("Failed to cache attribute", zap.Error(err), zap.String("slug", attribute.Slug))
	}

	s.eventBus.Publish(ctx, "attribute.created", attribute)

	logger.Info("Attribute created successfully", zap.String("slug", attribute.Slug))
	return &attribute, nil
}

// UpdateAttribute applies changes to an existing attribute. The slug in the
// URL wins over anything in the body: the slug is the join key for every
// binding and every stored value, so renames are silently ignored rather
// than allowed to orphan data.
func (s *AttributeService) UpdateAttribute(ctx context.Context, slug string, attribute model.Attribute) (*model.Attribute, error) {
	attribute.Slug = slug

	if err := s.validationUtil.ValidateAttribute(attribute); err != nil {
		logger.Error("Validation for attribute data failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.attributeDAO.GetAttribute(ctx, slug)
	if err != nil {
		return nil, err
	}

	attribute.CreatedAt = existing.CreatedAt
	attribute.UpdatedAt = time.Now()
	if attribute.DefaultOptions == nil {
		attribute.DefaultOptions = model.OptionList{}
	}

	updated, err := s.attributeDAO.UpdateAttribute(ctx, attribute)
	if err != nil {
		logger.Error("Error updating attribute", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	if err := s.cacheService.SetAttribute(ctx, *updated); err != nil {
		logger.Warn("Failed to cache attribute", zap.Error(err), zap.String("slug", slug))
	}

	s.eventBus.Publish(ctx, "attribute.updated", *updated)

	logger.Info("Attribute updated successfully", zap.String("slug", slug))
	return updated, nil
}

// DeleteAttribute removes a field definition, but only when no user type
// still binds it.
func (s *AttributeService) DeleteAttribute(ctx context.Context, slug string) error {
	check, err := s.integrityGuard.AttributeInUse(ctx, slug)
	if err != nil {
		logger.Error("Integrity check failed for attribute delete", zap.Error(err), zap.String("slug", slug))
		return err
	}
	if check.InUse {
		logger.Warn("Refusing to delete attribute still in use",
			zap.String("slug", slug),
			zap.Int("referencingUserTypes", check.Count),
			zap.Strings("sample", check.Referrers))
		return &apperrors.ConflictError{
			Resource:  "attribute",
			Slug:      slug,
			BlockedBy: "user type",
			Count:     check.Count,
		}
	}

	if err := s.attributeDAO.DeleteAttribute(ctx, slug); err != nil {
		return err
	}

	if err := s.cacheService.DeleteAttribute(ctx, slug); err != nil {
		logger.Warn("Failed to remove attribute from cache", zap.Error(err), zap.String("slug", slug))
	}

	s.eventBus.Publish(ctx, "attribute.deleted", slug)

	logger.Info("Attribute deleted successfully", zap.String("slug", slug))
	return nil
}

// GetAttribute retrieves an attribute, cache first
func (s *AttributeService) GetAttribute(ctx context.Context, slug string) (*model.Attribute, error) {
	cached, err := s.cacheService.GetAttribute(ctx, slug)
	if err == nil && cached != nil {
		return cached, nil
	}

	attribute, err := s.attributeDAO.GetAttribute(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetAttribute(ctx, *attribute); err != nil {
		logger.Warn("Failed to cache attribute", zap.Error(err), zap.String("slug", slug))
	}

	return attribute, nil
}

// GetAttributesBySlugs bulk-fetches attributes keyed by slug
func (s *AttributeService) GetAttributesBySlugs(ctx context.Context, slugs []string) (map[string]model.Attribute, error) {
	return s.attributeDAO.GetAttributesBySlugs(ctx, slugs)
}

// ListAttributes retrieves all attributes with pagination
func (s *AttributeService) ListAttributes(ctx context.Context, limit int, offset int) ([]*model.Attribute, error) {
	return s.attributeDAO.ListAttributes(ctx, limit, offset)
}
