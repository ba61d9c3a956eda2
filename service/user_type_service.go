// service/user_type_service.go
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

// IUserTypeService defines the interface for schema composer operations
type IUserTypeService interface {
	CreateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error)
	UpdateUserType(ctx context.Context, slug string, userType model.UserTypeConfig) (*model.UserTypeConfig, error)
	DeleteUserType(ctx context.Context, slug string) error
	GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error)
	ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error)
}

// UserTypeService handles business logic for composing entity schemas
type UserTypeService struct {
	userTypeDAO     IUserTypeDAO
	attributeDAO    IAttributeDAO
	integrityGuard  IIntegrityGuard
	validationUtil  *util.ValidationUtil
	cacheService    ICacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserTypeService = &UserTypeService{}

// NewUserTypeService creates a new instance of UserTypeService
func NewUserTypeService(userTypeDAO IUserTypeDAO, attributeDAO IAttributeDAO, integrityGuard IIntegrityGuard, validationUtil *util.ValidationUtil, cacheService ICacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *UserTypeService {
	service := &UserTypeService{
		userTypeDAO:     userTypeDAO,
		attributeDAO:    attributeDAO,
		integrityGuard:  integrityGuard,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("userType.created", service.handleUserTypeChanged)
	eventBus.Subscribe("userType.updated", service.handleUserTypeChanged)
	eventBus.Subscribe("userType.deleted", service.handleUserTypeDeleted)

	return service
}

func (s *UserTypeService) handleUserTypeChanged(ctx context.Context, event util.Event) error {
	userType := event.Payload.(model.UserTypeConfig)
	changeType := "created"
	if event.Type == "userType.updated" {
		changeType = "updated"
	}

	if err := s.notificationSvc.NotifyUserTypeChange(ctx, changeType, userType); err != nil {
		logger.Warn("Failed to send user type change notification", zap.Error(err), zap.String("slug", userType.Slug))
	}
	return nil
}

func (s *UserTypeService) handleUserTypeDeleted(ctx context.Context, event util.Event) error {
	slug := event.Payload.(string)
	logger.Info("User type deleted event received", zap.String("slug", slug))

	if err := s.notificationSvc.NotifyUserTypeChange(ctx, "deleted", model.UserTypeConfig{Slug: slug}); err != nil {
		logger.Warn("Failed to send user type deletion notification", zap.Error(err), zap.String("slug", slug))
	}
	return nil
}

// resolveBindings loads the attributes the config's bindings reference.
// Every binding must resolve against the live registry at submit time; an
// unknown slug rejects the whole config so no partial schema is persisted.
func (s *UserTypeService) resolveBindings(ctx context.Context, userType model.UserTypeConfig) (map[string]model.Attribute, error) {
	known, err := s.attributeDAO.GetAttributesBySlugs(ctx, userType.AttributeSlugs())
	if err != nil {
		return nil, err
	}
	return known, nil
}

// CreateUserType composes a new entity schema
func (s *UserTypeService) CreateUserType(ctx context.Context, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	known, err := s.resolveBindings(ctx, userType)
	if err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateUserType(userType, known); err != nil {
		logger.Error("Validation for user type data failed", zap.Error(err))
		return nil, err
	}

	userType.CreatedAt = time.Now()
	userType.UpdatedAt = time.Now()

	if err := s.userTypeDAO.CreateUserType(ctx, userType); err != nil {
		if err == apperrors.ErrUserTypeConflict {
			return nil, &apperrors.ConflictError{Resource: "user type", Slug: userType.Slug}
		}
		logger.Error("Error creating user type", zap.Error(err), zap.String("slug", userType.Slug))
		return nil, err
	}

	if err := s.cacheService.SetUserType(ctx, userType); err != nil {
		logger.Warn("Failed to cache user type", zap.Error(err), zap.String("slug", userType.Slug))
	}

	s.eventBus.Publish(ctx, "userType.created", userType)

	logger.Info("User type created successfully", zap.String("slug", userType.Slug))
	return &userType, nil
}

// UpdateUserType applies changes to an existing schema. Like attributes,
// the slug is write-once: the URL slug wins over the body.
func (s *UserTypeService) UpdateUserType(ctx context.Context, slug string, userType model.UserTypeConfig) (*model.UserTypeConfig, error) {
	userType.Slug = slug

	known, err := s.resolveBindings(ctx, userType)
	if err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateUserType(userType, known); err != nil {
		logger.Error("Validation for user type data failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.userTypeDAO.GetUserType(ctx, slug)
	if err != nil {
		return nil, err
	}

	userType.CreatedAt = existing.CreatedAt
	userType.UpdatedAt = time.Now()

	updated, err := s.userTypeDAO.UpdateUserType(ctx, userType)
	if err != nil {
		logger.Error("Error updating user type", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	if err := s.cacheService.SetUserType(ctx, *updated); err != nil {
		logger.Warn("Failed to cache user type", zap.Error(err), zap.String("slug", slug))
	}

	s.eventBus.Publish(ctx, "userType.updated", *updated)

	logger.Info("User type updated successfully", zap.String("slug", slug))
	return updated, nil
}

// DeleteUserType removes a schema, but only when no live profile carries it
// as its discriminator.
func (s *UserTypeService) DeleteUserType(ctx context.Context, slug string) error {
	check, err := s.integrityGuard.UserTypeInUse(ctx, slug)
	if err != nil {
		logger.Error("Integrity check failed for user type delete", zap.Error(err), zap.String("slug", slug))
		return err
	}
	if check.InUse {
		logger.Warn("Refusing to delete user type still in use",
			zap.String("slug", slug),
			zap.Int("profiles", check.Count))
		return &apperrors.ConflictError{
			Resource:  "user type",
			Slug:      slug,
			BlockedBy: "profile",
			Count:     check.Count,
		}
	}

	if err := s.userTypeDAO.DeleteUserType(ctx, slug); err != nil {
		return err
	}

	if err := s.cacheService.DeleteUserType(ctx, slug); err != nil {
		logger.Warn("Failed to remove user type from cache", zap.Error(err), zap.String("slug", slug))
	}

	s.eventBus.Publish(ctx, "userType.deleted", slug)

	logger.Info("User type deleted successfully", zap.String("slug", slug))
	return nil
}

// GetUserType retrieves a schema, cache first
func (s *UserTypeService) GetUserType(ctx context.Context, slug string) (*model.UserTypeConfig, error) {
	cached, err := s.cacheService.GetUserType(ctx, slug)
	if err == nil && cached != nil {
		return cached, nil
	}

	userType, err := s.userTypeDAO.GetUserType(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetUserType(ctx, *userType); err != nil {
		logger.Warn("Failed to cache user type", zap.Error(err), zap.String("slug", slug))
	}

	return userType, nil
}

// ListUserTypes retrieves all schemas with pagination
func (s *UserTypeService) ListUserTypes(ctx context.Context, limit int, offset int) ([]*model.UserTypeConfig, error) {
	return s.userTypeDAO.ListUserTypes(ctx, limit, offset)
}
