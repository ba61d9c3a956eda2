// service/profile_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/util"
)

// IProfileService defines the interface for the entity value store
type IProfileService interface {
	CreateProfile(ctx context.Context, payload map[string]any) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, payload map[string]any) (*model.Profile, error)
	DeleteProfile(ctx context.Context, profileID string) error
	GetProfile(ctx context.Context, profileID string) (*model.Profile, error)
	GetMergedView(ctx context.Context, profileID string) (map[string]any, error)
	ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error)
}

// ProfileService is the validated write path for profiles: every mutation
// runs through the ruleset generated from the profile's current schema
// before anything is persisted.
type ProfileService struct {
	profileDAO       IProfileDAO
	userTypeService  IUserTypeService
	attributeService IAttributeService
	staticData       IStaticDataService
	cacheService     ICacheService
	notificationSvc  *util.NotificationService
	eventBus         *util.EventBus
}

var _ IProfileService = &ProfileService{}
var _ ProfileReader = &ProfileService{}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileDAO IProfileDAO, userTypeService IUserTypeService, attributeService IAttributeService, staticData IStaticDataService, cacheService ICacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *ProfileService {
	service := &ProfileService{
		profileDAO:       profileDAO,
		userTypeService:  userTypeService,
		attributeService: attributeService,
		staticData:       staticData,
		cacheService:     cacheService,
		notificationSvc:  notificationSvc,
		eventBus:         eventBus,
	}

	eventBus.Subscribe("profile.created", service.handleProfileChanged)
	eventBus.Subscribe("profile.updated", service.handleProfileChanged)

	return service
}

func (s *ProfileService) handleProfileChanged(ctx context.Context, event util.Event) error {
	profile := event.Payload.(model.Profile)
	changeType := "created"
	if event.Type == "profile.updated" {
		changeType = "updated"
	}

	if err := s.notificationSvc.NotifyProfileChange(ctx, changeType, profile); err != nil {
		logger.Warn("Failed to send profile change notification", zap.Error(err), zap.String("profileID", profile.ID))
	}

	if changeType == "created" && profile.Email != "" {
		if err := s.notificationSvc.SendEmail(ctx, profile.Email, "Welcome", "Your profile has been created."); err != nil {
			logger.Warn("Failed to send welcome email", zap.Error(err), zap.String("profileID", profile.ID))
		}
	}
	return nil
}

// CreateProfile validates and persists a new profile. The payload carries
// core fields, dynamic fields, and the discriminator in one flat map, the
// same shape the update endpoint accepts.
func (s *ProfileService) CreateProfile(ctx context.Context, payload map[string]any) (*model.Profile, error) {
	profile := &model.Profile{
		ID:         uuid.New().String(),
		Attributes: make(map[string]any),
	}
	if err := applyDiscriminator(profile, payload); err != nil {
		return nil, err
	}

	schemaSlug := profile.SchemaSlug()
	if schemaSlug == "" {
		return nil, apperrors.NewValidationError("discriminator", "a collaborator or agency type is required")
	}

	userType, err := s.userTypeService.GetUserType(ctx, schemaSlug)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			return nil, apperrors.NewValidationError("discriminator", "unknown user type "+schemaSlug)
		}
		return nil, err
	}

	ruleset, attrs, err := s.rulesetFor(ctx, userType, dynamicform.ModeCreate, nil)
	if err != nil {
		return nil, err
	}

	password, err := s.applyPayload(profile, attrs, dynamicform.ModeCreate, payload)
	if err != nil {
		return nil, err
	}

	core := profile.CoreMap()
	core[model.CorePassword] = password
	if err := dynamicform.ValidateCore(core, dynamicform.ModeCreate); err != nil {
		return nil, err
	}
	if err := ruleset.Validate(profile.Attributes); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	profile.PasswordHash = string(hash)
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	if err := s.profileDAO.CreateProfile(ctx, *profile); err != nil {
		if errors.Is(err, apperrors.ErrProfileConflict) {
			return nil, &apperrors.ConflictError{Resource: "profile", Slug: profile.Email}
		}
		return nil, err
	}

	if err := s.cacheService.SetProfile(ctx, *profile); err != nil {
		logger.Warn("Failed to cache profile", zap.Error(err), zap.String("profileID", profile.ID))
	}

	s.eventBus.Publish(ctx, "profile.created", *profile)

	logger.Info("Profile created successfully", zap.String("profileID", profile.ID))
	return profile, nil
}

// UpdateProfile merges the patch onto the stored record, validates the
// merged result against the profile's current schema, and persists it.
// Rejection happens before any write, so a failed update leaves the record
// untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, profileID string, payload map[string]any) (*model.Profile, error) {
	existing, err := s.profileDAO.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	schemaSlug := existing.SchemaSlug()
	userType, err := s.userTypeService.GetUserType(ctx, schemaSlug)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserTypeNotFound) {
			// The schema vanished under a live profile: the integrity guard
			// was bypassed. Surface it as a consistency bug, not user error.
			logger.Error("Schema integrity violation on profile update",
				zap.String("profileID", profileID),
				zap.String("schemaSlug", schemaSlug))
			return nil, apperrors.ErrSchemaIntegrity
		}
		return nil, err
	}

	merged := *existing
	merged.Attributes = make(map[string]any, len(existing.Attributes))
	for key, value := range existing.Attributes {
		merged.Attributes[key] = value
	}

	ruleset, attrs, err := s.rulesetFor(ctx, userType, dynamicform.ModeEdit, existing.MergedView())
	if err != nil {
		return nil, err
	}

	password, err := s.applyPayload(&merged, attrs, dynamicform.ModeEdit, payload)
	if err != nil {
		return nil, err
	}

	core := merged.CoreMap()
	core[model.CorePassword] = password
	if err := dynamicform.ValidateCore(core, dynamicform.ModeEdit); err != nil {
		return nil, err
	}
	if err := ruleset.Validate(merged.Attributes); err != nil {
		return nil, err
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", zap.Error(err))
			return nil, apperrors.ErrInternalServer
		}
		merged.PasswordHash = string(hash)
	}
	merged.UpdatedAt = time.Now()

	updated, err := s.profileDAO.UpdateProfile(ctx, merged)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProfile(ctx, *updated); err != nil {
		logger.Warn("Failed to cache profile", zap.Error(err), zap.String("profileID", profileID))
	}

	s.eventBus.Publish(ctx, "profile.updated", *updated)

	logger.Info("Profile updated successfully", zap.String("profileID", profileID))
	return updated, nil
}

// applyPayload distributes a flat write payload across the two storage
// tiers: core fields onto the struct, schema-bound dynamic fields into the
// bag. The plaintext password is returned for the caller to hash. Keys that
// are neither core, discriminator, nor bound in the schema are dropped with
// a warning; storing them would create values no schema governs. In edit
// mode, image_array keys are dropped the same way: file arrays are only
// mutable through the file-management collaborator, so an edit submit must
// never overwrite the stored list.
func (s *ProfileService) applyPayload(profile *model.Profile, attrs map[string]model.Attribute, mode dynamicform.Mode, payload map[string]any) (string, error) {
	password := ""
	for key, value := range payload {
		switch {
		case key == model.CorePassword:
			text, ok := value.(string)
			if !ok {
				return "", apperrors.NewValidationError(model.CorePassword, "must be a string")
			}
			password = text
		case key == "userType" || key == "collaboratorType" || key == "agencyType" || key == "id":
			// Discriminator and identity are applied separately, never patched.
		case model.IsCoreField(key):
			if err := profile.SetCoreField(key, value); err != nil {
				return "", apperrors.NewValidationError(key, "must be a string")
			}
		default:
			attr, bound := attrs[key]
			if !bound {
				logger.Warn("Dropping unbound dynamic field from profile write",
					zap.String("profileID", profile.ID),
					zap.String("field", key))
				continue
			}
			if mode == dynamicform.ModeEdit && attr.FieldType == model.FieldTypeImageArray {
				logger.Warn("Dropping file array field from profile edit",
					zap.String("profileID", profile.ID),
					zap.String("field", key))
				continue
			}
			profile.Attributes[key] = value
		}
	}
	return password, nil
}

func applyDiscriminator(profile *model.Profile, payload map[string]any) error {
	rawUserType, _ := payload["userType"].(string)
	profile.UserType = model.ParentType(rawUserType)
	if !profile.UserType.Valid() {
		return apperrors.NewValidationError("userType", "must be Collaborator or Agency")
	}
	if collaboratorType, ok := payload["collaboratorType"].(string); ok {
		profile.CollaboratorType = collaboratorType
	}
	if agencyType, ok := payload["agencyType"].(string); ok {
		profile.AgencyType = agencyType
	}
	return nil
}

// rulesetFor derives the validation ruleset for the user type in the given
// mode, returning the resolved attributes alongside it so the write path
// can type-check incoming keys. A binding that no longer resolves is logged
// as a consistency bug and surfaces as ErrSchemaIntegrity.
func (s *ProfileService) rulesetFor(ctx context.Context, userType *model.UserTypeConfig, mode dynamicform.Mode, current map[string]any) (dynamicform.Ruleset, map[string]model.Attribute, error) {
	attrs, err := s.attributeService.GetAttributesBySlugs(ctx, userType.AttributeSlugs())
	if err != nil {
		return dynamicform.Ruleset{}, nil, err
	}
	lists, err := s.staticData.Lists(ctx)
	if err != nil {
		return dynamicform.Ruleset{}, nil, err
	}
	_, ruleset, err := dynamicform.Generate(*userType, attrs, lists, mode, current)
	if err != nil {
		logger.Error("Schema integrity violation while deriving ruleset",
			zap.Error(err),
			zap.String("userType", userType.Slug))
		return dynamicform.Ruleset{}, nil, err
	}
	return ruleset, attrs, nil
}

// DeleteProfile removes a profile record
func (s *ProfileService) DeleteProfile(ctx context.Context, profileID string) error {
	if err := s.profileDAO.DeleteProfile(ctx, profileID); err != nil {
		return err
	}

	if err := s.cacheService.DeleteProfile(ctx, profileID); err != nil {
		logger.Warn("Failed to remove profile from cache", zap.Error(err), zap.String("profileID", profileID))
	}

	s.eventBus.Publish(ctx, "profile.deleted", profileID)
	return nil
}

// GetProfile retrieves a profile, cache first
func (s *ProfileService) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	cached, err := s.cacheService.GetProfile(ctx, profileID)
	if err == nil && cached != nil {
		return cached, nil
	}

	profile, err := s.profileDAO.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetProfile(ctx, *profile); err != nil {
		logger.Warn("Failed to cache profile", zap.Error(err), zap.String("profileID", profileID))
	}

	return profile, nil
}

// GetMergedView returns the single-map view of a profile, core fields
// resolving ahead of the dynamic bag.
func (s *ProfileService) GetMergedView(ctx context.Context, profileID string) (map[string]any, error) {
	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return profile.MergedView(), nil
}

// CurrentValues satisfies the form service's ProfileReader.
func (s *ProfileService) CurrentValues(ctx context.Context, profileID string) (map[string]any, error) {
	return s.GetMergedView(ctx, profileID)
}

// ListProfiles retrieves profiles with pagination
func (s *ProfileService) ListProfiles(ctx context.Context, limit int, offset int) ([]*model.Profile, error) {
	return s.profileDAO.ListProfiles(ctx, limit, offset)
}
