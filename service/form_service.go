// service/form_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/scoutdesk/backoffice/dynamicform"
	logger "github.com/scoutdesk/backoffice/logging"
)

// FormResult bundles the render descriptor and the derived ruleset so
// clients can mirror the server-side validation.
type FormResult struct {
	Form  *dynamicform.Form   `json:"form"`
	Rules dynamicform.Ruleset `json:"rules"`
}

// IFormService exposes the dynamic form generator over the service layer
type IFormService interface {
	BuildForm(ctx context.Context, userTypeSlug string, mode dynamicform.Mode, profileID string) (*FormResult, error)
}

// FormService derives render descriptors and validation rulesets from a
// user type config, the attribute registry, and the global dictionary.
type FormService struct {
	userTypeService  IUserTypeService
	attributeService IAttributeService
	staticData       IStaticDataService
	profileDAOReader ProfileReader
}

// ProfileReader is the narrow read access the generator needs for edit-mode
// initial values.
type ProfileReader interface {
	CurrentValues(ctx context.Context, profileID string) (map[string]any, error)
}

var _ IFormService = &FormService{}

func NewFormService(userTypeService IUserTypeService, attributeService IAttributeService, staticData IStaticDataService, profiles ProfileReader) *FormService {
	return &FormService{
		userTypeService:  userTypeService,
		attributeService: attributeService,
		staticData:       staticData,
		profileDAOReader: profiles,
	}
}

// BuildForm generates the form for a user type. In edit mode with a profile
// ID, the profile's merged view seeds the initial values; otherwise type
// defaults apply.
func (s *FormService) BuildForm(ctx context.Context, userTypeSlug string, mode dynamicform.Mode, profileID string) (*FormResult, error) {
	userType, err := s.userTypeService.GetUserType(ctx, userTypeSlug)
	if err != nil {
		return nil, err
	}

	attrs, err := s.attributeService.GetAttributesBySlugs(ctx, userType.AttributeSlugs())
	if err != nil {
		return nil, err
	}

	lists, err := s.staticData.Lists(ctx)
	if err != nil {
		return nil, err
	}

	var current map[string]any
	if mode == dynamicform.ModeEdit && profileID != "" {
		current, err = s.profileDAOReader.CurrentValues(ctx, profileID)
		if err != nil {
			return nil, err
		}
	}

	form, rules, err := dynamicform.Generate(*userType, attrs, lists, mode, current)
	if err != nil {
		// A binding that no longer resolves means the integrity guard was
		// bypassed; log it apart from ordinary validation noise.
		logger.Error("Schema integrity violation while generating form",
			zap.Error(err),
			zap.String("userType", userTypeSlug))
		return nil, err
	}

	return &FormResult{Form: form, Rules: rules}, nil
}
