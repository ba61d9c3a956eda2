// service/form_service_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	logger "github.com/scoutdesk/backoffice/logging"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/service"
	"github.com/scoutdesk/backoffice/test/mock"
)

func photographerConfig() *model.UserTypeConfig {
	return &model.UserTypeConfig{
		Slug:       "photographer",
		Name:       "Photographer",
		ParentType: model.ParentCollaborator,
		Fields: []model.FieldBinding{
			{AttributeSlug: "bio", Label: "Bio", Required: true, Section: "About"},
			{AttributeSlug: "portfolio", Label: "Portfolio", Section: "Work"},
		},
	}
}

func photographerAttrs() map[string]model.Attribute {
	return map[string]model.Attribute{
		"bio":       {Slug: "bio", Name: "Bio", FieldType: model.FieldTypeText},
		"portfolio": {Slug: "portfolio", Name: "Portfolio", FieldType: model.FieldTypeImageArray},
	}
}

func TestFormService(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	t.Run("BuildForm_CreateMode", func(t *testing.T) {
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		profiles := new(mock.MockProfileService)

		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).Return(photographerAttrs(), nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)

		formService := service.NewFormService(userTypes, attrs, staticData, profiles)

		result, err := formService.BuildForm(ctx, "photographer", dynamicform.ModeCreate, "")

		assert.NoError(t, err)
		assert.Equal(t, "photographer", result.Form.UserType)
		assert.Len(t, result.Form.Sections, 2)
		assert.Len(t, result.Rules.Rules, 2)
		// No profile lookup happens in create mode.
		profiles.AssertNotCalled(t, "CurrentValues", tmock.Anything, tmock.Anything)
	})

	t.Run("BuildForm_EditModeSeedsStoredValues", func(t *testing.T) {
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		profiles := new(mock.MockProfileService)

		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).Return(photographerAttrs(), nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)
		profiles.On("CurrentValues", tmock.Anything, "p-1").Return(map[string]any{"bio": "stored bio"}, nil)

		formService := service.NewFormService(userTypes, attrs, staticData, profiles)

		result, err := formService.BuildForm(ctx, "photographer", dynamicform.ModeEdit, "p-1")

		assert.NoError(t, err)
		assert.Equal(t, "stored bio", result.Form.Sections[0].Fields[0].Initial)
		// image_array fields drop out of the edit form entirely.
		assert.Len(t, result.Form.Sections, 1)
	})

	t.Run("BuildForm_UnknownUserType", func(t *testing.T) {
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		profiles := new(mock.MockProfileService)

		userTypes.On("GetUserType", tmock.Anything, "ghost").Return(nil, apperrors.ErrUserTypeNotFound)

		formService := service.NewFormService(userTypes, attrs, staticData, profiles)

		_, err := formService.BuildForm(ctx, "ghost", dynamicform.ModeCreate, "")

		assert.True(t, errors.Is(err, apperrors.ErrUserTypeNotFound))
	})

	t.Run("BuildForm_DanglingBindingSurfacesIntegrityError", func(t *testing.T) {
		userTypes := new(mock.MockUserTypeService)
		attrs := new(mock.MockAttributeService)
		staticData := new(mock.MockStaticDataService)
		profiles := new(mock.MockProfileService)

		userTypes.On("GetUserType", tmock.Anything, "photographer").Return(photographerConfig(), nil)
		// The registry no longer knows "portfolio".
		attrs.On("GetAttributesBySlugs", tmock.Anything, []string{"bio", "portfolio"}).
			Return(map[string]model.Attribute{"bio": {Slug: "bio", FieldType: model.FieldTypeText}}, nil)
		staticData.On("Lists", tmock.Anything).Return(model.StaticLists{}, nil)

		formService := service.NewFormService(userTypes, attrs, staticData, profiles)

		_, err := formService.BuildForm(ctx, "photographer", dynamicform.ModeCreate, "")

		assert.True(t, errors.Is(err, apperrors.ErrSchemaIntegrity))
	})
}
