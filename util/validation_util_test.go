// util/validation_util_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
	"github.com/scoutdesk/backoffice/util"
)

func TestValidateAttribute(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidAttribute", func(t *testing.T) {
		err := v.ValidateAttribute(model.Attribute{
			Slug: "years_experience", Name: "Years of experience", FieldType: model.FieldTypeNumber,
		})
		assert.NoError(t, err)
	})

	t.Run("SlugFormat", func(t *testing.T) {
		for _, slug := range []string{"", "Has Spaces", "UPPER", "trailing-", "-leading", "dotted.slug"} {
			err := v.ValidateAttribute(model.Attribute{Slug: slug, Name: "N", FieldType: model.FieldTypeText})
			assert.Error(t, err, slug)
		}
		for _, slug := range []string{"bio", "years_experience", "country-focus", "a1"} {
			err := v.ValidateAttribute(model.Attribute{Slug: slug, Name: "N", FieldType: model.FieldTypeText})
			assert.NoError(t, err, slug)
		}
	})

	t.Run("UnknownFieldTypeRejected", func(t *testing.T) {
		err := v.ValidateAttribute(model.Attribute{Slug: "bio", Name: "Bio", FieldType: "richtext"})

		ve, ok := apperrors.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "fieldType", ve.Field)
	})

	t.Run("ImageArrayMustHaveNoOptions", func(t *testing.T) {
		err := v.ValidateAttribute(model.Attribute{
			Slug: "portfolio", Name: "Portfolio", FieldType: model.FieldTypeImageArray,
			DefaultOptions: model.OptionList{{Value: "x", Label: "X"}},
		})

		ve, ok := apperrors.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "defaultOptions", ve.Field)
	})
}

func TestValidateUserType(t *testing.T) {
	v := util.NewValidationUtil()
	known := map[string]model.Attribute{
		"bio": {Slug: "bio", Name: "Bio", FieldType: model.FieldTypeText},
	}

	valid := model.UserTypeConfig{
		Slug: "photographer", Name: "Photographer", ParentType: model.ParentCollaborator,
		Fields: []model.FieldBinding{{AttributeSlug: "bio", Label: "Bio", Section: "About"}},
	}

	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, v.ValidateUserType(valid, known))
	})

	t.Run("NeedsAtLeastOneBinding", func(t *testing.T) {
		cfg := valid
		cfg.Fields = nil

		ve, ok := apperrors.AsValidationError(v.ValidateUserType(cfg, known))
		assert.True(t, ok)
		assert.Equal(t, "fields", ve.Field)
	})

	t.Run("UnknownParentType", func(t *testing.T) {
		cfg := valid
		cfg.ParentType = "Freelancer"

		assert.Error(t, v.ValidateUserType(cfg, known))
	})

	t.Run("UnknownBindingSlug_FieldQualifiedError", func(t *testing.T) {
		cfg := valid
		cfg.Fields = []model.FieldBinding{
			{AttributeSlug: "bio", Label: "Bio", Section: "About"},
			{AttributeSlug: "ghost", Label: "Ghost", Section: "About"},
		}

		ve, ok := apperrors.AsValidationError(v.ValidateUserType(cfg, known))
		assert.True(t, ok)
		assert.Equal(t, "fields[1].attributeSlug", ve.Field)
		assert.Contains(t, ve.Message, "ghost")
	})
}

func TestValidateAnnouncement(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("AudienceMustBeKnown", func(t *testing.T) {
		err := v.ValidateAnnouncement(model.Announcement{Title: "T", Body: "B", Audience: "Everyone"})
		assert.Error(t, err)

		err = v.ValidateAnnouncement(model.Announcement{Title: "T", Body: "B", Audience: model.ParentAgency})
		assert.NoError(t, err)
	})
}

func TestValidateEmail(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateEmail("ana@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}
