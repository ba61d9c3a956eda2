// dynamicform/generator_test.go
package dynamicform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

func modelAttrs() map[string]model.Attribute {
	return map[string]model.Attribute{
		"bio":              {Slug: "bio", Name: "Bio", FieldType: model.FieldTypeText},
		"years_experience": {Slug: "years_experience", Name: "Years of experience", FieldType: model.FieldTypeNumber},
		"country_focus": {
			Slug: "country_focus", Name: "Country focus", FieldType: model.FieldTypeSelect,
			DefaultOptions: model.OptionList{{Value: "global:countries", Label: "global:countries"}},
		},
		"portfolio":     {Slug: "portfolio", Name: "Portfolio", FieldType: model.FieldTypeImageArray},
		"available":     {Slug: "available", Name: "Available", FieldType: model.FieldTypeBoolean},
		"spoken_langs":  {Slug: "spoken_langs", Name: "Spoken languages", FieldType: model.FieldTypeArray},
		"email":         {Slug: "email", Name: "Email", FieldType: model.FieldTypeText},
	}
}

func modelConfig() model.UserTypeConfig {
	return model.UserTypeConfig{
		Slug:       "photographer",
		Name:       "Photographer",
		ParentType: model.ParentCollaborator,
		Fields: []model.FieldBinding{
			{AttributeSlug: "bio", Label: "About you", Required: true, Section: "About"},
			{AttributeSlug: "country_focus", Label: "Country focus", Section: "Work"},
			{AttributeSlug: "years_experience", Label: "Experience", Section: "About"},
			{AttributeSlug: "portfolio", Label: "Portfolio", Section: "Work"},
			{AttributeSlug: "available", Label: "Available", Section: "Work"},
		},
	}
}

func TestGenerate(t *testing.T) {
	lists := model.StaticLists{Countries: []string{"France", "Japan"}}

	t.Run("SectionsKeepFirstSeenOrder", func(t *testing.T) {
		form, _, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.NoError(t, err)
		assert.Len(t, form.Sections, 2)
		assert.Equal(t, "About", form.Sections[0].Name)
		assert.Equal(t, "Work", form.Sections[1].Name)
		// Binding order preserved within a section.
		assert.Equal(t, "bio", form.Sections[0].Fields[0].Slug)
		assert.Equal(t, "years_experience", form.Sections[0].Fields[1].Slug)
	})

	t.Run("SentinelOptionsExpandOnDescriptor", func(t *testing.T) {
		form, _, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.NoError(t, err)
		var focus *dynamicform.FieldDescriptor
		for i := range form.Sections[1].Fields {
			if form.Sections[1].Fields[i].Slug == "country_focus" {
				focus = &form.Sections[1].Fields[i]
			}
		}
		assert.NotNil(t, focus)
		assert.Len(t, focus.Options, 2)
		assert.Equal(t, "France", focus.Options[0].Value)
	})

	t.Run("EditMode_ImageArrayExcluded", func(t *testing.T) {
		form, rules, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeEdit, nil)

		assert.NoError(t, err)
		for _, section := range form.Sections {
			for _, field := range section.Fields {
				assert.NotEqual(t, "portfolio", field.Slug)
			}
		}
		for _, rule := range rules.Rules {
			assert.NotEqual(t, "portfolio", rule.Slug)
		}
	})

	t.Run("CreateMode_ImageArrayIncluded", func(t *testing.T) {
		form, _, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.NoError(t, err)
		found := false
		for _, section := range form.Sections {
			for _, field := range section.Fields {
				if field.Slug == "portfolio" {
					found = true
				}
			}
		}
		assert.True(t, found)
	})

	t.Run("InitialValues_CurrentWinsOverDefault", func(t *testing.T) {
		current := map[string]any{"bio": "seasoned shooter"}

		form, _, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeEdit, current)

		assert.NoError(t, err)
		assert.Equal(t, "seasoned shooter", form.Sections[0].Fields[0].Initial)
		// Field with no stored value falls back to its type default.
		assert.Equal(t, "", form.Sections[0].Fields[1].Initial)
	})

	t.Run("InitialValues_TypeDefaults", func(t *testing.T) {
		form, _, err := dynamicform.Generate(modelConfig(), modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.NoError(t, err)
		for _, section := range form.Sections {
			for _, field := range section.Fields {
				switch field.FieldType {
				case model.FieldTypeBoolean:
					assert.Equal(t, false, field.Initial)
				case model.FieldTypeImageArray, model.FieldTypeArray:
					assert.Equal(t, []any{}, field.Initial)
				default:
					assert.Equal(t, "", field.Initial)
				}
			}
		}
	})

	t.Run("UnknownBindingSlug_SchemaIntegrityError", func(t *testing.T) {
		cfg := modelConfig()
		cfg.Fields = append(cfg.Fields, model.FieldBinding{AttributeSlug: "ghost", Label: "Ghost", Section: "About"})

		form, _, err := dynamicform.Generate(cfg, modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.Nil(t, form)
		assert.True(t, errors.Is(err, apperrors.ErrSchemaIntegrity))
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("CoreFieldBinding_NoDynamicRule", func(t *testing.T) {
		cfg := modelConfig()
		cfg.Fields = append(cfg.Fields, model.FieldBinding{AttributeSlug: "email", Label: "Email", Required: true, Section: "About"})

		form, rules, err := dynamicform.Generate(cfg, modelAttrs(), lists, dynamicform.ModeCreate, nil)

		assert.NoError(t, err)
		// Rendered, but validated by the fixed core rules instead.
		found := false
		for _, field := range form.Sections[0].Fields {
			if field.Slug == "email" {
				found = true
			}
		}
		assert.True(t, found)
		for _, rule := range rules.Rules {
			assert.NotEqual(t, "email", rule.Slug)
		}
	})
}
