// dynamicform/rules_test.go
package dynamicform_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scoutdesk/backoffice/dynamicform"
	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

func TestRuleValidate(t *testing.T) {
	t.Run("Text_RequiredRejectsEmptyAndNil", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "bio", FieldType: model.FieldTypeText, Required: true}

		assert.Error(t, rule.Validate(nil))
		assert.Error(t, rule.Validate(""))
		assert.NoError(t, rule.Validate("hello"))
	})

	t.Run("Text_OptionalAcceptsAbsent", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "bio", FieldType: model.FieldTypeText}

		assert.NoError(t, rule.Validate(nil))
		assert.NoError(t, rule.Validate(""))
	})

	t.Run("Text_RejectsNonString", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "bio", FieldType: model.FieldTypeText}

		err := rule.Validate(42)
		ve, ok := apperrors.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "bio", ve.Field)
	})

	t.Run("URL_MustBeAbsolute", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "website", FieldType: model.FieldTypeURL}

		assert.NoError(t, rule.Validate("https://example.com/page"))
		assert.Error(t, rule.Validate("/relative/path"))
		assert.Error(t, rule.Validate("not a url at all"))
	})

	t.Run("Array_RequiredNeedsAtLeastOneEntry", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "spoken_languages", FieldType: model.FieldTypeArray, Required: true}

		assert.Error(t, rule.Validate(nil))
		assert.Error(t, rule.Validate([]any{}))
		assert.NoError(t, rule.Validate([]any{"French"}))
		assert.NoError(t, rule.Validate([]string{"French", "English"}))
	})

	t.Run("Array_OptionalAcceptsEmpty", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "spoken_languages", FieldType: model.FieldTypeArray}

		assert.NoError(t, rule.Validate(nil))
		assert.NoError(t, rule.Validate([]any{}))
	})

	t.Run("Array_RejectsScalar", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "spoken_languages", FieldType: model.FieldTypeArray}

		assert.Error(t, rule.Validate("French"))
	})

	t.Run("Number_EmptyStringIsAbsentNotZero", func(t *testing.T) {
		optional := dynamicform.Rule{Slug: "years_experience", FieldType: model.FieldTypeNumber}
		required := dynamicform.Rule{Slug: "years_experience", FieldType: model.FieldTypeNumber, Required: true}

		assert.NoError(t, optional.Validate(""))
		assert.Error(t, required.Validate(""))
		assert.Error(t, required.Validate(nil))
	})

	t.Run("Number_AcceptsNumericShapes", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "years_experience", FieldType: model.FieldTypeNumber, Required: true}

		assert.NoError(t, rule.Validate(float64(3)))
		assert.NoError(t, rule.Validate(3))
		assert.NoError(t, rule.Validate("3.5"))
		assert.NoError(t, rule.Validate(json.Number("7")))
	})

	t.Run("Number_RejectsNonNumeric", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "years_experience", FieldType: model.FieldTypeNumber}

		assert.Error(t, rule.Validate("three"))
		assert.Error(t, rule.Validate([]any{1}))
	})

	t.Run("Date_OptionalAcceptsAbsent", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "birthday", FieldType: model.FieldTypeDate}

		assert.NoError(t, rule.Validate(nil))
		assert.NoError(t, rule.Validate(""))
	})

	t.Run("Date_AcceptsKnownLayouts", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "birthday", FieldType: model.FieldTypeDate, Required: true}

		assert.NoError(t, rule.Validate("1990-06-15"))
		assert.NoError(t, rule.Validate("1990-06-15T10:30:00Z"))
		assert.NoError(t, rule.Validate(time.Now()))
		assert.Error(t, rule.Validate("15/06/1990"))
	})

	t.Run("Boolean_UnconstrainedBeyondPresence", func(t *testing.T) {
		rule := dynamicform.Rule{Slug: "available", FieldType: model.FieldTypeBoolean, Required: true}

		assert.NoError(t, rule.Validate(true))
		assert.NoError(t, rule.Validate(false))
		assert.Error(t, rule.Validate(nil))
	})
}

func TestRulesetValidate(t *testing.T) {
	ruleset := dynamicform.Ruleset{
		Mode: dynamicform.ModeCreate,
		Rules: []dynamicform.Rule{
			{Slug: "bio", FieldType: model.FieldTypeText, Required: true},
			{Slug: "years_experience", FieldType: model.FieldTypeNumber},
		},
	}

	t.Run("OmittedRequiredField_Rejected", func(t *testing.T) {
		err := ruleset.Validate(map[string]any{"years_experience": 2})

		ve, ok := apperrors.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "bio", ve.Field)
	})

	t.Run("AllRulesSatisfied", func(t *testing.T) {
		err := ruleset.Validate(map[string]any{"bio": "hi", "years_experience": ""})

		assert.NoError(t, err)
	})
}
