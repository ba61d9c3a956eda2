// dynamicform/rules.go
package dynamicform

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

// Mode selects create vs edit behavior for generated forms and rules.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

func (m Mode) Valid() bool {
	return m == ModeCreate || m == ModeEdit
}

// Rule validates one dynamic field's submitted value. Rules are derived from
// the field binding and its attribute's type tag; they carry no state beyond
// that, so a ruleset is safe to reuse across requests.
type Rule struct {
	Slug      string          `json:"slug"`
	Label     string          `json:"label"`
	FieldType model.FieldType `json:"fieldType"`
	Required  bool            `json:"required"`
}

// Validate checks a single submitted value against the rule. It returns a
// field-qualified ValidationError on the first violation.
func (r Rule) Validate(value any) error {
	switch r.FieldType.BaseKind() {
	case model.KindString:
		return r.validateString(value)
	case model.KindSequence:
		return r.validateSequence(value)
	case model.KindNumber:
		return r.validateNumber(value)
	case model.KindDate:
		return r.validateDate(value)
	case model.KindAny:
		if r.Required && value == nil {
			return apperrors.NewValidationError(r.Slug, "is required")
		}
		return nil
	}
	return nil
}

func (r Rule) validateString(value any) error {
	if value == nil {
		if r.Required {
			return apperrors.NewValidationError(r.Slug, "is required")
		}
		return nil
	}
	text, ok := value.(string)
	if !ok {
		return apperrors.NewValidationError(r.Slug, "must be a string")
	}
	if text == "" {
		if r.Required {
			return apperrors.NewValidationError(r.Slug, "is required")
		}
		return nil
	}
	if r.FieldType == model.FieldTypeURL {
		parsed, err := url.Parse(text)
		if err != nil || !parsed.IsAbs() {
			return apperrors.NewValidationError(r.Slug, "must be an absolute URL")
		}
	}
	return nil
}

// "Required" on a sequence means at least one element, not a particular set.
func (r Rule) validateSequence(value any) error {
	if value == nil {
		if r.Required {
			return apperrors.NewValidationError(r.Slug, "must have at least one entry")
		}
		return nil
	}
	length, ok := sequenceLength(value)
	if !ok {
		return apperrors.NewValidationError(r.Slug, "must be a list")
	}
	if r.Required && length == 0 {
		return apperrors.NewValidationError(r.Slug, "must have at least one entry")
	}
	return nil
}

func sequenceLength(value any) (int, bool) {
	switch v := value.(type) {
	case []any:
		return len(v), true
	case []string:
		return len(v), true
	case []model.Option:
		return len(v), true
	case []map[string]any:
		return len(v), true
	}
	return 0, false
}

// An empty string is an absent number, never zero.
func (r Rule) validateNumber(value any) error {
	if value == nil || value == "" {
		if r.Required {
			return apperrors.NewValidationError(r.Slug, "is required")
		}
		return nil
	}
	number, ok := asFloat(value)
	if !ok {
		return apperrors.NewValidationError(r.Slug, "must be a number")
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return apperrors.NewValidationError(r.Slug, "must be a finite number")
	}
	return nil
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		return parsed, err == nil
	}
	return 0, false
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// An absent date on an optional field is not an invalid date.
func (r Rule) validateDate(value any) error {
	if value == nil || value == "" {
		if r.Required {
			return apperrors.NewValidationError(r.Slug, "is required")
		}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return nil
			}
		}
		return apperrors.NewValidationError(r.Slug, fmt.Sprintf("%q is not a valid date", v))
	}
	return apperrors.NewValidationError(r.Slug, "must be a date")
}

// Ruleset is the composite validation derived from one user type config.
type Ruleset struct {
	Mode  Mode   `json:"mode"`
	Rules []Rule `json:"rules"`
}

// Validate runs every rule against the submitted dynamic values, stopping at
// the first violation. Absent keys are validated as nil so required fields
// cannot be skipped by omission.
func (rs Ruleset) Validate(values map[string]any) error {
	for _, rule := range rs.Rules {
		if err := rule.Validate(values[rule.Slug]); err != nil {
			return err
		}
	}
	return nil
}
