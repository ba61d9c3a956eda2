// dynamicform/generator.go
package dynamicform

import (
	"fmt"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

// FieldDescriptor tells a client how to render one bound field.
type FieldDescriptor struct {
	Slug      string          `json:"slug"`
	Label     string          `json:"label"`
	FieldType model.FieldType `json:"fieldType"`
	Required  bool            `json:"required"`
	Options   []model.Option  `json:"options,omitempty"`
	Initial   any             `json:"initial"`
}

// Section groups descriptors under the binding's free-text section key.
type Section struct {
	Name   string            `json:"name"`
	Fields []FieldDescriptor `json:"fields"`
}

// Form is the full render descriptor for one user type and mode.
type Form struct {
	UserType string    `json:"userType"`
	Mode     Mode      `json:"mode"`
	Sections []Section `json:"sections"`
}

// Generate derives the render descriptor and validation ruleset for a user
// type config. attrs must hold every attribute the config's bindings
// reference; a binding whose slug does not resolve is a structural error,
// not a normal absence. current is the entity's merged view on edit, nil on
// create; fields added to the schema after the entity was created fall back
// to their type default.
//
// Sections keep first-seen order and bindings keep declaration order within
// a section, respecting operator intent. In edit mode image_array fields are
// left out entirely: file arrays are only mutable through the external
// file-management collaborator, never through this form's submit path.
func Generate(
	cfg model.UserTypeConfig,
	attrs map[string]model.Attribute,
	lists model.StaticLists,
	mode Mode,
	current map[string]any,
) (*Form, Ruleset, error) {
	form := &Form{UserType: cfg.Slug, Mode: mode}
	ruleset := Ruleset{Mode: mode}
	sectionIndex := make(map[string]int)

	for _, binding := range cfg.Fields {
		attr, ok := attrs[binding.AttributeSlug]
		if !ok {
			return nil, Ruleset{}, fmt.Errorf("%w: user type %q references unknown attribute %q",
				apperrors.ErrSchemaIntegrity, cfg.Slug, binding.AttributeSlug)
		}

		if mode == ModeEdit && attr.FieldType == model.FieldTypeImageArray {
			continue
		}

		descriptor := FieldDescriptor{
			Slug:      binding.AttributeSlug,
			Label:     binding.Label,
			FieldType: attr.FieldType,
			Required:  binding.Required,
			Initial:   initialValue(binding.AttributeSlug, attr.FieldType, current),
		}
		if options := ResolveOptions(attr.DefaultOptions, lists); len(options) > 0 {
			descriptor.Options = options
		}

		index, seen := sectionIndex[binding.Section]
		if !seen {
			index = len(form.Sections)
			sectionIndex[binding.Section] = index
			form.Sections = append(form.Sections, Section{Name: binding.Section})
		}
		form.Sections[index].Fields = append(form.Sections[index].Fields, descriptor)

		if !model.IsCoreField(binding.AttributeSlug) {
			ruleset.Rules = append(ruleset.Rules, Rule{
				Slug:      binding.AttributeSlug,
				Label:     binding.Label,
				FieldType: attr.FieldType,
				Required:  binding.Required,
			})
		}
	}

	return form, ruleset, nil
}

func initialValue(slug string, ft model.FieldType, current map[string]any) any {
	if current != nil {
		if value, ok := current[slug]; ok && value != nil {
			return value
		}
	}
	return defaultValueFor(ft)
}

func defaultValueFor(ft model.FieldType) any {
	switch ft {
	case model.FieldTypeBoolean:
		return false
	case model.FieldTypeArray, model.FieldTypeImageArray:
		return []any{}
	default:
		return ""
	}
}
