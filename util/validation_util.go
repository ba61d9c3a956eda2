// util/validation_util.go

package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// ValidateAttribute enforces the registry's structural invariants: a
// well-formed slug, a name, a tag inside the closed field type set, and no
// declared options on image_array attributes (their values come exclusively
// from the file-management collaborator).
func (v *ValidationUtil) ValidateAttribute(attribute model.Attribute) error {
	if attribute.Slug == "" {
		return apperrors.NewValidationError("slug", "is required")
	}
	if !slugPattern.MatchString(attribute.Slug) {
		return apperrors.NewValidationError("slug", "must be lowercase letters, digits, '-' or '_'")
	}
	if attribute.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if !attribute.FieldType.Valid() {
		return apperrors.NewValidationError("fieldType", fmt.Sprintf("%q is not a known field type", attribute.FieldType))
	}
	if attribute.FieldType == model.FieldTypeImageArray && len(attribute.DefaultOptions) > 0 {
		return apperrors.NewValidationError("defaultOptions", "must be empty for image_array attributes")
	}
	return nil
}

// ValidateUserType checks a composed schema against the live registry state.
// known must hold the attributes currently registered for the binding slugs;
// an unresolved slug rejects the whole config so no partial schema persists.
func (v *ValidationUtil) ValidateUserType(userType model.UserTypeConfig, known map[string]model.Attribute) error {
	if userType.Slug == "" {
		return apperrors.NewValidationError("slug", "is required")
	}
	if !slugPattern.MatchString(userType.Slug) {
		return apperrors.NewValidationError("slug", "must be lowercase letters, digits, '-' or '_'")
	}
	if userType.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if !userType.ParentType.Valid() {
		return apperrors.NewValidationError("parentType", fmt.Sprintf("%q is not a known parent type", userType.ParentType))
	}
	if len(userType.Fields) == 0 {
		return apperrors.NewValidationError("fields", "must contain at least one field binding")
	}
	for i, binding := range userType.Fields {
		if binding.AttributeSlug == "" {
			return apperrors.NewValidationError(fmt.Sprintf("fields[%d].attributeSlug", i), "is required")
		}
		if _, ok := known[binding.AttributeSlug]; !ok {
			return apperrors.NewValidationError(
				fmt.Sprintf("fields[%d].attributeSlug", i),
				fmt.Sprintf("unknown attribute %q", binding.AttributeSlug))
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateJob(job model.JobPosting) error {
	if job.Title == "" {
		return apperrors.NewValidationError("title", "is required")
	}
	if job.AgencyID == "" {
		return apperrors.NewValidationError("agency_id", "is required")
	}
	return nil
}

func (v *ValidationUtil) ValidateAnnouncement(announcement model.Announcement) error {
	if announcement.Title == "" {
		return apperrors.NewValidationError("title", "is required")
	}
	if announcement.Body == "" {
		return apperrors.NewValidationError("body", "is required")
	}
	if !announcement.Audience.Valid() {
		return apperrors.NewValidationError("audience", fmt.Sprintf("%q is not a known audience", announcement.Audience))
	}
	return nil
}

// ValidateEmail exposes the format check for callers outside the generated
// core rules (e.g. search filters).
func (v *ValidationUtil) ValidateEmail(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return apperrors.NewValidationError("email", "must be a valid email address")
	}
	return nil
}
