// dynamicform/core.go
package dynamicform

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/scoutdesk/backoffice/errors"
	"github.com/scoutdesk/backoffice/model"
)

var validate = validator.New()

const passwordMinLength = 8

// ValidateCore applies the fixed rules every profile must satisfy regardless
// of its schema: email format, required names and country, and the
// mode-dependent password rule. It expects the merged core view, with
// "password" carrying the plaintext only when the caller is changing it.
func ValidateCore(values map[string]any, mode Mode) error {
	email, _ := values[model.CoreEmail].(string)
	if email == "" {
		return apperrors.NewValidationError(model.CoreEmail, "is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return apperrors.NewValidationError(model.CoreEmail, "must be a valid email address")
	}

	for _, field := range []string{model.CoreFirstName, model.CoreLastName, model.CoreCountry} {
		if text, _ := values[field].(string); text == "" {
			return apperrors.NewValidationError(field, "is required")
		}
	}

	password, _ := values[model.CorePassword].(string)
	switch mode {
	case ModeCreate:
		if password == "" {
			return apperrors.NewValidationError(model.CorePassword, "is required")
		}
		if len(password) < passwordMinLength {
			return apperrors.NewValidationError(model.CorePassword, "must be at least 8 characters")
		}
	case ModeEdit:
		if password != "" && len(password) < passwordMinLength {
			return apperrors.NewValidationError(model.CorePassword, "must be at least 8 characters")
		}
	}

	return nil
}
