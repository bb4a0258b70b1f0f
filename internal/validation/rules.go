// Package validation provides request validation rules shared by the HTTP DTOs.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/linkcodec/internal/errors"
)

// ErrValidation is the sentinel every request validation failure wraps.
var ErrValidation = apperrors.Define(apperrors.ErrInvalidInput, "validation_error", "validation failed")

// WrapValidationError wraps jellydator validation errors in ErrValidation, keeping the
// per-field messages.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// NoWhitespace rejects leading or trailing whitespace, typically left over from copying
// a token out of a URL.
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
