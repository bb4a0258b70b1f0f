package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/linkcodec/internal/errors"
)

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "no whitespace",
			input:     "a41d62923b770a085eabd0c9a10740a1",
			shouldErr: false,
		},
		{
			name:      "leading whitespace",
			input:     " a41d62923b770a085eabd0c9a10740a1",
			shouldErr: true,
		},
		{
			name:      "trailing whitespace",
			input:     "a41d62923b770a085eabd0c9a10740a1 ",
			shouldErr: true,
		},
		{
			name:      "both leading and trailing",
			input:     " a41d62923b770a085eabd0c9a10740a1 ",
			shouldErr: true,
		},
		{
			name:      "internal spaces allowed",
			input:     "a41d 6292",
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "a41d 6292",
			input:     "a41d62923b770a085eabd0c9a10740a1",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "only tabs",
			input:     "\t\t",
			shouldErr: true,
		},
		{
			name:      "only newlines",
			input:     "\n\n",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error returns nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "wraps validation error",
			err:      validation.Errors{"token": validation.ErrRequired},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapValidationError(tt.err)
			if tt.expected {
				assert.Error(t, result)
				assert.Contains(t, result.Error(), "token: cannot be blank")
				assert.ErrorIs(t, result, ErrValidation)
				assert.ErrorIs(t, result, apperrors.ErrInvalidInput)
				assert.Equal(t, "validation_error", apperrors.Code(result))
			} else {
				assert.NoError(t, result)
			}
		})
	}
}
