// Package errors provides the error kinds shared by every layer and the machine-readable
// codes API clients see. Codec and link errors are defined on top of a kind so handlers
// can pick the HTTP status with errors.Is and the response code with Code.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNotFound indicates the requested resource does not exist (e.g., an unknown link resource).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates caller-supplied data is invalid: a bad identifier,
	// a malformed token, or a token that does not decrypt to an identifier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMisconfigured indicates the process was started with unusable configuration.
	ErrMisconfigured = errors.New("misconfigured")
)

// codedError is a sentinel of a given kind with a stable code.
type codedError struct {
	kind    error
	code    string
	message string
}

func (e *codedError) Error() string { return e.message }

func (e *codedError) Unwrap() error { return e.kind }

// Define returns a new sentinel error of the given kind. Its message is message alone;
// code is what Code reports for any error wrapping it.
func Define(kind error, code, message string) error {
	return &codedError{kind: kind, code: code, message: message}
}

// Code returns the code of the innermost-defined sentinel in err's chain, or "" when err
// wraps none.
func Code(err error) string {
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ""
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
