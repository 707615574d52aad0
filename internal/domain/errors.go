package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo, store, and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed record id).
// Handlers should map this to HTTP 422 Unprocessable Entity.
// Construct instances with Validationf so the human-readable message stays
// recoverable via ValidationMessage.
var ErrValidation = errors.New("validation error")

// validationError pairs ErrValidation with the message shown to the caller.
// errors.Is(err, ErrValidation) matches through Unwrap.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return "validation error: " + e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

// Validationf returns a validation error carrying a formatted human-readable
// message.
func Validationf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// ValidationMessage returns the message of the nearest validation error in
// err's chain. Falls back to err.Error() for errors not built with
// Validationf.
func ValidationMessage(err error) string {
	var ve *validationError
	if errors.As(err, &ve) {
		return ve.msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
