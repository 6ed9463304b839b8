package documents

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates the requested document kind is not generated by this service.
var ErrUnknownKind = errors.New("unknown document kind")

// ErrRendererDisabled indicates binary rendering was requested without a renderer configured.
var ErrRendererDisabled = errors.New("document renderer is not configured")

// ValidationError reports required identity data missing from a mandate. It is raised
// before any formatting or template lookup happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
