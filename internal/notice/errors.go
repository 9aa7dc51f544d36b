package notice

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no notice exists for an id, or the id is
// not a syntactically valid ObjectID.
var ErrNotFound = errors.New("Notice not found")

// FieldError names a single invalid payload field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError rejects a create/update/status payload. It carries every
// violation found rather than only the first.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "Notice validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}
