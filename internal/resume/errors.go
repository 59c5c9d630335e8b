// Package resume provides validation and normalization of caller-supplied resume data.
package resume

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when resume input is malformed or incomplete
type ValidationError struct {
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error: ")
	sb.WriteString(e.Message)
	for _, f := range e.Fields {
		sb.WriteString(fmt.Sprintf("; %s: %s", f.Field, f.Message))
	}
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// MissingFieldError names required fields that are absent or empty.
// It unwraps to a *ValidationError so callers can treat both alike.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldError) Unwrap() error {
	fields := make([]FieldError, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, FieldError{Field: f, Message: "is required"})
	}
	return &ValidationError{Message: "missing required fields", Fields: fields}
}
