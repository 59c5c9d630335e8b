// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/templates"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidID indicates a malformed path identifier
type ErrInvalidID struct {
	Value string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid id: %q", e.Value)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr      *ErrValidation
		idErr       *ErrInvalidID
		dataErr     *resume.ValidationError
		missingErr  *resume.MissingFieldError
		custErr     *templates.CustomizationError
		notFound    *templates.TemplateNotFoundError
		docNotFound *db.DocumentNotFoundError
		formatErr   *generator.UnsupportedFormatError
	)

	switch {
	case errors.As(err, &formatErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &notFound), errors.As(err, &docNotFound):
		return http.StatusNotFound
	case errors.As(err, &reqErr), errors.As(err, &idErr), errors.As(err, &missingErr),
		errors.As(err, &dataErr), errors.As(err, &custErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fieldErrors returns the per-field details carried by a data validation error
func fieldErrors(err error) []resume.FieldError {
	var missingErr *resume.MissingFieldError
	if errors.As(err, &missingErr) {
		var dataErr *resume.ValidationError
		if errors.As(missingErr.Unwrap(), &dataErr) {
			return dataErr.Fields
		}
	}
	var dataErr *resume.ValidationError
	if errors.As(err, &dataErr) {
		return dataErr.Fields
	}
	return nil
}

// requestError converts validator output into an ErrValidation for the first failing field
func requestError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: validationMessage(fe)}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " item(s)"
	case "max":
		return "must have at most " + fe.Param() + " item(s)"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
