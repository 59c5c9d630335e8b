package pdf

import "fmt"

// RenderError represents a failure writing a PDF document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// InspectError represents a failure reading back a PDF document
type InspectError struct {
	Message string
	Cause   error
}

func (e *InspectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf inspect error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf inspect error: %s", e.Message)
}

func (e *InspectError) Unwrap() error {
	return e.Cause
}
