// Package templates provides the per-layout document assemblers, the document state
// machine that drives them and the template registry.
package templates

import "fmt"

// TemplateNotFoundError is returned for an unknown template id
type TemplateNotFoundError struct {
	ID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %q", e.ID)
}

// RegistrationError represents an invalid registration
type RegistrationError struct {
	ID      string
	Message string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cannot register template %q: %s", e.ID, e.Message)
}

// CustomizationError represents overrides that cannot be applied to a template
type CustomizationError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *CustomizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot customize template %q: %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("cannot customize template %q: %s", e.TemplateID, e.Message)
}

func (e *CustomizationError) Unwrap() error {
	return e.Cause
}

// StateError is returned when a document transition is called out of order
type StateError struct {
	Op    string
	State State
	Want  State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: document is %s, expected %s", e.Op, e.State, e.Want)
}

// BuildError represents a failure while constructing or paginating blocks
type BuildError struct {
	Stage string
	Cause error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in %s: %v", e.Stage, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// FallbackError is returned when even the minimal error document cannot be produced
type FallbackError struct {
	Cause error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("fallback document failed: %v", e.Cause)
}

func (e *FallbackError) Unwrap() error {
	return e.Cause
}
