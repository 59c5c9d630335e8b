// Package generator provides the document generation façade: it validates resume input,
// resolves a template and drives the document assembler to a PDF.
package generator

import "fmt"

// UnsupportedFormatError is returned for output formats other than PDF
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q: only pdf is implemented", e.Format)
}

// GenerationError wraps an unexpected failure after validation and template lookup
type GenerationError struct {
	TemplateID string
	Stage      string
	Cause      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for template %q at %s: %v", e.TemplateID, e.Stage, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
