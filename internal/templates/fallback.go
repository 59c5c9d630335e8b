package templates

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// FallbackTitle heads the error document
const FallbackTitle = "Resume could not be generated"

// RenderFallback writes a single-page PDF stating that generation failed and why.
// It never panics; it returns a *FallbackError only when the page itself cannot be produced.
func RenderFallback(w io.Writer, templateID string, cause error, opts pdf.Options) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &FallbackError{Cause: fmt.Errorf("panic: %v", rec)}
		}
	}()

	const margin = 54.0
	page := layout.Letter
	width := page.Width - 2*margin
	ink := types.RGB{0.15, 0.15, 0.15}

	title := styles.ParagraphStyle{Name: "FallbackTitle", FontFamily: "Helvetica", FontStyle: "B", FontSize: 16, Leading: 22, TextColor: ink}
	body := styles.ParagraphStyle{Name: "FallbackBody", FontFamily: "Helvetica", FontSize: 10, Leading: 14, TextColor: ink}
	detail := body
	detail.FontFamily = "Courier"
	detail.FontSize = 9
	detail.Leading = 12

	if opts.Title == "" {
		opts.Title = FallbackTitle
	}
	s := pdf.NewSurface(page, opts)
	s.AddPage()
	s.SetFillColor(types.RGB{0.75, 0.2, 0.2})
	s.Rect(0, 0, page.Width, 10, true)

	y := margin
	s.DrawText(margin, y, width, FallbackTitle, title)
	y += title.Leading + 8

	message := "An unexpected error occurred while laying out this document. Please try again later."
	if templateID != "" {
		message = fmt.Sprintf("An unexpected error occurred while laying out this document with template %q. Please try again later.", templateID)
	}
	for _, line := range s.SplitText(message, body, width) {
		s.DrawText(margin, y, width, line, body)
		y += body.Leading
	}
	y += 10

	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	for _, line := range s.SplitText("Cause: "+reason, detail, width) {
		if y > page.Height-margin {
			break
		}
		s.DrawText(margin, y, width, line, detail)
		y += detail.Leading
	}

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		return &FallbackError{Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &FallbackError{Cause: err}
	}
	return nil
}
