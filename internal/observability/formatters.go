// Package observability provides Prometheus metrics for document generation and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTemplates outputs the registered templates, marking the default
func (p *Printer) PrintTemplates(entries []*templates.Entry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		marker := " "
		if e.Default {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-22s %s\n", marker, e.ID, e.Layout()))
		if e.Metadata.UI != nil && e.Metadata.UI.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", e.Metadata.UI.Description))
		}
		if e.BaseID != "" {
			sb.WriteString(fmt.Sprintf("    based on %s\n", e.BaseID))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("TEMPLATES (%d)", len(entries)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplate outputs the resolved metadata of one template
func (p *Printer) PrintTemplate(e *templates.Entry) {
	if e == nil {
		return
	}
	m := e.Metadata.WithDefaults()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", e.ID))
	sb.WriteString(fmt.Sprintf("Layout:   %s\n", m.Layout))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", m.Version))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Primary:    %s\n", hex(m.PrimaryColor())))
	sb.WriteString(fmt.Sprintf("Secondary:  %s\n", hex(m.SecondaryColor())))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Name:     %s %gpt\n", m.Fonts.Name.Family, m.Fonts.Name.Size))
	sb.WriteString(fmt.Sprintf("Heading:  %s %gpt\n", m.Fonts.Heading.Family, m.Fonts.Heading.Size))
	sb.WriteString(fmt.Sprintf("Normal:   %s %gpt\n", m.Fonts.Normal.Family, m.Fonts.Normal.Size))
	sb.WriteString(fmt.Sprintf("Margins:  %gin %gin %gin %gin", m.Margins.Top, m.Margins.Right, m.Margins.Bottom, m.Margins.Left))

	p.printBox("TEMPLATE", sb.String())
}

// Generation summarizes one generate call for PrintGeneration
type Generation struct {
	TemplateID string
	Path       string
	Bytes      int
	Pages      int
	Duration   time.Duration
	Degraded   bool
	Cause      error
}

// PrintGeneration outputs a summary of a generated document
func (p *Printer) PrintGeneration(g Generation) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", g.TemplateID))
	if g.Path != "" {
		sb.WriteString(fmt.Sprintf("Output:   %s\n", g.Path))
	}
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", g.Pages))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", g.Bytes))
	sb.WriteString(fmt.Sprintf("Took:     %s", g.Duration.Round(time.Millisecond)))
	if g.Degraded {
		sb.WriteString("\n\n⚠ fallback document written\n")
		if g.Cause != nil {
			sb.WriteString(fmt.Sprintf("  %s", g.Cause))
		}
	}

	title := "DOCUMENT GENERATED"
	if g.Degraded {
		title = "DOCUMENT DEGRADED"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFieldErrors outputs validation problems, or a success box when there are none
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFieldErrors(fields []string, messages []string) {
	if len(fields) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME DATA IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(fields)))
	count := min(len(fields), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fields[i]))
		if i < len(messages) && messages[i] != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", messages[i]))
		}
	}
	if len(fields) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(fields)-count))
	}

	p.printBox("VALIDATION ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInspection outputs the page count and the first lines of extracted text
func (p *Printer) PrintInspection(path string, pages int, text string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", path))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", pages))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		sb.WriteString("\n")
		count := min(len(lines), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
		}
		if len(lines) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more lines\n", len(lines)-count))
		}
	}

	p.printBox("PDF INSPECTION", strings.TrimSuffix(sb.String(), "\n"))
}

func hex(c types.RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
