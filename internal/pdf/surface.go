// Package pdf provides the PDF drawing surface used by the layout engine and helpers
// to inspect generated documents.
package pdf

import (
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jung-kurt/gofpdf"
)

// DefaultCreator is written to the document info dictionary
const DefaultCreator = "resume-builder"

// Options configures document-level settings
type Options struct {
	Compress     bool
	Title        string
	Author       string
	Subject      string
	Creator      string
	CreationDate time.Time
}

// Surface is a gofpdf document measured in points with a top-left origin.
// It implements layout.Canvas.
type Surface struct {
	doc  *gofpdf.Fpdf
	tr   func(string) string
	page layout.PageSize
}

var _ layout.Canvas = (*Surface)(nil)

// NewSurface creates an empty document for the given page size
func NewSurface(page layout.PageSize, opts Options) *Surface {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetCellMargin(0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(opts.Compress)

	creator := opts.Creator
	if creator == "" {
		creator = DefaultCreator
	}
	doc.SetCreator(creator, false)
	if opts.Title != "" {
		doc.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		doc.SetAuthor(opts.Author, true)
	}
	if opts.Subject != "" {
		doc.SetSubject(opts.Subject, true)
	}
	if !opts.CreationDate.IsZero() {
		doc.SetCreationDate(opts.CreationDate)
	}
	doc.SetFont("Helvetica", "", 10)

	return &Surface{
		doc:  doc,
		tr:   doc.UnicodeTranslatorFromDescriptor(""),
		page: page,
	}
}

// AddPage starts a new page
func (s *Surface) AddPage() {
	s.doc.AddPage()
}

// PageSize returns the page size the surface was created with
func (s *Surface) PageSize() layout.PageSize {
	return s.page
}

// PageCount returns the number of pages added so far
func (s *Surface) PageCount() int {
	return s.doc.PageCount()
}

// SetFillColor sets the color used by filled rectangles
func (s *Surface) SetFillColor(c types.RGB) {
	r, g, b := c.Bytes()
	s.doc.SetFillColor(r, g, b)
}

// SetDrawColor sets the stroke color
func (s *Surface) SetDrawColor(c types.RGB) {
	r, g, b := c.Bytes()
	s.doc.SetDrawColor(r, g, b)
}

// SetLineWidth sets the stroke width in points
func (s *Surface) SetLineWidth(w float64) {
	s.doc.SetLineWidth(w)
}

// Rect draws a rectangle, filled or outlined
func (s *Surface) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	s.doc.Rect(x, y, w, h, style)
}

// Line draws a straight line
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.doc.Line(x1, y1, x2, y2)
}

// DrawText writes one line of text in a cell of the given width, one line-height tall
func (s *Surface) DrawText(x, y, width float64, text string, style styles.ParagraphStyle) {
	s.setFont(style)
	r, g, b := style.TextColor.Bytes()
	s.doc.SetTextColor(r, g, b)
	align := style.Align
	if align == "" {
		align = styles.AlignLeft
	}
	s.doc.SetXY(x, y)
	s.doc.CellFormat(width, style.LineHeight(), s.tr(text), "", 0, align, false, 0, "")
}

// SplitText wraps text to width using the style's font metrics. Line breaks in text
// are kept; blank lines are dropped. Words wider than width are broken by character.
func (s *Surface) SplitText(text string, style styles.ParagraphStyle, width float64) []string {
	s.setFont(style)

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if s.width(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			if s.width(word) <= width {
				line = word
				continue
			}
			parts := s.breakWord(word, width)
			lines = append(lines, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Err returns the first error recorded by the underlying document
func (s *Surface) Err() error {
	return s.doc.Error()
}

// Output writes the finished document
func (s *Surface) Output(w io.Writer) error {
	if err := s.doc.Error(); err != nil {
		return &RenderError{Message: "document is in an error state", Cause: err}
	}
	if err := s.doc.Output(w); err != nil {
		return &RenderError{Message: "failed to write document", Cause: err}
	}
	return nil
}

func (s *Surface) setFont(style styles.ParagraphStyle) {
	family := style.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	size := style.FontSize
	if size <= 0 {
		size = types.DefaultNormalSize
	}
	s.doc.SetFont(family, style.FontStyle, size)
}

func (s *Surface) width(text string) float64 {
	return s.doc.GetStringWidth(s.tr(text))
}

// breakWord splits a single overlong word into pieces no wider than width
func (s *Surface) breakWord(word string, width float64) []string {
	var parts []string
	current := ""
	for _, r := range word {
		next := current + string(r)
		if current != "" && s.width(next) > width {
			parts = append(parts, current)
			next = string(r)
		}
		current = next
	}
	if current != "" || len(parts) == 0 {
		parts = append(parts, current)
	}
	return parts
}
