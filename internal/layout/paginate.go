package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/styles"
)

// bulletGap is the distance between a bullet glyph and its text
const bulletGap = 8.0

// Measurer wraps text to a width for a given style
type Measurer interface {
	SplitText(text string, style styles.ParagraphStyle, width float64) []string
}

// Placement is a block, or part of one, positioned inside a region
type Placement struct {
	Block     Block
	Region    string
	X         float64
	Y         float64
	Width     float64
	Lines     []string
	Continued bool
}

// Height returns the vertical extent of the placed lines
func (p Placement) Height() float64 {
	return float64(len(p.Lines)) * p.Block.Style.LineHeight()
}

// Page is one laid-out page. Every page of a document carries the same template.
type Page struct {
	Number     int
	Template   RegionTemplate
	Placements []Placement
}

// Paginate flows blocks through the template's regions in declared order. When a block does
// not fit the flow advances to the next region, and past the last region a new page starts
// with the same template. A RegionBreak advances unconditionally. A block taller than an
// empty region is split line by line.
func Paginate(blocks []Block, tmpl RegionTemplate, m Measurer) ([]Page, error) {
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	f := &flow{tmpl: tmpl, measurer: m}
	f.newPage()

	for i, b := range blocks {
		if err := f.place(b); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}

	// a trailing region break can open a page that never receives content
	if n := len(f.pages); n > 1 && len(f.pages[n-1].Placements) == 0 {
		f.pages = f.pages[:n-1]
	}
	return f.pages, nil
}

type flow struct {
	tmpl     RegionTemplate
	measurer Measurer
	pages    []Page
	region   int
	cursor   float64
	used     bool
}

func (f *flow) newPage() {
	f.pages = append(f.pages, Page{Number: len(f.pages) + 1, Template: f.tmpl})
	f.region = 0
	f.cursor = 0
	f.used = false
}

func (f *flow) advance() {
	f.region++
	if f.region >= len(f.tmpl.Regions) {
		f.newPage()
		return
	}
	f.cursor = 0
	f.used = false
}

func (f *flow) current() Region {
	return f.tmpl.Regions[f.region]
}

func (f *flow) place(b Block) error {
	switch b.Kind {
	case KindRegionBreak:
		f.advance()
		return nil
	case KindSpacer:
		if !f.used {
			return nil
		}
		if f.cursor+b.Height > f.current().Height {
			f.advance()
			return nil
		}
		f.cursor += b.Height
		return nil
	}

	r := f.current()
	x := r.X + b.Style.LeftIndent
	width := r.Width - b.Style.LeftIndent
	if width <= 0 {
		return &LayoutError{Message: fmt.Sprintf("region %q is narrower than the indent of style %q", r.ID, b.Style.Name)}
	}

	lines := f.measurer.SplitText(b.Text, b.Style, width)
	if len(lines) == 0 {
		return nil
	}

	lh := b.Style.LineHeight()
	before := 0.0
	if f.used {
		before = b.Style.SpaceBefore
	}
	need := before + float64(len(lines))*lh
	if b.Kind == KindHeading && f.used {
		need += lh
	}

	if f.cursor+need <= r.Height {
		f.put(b, r, x, width, f.cursor+before, lines)
		return nil
	}

	if f.used {
		f.advance()
		return f.place(b)
	}

	fit := int(math.Floor(r.Height / lh))
	if fit < 1 {
		return &LayoutError{Message: fmt.Sprintf("region %q (%.1fpt) is shorter than one line of style %q", r.ID, r.Height, b.Style.Name)}
	}
	if fit > len(lines) {
		fit = len(lines)
	}
	f.put(b, r, x, width, 0, lines[:fit])

	rest := b
	rest.Text = strings.Join(lines[fit:], "\n")
	rest.continued = true
	f.advance()
	return f.place(rest)
}

func (f *flow) put(b Block, r Region, x, width, y float64, lines []string) {
	p := &f.pages[len(f.pages)-1]
	p.Placements = append(p.Placements, Placement{
		Block:     b,
		Region:    r.ID,
		X:         x,
		Y:         r.Y + y,
		Width:     width,
		Lines:     lines,
		Continued: b.continued,
	})
	f.cursor = y + float64(len(lines))*b.Style.LineHeight() + b.Style.SpaceAfter
	f.used = true
}
