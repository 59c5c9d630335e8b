// Package layout provides named page regions, layout blocks and the pagination
// primitive that flows blocks through regions across pages.
package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// PointsPerInch converts inch margins to PDF points
const PointsPerInch = 72.0

// Region identifiers used by the built-in layouts
const (
	RegionHeader  = "header"
	RegionBody    = "body"
	RegionLeft    = "left"
	RegionRight   = "right"
	RegionSidebar = "sidebar"
	RegionMain    = "main"
)

// Layout defaults
const (
	DefaultLeftRatio    = 0.65
	DefaultSidebarRatio = 0.30
	DefaultGutter       = 18.0
)

// PageSize is a page size in points
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Supported page sizes
var (
	Letter = PageSize{Name: "letter", Width: 612, Height: 792}
	A4     = PageSize{Name: "a4", Width: 595.28, Height: 841.89}
)

// PageSizeByName resolves "letter" or "a4" (case-insensitive). Empty means letter.
func PageSizeByName(name string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Letter.Name:
		return Letter, nil
	case A4.Name:
		return A4, nil
	default:
		return PageSize{}, &LayoutError{Message: fmt.Sprintf("unknown page size %q", name)}
	}
}

// Margins are page margins in points
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// MarginsFromInches converts template margins (inches) to points
func MarginsFromInches(m types.Margins) Margins {
	return Margins{
		Left:   m.Left * PointsPerInch,
		Right:  m.Right * PointsPerInch,
		Top:    m.Top * PointsPerInch,
		Bottom: m.Bottom * PointsPerInch,
	}
}

// Region is a named rectangle on the page, top-left origin, in points
type Region struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RegionTemplate is the ordered set of regions repeated on every page of a document.
// It is built once per document and never modified.
type RegionTemplate struct {
	Name    string
	Page    PageSize
	Margins Margins
	Regions []Region
}

// Region returns the region with the given id
func (t RegionTemplate) Region(id string) (Region, bool) {
	for _, r := range t.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Validate checks that the template has at least one usable region
func (t RegionTemplate) Validate() error {
	if len(t.Regions) == 0 {
		return &LayoutError{Message: fmt.Sprintf("region template %q has no regions", t.Name)}
	}
	for _, r := range t.Regions {
		if r.Width <= 0 || r.Height <= 0 {
			return &LayoutError{Message: fmt.Sprintf("region %q has no usable area (%.1fx%.1f)", r.ID, r.Width, r.Height)}
		}
	}
	return nil
}

func contentWidth(page PageSize, m Margins) float64 {
	return page.Width - m.Left - m.Right
}

func contentHeight(page PageSize, m Margins) float64 {
	return page.Height - m.Top - m.Bottom
}

// SingleColumn is a full-width header region above a full-width body region
func SingleColumn(page PageSize, m Margins, headerHeight float64) RegionTemplate {
	w := contentWidth(page, m)
	return RegionTemplate{
		Name:    types.LayoutSingleColumn,
		Page:    page,
		Margins: m,
		Regions: []Region{
			{ID: RegionHeader, X: m.Left, Y: m.Top, Width: w, Height: headerHeight},
			{ID: RegionBody, X: m.Left, Y: m.Top + headerHeight, Width: w, Height: contentHeight(page, m) - headerHeight},
		},
	}
}

// TwoColumnWithHeader is a full-width header with the remaining height split into a
// left and a right column. leftRatio is the left column's share of the usable width.
func TwoColumnWithHeader(page PageSize, m Margins, headerHeight, leftRatio, gutter float64) RegionTemplate {
	if leftRatio <= 0 || leftRatio >= 1 {
		leftRatio = DefaultLeftRatio
	}
	if gutter < 0 {
		gutter = DefaultGutter
	}
	w := contentWidth(page, m)
	leftW := (w - gutter) * leftRatio
	rightW := w - gutter - leftW
	bodyY := m.Top + headerHeight
	bodyH := contentHeight(page, m) - headerHeight

	return RegionTemplate{
		Name:    types.LayoutTwoColumn,
		Page:    page,
		Margins: m,
		Regions: []Region{
			{ID: RegionHeader, X: m.Left, Y: m.Top, Width: w, Height: headerHeight},
			{ID: RegionLeft, X: m.Left, Y: bodyY, Width: leftW, Height: bodyH},
			{ID: RegionRight, X: m.Left + leftW + gutter, Y: bodyY, Width: rightW, Height: bodyH},
		},
	}
}

// Sidebar is a full-height sidebar on the left and a full-height main region on the right
func Sidebar(page PageSize, m Margins, sidebarRatio, gutter float64) RegionTemplate {
	if sidebarRatio <= 0 || sidebarRatio >= 1 {
		sidebarRatio = DefaultSidebarRatio
	}
	if gutter < 0 {
		gutter = DefaultGutter
	}
	w := contentWidth(page, m)
	h := contentHeight(page, m)
	sideW := (w - gutter) * sidebarRatio
	mainW := w - gutter - sideW

	return RegionTemplate{
		Name:    types.LayoutSidebar,
		Page:    page,
		Margins: m,
		Regions: []Region{
			{ID: RegionSidebar, X: m.Left, Y: m.Top, Width: sideW, Height: h},
			{ID: RegionMain, X: m.Left + sideW + gutter, Y: m.Top, Width: mainW, Height: h},
		},
	}
}
