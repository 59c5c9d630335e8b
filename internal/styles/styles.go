// Package styles provides per-template typography, color and spacing definitions.
package styles

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Style roles a section renderer may ask for
const (
	RoleTitle          = "title"
	RoleContact        = "contact"
	RoleSectionHeading = "section_heading"
	RoleItemTitle      = "item_title"
	RoleItemInfo       = "item_info"
	RoleBody           = "body"
	RoleBullet         = "bullet"
	RoleSidebarHeading = "sidebar_heading"
	RoleSidebarBody    = "sidebar_body"
)

// Text alignment values understood by the PDF backend
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// BulletGlyph prefixes bullet items
const BulletGlyph = "•"

// ParagraphStyle describes how one kind of text is set
type ParagraphStyle struct {
	Name        string
	FontFamily  string // core font: Helvetica, Times or Courier
	FontStyle   string // "", "B", "I" or "BI"
	FontSize    float64
	Leading     float64
	TextColor   types.RGB
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
	Align       string
}

// LineHeight returns the leading, or 1.2 times the font size when unset
func (s ParagraphStyle) LineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.FontSize * 1.2
}

// StyleSet is the full set of styles for one template
type StyleSet struct {
	Name           string
	Title          ParagraphStyle
	Contact        ParagraphStyle
	SectionHeading ParagraphStyle
	ItemTitle      ParagraphStyle
	ItemInfo       ParagraphStyle
	Body           ParagraphStyle
	Bullet         ParagraphStyle
	SidebarHeading ParagraphStyle
	SidebarBody    ParagraphStyle
}

// Get returns the style for role, falling back to Body for unknown roles
func (s *StyleSet) Get(role string) ParagraphStyle {
	switch role {
	case RoleTitle:
		return s.Title
	case RoleContact:
		return s.Contact
	case RoleSectionHeading:
		return s.SectionHeading
	case RoleItemTitle:
		return s.ItemTitle
	case RoleItemInfo:
		return s.ItemInfo
	case RoleBullet:
		return s.Bullet
	case RoleSidebarHeading:
		return s.SidebarHeading
	case RoleSidebarBody:
		return s.SidebarBody
	default:
		return s.Body
	}
}

// Builder derives a StyleSet from template metadata
type Builder func(types.TemplateMetadata) *StyleSet

// CoreFamily maps a font name such as "Times-Bold" or "sans-serif" onto a PDF core
// font family and an fpdf style string. Unknown families fall back to Helvetica.
func CoreFamily(name string) (family, style string) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if strings.Contains(lower, "bold") {
		style += "B"
	}
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		style += "I"
	}

	base := lower
	if i := strings.Index(base, "-"); i >= 0 && base != "sans-serif" {
		base = base[:i]
	}

	switch base {
	case "times", "serif", "georgia", "garamond":
		return "Times", style
	case "courier", "mono", "monospace":
		return "Courier", style
	default:
		return "Helvetica", style
	}
}

// mergeStyle combines two fpdf style strings into canonical "B", "I" or "BI" form
func mergeStyle(a, b string) string {
	combined := a + b
	out := ""
	if strings.Contains(combined, "B") {
		out += "B"
	}
	if strings.Contains(combined, "I") {
		out += "I"
	}
	return out
}
