// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Layout kinds understood by the page layout engine
const (
	LayoutSingleColumn = "single-column"
	LayoutTwoColumn    = "two-column"
	LayoutSidebar      = "sidebar"
)

// RGB is a color with components in the 0..1 range
type RGB [3]float64

// UnmarshalJSON accepts [r,g,b] in 0..1 or 0..255, or a "#rrggbb" hex string
func (c *RGB) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseHexColor(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a hex string or an array of 3 numbers: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(parts))
	}
	scale := 1.0
	for _, p := range parts {
		if p > 1 {
			scale = 255
		}
	}
	for i, p := range parts {
		v := p / scale
		if v < 0 || v > 1 {
			return fmt.Errorf("color component %d out of range: %v", i, p)
		}
		c[i] = v
	}
	return nil
}

// Bytes returns the color as 0..255 integer components
func (c RGB) Bytes() (r, g, b int) {
	return int(c[0]*255 + 0.5), int(c[1]*255 + 0.5), int(c[2]*255 + 0.5)
}

// Tint mixes the color with white; amount 0 keeps the color, 1 yields white
func (c RGB) Tint(amount float64) RGB {
	return RGB{
		c[0] + (1-c[0])*amount,
		c[1] + (1-c[1])*amount,
		c[2] + (1-c[2])*amount,
	}
}

// ParseHexColor parses "#rrggbb" or "rrggbb"
func ParseHexColor(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c RGB
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		c[i] = float64(v) / 255
	}
	return c, nil
}

// TemplateMetadata describes the visual parameters of a template.
// Nil sections are filled from DefaultMetadata by WithDefaults.
type TemplateMetadata struct {
	Colors  *Colors  `json:"colors,omitempty"`
	Fonts   *Fonts   `json:"fonts,omitempty"`
	Margins *Margins `json:"margins,omitempty"`
	Layout  string   `json:"layout,omitempty"`
	UI      *UI      `json:"ui,omitempty"`
	Version string   `json:"version,omitempty"`
}

// Colors holds the template palette
type Colors struct {
	Primary    *RGB `json:"primary,omitempty"`
	Secondary  *RGB `json:"secondary,omitempty"`
	Background *RGB `json:"background,omitempty"`
}

// Fonts holds the typography for the three text tiers
type Fonts struct {
	Name    FontSpec `json:"name"`
	Heading FontSpec `json:"heading"`
	Normal  FontSpec `json:"normal"`
}

// FontSpec names a font family and a point size
type FontSpec struct {
	Family string  `json:"family,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

// Margins are page margins in inches
type Margins struct {
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
}

// UI holds catalog metadata shown to users picking a template
type UI struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Default metadata values
var (
	DefaultPrimary    = RGB{0.1, 0.4, 0.7}
	DefaultSecondary  = RGB{0.2, 0.2, 0.2}
	DefaultBackground = RGB{1, 1, 1}
)

const (
	DefaultNameFamily    = "Helvetica-Bold"
	DefaultHeadingFamily = "Helvetica-Bold"
	DefaultNormalFamily  = "Helvetica"
	DefaultNameSize      = 24
	DefaultHeadingSize   = 14
	DefaultNormalSize    = 10
	DefaultMarginInches  = 0.75
	DefaultVersion       = "1.0"
)

// DefaultMetadata returns a fully populated metadata value with the registry defaults
func DefaultMetadata() TemplateMetadata {
	primary, secondary, background := DefaultPrimary, DefaultSecondary, DefaultBackground
	return TemplateMetadata{
		Colors: &Colors{Primary: &primary, Secondary: &secondary, Background: &background},
		Fonts: &Fonts{
			Name:    FontSpec{Family: DefaultNameFamily, Size: DefaultNameSize},
			Heading: FontSpec{Family: DefaultHeadingFamily, Size: DefaultHeadingSize},
			Normal:  FontSpec{Family: DefaultNormalFamily, Size: DefaultNormalSize},
		},
		Margins: &Margins{
			Left:   DefaultMarginInches,
			Right:  DefaultMarginInches,
			Top:    DefaultMarginInches,
			Bottom: DefaultMarginInches,
		},
		Layout:  LayoutSingleColumn,
		UI:      &UI{},
		Version: DefaultVersion,
	}
}

// WithDefaults returns a deep copy of m with every missing section and field taken from DefaultMetadata.
// Values already present always win.
func (m TemplateMetadata) WithDefaults() TemplateMetadata {
	d := DefaultMetadata()
	out := m.Clone()

	if out.Colors == nil {
		out.Colors = d.Colors
	} else {
		if out.Colors.Primary == nil {
			out.Colors.Primary = d.Colors.Primary
		}
		if out.Colors.Secondary == nil {
			out.Colors.Secondary = d.Colors.Secondary
		}
		if out.Colors.Background == nil {
			out.Colors.Background = d.Colors.Background
		}
	}

	if out.Fonts == nil {
		out.Fonts = d.Fonts
	} else {
		fillFont(&out.Fonts.Name, d.Fonts.Name)
		fillFont(&out.Fonts.Heading, d.Fonts.Heading)
		fillFont(&out.Fonts.Normal, d.Fonts.Normal)
	}

	if out.Margins == nil {
		out.Margins = d.Margins
	} else {
		fillFloat(&out.Margins.Left, d.Margins.Left)
		fillFloat(&out.Margins.Right, d.Margins.Right)
		fillFloat(&out.Margins.Top, d.Margins.Top)
		fillFloat(&out.Margins.Bottom, d.Margins.Bottom)
	}

	if out.Layout == "" {
		out.Layout = d.Layout
	}
	if out.UI == nil {
		out.UI = d.UI
	}
	if out.Version == "" {
		out.Version = d.Version
	}
	return out
}

// Clone returns a deep copy of the metadata
func (m TemplateMetadata) Clone() TemplateMetadata {
	out := TemplateMetadata{Layout: m.Layout, Version: m.Version}
	if m.Colors != nil {
		out.Colors = &Colors{
			Primary:    cloneRGB(m.Colors.Primary),
			Secondary:  cloneRGB(m.Colors.Secondary),
			Background: cloneRGB(m.Colors.Background),
		}
	}
	if m.Fonts != nil {
		fonts := *m.Fonts
		out.Fonts = &fonts
	}
	if m.Margins != nil {
		margins := *m.Margins
		out.Margins = &margins
	}
	if m.UI != nil {
		ui := *m.UI
		ui.Tags = append([]string(nil), m.UI.Tags...)
		out.UI = &ui
	}
	return out
}

// PrimaryColor returns the primary color, or the default when unset
func (m TemplateMetadata) PrimaryColor() RGB {
	if m.Colors != nil && m.Colors.Primary != nil {
		return *m.Colors.Primary
	}
	return DefaultPrimary
}

// SecondaryColor returns the secondary color, or the default when unset
func (m TemplateMetadata) SecondaryColor() RGB {
	if m.Colors != nil && m.Colors.Secondary != nil {
		return *m.Colors.Secondary
	}
	return DefaultSecondary
}

// BackgroundColor returns the background color, or the default when unset
func (m TemplateMetadata) BackgroundColor() RGB {
	if m.Colors != nil && m.Colors.Background != nil {
		return *m.Colors.Background
	}
	return DefaultBackground
}

func cloneRGB(c *RGB) *RGB {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

func fillFont(f *FontSpec, d FontSpec) {
	if f.Family == "" {
		f.Family = d.Family
	}
	if f.Size <= 0 {
		f.Size = d.Size
	}
}

func fillFloat(v *float64, d float64) {
	if *v <= 0 {
		*v = d
	}
}
