package templates

import (
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// Built-in template ids
const (
	ClassicID = "classic"
	ModernID  = "modern"
	MinimalID = "minimal"
)

// ClassicMetadata is the classic template: serif type and one-inch margins
func ClassicMetadata() types.TemplateMetadata {
	return types.TemplateMetadata{
		Fonts: &types.Fonts{
			Name:    types.FontSpec{Family: "Times-Bold", Size: types.DefaultNameSize},
			Heading: types.FontSpec{Family: "Times-Bold", Size: types.DefaultHeadingSize},
			Normal:  types.FontSpec{Family: "Times-Roman", Size: types.DefaultNormalSize},
		},
		Margins: &types.Margins{Left: 1.0, Right: 1.0, Top: 1.0, Bottom: 1.0},
		Layout:  types.LayoutSingleColumn,
		UI: &types.UI{
			Name:        "Classic",
			Description: "Traditional single-column layout with serif type",
			Thumbnail:   "classic.png",
			Category:    "professional",
			Tags:        []string{"single-column", "serif", "ats-friendly"},
		},
	}
}

// ModernMetadata is the modern template: two columns with the registry defaults
func ModernMetadata() types.TemplateMetadata {
	return types.TemplateMetadata{
		Layout: types.LayoutTwoColumn,
		UI: &types.UI{
			Name:        "Modern",
			Description: "Two-column layout with a skills column on the right",
			Thumbnail:   "modern.png",
			Category:    "creative",
			Tags:        []string{"two-column", "sans-serif"},
		},
	}
}

// MinimalMetadata is the minimal template: a sidebar and half-inch margins
func MinimalMetadata() types.TemplateMetadata {
	secondary := types.RGB{0.25, 0.25, 0.25}
	return types.TemplateMetadata{
		Colors:  &types.Colors{Secondary: &secondary},
		Margins: &types.Margins{Left: 0.5, Right: 0.5, Top: 0.5, Bottom: 0.5},
		Layout:  types.LayoutSidebar,
		UI: &types.UI{
			Name:        "Minimal",
			Description: "Sidebar layout with contact details and skills on the left",
			Thumbnail:   "minimal.png",
			Category:    "minimal",
			Tags:        []string{"sidebar", "compact"},
		},
	}
}

// NewDefaultRegistry returns a registry holding classic (the default), modern and minimal
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// built-in registrations cannot fail: ids and assemblers are non-empty
	_ = r.Register(ClassicID, Classic{}, styles.Classic, ClassicMetadata(), true)
	_ = r.Register(ModernID, Modern{}, styles.Modern, ModernMetadata(), false)
	_ = r.Register(MinimalID, Minimal{}, styles.Minimal, MinimalMetadata(), false)
	return r
}
