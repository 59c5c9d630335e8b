package styles

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCoreFamily(t *testing.T) {
	tests := []struct {
		name       string
		wantFamily string
		wantStyle  string
	}{
		{name: "Helvetica", wantFamily: "Helvetica", wantStyle: ""},
		{name: "Helvetica-Bold", wantFamily: "Helvetica", wantStyle: "B"},
		{name: "Helvetica-BoldOblique", wantFamily: "Helvetica", wantStyle: "BI"},
		{name: "Times-Roman", wantFamily: "Times", wantStyle: ""},
		{name: "Times-BoldItalic", wantFamily: "Times", wantStyle: "BI"},
		{name: "serif", wantFamily: "Times", wantStyle: ""},
		{name: "sans-serif", wantFamily: "Helvetica", wantStyle: ""},
		{name: "Courier", wantFamily: "Courier", wantStyle: ""},
		{name: "Comic Sans", wantFamily: "Helvetica", wantStyle: ""},
		{name: "", wantFamily: "Helvetica", wantStyle: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			family, style := CoreFamily(tt.name)
			assert.Equal(t, tt.wantFamily, family)
			assert.Equal(t, tt.wantStyle, style)
		})
	}
}

func TestMergeStyle(t *testing.T) {
	assert.Equal(t, "B", mergeStyle("", "B"))
	assert.Equal(t, "B", mergeStyle("B", "B"))
	assert.Equal(t, "BI", mergeStyle("I", "B"))
	assert.Equal(t, "", mergeStyle("", ""))
}

func TestBuilders_UseMetadata(t *testing.T) {
	red := types.RGB{1, 0, 0}
	meta := types.TemplateMetadata{
		Colors: &types.Colors{Primary: &red},
		Fonts: &types.Fonts{
			Name:    types.FontSpec{Family: "Times-Bold", Size: 30},
			Heading: types.FontSpec{Family: "Times-Bold", Size: 16},
			Normal:  types.FontSpec{Family: "Times-Roman", Size: 11},
		},
	}

	for _, build := range []Builder{Classic, Modern, Minimal} {
		s := build(meta)
		assert.Equal(t, red, s.Title.TextColor, s.Name)
		assert.Equal(t, "Times", s.Title.FontFamily, s.Name)
		assert.Equal(t, "B", s.Title.FontStyle, s.Name)
		assert.Equal(t, 11.0, s.Body.FontSize, s.Name)
		assert.Equal(t, types.DefaultSecondary, s.Body.TextColor, s.Name)
		assert.Equal(t, "BI", mergeStyle(s.ItemInfo.FontStyle, "B"), s.Name)
	}
}

func TestBuilders_DefaultsWhenMetadataEmpty(t *testing.T) {
	s := Classic(types.TemplateMetadata{})

	assert.Equal(t, "classic", s.Name)
	assert.Equal(t, float64(types.DefaultNameSize), s.Title.FontSize)
	assert.Equal(t, float64(types.DefaultHeadingSize), s.SectionHeading.FontSize)
	assert.Equal(t, AlignCenter, s.Title.Align)
	assert.Equal(t, types.DefaultPrimary, s.SectionHeading.TextColor)
	assert.Equal(t, "Helvetica", s.Body.FontFamily)
}

func TestStyleSet_Get(t *testing.T) {
	s := Modern(types.TemplateMetadata{})

	assert.Equal(t, s.Title, s.Get(RoleTitle))
	assert.Equal(t, s.Bullet, s.Get(RoleBullet))
	assert.Equal(t, s.SidebarBody, s.Get(RoleSidebarBody))
	assert.Equal(t, s.Body, s.Get("unknown"))
}

func TestParagraphStyle_LineHeight(t *testing.T) {
	assert.Equal(t, 14.0, ParagraphStyle{FontSize: 10, Leading: 14}.LineHeight())
	assert.InDelta(t, 12.0, ParagraphStyle{FontSize: 10}.LineHeight(), 1e-9)
}
