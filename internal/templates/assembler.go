package templates

import (
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// Assembler builds the block sequence and region layout for one template style.
// BuildHeader fills the first region; the document then breaks to the next region
// and BuildBody fills the rest.
type Assembler interface {
	Name() string
	Layout() string
	CreateStyles(meta types.TemplateMetadata) *styles.StyleSet
	RegionTemplate(page layout.PageSize, m layout.Margins, st *styles.StyleSet) layout.RegionTemplate
	BuildHeader(data *types.ResumeData, st *styles.StyleSet) []layout.Block
	BuildBody(data *types.ResumeData, st *styles.StyleSet) []layout.Block
	Decorator(meta types.TemplateMetadata) layout.PageDecorator
}

// headerHeight sizes a header region to the name, title and contact lines plus room
// for the accent rule
func headerHeight(st *styles.StyleSet) float64 {
	return st.Title.LineHeight() + st.Title.SpaceAfter +
		2*(st.Contact.LineHeight()+st.Contact.SpaceAfter) + 14
}

// Classic is a single-column layout: header region, then every section in the body
type Classic struct{}

// Name returns the assembler name
func (Classic) Name() string { return "classic" }

// Layout returns the layout kind
func (Classic) Layout() string { return types.LayoutSingleColumn }

// CreateStyles builds the classic style set
func (Classic) CreateStyles(meta types.TemplateMetadata) *styles.StyleSet {
	return styles.Classic(meta)
}

// RegionTemplate returns header and body regions
func (Classic) RegionTemplate(page layout.PageSize, m layout.Margins, st *styles.StyleSet) layout.RegionTemplate {
	return layout.SingleColumn(page, m, headerHeight(st))
}

// BuildHeader renders the contact header
func (Classic) BuildHeader(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	return sections.Contact(data.Contact, st)
}

// BuildBody renders summary, experience, education, skills, languages and certifications
func (Classic) BuildBody(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	var blocks []layout.Block
	blocks = append(blocks, sections.Summary(data.Summary, st)...)
	blocks = append(blocks, sections.Experience(data.Experience, st)...)
	blocks = append(blocks, sections.Education(data.Education, st)...)
	blocks = append(blocks, sections.Skills(data.Skills, st)...)
	blocks = append(blocks, sections.Languages(data.Languages, st)...)
	blocks = append(blocks, sections.Certifications(data.Certifications, st)...)
	return blocks
}

// Decorator paints the default bands in the primary color
func (Classic) Decorator(meta types.TemplateMetadata) layout.PageDecorator {
	return layout.DefaultDecorator(meta.PrimaryColor())
}

// Modern is a two-column layout: header, then a wide left column with summary,
// experience and education, then a narrow right column with the lists
type Modern struct{}

// Name returns the assembler name
func (Modern) Name() string { return "modern" }

// Layout returns the layout kind
func (Modern) Layout() string { return types.LayoutTwoColumn }

// CreateStyles builds the modern style set
func (Modern) CreateStyles(meta types.TemplateMetadata) *styles.StyleSet {
	return styles.Modern(meta)
}

// RegionTemplate returns header, left and right regions
func (Modern) RegionTemplate(page layout.PageSize, m layout.Margins, st *styles.StyleSet) layout.RegionTemplate {
	return layout.TwoColumnWithHeader(page, m, headerHeight(st), layout.DefaultLeftRatio, layout.DefaultGutter)
}

// BuildHeader renders the contact header
func (Modern) BuildHeader(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	return sections.Contact(data.Contact, st)
}

// BuildBody renders the left column, a region break and the right column.
// The break is omitted when the right column would be empty.
func (Modern) BuildBody(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	var left []layout.Block
	left = append(left, sections.Summary(data.Summary, st)...)
	left = append(left, sections.Experience(data.Experience, st)...)
	left = append(left, sections.Education(data.Education, st)...)

	var right []layout.Block
	right = append(right, sections.List(sections.TitleSkills, data.Skills, st.SidebarHeading, st.SidebarBody)...)
	right = append(right, sections.List(sections.TitleLanguages, data.Languages, st.SidebarHeading, st.SidebarBody)...)
	right = append(right, sections.List(sections.TitleCertifications, data.Certifications, st.SidebarHeading, st.SidebarBody)...)

	if len(right) == 0 {
		return left
	}
	blocks := append(left, layout.RegionBreak())
	return append(blocks, right...)
}

// Decorator paints the default bands in the primary color
func (Modern) Decorator(meta types.TemplateMetadata) layout.PageDecorator {
	return layout.DefaultDecorator(meta.PrimaryColor())
}

// Minimal is a sidebar layout: contact and lists in the sidebar, then summary,
// experience and education in the main column
type Minimal struct{}

// Name returns the assembler name
func (Minimal) Name() string { return "minimal" }

// Layout returns the layout kind
func (Minimal) Layout() string { return types.LayoutSidebar }

// CreateStyles builds the minimal style set
func (Minimal) CreateStyles(meta types.TemplateMetadata) *styles.StyleSet {
	return styles.Minimal(meta)
}

// RegionTemplate returns sidebar and main regions
func (Minimal) RegionTemplate(page layout.PageSize, m layout.Margins, _ *styles.StyleSet) layout.RegionTemplate {
	return layout.Sidebar(page, m, layout.DefaultSidebarRatio, layout.DefaultGutter)
}

// BuildHeader renders the sidebar: stacked contact details, skills, languages and certifications
func (Minimal) BuildHeader(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	blocks := sections.ContactStacked(data.Contact, st)
	blocks = append(blocks, sections.List(sections.TitleSkills, data.Skills, st.SidebarHeading, st.SidebarBody)...)
	blocks = append(blocks, sections.List(sections.TitleLanguages, data.Languages, st.SidebarHeading, st.SidebarBody)...)
	blocks = append(blocks, sections.List(sections.TitleCertifications, data.Certifications, st.SidebarHeading, st.SidebarBody)...)
	return blocks
}

// BuildBody renders the main column
func (Minimal) BuildBody(data *types.ResumeData, st *styles.StyleSet) []layout.Block {
	var blocks []layout.Block
	blocks = append(blocks, sections.Summary(data.Summary, st)...)
	blocks = append(blocks, sections.Experience(data.Experience, st)...)
	blocks = append(blocks, sections.Education(data.Education, st)...)
	return blocks
}

// Decorator tints the sidebar and paints the default bands
func (Minimal) Decorator(meta types.TemplateMetadata) layout.PageDecorator {
	return layout.SidebarDecorator(meta.PrimaryColor())
}
