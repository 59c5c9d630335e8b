// Package sections provides renderers that turn one normalized resume section into layout blocks.
// Renderers are pure: the same section and style set always yield the same blocks.
package sections

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// Section headings
const (
	TitleSummary        = "Summary"
	TitleExperience     = "Experience"
	TitleEducation      = "Education"
	TitleSkills         = "Skills"
	TitleLanguages      = "Languages"
	TitleCertifications = "Certifications"
	TitleContact        = "Contact"
)

// Present ends the date range of an ongoing entry
const Present = "Present"

// EntrySpacing separates experience and education entries
const EntrySpacing = 6.0

// Section prefixes body with a heading. An empty body yields no blocks at all.
func Section(title string, body []layout.Block, heading styles.ParagraphStyle) []layout.Block {
	if len(body) == 0 {
		return nil
	}
	out := make([]layout.Block, 0, len(body)+1)
	out = append(out, layout.Heading(title, heading))
	return append(out, body...)
}

// Contact renders the header: name, professional title and a single joined contact line
func Contact(c types.Contact, st *styles.StyleSet) []layout.Block {
	var blocks []layout.Block
	if c.Name != "" {
		blocks = append(blocks, layout.Paragraph(c.Name, st.Title))
	}
	if c.Title != "" {
		blocks = append(blocks, layout.Paragraph(c.Title, st.Contact))
	}
	if line := strings.Join(contactFields(c), "  |  "); line != "" {
		blocks = append(blocks, layout.Paragraph(line, st.Contact))
	}
	return blocks
}

// ContactStacked renders the header for narrow regions with one contact field per line
func ContactStacked(c types.Contact, st *styles.StyleSet) []layout.Block {
	var blocks []layout.Block
	if c.Name != "" {
		blocks = append(blocks, layout.Paragraph(c.Name, st.Title))
	}
	if c.Title != "" {
		blocks = append(blocks, layout.Paragraph(c.Title, st.Contact))
	}
	var details []layout.Block
	for _, field := range contactFields(c) {
		details = append(details, layout.Paragraph(field, st.SidebarBody))
	}
	return append(blocks, Section(TitleContact, details, st.SidebarHeading)...)
}

func contactFields(c types.Contact) []string {
	var fields []string
	for _, f := range []string{c.Email, c.Phone, c.Location, c.LinkedIn, c.Website} {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Summary renders the professional summary under its heading
func Summary(s types.Summary, st *styles.StyleSet) []layout.Block {
	if s.IsEmpty() {
		return nil
	}
	var body []layout.Block
	for _, line := range Lines(s.Content) {
		body = append(body, layout.Paragraph(line, st.Body))
	}
	return Section(TitleSummary, body, st.SectionHeading)
}

// Experience renders every position under the Experience heading
func Experience(entries []types.Experience, st *styles.StyleSet) []layout.Block {
	var body []layout.Block
	for _, e := range entries {
		body = append(body, ExperienceEntry(e, st)...)
	}
	return Section(TitleExperience, body, st.SectionHeading)
}

// ExperienceEntry renders one position: title, "{company} | {start} - {end}", one bullet
// per description line and a trailing spacer
func ExperienceEntry(e types.Experience, st *styles.StyleSet) []layout.Block {
	blocks := []layout.Block{
		layout.Heading(e.Title, st.ItemTitle),
		layout.Paragraph(ExperienceInfo(e), st.ItemInfo),
	}
	for _, line := range Lines(e.Description) {
		blocks = append(blocks, layout.Bullet(line, st.Bullet))
	}
	return append(blocks, layout.Spacer(EntrySpacing))
}

// ExperienceInfo formats the company and date range line
func ExperienceInfo(e types.Experience) string {
	return e.Company + " | " + DateRange(e.StartDate, e.EndDate, e.Current)
}

// Education renders every degree under the Education heading
func Education(entries []types.Education, st *styles.StyleSet) []layout.Block {
	var body []layout.Block
	for _, e := range entries {
		body = append(body, EducationEntry(e, st)...)
	}
	return Section(TitleEducation, body, st.SectionHeading)
}

// EducationEntry renders one degree: degree, "{school}, {year}" or a year range,
// description bullets and a trailing spacer
func EducationEntry(e types.Education, st *styles.StyleSet) []layout.Block {
	blocks := []layout.Block{
		layout.Heading(e.Degree, st.ItemTitle),
		layout.Paragraph(EducationInfo(e), st.ItemInfo),
	}
	for _, line := range Lines(e.Description) {
		blocks = append(blocks, layout.Bullet(line, st.Bullet))
	}
	return append(blocks, layout.Spacer(EntrySpacing))
}

// EducationInfo formats the school and year line
func EducationInfo(e types.Education) string {
	switch {
	case e.StartYear != "" || e.EndYear != "":
		return e.School + ", " + DateRange(e.StartYear, e.EndYear, e.Current)
	case e.Year != "":
		return e.School + ", " + e.Year
	default:
		return e.School
	}
}

// DateRange formats "{start} - {end}"; end is Present when current is set or end is empty
func DateRange(start, end string, current bool) string {
	if current || strings.TrimSpace(end) == "" {
		end = Present
	}
	if strings.TrimSpace(start) == "" {
		return end
	}
	return start + " - " + end
}

// Skills renders one bullet per skill under the Skills heading
func Skills(items []string, st *styles.StyleSet) []layout.Block {
	return List(TitleSkills, items, st.SectionHeading, st.Bullet)
}

// SkillsText renders a comma-separated skills string
func SkillsText(s string, st *styles.StyleSet) []layout.Block {
	return Skills(types.SplitList(s), st)
}

// Languages renders one bullet per language
func Languages(items []string, st *styles.StyleSet) []layout.Block {
	return List(TitleLanguages, items, st.SectionHeading, st.Bullet)
}

// Certifications renders one bullet per certification
func Certifications(items []string, st *styles.StyleSet) []layout.Block {
	return List(TitleCertifications, items, st.SectionHeading, st.Bullet)
}

// List renders a titled bullet list, skipping blank items
func List(title string, items []string, heading, item styles.ParagraphStyle) []layout.Block {
	var body []layout.Block
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			body = append(body, layout.Bullet(it, item))
		}
	}
	return Section(title, body, heading)
}

// Lines splits multi-line text into trimmed, non-empty lines
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
