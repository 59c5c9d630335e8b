package sections

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleSet() *styles.StyleSet {
	return styles.Classic(types.TemplateMetadata{})
}

func kinds(blocks []layout.Block) []layout.Kind {
	out := make([]layout.Kind, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Kind)
	}
	return out
}

func countKind(blocks []layout.Block, k layout.Kind) int {
	n := 0
	for _, b := range blocks {
		if b.Kind == k {
			n++
		}
	}
	return n
}

func TestExperienceEntry_WithDescription(t *testing.T) {
	e := types.Experience{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   "2020",
		Current:     true,
		Description: "Built things\n\n  Shipped things  \r\n",
	}

	blocks := ExperienceEntry(e, styleSet())

	assert.Equal(t, []layout.Kind{
		layout.KindHeading, layout.KindParagraph, layout.KindBullet, layout.KindBullet, layout.KindSpacer,
	}, kinds(blocks))
	assert.Equal(t, []string{"Engineer", "Acme | 2020 - Present", "Built things", "Shipped things"}, layout.Texts(blocks))
}

func TestExperienceEntry_NoDescriptionEmitsNoBullets(t *testing.T) {
	blocks := ExperienceEntry(types.Experience{Title: "Engineer", Company: "Acme", StartDate: "2019", EndDate: "2021"}, styleSet())

	assert.Equal(t, 0, countKind(blocks, layout.KindBullet))
	assert.Equal(t, []string{"Engineer", "Acme | 2019 - 2021"}, layout.Texts(blocks))
}

func TestExperienceInfo_EndsWithPresent(t *testing.T) {
	tests := []struct {
		name string
		exp  types.Experience
		want string
	}{
		{name: "current without end", exp: types.Experience{Company: "Acme", StartDate: "2020", Current: true}, want: "Acme | 2020 - Present"},
		{name: "current overrides end", exp: types.Experience{Company: "Acme", StartDate: "2020", EndDate: "2022", Current: true}, want: "Acme | 2020 - Present"},
		{name: "absent end", exp: types.Experience{Company: "Acme", StartDate: "2020"}, want: "Acme | 2020 - Present"},
		{name: "closed range", exp: types.Experience{Company: "Acme", StartDate: "2020", EndDate: "2022"}, want: "Acme | 2020 - 2022"},
		{name: "no start", exp: types.Experience{Company: "Acme"}, want: "Acme | Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceInfo(tt.exp)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExperience_SectionHeadingOnlyWhenEntries(t *testing.T) {
	assert.Nil(t, Experience(nil, styleSet()))

	blocks := Experience([]types.Experience{
		{Title: "Staff", Company: "B"},
		{Title: "Senior", Company: "A"},
	}, styleSet())
	require.NotEmpty(t, blocks)
	assert.Equal(t, TitleExperience, blocks[0].Text)
	assert.Equal(t, layout.KindHeading, blocks[0].Kind)
	assert.Equal(t, []string{"Experience", "Staff", "B | Present", "Senior", "A | Present"}, layout.Texts(blocks))
}

func TestEducationInfo(t *testing.T) {
	tests := []struct {
		name string
		edu  types.Education
		want string
	}{
		{name: "single year", edu: types.Education{School: "MIT", Year: "2018"}, want: "MIT, 2018"},
		{name: "range", edu: types.Education{School: "MIT", StartYear: "2014", EndYear: "2018"}, want: "MIT, 2014 - 2018"},
		{name: "range wins over year", edu: types.Education{School: "MIT", Year: "2018", StartYear: "2014", EndYear: "2018"}, want: "MIT, 2014 - 2018"},
		{name: "ongoing", edu: types.Education{School: "MIT", StartYear: "2022", Current: true}, want: "MIT, 2022 - Present"},
		{name: "no dates", edu: types.Education{School: "MIT"}, want: "MIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EducationInfo(tt.edu))
		})
	}
}

func TestEducation_Blocks(t *testing.T) {
	blocks := Education([]types.Education{{Degree: "BSc Computer Science", School: "MIT", Year: "2018"}}, styleSet())

	assert.Equal(t, []layout.Kind{layout.KindHeading, layout.KindHeading, layout.KindParagraph, layout.KindSpacer}, kinds(blocks))
	assert.Equal(t, "B", blocks[1].Style.FontStyle)
}

func TestSkills_OneBulletPerItemInOrder(t *testing.T) {
	blocks := SkillsText("A, B ,C", styleSet())

	assert.Equal(t, []string{"Skills", "A", "B", "C"}, layout.Texts(blocks))
	assert.Equal(t, 3, countKind(blocks, layout.KindBullet))
	assert.Nil(t, Skills(nil, styleSet()))
	assert.Nil(t, Skills([]string{" ", ""}, styleSet()))
}

func TestLanguagesAndCertifications(t *testing.T) {
	st := styleSet()
	assert.Equal(t, []string{"Languages", "English", "German"}, layout.Texts(Languages([]string{"English", "German"}, st)))
	assert.Equal(t, []string{"Certifications", "CKA"}, layout.Texts(Certifications([]string{"CKA"}, st)))
	assert.Nil(t, Certifications(nil, st))
}

func TestSummary(t *testing.T) {
	st := styleSet()
	assert.Nil(t, Summary(types.Summary{}, st))
	assert.Nil(t, Summary(types.Summary{Content: "   "}, st))

	blocks := Summary(types.Summary{Content: "Builder of systems.\nMentor."}, st)
	assert.Equal(t, []string{"Summary", "Builder of systems.", "Mentor."}, layout.Texts(blocks))
}

func TestContact(t *testing.T) {
	st := styleSet()
	c := types.Contact{Name: "Jane Doe", Title: "Engineer", Email: "jane@example.com", Location: "Berlin"}

	blocks := Contact(c, st)
	assert.Equal(t, []string{"Jane Doe", "Engineer", "jane@example.com  |  Berlin"}, layout.Texts(blocks))
	assert.Equal(t, st.Title, blocks[0].Style)

	assert.Equal(t, []string{"Jane Doe"}, layout.Texts(Contact(types.Contact{Name: "Jane Doe"}, st)))
	assert.Empty(t, Contact(types.Contact{}, st))
}

func TestContactStacked(t *testing.T) {
	st := styleSet()
	c := types.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "555"}

	blocks := ContactStacked(c, st)
	assert.Equal(t, []string{"Jane Doe", "Contact", "jane@example.com", "555"}, layout.Texts(blocks))
	assert.Equal(t, st.SidebarBody, blocks[3].Style)
}

func TestRenderers_AreDeterministic(t *testing.T) {
	st := styleSet()
	exp := []types.Experience{{Title: "Engineer", Company: "Acme", Description: strings.Repeat("line\n", 5)}}

	assert.Equal(t, Experience(exp, st), Experience(exp, st))
}

func TestRenderers_TolerateMissingFields(t *testing.T) {
	st := styleSet()

	assert.NotPanics(t, func() {
		Experience([]types.Experience{{}}, st)
		Education([]types.Education{{}}, st)
		Contact(types.Contact{}, st)
	})
	assert.Equal(t, " | Present", ExperienceInfo(types.Experience{}))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines(" a \n\n\tb\r\n"))
	assert.Nil(t, Lines(""))
}
