package templates

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDoe(t *testing.T) *types.ResumeData {
	t.Helper()
	data, err := resume.Normalize(map[string]any{
		"contact": map[string]any{"name": "Jane Doe"},
		"experience": []any{map[string]any{
			"title":       "Engineer",
			"company":     "Acme",
			"startDate":   "2020",
			"current":     true,
			"description": "Built things\nShipped things",
		}},
	})
	require.NoError(t, err)
	return data
}

func fullResume(experiences int) *types.ResumeData {
	data := &types.ResumeData{
		Contact: types.Contact{Name: "Jane Doe", Title: "Staff Engineer", Email: "jane@example.com", Phone: "+1 555 0100"},
		Summary: types.Summary{Content: "Engineer who builds reliable systems."},
		Education: []types.Education{
			{Degree: "BSc Computer Science", School: "MIT", StartYear: "2010", EndYear: "2014"},
		},
		Skills:         []string{"Go", "PostgreSQL", "Kubernetes"},
		Languages:      []string{"English", "German"},
		Certifications: []string{"CKA"},
	}
	for i := 0; i < experiences; i++ {
		data.Experience = append(data.Experience, types.Experience{
			Title:       fmt.Sprintf("Engineer %d", i),
			Company:     "Acme",
			StartDate:   "2015",
			EndDate:     "2020",
			Description: strings.Repeat("Designed and shipped a distributed service used by millions of people\n", 6),
		})
	}
	return data
}

func uncompressed() DocumentConfig {
	return DocumentConfig{Page: layout.Letter, PDF: pdf.Options{Compress: false}}
}

func TestDocument_ClassicJaneDoe(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ClassicID)
	require.NoError(t, err)

	doc := NewDocument(entry, janeDoe(t), uncompressed())
	var buf bytes.Buffer
	require.NoError(t, doc.Run(&buf))

	out := buf.String()
	require.NotEmpty(t, out)
	for _, want := range []string{"(Jane Doe)", "(Engineer)", "(Acme | 2020 - Present)", "(Built things)", "(Shipped things)"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, StateFinalized, doc.State())

	bullets := 0
	for _, b := range doc.Blocks() {
		if b.Kind == layout.KindBullet {
			bullets++
		}
	}
	assert.Equal(t, 2, bullets)

	pages, err := pdf.CountPages(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestDocument_HeaderEndsWithRegionBreak(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ClassicID)
	require.NoError(t, err)

	doc := NewDocument(entry, janeDoe(t), uncompressed())
	require.NoError(t, doc.BuildHeader())
	blocks := doc.Blocks()
	assert.Equal(t, StateHeaderBuilt, doc.State())
	assert.Equal(t, layout.KindRegionBreak, blocks[len(blocks)-1].Kind)
	assert.Equal(t, []string{"Jane Doe"}, layout.Texts(blocks))
}

func TestDocument_SkipsEmptySections(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ClassicID)
	require.NoError(t, err)

	doc := NewDocument(entry, janeDoe(t), uncompressed())
	require.NoError(t, doc.BuildHeader())
	require.NoError(t, doc.BuildBody())

	texts := layout.Texts(doc.Blocks())
	assert.Contains(t, texts, "Experience")
	for _, absent := range []string{"Summary", "Education", "Skills", "Languages", "Certifications"} {
		assert.NotContains(t, texts, absent)
	}
}

func TestDocument_StateOrder(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ClassicID)
	require.NoError(t, err)
	doc := NewDocument(entry, janeDoe(t), uncompressed())

	var stateErr *StateError
	require.True(t, errors.As(doc.BuildBody(), &stateErr))
	assert.Equal(t, StateInit, stateErr.State)
	assert.True(t, errors.As(doc.Finalize(&bytes.Buffer{}), &stateErr))

	require.NoError(t, doc.BuildHeader())
	assert.True(t, errors.As(doc.BuildHeader(), &stateErr))

	require.True(t, errors.As(doc.Run(&bytes.Buffer{}), &stateErr))
	assert.Equal(t, StateHeaderBuilt, stateErr.State)

	require.NoError(t, doc.BuildBody())
	require.NoError(t, doc.Finalize(&bytes.Buffer{}))
	assert.True(t, errors.As(doc.Finalize(&bytes.Buffer{}), &stateErr))
}

func TestDocument_LayoutsProduceExpectedRegions(t *testing.T) {
	r := NewDefaultRegistry()
	tests := []struct {
		id      string
		regions []string
	}{
		{id: ClassicID, regions: []string{layout.RegionHeader, layout.RegionBody}},
		{id: ModernID, regions: []string{layout.RegionHeader, layout.RegionLeft, layout.RegionRight}},
		{id: MinimalID, regions: []string{layout.RegionSidebar, layout.RegionMain}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			entry, err := r.Get(tt.id)
			require.NoError(t, err)

			doc := NewDocument(entry, fullResume(1), uncompressed())
			var buf bytes.Buffer
			require.NoError(t, doc.Run(&buf))

			var ids []string
			for _, reg := range doc.Template().Regions {
				ids = append(ids, reg.ID)
			}
			assert.Equal(t, tt.regions, ids)

			used := map[string]bool{}
			for _, p := range doc.Pages() {
				for _, pl := range p.Placements {
					used[pl.Region] = true
				}
			}
			for _, id := range tt.regions {
				assert.True(t, used[id], "region %s unused", id)
			}
			assert.Contains(t, buf.String(), "(Jane Doe)")
		})
	}
}

func TestDocument_ModernOverflowReusesTemplate(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ModernID)
	require.NoError(t, err)

	doc := NewDocument(entry, fullResume(12), uncompressed())
	var buf bytes.Buffer
	require.NoError(t, doc.Run(&buf))

	pages := doc.Pages()
	require.Greater(t, len(pages), 1)
	for _, p := range pages {
		assert.Equal(t, doc.Template(), p.Template)
	}

	count, err := pdf.CountPages(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(pages), count)
	assert.Contains(t, buf.String(), fmt.Sprintf("(Page 2 of %d)", len(pages)))
}

func TestDocument_MinimalSidebarOrder(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(MinimalID)
	require.NoError(t, err)

	doc := NewDocument(entry, fullResume(1), uncompressed())
	require.NoError(t, doc.BuildHeader())
	require.NoError(t, doc.BuildBody())

	blocks := doc.Blocks()
	breakAt := -1
	for i, b := range blocks {
		if b.Kind == layout.KindRegionBreak {
			breakAt = i
			break
		}
	}
	require.Greater(t, breakAt, 0)
	sidebar := layout.Texts(blocks[:breakAt])
	main := layout.Texts(blocks[breakAt:])
	assert.Contains(t, sidebar, "Skills")
	assert.Contains(t, sidebar, "jane@example.com")
	assert.Contains(t, main, "Experience")
	assert.NotContains(t, main, "Skills")
}

func TestDocument_CustomizedColorsReachStyles(t *testing.T) {
	r := NewDefaultRegistry()
	id, err := r.Customize(ClassicID, map[string]any{"colors": map[string]any{"primary": []any{1, 0, 0}}})
	require.NoError(t, err)
	entry, err := r.Get(id)
	require.NoError(t, err)

	doc := NewDocument(entry, janeDoe(t), uncompressed())
	require.NoError(t, doc.BuildHeader())
	assert.Equal(t, types.RGB{1, 0, 0}, doc.Blocks()[0].Style.TextColor)
}

type panickingAssembler struct {
	Classic
}

func (panickingAssembler) BuildBody(*types.ResumeData, *styles.StyleSet) []layout.Block {
	panic("section exploded")
}

func TestDocument_PanicBecomesBuildError(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("broken", panickingAssembler{}, nil, types.TemplateMetadata{}, false))
	entry, err := r.Get("broken")
	require.NoError(t, err)

	doc := NewDocument(entry, janeDoe(t), uncompressed())
	var buf bytes.Buffer
	err = doc.Run(&buf)

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, StageBody, buildErr.Stage)
	assert.Contains(t, err.Error(), "section exploded")
	assert.Zero(t, buf.Len())
}

func TestDocument_UnflowableLayoutIsBuildError(t *testing.T) {
	r := NewRegistry()
	huge := types.TemplateMetadata{Margins: &types.Margins{Left: 5, Right: 5, Top: 1, Bottom: 1}}
	require.NoError(t, r.Register("cramped", Classic{}, nil, huge, false))
	entry, err := r.Get("cramped")
	require.NoError(t, err)

	doc := NewDocument(entry, fullResume(1), uncompressed())
	err = doc.Run(&bytes.Buffer{})

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, StageFinalize, buildErr.Stage)
}

func TestDocument_NilData(t *testing.T) {
	entry, err := NewDefaultRegistry().Get(ClassicID)
	require.NoError(t, err)

	var buildErr *BuildError
	assert.True(t, errors.As(NewDocument(entry, nil, uncompressed()).Run(&bytes.Buffer{}), &buildErr))
}

func TestRenderFallback(t *testing.T) {
	var buf bytes.Buffer
	err := RenderFallback(&buf, ClassicID, errors.New("boom"), pdf.Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "("+FallbackTitle+")")
	assert.Contains(t, out, "(Cause: boom)")

	pages, err := pdf.CountPages(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestRenderFallback_NilCauseAndLongMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderFallback(&buf, "", nil, pdf.Options{}))
	assert.Contains(t, buf.String(), "(Cause: unknown error)")

	buf.Reset()
	long := errors.New(strings.Repeat("very long failure reason ", 500))
	require.NoError(t, RenderFallback(&buf, ClassicID, long, pdf.Options{}))
	pages, err := pdf.CountPages(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderFallback_WriteFailure(t *testing.T) {
	err := RenderFallback(failingWriter{}, ClassicID, errors.New("boom"), pdf.Options{})

	var fallbackErr *FallbackError
	require.True(t, errors.As(err, &fallbackErr))
	assert.Contains(t, err.Error(), "disk full")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "init", StateInit.String())
	assert.Equal(t, "finalized", StateFinalized.String())
	assert.Equal(t, "state(9)", State(9).String())
}
