package pdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyle() styles.ParagraphStyle {
	return styles.ParagraphStyle{
		Name:       "Body",
		FontFamily: "Helvetica",
		FontSize:   10,
		Leading:    12,
		TextColor:  types.DefaultSecondary,
	}
}

func render(t *testing.T, pages int, text string) []byte {
	t.Helper()
	s := NewSurface(layout.Letter, Options{Title: "Test", CreationDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	for i := 0; i < pages; i++ {
		s.AddPage()
		s.SetFillColor(types.DefaultPrimary)
		s.Rect(0, 0, 612, 10, true)
		s.SetDrawColor(types.DefaultPrimary)
		s.SetLineWidth(1)
		s.Line(36, 50, 576, 50)
		s.DrawText(36, 60, 540, text, testStyle())
	}
	require.NoError(t, s.Err())
	assert.Equal(t, pages, s.PageCount())

	var buf bytes.Buffer
	require.NoError(t, s.Output(&buf))
	return buf.Bytes()
}

func TestSurface_OutputContainsText(t *testing.T) {
	data := render(t, 1, "Jane Doe")

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "(Jane Doe)")
	assert.Contains(t, string(data), DefaultCreator)
}

func TestSurface_TranslatesNonASCII(t *testing.T) {
	data := render(t, 1, "Café • Zürich")
	assert.NotEmpty(t, data)
}

func TestSurface_SplitText(t *testing.T) {
	s := NewSurface(layout.Letter, Options{})
	style := testStyle()

	lines := s.SplitText("Built reliable things\n\nShipped them", style, 1000)
	assert.Equal(t, []string{"Built reliable things", "Shipped them"}, lines)

	narrow := s.SplitText("alpha beta gamma delta", style, 60)
	require.Greater(t, len(narrow), 1)
	assert.Equal(t, "alpha beta gamma delta", strings.Join(narrow, " "))
	for _, line := range narrow {
		assert.LessOrEqual(t, s.width(line), 60.0)
	}

	assert.Empty(t, s.SplitText("   ", style, 100))
}

func TestSurface_SplitTextBreaksLongWords(t *testing.T) {
	s := NewSurface(layout.Letter, Options{})
	word := strings.Repeat("x", 80)

	lines := s.SplitText(word, testStyle(), 50)
	require.Greater(t, len(lines), 1)
	assert.Equal(t, word, strings.Join(lines, ""))
}

func TestSurface_SplitTextHandlesNonASCII(t *testing.T) {
	s := NewSurface(layout.Letter, Options{})

	lines := s.SplitText("Café résumé naïve façade", testStyle(), 40)
	assert.Equal(t, "Café résumé naïve façade", strings.Join(lines, " "))
}

func TestCountPages(t *testing.T) {
	n, err := CountPages(render(t, 3, "page"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountPages_InvalidInput(t *testing.T) {
	var inspectErr *InspectError

	_, err := CountPages(nil)
	assert.True(t, errors.As(err, &inspectErr))

	_, err = CountPages([]byte("not a pdf"))
	assert.True(t, errors.As(err, &inspectErr))
}

func TestInspect_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	data := render(t, 2, "Engineer")
	require.NoError(t, os.WriteFile(path, data, 0644))

	info, err := Inspect(path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Pages)
	assert.Equal(t, len(data), info.Size)

	_, err = Inspect(filepath.Join(t.TempDir(), "missing.pdf"), false)
	var inspectErr *InspectError
	assert.True(t, errors.As(err, &inspectErr))
}
