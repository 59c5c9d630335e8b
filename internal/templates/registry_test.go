package templates

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, ClassicID, r.DefaultID())

	ids := make([]string, 0, 3)
	for _, e := range r.List() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{ClassicID, MinimalID, ModernID}, ids)

	classic, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, ClassicID, classic.ID)
	assert.True(t, classic.Default)
	assert.Equal(t, 1.0, classic.Metadata.Margins.Left)
	assert.Equal(t, types.DefaultPrimary, *classic.Metadata.Colors.Primary)
	assert.Equal(t, types.LayoutSingleColumn, classic.Layout())

	minimal, err := r.Get(MinimalID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, minimal.Metadata.Margins.Top)
	assert.Equal(t, types.LayoutSidebar, minimal.Layout())
	assert.Equal(t, float64(types.DefaultNameSize), minimal.Metadata.Fonts.Name.Size)

	modern, err := r.Get(ModernID)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMarginInches, modern.Metadata.Margins.Right)
	assert.Equal(t, types.LayoutTwoColumn, modern.Layout())
	assert.False(t, modern.Default)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.Get("fancy")
	var notFound *TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "fancy", notFound.ID)
}

func TestRegistry_GetReturnsCopies(t *testing.T) {
	r := NewDefaultRegistry()

	e, err := r.Get(ClassicID)
	require.NoError(t, err)
	e.Metadata.Colors.Primary[0] = 0.9
	e.Metadata.Margins.Left = 3

	again, err := r.Get(ClassicID)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPrimary, *again.Metadata.Colors.Primary)
	assert.Equal(t, 1.0, again.Metadata.Margins.Left)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("a", Modern{}, nil, types.TemplateMetadata{}, false))
	require.NoError(t, r.Register("b", Minimal{}, styles.Minimal, types.TemplateMetadata{}, false))
	assert.Equal(t, "a", r.DefaultID())

	require.NoError(t, r.Register("c", Classic{}, nil, types.TemplateMetadata{}, true))
	assert.Equal(t, "c", r.DefaultID())

	b, err := r.Get("b")
	require.NoError(t, err)
	assert.Equal(t, types.LayoutSidebar, b.Layout())
	assert.Equal(t, types.DefaultVersion, b.Version)
	require.NotNil(t, b.Metadata.UI)

	var regErr *RegistrationError
	assert.True(t, errors.As(r.Register("", Classic{}, nil, types.TemplateMetadata{}, false), &regErr))
	assert.True(t, errors.As(r.Register("x", nil, nil, types.TemplateMetadata{}, false), &regErr))
}

func TestRegistry_CustomizePrimaryColor(t *testing.T) {
	r := NewDefaultRegistry()

	id, err := r.Customize(ClassicID, map[string]any{
		"colors": map[string]any{"primary": []any{1.0, 0.0, 0.0}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, ClassicID, id)
	assert.Equal(t, "classic-custom-1", id)

	custom, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.RGB{1, 0, 0}, *custom.Metadata.Colors.Primary)
	assert.Equal(t, types.DefaultSecondary, *custom.Metadata.Colors.Secondary)
	assert.Equal(t, ClassicID, custom.BaseID)
	assert.Equal(t, 1.0, custom.Metadata.Margins.Left)
	assert.Equal(t, "Times-Bold", custom.Metadata.Fonts.Name.Family)

	base, err := r.Get(ClassicID)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPrimary, *base.Metadata.Colors.Primary)
}

func TestRegistry_CustomizeDeepMergesNestedKeys(t *testing.T) {
	r := NewDefaultRegistry()

	id, err := r.Customize(ModernID, map[string]any{
		"fonts":   map[string]any{"heading": map[string]any{"size": 18}},
		"margins": map[string]any{"left": 0.5},
		"colors":  map[string]any{"secondary": "#333333"},
		"ui":      map[string]any{"name": "Modern (red)"},
	})
	require.NoError(t, err)

	custom, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 18.0, custom.Metadata.Fonts.Heading.Size)
	assert.Equal(t, types.DefaultHeadingFamily, custom.Metadata.Fonts.Heading.Family)
	assert.Equal(t, float64(types.DefaultNameSize), custom.Metadata.Fonts.Name.Size)
	assert.Equal(t, 0.5, custom.Metadata.Margins.Left)
	assert.Equal(t, types.DefaultMarginInches, custom.Metadata.Margins.Right)
	assert.InDelta(t, 0.2, custom.Metadata.Colors.Secondary[0], 1e-9)
	assert.Equal(t, "Modern (red)", custom.Metadata.UI.Name)
	assert.Equal(t, "Two-column layout with a skills column on the right", custom.Metadata.UI.Description)
	assert.Equal(t, types.LayoutTwoColumn, custom.Layout())
}

func TestRegistry_CustomizeGeneratesFreshIDs(t *testing.T) {
	r := NewDefaultRegistry()

	first, err := r.Customize(ClassicID, nil)
	require.NoError(t, err)
	second, err := r.Customize(ClassicID, map[string]any{})
	require.NoError(t, err)
	derived, err := r.Customize(first, nil)
	require.NoError(t, err)

	assert.Equal(t, "classic-custom-1", first)
	assert.Equal(t, "classic-custom-2", second)
	assert.Equal(t, "classic-custom-1-custom-1", derived)
}

func TestRegistry_CustomizeRejectsInvalidOverrides(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []map[string]any{
		{"layout": "sidebar"},
		{"colors": map[string]any{"primary": []any{1.0, 0.0}}},
		{"margins": map[string]any{"left": 9.0}},
		{"margins": map[string]any{"left": 0.0}},
		{"fonts": map[string]any{"name": map[string]any{"size": -1.0}}},
	}
	for _, overrides := range tests {
		_, err := r.Customize(ClassicID, overrides)
		var custErr *CustomizationError
		assert.True(t, errors.As(err, &custErr), "overrides %v", overrides)
	}
	assert.Len(t, r.List(), 3)
}

func TestRegistry_CustomizeUnknownBase(t *testing.T) {
	_, err := NewDefaultRegistry().Customize("fancy", map[string]any{})

	var notFound *TemplateNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestRegistry_ConcurrentCustomize(t *testing.T) {
	r := NewDefaultRegistry()
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := r.Customize(ClassicID, map[string]any{"colors": map[string]any{"primary": "#ff0000"}})
			assert.NoError(t, err)
			ids <- id
			_, err = r.Get(ClassicID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		assert.True(t, strings.HasPrefix(id, "classic-custom-"))
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, r.List(), n+3)
}

func TestRegistry_Derive(t *testing.T) {
	r := NewDefaultRegistry()

	require.NoError(t, r.Derive("navy", ModernID, map[string]any{"colors": map[string]any{"primary": "#000080"}}, true))
	assert.Equal(t, "navy", r.DefaultID())

	e, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "navy", e.ID)
	assert.Equal(t, ModernID, e.BaseID)

	var regErr *RegistrationError
	assert.True(t, errors.As(r.Derive("", ModernID, nil, false), &regErr))
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"colors": map[string]any{"primary": []any{0.1, 0.4, 0.7}, "secondary": []any{0.2, 0.2, 0.2}},
		"layout": "single-column",
	}
	src := map[string]any{
		"colors": map[string]any{"primary": []any{1.0, 0.0, 0.0}},
		"layout": map[string]any{"replaced": true},
	}

	out := DeepMerge(dst, src)

	assert.Equal(t, map[string]any{
		"colors": map[string]any{"primary": []any{1.0, 0.0, 0.0}, "secondary": []any{0.2, 0.2, 0.2}},
		"layout": map[string]any{"replaced": true},
	}, out)
	assert.Equal(t, []any{0.1, 0.4, 0.7}, dst["colors"].(map[string]any)["primary"])
}

func TestRegistry_SetDefault(t *testing.T) {
	r := NewDefaultRegistry()

	require.NoError(t, r.SetDefault(MinimalID))
	e, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, MinimalID, e.ID)
	assert.True(t, e.Default)

	var notFound *TemplateNotFoundError
	assert.True(t, errors.As(r.SetDefault("fancy"), &notFound))
	assert.Equal(t, MinimalID, r.DefaultID())
}

func TestRegistry_CustomizePartialMarginsKeepBaseValues(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		base string
		keep float64
	}{
		{base: ClassicID, keep: 1.0},
		{base: MinimalID, keep: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			id, err := r.Customize(tt.base, map[string]any{"margins": map[string]any{"left": 0.3}})
			require.NoError(t, err)
			custom, err := r.Get(id)
			require.NoError(t, err)

			m := custom.Metadata.Margins
			assert.Equal(t, 0.3, m.Left)
			assert.Equal(t, tt.keep, m.Right)
			assert.Equal(t, tt.keep, m.Top)
			assert.Equal(t, tt.keep, m.Bottom)
		})
	}
}

func TestRegistry_ResolveDoesNotRegister(t *testing.T) {
	r := NewDefaultRegistry()

	e, err := r.Resolve(ModernID, map[string]any{"colors": map[string]any{"primary": []any{1, 0, 0}}})
	require.NoError(t, err)
	assert.Equal(t, ModernID, e.ID)
	assert.Equal(t, types.RGB{1, 0, 0}, *e.Metadata.Colors.Primary)
	assert.Equal(t, types.LayoutTwoColumn, e.Layout())
	assert.Len(t, r.List(), 3)

	base, err := r.Get(ModernID)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPrimary, *base.Metadata.Colors.Primary)

	e, err = r.Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, ClassicID, e.ID)

	_, err = r.Resolve("fancy", nil)
	var notFound *TemplateNotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = r.Resolve(ClassicID, map[string]any{"layout": "sidebar"})
	var custErr *CustomizationError
	assert.True(t, errors.As(err, &custErr))
}
