package templates

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	embedded "github.com/jonathan/resume-builder/schemas"
)

// Entry is one registered template
type Entry struct {
	ID        string                 `json:"id"`
	Assembler Assembler              `json:"-"`
	Builder   styles.Builder         `json:"-"`
	Metadata  types.TemplateMetadata `json:"metadata"`
	Version   string                 `json:"version"`
	BaseID    string                 `json:"base_id,omitempty"`
	Default   bool                   `json:"default"`
}

// Layout returns the layout kind of the entry's assembler
func (e *Entry) Layout() string {
	return e.Metadata.Layout
}

// Registry maps template ids to entries. Lookups take a read lock; registration and
// customization take the write lock.
type Registry struct {
	mu        sync.RWMutex
	entries   map[string]*Entry
	defaultID string
	counters  map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]*Entry),
		counters: make(map[string]int),
	}
}

// Register stores a template. Missing metadata sections are filled with defaults and the
// layout defaults to the assembler's. The first registration becomes the default unless a
// later one sets isDefault.
func (r *Registry) Register(id string, a Assembler, b styles.Builder, meta types.TemplateMetadata, isDefault bool) error {
	if id == "" {
		return &RegistrationError{ID: id, Message: "id is required"}
	}
	if a == nil {
		return &RegistrationError{ID: id, Message: "assembler is required"}
	}

	if meta.Layout == "" {
		meta.Layout = a.Layout()
	}
	meta = meta.WithDefaults()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[id] = &Entry{
		ID:        id,
		Assembler: a,
		Builder:   b,
		Metadata:  meta,
		Version:   meta.Version,
	}
	if r.defaultID == "" || isDefault {
		r.defaultID = id
	}
	return nil
}

// Get returns a copy of the entry for id, or the default entry when id is empty
func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == "" {
		id = r.defaultID
	}
	e, ok := r.entries[id]
	if !ok {
		return nil, &TemplateNotFoundError{ID: id}
	}
	return r.copyEntry(e), nil
}

// DefaultID returns the id of the default template
func (r *Registry) DefaultID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID
}

// SetDefault makes id the template used for empty lookups
func (r *Registry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return &TemplateNotFoundError{ID: id}
	}
	r.defaultID = id
	return nil
}

// List returns copies of every entry sorted by id
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, r.copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Customize deep-merges overrides into a copy of the base template's metadata and registers
// the result under a new id "{id}-custom-{n}". The base entry is not modified.
func (r *Registry) Customize(id string, overrides map[string]any) (string, error) {
	return r.derive(id, "", overrides, false)
}

// Derive registers a template named newID built from baseID with overrides applied
func (r *Registry) Derive(newID, baseID string, overrides map[string]any, isDefault bool) error {
	if newID == "" {
		return &RegistrationError{ID: newID, Message: "id is required"}
	}
	_, err := r.derive(baseID, newID, overrides, isDefault)
	return err
}

func (r *Registry) derive(baseID, newID string, overrides map[string]any, isDefault bool) (string, error) {
	patch, err := overridePatch(baseID, overrides)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if baseID == "" {
		baseID = r.defaultID
	}
	base, ok := r.entries[baseID]
	if !ok {
		return "", &TemplateNotFoundError{ID: baseID}
	}
	meta, err := mergeMetadata(base, patch)
	if err != nil {
		return "", err
	}

	if newID == "" {
		newID = r.nextID(baseID)
	}
	r.entries[newID] = &Entry{
		ID:        newID,
		Assembler: base.Assembler,
		Builder:   base.Builder,
		Metadata:  meta,
		Version:   meta.Version,
		BaseID:    baseID,
	}
	if isDefault {
		r.defaultID = newID
	}
	return newID, nil
}

// Resolve returns a copy of the entry for id with overrides merged into its metadata.
// Nothing is registered: the returned entry keeps the base id and is only valid for the
// caller's own document.
func (r *Registry) Resolve(id string, overrides map[string]any) (*Entry, error) {
	patch, err := overridePatch(id, overrides)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == "" {
		id = r.defaultID
	}
	base, ok := r.entries[id]
	if !ok {
		return nil, &TemplateNotFoundError{ID: id}
	}
	meta, err := mergeMetadata(base, patch)
	if err != nil {
		return nil, err
	}

	e := r.copyEntry(base)
	e.Metadata = meta
	e.Version = meta.Version
	return e, nil
}

// overridePatch validates overrides against the overrides schema and normalizes them to a
// plain JSON map
func overridePatch(templateID string, overrides map[string]any) (map[string]any, error) {
	if overrides == nil {
		overrides = map[string]any{}
	}
	if err := schemas.ValidateDocument(embedded.TemplateOverrides, overrides); err != nil {
		return nil, &CustomizationError{TemplateID: templateID, Message: "invalid overrides", Cause: err}
	}
	patch, err := toMap(overrides)
	if err != nil {
		return nil, &CustomizationError{TemplateID: templateID, Message: "overrides are not a JSON object", Cause: err}
	}
	return patch, nil
}

// mergeMetadata deep-merges patch into a copy of the base metadata. The layout always
// stays the base's.
func mergeMetadata(base *Entry, patch map[string]any) (types.TemplateMetadata, error) {
	current, err := toMap(base.Metadata)
	if err != nil {
		return types.TemplateMetadata{}, &CustomizationError{TemplateID: base.ID, Message: "failed to encode base metadata", Cause: err}
	}

	raw, err := json.Marshal(DeepMerge(current, patch))
	if err != nil {
		return types.TemplateMetadata{}, &CustomizationError{TemplateID: base.ID, Message: "failed to encode merged metadata", Cause: err}
	}
	var meta types.TemplateMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return types.TemplateMetadata{}, &CustomizationError{TemplateID: base.ID, Message: "merged metadata is invalid", Cause: err}
	}
	meta.Layout = base.Metadata.Layout
	return meta.WithDefaults(), nil
}

// nextID returns an unused "{base}-custom-{n}" id; the caller holds the write lock
func (r *Registry) nextID(base string) string {
	for {
		r.counters[base]++
		id := fmt.Sprintf("%s-custom-%d", base, r.counters[base])
		if _, taken := r.entries[id]; !taken {
			return id
		}
	}
}

func (r *Registry) copyEntry(e *Entry) *Entry {
	c := *e
	c.Metadata = e.Metadata.Clone()
	c.Default = e.ID == r.defaultID
	return &c
}

// DeepMerge returns a new map with src merged into dst. Nested maps merge key by key;
// any other value in src replaces the one in dst.
func DeepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = DeepMerge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
