package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps documents in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*Document
	now  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[uuid.UUID]*Document), now: time.Now}
}

// SaveDocument stores a copy of the document content
func (m *MemoryStore) SaveDocument(_ context.Context, in DocumentInput) (*Document, error) {
	in.Content = append([]byte(nil), in.Content...)
	doc := newDocument(in)
	doc.CreatedAt = m.now()

	m.mu.Lock()
	m.docs[doc.ID] = doc
	m.mu.Unlock()

	out := *doc
	return &out, nil
}

// GetDocument returns a copy of the stored document
func (m *MemoryStore) GetDocument(_ context.Context, id uuid.UUID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, &DocumentNotFoundError{ID: id}
	}
	out := *doc
	out.Content = append([]byte(nil), doc.Content...)
	return &out, nil
}

// ListDocuments returns the newest documents first, without content
func (m *MemoryStore) ListDocuments(_ context.Context, limit int) ([]Document, error) {
	m.mu.RLock()
	docs := make([]Document, 0, len(m.docs))
	for _, d := range m.docs {
		c := *d
		c.Content = nil
		docs = append(docs, c)
	}
	m.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID.String() < docs[j].ID.String()
		}
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if limit = clampLimit(limit); len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// DeleteDocumentsBefore removes documents created before cutoff
func (m *MemoryStore) DeleteDocumentsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, d := range m.docs {
		if d.CreatedAt.Before(cutoff) {
			delete(m.docs, id)
			n++
		}
	}
	return n, nil
}

// Close is a no-op
func (m *MemoryStore) Close() {}
