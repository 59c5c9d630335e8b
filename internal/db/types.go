package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Default and maximum page sizes for ListDocuments
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Document is a stored PDF
type Document struct {
	ID         uuid.UUID `json:"id"`
	TemplateID string    `json:"template_id"`
	Pages      int       `json:"pages"`
	Degraded   bool      `json:"degraded"`
	Size       int       `json:"size_bytes"`
	Content    []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentInput is the data needed to store a document
type DocumentInput struct {
	TemplateID string
	Pages      int
	Degraded   bool
	Content    []byte
}

// Store persists generated documents
type Store interface {
	SaveDocument(ctx context.Context, in DocumentInput) (*Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)
	ListDocuments(ctx context.Context, limit int) ([]Document, error)
	DeleteDocumentsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Close()
}

// DocumentNotFoundError is returned for an unknown document id
type DocumentNotFoundError struct {
	ID uuid.UUID
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}

func newDocument(in DocumentInput) *Document {
	return &Document{
		ID:         uuid.New(),
		TemplateID: in.TemplateID,
		Pages:      in.Pages,
		Degraded:   in.Degraded,
		Size:       len(in.Content),
		Content:    in.Content,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
