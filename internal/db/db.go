// Package db provides storage for generated documents: a PostgreSQL store backed by pgx
// and an in-memory store used when no database is configured.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schema creates the documents table when it does not exist yet
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id          UUID PRIMARY KEY,
	template_id TEXT NOT NULL,
	pages       INTEGER NOT NULL,
	degraded    BOOLEAN NOT NULL DEFAULT FALSE,
	size_bytes  INTEGER NOT NULL,
	content     BYTEA NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS documents_created_at_idx ON documents (created_at DESC);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ Store = (*DB)(nil)

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// EnsureSchema creates the documents table and its index
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveDocument stores a generated PDF and returns its record with ID and CreatedAt set
func (db *DB) SaveDocument(ctx context.Context, in DocumentInput) (*Document, error) {
	doc := newDocument(in)
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (id, template_id, pages, degraded, size_bytes, content)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		doc.ID, doc.TemplateID, doc.Pages, doc.Degraded, doc.Size, doc.Content,
	).Scan(&doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil
}

// GetDocument loads a document with its content
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	var doc Document
	err := db.pool.QueryRow(ctx,
		`SELECT id, template_id, pages, degraded, size_bytes, content, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&doc.ID, &doc.TemplateID, &doc.Pages, &doc.Degraded, &doc.Size, &doc.Content, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &DocumentNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return &doc, nil
}

// ListDocuments returns the newest documents first, without content
func (db *DB) ListDocuments(ctx context.Context, limit int) ([]Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, template_id, pages, degraded, size_bytes, created_at
		 FROM documents ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.TemplateID, &d.Pages, &d.Degraded, &d.Size, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocumentsBefore removes documents created before cutoff and returns how many
func (db *DB) DeleteDocumentsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	return tag.RowsAffected(), nil
}
