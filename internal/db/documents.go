package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DocumentRevision is one stored version of a resume document.
type DocumentRevision struct {
	ID        uuid.UUID       `json:"id"`
	Slug      string          `json:"slug"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveDocument stores content as the newest revision of slug and returns its ID.
// Revisions are append-only.
func (db *DB) SaveDocument(ctx context.Context, slug string, content []byte) (uuid.UUID, error) {
	if slug == "" {
		return uuid.Nil, fmt.Errorf("document slug is empty")
	}
	if !json.Valid(content) {
		return uuid.Nil, fmt.Errorf("document %s is not valid JSON", slug)
	}

	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_documents (id, slug, content) VALUES ($1, $2, $3)`,
		id, slug, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document %s: %w", slug, err)
	}
	return id, nil
}

// GetDocument returns the newest revision of slug, or nil when none exists.
func (db *DB) GetDocument(ctx context.Context, slug string) (*DocumentRevision, error) {
	var rev DocumentRevision
	err := db.pool.QueryRow(ctx,
		`SELECT id, slug, content, created_at
		 FROM resume_documents
		 WHERE slug = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		slug,
	).Scan(&rev.ID, &rev.Slug, &rev.Content, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s: %w", slug, err)
	}
	return &rev, nil
}

// ListRevisions returns revision metadata for slug, newest first. Content is omitted.
func (db *DB) ListRevisions(ctx context.Context, slug string) ([]DocumentRevision, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, slug, created_at
		 FROM resume_documents
		 WHERE slug = $1
		 ORDER BY created_at DESC`,
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions of %s: %w", slug, err)
	}
	defer rows.Close()

	var revisions []DocumentRevision
	for rows.Next() {
		var rev DocumentRevision
		if err := rows.Scan(&rev.ID, &rev.Slug, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revisions: %w", err)
	}
	return revisions, nil
}
