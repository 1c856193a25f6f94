// Package store provides the court document storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rcliao/courtdocs/internal/model"
)

// ErrNotFound is returned when a document ID does not exist.
var ErrNotFound = errors.New("document not found")

// ChunkInput is a piece of document text with its optional embedding.
type ChunkInput struct {
	Text   string
	Vector []float32
}

// PutParams holds parameters for storing a document.
type PutParams struct {
	ID          string // derived from Filename and ProcessedAt when empty
	Filename    string
	Text        string
	Metadata    model.Metadata
	ProcessedAt time.Time
	Status      string
	Valid       bool
	Chunks      []ChunkInput
}

// ListParams holds parameters for listing documents.
type ListParams struct {
	Status   string
	Limit    int // 0 means no limit
	WithText bool
}

// Store defines the document storage interface.
type Store interface {
	// Put stores a document, replacing any document with the same ID.
	Put(ctx context.Context, p PutParams) (*model.Document, error)

	// Get retrieves a document with its text by ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns documents newest first.
	List(ctx context.Context, p ListParams) ([]model.Document, error)

	// Delete removes a document with its metadata and chunks.
	Delete(ctx context.Context, id string) error

	// FilterOptions returns the cached distinct values per filter.
	FilterOptions(ctx context.Context) (FilterOptions, error)

	// KeywordSearch ranks documents by full-text match of their chunks.
	KeywordSearch(ctx context.Context, query string, limit int) ([]model.SearchHit, error)

	// SimilaritySearch ranks documents by their best chunk's cosine similarity to vec.
	SimilaritySearch(ctx context.Context, vec []float32, limit int) ([]model.SearchHit, error)

	// ExportAll returns every document with its text, oldest first.
	ExportAll(ctx context.Context, status string) ([]model.Document, error)

	// Stats returns database statistics.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the store.
	Close() error
}
