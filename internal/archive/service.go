// Package archive ties extraction, storage, embedding and query analysis into
// the operations exposed by the CLI and the HTTP server.
package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rcliao/courtdocs/internal/chunker"
	"github.com/rcliao/courtdocs/internal/embedding"
	"github.com/rcliao/courtdocs/internal/model"
	"github.com/rcliao/courtdocs/internal/query"
	"github.com/rcliao/courtdocs/internal/store"
)

// Options configures a Service. Zero values select defaults.
type Options struct {
	Embedder   embedding.Embedder // nil disables similarity search
	Chunk      chunker.Options
	TopK       int
	MaxResults int
	Rand       *rand.Rand
	Logger     *slog.Logger
}

// Service runs ingestion, search and chat over one document store.
type Service struct {
	store      store.Store
	embedder   embedding.Embedder
	chunk      chunker.Options
	topK       int
	maxResults int
	responder  *query.Responder
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a Service over st.
func New(st store.Store, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.TopK <= 0 {
		opts.TopK = 10
	}
	if opts.MaxResults <= 0 || opts.MaxResults > query.MaxResults {
		opts.MaxResults = query.MaxResults
	}
	s := &Service{
		store:      st,
		embedder:   opts.Embedder,
		chunk:      opts.Chunk,
		topK:       opts.TopK,
		maxResults: opts.MaxResults,
		logger:     opts.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	s.responder = query.NewResponder(s.searchDocuments, opts.Rand)
	return s
}

// Get returns a stored document with its text.
func (s *Service) Get(ctx context.Context, id string) (*model.Document, error) {
	return s.store.Get(ctx, id)
}

// List returns stored documents newest first, without their text.
func (s *Service) List(ctx context.Context, status string, limit int) ([]model.Document, error) {
	return s.store.List(ctx, store.ListParams{Status: status, Limit: limit})
}

// Delete removes a stored document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("document.deleted", "document_id", id)
	return nil
}

// Filters returns the distinct values available for each structured filter.
func (s *Service) Filters(ctx context.Context) (store.FilterOptions, error) {
	return s.store.FilterOptions(ctx)
}

// Stats returns store statistics annotated with the active embedder.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if s.embedder != nil {
		st.Embedder = s.embedder.Name()
	}
	return st, nil
}

// Chat answers a free-text message. Search failures are logged and answered
// with an apology rather than returned.
func (s *Service) Chat(ctx context.Context, message string) string {
	reply, err := s.responder.Reply(ctx, message)
	if err != nil {
		s.logger.Error("chat.search.failed", "error", err)
	}
	return reply
}

// ExportAll returns every stored document with its text.
func (s *Service) ExportAll(ctx context.Context) ([]model.Document, error) {
	return s.store.ExportAll(ctx, "")
}

// IsNotFound reports whether err means the requested document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

func (s *Service) embed(ctx context.Context, text string) ([]float32, error) {
	v, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	return v, nil
}
