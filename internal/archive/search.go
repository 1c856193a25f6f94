package archive

import (
	"context"
	"fmt"

	"github.com/rcliao/courtdocs/internal/model"
	"github.com/rcliao/courtdocs/internal/query"
	"github.com/rcliao/courtdocs/internal/store"
)

// Search modes.
const (
	ModeStructured = "structured"
	ModeSimilarity = "similarity"
	ModeKeyword    = "keyword"
)

// SearchResult is the answer to one search.
type SearchResult struct {
	Criteria  model.SearchCriteria `json:"criteria"`
	Mode      string               `json:"mode"`
	Documents []model.Document     `json:"documents"`
	Hits      []model.SearchHit    `json:"hits,omitempty"`
}

// Query analyzes free text and runs the resulting search.
func (s *Service) Query(ctx context.Context, text string) (*SearchResult, error) {
	return s.Search(ctx, query.Analyze(text))
}

// Search runs c against the collection. Criteria with structured keys go
// through the criteria matcher; otherwise GeneralSearch is ranked by
// embedding similarity, or by keywords when no embedder is configured.
func (s *Service) Search(ctx context.Context, c model.SearchCriteria) (*SearchResult, error) {
	if !c.HasStructured() && c.IsGeneral() {
		return s.searchGeneral(ctx, c)
	}

	docs, err := s.store.List(ctx, store.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	matched := query.Match(docs, c)
	if len(matched) > s.maxResults {
		matched = matched[:s.maxResults]
	}

	s.logger.Debug("search.route", "mode", ModeStructured, "candidates", len(docs), "results", len(matched))
	return &SearchResult{Criteria: c, Mode: ModeStructured, Documents: matched}, nil
}

func (s *Service) searchGeneral(ctx context.Context, c model.SearchCriteria) (*SearchResult, error) {
	res := &SearchResult{Criteria: c, Mode: ModeKeyword}

	var hits []model.SearchHit
	var err error
	if s.embedder != nil {
		var vec []float32
		vec, err = s.embed(ctx, c.GeneralSearch)
		if err == nil {
			res.Mode = ModeSimilarity
			hits, err = s.store.SimilaritySearch(ctx, vec, s.topK)
		} else {
			s.logger.Warn("search.embed.failed", "error", err)
		}
	}
	if res.Mode == ModeKeyword {
		hits, err = s.store.KeywordSearch(ctx, c.GeneralSearch, s.topK)
	}
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", res.Mode, err)
	}

	res.Hits = hits
	res.Documents = make([]model.Document, len(hits))
	for i, h := range hits {
		res.Documents[i] = h.Document
	}

	s.logger.Debug("search.route", "mode", res.Mode, "results", len(hits))
	return res, nil
}

func (s *Service) searchDocuments(ctx context.Context, c model.SearchCriteria) ([]model.Document, error) {
	res, err := s.Search(ctx, c)
	if err != nil {
		return nil, err
	}
	return res.Documents, nil
}
