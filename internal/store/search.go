package store

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/rcliao/courtdocs/internal/embedding"
	"github.com/rcliao/courtdocs/internal/model"
)

const defaultSearchLimit = 10

var ftsToken = regexp.MustCompile(`[\p{L}\p{N}]+`)

// ftsQuery turns free text into an FTS5 expression that ORs quoted terms,
// so user input never reaches the FTS5 query parser as syntax.
func ftsQuery(text string) string {
	terms := ftsToken.FindAllString(text, -1)
	for i, t := range terms {
		terms[i] = `"` + t + `"`
	}
	return strings.Join(terms, " OR ")
}

// KeywordSearch finds documents whose chunks match any term of query,
// best BM25 match first. Score is the negated BM25 rank, so higher is better.
func (s *SQLiteStore) KeywordSearch(ctx context.Context, query string, limit int) ([]model.SearchHit, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	match := ftsQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.document_id, c.seq, c.text, chunks_fts.rank
		FROM chunks_fts
		JOIN chunks c ON c.rowid = chunks_fts.rowid
		WHERE chunks_fts MATCH ?
		ORDER BY chunks_fts.rank`, match)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var best []scoredChunk
	seen := map[string]bool{}
	for rows.Next() {
		var c model.Chunk
		var rank float64
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Seq, &c.Text, &rank); err != nil {
			return nil, err
		}
		if seen[c.DocumentID] {
			continue
		}
		seen[c.DocumentID] = true
		best = append(best, scoredChunk{chunk: c, score: -rank})
		if len(best) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	return s.hits(ctx, best)
}

// SimilaritySearch compares vec against every stored chunk vector and ranks
// documents by their best chunk.
func (s *SQLiteStore) SimilaritySearch(ctx context.Context, vec []float32, limit int) ([]model.SearchHit, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, seq, text, vector FROM chunks WHERE vector IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bestByDoc := map[string]scoredChunk{}
	for rows.Next() {
		var c model.Chunk
		var blob []byte
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Seq, &c.Text, &blob); err != nil {
			return nil, err
		}
		score := embedding.CosineSimilarity(vec, decodeVector(blob))
		if cur, ok := bestByDoc[c.DocumentID]; !ok || score > cur.score {
			bestByDoc[c.DocumentID] = scoredChunk{chunk: c, score: score}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	best := make([]scoredChunk, 0, len(bestByDoc))
	for _, sc := range bestByDoc {
		best = append(best, sc)
	}
	sort.Slice(best, func(i, j int) bool {
		if best[i].score != best[j].score {
			return best[i].score > best[j].score
		}
		return best[i].chunk.DocumentID < best[j].chunk.DocumentID
	})
	if len(best) > limit {
		best = best[:limit]
	}

	return s.hits(ctx, best)
}

type scoredChunk struct {
	chunk model.Chunk
	score float64
}

// hits attaches documents to ranked chunks, keeping the ranking order.
func (s *SQLiteStore) hits(ctx context.Context, ranked []scoredChunk) ([]model.SearchHit, error) {
	ids := make([]string, len(ranked))
	for i, sc := range ranked {
		ids[i] = sc.chunk.DocumentID
	}
	docs, err := s.getMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.SearchHit, 0, len(ranked))
	for _, sc := range ranked {
		d, ok := docs[sc.chunk.DocumentID]
		if !ok {
			continue
		}
		c := sc.chunk
		out = append(out, model.SearchHit{Document: d, Chunk: &c, Score: sc.score})
	}
	return out, nil
}
