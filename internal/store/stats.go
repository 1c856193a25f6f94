package store

import (
	"context"
	"os"

	"github.com/rcliao/courtdocs/internal/model"
)

// Stats holds database statistics.
type Stats struct {
	DBPath             string `json:"database_path"`
	DBSizeBytes        int64  `json:"db_size_bytes"`
	TotalDocuments     int    `json:"total_documents"`
	ProcessedDocuments int    `json:"processed_documents"`
	FailedDocuments    int    `json:"failed_documents"`
	InvalidDocuments   int    `json:"invalid_documents"`
	TotalChunks        int    `json:"total_chunks"`
	EmbeddedChunks     int    `json:"embedded_chunks"`
	Embedder           string `json:"embedder,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	// DB file size
	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		dst   *int
		query string
		args  []interface{}
	}{
		{&st.TotalDocuments, `SELECT COUNT(*) FROM documents`, nil},
		{&st.ProcessedDocuments, `SELECT COUNT(*) FROM documents WHERE status = ?`, []interface{}{model.StatusProcessed}},
		{&st.FailedDocuments, `SELECT COUNT(*) FROM documents WHERE status = ?`, []interface{}{model.StatusFailed}},
		{&st.InvalidDocuments, `SELECT COUNT(*) FROM documents WHERE valid = 0`, nil},
		{&st.TotalChunks, `SELECT COUNT(*) FROM chunks`, nil},
		{&st.EmbeddedChunks, `SELECT COUNT(*) FROM chunks WHERE vector IS NOT NULL`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return st, err
		}
	}

	return st, nil
}
