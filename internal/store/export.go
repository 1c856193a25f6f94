package store

import (
	"context"

	"github.com/rcliao/courtdocs/internal/model"
)

// ExportAll returns every document with its text, oldest first, optionally
// restricted to one status.
func (s *SQLiteStore) ExportAll(ctx context.Context, status string) ([]model.Document, error) {
	var args []interface{}
	where := ""
	if status != "" {
		where = "d.status = ?"
		args = append(args, status)
	}

	rows, err := s.db.QueryContext(ctx, documentQuery(true, where)+" ORDER BY d.created_at, d.rowid", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
