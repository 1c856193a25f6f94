package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// FilterOptions maps a filter name (judge, court, case_type, district, year,
// decision_type) to its distinct non-empty values in ascending order.
type FilterOptions map[string][]string

// filterColumns maps filter names to document_metadata columns.
var filterColumns = []struct {
	name   string
	column string
}{
	{"judge", "judge"},
	{"court", "court_name"},
	{"case_type", "case_type"},
	{"district", "district"},
	{"year", "year"},
	{"decision_type", "decision_type"},
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// refreshFilterOptions rebuilds the filter_options cache from document_metadata.
func refreshFilterOptions(ctx context.Context, db execQuerier, now time.Time) error {
	for _, fc := range filterColumns {
		values, err := distinctValues(ctx, db, fc.column)
		if err != nil {
			return err
		}
		b, _ := json.Marshal(values)
		_, err = db.ExecContext(ctx,
			`INSERT OR REPLACE INTO filter_options (filter_type, options, updated_at) VALUES (?, ?, ?)`,
			fc.name, string(b), now.Format(timeLayout))
		if err != nil {
			return err
		}
	}
	return nil
}

func distinctValues(ctx context.Context, db execQuerier, column string) ([]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		`SELECT DISTINCT %[1]s FROM document_metadata WHERE %[1]s != '' ORDER BY %[1]s`, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (s *SQLiteStore) FilterOptions(ctx context.Context) (FilterOptions, error) {
	opts := make(FilterOptions, len(filterColumns))
	for _, fc := range filterColumns {
		opts[fc.name] = []string{}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT filter_type, options FROM filter_options`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("decode %s options: %w", name, err)
		}
		opts[name] = values
	}
	return opts, rows.Err()
}
