package store

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/courtdocs/internal/model"
)

// timeLayout has fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
	now     func() time.Time
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     func() time.Time { return time.Now().UTC() },
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// DocumentID derives the stable identifier of a document ingested from
// filename at processedAt.
func DocumentID(filename string, processedAt time.Time) string {
	sum := md5.Sum([]byte(filename + "_" + processedAt.UTC().Format(timeLayout)))
	return "doc_" + hex.EncodeToString(sum[:])[:12]
}

func (s *SQLiteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id            TEXT PRIMARY KEY,
		filename      TEXT NOT NULL,
		text_content  TEXT NOT NULL,
		processed_at  TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'processed',
		valid         INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_documents_created ON documents(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);

	CREATE TABLE IF NOT EXISTS document_metadata (
		document_id    TEXT PRIMARY KEY REFERENCES documents(id) ON DELETE CASCADE,
		court_name     TEXT NOT NULL DEFAULT '',
		case_number    TEXT NOT NULL DEFAULT '',
		judge          TEXT NOT NULL DEFAULT '',
		case_type      TEXT NOT NULL DEFAULT '',
		district       TEXT NOT NULL DEFAULT '',
		decision_type  TEXT NOT NULL DEFAULT '',
		year           TEXT NOT NULL DEFAULT '',
		applicant      TEXT NOT NULL DEFAULT '',
		parties        TEXT NOT NULL DEFAULT '[]',
		dates          TEXT NOT NULL DEFAULT '{}',
		metadata_json  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_metadata_judge ON document_metadata(judge);
	CREATE INDEX IF NOT EXISTS idx_metadata_year ON document_metadata(year);

	CREATE TABLE IF NOT EXISTS chunks (
		id           TEXT PRIMARY KEY,
		document_id  TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		text         TEXT NOT NULL,
		vector       BLOB
	);
	CREATE INDEX IF NOT EXISTS idx_chunks_document ON chunks(document_id);

	CREATE TABLE IF NOT EXISTS filter_options (
		filter_type  TEXT PRIMARY KEY,
		options      TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS chunks_fts USING fts5(
		text,
		content=chunks,
		content_rowid=rowid
	);

	CREATE TRIGGER IF NOT EXISTS chunks_ai AFTER INSERT ON chunks BEGIN
		INSERT INTO chunks_fts(rowid, text) VALUES (new.rowid, new.text);
	END;
	CREATE TRIGGER IF NOT EXISTS chunks_ad AFTER DELETE ON chunks BEGIN
		INSERT INTO chunks_fts(chunks_fts, rowid, text) VALUES('delete', old.rowid, old.text);
	END;
	CREATE TRIGGER IF NOT EXISTS chunks_au AFTER UPDATE ON chunks BEGIN
		INSERT INTO chunks_fts(chunks_fts, rowid, text) VALUES('delete', old.rowid, old.text);
		INSERT INTO chunks_fts(rowid, text) VALUES (new.rowid, new.text);
	END;
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Document, error) {
	now := s.now()
	processedAt := p.ProcessedAt
	if processedAt.IsZero() {
		processedAt = now
	}
	id := p.ID
	if id == "" {
		id = DocumentID(p.Filename, processedAt)
	}
	status := p.Status
	if status == "" {
		status = model.StatusProcessed
	}

	metaJSON, err := json.Marshal(p.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	partiesJSON, _ := json.Marshal(nonNil(p.Metadata.Parties))
	datesJSON, _ := json.Marshal(p.Metadata.Dates)
	if p.Metadata.Dates == nil {
		datesJSON = []byte("{}")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Replacing a document drops its old metadata and chunks through the cascade.
	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("replace document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, filename, text_content, processed_at, status, valid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.Filename, p.Text, processedAt.UTC().Format(timeLayout), status, p.Valid, now.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	m := p.Metadata
	_, err = tx.ExecContext(ctx,
		`INSERT INTO document_metadata (document_id, court_name, case_number, judge, case_type,
		        district, decision_type, year, applicant, parties, dates, metadata_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, m.Get(model.FieldCourtName), m.Get(model.FieldCaseNumber), m.Get(model.FieldJudge),
		m.Get(model.FieldCaseType), m.Get(model.FieldDistrict), m.Get(model.FieldDecisionType),
		m.Get(model.FieldYear), m.Get(model.FieldApplicant),
		string(partiesJSON), string(datesJSON), string(metaJSON))
	if err != nil {
		return nil, fmt.Errorf("insert metadata: %w", err)
	}

	for i, c := range p.Chunks {
		var blob []byte
		if len(c.Vector) > 0 {
			blob = encodeVector(c.Vector)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chunks (id, document_id, seq, text, vector) VALUES (?, ?, ?, ?, ?)`,
			s.newID(), id, i, c.Text, blob)
		if err != nil {
			return nil, fmt.Errorf("insert chunk: %w", err)
		}
	}

	if err := refreshFilterOptions(ctx, tx, now); err != nil {
		return nil, fmt.Errorf("refresh filter options: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Document{
		ID:          id,
		Filename:    p.Filename,
		Text:        p.Text,
		Metadata:    p.Metadata,
		ProcessedAt: processedAt.UTC(),
		Status:      status,
		CreatedAt:   now,
		Valid:       p.Valid,
	}, nil
}

const selectDocument = `
	SELECT d.id, d.filename, %s, d.processed_at, d.status, d.valid, d.created_at,
	       COALESCE(m.metadata_json, '{}')
	FROM documents d
	LEFT JOIN document_metadata m ON m.document_id = d.id`

func documentQuery(withText bool, where string) string {
	text := "''"
	if withText {
		text = "d.text_content"
	}
	q := fmt.Sprintf(selectDocument, text)
	if where != "" {
		q += " WHERE " + where
	}
	return q
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Document, error) {
	row := s.db.QueryRowContext(ctx, documentQuery(true, "d.id = ?"), id)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Document, error) {
	var where []string
	var args []interface{}

	if p.Status != "" {
		where = append(where, "d.status = ?")
		args = append(args, p.Status)
	}

	query := documentQuery(p.WithText, strings.Join(where, " AND ")) +
		" ORDER BY d.created_at DESC, d.rowid DESC"
	if p.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, p.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

// getMany loads documents by ID without their text, keyed by ID.
func (s *SQLiteStore) getMany(ctx context.Context, ids []string) (map[string]model.Document, error) {
	out := make(map[string]model.Document, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, documentQuery(false, "d.id IN ("+placeholders+")"), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out[d.ID] = d
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err := refreshFilterOptions(ctx, tx, s.now()); err != nil {
		return fmt.Errorf("refresh filter options: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row scanner) (model.Document, error) {
	var d model.Document
	var processedAt, createdAt, metaJSON string

	err := row.Scan(&d.ID, &d.Filename, &d.Text, &processedAt, &d.Status, &d.Valid, &createdAt, &metaJSON)
	if err != nil {
		return d, err
	}

	d.ProcessedAt, _ = time.Parse(timeLayout, processedAt)
	d.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if err := json.Unmarshal([]byte(metaJSON), &d.Metadata); err != nil {
		return d, fmt.Errorf("decode metadata of %s: %w", d.ID, err)
	}
	return d, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
