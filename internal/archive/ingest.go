package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rcliao/courtdocs/internal/chunker"
	"github.com/rcliao/courtdocs/internal/extract"
	"github.com/rcliao/courtdocs/internal/model"
	"github.com/rcliao/courtdocs/internal/store"
)

// ErrUnsupportedFile is returned for inputs that are neither .txt nor .zip.
var ErrUnsupportedFile = errors.New("unsupported file type")

// FileResult is the outcome of ingesting one document.
type FileResult struct {
	Path       string `json:"path"`
	DocumentID string `json:"document_id,omitempty"`
	Valid      bool   `json:"valid"`
	Err        string `json:"error,omitempty"`
}

// BatchStats aggregates a batch ingestion.
type BatchStats struct {
	Scanned   int `json:"scanned"`
	Succeeded int `json:"succeeded"`
	Invalid   int `json:"invalid"`
	Failed    int `json:"failed"`
}

func (st *BatchStats) add(r FileResult) {
	st.Scanned++
	switch {
	case r.Err != "":
		st.Failed++
	case !r.Valid:
		st.Succeeded++
		st.Invalid++
	default:
		st.Succeeded++
	}
}

// Ingest extracts metadata from raw, chunks and embeds its text, and stores it.
//
// Documents whose text cannot be processed are stored with status "failed"
// and the extraction error is returned alongside the stored record. Documents
// missing every essential field are stored as processed but not valid.
func (s *Service) Ingest(ctx context.Context, raw model.RawDocument) (*model.Document, error) {
	start := time.Now()
	if raw.ProcessedAt.IsZero() {
		raw.ProcessedAt = s.now()
	}

	meta, extractErr := extract.ExtractDocument(raw)
	if extractErr != nil {
		s.logger.Warn("ingest.document.failed", "filename", raw.Filename, "error", extractErr)
		doc, err := s.store.Put(ctx, store.PutParams{
			Filename:    raw.Filename,
			Text:        strings.ToValidUTF8(raw.Text, "�"),
			ProcessedAt: raw.ProcessedAt,
			Status:      model.StatusFailed,
		})
		if err != nil {
			return nil, fmt.Errorf("store failed document: %w", err)
		}
		return doc, extractErr
	}

	valid := extract.Validate(meta)
	if !valid {
		s.logger.Warn("ingest.document.invalid", "filename", raw.Filename)
	}

	chunks := s.chunks(ctx, raw.Text, meta)

	doc, err := s.store.Put(ctx, store.PutParams{
		Filename:    raw.Filename,
		Text:        raw.Text,
		Metadata:    meta,
		ProcessedAt: raw.ProcessedAt,
		Status:      model.StatusProcessed,
		Valid:       valid,
		Chunks:      chunks,
	})
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	s.logger.Info("ingest.document.ok",
		"document_id", doc.ID,
		"filename", raw.Filename,
		"valid", valid,
		"chunks", len(chunks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}

// chunks splits text into word windows plus one metadata description chunk,
// embedding each when an embedder is configured. An embedding failure drops
// all vectors for the document; keyword search still covers it.
func (s *Service) chunks(ctx context.Context, text string, meta model.Metadata) []store.ChunkInput {
	var out []store.ChunkInput
	for _, c := range chunker.Chunk(text, s.chunk) {
		out = append(out, store.ChunkInput{Text: c.Text})
	}
	if desc := extract.Describe(meta); desc != "" {
		out = append(out, store.ChunkInput{Text: desc})
	}
	if s.embedder == nil {
		return out
	}

	for i := range out {
		v, err := s.embed(ctx, out[i].Text)
		if err != nil {
			s.logger.Warn("ingest.embed.failed", "error", err)
			for j := range out {
				out[j].Vector = nil
			}
			return out
		}
		out[i].Vector = v
	}
	return out
}

// IngestBytes ingests a named upload: a .txt document or a .zip archive of them.
func (s *Service) IngestBytes(ctx context.Context, name string, data []byte) []FileResult {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return []FileResult{s.ingestText(ctx, name, name, data)}
	case ".zip":
		return s.ingestZip(ctx, name, data)
	default:
		return []FileResult{{Path: name, Err: fmt.Sprintf("%s: %v", name, ErrUnsupportedFile)}}
	}
}

func (s *Service) ingestText(ctx context.Context, displayPath, filename string, data []byte) FileResult {
	doc, err := s.Ingest(ctx, model.RawDocument{Text: string(data), Filename: filename})
	r := FileResult{Path: displayPath}
	if doc != nil {
		r.DocumentID = doc.ID
		r.Valid = doc.Valid
	}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

func (s *Service) ingestZip(ctx context.Context, name string, data []byte) []FileResult {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return []FileResult{{Path: name, Err: fmt.Sprintf("open zip: %v", err)}}
	}

	var results []FileResult
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() || !strings.EqualFold(path.Ext(zf.Name), ".txt") {
			continue
		}
		display := name + "/" + zf.Name
		b, err := readZipFile(zf)
		if err != nil {
			results = append(results, FileResult{Path: display, Err: err.Error()})
			continue
		}
		results = append(results, s.ingestText(ctx, display, path.Base(zf.Name), b))
	}
	return results
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// IngestPaths ingests files and directory trees. Directories are walked for
// .txt and .zip files. One bad document never aborts the batch.
func (s *Service) IngestPaths(ctx context.Context, paths []string) ([]FileResult, BatchStats, error) {
	var results []FileResult
	var stats BatchStats
	record := func(rs ...FileResult) {
		for _, r := range rs {
			results = append(results, r)
			stats.add(r)
		}
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				record(FileResult{Path: p, Err: walkErr.Error()})
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(p))
			if ext != ".txt" && ext != ".zip" {
				if p == root {
					record(FileResult{Path: p, Err: fmt.Sprintf("%s: %v", p, ErrUnsupportedFile)})
				}
				return nil
			}
			data, err := os.ReadFile(p)
			if err != nil {
				record(FileResult{Path: p, Err: err.Error()})
				return nil
			}
			record(s.IngestBytes(ctx, p, data)...)
			return nil
		})
		if err != nil {
			return results, stats, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	s.logger.Info("ingest.batch.done",
		"scanned", stats.Scanned,
		"succeeded", stats.Succeeded,
		"invalid", stats.Invalid,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

// Reingest runs previously exported documents through extraction again,
// keeping their filenames and processing times and therefore their IDs.
func (s *Service) Reingest(ctx context.Context, docs []model.Document) ([]FileResult, BatchStats) {
	var results []FileResult
	var stats BatchStats
	for _, d := range docs {
		doc, err := s.Ingest(ctx, model.RawDocument{Text: d.Text, Filename: d.Filename, ProcessedAt: d.ProcessedAt})
		r := FileResult{Path: d.Filename}
		if doc != nil {
			r.DocumentID = doc.ID
			r.Valid = doc.Valid
		}
		if err != nil {
			r.Err = err.Error()
		}
		results = append(results, r)
		stats.add(r)
	}
	return results, stats
}
