// Package extract turns the plain text of an Azerbaijani court ruling into a
// structured metadata record.
//
// Every extractor is a pure function of the text; a field that does not match
// is simply absent. The catalog of patterns and gazetteers is fixed data, see
// Catalog.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rcliao/courtdocs/internal/model"
)

// ErrDocumentExtractionFailed reports a document that cannot be processed at all.
var ErrDocumentExtractionFailed = errors.New("document extraction failed")

// DocumentError describes why one document could not be processed.
type DocumentError struct {
	Filename string
	Reason   string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDocumentExtractionFailed, e.Filename, e.Reason)
}

func (e *DocumentError) Unwrap() error {
	return ErrDocumentExtractionFailed
}

// Extract runs all extractors of the catalog over text and cleans the result.
func (c *Catalog) Extract(text string) model.Metadata {
	return Clean(model.Metadata{
		Fields:    c.Fields(text),
		CourtInfo: c.CourtInfo(text),
		Parties:   c.Parties(text),
		Dates:     ExtractDates(text),
	})
}

// Extract runs the default catalog.
func Extract(text string) model.Metadata {
	return Default.Extract(text)
}

// ExtractDocument checks that the document carries usable text and extracts its metadata.
func ExtractDocument(doc model.RawDocument) (model.Metadata, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return model.Metadata{}, &DocumentError{Filename: doc.Filename, Reason: "no text available"}
	}
	if !utf8.ValidString(doc.Text) {
		return model.Metadata{}, &DocumentError{Filename: doc.Filename, Reason: "text is not valid UTF-8"}
	}
	return Extract(doc.Text), nil
}
