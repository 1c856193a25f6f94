// Package export renders court documents as XLSX workbooks or JSON.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rcliao/courtdocs/internal/model"
)

// Supported formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned by Render for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// SheetName is the worksheet holding exported documents.
const SheetName = "Documents"

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeJSON = "application/json"
)

type column struct {
	header string
	width  float64
	value  func(d model.Document) any
}

func field(f model.Field) func(model.Document) any {
	return func(d model.Document) any { return d.Metadata.Get(f) }
}

var columns = []column{
	{"ID", 18, func(d model.Document) any { return d.ID }},
	{"Filename", 24, func(d model.Document) any { return d.Filename }},
	{"Court", 36, field(model.FieldCourtName)},
	{"Case Number", 16, field(model.FieldCaseNumber)},
	{"Judge", 24, field(model.FieldJudge)},
	{"Case Type", 16, field(model.FieldCaseType)},
	{"District", 16, field(model.FieldDistrict)},
	{"Decision Type", 14, field(model.FieldDecisionType)},
	{"Year", 8, field(model.FieldYear)},
	{"Date", 12, func(d model.Document) any { return d.Metadata.Dates[model.DateDDMMYYYY] }},
	{"Applicant", 28, field(model.FieldApplicant)},
	{"Parties", 48, func(d model.Document) any { return strings.Join(d.Metadata.Parties, "; ") }},
	{"Status", 10, func(d model.Document) any { return d.Status }},
	{"Valid", 8, func(d model.Document) any { return d.Valid }},
	{"Created At", 20, func(d model.Document) any { return d.CreatedAt.Format("2006-01-02 15:04:05") }},
}

// Render encodes docs in format and returns the bytes with their content type.
func Render(format string, docs []model.Document) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatXLSX, "excel":
		b, err := XLSX(docs)
		return b, contentTypeXLSX, err
	case FormatJSON, "":
		b, err := JSON(docs)
		return b, contentTypeJSON, err
	default:
		return nil, "", fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// JSON encodes docs as an indented array. Document text is kept.
func JSON(docs []model.Document) ([]byte, error) {
	if docs == nil {
		docs = []model.Document{}
	}
	return json.MarshalIndent(docs, "", "  ")
}

// XLSX builds a workbook with one row per document under a header row.
func XLSX(docs []model.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, c := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, c.header); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(SheetName, name, name, c.width)
	}

	for r, d := range docs {
		for i, c := range columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(SheetName, cell, c.value(d)); err != nil {
				return nil, fmt.Errorf("row %d: %w", r+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
