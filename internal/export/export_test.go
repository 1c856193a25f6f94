package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rcliao/courtdocs/internal/model"
)

func sampleDocs() []model.Document {
	return []model.Document{{
		ID:       "doc_0123456789ab",
		Filename: "qerar.txt",
		Text:     "AĞDAM RAYON MƏHKƏMƏSİ",
		Metadata: model.Metadata{
			Fields: map[model.Field]string{
				model.FieldCourtName:  "Ağdam Rayon Məhkəməsi",
				model.FieldCaseNumber: "2-1234/2025",
				model.FieldJudge:      "Əliyev Rauf",
				model.FieldYear:       "2025",
			},
			Parties: []string{"Azərsu ASC", "Əliyev Rauf Kamal oğlu"},
			Dates:   map[model.DateFormat]string{model.DateDDMMYYYY: "15.03.2025"},
		},
		Status:    model.StatusProcessed,
		Valid:     true,
		CreatedAt: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}}
}

func TestXLSX(t *testing.T) {
	b, err := XLSX(sampleDocs())
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][4] != "Judge" {
		t.Errorf("header = %v", rows[0])
	}
	row := rows[1]
	checks := map[int]string{
		0:  "doc_0123456789ab",
		2:  "Ağdam Rayon Məhkəməsi",
		4:  "Əliyev Rauf",
		8:  "2025",
		9:  "15.03.2025",
		11: "Azərsu ASC; Əliyev Rauf Kamal oğlu",
		14: "2025-03-15 10:30:00",
	}
	for col, want := range checks {
		if row[col] != want {
			t.Errorf("column %d (%s) = %q, want %q", col, rows[0][col], row[col], want)
		}
	}
}

func TestRender(t *testing.T) {
	b, ct, err := Render("JSON", sampleDocs())
	if err != nil {
		t.Fatal(err)
	}
	if ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var docs []model.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Metadata.Get(model.FieldJudge) != "Əliyev Rauf" || docs[0].Text == "" {
		t.Errorf("decoded = %+v", docs)
	}

	if _, _, err := Render("csv", nil); err == nil {
		t.Error("expected error for unsupported format")
	}

	b, _, err = Render("json", nil)
	if err != nil || string(b) != "[]" {
		t.Errorf("empty export = %q, %v", b, err)
	}
}
