// Package model defines the court document data types.
package model

import (
	"encoding/json"
	"time"
)

// Field names a single-valued metadata field.
type Field string

const (
	FieldCourtName    Field = "court_name"
	FieldCaseNumber   Field = "case_number"
	FieldJudge        Field = "judge"
	FieldClerk        Field = "clerk"
	FieldApplicant    Field = "applicant"
	FieldCaseType     Field = "case_type"
	FieldCourtAct     Field = "court_act"
	FieldDistrict     Field = "district"
	FieldDecisionType Field = "decision_type"
	FieldDecisionText Field = "decision_text"
	FieldYear         Field = "year"
	FieldDate         Field = "date"
)

// DateFormat tags the pattern a date was found with.
type DateFormat string

const (
	DateDDMMYYYY    DateFormat = "dd_mm_yyyy"
	DateYYYYMMDD    DateFormat = "yyyy_mm_dd"
	DateDDMonthYYYY DateFormat = "dd_month_yyyy"
)

// RawDocument is plain text handed to the extractors by the caller.
type RawDocument struct {
	Text        string
	Filename    string
	ProcessedAt time.Time
}

// CourtInfo is the gazetteer-based court identification.
type CourtInfo struct {
	CourtName string `json:"court_name,omitempty"`
	Venue     string `json:"venue,omitempty"`
}

// IsZero reports whether neither sub-field was found.
func (c CourtInfo) IsZero() bool {
	return c.CourtName == "" && c.Venue == ""
}

// Metadata is the structured record extracted from one document.
// A field missing from Fields was either not matched or too short after cleaning.
type Metadata struct {
	Fields    map[Field]string
	CourtInfo CourtInfo
	Parties   []string
	Dates     map[DateFormat]string
}

// Get returns the value of f, or "" when absent.
func (m Metadata) Get(f Field) string {
	return m.Fields[f]
}

// Has reports whether f is present.
func (m Metadata) Has(f Field) bool {
	_, ok := m.Fields[f]
	return ok
}

// MarshalJSON flattens single-valued fields next to the composite ones.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Fields)+3)
	for f, v := range m.Fields {
		out[string(f)] = v
	}
	out["court_info"] = m.CourtInfo
	out["parties"] = nonNilStrings(m.Parties)
	dates := m.Dates
	if dates == nil {
		dates = map[DateFormat]string{}
	}
	out["dates"] = dates
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. Unknown non-string keys are ignored.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m.Fields = map[Field]string{}
	for k, v := range raw {
		switch k {
		case "court_info":
			if err := json.Unmarshal(v, &m.CourtInfo); err != nil {
				return err
			}
		case "parties":
			if err := json.Unmarshal(v, &m.Parties); err != nil {
				return err
			}
		case "dates":
			if err := json.Unmarshal(v, &m.Dates); err != nil {
				return err
			}
		default:
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				m.Fields[Field(k)] = s
			}
		}
	}
	return nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
