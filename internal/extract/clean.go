package extract

import (
	"strings"
	"unicode"

	"github.com/rcliao/courtdocs/internal/aztext"
	"github.com/rcliao/courtdocs/internal/model"
)

const minFieldLen = 3

// essentialFields are the fields of which at least one must survive cleaning.
var essentialFields = []model.Field{
	model.FieldCourtName,
	model.FieldCaseNumber,
	model.FieldJudge,
}

// Clean normalizes every single-valued field and drops fields that end up
// shorter than three characters. Composite fields pass through unchanged.
// Clean is idempotent.
func Clean(m model.Metadata) model.Metadata {
	out := model.Metadata{
		Fields:    make(map[model.Field]string, len(m.Fields)),
		CourtInfo: m.CourtInfo,
		Parties:   m.Parties,
		Dates:     m.Dates,
	}
	for f, v := range m.Fields {
		v = CleanValue(v)
		if aztext.Len(v) < minFieldLen {
			continue
		}
		out.Fields[f] = v
	}
	return out
}

// CleanValue collapses whitespace and strips leading and trailing colons and spaces.
func CleanValue(s string) string {
	s = aztext.CollapseSpace(s)
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
}

// Validate reports whether the record names a court, a case number or a judge.
func Validate(m model.Metadata) bool {
	for _, f := range essentialFields {
		if m.Has(f) {
			return true
		}
	}
	return false
}
