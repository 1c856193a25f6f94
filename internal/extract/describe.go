package extract

import (
	"strings"

	"github.com/rcliao/courtdocs/internal/model"
)

const maxDescribedParties = 3

var describedFields = []model.Field{
	model.FieldCourtName,
	model.FieldCaseNumber,
	model.FieldJudge,
	model.FieldCaseType,
	model.FieldDistrict,
	model.FieldDecisionType,
	model.FieldApplicant,
}

// Describe renders the record as "field: value | ... | parties: a, b, c" for
// use as extra embedding context. At most three parties are listed.
func Describe(m model.Metadata) string {
	var parts []string
	for _, f := range describedFields {
		if v := m.Get(f); v != "" {
			parts = append(parts, string(f)+": "+v)
		}
	}
	if len(m.Parties) > 0 {
		parties := m.Parties
		if len(parties) > maxDescribedParties {
			parties = parties[:maxDescribedParties]
		}
		parts = append(parts, "parties: "+strings.Join(parties, ", "))
	}
	return strings.Join(parts, " | ")
}
