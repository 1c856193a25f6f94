package query

import (
	"sort"

	"github.com/rcliao/courtdocs/internal/aztext"
	"github.com/rcliao/courtdocs/internal/model"
)

// MaxResults caps structured matches.
const MaxResults = 100

// Match returns the documents satisfying every populated structured key of c,
// newest first, at most MaxResults. Text keys match by case-insensitive
// substring, year by equality. GeneralSearch is ignored; routing such queries
// elsewhere is the caller's job. The input slice is not modified.
func Match(docs []model.Document, c model.SearchCriteria) []model.Document {
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if matches(d.Metadata, c) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

func matches(m model.Metadata, c model.SearchCriteria) bool {
	contains := []struct {
		want  string
		field model.Field
	}{
		{c.Judge, model.FieldJudge},
		{c.Court, model.FieldCourtName},
		{c.CaseType, model.FieldCaseType},
		{c.District, model.FieldDistrict},
		{c.DecisionType, model.FieldDecisionType},
	}
	for _, k := range contains {
		if k.want == "" {
			continue
		}
		if !aztext.ContainsFold(m.Get(k.field), k.want) {
			return false
		}
	}
	if c.Year != "" && m.Get(model.FieldYear) != c.Year {
		return false
	}
	return true
}
