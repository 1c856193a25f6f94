package query

import (
	"regexp"
	"strings"

	"github.com/rcliao/courtdocs/internal/aztext"
)

const (
	maxSuggestions = 5
	minQueryLen    = 3
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Suggestions returns up to five example queries containing partial
// (case-insensitive). An empty partial returns the first five.
func Suggestions(partial string) []string {
	var out []string
	for _, s := range suggestions {
		if partial == "" || aztext.ContainsFold(s, partial) {
			out = append(out, s)
		}
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// Validation summarizes which criteria a query would produce.
type Validation struct {
	IsValid     bool     `json:"is_valid"`
	HasJudge    bool     `json:"has_judge"`
	HasCourt    bool     `json:"has_court"`
	HasYear     bool     `json:"has_year"`
	HasCaseType bool     `json:"has_case_type"`
	Suggestions []string `json:"suggestions"`
}

// ValidateQuery checks a query before it is run.
func ValidateQuery(q string) Validation {
	if aztext.Len(strings.TrimSpace(q)) < minQueryLen {
		return Validation{Suggestions: []string{}}
	}
	c := Analyze(q)
	v := Validation{
		IsValid:     true,
		HasJudge:    c.Judge != "",
		HasCourt:    c.Court != "",
		HasYear:     c.Year != "",
		HasCaseType: c.CaseType != "",
		Suggestions: Suggestions(q),
	}
	if v.Suggestions == nil {
		v.Suggestions = []string{}
	}
	return v
}

// TranslateLegalTerms lowercases text and replaces whole-word Azerbaijani
// legal terms with their English equivalents.
func TranslateLegalTerms(text string) string {
	return wordPattern.ReplaceAllStringFunc(aztext.Lower(text), func(w string) string {
		if en, ok := legalTerms[w]; ok {
			return en
		}
		return w
	})
}
