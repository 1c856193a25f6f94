// Package query maps free-text user queries onto the document metadata schema
// and filters stored documents by the resulting criteria.
package query

import (
	"regexp"
	"strings"

	"github.com/rcliao/courtdocs/internal/aztext"
	"github.com/rcliao/courtdocs/internal/model"
)

const minJudgeLen = 6

var (
	judgePatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-ZƏÜÖĞÇŞİ][a-zəüöğçşı\x{0307}]+ [A-ZƏÜÖĞÇŞİ][a-zəüöğçşı\x{0307}]+)`),
		regexp.MustCompile(`([A-ZƏÜÖĞÇŞİ][a-zəüöğçşı\x{0307}]+)`),
	}
	yearPattern = regexp.MustCompile(`\d{4}`)
)

// IsGreeting reports whether the message contains a greeting token.
// Callers check this before Analyze and answer with a greeting instead.
func IsGreeting(message string) bool {
	return firstContained(lowerForms(message), greetingTokens) != ""
}

// lowerForms returns the Azerbaijani lowering of s and, when it differs, the
// plain Unicode lowering. The second form catches queries typed on an ASCII
// keyboard, where "I" stands for "i" rather than "ı".
func lowerForms(s string) []string {
	az := aztext.Lower(s)
	if plain := strings.ToLower(s); plain != az {
		return []string{az, plain}
	}
	return []string{az}
}

// Analyze extracts search criteria from a free-text query. Every lookup runs;
// when none of them fires the whole query becomes GeneralSearch. Analyze never fails.
//
// The judge heuristic depends on capitalization and therefore sees the query as
// typed. Keyword lookups match either lowering of the query.
func Analyze(query string) model.SearchCriteria {
	forms := lowerForms(query)

	c := model.SearchCriteria{
		Judge:    judgeName(query),
		Court:    firstContained(forms, courtKeywords),
		CaseType: caseType(forms),
		Year:     yearPattern.FindString(query),
		District: firstContained(forms, districtKeywords),
	}
	if !c.HasStructured() {
		c.GeneralSearch = query
	}
	return c
}

// judgeName tries a two-word capitalized name, then a single capitalized word.
// Only the first match of each pattern is considered.
func judgeName(query string) string {
	for _, re := range judgePatterns {
		m := re.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if aztext.Len(name) >= minJudgeLen && !judgeStoplist[name] {
			return name
		}
	}
	return ""
}

// firstContained returns the first keyword, in table order, found in any of forms.
func firstContained(forms []string, keywords []string) string {
	for _, k := range keywords {
		if containedIn(forms, k) {
			return k
		}
	}
	return ""
}

func containedIn(forms []string, k string) bool {
	for _, f := range forms {
		if strings.Contains(f, k) {
			return true
		}
	}
	return false
}

func caseType(forms []string) string {
	for _, ct := range caseTypes {
		if containedIn(forms, ct.Az) {
			return ct.Az
		}
	}
	return ""
}
