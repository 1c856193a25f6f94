package extract

import (
	"strings"

	"github.com/rcliao/courtdocs/internal/aztext"
	"github.com/rcliao/courtdocs/internal/model"
)

// Fields runs every rule against the whole text and keeps the first match per field.
// Values are trimmed but not yet cleaned; see Clean.
func (c *Catalog) Fields(text string) map[model.Field]string {
	fields := make(map[model.Field]string, len(c.Rules))
	for _, r := range c.Rules {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[r.Group])
		if r.Field == model.FieldDecisionText {
			v = c.cleanDecisionText(v)
		}
		fields[r.Field] = v
	}
	return fields
}

// cleanDecisionText collapses whitespace and drops anonymization placeholders
// (runs of "X" or digits).
func (c *Catalog) cleanDecisionText(s string) string {
	s = aztext.CollapseSpace(s)
	s = c.DecisionNoise.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CourtInfo looks the text up in the court gazetteer and, independently,
// searches for a venue ("<WORD> rayon|şəhər|qəsəbə").
func (c *Catalog) CourtInfo(text string) model.CourtInfo {
	var info model.CourtInfo
	for _, name := range c.Courts {
		if strings.Contains(text, name) {
			info.CourtName = name
			break
		}
	}
	if m := c.Venue.FindString(text); m != "" {
		info.Venue = m
	}
	return info
}

// ExtractFields runs the default catalog's field rules.
func ExtractFields(text string) map[model.Field]string {
	return Default.Fields(text)
}

// ExtractCourtInfo runs the default court gazetteer and venue search.
func ExtractCourtInfo(text string) model.CourtInfo {
	return Default.CourtInfo(text)
}
