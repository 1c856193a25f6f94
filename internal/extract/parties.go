package extract

import (
	"sort"
	"strings"

	"github.com/rcliao/courtdocs/internal/aztext"
)

const minPartyLen = 4

// Parties collects every plaintiff- and defendant-style party from the text.
// The result is deduplicated by exact value and sorted; the sort only makes
// output stable, callers must not rely on position.
func (c *Catalog) Parties(text string) []string {
	seen := map[string]struct{}{}
	for _, re := range c.PartyRules {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			p := strings.TrimSpace(m[1])
			if aztext.Len(p) < minPartyLen {
				continue
			}
			seen[p] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	parties := make([]string, 0, len(seen))
	for p := range seen {
		parties = append(parties, p)
	}
	sort.Strings(parties)
	return parties
}

// ExtractParties runs the default party labels.
func ExtractParties(text string) []string {
	return Default.Parties(text)
}
