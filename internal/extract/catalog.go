package extract

import (
	"regexp"
	"strings"

	"github.com/rcliao/courtdocs/internal/model"
)

// Rule extracts one field: the first match of Pattern wins and Group is captured.
type Rule struct {
	Field   model.Field
	Pattern *regexp.Regexp
	Group   int
}

// Label is a literal trigger label followed by the field value on the same line.
type Label struct {
	Field model.Field
	Label string // regexp fragment
}

// labeledFields is the label → field table. Order does not matter; every field
// has its own pattern.
var labeledFields = []Label{
	{model.FieldCourtName, `Məhkəmənin adı`},
	{model.FieldCaseNumber, `İş\s+No`},
	{model.FieldJudge, `Hakim`},
	{model.FieldClerk, `Katib`},
	{model.FieldApplicant, `Ərizəçi`},
	{model.FieldCaseType, `İşin növü`},
	{model.FieldCourtAct, `Məhkəmə aktı`},
	{model.FieldDistrict, `Rayon`},
}

// courtGazetteer lists known full court names. First contained name wins.
var courtGazetteer = []string{
	"AĞDAM RAYON MƏHKƏMƏSİ",
	"ŞİRVAN APELİYYASİYA MƏHKƏMƏSİ",
	"ŞİRVAN İNZİBATİ MƏHKƏMƏSİ",
	"ŞİRVAN KOMMERSİYA MƏHKƏMƏSİ",
}

var (
	plaintiffLabels = []string{`İddiaçı`, `Ərizəçi`, `Məhkum`}
	defendantLabels = []string{`Cavabdeh`, `Təqsirləndirilən`}
)

// dottedI matches any of the four Azerbaijani i letters. (?i) folds only
// I and i, so İ and ı have to be spelled out.
const dottedI = `[İIiı]`

var foldI = strings.NewReplacer("İ", dottedI, "I", dottedI, "i", dottedI, "ı", dottedI)

// foldLetters makes the i letters of a literal regexp fragment match each other.
func foldLetters(fragment string) string {
	return foldI.Replace(fragment)
}

// labelValue builds "<label>[:\s]*([^\n\r]+)" with the given flags.
func labelValue(flags, label string) *regexp.Regexp {
	return regexp.MustCompile(`(?` + flags + `)` + foldLetters(label) + `[:\s]*([^\n\r]+)`)
}

// Catalog is the fixed, ordered set of patterns and gazetteers used by the
// document-side extractors.
type Catalog struct {
	Rules         []Rule
	Courts        []string
	Venue         *regexp.Regexp
	PartyRules    []*regexp.Regexp
	DecisionNoise *regexp.Regexp
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	rules := make([]Rule, 0, len(labeledFields)+4)
	for _, l := range labeledFields {
		rules = append(rules, Rule{Field: l.Field, Pattern: labelValue("ims", l.Label), Group: 1})
	}
	rules = append(rules,
		Rule{model.FieldDecisionType, regexp.MustCompile(`(?ims)(QƏTNAMƏ|QƏRAR|QƏRARNAMƏ)`), 1},
		Rule{model.FieldDecisionText, regexp.MustCompile(`(?is)` + foldLetters(`Qətetdi`) + `[:\s]*(.+?)(?:` + foldLetters(`Azərbaycan Respublikası`) + `|\z)`), 1},
		Rule{model.FieldYear, regexp.MustCompile(`(\d{4})`), 1},
		Rule{model.FieldDate, regexp.MustCompile(`(\d{1,2}[.\s]+\d{1,2}[.\s]+\d{4})`), 1},
	)

	var parties []*regexp.Regexp
	for _, l := range append(append([]string{}, plaintiffLabels...), defendantLabels...) {
		parties = append(parties, labelValue("im", l))
	}

	return &Catalog{
		Rules:         rules,
		Courts:        courtGazetteer,
		Venue:         regexp.MustCompile(`(?i)([A-ZƏÜÖĞÇŞİa-zəüöğçşıi]+)\s*(rayon|şəhər|qəsəbə)`),
		PartyRules:    parties,
		DecisionNoise: regexp.MustCompile(`[X\d]+\s*`),
	}
}

// Default is the catalog used by the package-level functions.
var Default = NewCatalog()
