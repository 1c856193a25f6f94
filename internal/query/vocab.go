package query

// CaseType maps an Azerbaijani case-type keyword to its English name.
type CaseType struct {
	Az string
	En string
}

// Lookup tables are ordered; the first entry found in the query wins.
var (
	greetingTokens = []string{
		"salam", "hello", "hi", "hey",
		"xaış", "günaydın", "axşamınız xeyir",
	}

	// courtKeywords mixes cities and court types.
	courtKeywords = []string{
		"ağdam", "şirvan", "bakı", "gəncə", "sumqayıt", "mingəçevir",
		"apellyasiya", "inzibati", "kommersiya", "rayon",
	}

	// districtKeywords overlaps with courtKeywords on purpose; both keys may be set.
	districtKeywords = []string{
		"ağdam", "şirvan", "bakı", "gəncə", "sumqayıt", "mingəçevir",
		"quzanlı", "sarıcalı", "çəmənli",
	}

	caseTypes = []CaseType{
		{"mülki", "civil"},
		{"inzibati", "administrative"},
		{"kommersiya", "commercial"},
		{"cinayət", "criminal"},
	}

	judgeStoplist = map[string]bool{
		"məhkəmə": true,
		"qərar":   true,
		"hakim":   true,
	}

	legalTerms = map[string]string{
		"hakim":      "judge",
		"məhkəmə":    "court",
		"qərar":      "decision",
		"qətnamə":    "resolution",
		"inzibati":   "administrative",
		"mülki":      "civil",
		"kommersiya": "commercial",
		"rayon":      "district",
		"şəhər":      "city",
		"il":         "year",
		"tarix":      "date",
		"ərizəçi":    "applicant",
		"cavabdeh":   "defendant",
		"iddiaçı":    "plaintiff",
	}

	suggestions = []string{
		"Hakim Fikrət Hüseynovun qərarları",
		"Ağdam rayon məhkəməsinin 2025-ci il qərarları",
		"Mülki işlər üzrə qətnamələr",
		"Şirvan Apellyasiya Məhkəməsinin inzibati işləri",
		"2024-cü il kommersiya məhkəmə qərarları",
	}
)

// CaseTypes returns the case-type vocabulary in lookup order.
func CaseTypes() []CaseType {
	return append([]CaseType(nil), caseTypes...)
}
