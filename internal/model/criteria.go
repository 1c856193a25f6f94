package model

// SearchCriteria is the structured form of one user query.
// GeneralSearch is set only when no other key is populated.
type SearchCriteria struct {
	Judge         string `json:"judge,omitempty"`
	Court         string `json:"court,omitempty"`
	CaseType      string `json:"case_type,omitempty"`
	District      string `json:"district,omitempty"`
	Year          string `json:"year,omitempty"`
	DecisionType  string `json:"decision_type,omitempty"`
	GeneralSearch string `json:"general_search,omitempty"`
}

// IsGeneral reports whether the query should be routed to similarity search.
func (c SearchCriteria) IsGeneral() bool {
	return c.GeneralSearch != ""
}

// HasStructured reports whether any structured key is populated.
func (c SearchCriteria) HasStructured() bool {
	return c.Judge != "" || c.Court != "" || c.CaseType != "" ||
		c.District != "" || c.Year != "" || c.DecisionType != ""
}
