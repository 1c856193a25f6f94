package query

import (
	"testing"

	"github.com/rcliao/courtdocs/internal/model"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		query string
		want  model.SearchCriteria
	}{
		{
			// "kommersiya" is both a court keyword and a case type.
			"2024-cü il kommersiya",
			model.SearchCriteria{Year: "2024", CaseType: "kommersiya", Court: "kommersiya"},
		},
		{
			"necə işləyir bu sistem",
			model.SearchCriteria{GeneralSearch: "necə işləyir bu sistem"},
		},
		{
			"Ağdam rayon məhkəməsinin 2025-ci il qərarları",
			model.SearchCriteria{Court: "ağdam", District: "ağdam", Year: "2025"},
		},
		{
			"Fikrət Hüseynovun qərarları",
			model.SearchCriteria{Judge: "Fikrət Hüseynovun"},
		},
		{
			"Məmmədov",
			model.SearchCriteria{Judge: "Məmmədov"},
		},
		{
			"BAKI",
			model.SearchCriteria{Court: "bakı", District: "bakı"},
		},
		{
			"ŞİRVAN inzibati",
			model.SearchCriteria{Court: "şirvan", District: "şirvan", CaseType: "inzibati"},
		},
		{
			"Mülki işlər",
			model.SearchCriteria{CaseType: "mülki"},
		},
		{
			// ASCII keyboard: "I" means "i" here.
			"INZIBATI",
			model.SearchCriteria{Court: "inzibati", CaseType: "inzibati"},
		},
		{
			"SIRVAN mulki 2023 INZIBATI",
			model.SearchCriteria{Court: "inzibati", CaseType: "inzibati", Year: "2023"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Analyze(tt.query)
			if got != tt.want {
				t.Errorf("Analyze(%q)\n got  %+v\n want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestAnalyze_GeneralSearchOnlyWhenNothingStructured(t *testing.T) {
	for _, q := range []string{"salam dünya", "2023", "Sumqayıt", "bu nədir"} {
		c := Analyze(q)
		if c.IsGeneral() == c.HasStructured() {
			t.Errorf("Analyze(%q) = %+v: general and structured must be exclusive", q, c)
		}
	}
}

func TestJudgeName_ShortWordsRejected(t *testing.T) {
	for _, q := range []string{"Qərar", "Ağdam", "Bakı şəhəri"} {
		if got := judgeName(q); got != "" {
			t.Errorf("judgeName(%q) = %q, want empty", q, got)
		}
	}
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Salam, necəsən?", true},
		{"GÜNAYDIN", true},
		{"Axşamınız xeyir", true},
		{"hello there", true},
		{"HI", true},
		{"Mülki işlər", false},
		{"2024 kommersiya", false},
	}
	for _, tt := range tests {
		if got := IsGreeting(tt.msg); got != tt.want {
			t.Errorf("IsGreeting(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
