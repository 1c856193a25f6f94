package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/rcliao/courtdocs/internal/model"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func doc(id string, age int, fields map[model.Field]string) model.Document {
	return model.Document{
		ID:        id,
		CreatedAt: base.Add(-time.Duration(age) * time.Hour),
		Metadata:  model.Metadata{Fields: fields},
	}
}

func ids(docs []model.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func fixtureDocs() []model.Document {
	return []model.Document{
		doc("old", 48, map[model.Field]string{
			model.FieldJudge: "Əliyev Rauf", model.FieldYear: "2024", model.FieldCaseType: "Mülki",
		}),
		doc("new", 1, map[model.Field]string{
			model.FieldJudge: "Rauf Əliyev", model.FieldYear: "2025", model.FieldCourtName: "Ağdam Rayon Məhkəməsi",
		}),
		doc("other", 5, map[model.Field]string{
			model.FieldJudge: "Qasımova Səbinə", model.FieldYear: "2025", model.FieldDistrict: "Şirvan",
		}),
		doc("bare", 2, nil),
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		c    model.SearchCriteria
		want []string
	}{
		{"judge case-insensitive newest first", model.SearchCriteria{Judge: "əliyev"}, []string{"new", "old"}},
		{"year exact", model.SearchCriteria{Year: "2025"}, []string{"new", "other"}},
		{"year is not substring", model.SearchCriteria{Year: "202"}, []string{}},
		{"court against court name", model.SearchCriteria{Court: "ağdam"}, []string{"new"}},
		{"criteria are combined", model.SearchCriteria{Judge: "Rauf", Year: "2024"}, []string{"old"}},
		{"district upper-case", model.SearchCriteria{District: "ŞİRVAN"}, []string{"other"}},
		{"case type", model.SearchCriteria{CaseType: "mülki"}, []string{"old"}},
		{"empty field never matches", model.SearchCriteria{DecisionType: "qərar"}, []string{}},
		{"no criteria returns all", model.SearchCriteria{}, []string{"new", "bare", "other", "old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Match(fixtureDocs(), tt.c))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Match(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestMatch_CapsResults(t *testing.T) {
	var docs []model.Document
	for i := 0; i < 150; i++ {
		docs = append(docs, doc(fmt.Sprintf("d%03d", i), 150-i, map[model.Field]string{
			model.FieldJudge: "Əliyev Rauf",
		}))
	}
	got := Match(docs, model.SearchCriteria{Judge: "Əliyev"})
	if len(got) != MaxResults {
		t.Fatalf("got %d results, want %d", len(got), MaxResults)
	}
	if got[0].ID != "d149" {
		t.Errorf("first result = %s, want newest d149", got[0].ID)
	}
}

func TestMatch_DoesNotReorderInput(t *testing.T) {
	docs := fixtureDocs()
	Match(docs, model.SearchCriteria{})
	if docs[0].ID != "old" || docs[3].ID != "bare" {
		t.Errorf("input reordered: %v", ids(docs))
	}
}
