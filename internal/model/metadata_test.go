package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestMetadataJSON_Flattened(t *testing.T) {
	m := Metadata{
		Fields:    map[Field]string{FieldJudge: "Fikrət Hüseynov", FieldYear: "2025"},
		CourtInfo: CourtInfo{CourtName: "Ağdam Rayon Məhkəməsi"},
		Parties:   []string{"Məmmədov Orxan"},
		Dates:     map[DateFormat]string{DateDDMMYYYY: "15.03.2025"},
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var flat map[string]any
	if err := json.Unmarshal(b, &flat); err != nil {
		t.Fatal(err)
	}
	if flat["judge"] != "Fikrət Hüseynov" || flat["year"] != "2025" {
		t.Errorf("fields not flattened: %s", b)
	}

	var back Metadata
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, m) {
		t.Errorf("got %+v, want %+v", back, m)
	}
}

func TestMetadataJSON_EmptyComposites(t *testing.T) {
	b, err := json.Marshal(Metadata{})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"parties":[]`) || !strings.Contains(s, `"dates":{}`) {
		t.Errorf("empty composites = %s", s)
	}
}

func TestSearchCriteria(t *testing.T) {
	if (SearchCriteria{GeneralSearch: "x"}).HasStructured() {
		t.Error("general-only criteria reported structured")
	}
	if !(SearchCriteria{Year: "2025"}).HasStructured() {
		t.Error("year criteria not structured")
	}
	if !(SearchCriteria{GeneralSearch: "x"}).IsGeneral() {
		t.Error("IsGeneral false")
	}
}
