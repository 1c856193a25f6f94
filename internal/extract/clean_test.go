package extract

import (
	"reflect"
	"testing"

	"github.com/rcliao/courtdocs/internal/model"
)

func TestClean(t *testing.T) {
	in := model.Metadata{
		Fields: map[model.Field]string{
			model.FieldJudge:      " : Əli : ",
			model.FieldClerk:      " ab ",
			model.FieldCaseNumber: "  2-1  \n 2025 ",
			model.FieldDistrict:   "::",
		},
		Parties: []string{"Azərsu ASC"},
		Dates:   map[model.DateFormat]string{model.DateDDMMYYYY: "01.01.2020"},
	}

	got := Clean(in)

	want := map[model.Field]string{
		model.FieldJudge:      "Əli",
		model.FieldCaseNumber: "2-1 2025",
	}
	if !reflect.DeepEqual(got.Fields, want) {
		t.Errorf("Fields = %v, want %v", got.Fields, want)
	}
	if !reflect.DeepEqual(got.Parties, in.Parties) || !reflect.DeepEqual(got.Dates, in.Dates) {
		t.Error("composite fields must pass through unchanged")
	}
	if _, ok := got.Fields[model.FieldClerk]; ok {
		t.Error("short field must be absent, not empty")
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []model.Metadata{
		Extract(rulingFixture),
		{Fields: map[model.Field]string{model.FieldJudge: ":: a  b  c ::", model.FieldYear: " 20 "}},
		{},
	}
	for _, m := range inputs {
		once := Clean(m)
		twice := Clean(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Clean not idempotent:\n once: %+v\ntwice: %+v", once, twice)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		fields map[model.Field]string
		want   bool
	}{
		{"judge only", map[model.Field]string{model.FieldJudge: "Əli Vəliyev"}, true},
		{"case number", map[model.Field]string{model.FieldCaseNumber: "2-1/2025"}, true},
		{"clerk only", map[model.Field]string{model.FieldClerk: "Leyla"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(model.Metadata{Fields: tt.fields}); got != tt.want {
				t.Errorf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}
