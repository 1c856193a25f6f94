package extract

import (
	"reflect"
	"testing"

	"github.com/rcliao/courtdocs/internal/model"
)

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[model.DateFormat]string
	}{
		{
			name: "last match wins",
			text: "01.02.2020 və 3.4.2021",
			want: map[model.DateFormat]string{model.DateDDMMYYYY: "03.04.2021"},
		},
		{
			name: "year first",
			text: "tarix 2024.5.7",
			want: map[model.DateFormat]string{model.DateYYYYMMDD: "07.05.2024"},
		},
		{
			name: "month word kept literal",
			text: "5 iyul 2023",
			want: map[model.DateFormat]string{model.DateDDMonthYYYY: "05.iyul.2023"},
		},
		{
			name: "space separated",
			text: "9 12 2022",
			want: map[model.DateFormat]string{model.DateDDMMYYYY: "09.12.2022"},
		},
		{
			name: "none",
			text: "tarix yoxdur",
			want: map[model.DateFormat]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDates(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDates(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCanonicalDate_RejectsNonNumeric(t *testing.T) {
	if _, ok := canonicalDate("x", "01", "2020", true); ok {
		t.Error("expected non-numeric day to be rejected")
	}
	if _, ok := canonicalDate("1", "iyul", "2020", true); ok {
		t.Error("expected non-numeric month to be rejected for numeric formats")
	}
	if got, ok := canonicalDate("1", "iyul", "2020", false); !ok || got != "01.iyul.2020" {
		t.Errorf("got %q, %v", got, ok)
	}
}
