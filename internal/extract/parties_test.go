package extract

import (
	"reflect"
	"testing"
)

func TestExtractParties_Dedup(t *testing.T) {
	text := "İddiaçı: Məmmədov Orxan\nƏrizəçi: Məmmədov Orxan\nCavabdeh: Abc\n"
	got := ExtractParties(text)
	want := []string{"Məmmədov Orxan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractParties = %v, want %v", got, want)
	}
}

func TestExtractParties_AllOccurrences(t *testing.T) {
	text := "Təqsirləndirilən: Həsənov Elvin\nCavabdeh: Birinci MMC\nCavabdeh: İkinci MMC\n"
	got := ExtractParties(text)
	want := []string{"Birinci MMC", "Həsənov Elvin", "İkinci MMC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractParties = %v, want %v", got, want)
	}
}
