// Package aztext holds Azerbaijani-aware text helpers shared by the
// document and query sides.
package aztext

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases s with Azerbaijani rules, so "İ" becomes "i" and "I" becomes "ı".
// A new Caser is built per call because Casers are not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Azerbaijani).String(s)
}

// ContainsFold reports whether needle occurs in haystack after Azerbaijani lowering.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Lower(haystack), Lower(needle))
}

// CollapseSpace replaces every run of whitespace with a single space and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Len counts characters, not bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
