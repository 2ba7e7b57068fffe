package pappers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// NormaliseName replaces hyphens with spaces, collapses whitespace and
// title-cases every word: "jean-PIERRE" becomes "Jean Pierre".
func NormaliseName(name string) string {
	fields := strings.Fields(strings.ReplaceAll(name, "-", " "))
	if len(fields) == 0 {
		return ""
	}
	return cases.Title(language.Und).String(strings.Join(fields, " "))
}

// NormaliseDateMonth strips the leading zero after each hyphen so that a
// month reads "1970-5" instead of "1970-05". The graph merges people on
// this exact spelling.
func NormaliseDateMonth(month string) string {
	return strings.ReplaceAll(month, "-0", "-")
}

// NormaliseID removes the spaces and dots registries use to group digits.
func NormaliseID(id string) string {
	return strings.NewReplacer(" ", "", ".", "").Replace(id)
}

// ReorderDate reverses a separator-delimited date into hyphen-joined
// year-first order: "05/1970" becomes "1970-05" and "12/05/1970" becomes
// "1970-05-12". parts is the expected number of components.
func ReorderDate(field, value, sep string, parts int) (string, error) {
	items := strings.Split(value, sep)
	if len(items) != parts {
		return "", domain.NewRecordError(field, value, "unexpected date layout")
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	for _, item := range items {
		if !isDigits(item) {
			return "", domain.NewRecordError(field, value, "date component is not numeric")
		}
	}
	return strings.Join(items, "-"), nil
}

// checkISODate validates a year-first hyphenated date with the given number of parts.
func checkISODate(field, value string, parts int) error {
	items := strings.Split(value, "-")
	if len(items) != parts {
		return domain.NewRecordError(field, value, "unexpected date layout")
	}
	for _, item := range items {
		if !isDigits(item) {
			return domain.NewRecordError(field, value, "date component is not numeric")
		}
	}
	return nil
}

// MonthOf returns the YYYY-MM prefix of a YYYY-MM-DD date.
func MonthOf(date string) string {
	items := strings.SplitN(date, "-", 3)
	if len(items) < 2 {
		return date
	}
	return items[0] + "-" + items[1]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
