package rdfxml

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLang normalizes an xml:lang value for use as a literal
// language tag. Well-formed BCP 47 tags are canonicalized; anything
// else is passed through. Language tags compare case-insensitively,
// so the result is always lowercased.
func normalizeLang(tag string) string {
	if t, err := language.Parse(tag); err == nil {
		return strings.ToLower(t.String())
	}
	return strings.ToLower(tag)
}
