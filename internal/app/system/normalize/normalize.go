// Package normalize cleans user-supplied strings before they are validated,
// stored or compared.
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Email trims and lowercases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a person's name and collapses inner whitespace.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Phone trims a phone number and collapses inner runs of whitespace.
func Phone(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Message converts CRLF to LF and trims free text. Inner blank lines stay.
func Message(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// Slug folds a category slug from a query string for matching: trimmed,
// case-folded and stripped of diacritics.
func Slug(s string) string {
	return text.Fold(strings.TrimSpace(s))
}

// Level folds a course level query value.
func Level(s string) string {
	return text.Fold(strings.TrimSpace(s))
}
