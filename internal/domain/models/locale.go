// internal/domain/models/locale.go
package models

import "strings"

// Locale is the active display language of the site.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// DefaultLocale is used when nothing else selects a language.
const DefaultLocale = LocaleEN

// AllLocales lists the supported locales in display order.
func AllLocales() []Locale {
	return []Locale{LocaleEN, LocaleAR}
}

// ParseLocale returns the locale for code and whether it is supported.
// Region subtags are ignored, so "ar-EG" parses as Arabic.
func ParseLocale(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i != -1 {
		code = code[:i]
	}
	switch Locale(code) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleAR:
		return LocaleAR, true
	}
	return DefaultLocale, false
}

// IsRTL reports whether the locale is written right to left.
func (l Locale) IsRTL() bool {
	return l == LocaleAR
}

// Dir returns the HTML dir attribute value for the locale.
func (l Locale) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == LocaleAR {
		return LocaleEN
	}
	return LocaleAR
}

// Pick selects the variant of a bilingual field for the locale.
// English is shown for every locale that is not Arabic.
func (l Locale) Pick(en, ar string) string {
	if l == LocaleAR {
		return ar
	}
	return en
}

func (l Locale) String() string {
	return string(l)
}
