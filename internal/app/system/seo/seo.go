package seo

import (
	"net/url"
	"strings"
)

// Meta is the per-page head data.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	OGType      string
	OGImage     string
}

// Alternate is one hreflang link.
type Alternate struct {
	Lang string
	Href string
}

// AbsURL joins a site-relative path onto baseURL. It returns path unchanged
// when baseURL is empty.
func AbsURL(baseURL, path string) string {
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// WithLang returns path with its lang query parameter set to lang.
func WithLang(path, lang string) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Set("lang", lang)
	u.RawQuery = q.Encode()
	return u.String()
}

// Truncate shortens s to at most n runes for meta descriptions.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
