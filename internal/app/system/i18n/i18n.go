// Package i18n holds the static UI strings of the site in English and Arabic
// and negotiates the display language from Accept-Language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/dalemusser/hydrasite/internal/domain/models"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog maps a message key to its text in one locale.
type Catalog map[string]string

// Bundle holds one catalog per supported locale.
type Bundle struct {
	dict     map[models.Locale]Catalog
	merged   map[models.Locale]Catalog
	fallback models.Locale
	tags     []language.Tag
	matcher  language.Matcher
}

// Load reads <locale>.yaml for every supported locale from fsys.
// The fallback catalog is required; others may be missing.
func Load(fsys fs.FS, dir string, fallback models.Locale) (*Bundle, error) {
	b := &Bundle{
		dict:     map[models.Locale]Catalog{},
		merged:   map[models.Locale]Catalog{},
		fallback: fallback,
	}
	for _, l := range models.AllLocales() {
		raw, err := fs.ReadFile(fsys, path.Join(dir, l.String()+".yaml"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var c Catalog
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		b.dict[l] = c
		b.tags = append(b.tags, language.Make(l.String()))
	}

	// The fallback goes first so the matcher prefers it on a tie.
	for i, t := range b.tags {
		if t == language.Make(fallback.String()) && i != 0 {
			b.tags[0], b.tags[i] = b.tags[i], b.tags[0]
		}
	}
	b.matcher = language.NewMatcher(b.tags)

	for l := range b.dict {
		m := Catalog{}
		for k, v := range b.dict[fallback] {
			m[k] = v
		}
		for k, v := range b.dict[l] {
			m[k] = v
		}
		b.merged[l] = m
	}
	return b, nil
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
	defaultErr    error
)

// Default returns the bundle built from the embedded catalogs.
func Default() (*Bundle, error) {
	defaultOnce.Do(func() {
		defaultBundle, defaultErr = Load(localeFS, "locales", models.DefaultLocale)
	})
	return defaultBundle, defaultErr
}

// MustDefault is Default for callers that cannot continue without strings.
func MustDefault() *Bundle {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}

// Fallback returns the locale used for missing keys.
func (b *Bundle) Fallback() models.Locale { return b.fallback }

// T returns the text for key in l, falling back to the fallback locale and
// finally to the key itself.
func (b *Bundle) T(l models.Locale, key string) string {
	if c, ok := b.dict[l]; ok {
		if v, ok := c[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Tf formats the text for key with args.
func (b *Bundle) Tf(l models.Locale, key string, args ...any) string {
	return fmt.Sprintf(b.T(l, key), args...)
}

// Catalog returns every key for l with fallback text filled in. Templates
// index it directly, e.g. {{.T.nav_home}}. Callers must not modify it.
func (b *Bundle) Catalog(l models.Locale) Catalog {
	if c, ok := b.merged[l]; ok {
		return c
	}
	return b.merged[b.fallback]
}

// Match picks the best supported locale for an Accept-Language header.
// ok is false when the header names no supported language; the caller
// then applies its own default.
func (b *Bundle) Match(acceptLanguage string) (l models.Locale, ok bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	base, _ := b.tags[idx].Base()
	return models.ParseLocale(base.String())
}
