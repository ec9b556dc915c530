// Package locale resolves the display language of each request and carries
// it on the request context.
package locale

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/domain/models"
)

// CookieName is the cookie that persists the visitor's language choice.
const CookieName = "language"

// QueryParam overrides the language for a request and persists it.
const QueryParam = "lang"

const cookieMaxAge = 365 * 24 * time.Hour

type ctxKey struct{}

// WithLocale returns a copy of ctx carrying l.
func WithLocale(ctx context.Context, l models.Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the locale stored on ctx, or the default locale.
func FromContext(ctx context.Context) models.Locale {
	if l, ok := ctx.Value(ctxKey{}).(models.Locale); ok {
		return l
	}
	return models.DefaultLocale
}

// FromRequest returns the locale resolved for r.
func FromRequest(r *http.Request) models.Locale {
	return FromContext(r.Context())
}

// SetCookie persists l for a year.
func SetCookie(w http.ResponseWriter, l models.Locale, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Resolve picks the locale for r: ?lang= first, then the language cookie,
// then Accept-Language, then def. fromQuery reports whether ?lang= decided it.
func Resolve(r *http.Request, bundle *i18n.Bundle, def models.Locale) (l models.Locale, fromQuery bool) {
	if q := r.URL.Query().Get(QueryParam); q != "" {
		if l, ok := models.ParseLocale(q); ok {
			return l, true
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := models.ParseLocale(c.Value); ok {
			return l, false
		}
	}
	if h := r.Header.Get("Accept-Language"); h != "" && bundle != nil {
		if l, ok := bundle.Match(h); ok {
			return l, false
		}
	}
	return def, false
}

// Middleware resolves the locale for every request, stores it on the context
// and sets Content-Language. A ?lang= override is written back to the cookie.
func Middleware(bundle *i18n.Bundle, def models.Locale, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l, fromQuery := Resolve(r, bundle, def)
			if fromQuery {
				SetCookie(w, l, secureCookie)
			}
			w.Header().Set("Content-Language", l.String())
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), l)))
		})
	}
}
