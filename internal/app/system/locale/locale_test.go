package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/domain/models"
)

func TestResolve_Precedence(t *testing.T) {
	bundle := i18n.MustDefault()

	tests := []struct {
		name      string
		target    string
		cookie    string
		accept    string
		want      models.Locale
		wantQuery bool
	}{
		{"default", "/", "", "", models.LocaleEN, false},
		{"accept-language", "/", "", "ar-SA,ar;q=0.9", models.LocaleAR, false},
		{"cookie beats header", "/", "en", "ar", models.LocaleEN, false},
		{"query beats cookie", "/?lang=ar", "en", "", models.LocaleAR, true},
		{"bad query ignored", "/?lang=de", "ar", "", models.LocaleAR, false},
		{"bad cookie ignored", "/", "xx", "ar", models.LocaleAR, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			got, fromQuery := Resolve(req, bundle, models.LocaleEN)
			if got != tt.want || fromQuery != tt.wantQuery {
				t.Errorf("Resolve() = %q/%v, want %q/%v", got, fromQuery, tt.want, tt.wantQuery)
			}
		})
	}
}

func TestResolve_UnsupportedHeaderUsesDefault(t *testing.T) {
	bundle := i18n.MustDefault()

	for _, accept := range []string{"fr-FR,fr;q=0.9", "de", "!!garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", accept)
		if got, _ := Resolve(req, bundle, models.LocaleAR); got != models.LocaleAR {
			t.Errorf("Resolve(%q) = %q, want default ar", accept, got)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr;q=0.9,en;q=0.8")
	if got, _ := Resolve(req, bundle, models.LocaleAR); got != models.LocaleEN {
		t.Errorf("Resolve() = %q, want en from the header", got)
	}
}

func TestMiddleware_StoresLocaleAndPersistsOverride(t *testing.T) {
	var seen models.Locale
	h := Middleware(i18n.MustDefault(), models.LocaleEN, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromRequest(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?lang=ar", nil))

	if seen != models.LocaleAR {
		t.Errorf("locale in handler = %q, want ar", seen)
	}
	if got := rec.Header().Get("Content-Language"); got != "ar" {
		t.Errorf("Content-Language = %q, want ar", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != "ar" {
		t.Errorf("cookies = %v, want language=ar", cookies)
	}

	// Without an override no cookie is written
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("unexpected cookies %v", rec.Result().Cookies())
	}
}

func TestFromContext_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromRequest(req); got != models.DefaultLocale {
		t.Errorf("FromRequest() = %q, want %q", got, models.DefaultLocale)
	}
}
