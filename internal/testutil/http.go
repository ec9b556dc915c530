package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/hydrasite/internal/app/system/locale"
	"github.com/dalemusser/hydrasite/internal/domain/models"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewFormRequest creates a POST request with a url-encoded body and a CSRF token.
func NewFormRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return WithCSRFToken(req)
}

// WithLocale puts l on the request context the way the locale middleware does.
func WithLocale(r *http.Request, l models.Locale) *http.Request {
	return r.WithContext(locale.WithLocale(r.Context(), l))
}
