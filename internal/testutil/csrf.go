package testutil

import (
	"context"
	"net/http"
)

// TestCSRFToken is the token WithCSRFToken places on a request.
const TestCSRFToken = "test-csrf-token-12345"

// gorilla/csrf stores the masked token under this plain string key.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken makes csrf.Token(r) return TestCSRFToken without running
// the csrf middleware.
func WithCSRFToken(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), csrfTokenKey, TestCSRFToken))
}
