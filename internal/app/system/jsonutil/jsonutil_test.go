package jsonutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestWriters(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		status   int
		key      string
		wantText string
	}{
		{"ok", func(w http.ResponseWriter) { OK(w, map[string]string{"name": "PLC"}) }, 200, "name", "PLC"},
		{"created", func(w http.ResponseWriter) { Created(w, map[string]bool{"success": true}) }, 201, "success", "true"},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "invalid JSON payload") }, 400, "error", "invalid JSON payload"},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "internal server error") }, 500, "error", "internal server error"},
		{"not found detail", NotFoundDetail, 404, "detail", "Not found."},
		{"custom status", func(w http.ResponseWriter) { Error(w, http.StatusRequestEntityTooLarge, "too big") }, 413, "error", "too big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Content-Type = %q", ct)
			}
			body := decodeBody(t, rec)
			got := body[tt.key]
			if s, ok := got.(string); ok {
				if s != tt.wantText {
					t.Errorf("%s = %q, want %q", tt.key, s, tt.wantText)
				}
			} else if b, ok := got.(bool); !ok || tt.wantText != "true" || !b {
				t.Errorf("%s = %v, want %s", tt.key, got, tt.wantText)
			}
		})
	}
}

func TestJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusAccepted, nil)
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "must be a valid email address", "name": "is required"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "validation failed" {
		t.Errorf("error = %v", body["error"])
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields = %T", body["fields"])
	}
	if fields["email"] != "must be a valid email address" || fields["name"] != "is required" {
		t.Errorf("fields = %v", fields)
	}
}

func TestTooManyRequests(t *testing.T) {
	tests := []struct {
		retry time.Duration
		want  string
	}{
		{90 * time.Second, "90"},
		{1500 * time.Millisecond, "2"},
		{0, ""},
		{-time.Second, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		TooManyRequests(rec, "Too many messages", tt.retry)
		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("status = %d", rec.Code)
		}
		if got := rec.Header().Get("Retry-After"); got != tt.want {
			t.Errorf("Retry-After for %v = %q, want %q", tt.retry, got, tt.want)
		}
	}
}

func TestDecodeLimited(t *testing.T) {
	type contact struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	t.Run("fits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(`{"name":"سارة","email":"s@example.com"}`))
		var c contact
		if err := DecodeLimited(httptest.NewRecorder(), req, &c, 1024); err != nil {
			t.Fatalf("DecodeLimited: %v", err)
		}
		if c.Name != "سارة" || c.Email != "s@example.com" {
			t.Errorf("decoded %+v", c)
		}
	})

	t.Run("too large", func(t *testing.T) {
		big := `{"name":"` + strings.Repeat("x", 2048) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(big))
		var c contact
		err := DecodeLimited(httptest.NewRecorder(), req, &c, 64)
		var maxErr *http.MaxBytesError
		if !errors.As(err, &maxErr) {
			t.Errorf("err = %v, want *http.MaxBytesError", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(`{"name":`))
		var c contact
		if err := DecodeLimited(httptest.NewRecorder(), req, &c, 1024); err == nil {
			t.Error("expected error for truncated JSON")
		}
	})
}
