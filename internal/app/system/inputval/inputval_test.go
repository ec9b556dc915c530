package inputval

import (
	"strings"
	"testing"

	"github.com/dalemusser/hydrasite/internal/domain/models"
)

func validContact() models.ContactSubmission {
	return models.ContactSubmission{
		Name:    "Layla Haddad",
		Email:   "layla@example.com",
		Phone:   "+964 770 000 0000",
		Subject: "Inquiry about product: PLC",
		Message: "Please send a quotation.",
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"layla@example.com", true},
		{"sales+plc@hydra-tech.iq", true},
		{"  layla@example.com  ", true},
		{"", false},
		{"   ", false},
		{"notanemail", false},
		{"@example.com", false},
		{"layla@", false},
		{"Layla <layla@example.com>", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://localhost:8080/api", true},
		{"https://hydra-tech.example/api/", true},
		{"", false},
		{"localhost:8080", false},
		{"/api", false},
		{"ftp://example.com", false},
		{"javascript:alert(1)", false},
	}
	for _, tt := range tests {
		if got := IsValidHTTPURL(tt.url); got != tt.want {
			t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestIsValidLocale(t *testing.T) {
	for code, want := range map[string]bool{"en": true, "ar": true, "AR": true, "fr": false, "": false} {
		if got := IsValidLocale(code); got != want {
			t.Errorf("IsValidLocale(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ContactSubmission)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*models.ContactSubmission) {}, "", ""},
		{"phone optional", func(c *models.ContactSubmission) { c.Phone = "" }, "", ""},
		{"missing name", func(c *models.ContactSubmission) { c.Name = "" }, "name", "Name is required."},
		{"bad email", func(c *models.ContactSubmission) { c.Email = "layla" }, "email", "A valid email address is required."},
		{"missing message", func(c *models.ContactSubmission) { c.Message = "" }, "message", "Message is required."},
		{"long subject", func(c *models.ContactSubmission) { c.Subject = strings.Repeat("s", 301) }, "subject", "Subject must be at most 300 characters."},
		{"long phone", func(c *models.ContactSubmission) { c.Phone = strings.Repeat("1", 51) }, "phone", "Phone must be at most 50 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContact()
			tt.mutate(&in)
			res := Validate(in)
			if tt.wantField == "" {
				if res.HasErrors() {
					t.Fatalf("unexpected errors: %+v", res.Errors)
				}
				return
			}
			fields := res.Fields()
			if got := fields[tt.wantField]; got != tt.wantMsg {
				t.Errorf("fields[%q] = %q, want %q (all: %v)", tt.wantField, got, tt.wantMsg, fields)
			}
			if res.First() == "" {
				t.Error("First() is empty")
			}
		})
	}
}

func TestValidatePointer(t *testing.T) {
	in := validContact()
	in.Name = ""
	if got := Validate(&in).Fields()["name"]; got != "Name is required." {
		t.Errorf("fields[name] = %q", got)
	}
}

func TestValidateCustomRules(t *testing.T) {
	type settings struct {
		BaseURL string `json:"base_url" validate:"httpurl" label:"Base URL"`
		Locale  string `json:"locale" validate:"locale"`
	}

	if res := Validate(settings{BaseURL: "https://hydra.example", Locale: "ar"}); res.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	res := Validate(settings{BaseURL: "hydra.example", Locale: "ar"})
	if got := res.Fields()["base_url"]; got != "Base URL must be an http:// or https:// URL." {
		t.Errorf("base_url = %q", got)
	}

	res = Validate(settings{BaseURL: "https://hydra.example", Locale: "fr"})
	if got := res.Fields()["locale"]; got != "Locale must be en or ar." {
		t.Errorf("locale = %q", got)
	}
}

func TestResultEmpty(t *testing.T) {
	var r Result
	if r.HasErrors() || r.First() != "" || len(r.Fields()) != 0 {
		t.Errorf("empty result = %+v", r)
	}
}

func TestFieldsKeepsFirstMessage(t *testing.T) {
	r := Result{Errors: []FieldError{
		{Field: "name", Message: "first"},
		{Field: "name", Message: "second"},
		{Field: "email", Message: "bad"},
	}}
	f := r.Fields()
	if f["name"] != "first" || f["email"] != "bad" || len(f) != 2 {
		t.Errorf("Fields() = %v", f)
	}
}
