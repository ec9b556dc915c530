// Package inputval validates submitted input against `validate` struct tags
// through waffle/pantry/validate and reports the failures per field.
//
// Fields are identified by their json tag name so the content API and the
// contact form can key errors the same way. A `label` tag supplies the name
// used in messages.
package inputval

import (
	"net/mail"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/validate"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Label   string
	Rule    string
	Message string
}

// Result collects the failures of one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Fields returns the first message of each failing field.
func (r *Result) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

var (
	validator     *validate.Validator
	validatorOnce sync.Once
)

func getValidator() *validate.Validator {
	validatorOnce.Do(func() {
		validator = validate.New(validate.WithStopOnFirstError())
		validator.RegisterRuleFunc("httpurl", func(value any) bool {
			s, ok := value.(string)
			return ok && IsValidHTTPURL(s)
		}, "httpurl")
		validator.RegisterRuleFunc("locale", func(value any) bool {
			s, ok := value.(string)
			return ok && IsValidLocale(s)
		}, "locale")
	})
	return validator
}

// Validate checks s against its `validate` tags. Besides the pantry/validate
// rules (required, email, min, max, oneof) it understands httpurl and locale.
func Validate(s any) *Result {
	res := &Result{}
	err := getValidator().Struct(s)
	if err == nil {
		return res
	}
	errs, ok := err.(validate.Errors)
	if !ok {
		res.Errors = append(res.Errors, FieldError{Rule: "invalid", Message: err.Error()})
		return res
	}

	names := fieldNames(s)
	for _, e := range errs {
		n, ok := names[e.Field]
		if !ok {
			n = fieldName{json: e.Field, label: e.Field}
		}
		res.Errors = append(res.Errors, FieldError{
			Field:   n.json,
			Label:   n.label,
			Rule:    e.Rule,
			Message: message(n.label, e.Rule, e.Param),
		})
	}
	return res
}

type fieldName struct {
	json  string
	label string
}

// fieldNames maps both the Go field name and the json name of each field of
// s to its json name and label.
func fieldNames(s any) map[string]fieldName {
	out := map[string]fieldName{}
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return out
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		n := fieldName{json: f.Name, label: f.Name}
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" && tag != "-" {
			n.json = tag
		}
		if l := f.Tag.Get("label"); l != "" {
			n.label = l
		}
		out[f.Name] = n
		out[n.json] = n
	}
	return out
}

func message(label, rule, param string) string {
	switch rule {
	case "required":
		return label + " is required."
	case "email":
		return "A valid email address is required."
	case "max":
		return label + " must be at most " + param + " characters."
	case "min":
		return label + " must be at least " + param + " characters."
	case "oneof":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "locale":
		return label + " must be en or ar."
	case "httpurl":
		return label + " must be an http:// or https:// URL."
	default:
		return label + " is invalid."
	}
}

// IsValidEmail reports whether email is a bare RFC 5322 address, rejecting
// the "Name <addr>" form net/mail also accepts.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsValidLocale reports whether code names a site language.
func IsValidLocale(code string) bool {
	_, ok := models.ParseLocale(code)
	return ok
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
