// internal/app/features/contact/form.go
package contact

import (
	"fmt"
	"strings"

	"github.com/dalemusser/hydrasite/internal/app/system/inputval"
	"github.com/dalemusser/hydrasite/internal/app/system/normalize"
	"github.com/dalemusser/hydrasite/internal/domain/models"
)

// State is the status of the contact form.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Form holds the contact form values and its submission state.
//
//	idle -> loading -> success | error
//	error -> loading (resubmit)
//	success -> idle (next load)
type Form struct {
	State   State
	Values  models.ContactSubmission
	Message string
	Errors  map[string]string
}

// NewForm returns an idle form with the subject prefilled.
func NewForm(subject string) Form {
	return Form{State: StateIdle, Values: models.ContactSubmission{Subject: subject}}
}

// Begin moves the form into loading for a submission of v.
func (f *Form) Begin(v models.ContactSubmission) error {
	if f.State != StateIdle && f.State != StateError {
		return fmt.Errorf("contact form: cannot submit from %s", f.State)
	}
	f.State = StateLoading
	f.Values = v
	f.Message = ""
	f.Errors = nil
	return nil
}

// Succeed finishes a submission and clears the values.
func (f *Form) Succeed(message string) {
	if f.State != StateLoading {
		return
	}
	f.State = StateSuccess
	f.Values = models.ContactSubmission{}
	f.Message = message
	f.Errors = nil
}

// Fail finishes a submission and keeps the values for another attempt.
func (f *Form) Fail(message string, fieldErrors map[string]string) {
	if f.State != StateLoading {
		return
	}
	f.State = StateError
	f.Message = message
	f.Errors = fieldErrors
}

// Reset returns a finished form to idle.
func (f *Form) Reset() {
	if f.State == StateSuccess {
		f.State = StateIdle
		f.Message = ""
	}
}

// IsSuccess reports whether the last submission was accepted.
func (f Form) IsSuccess() bool { return f.State == StateSuccess }

// IsError reports whether the last submission failed.
func (f Form) IsError() bool { return f.State == StateError }

// Clean normalizes submitted values the way the form stores them.
func Clean(v models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    normalize.Name(v.Name),
		Email:   normalize.Email(v.Email),
		Phone:   normalize.Phone(v.Phone),
		Subject: strings.TrimSpace(v.Subject),
		Message: normalize.Message(v.Message),
	}
}

// Check validates v and returns catalog keys for the failing fields, keyed by
// form field name. Nil means v can be submitted.
func Check(v models.ContactSubmission) map[string]string {
	res := inputval.Validate(v)
	if !res.HasErrors() {
		return nil
	}
	values := map[string]string{
		"name":    v.Name,
		"email":   v.Email,
		"phone":   v.Phone,
		"subject": v.Subject,
		"message": v.Message,
	}
	out := map[string]string{}
	for field := range res.Fields() {
		field = strings.ToLower(field)
		switch {
		case values[field] == "":
			out[field] = "contact_required"
		case field == "email" && !inputval.IsValidEmail(values[field]):
			out[field] = "contact_invalid_email"
		default:
			out[field] = "contact_too_long"
		}
	}
	return out
}

// PrefillSubject builds the subject from the deep-link parameters. The first
// present of product, service, course and project wins.
func PrefillSubject(get func(string) string, tf func(key string, args ...any) string) string {
	for _, kind := range []string{"product", "service", "course", "project"} {
		if label := strings.TrimSpace(get(kind)); label != "" {
			return tf("contact_subject_"+kind, label)
		}
	}
	return ""
}
