// internal/app/features/contact/contact.go
package contact

import (
	"errors"
	"net/http"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/flash"
	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/app/system/network"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the contact page and forwards submissions to the content API.
type Handler struct {
	client *contentclient.Client
	bundle *i18n.Bundle
	flash  *flash.Manager
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new contact Handler. flashes may be nil, in which case
// a successful submission renders the success state directly.
func NewHandler(client *contentclient.Client, bundle *i18n.Bundle, flashes *flash.Manager,
	errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		client: client,
		bundle: bundle,
		flash:  flashes,
		errLog: errLog,
		logger: logger,
	}
}

// Routes returns a chi.Router with the contact routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	r.Post("/", h.Submit)
	return r
}

// ContactVM is the view model for the contact page.
type ContactVM struct {
	viewdata.BaseVM
	Form        Form
	FieldErrors map[string]string
}

// Show renders the form. A success flash from the previous submission is
// shown once; the page is idle otherwise.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	vm := ContactVM{BaseVM: viewdata.New(r)}
	l := vm.Locale()

	vm.Form = NewForm(PrefillSubject(
		func(k string) string { return query.Get(r, k) },
		func(key string, args ...any) string { return h.bundle.Tf(l, key, args...) },
	))

	if h.flash != nil {
		if f, ok := h.flash.Pop(w, r); ok && f.Kind == flash.KindSuccess {
			vm.Form.State = StateLoading
			vm.Form.Succeed(f.Message)
		}
	}
	h.render(w, r, vm)
}

// Submit validates the form and posts it to the content API once.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	vm := ContactVM{BaseVM: viewdata.New(r)}
	l := vm.Locale()

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "contact: parse form failed", err)
	}
	sub := Clean(models.ContactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	})

	vm.Form = NewForm("")
	if err := vm.Form.Begin(sub); err != nil {
		h.errLog.Log(r, "contact: form state", err)
	}

	if bad := Check(sub); bad != nil {
		vm.Form.Fail(vm.T["contact_error"], bad)
		vm.FieldErrors = localize(bad, vm.T)
		h.render(w, r, vm)
		return
	}

	if err := h.client.SubmitContact(r.Context(), sub, network.RemoteHost(r)); err != nil {
		msg := vm.T["contact_error"]
		var se *contentclient.StatusError
		if errors.As(err, &se) && se.Code == http.StatusTooManyRequests {
			msg = vm.T["contact_rate_limited"]
		}
		h.errLog.Log(r, "contact: submission failed", err)
		vm.Form.Fail(msg, nil)
		h.render(w, r, vm)
		return
	}

	h.logger.Info("contact form submitted", zap.String("lang", l.String()))
	success := h.bundle.T(l, "contact_success")
	if h.flash != nil {
		err := h.flash.Set(w, r, flash.Flash{Kind: flash.KindSuccess, Message: success})
		if err == nil {
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
			return
		}
		h.errLog.Log(r, "contact: set flash failed", err)
	}
	vm.Form.Succeed(success)
	h.render(w, r, vm)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, vm ContactVM) {
	vm.Page(vm.T["contact_title"], vm.T["contact_subtitle"],
		viewdata.Crumb{Label: vm.T["nav_contact"], Href: "/contact"})
	templates.Render(w, r, "contact/index", vm)
}

func localize(keys map[string]string, t i18n.Catalog) map[string]string {
	out := make(map[string]string, len(keys))
	for field, key := range keys {
		out[field] = t[key]
	}
	return out
}
