// internal/app/features/language/language.go
package language

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/hydrasite/internal/app/system/locale"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler switches the display language.
type Handler struct {
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler creates a language Handler. secureCookie marks the language
// cookie Secure for HTTPS deployments.
func NewHandler(secureCookie bool, logger *zap.Logger) *Handler {
	return &Handler{secureCookie: secureCookie, logger: logger}
}

// Routes returns a chi.Router with the language routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/toggle", h.Toggle)
	r.Get("/{code}", h.Set)
	return r
}

// Toggle flips between English and Arabic and returns to ?next=.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.switchTo(w, r, locale.FromRequest(r).Toggle())
}

// Set selects the language named in the path and returns to ?next=.
// Unsupported codes fall back to the default locale.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	l, ok := models.ParseLocale(chi.URLParam(r, "code"))
	if !ok {
		h.logger.Debug("unsupported language code", zap.String("code", chi.URLParam(r, "code")))
	}
	h.switchTo(w, r, l)
}

func (h *Handler) switchTo(w http.ResponseWriter, r *http.Request, l models.Locale) {
	locale.SetCookie(w, l, h.secureCookie)
	http.Redirect(w, r, NextPath(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// NextPath returns next when it is a local path, else "/". Any ?lang=
// override is removed so it cannot undo the new choice.
func NextPath(next string) string {
	next = urlutil.SafeReturn(strings.TrimSpace(next), "", "/")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	q := u.Query()
	if q.Has(locale.QueryParam) {
		q.Del(locale.QueryParam)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
