// internal/app/system/flash/flash.go
package flash

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Kind is the outcome a flash reports.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Kind    Kind
	Message string
}

const (
	kindKey    = "flash_kind"
	messageKey = "flash_message"
)

// flashMaxAge bounds how long an unread flash survives.
const flashMaxAge = 10 * time.Minute

// Manager reads and writes flashes in a signed cookie session.
// Use NewManager to create an instance.
type Manager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// ConfigError is returned when the flash cookie configuration is invalid.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// NewManager creates a Manager signing cookies with sessionKey.
//
// Parameters:
//   - sessionKey: signing key for cookies (must be ≥32 chars in production)
//   - name: cookie name (defaults to "hydrasite-flash" if empty)
//   - domain: cookie domain (empty means current host)
//   - secure: if true, cookies are Secure and weak keys are rejected
//   - logger: zap logger for cookie error logging
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, &ConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	isWeak := len(sessionKey) < 32 || isDefaultKey(sessionKey)
	if secure {
		if isWeak {
			return nil, &ConfigError{
				Message: "session key is too weak for production; provide ≥32 random chars (not the default dev key)",
			}
		}
	} else if isWeak {
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)),
			zap.Bool("is_default", isDefaultKey(sessionKey)))
	}

	if name == "" {
		name = "hydrasite-flash"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(flashMaxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("flash manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &Manager{store: store, logger: logger, name: name}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string {
	return m.name
}

// Set stores f for the next request. It must be called before the response
// headers are written.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, f Flash) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A stale or foreign cookie is replaced.
		sess, _ = m.store.New(r, m.name)
	}
	sess.Values[kindKey] = string(f.Kind)
	sess.Values[messageKey] = f.Message
	return sess.Save(r, w)
}

// Pop returns the pending flash, if any, and clears it.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	if _, err := r.Cookie(m.name); err != nil {
		return Flash{}, false
	}

	sess, err := m.store.Get(r, m.name)
	if err != nil {
		reason := classifyCookieError(err)
		m.logger.Info("flash cookie rejected",
			zap.String("reason", reason),
			zap.String("path", r.URL.Path))
		m.clear(w)
		return Flash{}, false
	}

	kind, _ := sess.Values[kindKey].(string)
	msg, _ := sess.Values[messageKey].(string)
	if kind == "" {
		return Flash{}, false
	}

	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		m.logger.Warn("failed to clear flash", zap.Error(err))
	}
	return Flash{Kind: Kind(kind), Message: msg}, true
}

func (m *Manager) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// classifyCookieError names a cookie decode failure for logs.
func classifyCookieError(err error) string {
	if err == nil {
		return "none"
	}
	errStr := strings.ToLower(err.Error())

	if scErr, ok := err.(securecookie.Error); ok {
		if !scErr.IsDecode() {
			return "backend"
		}
		switch {
		case strings.Contains(errStr, "expired timestamp"):
			return "expired"
		case strings.Contains(errStr, "mac") || strings.Contains(errStr, "hash"):
			return "mac_invalid"
		case strings.Contains(errStr, "base64") || strings.Contains(errStr, "decode"):
			return "decode_failed"
		default:
			return "decode_other"
		}
	}
	return "unknown"
}

// isDefaultKey reports whether key looks like a placeholder.
func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	patterns := []string{
		"dev-only",
		"change-me",
		"placeholder",
		"default",
		"example",
		"insecure",
		"test-key",
		"secret123",
		"password",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
