// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"runtime/debug"

	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger wraps the zap logger for request-scoped error logging.
type ErrorLogger struct {
	logger *zap.Logger
}

// NewErrorLogger creates a new ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{logger: logger}
}

// Log logs an error with the given message and error.
func (e *ErrorLogger) Log(r *http.Request, msg string, err error) {
	e.LogWithFields(r, msg, err)
}

// LogWithFields logs an error with additional fields.
func (e *ErrorLogger) LogWithFields(r *http.Request, msg string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	}, fields...)
	e.logger.Error(msg, allFields...)
}

// Warn logs a degraded-but-served condition, such as a failed content fetch.
func (e *ErrorLogger) Warn(r *http.Request, msg string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.Error(err),
		zap.String("path", r.URL.Path),
	}, fields...)
	e.logger.Warn(msg, allFields...)
}

// ErrorVM is the view model for the error pages.
type ErrorVM struct {
	viewdata.BaseVM
	Heading string
	Text    string
}

// Handler provides error page handlers.
type Handler struct{}

// NewHandler creates a new error Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the localized 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	vm := ErrorVM{BaseVM: viewdata.New(r)}
	vm.Heading = vm.T["error_not_found_title"]
	vm.Text = vm.T["error_not_found_text"]
	vm.Page(vm.Heading, vm.Text)

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "errors/not_found", vm)
}

// InternalError renders the localized 500 page. No content is fetched so
// the page still renders when the content API is the cause.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	vm := ErrorVM{BaseVM: viewdata.Shell(r)}
	vm.Heading = vm.T["error_server_title"]
	vm.Text = vm.T["error_server_text"]
	vm.Page(vm.Heading, vm.Text)

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "errors/internal", vm)
}

// Recoverer turns a panic in next into a logged 500. Requests for which
// plain reports true get a JSON error body instead of the error page.
func (h *Handler) Recoverer(logger *zap.Logger, plain func(*http.Request) bool) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.ByteString("stack", debug.Stack()),
				)
				if plain != nil && plain(r) {
					jsonutil.InternalError(w, "internal server error")
					return
				}
				h.InternalError(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
