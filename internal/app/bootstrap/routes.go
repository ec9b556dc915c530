// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	contactfeature "github.com/dalemusser/hydrasite/internal/app/features/contact"
	contentapifeature "github.com/dalemusser/hydrasite/internal/app/features/contentapi"
	coursesfeature "github.com/dalemusser/hydrasite/internal/app/features/courses"
	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	healthfeature "github.com/dalemusser/hydrasite/internal/app/features/health"
	homefeature "github.com/dalemusser/hydrasite/internal/app/features/home"
	languagefeature "github.com/dalemusser/hydrasite/internal/app/features/language"
	printingfeature "github.com/dalemusser/hydrasite/internal/app/features/printing"
	productsfeature "github.com/dalemusser/hydrasite/internal/app/features/products"
	servicesfeature "github.com/dalemusser/hydrasite/internal/app/features/services"
	appresources "github.com/dalemusser/hydrasite/internal/app/resources"
	"github.com/dalemusser/hydrasite/internal/app/store/ratelimit"
	"github.com/dalemusser/hydrasite/internal/app/system/flash"
	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/app/system/locale"
	"github.com/dalemusser/hydrasite/internal/app/system/network"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// Route groups:
//   - Site pages: locale resolution + CSRF on forms
//   - /api: content API, permissive CORS, no CSRF (only when api_enabled)
//   - /health, /ready, /readyz, /livez: probes
//   - /assets, /static and the local media prefix: files
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	bundle, err := i18n.Default()
	if err != nil {
		logger.Error("loading UI strings failed", zap.Error(err))
		return nil, err
	}
	defLocale, _ := models.ParseLocale(appCfg.DefaultLocale)

	// Page chrome (navbar, footer, SEO) reads through the content client.
	viewdata.Init(deps.Content, bundle, logger, appCfg.BaseURL)

	flashes, err := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("flash manager init failed", zap.Error(err))
		return nil, err
	}

	proxies, err := network.NewTrusted(splitList(appCfg.TrustedProxies)...)
	if err != nil {
		logger.Error("trusted proxies invalid", zap.Error(err))
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	r.Use(chimw.RequestID)
	// Client address from X-Forwarded-For only behind loopback or a trusted proxy.
	r.Use(proxies.RealIP)

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Locale: ?lang= > cookie > Accept-Language > default.
	localeMW := locale.Middleware(bundle, defLocale, secure)
	r.Use(localeMW)

	// Panics become a logged 500: the error page, or JSON under /api.
	r.Use(errorsHandler.Recoverer(logger, func(req *http.Request) bool { return isAPIPath(req.URL.Path) }))

	// CSRF protection with a path exemption for the content API, which
	// takes JSON from other origins and carries no cookies.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("hydrasite_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)
	r.Use(func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if isAPIPath(req.URL.Path) {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	})

	// ─────────────────────────────────────────────────────────────────────────────
	// Content API
	// ─────────────────────────────────────────────────────────────────────────────

	if deps.MongoDatabase != nil {
		var limiter *ratelimit.Store
		if appCfg.ContactRateLimitEnabled {
			limiter = ratelimit.New(
				deps.MongoDatabase,
				appCfg.ContactRateLimitAttempts,
				appCfg.ContactRateLimitWindow,
				appCfg.ContactRateLimitLockout,
			)
		}
		apiHandler := contentapifeature.NewHandler(deps.MongoDatabase, contentapifeature.Options{
			Images:    deps.FileStorage,
			Mailer:    deps.Mailer,
			Limiter:   limiter,
			AutoReply: appCfg.ContactAutoReply,
			PageSize:  int64(appCfg.APIPageSize),
			Proxies:   proxies,
		}, logger)
		r.Mount("/api", contentapifeature.Routes(apiHandler, splitList(appCfg.APICORSOrigins)...))
	}

	// ─────────────────────────────────────────────────────────────────────────────
	// Health and files
	// ─────────────────────────────────────────────────────────────────────────────

	var checkers []healthfeature.Checker
	if deps.MongoClient != nil {
		checkers = append(checkers, healthfeature.MongoChecker(deps.MongoClient))
	}
	checkers = append(checkers, healthfeature.ContentChecker(deps.Content))
	healthHandler := healthfeature.NewHandler(logger, checkers...)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	r.Handle("/static/*", fileserver.Handler("/static", "static"))
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))
	if deps.FileStorage != nil && (appCfg.StorageType == "local" || appCfg.StorageType == "") {
		prefix := strings.TrimRight(appCfg.StorageLocalURL, "/")
		r.Handle(prefix+"/*", fileserver.Handler(prefix, appCfg.StorageLocalPath))
	}

	// ─────────────────────────────────────────────────────────────────────────────
	// Site pages
	// ─────────────────────────────────────────────────────────────────────────────

	client := deps.Content

	r.Mount("/", homefeature.Routes(homefeature.NewHandler(client, errLog, logger)))
	r.Mount("/services", servicesfeature.Routes(servicesfeature.NewHandler(client, errLog, logger)))
	r.Mount("/products", productsfeature.Routes(productsfeature.NewHandler(client, errLog, logger)))
	r.Mount("/courses", coursesfeature.Routes(coursesfeature.NewHandler(client, errLog, logger)))
	r.Mount("/3d-printing", printingfeature.Routes(printingfeature.NewHandler(client, errLog, logger)))
	r.Mount("/contact", contactfeature.Routes(contactfeature.NewHandler(client, bundle, flashes, errLog, logger)))
	r.Mount("/language", languagefeature.Routes(languagefeature.NewHandler(secure, logger)))

	r.NotFound(errorsHandler.NotFound)

	logger.Info("routes built",
		zap.Bool("api_enabled", deps.MongoDatabase != nil),
		zap.String("default_locale", defLocale.String()),
	)
	return r, nil
}

// isAPIPath reports whether path belongs to the content API.
func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// splitList splits a comma-separated config value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
