// Package apicors provides CORS middleware for the public content API.
//
// The content API carries no cookies or credentials:
//   - AllowCredentials is never set
//   - Origins can be "*" since there is nothing to protect per user
//   - Only the methods the API serves (GET, POST) are advertised
//
// Use MiddlewareWithOrigins when the API should only be callable from
// known front ends.
package apicors

import (
	"net/http"
	"strings"
)

const (
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type, Accept, Accept-Language"
	maxAge       = "86400" // 24 hours
)

// Middleware returns CORS middleware that allows any origin.
//
// Usage in routes.go:
//
//	// Content API - public, permissive CORS, no CSRF
//	r.Route("/api", func(r chi.Router) {
//	    r.Use(apicors.Middleware())
//	    r.Mount("/", contentapi.Routes(h))
//	})
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			setCommon(w)

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MiddlewareWithOrigins returns CORS middleware that only allows specific origins.
// An empty list behaves like Middleware.
//
// Usage:
//
//	r.Use(apicors.MiddlewareWithOrigins("https://hydratech-eg.com", "https://www.hydratech-eg.com"))
func MiddlewareWithOrigins(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			originSet[o] = struct{}{}
		}
	}
	if len(originSet) == 0 {
		return Middleware()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if origin is allowed
			if origin != "" {
				if _, allowed := originSet[origin]; allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
				// If origin not allowed, don't set CORS headers (browser will block)
			}
			w.Header().Add("Vary", "Origin")
			setCommon(w)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setCommon(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", allowMethods)
	w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
	w.Header().Set("Access-Control-Max-Age", maxAge)
}
