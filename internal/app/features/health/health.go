// internal/app/features/health/health.go
package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
	"github.com/dalemusser/hydrasite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Checker probes one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type mongoChecker struct{ client *mongo.Client }

func (m mongoChecker) Name() string { return "mongodb" }

func (m mongoChecker) Check(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// MongoChecker pings the primary of client.
func MongoChecker(client *mongo.Client) Checker { return mongoChecker{client: client} }

type contentChecker struct{ client *contentclient.Client }

func (c contentChecker) Name() string { return "content_api" }

func (c contentChecker) Check(ctx context.Context) error {
	_, err := c.client.SiteSettings(ctx)
	return err
}

// ContentChecker reads the site settings through the content API client.
func ContentChecker(client *contentclient.Client) Checker { return contentChecker{client: client} }

// Handler provides health check endpoints.
type Handler struct {
	checkers []Checker
	logger   *zap.Logger
}

// NewHandler creates a health Handler. Readiness requires every checker to pass.
func NewHandler(logger *zap.Logger, checkers ...Checker) *Handler {
	return &Handler{
		checkers: checkers,
		logger:   logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds the probe endpoints directly on the root router:
//   - /ready and /readyz for readiness
//   - /livez for liveness
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

func (h *Handler) run(ctx context.Context) Response {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string, len(h.checkers)),
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	for _, c := range h.checkers {
		if err := c.Check(ctx); err != nil {
			resp.Status = "degraded"
			resp.Services[c.Name()] = "unavailable"
			h.logger.Warn("health check failed", zap.String("service", c.Name()), zap.Error(err))
			continue
		}
		resp.Services[c.Name()] = "ok"
	}
	return resp
}

// Check runs every checker and reports each dependency.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := h.run(r.Context())
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	jsonutil.JSON(w, status, resp)
}

// Ready reports whether the service can accept requests.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if resp := h.run(r.Context()); resp.Status != "ok" {
		jsonutil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	jsonutil.OK(w, map[string]string{"status": "ready"})
}

// Live reports that the process is serving.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, map[string]string{"status": "alive"})
}
