package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hydrasite/internal/app/system/contentclient/contenttest"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/hydrasite/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string                  { return f.name }
func (f fakeChecker) Check(ctx context.Context) error { return f.err }

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandler_Check_Mongo(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := NewHandler(zap.NewNop(), MongoChecker(db.Client()))

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Check() status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decode(t, rec)
	if resp.Status != "ok" {
		t.Errorf("response status = %q, want %q", resp.Status, "ok")
	}
	if resp.Services["mongodb"] != "ok" {
		t.Errorf("mongodb status = %q, want %q", resp.Services["mongodb"], "ok")
	}
}

func TestHandler_Check_ContentAPI(t *testing.T) {
	settings := models.DefaultSiteSettings()
	srv := contenttest.NewServer(t, contenttest.Fixture{Settings: &settings})

	h := NewHandler(zap.NewNop(), ContentChecker(srv.Client(t)))

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Check() status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decode(t, rec).Services["content_api"]; got != "ok" {
		t.Errorf("content_api status = %q, want ok", got)
	}
}

func TestHandler_Check_Degraded(t *testing.T) {
	h := NewHandler(zap.NewNop(),
		fakeChecker{name: "mongodb"},
		fakeChecker{name: "content_api", err: errors.New("connection refused")},
	)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	resp := decode(t, rec)
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if resp.Services["mongodb"] != "ok" || resp.Services["content_api"] != "unavailable" {
		t.Errorf("services = %v", resp.Services)
	}
}

func TestHandler_Ready(t *testing.T) {
	h := NewHandler(zap.NewNop(), fakeChecker{name: "mongodb"})

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body["status"] != "ready" {
		t.Errorf("Ready() body = %v", body)
	}
}

func TestHandler_NotReady(t *testing.T) {
	h := NewHandler(zap.NewNop(), fakeChecker{name: "mongodb", err: errors.New("down")})

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Ready() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandler_Live(t *testing.T) {
	h := NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Live() status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMountRootEndpoints(t *testing.T) {
	h := NewHandler(zap.NewNop())
	r := chi.NewRouter()
	MountRootEndpoints(r, h)
	r.Mount("/health", Routes(h))

	for _, path := range []string{"/ready", "/readyz", "/livez", "/health", "/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}
