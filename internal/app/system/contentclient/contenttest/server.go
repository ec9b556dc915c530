// Package contenttest serves canned content over HTTP so handlers that use
// contentclient can be tested without a real API.
package contenttest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Fixture is the content the fake API serves.
type Fixture struct {
	Services   []models.Service
	Categories []models.ProductCategory
	Products   []models.Product
	Courses    []models.Course
	Projects   []models.PrintProject
	Settings   *models.SiteSettings

	// BareLists serves lists as plain arrays instead of paginated envelopes.
	BareLists bool
	// ContactStatus is the status answered to POST /contact/. 0 means 201.
	ContactStatus int
	// FailAll makes every endpoint answer 500.
	FailAll bool
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	fixture  Fixture
	contacts []models.ContactSubmission
	senders  []string
	paths    []string
}

// NewServer starts a fake API for f and closes it when the test ends.
func NewServer(t testing.TB, f Fixture) *Server {
	t.Helper()
	s := &Server{fixture: f}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// Client returns a contentclient pointed at the fake API.
func (s *Server) Client(t testing.TB) *contentclient.Client {
	t.Helper()
	c, err := contentclient.New(contentclient.Options{BaseURL: s.URL + "/api"})
	if err != nil {
		t.Fatalf("contentclient.New: %v", err)
	}
	return c
}

// Contacts returns the contact submissions received so far.
func (s *Server) Contacts() []models.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ContactSubmission(nil), s.contacts...)
}

// ContactSenders returns the X-Forwarded-For value of each contact
// submission, in arrival order.
func (s *Server) ContactSenders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.senders...)
}

// Requests returns the request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.mu.Lock()
			s.paths = append(s.paths, req.URL.RequestURI())
			fail := s.fixture.FailAll
			s.mu.Unlock()
			if fail {
				http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", func(w http.ResponseWriter, req *http.Request) {
			s.list(w, s.fixture.Services)
		})
		r.Get("/services/{id}", func(w http.ResponseWriter, req *http.Request) {
			one(w, req, s.fixture.Services, func(v models.Service) int64 { return v.ID })
		})
		r.Get("/product-categories", func(w http.ResponseWriter, req *http.Request) {
			s.list(w, s.fixture.Categories)
		})
		r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
			slug := req.URL.Query().Get("category__slug")
			featured := req.URL.Query().Get("is_featured")
			out := []models.Product{}
			for _, p := range s.fixture.Products {
				if slug != "" && p.CategorySlug != slug {
					continue
				}
				if featured != "" && strconv.FormatBool(p.IsFeatured) != featured {
					continue
				}
				out = append(out, p)
			}
			s.list(w, out)
		})
		r.Get("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
			one(w, req, s.fixture.Products, func(v models.Product) int64 { return v.ID })
		})
		r.Get("/courses", func(w http.ResponseWriter, req *http.Request) {
			level := req.URL.Query().Get("level")
			featured := req.URL.Query().Get("is_featured")
			out := []models.Course{}
			for _, c := range s.fixture.Courses {
				if level != "" && string(c.Level) != level {
					continue
				}
				if featured != "" && strconv.FormatBool(c.IsFeatured) != featured {
					continue
				}
				out = append(out, c)
			}
			s.list(w, out)
		})
		r.Get("/courses/{id}", func(w http.ResponseWriter, req *http.Request) {
			one(w, req, s.fixture.Courses, func(v models.Course) int64 { return v.ID })
		})
		r.Get("/3d-printing", func(w http.ResponseWriter, req *http.Request) {
			featured := req.URL.Query().Get("is_featured")
			out := []models.PrintProject{}
			for _, p := range s.fixture.Projects {
				if featured != "" && strconv.FormatBool(p.IsFeatured) != featured {
					continue
				}
				out = append(out, p)
			}
			s.list(w, out)
		})
		r.Get("/3d-printing/{id}", func(w http.ResponseWriter, req *http.Request) {
			one(w, req, s.fixture.Projects, func(v models.PrintProject) int64 { return v.ID })
		})
		r.Get("/site-settings", func(w http.ResponseWriter, req *http.Request) {
			settings := models.DefaultSiteSettings()
			if s.fixture.Settings != nil {
				settings = *s.fixture.Settings
			}
			writeJSON(w, http.StatusOK, settings)
		})
		r.Post("/contact", func(w http.ResponseWriter, req *http.Request) {
			var sub models.ContactSubmission
			if err := json.NewDecoder(req.Body).Decode(&sub); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
				return
			}
			s.mu.Lock()
			s.contacts = append(s.contacts, sub)
			s.senders = append(s.senders, req.Header.Get("X-Forwarded-For"))
			s.mu.Unlock()

			status := s.fixture.ContactStatus
			if status == 0 {
				status = http.StatusCreated
			}
			writeJSON(w, status, map[string]any{"success": status < 300})
		})
	})
	return r
}

func (s *Server) list(w http.ResponseWriter, items any) {
	if s.fixture.BareLists {
		writeJSON(w, http.StatusOK, items)
		return
	}
	raw, _ := json.Marshal(items)
	var arr []json.RawMessage
	_ = json.Unmarshal(raw, &arr)
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(arr),
		"next":     nil,
		"previous": nil,
		"results":  arr,
	})
}

func one[T any](w http.ResponseWriter, req *http.Request, items []T, id func(T) int64) {
	want, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err == nil {
		for _, it := range items {
			if id(it) == want {
				writeJSON(w, http.StatusOK, it)
				return
			}
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
