package contentapi

import (
	"net/http"

	"github.com/dalemusser/hydrasite/internal/app/system/apicors"
	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns a router with the content API endpoints.
//
// CORS is permissive unless origins are given. The API carries no cookies,
// so the site's CSRF protection does not apply here.
func Routes(h *Handler, origins ...string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(apicors.MiddlewareWithOrigins(origins...))

	r.Get("/services", h.ListServices)
	r.Get("/services/{id}", h.GetService)
	r.Get("/product-categories", h.ListCategories)
	r.Get("/product-categories/{slug}", h.GetCategory)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/{id}", h.GetCourse)
	r.Get("/3d-printing", h.ListProjects)
	r.Get("/3d-printing/{id}", h.GetProject)
	r.Get("/site-settings", h.GetSettings)
	r.Post("/contact", h.Contact)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		jsonutil.NotFoundDetail(w)
	})
	return r
}
