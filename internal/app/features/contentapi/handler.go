// Package contentapi serves the public content API the site pages read from.
//
// Endpoints (mounted at /api, trailing slashes optional):
//   - GET  /services, /services/{id}
//   - GET  /product-categories, /product-categories/{slug}
//   - GET  /products, /products/{id}
//   - GET  /courses, /courses/{id}
//   - GET  /3d-printing, /3d-printing/{id}
//   - GET  /site-settings
//   - POST /contact
//
// List endpoints answer with the paginated envelope {count, next, previous, results}.
package contentapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	categorystore "github.com/dalemusser/hydrasite/internal/app/store/categories"
	contactstore "github.com/dalemusser/hydrasite/internal/app/store/contacts"
	coursestore "github.com/dalemusser/hydrasite/internal/app/store/courses"
	printprojectstore "github.com/dalemusser/hydrasite/internal/app/store/printprojects"
	productstore "github.com/dalemusser/hydrasite/internal/app/store/products"
	"github.com/dalemusser/hydrasite/internal/app/store/ratelimit"
	servicestore "github.com/dalemusser/hydrasite/internal/app/store/services"
	settingsstore "github.com/dalemusser/hydrasite/internal/app/store/settings"
	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
	"github.com/dalemusser/hydrasite/internal/app/system/mailer"
	"github.com/dalemusser/hydrasite/internal/app/system/network"
	"github.com/dalemusser/hydrasite/internal/app/system/normalize"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ImageURLs turns a stored image path into a public URL.
// storage.Store from waffle satisfies it.
type ImageURLs interface {
	URL(path string) string
}

// Options tunes the API handler.
type Options struct {
	Images    ImageURLs        // nil leaves image paths untouched
	Mailer    *mailer.Mailer   // nil or disabled skips contact e-mail
	Limiter   *ratelimit.Store // nil disables the contact rate limit
	AutoReply bool             // send an acknowledgement to the sender
	PageSize  int64            // default page size, 0 means storeutil.DefaultPageSize
	Proxies   *network.Trusted // peers whose X-Forwarded-For is believed; nil means loopback
}

// Handler serves the content API from MongoDB.
type Handler struct {
	services   *servicestore.Store
	categories *categorystore.Store
	products   *productstore.Store
	courses    *coursestore.Store
	projects   *printprojectstore.Store
	settings   *settingsstore.Store
	contacts   *contactstore.Store

	images    ImageURLs
	mail      *mailer.Mailer
	limiter   *ratelimit.Store
	autoReply bool
	pageSize  int64
	proxies   *network.Trusted

	logger *zap.Logger
}

// NewHandler creates a new content API Handler.
func NewHandler(db *mongo.Database, opts Options, logger *zap.Logger) *Handler {
	return &Handler{
		services:   servicestore.New(db),
		categories: categorystore.New(db),
		products:   productstore.New(db),
		courses:    coursestore.New(db),
		projects:   printprojectstore.New(db),
		settings:   settingsstore.New(db),
		contacts:   contactstore.New(db),
		images:     opts.Images,
		mail:       opts.Mailer,
		limiter:    opts.Limiter,
		autoReply:  opts.AutoReply,
		pageSize:   opts.PageSize,
		proxies:    opts.Proxies,
		logger:     logger,
	}
}

// ListServices handles GET /services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	q, ok := h.listQuery(w, r)
	if !ok {
		return
	}
	items, total, err := h.services.List(r.Context(), q)
	if err != nil {
		h.storeError(w, r, "list services", err)
		return
	}
	writePage(w, r, q, items, total)
}

// GetService handles GET /services/{id}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	getByID(h, w, r, "get service", h.services.GetByID, nil)
}

// ListCategories handles GET /product-categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	q, ok := h.listQuery(w, r)
	if !ok {
		return
	}
	items, total, err := h.categories.List(r.Context(), q)
	if err != nil {
		h.storeError(w, r, "list categories", err)
		return
	}
	writePage(w, r, q, items, total)
}

// GetCategory handles GET /product-categories/{slug}.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := normalize.Slug(chi.URLParam(r, "slug"))
	cat, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFoundDetail(w)
			return
		}
		h.storeError(w, r, "get category", err)
		return
	}
	jsonutil.OK(w, cat)
}

// ListProducts handles GET /products?category__slug=&is_featured=&ordering=.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q, ok := h.listQuery(w, r)
	if !ok {
		return
	}
	featured, ok := featuredParam(w, r)
	if !ok {
		return
	}
	f := productstore.Filter{
		CategorySlug: normalize.Slug(r.URL.Query().Get("category__slug")),
		Featured:     featured,
	}
	items, total, err := h.products.List(r.Context(), f, q)
	if err != nil {
		h.storeError(w, r, "list products", err)
		return
	}
	for i := range items {
		items[i].Image = h.imageURL(items[i].Image)
	}
	writePage(w, r, q, items, total)
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	getByID(h, w, r, "get product", h.products.GetByID, func(p models.Product) models.Product {
		p.Image = h.imageURL(p.Image)
		return p
	})
}

// ListCourses handles GET /courses?level=&is_featured=&ordering=.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q, ok := h.listQuery(w, r)
	if !ok {
		return
	}
	featured, ok := featuredParam(w, r)
	if !ok {
		return
	}
	level := normalize.Level(r.URL.Query().Get("level"))
	if level != "" && !models.IsValidCourseLevel(level) {
		jsonutil.ValidationError(w, map[string]string{
			"level": "Select a valid choice. " + level + " is not one of the available choices.",
		})
		return
	}
	f := coursestore.Filter{Level: models.CourseLevel(level), Featured: featured}
	items, total, err := h.courses.List(r.Context(), f, q)
	if err != nil {
		h.storeError(w, r, "list courses", err)
		return
	}
	writePage(w, r, q, items, total)
}

// GetCourse handles GET /courses/{id}.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	getByID(h, w, r, "get course", h.courses.GetByID, nil)
}

// ListProjects handles GET /3d-printing?is_featured=&ordering=.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q, ok := h.listQuery(w, r)
	if !ok {
		return
	}
	featured, ok := featuredParam(w, r)
	if !ok {
		return
	}
	items, total, err := h.projects.List(r.Context(), printprojectstore.Filter{Featured: featured}, q)
	if err != nil {
		h.storeError(w, r, "list projects", err)
		return
	}
	for i := range items {
		items[i].Image = h.imageURL(items[i].Image)
	}
	writePage(w, r, q, items, total)
}

// GetProject handles GET /3d-printing/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	getByID(h, w, r, "get project", h.projects.GetByID, func(p models.PrintProject) models.PrintProject {
		p.Image = h.imageURL(p.Image)
		return p
	})
}

// GetSettings handles GET /site-settings. Defaults are returned until
// settings have been saved.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		h.storeError(w, r, "get site settings", err)
		return
	}
	jsonutil.OK(w, settings)
}

// getByID looks up one record by its integer id. Non-integer ids are not found.
func getByID[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string,
	get func(context.Context, int64) (T, error), shape func(T) T) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		jsonutil.NotFoundDetail(w)
		return
	}
	item, err := get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storeutil.ErrNotFound) {
			jsonutil.NotFoundDetail(w)
			return
		}
		h.storeError(w, r, op, err)
		return
	}
	if shape != nil {
		item = shape(item)
	}
	jsonutil.OK(w, item)
}

// imageURL resolves a stored image path to its public URL. Absolute URLs
// pass through unchanged.
func (h *Handler) imageURL(img *string) *string {
	if img == nil || *img == "" {
		return nil
	}
	if h.images == nil || strings.HasPrefix(*img, "http://") || strings.HasPrefix(*img, "https://") {
		return img
	}
	u := h.images.URL(*img)
	return &u
}

func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error("content api: "+op+" failed",
		zap.Error(err),
		zap.String("path", r.URL.Path),
	)
	jsonutil.InternalError(w, "internal server error")
}

// featuredParam parses is_featured. Missing means no filter.
func featuredParam(w http.ResponseWriter, r *http.Request) (*bool, bool) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("is_featured")))
	var v bool
	switch raw {
	case "":
		return nil, true
	case "true", "1":
		v = true
	case "false", "0":
		v = false
	default:
		jsonutil.ValidationError(w, map[string]string{"is_featured": "Enter a valid boolean."})
		return nil, false
	}
	return &v, true
}
