// internal/app/features/services/services.go
package services

import (
	"errors"
	"html/template"
	"net/http"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/catalog"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hydrasite/internal/app/system/seo"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler serves the services list and detail pages.
type Handler struct {
	client *contentclient.Client
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new services Handler.
func NewHandler(client *contentclient.Client, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{client: client, errLog: errLog, logger: logger}
}

// Routes returns a chi.Router with the services routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	return r
}

// ListVM is the view model for the services page.
type ListVM struct {
	viewdata.BaseVM
	Services []viewdata.ServiceCard
}

// ShowVM is the view model for a service detail page.
type ShowVM struct {
	viewdata.BaseVM
	Found    bool
	Service  viewdata.ServiceCard
	Body     template.HTML
	Features []string
	Related  []viewdata.ServiceCard
}

// List renders every service.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ListVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	g.Go(func() error {
		list, err := h.client.Services(ctx)
		if err != nil {
			h.errLog.Warn(r, "services: list fetch failed", err)
			return nil
		}
		vm.Services = viewdata.ServiceCards(list, l)
		return nil
	})
	_ = g.Wait()

	vm.Page(vm.T["services_title"], vm.T["services_subtitle"],
		viewdata.Crumb{Label: vm.T["nav_services"], Href: "/services"})
	templates.Render(w, r, "services/list", vm)
}

// Show renders one service with up to three other services. An unknown or
// unreachable service renders the not-found state with 404.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ShowVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	id, validID := viewdata.ParseID(chi.URLParam(r, "id"))

	var (
		item *models.Service
		all  []models.Service
	)

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	if validID {
		g.Go(func() error {
			s, err := h.client.Service(ctx, id)
			if err != nil {
				if !errors.Is(err, contentclient.ErrNotFound) {
					h.errLog.LogWithFields(r, "services: fetch failed", err, zap.Int64("id", id))
				}
				return nil
			}
			item = &s
			return nil
		})
		g.Go(func() error {
			list, err := h.client.Services(ctx)
			if err != nil {
				h.errLog.Warn(r, "services: related fetch failed", err)
				return nil
			}
			all = list
			return nil
		})
	}
	_ = g.Wait()

	listCrumb := viewdata.Crumb{Label: vm.T["nav_services"], Href: "/services"}
	if item == nil {
		vm.Page(vm.T["services_not_found"], "", listCrumb, viewdata.Crumb{Label: vm.T["services_not_found"]})
		w.WriteHeader(http.StatusNotFound)
		templates.Render(w, r, "services/show", vm)
		return
	}

	vm.Found = true
	vm.Service = viewdata.NewServiceCard(*item, l)
	vm.Body = htmlsanitize.Markdown(item.Description(l))
	vm.Features = []string{
		vm.T["services_feature_experience"],
		vm.T["services_feature_team"],
		vm.T["services_feature_custom"],
		vm.T["services_feature_support"],
	}
	vm.Related = viewdata.ServiceCards(catalog.Related(all, item.ID, catalog.RelatedLimit), l)

	vm.Page(vm.Service.Title, vm.Service.Description, listCrumb, viewdata.Crumb{Label: vm.Service.Title})
	vm.AddJSONLD(seo.Service(vm.Service.Title, vm.Service.Description,
		viewdata.AbsURL(vm.Service.Href), vm.Chrome.CompanyName))
	templates.Render(w, r, "services/show", vm)
}
