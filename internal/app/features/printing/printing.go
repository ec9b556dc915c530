// internal/app/features/printing/printing.go
package printing

import (
	"errors"
	"html/template"
	"net/http"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/catalog"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler serves the 3D printing portfolio.
type Handler struct {
	client *contentclient.Client
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new printing Handler.
func NewHandler(client *contentclient.Client, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{client: client, errLog: errLog, logger: logger}
}

// Routes returns a chi.Router with the 3D printing routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	return r
}

// Capability is one entry of the capabilities section.
type Capability struct {
	Icon  string
	Title string
	Text  string
}

// ListVM is the view model for the 3D printing page.
type ListVM struct {
	viewdata.BaseVM
	Highlights   []string
	Projects     []viewdata.ProjectCard
	Capabilities []Capability
}

// ShowVM is the view model for a project detail page.
type ShowVM struct {
	viewdata.BaseVM
	Found   bool
	Project viewdata.ProjectCard
	Body    template.HTML
	Related []viewdata.ProjectCard
}

// List renders the project portfolio and the capability cards.
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
		list, err := h.client.PrintProjects(ctx, contentclient.ProjectFilter{})
		if err != nil {
			h.errLog.Warn(r, "printing: list fetch failed", err)
			return nil
		}
		vm.Projects = viewdata.ProjectCards(list, l)
		return nil
	})
	_ = g.Wait()

	vm.Highlights = []string{vm.T["printing_fast"], vm.T["printing_precision"], vm.T["printing_custom"]}
	vm.Capabilities = []Capability{
		{Icon: "🎯", Title: vm.T["printing_cap_precision"], Text: vm.T["printing_cap_precision_text"]},
		{Icon: "🧪", Title: vm.T["printing_cap_materials"], Text: vm.T["printing_cap_materials_text"]},
		{Icon: "📐", Title: vm.T["printing_cap_design"], Text: vm.T["printing_cap_design_text"]},
		{Icon: "⚡", Title: vm.T["printing_cap_fast"], Text: vm.T["printing_cap_fast_text"]},
	}
	vm.Page(vm.T["printing_title"], vm.T["printing_title"],
		viewdata.Crumb{Label: vm.T["nav_3dprinting"], Href: "/3d-printing"})
	templates.Render(w, r, "printing/list", vm)
}

// Show renders one project with up to three other projects.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ShowVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	id, validID := viewdata.ParseID(chi.URLParam(r, "id"))

	var (
		item *models.PrintProject
		all  []models.PrintProject
	)

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	if validID {
		g.Go(func() error {
			p, err := h.client.PrintProject(ctx, id)
			if err != nil {
				if !errors.Is(err, contentclient.ErrNotFound) {
					h.errLog.LogWithFields(r, "printing: fetch failed", err, zap.Int64("id", id))
				}
				return nil
			}
			item = &p
			return nil
		})
		g.Go(func() error {
			list, err := h.client.PrintProjects(ctx, contentclient.ProjectFilter{})
			if err != nil {
				h.errLog.Warn(r, "printing: related fetch failed", err)
				return nil
			}
			all = list
			return nil
		})
	}
	_ = g.Wait()

	listCrumb := viewdata.Crumb{Label: vm.T["nav_3dprinting"], Href: "/3d-printing"}
	if item == nil {
		vm.Page(vm.T["printing_not_found"], "", listCrumb, viewdata.Crumb{Label: vm.T["printing_not_found"]})
		w.WriteHeader(http.StatusNotFound)
		templates.Render(w, r, "printing/show", vm)
		return
	}

	vm.Found = true
	vm.Project = viewdata.NewProjectCard(*item, l)
	vm.Body = htmlsanitize.Markdown(item.Description(l))
	vm.Related = viewdata.ProjectCards(catalog.Related(all, item.ID, catalog.RelatedLimit), l)

	vm.Page(vm.Project.Title, vm.Project.Description, listCrumb, viewdata.Crumb{Label: vm.Project.Title})
	vm.Meta.OGImage = vm.Project.Image
	templates.Render(w, r, "printing/show", vm)
}
