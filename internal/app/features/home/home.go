// internal/app/features/home/home.go
package home

import (
	"net/http"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler provides home page handlers.
type Handler struct {
	client *contentclient.Client
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(client *contentclient.Client, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		client: client,
		errLog: errLog,
		logger: logger,
	}
}

// WhyCard is one entry of the "why choose us" section.
type WhyCard struct {
	Icon  string
	Title string
	Text  string
}

// HomeVM is the view model for the home page.
type HomeVM struct {
	viewdata.BaseVM
	Services []viewdata.ServiceCard
	Products []viewdata.ProductCard
	Courses  []viewdata.CourseCard
	Why      []WhyCard
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the home page: all services plus featured products and courses.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := HomeVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	g.Go(func() error {
		services, err := h.client.Services(ctx)
		if err != nil {
			h.errLog.Warn(r, "home: services fetch failed", err)
			return nil
		}
		vm.Services = viewdata.ServiceCards(services, l)
		return nil
	})
	g.Go(func() error {
		products, err := h.client.Products(ctx, contentclient.ProductFilter{Featured: contentclient.Bool(true)})
		if err != nil {
			h.errLog.Warn(r, "home: featured products fetch failed", err)
			return nil
		}
		vm.Products = viewdata.ProductCards(products, l)
		return nil
	})
	g.Go(func() error {
		courses, err := h.client.Courses(ctx, contentclient.CourseFilter{Featured: contentclient.Bool(true)})
		if err != nil {
			h.errLog.Warn(r, "home: featured courses fetch failed", err)
			return nil
		}
		vm.Courses = viewdata.CourseCards(courses, l, vm.T)
		return nil
	})
	_ = g.Wait()

	vm.Why = []WhyCard{
		{Icon: "👷", Title: vm.T["home_why_team"], Text: vm.T["home_why_team_text"]},
		{Icon: "✅", Title: vm.T["home_why_quality"], Text: vm.T["home_why_quality_text"]},
		{Icon: "🛠", Title: vm.T["home_why_support"], Text: vm.T["home_why_support_text"]},
		{Icon: "⚙️", Title: vm.T["home_why_solutions"], Text: vm.T["home_why_solutions_text"]},
	}
	vm.Page("", vm.T["home_hero_description"])

	templates.Render(w, r, "home/index", vm)
}
