// internal/app/features/products/products.go
package products

import (
	"errors"
	"html/template"
	"net/http"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/catalog"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hydrasite/internal/app/system/normalize"
	"github.com/dalemusser/hydrasite/internal/app/system/seo"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler serves the product catalog pages.
type Handler struct {
	client *contentclient.Client
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new products Handler.
func NewHandler(client *contentclient.Client, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{client: client, errLog: errLog, logger: logger}
}

// Routes returns a chi.Router with the products routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	return r
}

// Pill is one filter button above a list.
type Pill struct {
	Href   string
	Label  string
	Active bool
}

// ListVM is the view model for the products page.
type ListVM struct {
	viewdata.BaseVM
	Category string
	Pills    []Pill
	Products []viewdata.ProductCard
}

// ShowVM is the view model for a product detail page.
type ShowVM struct {
	viewdata.BaseVM
	Found   bool
	Product viewdata.ProductCard
	Body    template.HTML
	Specs   []string
	Related []viewdata.ProductCard
}

// List renders the products, filtered by ?category=<slug> when set.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ListVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	vm.Category = catalog.NormalizeCategory(normalize.Slug(query.Get(r, "category")))

	var categories []models.ProductCategory
	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	g.Go(func() error {
		list, err := h.client.Products(ctx, contentclient.ProductFilter{CategorySlug: vm.Category})
		if err != nil {
			h.errLog.Warn(r, "products: list fetch failed", err, zap.String("category", vm.Category))
			return nil
		}
		vm.Products = viewdata.ProductCards(catalog.FilterByCategory(list, vm.Category), l)
		return nil
	})
	g.Go(func() error {
		list, err := h.client.ProductCategories(ctx)
		if err != nil {
			h.errLog.Warn(r, "products: categories fetch failed", err)
			return nil
		}
		categories = list
		return nil
	})
	_ = g.Wait()

	vm.Pills = pills(categories, vm.Category, l, vm.T["products_all"])

	title := vm.T["products_title"]
	crumbs := []viewdata.Crumb{{Label: vm.T["nav_products"], Href: "/products"}}
	for _, c := range categories {
		if c.Slug == vm.Category {
			title = c.Name(l)
			crumbs = append(crumbs, viewdata.Crumb{Label: title})
		}
	}
	vm.Page(title, vm.T["products_title"], crumbs...)
	templates.Render(w, r, "products/list", vm)
}

func pills(categories []models.ProductCategory, selected string, l models.Locale, allLabel string) []Pill {
	out := []Pill{{Href: "/products", Label: allLabel, Active: selected == ""}}
	for _, c := range categories {
		out = append(out, Pill{
			Href:   viewdata.CategoryPath(c.Slug),
			Label:  c.Name(l),
			Active: c.Slug == selected,
		})
	}
	return out
}

// Show renders one product. Related products are fetched by the product's
// category once the product is known.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ShowVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	id, validID := viewdata.ParseID(chi.URLParam(r, "id"))

	var item *models.Product
	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	if validID {
		g.Go(func() error {
			p, err := h.client.Product(ctx, id)
			if err != nil {
				if !errors.Is(err, contentclient.ErrNotFound) {
					h.errLog.LogWithFields(r, "products: fetch failed", err, zap.Int64("id", id))
				}
				return nil
			}
			item = &p

			related, err := h.client.Products(ctx, contentclient.ProductFilter{CategorySlug: p.CategorySlug})
			if err != nil {
				h.errLog.Warn(r, "products: related fetch failed", err, zap.String("category", p.CategorySlug))
				return nil
			}
			vm.Related = viewdata.ProductCards(catalog.Related(related, p.ID, catalog.RelatedLimit), l)
			return nil
		})
	}
	_ = g.Wait()

	listCrumb := viewdata.Crumb{Label: vm.T["nav_products"], Href: "/products"}
	if item == nil {
		vm.Page(vm.T["products_not_found"], "", listCrumb, viewdata.Crumb{Label: vm.T["products_not_found"]})
		w.WriteHeader(http.StatusNotFound)
		templates.Render(w, r, "products/show", vm)
		return
	}

	vm.Found = true
	vm.Product = viewdata.NewProductCard(*item, l)
	vm.Body = htmlsanitize.Markdown(item.Description(l))
	vm.Specs = []string{vm.T["products_warranty"], vm.T["products_certified"]}

	crumbs := []viewdata.Crumb{listCrumb}
	if vm.Product.CategoryName != "" {
		crumbs = append(crumbs, viewdata.Crumb{Label: vm.Product.CategoryName, Href: vm.Product.CategoryHref})
	}
	crumbs = append(crumbs, viewdata.Crumb{Label: vm.Product.Name})
	vm.Page(vm.Product.Name, vm.Product.Description, crumbs...)
	vm.Meta.OGType = "product"
	vm.Meta.OGImage = vm.Product.Image
	vm.AddJSONLD(seo.Product(vm.Product.Name, vm.Product.Description, viewdata.AbsURL(vm.Product.Href),
		vm.Product.Image, vm.Product.CategoryName, vm.Chrome.CompanyName))
	templates.Render(w, r, "products/show", vm)
}
