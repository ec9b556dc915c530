// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dalemusser/hydrasite/internal/app/system/catalog"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient"
	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/app/system/locale"
	"github.com/dalemusser/hydrasite/internal/app/system/seo"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	navProductsPerCategory = 5
	navProjects            = 5
	footerServices         = 3
	footerCategories       = 4
)

// Link is a labelled href for navigation and footer lists.
type Link struct {
	Href  string
	Label string
}

// NavCategory is one product category column of the products mega-menu.
type NavCategory struct {
	Link
	Products []Link
}

// Crumb is one breadcrumb entry. The last crumb has no Href.
type Crumb struct {
	Label string
	Href  string
}

// Chrome is the navigation and footer data shared by every page.
type Chrome struct {
	CompanyName string

	NavServices   []Link
	NavCategories []NavCategory
	NavProjects   []Link

	FooterServices   []Link
	FooterCategories []Link

	About      string
	Address    string
	Email      string
	Phone1     string
	Phone2     string
	FooterText string
	Year       int
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{BaseVM: viewdata.New(r)}
//	data.Page(title, description, crumbs...)
type BaseVM struct {
	// Locale
	Lang        string
	Dir         string
	IsRTL       bool
	T           i18n.Catalog
	ToggleURL   string
	ToggleLabel string

	// Page context
	Title       string
	CurrentPath string
	ActiveNav   string
	Breadcrumbs []Crumb
	CrumbSep    string

	// Head
	Meta   seo.Meta
	JSONLD template.JS

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)

	Chrome Chrome

	locale models.Locale
	graph  []map[string]any
}

var (
	client  *contentclient.Client
	bundle  *i18n.Bundle
	logger  = zap.NewNop()
	siteURL string
)

// Init wires the content client, string catalogs and logger used by New.
// Call this once at startup from bootstrap.
func Init(c *contentclient.Client, b *i18n.Bundle, log *zap.Logger, baseURL string) {
	client = c
	bundle = b
	if log != nil {
		logger = log
	}
	siteURL = baseURL
}

// Locale returns the locale the view model was built for.
func (vm BaseVM) Locale() models.Locale {
	return vm.locale
}

// New creates a BaseVM for r with the chrome loaded from the content API.
// Chrome fetch failures are logged and leave the affected lists empty.
func New(r *http.Request) BaseVM {
	l := locale.FromRequest(r)
	vm := Shell(r)
	vm.Chrome = LoadChrome(r.Context(), l)
	return vm
}

// Shell creates a BaseVM for r without fetching any content.
func Shell(r *http.Request) BaseVM {
	l := locale.FromRequest(r)
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		Lang:        l.String(),
		Dir:         l.Dir(),
		IsRTL:       l.IsRTL(),
		ToggleURL:   "/language/toggle?next=" + url.QueryEscape(current),
		CurrentPath: current,
		ActiveNav:   activeNav(r.URL.Path),
		CrumbSep:    crumbSeparator(l),
		CSRFToken:   csrf.Token(r),
		locale:      l,
		Chrome: Chrome{
			CompanyName: models.DefaultSiteSettings().CompanyName(l),
			Year:        time.Now().Year(),
		},
	}
	if bundle != nil {
		vm.T = bundle.Catalog(l)
		vm.ToggleLabel = bundle.T(l, "nav_language_toggle")
	}
	return vm
}

// Page sets the title, meta description and breadcrumbs. The home crumb is
// prepended and the last crumb loses its link.
func (vm *BaseVM) Page(title, description string, crumbs ...Crumb) {
	company := vm.Chrome.CompanyName
	if title == "" || title == company {
		vm.Title = company
	} else {
		vm.Title = title + " | " + company
	}

	if len(crumbs) > 0 {
		home := Crumb{Label: vm.T["nav_home"], Href: "/"}
		vm.Breadcrumbs = append([]Crumb{home}, crumbs...)
		vm.Breadcrumbs[len(vm.Breadcrumbs)-1].Href = ""
	}

	path := vm.canonicalPath()
	vm.Meta = seo.Meta{
		Title:       vm.Title,
		Description: seo.Truncate(description, 160),
		Canonical:   seo.AbsURL(siteURL, seo.WithLang(path, vm.Lang)),
		OGType:      "website",
	}
	for _, l := range models.AllLocales() {
		vm.Meta.Alternates = append(vm.Meta.Alternates, seo.Alternate{
			Lang: l.String(),
			Href: seo.AbsURL(siteURL, seo.WithLang(path, l.String())),
		})
	}

	nodes := []map[string]any{seo.Organization(vm.Organization())}
	if len(vm.Breadcrumbs) > 0 {
		items := make([]seo.BreadcrumbItem, 0, len(vm.Breadcrumbs))
		for _, c := range vm.Breadcrumbs {
			href := c.Href
			if href == "" {
				href = path
			}
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.AbsURL(siteURL, href)})
		}
		nodes = append(nodes, seo.BreadcrumbList(items))
	}
	vm.graph = nodes
	vm.JSONLD = seo.JSON(seo.Graph(nodes...))
}

// AddJSONLD appends a schema node to the page graph. Call it after Page.
func (vm *BaseVM) AddJSONLD(node map[string]any) {
	if len(vm.graph) == 0 {
		vm.graph = []map[string]any{seo.Organization(vm.Organization())}
	}
	vm.graph = append(vm.graph, node)
	vm.JSONLD = seo.JSON(seo.Graph(vm.graph...))
}

// Organization returns the company data for structured data.
func (vm BaseVM) Organization() seo.OrganizationInfo {
	return seo.OrganizationInfo{
		Name:      vm.Chrome.CompanyName,
		URL:       siteURL,
		Email:     vm.Chrome.Email,
		Telephone: []string{vm.Chrome.Phone1, vm.Chrome.Phone2},
		Address:   vm.Chrome.Address,
	}
}

// AbsURL returns path on the public site URL.
func AbsURL(path string) string {
	return seo.AbsURL(siteURL, path)
}

func (vm BaseVM) canonicalPath() string {
	u, err := url.Parse(vm.CurrentPath)
	if err != nil {
		return vm.CurrentPath
	}
	q := u.Query()
	q.Del(locale.QueryParam)
	u.RawQuery = q.Encode()
	return u.String()
}

// LoadChrome fetches the navigation and footer content in parallel.
func LoadChrome(ctx context.Context, l models.Locale) Chrome {
	ch := Chrome{
		CompanyName: models.DefaultSiteSettings().CompanyName(l),
		Year:        time.Now().Year(),
	}
	if client == nil {
		return ch
	}

	var (
		services   []models.Service
		categories []models.ProductCategory
		products   []models.Product
		projects   []models.PrintProject
		settings   = models.DefaultSiteSettings()
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if services, err = client.Services(ctx); err != nil {
			logger.Warn("chrome: services fetch failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if categories, err = client.ProductCategories(ctx); err != nil {
			logger.Warn("chrome: categories fetch failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = client.Products(ctx, contentclient.ProductFilter{}); err != nil {
			logger.Warn("chrome: products fetch failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if projects, err = client.PrintProjects(ctx, contentclient.ProjectFilter{}); err != nil {
			logger.Warn("chrome: projects fetch failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		s, err := client.SiteSettings(ctx)
		if err != nil {
			logger.Warn("chrome: settings fetch failed", zap.Error(err))
			return nil
		}
		settings = s
		return nil
	})
	_ = g.Wait()

	return buildChrome(l, services, categories, products, projects, settings)
}

func buildChrome(l models.Locale, services []models.Service, categories []models.ProductCategory,
	products []models.Product, projects []models.PrintProject, settings models.SiteSettings) Chrome {
	ch := Chrome{
		CompanyName: settings.CompanyName(l),
		About:       settings.ShortAbout(l),
		Address:     settings.Address(l),
		Email:       settings.Email,
		Phone1:      settings.Phone1,
		Phone2:      settings.Phone2,
		FooterText:  settings.FooterText(l),
		Year:        time.Now().Year(),
	}
	if ch.CompanyName == "" {
		ch.CompanyName = models.DefaultSiteSettings().CompanyName(l)
	}

	for _, s := range services {
		ch.NavServices = append(ch.NavServices, Link{Href: ServicePath(s.ID), Label: s.Title(l)})
	}
	ch.FooterServices = catalog.Take(ch.NavServices, footerServices)

	grouped := catalog.GroupByCategory(products, navProductsPerCategory)
	for _, c := range categories {
		nc := NavCategory{Link: Link{Href: CategoryPath(c.Slug), Label: c.Name(l)}}
		for _, p := range grouped[c.Slug] {
			nc.Products = append(nc.Products, Link{Href: ProductPath(p.ID), Label: p.Name(l)})
		}
		ch.NavCategories = append(ch.NavCategories, nc)
	}
	for _, nc := range catalog.Take(ch.NavCategories, footerCategories) {
		ch.FooterCategories = append(ch.FooterCategories, nc.Link)
	}

	for _, p := range catalog.Take(projects, navProjects) {
		ch.NavProjects = append(ch.NavProjects, Link{Href: ProjectPath(p.ID), Label: p.Title(l)})
	}
	return ch
}

// ParseID parses a positive record id from a path segment.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

// ServicePath returns the detail page path for a service.
func ServicePath(id int64) string { return "/services/" + strconv.FormatInt(id, 10) }

// ProductPath returns the detail page path for a product.
func ProductPath(id int64) string { return "/products/" + strconv.FormatInt(id, 10) }

// CoursePath returns the detail page path for a course.
func CoursePath(id int64) string { return "/courses/" + strconv.FormatInt(id, 10) }

// ProjectPath returns the detail page path for a 3D printing project.
func ProjectPath(id int64) string { return "/3d-printing/" + strconv.FormatInt(id, 10) }

// CategoryPath returns the products page filtered to a category.
func CategoryPath(slug string) string { return "/products?category=" + url.QueryEscape(slug) }

// ContactPath returns the contact page with the subject prefill parameter set.
func ContactPath(kind, label string) string {
	return "/contact?" + url.Values{kind: {label}}.Encode()
}

func crumbSeparator(l models.Locale) string {
	if l.IsRTL() {
		return "←"
	}
	return "→"
}

// activeNav maps a path to the navigation key highlighted for it.
func activeNav(path string) string {
	sections := []struct{ prefix, key string }{
		{"/products", "products"},
		{"/services", "services"},
		{"/courses", "courses"},
		{"/3d-printing", "3dprinting"},
		{"/contact", "contact"},
	}
	for _, s := range sections {
		if path == s.prefix || len(path) > len(s.prefix) && path[:len(s.prefix)+1] == s.prefix+"/" {
			return s.key
		}
	}
	if path == "/" {
		return "home"
	}
	return ""
}
