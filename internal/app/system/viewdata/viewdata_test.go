package viewdata

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/app/system/locale"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)


func shellFor(t *testing.T, l models.Locale, target string) BaseVM {
	t.Helper()
	Init(nil, i18n.MustDefault(), zap.NewNop(), "https://hydratech.example")
	req := httptest.NewRequest("GET", target, nil)
	req = req.WithContext(locale.WithLocale(req.Context(), l))
	return Shell(req)
}

func TestShell_Direction(t *testing.T) {
	ar := shellFor(t, models.LocaleAR, "/products")
	assert.Equal(t, "ar", ar.Lang)
	assert.Equal(t, "rtl", ar.Dir)
	assert.True(t, ar.IsRTL)
	assert.Equal(t, "←", ar.CrumbSep)
	assert.Equal(t, "products", ar.ActiveNav)
	assert.Equal(t, "/language/toggle?next=%2Fproducts", ar.ToggleURL)

	en := shellFor(t, models.LocaleEN, "/")
	assert.Equal(t, "ltr", en.Dir)
	assert.Equal(t, "→", en.CrumbSep)
	assert.Equal(t, "home", en.ActiveNav)
	assert.Equal(t, models.DefaultCompanyNameEN, en.Chrome.CompanyName)
}

func TestPage_Breadcrumbs(t *testing.T) {
	vm := shellFor(t, models.LocaleEN, "/products/3")
	vm.Page("PLC", "Advanced programmable logic controllers",
		Crumb{Label: "Products", Href: "/products"},
		Crumb{Label: "PLC", Href: "/products/3"},
	)

	require.Len(t, vm.Breadcrumbs, 3)
	assert.Equal(t, "/", vm.Breadcrumbs[0].Href)
	assert.Equal(t, "/products", vm.Breadcrumbs[1].Href)
	assert.Empty(t, vm.Breadcrumbs[2].Href, "last crumb has no link")
	assert.Equal(t, "PLC | Hydra Tech", vm.Title)
	assert.Equal(t, "https://hydratech.example/products/3?lang=en", vm.Meta.Canonical)
	assert.Len(t, vm.Meta.Alternates, 2)
	assert.Contains(t, string(vm.JSONLD), "BreadcrumbList")
}

func TestPage_HomeTitle(t *testing.T) {
	vm := shellFor(t, models.LocaleAR, "/")
	vm.Page("", "")
	assert.Equal(t, models.DefaultCompanyNameAR, vm.Title)
	assert.Empty(t, vm.Breadcrumbs)
}

func TestBuildChrome_Limits(t *testing.T) {
	var services []models.Service
	for i := 1; i <= 4; i++ {
		services = append(services, models.Service{ID: int64(i), TitleEN: "S", TitleAR: "خ"})
	}
	var categories []models.ProductCategory
	for i, slug := range []string{"a", "b", "c", "d", "e"} {
		categories = append(categories, models.ProductCategory{ID: int64(i + 1), Slug: slug, NameEN: strings.ToUpper(slug)})
	}
	var products []models.Product
	for i := 1; i <= 7; i++ {
		products = append(products, models.Product{ID: int64(i), CategorySlug: "a", NameEN: "P"})
	}
	products = append(products, models.Product{ID: 99, CategorySlug: "b", NameEN: "Q"})
	var projects []models.PrintProject
	for i := 1; i <= 6; i++ {
		projects = append(projects, models.PrintProject{ID: int64(i), TitleEN: "X"})
	}

	ch := buildChrome(models.LocaleEN, services, categories, products, projects, models.DefaultSiteSettings())

	assert.Len(t, ch.NavServices, 4)
	assert.Len(t, ch.FooterServices, 3)
	require.Len(t, ch.NavCategories, 5)
	assert.Len(t, ch.NavCategories[0].Products, 5)
	assert.Len(t, ch.NavCategories[1].Products, 1)
	assert.Empty(t, ch.NavCategories[2].Products)
	assert.Len(t, ch.FooterCategories, 4)
	assert.Equal(t, "/products?category=a", ch.FooterCategories[0].Href)
	assert.Len(t, ch.NavProjects, 5)
}

func TestBuildChrome_ArabicOnly(t *testing.T) {
	settings := models.DefaultSiteSettings()
	settings.AddressEN = "Cairo"
	settings.AddressAR = "القاهرة"
	ch := buildChrome(models.LocaleAR,
		[]models.Service{{ID: 1, TitleEN: "Smart Home", TitleAR: "المنزل الذكي"}},
		nil, nil, nil, settings)

	assert.Equal(t, "المنزل الذكي", ch.NavServices[0].Label)
	assert.Equal(t, "القاهرة", ch.Address)
	assert.Equal(t, models.DefaultCompanyNameAR, ch.CompanyName)
}

func TestLoadChrome_NoClient(t *testing.T) {
	Init(nil, nil, nil, "")
	ch := LoadChrome(context.Background(), models.LocaleEN)
	assert.Equal(t, models.DefaultCompanyNameEN, ch.CompanyName)
	assert.Empty(t, ch.NavServices)
}

func TestCards_PickLocale(t *testing.T) {
	bundle := i18n.MustDefault()
	c := models.Course{ID: 2, TitleEN: "PLC Basics", TitleAR: "أساسيات PLC", DescriptionEN: "<p>Learn</p>", DescriptionAR: "<p>تعلم</p>", Level: models.LevelBeginner}

	ar := NewCourseCard(c, models.LocaleAR, bundle.Catalog(models.LocaleAR))
	assert.Equal(t, "أساسيات PLC", ar.Title)
	assert.Equal(t, "تعلم", ar.Description)
	assert.Equal(t, bundle.T(models.LocaleAR, "level_beginner"), ar.LevelLabel)
	assert.Equal(t, "/courses/2", ar.Href)
	assert.Contains(t, ar.ContactHref, "course=")

	en := NewCourseCard(c, models.LocaleEN, bundle.Catalog(models.LocaleEN))
	assert.Equal(t, "PLC Basics", en.Title)
	assert.Equal(t, "Beginner", en.LevelLabel)
}

func TestActiveNav(t *testing.T) {
	tests := map[string]string{
		"/":              "home",
		"/services/3":    "services",
		"/3d-printing":   "3dprinting",
		"/contact":       "contact",
		"/productsextra": "",
		"/language/ar":   "",
	}
	for path, want := range tests {
		assert.Equal(t, want, activeNav(path), path)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "4.2", "99999999999999999999"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestAddJSONLD_KeepsBreadcrumbs(t *testing.T) {
	vm := shellFor(t, models.LocaleEN, "/services/1")
	vm.Page("Automation", "", Crumb{Label: "Services", Href: "/services"}, Crumb{Label: "Automation"})
	vm.AddJSONLD(map[string]any{"@type": "Service", "name": "Automation"})

	js := string(vm.JSONLD)
	assert.Contains(t, js, "BreadcrumbList")
	assert.Contains(t, js, `"Service"`)
	assert.Contains(t, js, "Organization")
}
