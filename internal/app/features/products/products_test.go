package products

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errorsfeature "github.com/dalemusser/hydrasite/internal/app/features/errors"
	"github.com/dalemusser/hydrasite/internal/app/system/contentclient/contenttest"
	"github.com/dalemusser/hydrasite/internal/app/system/i18n"
	"github.com/dalemusser/hydrasite/internal/app/system/viewdata"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"github.com/dalemusser/hydrasite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func product(id int64, slug, en, ar string) models.Product {
	return models.Product{
		ID: id, CategorySlug: slug, NameEN: en, NameAR: ar,
		CategoryNameEN: strings.ToUpper(slug), CategoryNameAR: "فئة " + slug,
	}
}

func fixture() contenttest.Fixture {
	return contenttest.Fixture{
		Categories: []models.ProductCategory{
			{ID: 1, Slug: "plc", NameEN: "PLC", NameAR: "وحدات التحكم"},
			{ID: 2, Slug: "hmi", NameEN: "HMI", NameAR: "شاشات التشغيل"},
		},
		Products: []models.Product{
			product(1, "plc", "S7-1200", "إس 7-1200"),
			product(2, "plc", "S7-1500", "إس 7-1500"),
			product(3, "plc", "Logo 8", "لوجو 8"),
			product(4, "plc", "ET200", "إي تي 200"),
			product(5, "plc", "S7-300", "إس 7-300"),
			product(6, "hmi", "KTP700", "كي تي بي 700"),
		},
	}
}

func router(t *testing.T, f contenttest.Fixture) (http.Handler, *contenttest.Server) {
	t.Helper()
	testutil.MustBootTemplates(t)
	srv := contenttest.NewServer(t, f)
	client := srv.Client(t)
	viewdata.Init(client, i18n.MustDefault(), zap.NewNop(), "http://localhost")
	return Routes(NewHandler(client, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())), srv
}

func get(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

// mainSection drops the navbar and footer so assertions see only page content.
func mainSection(body string) string {
	start := strings.Index(body, `<main id="main">`)
	end := strings.Index(body, "</main>")
	if start < 0 || end < start {
		return body
	}
	return body[start:end]
}

func requested(srv *contenttest.Server, prefix, contains string) bool {
	for _, p := range srv.Requests() {
		if strings.HasPrefix(p, prefix) && strings.Contains(p, contains) {
			return true
		}
	}
	return false
}

func TestList_All(t *testing.T) {
	for _, target := range []string{"/", "/?category=all"} {
		h, srv := router(t, fixture())

		rec := get(h, testutil.NewRequest(http.MethodGet, target))
		require.Equal(t, http.StatusOK, rec.Code)
		main := mainSection(rec.Body.String())
		assert.Contains(t, main, "S7-1200", target)
		assert.Contains(t, main, "KTP700", target)
		assert.False(t, requested(srv, "/api/products", "category__slug"), target)
	}
}

func TestList_CategoryFilter(t *testing.T) {
	h, srv := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/?category=hmi"))
	require.Equal(t, http.StatusOK, rec.Code)

	main := mainSection(rec.Body.String())
	assert.Contains(t, main, "KTP700")
	assert.NotContains(t, main, "S7-1200")
	assert.Contains(t, main, `class="active" aria-current="true">HMI`)
	assert.True(t, requested(srv, "/api/products", "category__slug=hmi"))
}

func TestList_UnknownCategoryIsEmpty(t *testing.T) {
	h, _ := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/?category=valves"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Products Found")
}

func TestShow_RelatedFromSameCategory(t *testing.T) {
	h, srv := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/1"))
	require.Equal(t, http.StatusOK, rec.Code)
	main := mainSection(rec.Body.String())

	related := main[strings.Index(main, "Related Products"):]
	assert.NotContains(t, related, `href="/products/1"`)
	assert.NotContains(t, related, "KTP700")
	assert.Equal(t, 3, strings.Count(related, `<article class="card product-card">`))
	assert.True(t, requested(srv, "/api/products", "category__slug=plc"))
	assert.Contains(t, main, "/contact?product=S7-1200")
	assert.Contains(t, rec.Body.String(), `"@type":"Product"`)
}

func TestShow_ArabicNeverMixes(t *testing.T) {
	h, _ := router(t, fixture())

	rec := get(h, testutil.WithLocale(testutil.NewRequest(http.MethodGet, "/6"), models.LocaleAR))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "كي تي بي 700")
	assert.Contains(t, body, "/contact?product=")
	assert.NotContains(t, body, "KTP700")
	assert.NotContains(t, body, "Related Products")
}

func TestShow_NotFound(t *testing.T) {
	h, _ := router(t, fixture())

	for _, path := range []string{"/404", "/plc"} {
		rec := get(h, testutil.NewRequest(http.MethodGet, path))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Product Not Found", path)
	}
}

func TestPills(t *testing.T) {
	cats := fixture().Categories
	p := pills(cats, "", models.LocaleAR, "الكل")
	require.Len(t, p, 3)
	assert.True(t, p[0].Active)
	assert.Equal(t, "وحدات التحكم", p[1].Label)
	assert.Equal(t, "/products?category=plc", p[1].Href)

	p = pills(cats, "hmi", models.LocaleEN, "All")
	assert.False(t, p[0].Active)
	assert.True(t, p[2].Active)
}
