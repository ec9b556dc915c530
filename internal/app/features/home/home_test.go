package home

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
	"go.uber.org/zap"
)

func fixture() contenttest.Fixture {
	return contenttest.Fixture{
		Services: []models.Service{
			{ID: 1, TitleEN: "Industrial Automation", TitleAR: "الأتمتة الصناعية"},
			{ID: 2, TitleEN: "Control Panels", TitleAR: "لوحات التحكم"},
		},
		Products: []models.Product{
			{ID: 10, NameEN: "Siemens S7-1200", NameAR: "سيمنس S7-1200", IsFeatured: true, CategorySlug: "plc"},
			{ID: 11, NameEN: "Unfeatured Relay", NameAR: "مرحل", CategorySlug: "plc"},
		},
		Courses: []models.Course{
			{ID: 20, TitleEN: "PLC Programming", TitleAR: "برمجة PLC", IsFeatured: true, Level: models.LevelBeginner},
		},
	}
}

func newHandler(t *testing.T, f contenttest.Fixture) (*Handler, *contenttest.Server) {
	t.Helper()
	testutil.MustBootTemplates(t)
	srv := contenttest.NewServer(t, f)
	client := srv.Client(t)
	viewdata.Init(client, i18n.MustDefault(), zap.NewNop(), "http://localhost")
	return NewHandler(client, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop()), srv
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(nil, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestIndex_English(t *testing.T) {
	h, srv := newHandler(t, fixture())

	rec := httptest.NewRecorder()
	h.Index(rec, testutil.NewRequest(http.MethodGet, "/"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{`dir="ltr"`, "Industrial Automation", "Siemens S7-1200", "PLC Programming", "Why Choose Us"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "Unfeatured Relay") {
		t.Error("home page must only list featured products")
	}

	var sawFeatured bool
	for _, p := range srv.Requests() {
		if strings.HasPrefix(p, "/api/products") && strings.Contains(p, "is_featured=true") {
			sawFeatured = true
		}
	}
	if !sawFeatured {
		t.Errorf("expected a featured products request, got %v", srv.Requests())
	}
}

func TestIndex_ArabicNeverMixes(t *testing.T) {
	h, _ := newHandler(t, fixture())

	rec := httptest.NewRecorder()
	h.Index(rec, testutil.WithLocale(testutil.NewRequest(http.MethodGet, "/"), models.LocaleAR))

	body := rec.Body.String()
	if !strings.Contains(body, `dir="rtl"`) || !strings.Contains(body, `lang="ar"`) {
		t.Error("expected Arabic document attributes")
	}
	if !strings.Contains(body, "الأتمتة الصناعية") {
		t.Error("expected Arabic service title")
	}
	for _, en := range []string{"Industrial Automation", "PLC Programming"} {
		if strings.Contains(body, en) {
			t.Errorf("Arabic render contains English field %q", en)
		}
	}
}

func TestIndex_APIDownStillRenders(t *testing.T) {
	h, _ := newHandler(t, contenttest.Fixture{FailAll: true})

	rec := httptest.NewRecorder()
	h.Index(rec, testutil.NewRequest(http.MethodGet, "/"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "No Services Found") {
		t.Error("expected the empty services state")
	}
}
