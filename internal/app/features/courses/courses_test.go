package courses

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

func fixture() contenttest.Fixture {
	return contenttest.Fixture{Courses: []models.Course{
		{ID: 1, TitleEN: "PLC Basics", TitleAR: "أساسيات PLC", Level: models.LevelBeginner, Duration: "40 hours"},
		{ID: 2, TitleEN: "SCADA Systems", TitleAR: "أنظمة سكادا", Level: models.LevelIntermediate},
		{ID: 3, TitleEN: "Motion Control", TitleAR: "التحكم بالحركة", Level: models.LevelAdvanced},
		{ID: 4, TitleEN: "Electrical Design", TitleAR: "التصميم الكهربائي", Level: models.LevelBeginner},
		{ID: 5, TitleEN: "Industrial Networks", TitleAR: "الشبكات الصناعية", Level: models.LevelAdvanced},
	}}
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

func mainSection(body string) string {
	start := strings.Index(body, `<main id="main">`)
	end := strings.Index(body, "</main>")
	if start < 0 || end < start {
		return body
	}
	return body[start:end]
}

func TestList_LevelFilter(t *testing.T) {
	h, srv := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/?level=advanced"))
	require.Equal(t, http.StatusOK, rec.Code)
	main := mainSection(rec.Body.String())
	assert.Contains(t, main, "Motion Control")
	assert.NotContains(t, main, "PLC Basics")
	assert.Contains(t, main, `class="active" aria-current="true">Advanced`)

	var sawLevel bool
	for _, p := range srv.Requests() {
		if strings.HasPrefix(p, "/api/courses") && strings.Contains(p, "level=advanced") {
			sawLevel = true
		}
	}
	assert.True(t, sawLevel, "level should be sent to the API")
}

func TestList_UnknownLevelMeansAll(t *testing.T) {
	for _, target := range []string{"/", "/?level=all", "/?level=expert"} {
		h, srv := router(t, fixture())

		rec := get(h, testutil.NewRequest(http.MethodGet, target))
		require.Equal(t, http.StatusOK, rec.Code)
		main := mainSection(rec.Body.String())
		assert.Contains(t, main, "PLC Basics", target)
		assert.Contains(t, main, "Motion Control", target)
		for _, p := range srv.Requests() {
			assert.NotContains(t, p, "level=", target)
		}
	}
}

func TestList_ArabicLevelLabels(t *testing.T) {
	h, _ := router(t, fixture())

	rec := get(h, testutil.WithLocale(testutil.NewRequest(http.MethodGet, "/"), models.LocaleAR))
	main := mainSection(rec.Body.String())
	assert.Contains(t, main, "مبتدئ")
	assert.NotContains(t, main, "Beginner")
	assert.NotContains(t, main, "PLC Basics")
}

func TestShow(t *testing.T) {
	h, _ := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/1"))
	require.Equal(t, http.StatusOK, rec.Code)
	main := mainSection(rec.Body.String())
	assert.Contains(t, main, "40 hours")
	assert.Contains(t, main, "Certificate of completion")
	assert.Contains(t, main, "/contact?course=PLC+Basics")

	related := main[strings.Index(main, "Other Courses You Might Like"):]
	assert.NotContains(t, related, `href="/courses/1"`)
	assert.Equal(t, 3, strings.Count(related, `<article class="card course-card">`))
	assert.Contains(t, rec.Body.String(), `"educationalLevel":"Beginner"`)
}

func TestShow_NotFound(t *testing.T) {
	h, _ := router(t, fixture())

	rec := get(h, testutil.NewRequest(http.MethodGet, "/77"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Course Not Found")
}

func TestLevelPills(t *testing.T) {
	cat := i18n.MustDefault().Catalog(models.LocaleEN)
	p := levelPills(models.LevelIntermediate, cat)
	require.Len(t, p, 4)
	assert.False(t, p[0].Active)
	assert.True(t, p[2].Active)
	assert.Equal(t, "/courses?level=intermediate", p[2].Href)
	assert.Equal(t, "All Levels", p[0].Label)
}
