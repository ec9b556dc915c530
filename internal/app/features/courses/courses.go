// internal/app/features/courses/courses.go
package courses

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

// Handler serves the training course pages.
type Handler struct {
	client *contentclient.Client
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new courses Handler.
func NewHandler(client *contentclient.Client, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{client: client, errLog: errLog, logger: logger}
}

// Routes returns a chi.Router with the courses routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	return r
}

// LevelPill is one level filter button.
type LevelPill struct {
	Href   string
	Label  string
	Active bool
}

// ListVM is the view model for the courses page.
type ListVM struct {
	viewdata.BaseVM
	Level   string
	Pills   []LevelPill
	Courses []viewdata.CourseCard
}

// ShowVM is the view model for a course detail page.
type ShowVM struct {
	viewdata.BaseVM
	Found    bool
	Course   viewdata.CourseCard
	Body     template.HTML
	Includes []string
	Learn    []string
	Audience []string
	Related  []viewdata.CourseCard
}

// List renders the courses, filtered by ?level= when it names a known level.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ListVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	level := catalog.NormalizeLevel(normalize.Level(query.Get(r, "level")))
	vm.Level = string(level)

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	g.Go(func() error {
		list, err := h.client.Courses(ctx, contentclient.CourseFilter{Level: vm.Level})
		if err != nil {
			h.errLog.Warn(r, "courses: list fetch failed", err, zap.String("level", vm.Level))
			return nil
		}
		vm.Courses = viewdata.CourseCards(list, l, vm.T)
		return nil
	})
	_ = g.Wait()

	vm.Pills = levelPills(level, vm.T)
	vm.Page(vm.T["courses_title"], vm.T["courses_title"],
		viewdata.Crumb{Label: vm.T["nav_courses"], Href: "/courses"})
	templates.Render(w, r, "courses/list", vm)
}

func levelPills(selected models.CourseLevel, t map[string]string) []LevelPill {
	out := []LevelPill{{Href: "/courses", Label: t["courses_all_levels"], Active: selected == ""}}
	for _, lv := range models.AllCourseLevels() {
		out = append(out, LevelPill{
			Href:   "/courses?level=" + string(lv),
			Label:  t["level_"+string(lv)],
			Active: lv == selected,
		})
	}
	return out
}

// Show renders one course with up to three other courses.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vm := ShowVM{BaseVM: viewdata.Shell(r)}
	l := vm.Locale()
	id, validID := viewdata.ParseID(chi.URLParam(r, "id"))

	var (
		item *models.Course
		all  []models.Course
	)

	var g errgroup.Group
	g.Go(func() error {
		vm.Chrome = viewdata.LoadChrome(ctx, l)
		return nil
	})
	if validID {
		g.Go(func() error {
			c, err := h.client.Course(ctx, id)
			if err != nil {
				if !errors.Is(err, contentclient.ErrNotFound) {
					h.errLog.LogWithFields(r, "courses: fetch failed", err, zap.Int64("id", id))
				}
				return nil
			}
			item = &c
			return nil
		})
		g.Go(func() error {
			list, err := h.client.Courses(ctx, contentclient.CourseFilter{})
			if err != nil {
				h.errLog.Warn(r, "courses: related fetch failed", err)
				return nil
			}
			all = list
			return nil
		})
	}
	_ = g.Wait()

	listCrumb := viewdata.Crumb{Label: vm.T["nav_courses"], Href: "/courses"}
	if item == nil {
		vm.Page(vm.T["courses_not_found"], "", listCrumb, viewdata.Crumb{Label: vm.T["courses_not_found"]})
		w.WriteHeader(http.StatusNotFound)
		templates.Render(w, r, "courses/show", vm)
		return
	}

	vm.Found = true
	vm.Course = viewdata.NewCourseCard(*item, l, vm.T)
	vm.Body = htmlsanitize.Markdown(item.Description(l))
	vm.Includes = []string{
		vm.T["courses_include_instructors"],
		vm.T["courses_include_materials"],
		vm.T["courses_include_practical"],
		vm.T["courses_include_certificate"],
	}
	vm.Learn = []string{
		vm.T["courses_learn_concepts"],
		vm.T["courses_learn_handson"],
		vm.T["courses_learn_practices"],
		vm.T["courses_learn_certificate"],
	}
	vm.Audience = []string{
		vm.T["courses_audience_engineers"],
		vm.T["courses_audience_students"],
		vm.T["courses_audience_professionals"],
	}
	vm.Related = viewdata.CourseCards(catalog.Related(all, item.ID, catalog.RelatedLimit), l, vm.T)

	vm.Page(vm.Course.Title, vm.Course.Description, listCrumb, viewdata.Crumb{Label: vm.Course.Title})
	vm.AddJSONLD(seo.Course(vm.Course.Title, vm.Course.Description, viewdata.AbsURL(vm.Course.Href),
		vm.Chrome.CompanyName, item.Level.Display()))
	templates.Render(w, r, "courses/show", vm)
}
