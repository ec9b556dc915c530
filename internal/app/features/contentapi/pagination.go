package contentapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/hydrasite/internal/app/store/storeutil"
	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
)

// Envelope is the paginated list response.
type Envelope[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// listQuery reads page, page_size and ordering. A malformed page answers 404
// and returns false.
func (h *Handler) listQuery(w http.ResponseWriter, r *http.Request) (storeutil.ListQuery, bool) {
	v := r.URL.Query()
	q := storeutil.ListQuery{Page: 1, PageSize: h.pageSize, Ordering: strings.TrimSpace(v.Get("ordering"))}

	if raw := strings.TrimSpace(v.Get("page")); raw != "" {
		p, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || p < 1 {
			jsonutil.JSON(w, http.StatusNotFound, map[string]string{"detail": "Invalid page."})
			return q, false
		}
		q.Page = p
	}
	if raw := strings.TrimSpace(v.Get("page_size")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			q.PageSize = n
		}
	}
	if !storeutil.ValidOrdering(q.Ordering) {
		q.Ordering = ""
	}
	return q.Normalized(), true
}

// writePage writes one page of items. A page past the end answers 404 unless
// the list is empty and the first page was asked for.
func writePage[T any](w http.ResponseWriter, r *http.Request, q storeutil.ListQuery, items []T, total int64) {
	if q.Page > 1 && (q.Page-1)*q.PageSize >= total {
		jsonutil.JSON(w, http.StatusNotFound, map[string]string{"detail": "Invalid page."})
		return
	}
	if items == nil {
		items = []T{}
	}
	env := Envelope[T]{Count: total, Results: items}
	if q.Page*q.PageSize < total {
		next := pageURL(r, q.Page+1)
		env.Next = &next
	}
	if q.Page > 1 {
		prev := pageURL(r, q.Page-1)
		env.Previous = &prev
	}
	jsonutil.OK(w, env)
}

// pageURL returns the absolute URL of the request with page replaced. The
// first page carries no page parameter.
func pageURL(r *http.Request, page int64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.FormatInt(page, 10))
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
