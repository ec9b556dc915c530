// Package contentclient talks to the content REST API: services, product
// categories, products, courses, site settings, 3D printing projects and the
// contact endpoint.
package contentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/hydrasite/internal/domain/models"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 512
	maxResponseBody = 8 << 20
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("contentclient: not found")

// StatusError is returned for any other non-2xx answer.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contentclient: %s %s: status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Options configures a Client.
type Options struct {
	BaseURL    string        // e.g. http://localhost:8080/api
	Timeout    time.Duration // per call; 0 uses the default
	PageSize   int           // page_size sent with list calls; 0 sends none
	HTTPClient *http.Client
}

// Client issues requests against the content API. It is safe for concurrent use.
type Client struct {
	base     *url.URL
	http     *http.Client
	timeout  time.Duration
	pageSize int
}

// New constructs a Client. BaseURL must be an absolute http(s) URL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("contentclient: parse base url: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("contentclient: base url must be absolute http(s), got %q", opts.BaseURL)
	}
	c := &Client{
		base:     base,
		http:     opts.HTTPClient,
		timeout:  opts.Timeout,
		pageSize: opts.PageSize,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	return c, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.base.String() }

// ProductFilter narrows a product list. Zero values are not sent.
type ProductFilter struct {
	CategorySlug string
	Featured     *bool
}

// CourseFilter narrows a course list. Zero values are not sent.
type CourseFilter struct {
	Level    string
	Featured *bool
}

// ProjectFilter narrows a 3D printing project list.
type ProjectFilter struct {
	Featured *bool
}

// Bool returns a pointer to v, for filter fields.
func Bool(v bool) *bool { return &v }

func setFeatured(q url.Values, f *bool) {
	if f != nil {
		q.Set("is_featured", strconv.FormatBool(*f))
	}
}

// Services lists every service.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	return getList[models.Service](ctx, c, "services", nil)
}

// Service fetches one service.
func (c *Client) Service(ctx context.Context, id int64) (models.Service, error) {
	return getOne[models.Service](ctx, c, "services", strconv.FormatInt(id, 10))
}

// ProductCategories lists every product category.
func (c *Client) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return getList[models.ProductCategory](ctx, c, "product-categories", nil)
}

// Products lists products matching f.
func (c *Client) Products(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := url.Values{}
	if f.CategorySlug != "" {
		q.Set("category__slug", f.CategorySlug)
	}
	setFeatured(q, f.Featured)
	list, err := getList[models.Product](ctx, c, "products", q)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Image = c.absImage(list[i].Image)
	}
	return list, nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, id int64) (models.Product, error) {
	p, err := getOne[models.Product](ctx, c, "products", strconv.FormatInt(id, 10))
	if err != nil {
		return models.Product{}, err
	}
	p.Image = c.absImage(p.Image)
	return p, nil
}

// Courses lists courses matching f.
func (c *Client) Courses(ctx context.Context, f CourseFilter) ([]models.Course, error) {
	q := url.Values{}
	if f.Level != "" {
		q.Set("level", f.Level)
	}
	setFeatured(q, f.Featured)
	return getList[models.Course](ctx, c, "courses", q)
}

// Course fetches one course.
func (c *Client) Course(ctx context.Context, id int64) (models.Course, error) {
	return getOne[models.Course](ctx, c, "courses", strconv.FormatInt(id, 10))
}

// SiteSettings fetches the settings singleton.
func (c *Client) SiteSettings(ctx context.Context) (models.SiteSettings, error) {
	return getOne[models.SiteSettings](ctx, c, "site-settings")
}

// PrintProjects lists 3D printing projects matching f.
func (c *Client) PrintProjects(ctx context.Context, f ProjectFilter) ([]models.PrintProject, error) {
	q := url.Values{}
	setFeatured(q, f.Featured)
	list, err := getList[models.PrintProject](ctx, c, "3d-printing", q)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Image = c.absImage(list[i].Image)
	}
	return list, nil
}

// PrintProject fetches one 3D printing project.
func (c *Client) PrintProject(ctx context.Context, id int64) (models.PrintProject, error) {
	p, err := getOne[models.PrintProject](ctx, c, "3d-printing", strconv.FormatInt(id, 10))
	if err != nil {
		return models.PrintProject{}, err
	}
	p.Image = c.absImage(p.Image)
	return p, nil
}

// SubmitContact posts a contact form submission on behalf of visitorIP,
// which is sent as X-Forwarded-For so the API rate-limits the visitor and
// not this server. Any 2xx answer is success.
func (c *Client) SubmitContact(ctx context.Context, sub models.ContactSubmission, visitorIP string) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.endpoint(nil, "contact")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if visitorIP != "" {
		req.Header.Set("X-Forwarded-For", visitorIP)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contentclient: POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(req, resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
	return nil
}

// endpoint joins path segments onto the base URL with a trailing slash.
func (c *Client) endpoint(q url.Values, segments ...string) string {
	u := *c.base
	parts := []string{strings.TrimRight(u.Path, "/")}
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	u.Path = strings.Join(parts, "/") + "/"
	u.RawPath = ""
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// absImage turns a root-relative image path into an absolute URL on the API host.
func (c *Client) absImage(img *string) *string {
	if img == nil || *img == "" {
		return nil
	}
	if !strings.HasPrefix(*img, "/") || strings.HasPrefix(*img, "//") {
		return img
	}
	u := url.URL{Scheme: c.base.Scheme, Host: c.base.Host, Path: *img}
	s := u.String()
	return &s
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentclient: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(req, resp)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("contentclient: read %s: %w", endpoint, err)
	}
	return body, nil
}

// envelope is the paginated list shape. Only results is used; further pages
// are never followed.
type envelope[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// decodeList accepts either a bare JSON array or a paginated envelope.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Results == nil {
		return []T{}, nil
	}
	return env.Results, nil
}

func getList[T any](ctx context.Context, c *Client, resource string, q url.Values) ([]T, error) {
	if q == nil {
		q = url.Values{}
	}
	if c.pageSize > 0 {
		q.Set("page_size", strconv.Itoa(c.pageSize))
	}
	endpoint := c.endpoint(q, resource)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	out, err := decodeList[T](body)
	if err != nil {
		return nil, fmt.Errorf("contentclient: decode %s: %w", endpoint, err)
	}
	return out, nil
}

func getOne[T any](ctx context.Context, c *Client, segments ...string) (T, error) {
	var out T
	endpoint := c.endpoint(nil, segments...)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("contentclient: decode %s: %w", endpoint, err)
	}
	return out, nil
}

func statusError(req *http.Request, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Method: req.Method,
		URL:    req.URL.String(),
		Code:   resp.StatusCode,
		Body:   strings.TrimSpace(string(b)),
	}
}
