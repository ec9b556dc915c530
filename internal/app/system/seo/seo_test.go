package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON_EscapesScriptClose(t *testing.T) {
	out := string(JSON(map[string]string{"name": "</script><b>"}))
	assert.NotContains(t, out, "</script>")
	assert.Contains(t, out, `\u003c/script\u003e`)
}

func TestOrganization(t *testing.T) {
	m := Organization(OrganizationInfo{
		Name:      "Hydra Tech",
		URL:       "https://hydratech.example",
		Telephone: []string{"+20 100", ""},
		Address:   "Cairo",
	})
	assert.Equal(t, "Organization", m["@type"])
	assert.Equal(t, "+20 100", m["telephone"])
	assert.NotContains(t, m, "email")
	addr := m["address"].(map[string]any)
	assert.Equal(t, "Cairo", addr["streetAddress"])
}

func TestBreadcrumbList(t *testing.T) {
	m := BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://x/"},
		{Name: "Products", Item: "https://x/products"},
		{Name: "Contactor"},
	})
	items := m["itemListElement"].([]map[string]any)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, items[2]["position"])
	assert.NotContains(t, items[2], "item")
}

func TestGraph_DropsNestedContext(t *testing.T) {
	g := Graph(Organization(OrganizationInfo{Name: "A"}), nil, Service("S", "d", "", "A"))
	nodes := g["@graph"].([]map[string]any)
	assert.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.NotContains(t, n, "@context")
	}
}

func TestCourse(t *testing.T) {
	m := Course("PLC", "desc", "", "Hydra Tech", "Beginner")
	assert.Equal(t, "Course", m["@type"])
	assert.Equal(t, "Beginner", m["educationalLevel"])
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "https://x.io/products/1", AbsURL("https://x.io/", "/products/1"))
	assert.Equal(t, "/products", AbsURL("", "/products"))
	assert.Equal(t, "/products?category=automation&lang=ar", WithLang("/products?category=automation", "ar"))

	long := strings.Repeat("word ", 100)
	got := Truncate(long, 20)
	assert.LessOrEqual(t, len([]rune(got)), 20)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, "short text", Truncate("short   text", 20))
}
