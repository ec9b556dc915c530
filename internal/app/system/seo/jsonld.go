// Package seo builds schema.org JSON-LD payloads and page meta for templates.
package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v for a <script type="application/ld+json"> block.
// It returns "" on error. encoding/json escapes <, > and &, so the output
// cannot close the script element.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// OrganizationInfo is the company data published in the Organization schema.
type OrganizationInfo struct {
	Name      string
	URL       string
	Email     string
	Telephone []string
	Address   string
}

// Organization returns an Organization schema.
func Organization(o OrganizationInfo) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     o.Name,
	}
	if o.URL != "" {
		m["url"] = o.URL
	}
	if o.Email != "" {
		m["email"] = o.Email
	}
	var phones []string
	for _, p := range o.Telephone {
		if p != "" {
			phones = append(phones, p)
		}
	}
	if len(phones) == 1 {
		m["telephone"] = phones[0]
	} else if len(phones) > 1 {
		m["telephone"] = phones
	}
	if o.Address != "" {
		m["address"] = map[string]any{"@type": "PostalAddress", "streetAddress": o.Address}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Product returns a minimal product schema payload.
func Product(name, description, url, imageURL, category, brand string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if category != "" {
		m["category"] = category
	}
	if brand != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": brand}
	}
	return m
}

// Service returns a Service schema offered by provider.
func Service(name, description, url, provider string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if provider != "" {
		m["provider"] = map[string]any{"@type": "Organization", "name": provider}
	}
	return m
}

// Course returns a Course schema.
func Course(name, description, url, provider, level string) map[string]any {
	m := Service(name, description, url, provider)
	m["@type"] = "Course"
	if level != "" {
		m["educationalLevel"] = level
	}
	return m
}

// Graph combines several schema objects into one JSON-LD document.
func Graph(nodes ...map[string]any) map[string]any {
	g := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		c := make(map[string]any, len(n))
		for k, v := range n {
			if k == "@context" {
				continue
			}
			c[k] = v
		}
		g = append(g, c)
	}
	return map[string]any{
		"@context": "https://schema.org",
		"@graph":   g,
	}
}
