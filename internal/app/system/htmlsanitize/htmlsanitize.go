// Package htmlsanitize turns content text into HTML that is safe to render.
// Descriptions are markdown rendered with goldmark, then cleaned with bluemonday.
package htmlsanitize

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	policy     *bluemonday.Policy
	strict     *bluemonday.Policy
	md         goldmark.Markdown
	policyOnce sync.Once
)

func setup() {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowElements("u", "s", "sub", "sup", "mark")
		// Bilingual content may switch direction inside a paragraph
		policy.AllowAttrs("dir").Matching(bluemonday.Direction).Globally()

		strict = bluemonday.StrictPolicy()

		md = goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)
	})
}

// Sanitize cleans HTML input, removing dangerous elements and attributes
// while keeping formatting, lists, links and tables.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	setup()
	return policy.Sanitize(s)
}

// Markdown renders markdown (or plain text with line breaks) to sanitized HTML.
// Raw HTML in the source is dropped by goldmark and anything left is cleaned again.
func Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	setup()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(Sanitize(buf.String()))
}

// StripTags removes every tag from s and trims it, for plain-text fields such
// as contact form input. Entities produced by the policy are decoded back.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	setup()
	out := strict.Sanitize(s)
	out = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'").Replace(out)
	return strings.TrimSpace(out)
}
