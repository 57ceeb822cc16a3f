// Package htmlsanitize cleans HTML produced by the blog editor and reply
// forms before it is sent to the backend or rendered back into a page.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy   = newRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// editor output: alignment classes and extra inline formatting
	p.AllowAttrs("class").OnElements("p", "span", "div", "pre", "code", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td", "img", "h1", "h2", "h3", "h4")
	p.AllowElements("u", "s", "mark", "sub", "sup", "figure", "figcaption")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize strips scripts, event handlers and unsafe URLs from rich HTML
// while keeping ordinary formatting, links, images and tables.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return richPolicy.Sanitize(s)
}

// SanitizeToHTML is Sanitize for direct template output.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// StripTags removes all markup and returns plain text, for fields the
// backend stores as text (contact replies).
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and wraps it in a paragraph, turning newlines into <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders either plain text or sanitized HTML safely.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}

// Excerpt returns up to n runes of the text content of s, with an ellipsis
// when truncated.
func Excerpt(s string, n int) string {
	text := strings.Join(strings.Fields(StripTags(s)), " ")
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
