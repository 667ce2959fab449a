package renderer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// richTextPolicy is the allow-list for user-authored rich text (summaries and
// descriptions). Inline emphasis, links and plain lists only; everything else
// is stripped, not escaped.
var richTextPolicy = buildRichTextPolicy()

func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "strong", "em", "p", "br", "ol", "ul", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(true)
	return p
}

// SanitizeRichText strips everything outside the rich-text allow-list
func SanitizeRichText(html string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(html))
}

// fontStack maps a font category to its CSS fallback stack
var fontStacks = map[string]string{
	"sans-serif":   "sans-serif",
	"serif":        "serif",
	"monospace":    "monospace",
	"display":      "sans-serif",
	"handwriting":  "cursive",
	"ats-friendly": "sans-serif",
}

// cssFontFamily builds a safe font-family declaration from the configured
// family and category. Quotes and backslashes are dropped from the family
// name so user input cannot break out of the declaration.
func cssFontFamily(family, category string) string {
	family = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '\\', ';', '{', '}', '<', '>':
			return -1
		}
		return r
	}, family)
	family = strings.TrimSpace(family)

	fallback, ok := fontStacks[category]
	if !ok {
		fallback = "sans-serif"
	}
	if family == "" {
		return fallback
	}
	return "'" + family + "', " + fallback
}
