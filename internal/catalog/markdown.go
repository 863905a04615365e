package catalog

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown          = goldmark.New()
	descriptionPolicy = newDescriptionPolicy()
)

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "em", "strong")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// RenderDescription converts a markdown description to sanitised HTML.
// When conversion fails the escaped plain text is returned in a paragraph.
func RenderDescription(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}

	return strings.TrimSpace(descriptionPolicy.Sanitize(buf.String()))
}
