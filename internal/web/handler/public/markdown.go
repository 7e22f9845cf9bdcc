package public

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	sanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts admin-authored markdown into sanitized HTML safe
// to embed in a page. Rendering failures return empty HTML along with the
// error so callers can still serve the page.
func RenderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}

	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil //nolint:gosec
}
