// Package render converts the inline emphasis markup carried inside chunk
// text into display forms for the text panel. The viewer core treats chunk
// text as opaque; rendering happens at the edge, on demand.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// InlineHTML renders chunk text to inline HTML: emphasis, strong, and code
// spans become markup, everything else is escaped. Block structure is
// deliberately flattened — a chunk is one line of a page, not a document.
func InlineHTML(text string) string {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(text), &buf); err != nil {
		return html.EscapeString(text)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return strings.Join(strings.Fields(out), " ")
}

// PlainText strips all inline markup from chunk text, for the text render
// mode and copy-to-clipboard surfaces.
func PlainText(text string) string {
	doc, err := html.Parse(strings.NewReader(InlineHTML(text)))
	if err != nil {
		return text
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String())
}
