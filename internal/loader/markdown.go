package loader

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// MarkdownLoader handles Markdown files using goldmark. Headings are
// explicit markup, so they load as an embedded outline; markdown has no
// pages, so every entry targets page 0.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(data []byte, filename string) (*outline.Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(data))

	doc := &outline.Document{PageCount: 1}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(h.Text(data)))
		if title == "" {
			continue
		}
		doc.Embedded = append(doc.Embedded, outline.EmbeddedEntry{
			Level: h.Level,
			Title: title,
		})
	}
	return doc, nil
}
