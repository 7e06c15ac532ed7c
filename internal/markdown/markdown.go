// Package markdown renders blog post markdown to HTML and derives the
// table of contents from its headings.
//
// Heading anchors are generated inside the parser with the shared
// slugify rules, so the TOC and the rendered HTML always agree on IDs
// regardless of where rendering happens. Raw HTML in the source is
// escaped; post content comes from internal authors but safe rendering
// is the default anyway.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"robohub/pkg/slugify"
)

// Heading is one table-of-contents entry.
type Heading struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Document is the rendered form of a post's markdown source.
type Document struct {
	HTML string    `json:"html"`
	TOC  []Heading `json:"toc"`
}

// TOC levels: the level-1 document title is excluded, anything deeper
// than h4 is navigation noise.
const (
	minTOCLevel = 2
	maxTOCLevel = 4
)

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	// Single newlines are hard breaks, matching how posts are authored.
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// slugIDs generates heading IDs with the shared slugify rules.
// Duplicate headings intentionally share an ID so a TOC entry derived
// from the same text always resolves.
type slugIDs struct{}

func (slugIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	id := slugify.Slugify(string(value))
	if id == "" {
		id = "heading"
	}
	return []byte(id)
}

func (slugIDs) Put(value []byte) {}

// Render converts markdown source to HTML plus its table of contents.
// It is a pure function of the input and never fails: if the source
// cannot be parsed or rendered, the raw text is returned as the HTML
// with an empty TOC so the caller always has something renderable.
func Render(source string) (doc Document) {
	doc = Document{HTML: source}
	defer func() {
		if r := recover(); r != nil {
			doc = Document{HTML: source}
		}
	}()

	src := []byte(source)
	ctx := parser.NewContext(parser.WithIDs(slugIDs{}))
	root := engine.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var toc []Heading
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level < minTOCLevel || h.Level > maxTOCLevel {
			return ast.WalkContinue, nil
		}
		title := string(nodeText(h, src))
		id := slugify.Slugify(title)
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		toc = append(toc, Heading{ID: id, Title: title, Level: h.Level})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Document{HTML: source}
	}

	var buf bytes.Buffer
	if err := engine.Renderer().Render(&buf, src, root); err != nil {
		return Document{HTML: source}
	}
	return Document{HTML: buf.String(), TOC: toc}
}

// nodeText collects the plain text of n's inline content.
func nodeText(n ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
