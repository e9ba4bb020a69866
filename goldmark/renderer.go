// Package goldmark renders document markdown to HTML.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/docshelf"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Ensure Renderer implements docshelf.Renderer at compile time.
var _ docshelf.Renderer = (*Renderer)(nil)

// DefaultStyle is the chroma style used for fenced code blocks.
const DefaultStyle = "github"

// Renderer converts GitHub flavored markdown to HTML with highlighted code
// blocks and generated heading ids.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	style string
}

// WithStyle sets the chroma style for code highlighting.
func WithStyle(style string) Option {
	return func(c *config) {
		c.style = style
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	cfg := config{style: DefaultStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// Outline parses markdown with the same parser Render uses and returns its
// headings. Anchors are the generated heading ids, so they always resolve
// in the rendered HTML.
func (r *Renderer) Outline(markdown string) ([]docshelf.Heading, error) {
	source := []byte(markdown)
	root := r.md.Parser().Parse(text.NewReader(source))

	var headings []docshelf.Heading
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title, err := headingText(h, source)
		if err != nil {
			return ast.WalkStop, err
		}
		headings = append(headings, docshelf.Heading{
			Level:  h.Level,
			Title:  title,
			Anchor: headingID(h),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("outlining markdown: %w", err)
	}
	return headings, nil
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// headingText returns the plain text of a heading with inline markup removed.
func headingText(h *ast.Heading, source []byte) (string, error) {
	var buf bytes.Buffer
	err := ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		case *ast.AutoLink:
			buf.Write(n.Label(source))
		}
		return ast.WalkContinue, nil
	})
	return string(bytes.TrimSpace(buf.Bytes())), err
}
