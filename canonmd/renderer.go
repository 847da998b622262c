// Package canonmd renders a goldmark AST back to canonical markdown
// text. The renderer is an alternative to goldmark's HTML output: it
// re-emits every construct in one normal form (ATX headings, fenced
// code, "---" breaks, zero padded ordered lists) and escapes paragraph
// lines that a reparse would otherwise promote to block syntax, so that
// formatting is idempotent.
package canonmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
)

// A RenderFunc produces the canonical text for one node.
type RenderFunc func(rc *Context, n ast.Node) (string, error)

// Registry accepts render function registrations keyed by node kind.
type Registry interface {
	Register(kind ast.NodeKind, fn RenderFunc)
}

// A NodeRenderer contributes render functions for the node kinds it
// knows, the markdown-out analog of goldmark's renderer.NodeRenderer.
type NodeRenderer interface {
	RegisterFuncs(Registry)
}

type wrapMode int

const (
	wrapKeep wrapMode = 0
	wrapNone wrapMode = -1
)

// An Option configures a Renderer.
type Option func(*Renderer)

// WithWrap reflows paragraph text at the given display width. Soft line
// breaks stop being preserved and become reflow points.
func WithWrap(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.wrap = wrapMode(width)
		}
	}
}

// WithNoWrap joins each paragraph onto a single line. Soft line breaks
// collapse to spaces.
func WithNoWrap() Option {
	return func(r *Renderer) { r.wrap = wrapNone }
}

// Renderer renders an AST as canonical markdown. It implements
// goldmark's renderer.Renderer so it can be installed with
// goldmark.WithRenderer.
type Renderer struct {
	funcs map[ast.NodeKind]RenderFunc
	wrap  wrapMode
}

// NewRenderer returns a Renderer with the core markdown kinds
// registered. Later registrations for the same kind win, so extensions
// may override core forms.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{funcs: make(map[ast.NodeKind]RenderFunc)}
	r.registerCore()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register implements Registry.
func (r *Renderer) Register(kind ast.NodeKind, fn RenderFunc) {
	r.funcs[kind] = fn
}

// AddOptions implements goldmark's renderer.Renderer option protocol.
// NodeRenderer values supplied through renderer.WithNodeRenderers are
// adopted; HTML oriented options are ignored.
func (r *Renderer) AddOptions(opts ...renderer.Option) {
	cfg := renderer.NewConfig()
	for _, opt := range opts {
		opt.SetConfig(cfg)
	}
	cfg.NodeRenderers.Sort()
	for _, v := range cfg.NodeRenderers {
		if nr, ok := v.Value.(NodeRenderer); ok {
			nr.RegisterFuncs(r)
		}
	}
}

// Render implements goldmark's renderer.Renderer.
func (r *Renderer) Render(w io.Writer, source []byte, n ast.Node) error {
	rc := &Context{r: r, source: source}
	out, err := rc.Render(n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) registerCore() {
	r.Register(ast.KindDocument, renderDocument)
	r.Register(ast.KindHeading, renderHeading)
	r.Register(ast.KindBlockquote, renderBlockquote)
	r.Register(ast.KindCodeBlock, renderCodeBlock)
	r.Register(ast.KindFencedCodeBlock, renderCodeBlock)
	r.Register(ast.KindHTMLBlock, renderHTMLBlock)
	r.Register(ast.KindThematicBreak, renderThematicBreak)
	r.Register(ast.KindList, renderList)
	r.Register(ast.KindListItem, renderListItem)
	r.Register(ast.KindParagraph, renderParagraph)
	r.Register(ast.KindTextBlock, renderParagraph)
	r.Register(ast.KindText, renderText)
	r.Register(ast.KindString, renderString)
	r.Register(ast.KindCodeSpan, renderCodeSpan)
	r.Register(ast.KindEmphasis, renderEmphasis)
	r.Register(ast.KindLink, renderLink)
	r.Register(ast.KindImage, renderImage)
	r.Register(ast.KindAutoLink, renderAutoLink)
	r.Register(ast.KindRawHTML, renderRawHTML)
}

// JoinBlocks joins the non-empty block renders with sep.
func JoinBlocks(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func renderDocument(rc *Context, n ast.Node) (string, error) {
	parts, err := rc.RenderChildren(n)
	if err != nil {
		return "", err
	}
	body := JoinBlocks(parts, "\n\n")
	if body == "" {
		return "", nil
	}
	return body + "\n", nil
}

func unknownKindError(n ast.Node) error {
	return fmt.Errorf("canonmd: no render function for node kind %s", n.Kind())
}
