package canonmd

import "github.com/yuin/goldmark/ast"

// Context carries per document render state: the source bytes, the
// running indent width charged against wrapping, and dispatch back into
// the renderer's function table.
type Context struct {
	r           *Renderer
	source      []byte
	indentWidth int
}

// Source returns the source bytes the AST was parsed from.
func (rc *Context) Source() []byte { return rc.source }

// Render produces the canonical text for n.
func (rc *Context) Render(n ast.Node) (string, error) {
	fn, ok := rc.r.funcs[n.Kind()]
	if !ok {
		return "", unknownKindError(n)
	}
	return fn(rc, n)
}

// RenderChildren renders each child of n in order. Empty renders are
// kept so callers can see structural children; JoinBlocks drops them.
func (rc *Context) RenderChildren(n ast.Node) ([]string, error) {
	parts := make([]string, 0, n.ChildCount())
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, err := rc.Render(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return parts, nil
}

// Indented grows the indent width charged against the wrap width for
// the duration of a scoped render. The returned func restores the
// previous width and is meant for defer.
func (rc *Context) Indented(width int) func() {
	prev := rc.indentWidth
	rc.indentWidth += width
	return func() { rc.indentWidth = prev }
}

// IndentWidth returns the indent accumulated by the enclosing container
// renders.
func (rc *Context) IndentWidth() int { return rc.indentWidth }

// doWrap reports whether soft breaks are being rewritten, either to
// reflow at a width or to join lines outright.
func (rc *Context) doWrap() bool { return rc.r.wrap != wrapKeep }

// wrapWidth returns the effective reflow width after subtracting the
// accumulated indent, or 0 when lines are joined without reflowing.
func (rc *Context) wrapWidth() int {
	if rc.r.wrap <= 0 {
		return 0
	}
	width := int(rc.r.wrap) - rc.indentWidth
	if width < 1 {
		width = 1
	}
	return width
}
