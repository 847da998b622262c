package obsidian

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"

	"github.com/obsfmt/obsfmt/canonmd"
)

// nodeRenderer supplies the canonical markdown forms for the dialect
// node kinds.
type nodeRenderer struct{}

// NewRenderer returns the canonmd render function bundle for the dialect
// kinds.
func NewRenderer() canonmd.NodeRenderer { return &nodeRenderer{} }

// RegisterFuncs implements canonmd.NodeRenderer.
func (r *nodeRenderer) RegisterFuncs(reg canonmd.Registry) {
	reg.Register(KindWikiLink, renderWikiLink)
	reg.Register(KindEmbed, renderEmbed)
	reg.Register(KindCallout, renderCallout)
	reg.Register(KindCalloutTitle, renderNothing)
	reg.Register(KindCalloutTitleInner, renderNothing)
	reg.Register(KindCalloutFold, renderNothing)
	reg.Register(KindCalloutBody, renderCalloutBody)
}

func renderWikiLink(rc *canonmd.Context, n ast.Node) (string, error) {
	return "[[" + string(n.(*WikiLink).Content) + "]]", nil
}

func renderEmbed(rc *canonmd.Context, n ast.Node) (string, error) {
	return "![[" + string(n.(*Embed).Content) + "]]", nil
}

// The title subtree renders empty: the header line the callout itself
// emits already carries everything the title nodes hold.
func renderNothing(rc *canonmd.Context, n ast.Node) (string, error) {
	return "", nil
}

// A callout renders as its header line above its body blocks. The
// enclosing blockquote render adds the quote prefixes afterward.
func renderCallout(rc *canonmd.Context, n ast.Node) (string, error) {
	c := n.(*Callout)
	parts, err := rc.RenderChildren(n)
	if err != nil {
		return "", err
	}
	out := c.HeaderLine() + "\n" + canonmd.JoinBlocks(parts, "\n\n")
	return strings.TrimRightFunc(out, unicode.IsSpace), nil
}

func renderCalloutBody(rc *canonmd.Context, n ast.Node) (string, error) {
	parts, err := rc.RenderChildren(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRightFunc(canonmd.JoinBlocks(parts, "\n\n"), unicode.IsSpace), nil
}
