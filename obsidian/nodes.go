// Package obsidian extends goldmark with the Obsidian dialect: wikilink
// and embed spans, callout blockquotes, and frontmatter passthrough. The
// package pairs with canonmd to reformat dialect documents losslessly.
package obsidian

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Node kinds introduced by the dialect.
var (
	KindWikiLink          = ast.NewNodeKind("WikiLink")
	KindEmbed             = ast.NewNodeKind("Embed")
	KindCallout           = ast.NewNodeKind("Callout")
	KindCalloutTitle      = ast.NewNodeKind("CalloutTitle")
	KindCalloutTitleInner = ast.NewNodeKind("CalloutTitleInner")
	KindCalloutFold       = ast.NewNodeKind("CalloutFold")
	KindCalloutBody       = ast.NewNodeKind("CalloutBody")
)

// WikiLink is an internal reference written [[target]]. Content holds the
// exact bytes between the delimiters, newlines included when the span
// crosses lines; no escaping or path resolution is applied.
type WikiLink struct {
	ast.BaseInline
	Content []byte
}

// NewWikiLink returns a WikiLink over the given target bytes.
func NewWikiLink(content []byte) *WikiLink {
	return &WikiLink{Content: content}
}

// Kind implements ast.Node.
func (n *WikiLink) Kind() ast.NodeKind { return KindWikiLink }

// Dump implements ast.Node.
func (n *WikiLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Content": string(n.Content)}, nil)
}

// Embed is an embedded file reference written ![[target]]. It carries its
// target the same way WikiLink does.
type Embed struct {
	ast.BaseInline
	Content []byte
}

// NewEmbed returns an Embed over the given target bytes.
func NewEmbed(content []byte) *Embed {
	return &Embed{Content: content}
}

// Kind implements ast.Node.
func (n *Embed) Kind() ast.NodeKind { return KindEmbed }

// Dump implements ast.Node.
func (n *Embed) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Content": string(n.Content)}, nil)
}

// Callout is a styled quote introduced by a [!kind] header on the first
// line of a blockquote. The transformer replaces the blockquote's
// children with a single Callout; the blockquote itself survives as the
// wrapper so the quoted trigger syntax round-trips.
//
// Children are always a CalloutTitle followed by a CalloutBody.
type Callout struct {
	ast.BaseBlock

	// Name is the bracketed kind identifier as typed in the source;
	// rendering lowercases it.
	Name string

	// Fold is the marker byte following the closing bracket, '-' or '+',
	// or zero when absent.
	Fold byte

	// rawTitle is the custom title capture with its leading separator (a
	// space or a literal <br>) intact, so the header line can be rebuilt
	// byte for byte.
	rawTitle string
}

// NewCallout returns a Callout for the given header capture.
func NewCallout(name string, fold byte, rawTitle string) *Callout {
	return &Callout{Name: name, Fold: fold, rawTitle: rawTitle}
}

// Kind implements ast.Node.
func (n *Callout) Kind() ast.NodeKind { return KindCallout }

// Dump implements ast.Node.
func (n *Callout) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Name,
		"Fold":  string(n.foldBytes()),
		"Title": n.Title(),
	}, nil)
}

func (n *Callout) foldBytes() []byte {
	if n.Fold == 0 {
		return nil
	}
	return []byte{n.Fold}
}

// Folded reports whether the header carried a fold marker. Both '-' and
// '+' count as folded.
func (n *Callout) Folded() bool { return n.Fold != 0 }

// Title returns the custom title text with surrounding whitespace
// removed, or "" when the header had none.
func (n *Callout) Title() string { return strings.TrimSpace(n.rawTitle) }

// DisplayTitle returns the title a viewer would show: the custom title
// when present, otherwise the kind as typed.
func (n *Callout) DisplayTitle() string {
	if t := n.Title(); t != "" {
		return t
	}
	return n.Name
}

// calloutMarkupSep joins the header pieces to the raw title inside
// Markup. Titles cannot span lines, so no capture ever contains it.
const calloutMarkupSep = "\n\n"

// Markup returns the header in stored-markup form: the bracketed
// lowercased kind and fold marker, then the internal separator, then
// the raw title capture.
func (n *Callout) Markup() string {
	return "[!" + strings.ToLower(n.Name) + "]" + string(n.foldBytes()) + calloutMarkupSep + n.rawTitle
}

// HeaderLine rebuilds the canonical header line by deleting the
// internal separator from Markup, leaving the kind in its bracket
// syntax, the fold marker, and the raw title with the separator it was
// written with.
func (n *Callout) HeaderLine() string {
	return strings.ReplaceAll(n.Markup(), calloutMarkupSep, "")
}

// CalloutTitle groups the header metadata of a callout: a
// CalloutTitleInner holding the custom title inlines and, when folded, a
// CalloutFold marker node.
type CalloutTitle struct {
	ast.BaseBlock
}

// NewCalloutTitle returns an empty CalloutTitle.
func NewCalloutTitle() *CalloutTitle { return &CalloutTitle{} }

// Kind implements ast.Node.
func (n *CalloutTitle) Kind() ast.NodeKind { return KindCalloutTitle }

// Dump implements ast.Node.
func (n *CalloutTitle) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// CalloutTitleInner holds the inline nodes of a custom callout title. It
// is empty when the header had no custom title.
type CalloutTitleInner struct {
	ast.BaseBlock
}

// NewCalloutTitleInner returns an empty CalloutTitleInner.
func NewCalloutTitleInner() *CalloutTitleInner { return &CalloutTitleInner{} }

// Kind implements ast.Node.
func (n *CalloutTitleInner) Kind() ast.NodeKind { return KindCalloutTitleInner }

// Dump implements ast.Node.
func (n *CalloutTitleInner) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// CalloutFold marks a folded callout title. It carries no content of its
// own; viewers key collapse affordances off its presence.
type CalloutFold struct {
	ast.BaseBlock
}

// NewCalloutFold returns a CalloutFold marker.
func NewCalloutFold() *CalloutFold { return &CalloutFold{} }

// Kind implements ast.Node.
func (n *CalloutFold) Kind() ast.NodeKind { return KindCalloutFold }

// Dump implements ast.Node.
func (n *CalloutFold) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// CalloutBody holds the callout content: every block after the header
// line. Hidden mirrors the fold marker; the content still renders, a
// viewer just collapses it by default.
type CalloutBody struct {
	ast.BaseBlock
	Hidden bool
}

// NewCalloutBody returns an empty CalloutBody.
func NewCalloutBody() *CalloutBody { return &CalloutBody{} }

// Kind implements ast.Node.
func (n *CalloutBody) Kind() ast.NodeKind { return KindCalloutBody }

// Dump implements ast.Node.
func (n *CalloutBody) Dump(source []byte, level int) {
	hidden := "false"
	if n.Hidden {
		hidden = "true"
	}
	ast.DumpHelper(n, source, level, map[string]string{"Hidden": hidden}, nil)
}
