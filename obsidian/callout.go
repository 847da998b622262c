package obsidian

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// calloutHeader matches a callout header at the start of a blockquote's
// first line: an optionally escaped [!kind] bracket, an optional fold
// marker, and an optional custom title introduced by a space or a
// literal <br>. The kind match is case insensitive.
var calloutHeader = regexp.MustCompile(`(?i)^\\?\[!([^\]]+)\\?\]([-+]?)((?: |<br>)[^\n]+)?`)

// calloutTransformer rewrites blockquotes whose first paragraph opens
// with a callout header into Callout subtrees.
type calloutTransformer struct{}

// NewCalloutTransformer returns the AST transformer that recognizes
// callout blockquotes.
func NewCalloutTransformer() parser.ASTTransformer { return &calloutTransformer{} }

// Transform implements parser.ASTTransformer.
func (t *calloutTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var quotes []*ast.Blockquote
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if bq, ok := n.(*ast.Blockquote); ok && entering {
			quotes = append(quotes, bq)
		}
		return ast.WalkContinue, nil
	})
	for _, bq := range quotes {
		transformCallout(bq, source)
	}
}

// transformCallout replaces the children of bq with a Callout when its
// first paragraph opens with a callout header. Blockquotes that do not
// match, and pathological shapes that cannot be split cleanly at the end
// of the header line, are left untouched.
func transformCallout(bq *ast.Blockquote, source []byte) {
	para, ok := bq.FirstChild().(*ast.Paragraph)
	if !ok || para.Lines().Len() == 0 {
		return
	}
	line := para.Lines().At(0)
	raw := line.Value(source)
	trim := 0
	for trim < len(raw) && (raw[trim] == ' ' || raw[trim] == '\t') {
		trim++
	}
	head := raw[trim:]

	m := calloutHeader.FindSubmatchIndex(head)
	if m == nil {
		return
	}
	name := string(head[m[2]:m[3]])
	var fold byte
	if m[4] >= 0 && m[5] > m[4] {
		fold = head[m[4]]
	}

	// The custom title capture keeps its leading separator; a capture
	// that strips to nothing counts as absent. Anything on the header
	// line that the pattern did not capture is dropped with the line.
	custom := false
	var rawTitle string
	titleStart := 0
	if m[6] >= 0 {
		capture := string(head[m[6]:m[7]])
		if strings.TrimSpace(capture) != "" {
			custom = true
			rawTitle = strings.TrimRightFunc(capture, unicode.IsSpace)
			titleStart = m[6]
			if head[titleStart] == ' ' {
				titleStart++
				for titleStart < len(head) && (head[titleStart] == ' ' || head[titleStart] == '\t') {
					titleStart++
				}
			}
		}
	}

	nodes := make([]ast.Node, 0, para.ChildCount())
	for c := para.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = append(nodes, c)
	}

	// The header line's inline nodes end at the first break flagged text
	// node. A break buried inside a container span means the line cannot
	// be split at the top level, so the blockquote stays as is.
	brk := -1
	for i, c := range nodes {
		if !containsLineBreak(c) {
			continue
		}
		if _, ok := c.(*ast.Text); !ok {
			return
		}
		brk = i
		break
	}
	split := len(nodes)
	if brk >= 0 {
		split = brk + 1
	}

	// The inline pass splits the header line at the bracket triggers, so
	// the [!kind]fold prefix spreads over several nodes. All of them
	// hold plain text or the literal <br> separator; walk them up to the
	// title offset, cutting the text node the boundary lands inside. A
	// prefix node the boundary cannot be resolved against means the kind
	// itself holds inline markup, and the blockquote stays as is.
	drop := 0
	if custom {
		at := line.Start + trim + titleStart
		resolved := false
		for _, c := range nodes[:split] {
			start, stop, ok := segmentSpan(c)
			if !ok {
				return
			}
			if stop <= at {
				drop++
				if stop == at {
					resolved = true
					break
				}
				continue
			}
			if start < at {
				t, isText := c.(*ast.Text)
				if !isText {
					return
				}
				t.Segment = text.NewSegment(at, t.Segment.Stop)
			}
			resolved = true
			break
		}
		if !resolved {
			return
		}
	}

	callout := NewCallout(name, fold, rawTitle)
	title := NewCalloutTitle()
	inner := NewCalloutTitleInner()
	title.AppendChild(title, inner)

	if custom {
		if brk >= 0 {
			t := nodes[brk].(*ast.Text)
			t.SetSoftLineBreak(false)
			t.SetHardLineBreak(false)
		}
		for _, c := range nodes[drop:split] {
			inner.AppendChild(inner, c)
		}
	}
	if callout.Folded() {
		title.AppendChild(title, NewCalloutFold())
	}

	body := NewCalloutBody()
	body.Hidden = callout.Folded()
	if split < len(nodes) {
		bodyPara := ast.NewParagraph()
		for _, c := range nodes[split:] {
			bodyPara.AppendChild(bodyPara, c)
		}
		lines := para.Lines()
		rest := text.NewSegments()
		for i := 1; i < lines.Len(); i++ {
			rest.Append(lines.At(i))
		}
		bodyPara.SetLines(rest)
		body.AppendChild(body, bodyPara)
	}
	for c := para.NextSibling(); c != nil; {
		next := c.NextSibling()
		body.AppendChild(body, c)
		c = next
	}

	callout.AppendChild(callout, title)
	callout.AppendChild(callout, body)
	bq.ReplaceChild(bq, para, callout)
}

// segmentSpan reports the source span of an inline node that carries
// its segments directly: text and raw HTML. Container kinds do not
// resolve.
func segmentSpan(n ast.Node) (start, stop int, ok bool) {
	switch n := n.(type) {
	case *ast.Text:
		return n.Segment.Start, n.Segment.Stop, true
	case *ast.RawHTML:
		if n.Segments.Len() == 0 {
			return 0, 0, false
		}
		head := n.Segments.At(0)
		tail := n.Segments.At(n.Segments.Len() - 1)
		return head.Start, tail.Stop, true
	}
	return 0, 0, false
}

// containsLineBreak reports whether n is, or contains, a text node
// flagged with a soft or hard line break.
func containsLineBreak(n ast.Node) bool {
	if t, ok := n.(*ast.Text); ok {
		return t.SoftLineBreak() || t.HardLineBreak()
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if containsLineBreak(c) {
			return true
		}
	}
	return false
}
