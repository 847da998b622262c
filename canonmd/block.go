package canonmd

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"

	"github.com/obsfmt/obsfmt/internal/mdtext"
)

// renderInline concatenates the renders of n's children.
func renderInline(rc *Context, n ast.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, err := rc.Render(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Headings always come out in ATX form, on one line. An unescaped
// trailing # would reparse as a closing hash sequence, so it gains an
// escape.
func renderHeading(rc *Context, n ast.Node) (string, error) {
	h := n.(*ast.Heading)
	body, err := renderInline(rc, n)
	if err != nil {
		return "", err
	}
	body = resolveWrapPoints(body)
	body = strings.TrimRightFunc(strings.ReplaceAll(body, "\n", " "), unicode.IsSpace)
	if strings.HasSuffix(body, "#") && !mdtext.Escaped([]byte(body), len(body)-1) {
		body = body[:len(body)-1] + "\\#"
	}
	hashes := strings.Repeat("#", h.Level)
	if body == "" {
		return hashes, nil
	}
	return hashes + " " + body, nil
}

func renderBlockquote(rc *Context, n ast.Node) (string, error) {
	restore := rc.Indented(2)
	defer restore()
	parts, err := rc.RenderChildren(n)
	if err != nil {
		return "", err
	}
	body := JoinBlocks(parts, "\n\n")
	if body == "" {
		return "", nil
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n"), nil
}

func renderThematicBreak(rc *Context, n ast.Node) (string, error) {
	return "---", nil
}

// Code blocks always come out fenced: the fence character flips to ~
// when the info string holds a backtick, and the fence outruns the
// longest same-character run in the content by one.
func renderCodeBlock(rc *Context, n ast.Node) (string, error) {
	var info string
	if f, ok := n.(*ast.FencedCodeBlock); ok && f.Info != nil {
		info = strings.TrimSpace(string(f.Info.Segment.Value(rc.source)))
	}
	var content strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		content.Write(seg.Value(rc.source))
	}
	code := content.String()
	if code != "" && !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	fenceChar := byte('`')
	if strings.Contains(info, "`") {
		fenceChar = '~'
	}
	fenceLen := mdtext.LongestRun(code, fenceChar) + 1
	if fenceLen < 3 {
		fenceLen = 3
	}
	fence := strings.Repeat(string(fenceChar), fenceLen)
	return fence + info + "\n" + code + fence, nil
}

// HTML blocks pass through byte for byte, minus the trailing newline the
// block separator will reintroduce.
func renderHTMLBlock(rc *Context, n ast.Node) (string, error) {
	b := n.(*ast.HTMLBlock)
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(rc.source))
	}
	if b.HasClosure() {
		sb.Write(b.ClosureLine.Value(rc.source))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
