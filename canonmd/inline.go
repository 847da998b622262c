package canonmd

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/obsfmt/obsfmt/internal/mdtext"
)

// Inline text re-emits its raw source bytes, escape sequences and
// entity references included, so nothing gets escaped twice.
func renderText(rc *Context, n ast.Node) (string, error) {
	t := n.(*ast.Text)
	value := string(t.Segment.Value(rc.source))
	if rc.doWrap() {
		value = proseSpaceRE.ReplaceAllString(value, wrapPoint)
	}
	switch {
	case t.HardLineBreak():
		value += "\\\n"
	case t.SoftLineBreak():
		if rc.doWrap() {
			value += wrapPoint
		} else {
			value += "\n"
		}
	}
	return value, nil
}

func renderString(rc *Context, n ast.Node) (string, error) {
	return string(n.(*ast.String).Value), nil
}

// Code spans rebuild their backtick run one longer than any run in the
// content. Interior newlines flatten to spaces; content that begins and
// ends with a space keeps one padding space on each side so the reparse
// strips the same amount back off.
func renderCodeSpan(rc *Context, n ast.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(rc.source))
		}
	}
	code := strings.ReplaceAll(sb.String(), "\n", " ")
	if run := mdtext.LongestRun(code, '`'); run > 0 {
		ticks := strings.Repeat("`", run+1)
		return ticks + " " + code + " " + ticks, nil
	}
	if strings.HasPrefix(code, " ") && strings.HasSuffix(code, " ") && strings.TrimSpace(code) != "" {
		return "` " + code + " `", nil
	}
	return "`" + code + "`", nil
}

func renderEmphasis(rc *Context, n ast.Node) (string, error) {
	e := n.(*ast.Emphasis)
	body, err := renderInline(rc, n)
	if err != nil {
		return "", err
	}
	marker := strings.Repeat("*", e.Level)
	return marker + body + marker, nil
}

func renderLink(rc *Context, n ast.Node) (string, error) {
	l := n.(*ast.Link)
	body, err := renderInline(rc, n)
	if err != nil {
		return "", err
	}
	return "[" + body + "]" + linkTarget(l.Destination, l.Title), nil
}

func renderImage(rc *Context, n ast.Node) (string, error) {
	img := n.(*ast.Image)
	body, err := renderInline(rc, n)
	if err != nil {
		return "", err
	}
	return "![" + body + "]" + linkTarget(img.Destination, img.Title), nil
}

// linkTarget formats the (destination "title") tail shared by links and
// images. An empty destination or one holding spaces or parentheses
// needs angle brackets to survive; destination and title bytes are
// already in source form, so only unescaped quotes in the title get an
// escape added.
func linkTarget(dest, title []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	d := string(dest)
	if d == "" || strings.ContainsAny(d, " ()") {
		sb.WriteByte('<')
		sb.WriteString(d)
		sb.WriteByte('>')
	} else {
		sb.WriteString(d)
	}
	if len(title) > 0 {
		sb.WriteString(` "`)
		sb.WriteString(escapeQuotes(title))
		sb.WriteByte('"')
	}
	sb.WriteByte(')')
	return sb.String()
}

func escapeQuotes(title []byte) string {
	var sb strings.Builder
	for i, ch := range title {
		if ch == '"' && !mdtext.Escaped(title, i) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func renderAutoLink(rc *Context, n ast.Node) (string, error) {
	a := n.(*ast.AutoLink)
	return "<" + string(a.Label(rc.source)) + ">", nil
}

func renderRawHTML(rc *Context, n ast.Node) (string, error) {
	h := n.(*ast.RawHTML)
	var sb strings.Builder
	for i := 0; i < h.Segments.Len(); i++ {
		seg := h.Segments.At(i)
		sb.Write(seg.Value(rc.source))
	}
	return sb.String(), nil
}
