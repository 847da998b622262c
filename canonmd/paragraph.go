package canonmd

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"

	"github.com/obsfmt/obsfmt/internal/mdtext"
)

// Paragraph text renders as is, so a line that happens to begin like
// block syntax would be promoted on reparse. guardLine rewrites each
// rendered line just enough to keep it a paragraph line: one escape for
// marker style lines, a four space indent for raw HTML openers. The
// guards run in a fixed order; each assumes the earlier ones have
// already run.
func renderParagraph(rc *Context, n ast.Node) (string, error) {
	body, err := renderInline(rc, n)
	if err != nil {
		return "", err
	}
	if rc.doWrap() {
		width := rc.wrapWidth()
		sections := strings.Split(body, "\n")
		for i, s := range sections {
			sections[i] = wrapSection(s, width)
		}
		body = strings.Join(sections, "\n")
	}
	body = mdtext.DecimalifyLeading(body)
	body = mdtext.DecimalifyTrailing(body)
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = guardLine(line)
	}
	return strings.Join(lines, "\n"), nil
}

func guardLine(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	indent, content := mdtext.SeparateIndent(line)
	for _, guard := range lineGuards {
		content = guard(content)
	}
	return indent + content
}

type lineGuard func(content string) string

var lineGuards = []lineGuard{
	guardATXHeading,
	guardBlockquote,
	guardBulletMarker,
	guardOrderedParen,
	guardOrderedDot,
	guardThematicBreak,
	guardSetextUnderline,
	guardHTMLBlock,
}

var (
	atxHeadingRE   = regexp.MustCompile(`^#{1,6}( |\t|$)`)
	bulletMarkerRE = regexp.MustCompile(`^[-*+]( |\t|$)`)
	orderedParenRE = regexp.MustCompile(`^[0-9]+\)( |\t|$)`)
	orderedDotRE   = regexp.MustCompile(`^[0-9]+\.( |\t|$)`)
)

func guardATXHeading(content string) string {
	if atxHeadingRE.MatchString(content) {
		return "\\" + content
	}
	return content
}

func guardBlockquote(content string) string {
	if strings.HasPrefix(content, ">") {
		return "\\" + content
	}
	return content
}

func guardBulletMarker(content string) string {
	if bulletMarkerRE.MatchString(content) {
		return "\\" + content
	}
	return content
}

func guardOrderedParen(content string) string {
	if orderedParenRE.MatchString(content) {
		return strings.Replace(content, ")", "\\)", 1)
	}
	return content
}

func guardOrderedDot(content string) string {
	if orderedDotRE.MatchString(content) {
		return strings.Replace(content, ".", "\\.", 1)
	}
	return content
}

// A thematic break allows interior spaces and tabs, so the check runs on
// the squeezed line. Escaping the first marker character is enough to
// demote the whole line.
func guardThematicBreak(content string) string {
	squeezed := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, content)
	if len(squeezed) < 3 {
		return content
	}
	switch {
	case allByte(squeezed, '*'):
		return strings.Replace(content, "*", "\\*", 1)
	case allByte(squeezed, '-'):
		return strings.Replace(content, "-", "\\-", 1)
	case allByte(squeezed, '_'):
		return strings.Replace(content, "_", "\\_", 1)
	}
	return content
}

// A line of all dashes or all equals signs would underline the line
// before it on reparse, turning the paragraph into a setext heading.
func guardSetextUnderline(content string) string {
	trimmed := strings.Trim(content, " \t")
	switch {
	case allByte(trimmed, '-'):
		return strings.Replace(content, "-", "\\-", 1)
	case allByte(trimmed, '='):
		return strings.Replace(content, "=", "\\=", 1)
	}
	return content
}

func allByte(s string, ch byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ch {
			return false
		}
	}
	return len(s) > 0
}

// htmlBlockOpeners are the raw HTML block start conditions that can
// interrupt a paragraph (CommonMark types 1 through 6; type 7 cannot
// interrupt and needs no guard). A matching line is indented four
// spaces; backslash escapes do not work inside raw HTML.
var htmlBlockOpeners = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^<(script|pre|style|textarea)(\s|>|$)`),
	regexp.MustCompile(`^<!--`),
	regexp.MustCompile(`^<\?`),
	regexp.MustCompile(`^<![A-Z]`),
	regexp.MustCompile(`^<!\[CDATA\[`),
	regexp.MustCompile(`(?i)^</?(` + htmlBlockNames + `)(\s|/?>|$)`),
}

const htmlBlockNames = "address|article|aside|base|basefont|blockquote|body|" +
	"caption|center|col|colgroup|dd|details|dialog|dir|div|dl|dt|fieldset|" +
	"figcaption|figure|footer|form|frame|frameset|h1|h2|h3|h4|h5|h6|head|" +
	"header|hr|html|iframe|legend|li|link|main|menu|menuitem|nav|noframes|" +
	"ol|optgroup|option|p|param|section|source|summary|table|tbody|td|" +
	"tfoot|th|thead|title|tr|track|ul"

func guardHTMLBlock(content string) string {
	for _, re := range htmlBlockOpeners {
		if re.MatchString(content) {
			return "    " + content
		}
	}
	return content
}

// wrapPoint marks a reflow opportunity in inline text while wrapping is
// active: prose space runs and soft breaks collapse to it, while spaces
// inside code spans, destinations, and raw HTML stay literal. Consumers
// that do not reflow resolve it back to a single space.
const wrapPoint = "\x00"

var proseSpaceRE = regexp.MustCompile(`[ \t]+`)

func resolveWrapPoints(s string) string {
	return strings.ReplaceAll(s, wrapPoint, " ")
}

// wrapSection greedily reflows one hard-break-delimited section at the
// marked wrap points, measuring display width so wide runes count for
// what they occupy. A width of 0 joins the section onto one line.
func wrapSection(s string, width int) string {
	var words []string
	for _, w := range strings.Split(s, wrapPoint) {
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return ""
	}
	if width <= 0 {
		return strings.Join(words, " ")
	}
	var sb strings.Builder
	lineWidth := 0
	for i, w := range words {
		ww := runewidth.StringWidth(w)
		switch {
		case i == 0:
			sb.WriteString(w)
			lineWidth = ww
		case lineWidth+1+ww > width:
			sb.WriteByte('\n')
			sb.WriteString(w)
			lineWidth = ww
		default:
			sb.WriteByte(' ')
			sb.WriteString(w)
			lineWidth += 1 + ww
		}
	}
	return sb.String()
}
