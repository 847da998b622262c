package canonmd

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

func renderList(rc *Context, n ast.Node) (string, error) {
	l := n.(*ast.List)
	if l.IsOrdered() {
		return renderOrderedList(rc, l)
	}
	return renderBulletList(rc, l)
}

// listLevel reports the container nesting depth of a list: any ancestry
// short of the document root counts. Nested lists get a two space
// pre-indent on their markers.
func listLevel(n ast.Node) int {
	level := 0
	for p := n.Parent(); p != nil && p.Kind() != ast.KindDocument; p = p.Parent() {
		level++
	}
	return level
}

// listMarker picks the marker family for a list. Adjacent sibling lists
// would merge on reparse if they shared a marker, so the family
// alternates along an unbroken chain of preceding lists: bullets count
// any list kind, ordered lists count only ordered ones.
func listMarker(l *ast.List) byte {
	primary, secondary := byte('-'), byte('*')
	if l.IsOrdered() {
		primary, secondary = '.', ')'
	}
	count := 1
	for prev := l.PreviousSibling(); ; prev = prev.PreviousSibling() {
		pl, ok := prev.(*ast.List)
		if !ok {
			break
		}
		if l.IsOrdered() && !pl.IsOrdered() {
			break
		}
		count++
	}
	if count%2 == 1 {
		return primary
	}
	return secondary
}

func renderBulletList(rc *Context, l *ast.List) (string, error) {
	preIndent := ""
	if listLevel(l) > 0 {
		preIndent = "  "
	}
	marker := preIndent + string(listMarker(l))
	indent := strings.Repeat(" ", len(marker)+1)
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}
	restore := rc.Indented(len(indent))
	defer restore()
	var items []string
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		item, err := rc.Render(c)
		if err != nil {
			return "", err
		}
		items = append(items, prefixItem(item, marker, indent))
	}
	return strings.Join(items, sep), nil
}

// Ordered item numbers are right aligned with zero padding to the width
// of the largest number in the list, so every marker is the same width
// and continuation indents line up.
func renderOrderedList(rc *Context, l *ast.List) (string, error) {
	preIndent := ""
	if listLevel(l) > 0 {
		preIndent = "  "
	}
	delim := string(listMarker(l))
	start := l.Start
	pad := len(strconv.Itoa(l.ChildCount() + start - 1))
	indent := strings.Repeat(" ", len(preIndent)+pad+len(delim)+1)
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}
	restore := rc.Indented(len(indent))
	defer restore()
	var items []string
	num := start
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		item, err := rc.Render(c)
		if err != nil {
			return "", err
		}
		digits := strconv.Itoa(num)
		marker := preIndent + strings.Repeat("0", pad-len(digits)) + digits + delim
		items = append(items, prefixItem(item, marker, indent))
		num++
	}
	return strings.Join(items, sep), nil
}

func renderListItem(rc *Context, n ast.Node) (string, error) {
	sep := "\n"
	if l, ok := n.Parent().(*ast.List); ok && !l.IsTight {
		sep = "\n\n"
	}
	parts, err := rc.RenderChildren(n)
	if err != nil {
		return "", err
	}
	body := JoinBlocks(parts, sep)
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	return body, nil
}

// prefixItem attaches the marker to an item's first line and indents its
// continuation lines, leaving blank lines unpadded.
func prefixItem(item, marker, indent string) string {
	lines := strings.Split(item, "\n")
	for i, line := range lines {
		switch {
		case i == 0 && line == "":
			lines[i] = marker
		case i == 0:
			lines[i] = marker + " " + line
		case line == "":
			// keep blank
		default:
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
