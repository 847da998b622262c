package obsidian

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/obsfmt/obsfmt/internal/mdtext"
)

var (
	linkOpen  = []byte("[[")
	embedOpen = []byte("![[")
	linkClose = []byte("]]")
)

// ScanTarget reports whether line begins with a complete wikilink or
// embed span. It returns the prefix length (2 for [[, 3 for ![[) and the
// offset of the unescaped ]] terminator. The terminator search restarts
// past escaped occurrences rather than failing on them.
func ScanTarget(line []byte) (pre, end int, ok bool) {
	pre = prefixLen(line)
	if pre == 0 {
		return 0, 0, false
	}
	end, ok = findClose(line, pre)
	return pre, end, ok
}

func prefixLen(line []byte) int {
	switch {
	case bytes.HasPrefix(line, embedOpen):
		return 3
	case bytes.HasPrefix(line, linkOpen):
		return 2
	}
	return 0
}

// findClose finds the nearest unescaped ]] in line at or after from.
func findClose(line []byte, from int) (int, bool) {
	for i := from; i <= len(line)-2; {
		j := bytes.Index(line[i:], linkClose)
		if j < 0 {
			break
		}
		at := i + j
		if mdtext.Escaped(line, at) {
			i = at + 2
			continue
		}
		return at, true
	}
	return 0, false
}

// linkParser recognizes [[target]] and ![[target]] spans. It registers
// ahead of the standard link parser so double brackets win over link
// label syntax.
type linkParser struct{}

// NewLinkParser returns the inline parser for wikilink and embed spans.
func NewLinkParser() parser.InlineParser { return &linkParser{} }

// Trigger implements parser.InlineParser.
func (p *linkParser) Trigger() []byte { return []byte{'!', '['} }

// Parse implements parser.InlineParser.
func (p *linkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	pre := prefixLen(line)
	if pre == 0 {
		return nil
	}
	if mdtext.Escaped(block.Source(), seg.Start) {
		return nil
	}
	if end, ok := findClose(line, pre); ok {
		content := make([]byte, end-pre)
		copy(content, line[pre:end])
		block.Advance(end + 2)
		return newTarget(pre, content)
	}
	return p.parseMultiline(block, line, pre)
}

// parseMultiline continues the terminator search across the remaining
// lines of the inline block. Escape runs never span a newline, so each
// line is scanned independently.
func (p *linkParser) parseMultiline(block text.Reader, first []byte, pre int) ast.Node {
	startLine, startSeg := block.Position()
	var buf bytes.Buffer
	buf.Write(first[pre:])
	for {
		block.AdvanceLine()
		line, _ := block.PeekLine()
		if line == nil {
			block.SetPosition(startLine, startSeg)
			return nil
		}
		if end, ok := findClose(line, 0); ok {
			buf.Write(line[:end])
			block.Advance(end + 2)
			return newTarget(pre, buf.Bytes())
		}
		buf.Write(line)
	}
}

func newTarget(pre int, content []byte) ast.Node {
	if pre == len(embedOpen) {
		return NewEmbed(content)
	}
	return NewWikiLink(content)
}
