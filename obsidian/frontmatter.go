package obsidian

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

var frontmatterFence = []byte("---")

// SplitFrontmatter separates a leading YAML frontmatter block from the
// document body. The block must open with a --- fence on the very first
// line, close with another --- fence, and parse as YAML; otherwise the
// whole input is body. The returned frontmatter slice includes both
// fence lines and passes through formatting untouched.
func SplitFrontmatter(src []byte) (frontmatter, body []byte) {
	if !bytes.HasPrefix(src, frontmatterFence) {
		return nil, src
	}
	nl := bytes.IndexByte(src, '\n')
	if nl < 0 || !isFenceLine(src[:nl]) {
		return nil, src
	}
	for offset := nl + 1; offset <= len(src); {
		line := src[offset:]
		next := len(src)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if isFenceLine(line) {
			if content := src[nl+1 : offset]; len(bytes.TrimSpace(content)) > 0 {
				var doc any
				if yaml.Unmarshal(content, &doc) != nil {
					return nil, src
				}
			}
			return src[:next], src[next:]
		}
		if next == len(src) {
			break
		}
		offset = next
	}
	return nil, src
}

func isFenceLine(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, " \t\r"), frontmatterFence)
}
