package obsidian

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/obsfmt/obsfmt/canonmd"
)

// NewMarkdown assembles a goldmark instance that parses the dialect and
// renders canonical markdown.
func NewMarkdown(opts ...canonmd.Option) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithRenderer(canonmd.NewRenderer(opts...)),
		goldmark.WithExtensions(Extension),
	)
}

// Format canonicalizes a document: frontmatter passes through verbatim
// and the body is reparsed and re-rendered in canonical form. Formatting
// an already canonical document returns it unchanged.
func Format(src []byte, opts ...canonmd.Option) ([]byte, error) {
	frontmatter, body := SplitFrontmatter(src)
	var buf bytes.Buffer
	buf.Write(frontmatter)
	if err := NewMarkdown(opts...).Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
