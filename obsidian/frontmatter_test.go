package obsidian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obsfmt/obsfmt/obsidian"
)

func TestSplitFrontmatter(t *testing.T) {
	fm, body := obsidian.SplitFrontmatter([]byte("---\ntitle: x\n---\nbody\n"))
	assert.Equal(t, "---\ntitle: x\n---\n", string(fm))
	assert.Equal(t, "body\n", string(body))
}

func TestSplitFrontmatterEmptyBlock(t *testing.T) {
	fm, body := obsidian.SplitFrontmatter([]byte("---\n---\nbody\n"))
	assert.Equal(t, "---\n---\n", string(fm))
	assert.Equal(t, "body\n", string(body))
}

func TestSplitFrontmatterRejects(t *testing.T) {
	docs := []string{
		"---\ntitle: x\nbody",
		"---\nkey: [unclosed\n---\nbody\n",
		"x\n---\ny\n---\n",
		"----\na: 1\n----\n",
		"",
		"body only\n",
	}
	for _, doc := range docs {
		fm, body := obsidian.SplitFrontmatter([]byte(doc))
		assert.Nil(t, fm, "frontmatter for %q", doc)
		assert.Equal(t, doc, string(body), "body for %q", doc)
	}
}

func TestFormatKeepsFrontmatterVerbatim(t *testing.T) {
	src := "---\nlist:\n  - x\n---\n* y\n"
	assert.Equal(t, "---\nlist:\n  - x\n---\n- y\n", formatDoc(t, src))
}

func TestFormatFrontmatterOnly(t *testing.T) {
	src := "---\na: 1\n---\n"
	assert.Equal(t, src, formatDoc(t, src))
}

func TestFormatInvalidFrontmatterIsBody(t *testing.T) {
	// A dash fence over invalid YAML is ordinary markdown: a thematic
	// break, text, and a setext heading.
	src := "---\nkey: [unclosed\n---\n"
	assert.Equal(t, "---\n\n## key: [unclosed\n", formatDoc(t, src))
}
