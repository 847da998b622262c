package canonmd_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletLists(t *testing.T) {
	assert.Equal(t, "- a\n- b\n", format(t, "* a\n* b\n"))
	assert.Equal(t, "- a\n- b\n", format(t, "+ a\n+ b\n"))
	assert.Equal(t, "- a\n\n- b\n", format(t, "- a\n\n- b\n"))
	assert.Equal(t, "-\n- b\n", format(t, "-\n- b\n"))
	assert.Equal(t, "- a\n\n  b\n", format(t, "- a\n\n  b\n"))
	assert.Equal(t, "- > q\n", format(t, "- > q\n"))
	assert.Equal(t, "- a\n  ```\n  c\n  ```\n", format(t, "- a\n  ```\n  c\n  ```\n"))
}

func TestNestedLists(t *testing.T) {
	assert.Equal(t, "- a\n    - b\n", format(t, "- a\n  - b\n"))
	assert.Equal(t, "- a\n    - b\n        - c\n", format(t, "- a\n  - b\n    - c\n"))
	assert.Equal(t, "- a\n    1. b\n", format(t, "- a\n  1. b\n"))
	assert.Equal(t, "1. a\n     1. b\n", format(t, "1. a\n   1. b\n"))
}

func TestMarkerAlternation(t *testing.T) {
	// Adjacent sibling lists cycle markers so they stay distinct lists.
	assert.Equal(t, "- a\n\n* b\n", format(t, "- a\n\n* b\n"))
	assert.Equal(t, "- a\n\n* b\n\n- c\n", format(t, "- a\n\n* b\n\n- c\n"))
	assert.Equal(t, "1. a\n\n1) b\n", format(t, "1. a\n\n1) b\n"))
	// A bullet list between ordered lists does not advance the ordered cycle.
	assert.Equal(t, "- a\n\n1. b\n", format(t, "- a\n\n1. b\n"))
}

func TestOrderedListNumbering(t *testing.T) {
	assert.Equal(t, "1. a\n2. b\n3. c\n", format(t, "1. a\n1. b\n1. c\n"))
	assert.Equal(t, "08. a\n09. b\n10. c\n", format(t, "8. a\n9. b\n10. c\n"))
	assert.Equal(t, "1. a\n\n2. b\n", format(t, "1. a\n\n2. b\n"))
}

// A literal 0 marker is a real start value, not a missing one.
func TestOrderedListZeroStart(t *testing.T) {
	assert.Equal(t, "0. zero\n1. one\n", format(t, "0. zero\n1. one\n"))
	assert.Equal(t, "0. a\n1. b\n2. c\n", format(t, "0. a\n0. b\n0. c\n"))
}

func TestOrderedListPadding(t *testing.T) {
	var src strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&src, "%d. item\n", 100+i)
	}
	out := format(t, src.String())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("%d. item", 100+i), line, "line %d", i)
	}
	assert.Equal(t, out, format(t, out))
}

func TestListIdempotent(t *testing.T) {
	docs := []string{
		"- a\n- b\n",
		"- a\n\n- b\n",
		"- a\n    - b\n",
		"08. a\n09. b\n10. c\n",
		"1. a\n\n1) b\n",
		"- a\n\n* b\n\n- c\n",
		"-\n- b\n",
		"- a\n\n  b\n\n- c\n",
		"1. a\n     1. b\n",
		"0. zero\n1. one\n",
	}
	for i, doc := range docs {
		assert.Equal(t, doc, format(t, doc), "doc %d", i)
	}
}
