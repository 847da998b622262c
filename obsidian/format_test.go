package obsidian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsfmt/obsfmt/canonmd"
	"github.com/obsfmt/obsfmt/obsidian"
)

func formatDocOpts(t *testing.T, src string, opts ...canonmd.Option) string {
	t.Helper()
	out, err := obsidian.Format([]byte(src), opts...)
	require.NoError(t, err)
	return string(out)
}

func TestFormatDocument(t *testing.T) {
	src := "---\n" +
		"title: Demo\n" +
		"tags: [vault]\n" +
		"---\n" +
		"# Notes\n" +
		"\n" +
		"Intro with [[Basics]] and  a  ![[chart.png]].\n" +
		"\n" +
		"> [!warning]- Careful\n" +
		"> body line one\n" +
		">\n" +
		"> body line two\n" +
		"\n" +
		"* item\n" +
		"* another\n" +
		"  * nested\n" +
		"\n" +
		"8. eight\n" +
		"9. nine\n" +
		"10. ten\n" +
		"\n" +
		"```go\n" +
		"x := 1\n" +
		"```\n" +
		"\n" +
		"Final `code` para.\n"
	golden := "---\n" +
		"title: Demo\n" +
		"tags: [vault]\n" +
		"---\n" +
		"# Notes\n" +
		"\n" +
		"Intro with [[Basics]] and  a  ![[chart.png]].\n" +
		"\n" +
		"> [!warning]- Careful\n" +
		"> body line one\n" +
		">\n" +
		"> body line two\n" +
		"\n" +
		"- item\n" +
		"- another\n" +
		"    - nested\n" +
		"\n" +
		"08. eight\n" +
		"09. nine\n" +
		"10. ten\n" +
		"\n" +
		"```go\n" +
		"x := 1\n" +
		"```\n" +
		"\n" +
		"Final `code` para.\n"
	assert.Equal(t, golden, formatDoc(t, src))
	assert.Equal(t, golden, formatDoc(t, golden))
}

func TestFormatWrapSkipsCalloutHeader(t *testing.T) {
	src := "> [!note] a long custom title here\n> aaa\n> bbb\n"
	want := "> [!note] a long custom title here\n> aaa bbb\n"
	assert.Equal(t, want, formatDocOpts(t, src, canonmd.WithNoWrap()))
	assert.Equal(t, want, formatDocOpts(t, want, canonmd.WithNoWrap()))
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", formatDoc(t, ""))
}
