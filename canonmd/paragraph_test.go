package canonmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardLine(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"atx heading", "# not a heading", `\# not a heading`},
		{"atx deep", "###### six", `\###### six`},
		{"atx seven hashes passes", "####### seven", "####### seven"},
		{"atx no space passes", "#hashtag", "#hashtag"},
		{"blockquote", "> not a quote", `\> not a quote`},
		{"blockquote bare", ">", `\>`},
		{"bullet dash", "- not a list", `\- not a list`},
		{"bullet star", "* not a list", `\* not a list`},
		{"bullet plus", "+ not a list", `\+ not a list`},
		{"bullet bare", "-", `\-`},
		{"bullet no space passes", "-not a list", "-not a list"},
		{"ordered dot", "1. not a list", `1\. not a list`},
		{"ordered paren", "1) not a list", `1\) not a list`},
		{"ordered long", "100. x", `100\. x`},
		{"ordered no space passes", "1.not a list", "1.not a list"},
		{"thematic stars", "***", `\***`},
		{"thematic spaced", "* * *", `\* * *`},
		{"thematic underscores", "___", `\___`},
		{"thematic trailing space", "--- ", `\---`},
		{"setext dashes", "--", `\--`},
		{"setext equals", "===", `\===`},
		{"setext single equals", "=", `\=`},
		{"indent preserved", "  # indented", `  \# indented`},
		{"html script", "<script src=x>", "    <script src=x>"},
		{"html comment", "<!-- note -->", "    <!-- note -->"},
		{"html processing", "<?php", "    <?php"},
		{"html doctype", "<!DOCTYPE html>", "    <!DOCTYPE html>"},
		{"html cdata", "<![CDATA[x]]>", "    <![CDATA[x]]>"},
		{"html block tag", "<div>", "    <div>"},
		{"html closing tag", "</table>", "    </table>"},
		{"html case folded", "<DIV>", "    <DIV>"},
		{"html type seven passes", "<video>", "<video>"},
		{"plain", "plain text", "plain text"},
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"interior markers pass", "a - b - c", "a - b - c"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guardLine(tc.in))
		})
	}
}

func TestGuardLineStable(t *testing.T) {
	// A guarded line reparses as plain text, so guarding the raw text of
	// that reparse changes nothing further.
	for _, in := range []string{
		"# not a heading",
		"> not a quote",
		"- not a list",
		"1. not a list",
		"***",
		"===",
	} {
		once := guardLine(in)
		assert.Equal(t, once, guardLine(once), "guarding %q twice", in)
	}
}

func TestWrapSection(t *testing.T) {
	assert.Equal(t, "", wrapSection("", 10))
	assert.Equal(t, "", wrapSection("\x00\x00", 10))
	assert.Equal(t, "a b c", wrapSection("a\x00b\x00c", 0))
	assert.Equal(t, "aaa bbb\nccc", wrapSection("aaa\x00bbb\x00ccc", 7))
	assert.Equal(t, "aaa\nbbb\nccc", wrapSection("aaa\x00bbb\x00ccc", 3))
	// A word longer than the width still lands alone on its line.
	assert.Equal(t, "aaaaaa\nb", wrapSection("aaaaaa\x00b", 4))
	// Wide runes count for their display width.
	assert.Equal(t, "日本\n語", wrapSection("日本\x00語", 4))
	assert.Equal(t, "日本 語", wrapSection("日本\x00語", 7))
}
