// Package mdtext provides low level text helpers shared by the dialect
// scanners and the canonical renderer: backslash escape detection, indent
// splitting, and whitespace hardening.
package mdtext

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Escaped reports whether the byte at pos is escaped by the run of
// backslashes immediately before it. An odd length run escapes, an even
// one resolves to literal backslashes.
func Escaped(src []byte, pos int) bool {
	return EscapedBy(src, pos, 0)
}

// EscapedBy generalizes Escaped over run parity: it reports whether the
// backslash run ending just before pos has nonzero length n with
// n mod 2 != parity. The backward scan stops at the start of src.
func EscapedBy(src []byte, pos, parity int) bool {
	run := 0
	for i := pos - 1; i >= 0 && i < len(src) && src[i] == '\\'; i-- {
		run++
	}
	if run == 0 {
		return false
	}
	return run%2 != parity
}

// SeparateIndent splits a line into its leading whitespace run and the
// remaining content.
func SeparateIndent(line string) (indent, content string) {
	i := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

// DecimalifyLeading replaces a leading whitespace rune with its decimal
// character reference so the space survives a later reparse.
func DecimalifyLeading(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	if !unicode.IsSpace(r) {
		return text
	}
	return fmt.Sprintf("&#%d;%s", r, text[size:])
}

// DecimalifyTrailing is DecimalifyLeading for the final rune.
func DecimalifyTrailing(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeLastRuneInString(text)
	if !unicode.IsSpace(r) {
		return text
	}
	return fmt.Sprintf("%s&#%d;", text[:len(text)-size], r)
}

// LongestRun returns the length of the longest consecutive run of ch in s.
func LongestRun(s string, ch byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != ch {
			run = 0
			continue
		}
		if run++; run > longest {
			longest = run
		}
	}
	return longest
}
