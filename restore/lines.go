package restore

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// isLineBreak reports the characters that end a line. This is wider than
// "\n": carriage returns, vertical tab, form feed, the file/group/record
// separators, NEL and the Unicode line and paragraph separators also count.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// splitLines splits s at line breaks, treating "\r\n" as one break. A break at
// the very end of s does not start another line, so "a\n" is one line and ""
// is none.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// splitWords splits a line on runs of whitespace.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, isSpace)
}
