package restore

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzText(f *testing.F) {
	f.Add("olleh dlrow")
	f.Add("t'nac ydaer")
	f.Add("t’now")
	f.Add("12:30pm 1st https://example.com/abc")
	f.Add("a\n\nb")
	f.Add("a\r\nb\rc")
	f.Add("   ")
	f.Add("éfac ñaps")
	f.Add("é́")
	f.Add("́abc")
	f.Add("ﬁ ǅ ẞ")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, s string) {
		if s == "" || !utf8.ValidString(s) {
			return
		}
		out := Text(s)
		in := splitLines(s)
		got := strings.Split(out, "\n")
		if len(in) == 0 {
			if out != "" {
				t.Fatalf("no lines in %q but output %q", s, out)
			}
			return
		}
		if len(got) != len(in) {
			t.Fatalf("line count changed:\ninput:  %q\noutput: %q", s, out)
		}
	})
}

func FuzzWord(f *testing.F) {
	f.Add("olleh")
	f.Add("t'nac")
	f.Add("1st")
	f.Add("12:30PM")
	f.Add("éfac")
	f.Add("İ")
	f.Add("...")

	f.Fuzz(func(t *testing.T, w string) {
		if w == "" || !utf8.ValidString(w) || strings.ContainsFunc(w, isSpace) {
			return
		}
		if got := Word(w); got == "" {
			t.Fatalf("Word(%q) returned empty output", w)
		}
	})
}
