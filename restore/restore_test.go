package restore

import (
	"errors"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single word", "olleh", "hello"},
		{"contraction and word", "t'nac ydaer", "can't ready"},
		{"two words", "dlrow olleh", "world hello"},
		{"clock kept", "12:30pm", "12:30pm"},
		{"ordinal kept", "1st", "1st"},
		{"url kept", "https://example.com/abc", "https://example.com/abc"},
		{"url among words", "ees https://example.com/abc won", "see https://example.com/abc now"},
		{"meridiem kept", "ta 5 pm", "at 5 pm"},
		{"blank line kept", "olleh\n\ndlrow", "hello\n\nworld"},
		{"crlf", "olleh\r\ndlrow", "hello\nworld"},
		{"spaces collapse", "  olleh   dlrow  ", "hello world"},
		{"whitespace only", "   \t ", ""},
		{"trailing newline", "olleh\n", "hello"},
		{"lone newline", "\n", ""},
		{"blank line with spaces", "a\n   \nb", "a\n\nb"},
		{"punctuation stays", "!olleh ,olleh", "!hello ,hello"},
		{"contraction with trailing punctuation", "t'nac!", "can't!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.in); got != tc.want {
				t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTextPreservesLineAndWordCounts(t *testing.T) {
	inputs := []string{
		"olleh dlrow\nt'nac  ydaer\n\n1st 12:30pm https://example.com",
		"éfac ,ab12cd\n\n\n...",
		"a\r\nb\rc\nd",
		"eno owt eerht",
	}
	for _, in := range inputs {
		out := Text(in)
		inLines := splitLines(in)
		outLines := strings.Split(out, "\n")
		if len(inLines) != len(outLines) {
			t.Fatalf("line count for %q: got %d, want %d (%q)", in, len(outLines), len(inLines), out)
		}
		for i := range inLines {
			if got, want := len(splitWords(outLines[i])), len(splitWords(inLines[i])); got != want {
				t.Fatalf("word count for line %d of %q: got %d, want %d", i, in, got, want)
			}
		}
	}
}

func TestRestorerCustomContractions(t *testing.T) {
	table, err := LoadContractions(strings.NewReader(`"t'nia": "ain't"`))
	if err != nil {
		t.Fatalf("LoadContractions() error = %v", err)
	}
	r := New(Options{Contractions: &table})
	if got := r.Text("t'nia t'nac"); got != "ain't can't" {
		// "t'nac" is not in the custom table but reverses to the same spelling.
		t.Fatalf("Text() = %q, want %q", got, "ain't can't")
	}
	if got := r.Word("t’nac"); got == "can't" {
		t.Fatalf("t’nac should not resolve without the built-in table, got %q", got)
	}
}

func TestRestorerFallbackCallback(t *testing.T) {
	var gotToken string
	var gotErr error
	r := New(Options{OnFallback: func(token string, err error) {
		gotToken = token
		gotErr = err
	}})
	r.fallback("xyz", errPartition)
	if gotToken != "xyz" || !errors.Is(gotErr, errPartition) {
		t.Fatalf("fallback callback got (%q, %v)", gotToken, gotErr)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\rb", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
		{"a\u2028b", []string{"a", "b"}},
	}
	for _, tc := range tests {
		got := splitLines(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("splitLines(%q) = %q, want %q", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("splitLines(%q) = %q, want %q", tc.in, got, tc.want)
			}
		}
	}
}
