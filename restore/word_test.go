package restore

import (
	"errors"
	"testing"
)

func TestWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"olleh", "hello"},
		{"ma", "am"},
		{"AM", "AM"},
		{"pm", "pm"},
		{"1st", "1st"},
		{"22ND", "22ND"},
		{"(3rd),", "(3rd),"},
		{"12:30pm", "12:30pm"},
		{"12:30PM", "12:30pm"},
		{"9:05AM,", "9:05am,"},
		{"https://example.com/abc", "https://example.com/abc"},
		{"http://x.y", "http://x.y"},
		{"t'nac", "can't"},
		{"T'NAC", "can't"},
		{"t’now", "won't"},
		{"t’NOD", "don't"},
		{"s'ti", "it's"},
		{"m'I", "I'm"},
		{"ab12cd", "dc12ba"},
		{"olleh!", "hello!"},
		{"...", "..."},
		{"5", "5"},
		{"éfac", "ćafe"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Word(tc.in); got != tc.want {
			t.Errorf("Word(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"https://example.com", KindURL},
		{"http://a", KindURL},
		{"https://", KindWord},
		{"Am", KindMeridiem},
		{"1st", KindOrdinal},
		{"x21st!", KindOrdinal},
		{"1st2nd", KindWord},
		{"10:45am", KindClock},
		{"1:5am", KindWord},
		{"t'nac", KindContraction},
		{"t’nsi", KindContraction},
		{"olleh", KindWord},
	}
	for _, tc := range tests {
		if got := Classify(tc.in); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSpecialKindsReturnedUnchanged(t *testing.T) {
	for _, in := range []string{"https://example.com/a?b=c", "am", "PM", "1st", "(2nd)", "103rd.", "4th", "12:30pm", "7:00am"} {
		if got := Word(in); got != in {
			t.Errorf("Word(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestReverseLettersInvolution(t *testing.T) {
	for _, in := range []string{"a", "ab", "hello", "World", "abcdefghijklmnopqrstuvwxyz", "MiXeD"} {
		once, err := reverseLetters(in)
		if err != nil {
			t.Fatalf("reverseLetters(%q) error = %v", in, err)
		}
		twice, err := reverseLetters(once)
		if err != nil {
			t.Fatalf("reverseLetters(%q) error = %v", once, err)
		}
		if twice != in {
			t.Errorf("reverseLetters(reverseLetters(%q)) = %q", in, twice)
		}
	}
}

func TestReassembleMismatch(t *testing.T) {
	cells := decompose("ab1")
	letters, others := partition(cells)

	if _, err := reassemble(cells, letters[:1], others); !errors.Is(err, errPartition) {
		t.Fatalf("short letters: err = %v, want errPartition", err)
	}
	if _, err := reassemble(cells, letters, nil); !errors.Is(err, errPartition) {
		t.Fatalf("missing others: err = %v, want errPartition", err)
	}
	if _, err := reassemble(cells, append(letters, 'z'), others); !errors.Is(err, errPartition) {
		t.Fatalf("extra letters: err = %v, want errPartition", err)
	}
	got, err := reassemble(cells, letters, others)
	if err != nil || got != "ab1" {
		t.Fatalf("reassemble() = %q, %v; want ab1", got, err)
	}
}

func TestDecomposeKeepsMarksAsOthers(t *testing.T) {
	cells := decompose("é")
	if len(cells) != 2 {
		t.Fatalf("decompose(é) produced %d cells, want 2", len(cells))
	}
	if !cells[0].letter || cells[1].letter {
		t.Fatalf("decompose(é) classification = %+v", cells)
	}
}

func TestKindString(t *testing.T) {
	if KindContraction.String() != "contraction" || Kind(99).String() != "kind(99)" {
		t.Fatalf("unexpected Kind strings: %q %q", KindContraction.String(), Kind(99).String())
	}
}
