package restore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Kind is the category a word falls into. Categories are checked in the
// order they are declared; the first match wins.
type Kind int

const (
	KindURL Kind = iota
	KindMeridiem
	KindOrdinal
	KindClock
	KindContraction
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindMeridiem:
		return "meridiem"
	case KindOrdinal:
		return "ordinal"
	case KindClock:
		return "clock"
	case KindContraction:
		return "contraction"
	case KindWord:
		return "word"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	urlRE     = regexp.MustCompile(`^https?://\S+`)
	ordinalRE = regexp.MustCompile(`(?i)^(\D*)(\d+)(st|nd|rd|th)(\D*)$`)
	clockRE   = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2})(am|pm)`)
)

// errPartition reports that the letter and other sequences did not line up
// with the classified characters they were built from.
var errPartition = errors.New("letter/other partition mismatch")

func classifyWord(token string, table Contractions) Kind {
	switch {
	case urlRE.MatchString(token):
		return KindURL
	case strings.EqualFold(token, "am") || strings.EqualFold(token, "pm"):
		return KindMeridiem
	case ordinalRE.MatchString(token):
		return KindOrdinal
	case clockRE.MatchString(token):
		return KindClock
	}
	if _, ok := table.Lookup(token); ok {
		return KindContraction
	}
	return KindWord
}

// normalizeWord restores a single whitespace-free token.
func normalizeWord(token string, table Contractions) (string, error) {
	switch classifyWord(token, table) {
	case KindURL, KindMeridiem, KindOrdinal:
		return token, nil
	case KindClock:
		return restoreClock(token), nil
	case KindContraction:
		v, _ := table.Lookup(token)
		return v, nil
	default:
		return reverseLetters(token)
	}
}

// restoreClock lower-cases the meridiem of an "h:mmam" token and keeps the
// rest of the token as is.
func restoreClock(token string) string {
	loc := clockRE.FindStringSubmatchIndex(token)
	if loc == nil {
		return token
	}
	return token[:loc[3]] + strings.ToLower(token[loc[4]:loc[5]]) + token[loc[5]:]
}

// cell is one decomposed character together with its classification.
type cell struct {
	r      rune
	letter bool
}

func isLetterCell(r rune) bool {
	return r == '\'' || unicode.IsLetter(r)
}

// decompose splits token into NFD characters and classifies each one once.
// Combining marks are not letters, so an accent stays where it was while the
// base letters around it are reordered.
func decompose(token string) []cell {
	nfd := norm.NFD.String(token)
	cells := make([]cell, 0, len(nfd))
	for _, r := range nfd {
		cells = append(cells, cell{r: r, letter: isLetterCell(r)})
	}
	return cells
}

func partition(cells []cell) (letters, others []rune) {
	for _, c := range cells {
		if c.letter {
			letters = append(letters, c.r)
		} else {
			others = append(others, c.r)
		}
	}
	return letters, others
}

// reassemble walks cells and fills letter slots from letters and the rest
// from others, both consumed in order.
func reassemble(cells []cell, letters, others []rune) (string, error) {
	var b strings.Builder
	b.Grow(len(cells) * 2)
	li, oi := 0, 0
	for _, c := range cells {
		if c.letter {
			if li >= len(letters) {
				return "", fmt.Errorf("%w: ran out of letters at %d", errPartition, li)
			}
			b.WriteRune(letters[li])
			li++
			continue
		}
		if oi >= len(others) {
			return "", fmt.Errorf("%w: ran out of others at %d", errPartition, oi)
		}
		b.WriteRune(others[oi])
		oi++
	}
	if li != len(letters) || oi != len(others) {
		return "", fmt.Errorf("%w: %d/%d letters and %d/%d others used", errPartition, li, len(letters), oi, len(others))
	}
	return b.String(), nil
}

// reverseLetters reverses the letters of token in place, leaving digits,
// punctuation and combining marks at their positions, and returns the
// result in NFC.
func reverseLetters(token string) (string, error) {
	cells := decompose(token)
	letters, others := partition(cells)
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	out, err := reassemble(cells, letters, others)
	if err != nil {
		return "", err
	}
	return norm.NFC.String(out), nil
}
