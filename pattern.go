package softhyphen

import (
	"unicode"
)

// Boundary is the sentinel rune which pads a word on both ends during pattern
// lookup. Patterns anchored at the beginning or end of a word start or end
// with it, e.g. "_ab1" or "2ly_".
const Boundary = '_'

// Pattern is a format-agnostic hyphenation pattern representation.
//
// Sequence is the rune sequence to match (for example: "_ab", "für").
// Weights stores Liang weights by relative position: Weights[i] is the weight
// for a break immediately before Sequence[i]. Weights may be longer than
// Sequence by one entry when a pattern has a trailing weight digit.
type Pattern struct {
	Sequence []rune
	Weights  []int
}

// PatternReader yields compiled pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (sequence []rune, weights []int, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one, spelled out with
// literal '-' at every permitted break ("hy-phen-ation").
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (hyphenated string, err error)
}

// ParsePattern decodes a digit-interleaved pattern fragment.
// Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => Weights = [0,5,0,0]
//	"ab1"   => (a)(b)(1)     => Weights = [0,0,1]
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation.
func ParsePattern(s string) Pattern {
	var p Pattern
	p.Sequence, p.Weights = AppendPattern(nil, nil, s)
	return p
}

// AppendPattern decodes s like ParsePattern, appending to the given slices.
// It lets stream readers re-use buffers between patterns.
func AppendPattern(sequence []rune, weights []int, s string) ([]rune, []int) {
	wasDigit := false
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			weights = append(weights, int(ch-'0'))
			wasDigit = true
			continue
		}
		if unicode.IsSpace(ch) {
			continue
		}
		sequence = append(sequence, ch)
		if wasDigit {
			wasDigit = false
		} else {
			weights = append(weights, 0)
		}
	}
	return sequence, weights
}
