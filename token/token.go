// Package token splits text into classified lexical tokens: spaces,
// punctuation, words, and everything else.
//
// Text may contain HTML entities and numeric character references; they are
// classified by the character they stand for, but are never decoded. The
// values of all tokens, concatenated, reproduce the input exactly (see Join).
//
// Compound constructs like URLs and e-mail addresses are kept together as
// Other tokens instead of being split into alternating words and punctuation.
package token

import (
	"iter"
	"strings"
)

// Kind classifies a token.
type Kind int8

// Token kinds
const (
	Space Kind = iota
	Punctuation
	Word
	Other
)

func (k Kind) String() string {
	switch k {
	case Space:
		return "space"
	case Punctuation:
		return "punctuation"
	case Word:
		return "word"
	case Other:
		return "other"
	}
	return "invalid"
}

// Token is a classified, contiguous fragment of text.
type Token struct {
	Kind  Kind
	Value string
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Value + ")"
}

// Join reassembles text from a token sequence.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Words iterates over the word tokens of a sequence, together with their
// index.
func Words(tokens []Token) iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range tokens {
			if t.Kind != Word {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}
