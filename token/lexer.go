package token

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxWordRun is the longest run of word characters a Tokenizer
// created by NewTokenizer accepts.
const DefaultMaxWordRun = 500

var (
	// ErrInvalidEncoding is returned for input which is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	// ErrInputTooLong is returned for input containing an overly long run of
	// word characters.
	ErrInputTooLong = errors.New("input exceeds tokenizer limits")
)

// Tokenizer splits text into tokens.
//
// MaxWordRun limits the number of consecutive word characters the input may
// contain. Values <= 0 disable the check.
type Tokenizer struct {
	MaxWordRun int
}

// NewTokenizer creates a Tokenizer with default limits.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{MaxWordRun: DefaultMaxWordRun}
}

// Tokenize splits text with a default Tokenizer.
func Tokenize(text string) ([]Token, error) {
	return NewTokenizer().Tokenize(text)
}

// Tokenize splits text into a sequence of tokens, which, concatenated,
// reproduce text byte for byte.
//
// At every position, the lexer tries to match a run of spaces, then a run of
// punctuation, then a word, in this order. Characters matching none of these
// accumulate into an Other token. Afterwards, tokens are folded to keep
// compound constructs together: a word or other fragment following an Other
// token is merged into it, and a punctuation token directly wedged between
// non-space tokens glues them into one Other token. This keeps e-mail
// addresses, URLs and similar things in one piece.
func (tz *Tokenizer) Tokenize(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}
	if tz.MaxWordRun > 0 {
		if n := longestWordRun(text); n >= tz.MaxWordRun {
			return nil, fmt.Errorf("%w: run of %d word characters", ErrInputTooLong, n)
		}
	}
	tokens := make([]Token, 0, len(text)/4+1)
	other := -1 // start of pending Other run
	for pos := 0; pos < len(text); {
		kind, n := classify(text, pos)
		if n == 0 {
			if other < 0 {
				other = pos
			}
			if n := referenceLen(text, pos); n > 0 {
				pos += n
				continue
			}
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
			continue
		}
		if other >= 0 {
			tokens = appendToken(tokens, Token{Kind: Other, Value: text[other:pos]})
			other = -1
		}
		tokens = appendToken(tokens, Token{Kind: kind, Value: text[pos : pos+n]})
		pos += n
	}
	if other >= 0 {
		tokens = appendToken(tokens, Token{Kind: Other, Value: text[other:]})
	}
	return tokens, nil
}

// classify matches a token at text[pos]. It returns n == 0 if no class
// matches.
func classify(text string, pos int) (Kind, int) {
	if n := scanRun(text, pos, isSpace); n > 0 {
		return Space, n
	}
	if n := scanRun(text, pos, isPunctuation); n > 0 {
		return Punctuation, n
	}
	if startsWord(text, pos) {
		if n := scanRun(text, pos, isWordRune); n > 0 {
			return Word, n
		}
	}
	return Other, 0
}

// scanRun returns the byte length of the maximal run at text[pos] of runes,
// or entities standing for runes, which satisfy accept.
func scanRun(text string, pos int, accept func(rune) bool) int {
	i := pos
	for i < len(text) {
		if text[i] == '&' {
			if r, n := entityAt(text, i); n > 0 && accept(r) {
				i += n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if !accept(r) {
			break
		}
		i += size
	}
	return i - pos
}

// startsWord reports whether a word may start at text[pos]: words do not
// start in the middle of a run of word characters, nor directly after '&'.
func startsWord(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return r != '&' && !isWordChar(r)
}

func longestWordRun(text string) int {
	longest, run := 0, 0
	for _, r := range text {
		if isWordChar(r) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// appendToken appends next to tokens, merging it with preceding tokens where
// they form a compound construct.
func appendToken(tokens []Token, next Token) []Token {
	n := len(tokens)
	if next.Kind != Word && next.Kind != Other || n == 0 {
		return append(tokens, next)
	}
	last := tokens[n-1]
	switch {
	case last.Kind == Other:
		tokens[n-1].Value += next.Value
		return tokens
	case next.Kind == Other && last.Kind == Word:
		tokens[n-1] = Token{Kind: Other, Value: last.Value + next.Value}
		return tokens
	case n >= 2 && last.Kind == Punctuation && tokens[n-2].Kind != Space:
		merged := tokens[n-2].Value + last.Value + next.Value
		tokens = tokens[:n-1]
		tokens[n-2] = Token{Kind: Other, Value: merged}
		return tokens
	}
	return append(tokens, next)
}
