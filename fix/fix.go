// Package fix contains token fixes, i.e. transformations applied to the
// token sequence of a text node before it is reassembled.
package fix

import (
	"strings"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/token"
)

// TokenFix transforms a token sequence. Implementations must not modify the
// input slice.
type TokenFix interface {
	Apply(tokens []token.Token) []token.Token
}

// Chain applies fixes in order.
func Chain(fixes ...TokenFix) TokenFix {
	return chain(fixes)
}

type chain []TokenFix

func (c chain) Apply(tokens []token.Token) []token.Token {
	for _, f := range c {
		if f == nil {
			continue
		}
		tokens = f.Apply(tokens)
	}
	return tokens
}

// Hyphenation inserts hyphens into simple words. Compound words, i.e. words
// containing '-', are left to CompoundHyphenation.
type Hyphenation struct {
	H       *softhyphen.Hyphenator
	Options softhyphen.Options
	AllCaps bool // hyphenate words in all capitals, like acronyms
}

func (f Hyphenation) Apply(tokens []token.Token) []token.Token {
	if f.H == nil {
		return tokens
	}
	return rewriteWords(tokens, func(word string) string {
		if strings.Contains(word, "-") || !f.AllCaps && isAllCaps(word) {
			return word
		}
		return f.H.HyphenateWord(word, f.Options)
	})
}

// CompoundHyphenation hyphenates the parts of compound words like
// "editor-in-chief" independently.
type CompoundHyphenation struct {
	H       *softhyphen.Hyphenator
	Options softhyphen.Options
	AllCaps bool
}

func (f CompoundHyphenation) Apply(tokens []token.Token) []token.Token {
	if f.H == nil {
		return tokens
	}
	return rewriteWords(tokens, func(word string) string {
		if !strings.Contains(word, "-") || !f.AllCaps && isAllCaps(word) {
			return word
		}
		return f.hyphenateCompound(word)
	})
}

func (f CompoundHyphenation) hyphenateCompound(word string) string {
	parts := strings.Split(word, "-")
	fragments := make([]token.Token, len(parts))
	for i, p := range parts {
		fragments[i] = token.Token{Kind: token.Word, Value: p}
	}
	fragments = f.H.Hyphenate(fragments, f.Options)
	for i, t := range fragments {
		parts[i] = t.Value
	}
	return strings.Join(parts, "-")
}

// rewriteWords returns a copy of tokens with every word replaced by
// rewrite(word). If no word changes, tokens itself is returned.
func rewriteWords(tokens []token.Token, rewrite func(string) string) []token.Token {
	var out []token.Token
	for i, t := range token.Words(tokens) {
		w := rewrite(t.Value)
		if w == t.Value {
			continue
		}
		if out == nil {
			out = make([]token.Token, len(tokens))
			copy(out, tokens)
		}
		out[i].Value = w
	}
	if out == nil {
		return tokens
	}
	return out
}

func isAllCaps(word string) bool {
	return word == strings.ToUpper(word) && word != strings.ToLower(word)
}
