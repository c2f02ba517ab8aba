package token

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Character classes used by the lexer. They operate on runes; HTML entities
// are classified by the rune they decode to (see entityAt).

const (
	softHyphen   = '\u00AD'
	hyphen       = '\u2010'
	nbHyphen     = '\u2011'
	zeroWidthSp  = '\u200B'
	zeroWidthNJ  = '\u200C'
	zeroWidthJ   = '\u200D'
	maxEntityLen = 40 // longest entity spelling we care about, including '&' and ';'
)

// isWordChar reports whether r is a word character in the Unicode sense:
// letters, digits, marks and connector punctuation like '_'.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) ||
		unicode.Is(unicode.Pc, r)
}

// isZeroWidth is true for the zero-width space, non-joiner and joiner.
func isZeroWidth(r rune) bool {
	return r == zeroWidthSp || r == zeroWidthNJ || r == zeroWidthJ
}

// isLetterConnector reports runes which may glue the parts of a word together.
func isLetterConnector(r rune) bool {
	switch r {
	case '-', '_', softHyphen, hyphen, nbHyphen:
		return true
	}
	return isZeroWidth(r)
}

func isSpace(r rune) bool {
	if isZeroWidth(r) {
		return false
	}
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r)
}

func isPunctuation(r rune) bool {
	switch r {
	case '&', '/', '@', softHyphen:
		return false
	}
	return !isWordChar(r) && !isSpace(r) && !isZeroWidth(r)
}

// isWordRune is true for runes which may be part of a word token: ASCII word
// characters, '-' and '/', letters of the Latin script (including combining
// diacritics), and letter connectors.
func isWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			r == '_' || r == '-' || r == '/'
	}
	return unicode.Is(unicode.Latin, r) || (r >= 0x0300 && r <= 0x036F) ||
		isLetterConnector(r)
}

// referenceLen returns the byte length of a syntactically well-formed
// character reference at text[pos], or 0. Whether the reference names a
// known entity is not checked.
func referenceLen(text string, pos int) int {
	if text[pos] != '&' {
		return 0
	}
	end := pos + 1
	limit := min(len(text), pos+maxEntityLen)
	for end < limit && text[end] != ';' {
		if !isEntityByte(text[end]) {
			return 0
		}
		end++
	}
	if end >= limit || end == pos+1 || !wellFormedReference(text[pos:end+1]) {
		return 0
	}
	return end + 1 - pos
}

// entityAt checks for an HTML character reference at text[pos], which must
// be '&'. Recognized are named entities ("&nbsp;"), decimal ("&#160;") and
// hexadecimal ("&#xa0;") references, terminated by ';'. It returns the rune
// the reference stands for and the length of its spelling, or n == 0 if there
// is no reference representing a single rune. Numeric references outside the
// range of valid code points do not represent a rune, even though HTML
// decodes them to U+FFFD.
func entityAt(text string, pos int) (r rune, n int) {
	n = referenceLen(text, pos)
	if n == 0 {
		return 0, 0
	}
	ref := text[pos : pos+n]
	decoded := html.UnescapeString(ref)
	if decoded == ref || utf8.RuneCountInString(decoded) != 1 {
		return 0, 0
	}
	r, _ = utf8.DecodeRuneInString(decoded)
	if r == utf8.RuneError && !spellsReplacementChar(ref) {
		return 0, 0
	}
	return r, n
}

// spellsReplacementChar reports whether a numeric reference literally denotes
// U+FFFD.
func spellsReplacementChar(ref string) bool {
	body := ref[1 : len(ref)-1]
	if body[0] != '#' {
		return false
	}
	digits, base := body[1:], 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits, base = digits[1:], 16
	}
	cp, err := strconv.ParseUint(digits, base, 32)
	return err == nil && cp == utf8.RuneError
}

func isEntityByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '#'
}

// wellFormedReference checks the syntax of "&...;".
func wellFormedReference(ref string) bool {
	body := ref[1 : len(ref)-1]
	if body[0] != '#' {
		for i := 0; i < len(body); i++ {
			if body[i] == '#' {
				return false
			}
		}
		return body[0] >= 'a' && body[0] <= 'z' || body[0] >= 'A' && body[0] <= 'Z'
	}
	digits := body[1:]
	hex := false
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		hex, digits = true, digits[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			return false
		}
	}
	return true
}
