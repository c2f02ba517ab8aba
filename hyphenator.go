package softhyphen

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/softhyphen/token"
)

// SoftHyphen is U+00AD, the default hyphen inserted at break points.
const SoftHyphen = "\u00AD"

// Options control where hyphens are inserted.
type Options struct {
	Hyphen         string // inserted at every break point
	AllowTitleCase bool   // hyphenate words containing upper-case letters
	MinLength      int    // minimum word length (in runes) to consider
	MinBefore      int    // minimum number of runes before a break
	MinAfter       int    // minimum number of runes after a break
}

// DefaultOptions returns options which insert soft hyphens, keeping at least
// three characters before and two after a break, for words of five or more
// characters.
func DefaultOptions() Options {
	return Options{
		Hyphen:         SoftHyphen,
		AllowTitleCase: true,
		MinLength:      5,
		MinBefore:      3,
		MinAfter:       2,
	}
}

// Hyphenator inserts hyphens into word tokens, using the patterns and exceptions
// of one language plus custom exceptions set by the client.
//
// The zero value (as well as a Hyphenator whose language could not be loaded)
// passes all input through unchanged.
//
// A Hyphenator is not safe for concurrent use. The language data it refers to
// is immutable, however, and switching the language replaces it instead of
// changing it. Use one Hyphenator per goroutine (or a Cache guarded by the
// client) to hyphenate concurrently.
type Hyphenator struct {
	loader     LanguageLoader
	code       string // requested language code
	attempted  bool   // code has been tried
	lang       *Language
	loadErr    error
	custom     map[string]string // key => hyphenated custom exception
	customHash uint64
	merged     *exceptionTable // nil if it needs re-merging
}

// New creates an empty Hyphenator, which uses loader to load languages.
func New(loader LanguageLoader) *Hyphenator {
	h := &Hyphenator{loader: loader}
	h.custom, h.customHash = canonicalExceptions(nil)
	return h
}

// SetLanguage loads patterns and exceptions for code. On failure the
// Hyphenator is reset to pass-through and SetLanguage returns false; callers
// may use this to probe for available languages. Setting the current language
// again is a no-op.
func (h *Hyphenator) SetLanguage(code string) bool {
	if h.attempted && h.code == code {
		return h.lang != nil
	}
	h.code, h.attempted = code, true
	h.lang, h.loadErr, h.merged = nil, nil, nil
	if h.loader == nil {
		h.loadErr = ErrLanguageLoadFailed
		return false
	}
	lang, err := h.loader.Load(code)
	if err != nil {
		tracer().Infof("hyphenation turned off for language %q: %v", code, err)
		h.loadErr = err
		return false
	}
	h.lang = lang
	return true
}

// SetLanguageData installs already loaded language data, bypassing the loader.
// A nil lang resets the Hyphenator to pass-through.
func (h *Hyphenator) SetLanguageData(lang *Language) {
	h.lang, h.loadErr, h.merged = lang, nil, nil
	h.code, h.attempted = "", lang != nil
	if lang != nil {
		h.code = lang.Code
	}
}

// Language returns the code of the active language, or "" if no language is
// loaded.
func (h *Hyphenator) Language() string {
	if h == nil || h.lang == nil {
		return ""
	}
	return h.code
}

// LoadError returns the reason of the last failed SetLanguage, if any.
func (h *Hyphenator) LoadError() error {
	return h.loadErr
}

// SetCustomExceptions replaces the custom exceptions. Words are spelled out
// with '-' at every permitted break, e.g. "KING-desk". Custom exceptions win
// over language exceptions. Calling it again with equivalent input (ignoring
// order and case) keeps the merged exception table.
func (h *Hyphenator) SetCustomExceptions(words []string) {
	custom, hash := canonicalExceptions(words)
	if hash == h.customHash {
		return
	}
	h.custom, h.customHash = custom, hash
	h.merged = nil
}

// exceptions returns the merged exception table, re-merging if necessary.
func (h *Hyphenator) exceptions() *exceptionTable {
	if h.merged == nil {
		h.merged = mergeExceptions(h.lang.exceptions, h.custom)
	}
	return h.merged
}

// Exceptions lists the keys of all exceptions (language and custom) starting
// with prefix.
func (h *Hyphenator) Exceptions(prefix string) []string {
	if h == nil || h.lang == nil {
		return nil
	}
	return h.exceptions().keys(strings.ToLower(prefix))
}

func (h *Hyphenator) active(opts Options) bool {
	return h != nil && h.lang != nil && h.lang.patterns != nil &&
		opts.MinLength > 0 && opts.MinBefore > 0
}

// Hyphenate inserts opts.Hyphen into every word token at legal break points.
// Tokens of other kinds are copied unchanged. If no language is loaded, or
// opts.MinLength or opts.MinBefore are not positive, tokens is returned as is.
// Otherwise a new slice is returned and tokens is left untouched.
func (h *Hyphenator) Hyphenate(tokens []token.Token, opts Options) []token.Token {
	if !h.active(opts) {
		return tokens
	}
	exceptions := h.exceptions()
	out := make([]token.Token, len(tokens))
	for i, t := range tokens {
		if t.Kind == token.Word {
			t.Value = h.hyphenateWord(t.Value, opts, exceptions)
		}
		out[i] = t
	}
	return out
}

// HyphenateWord hyphenates a single word.
func (h *Hyphenator) HyphenateWord(word string, opts Options) string {
	if !h.active(opts) {
		return word
	}
	return h.hyphenateWord(word, opts, h.exceptions())
}

func (h *Hyphenator) hyphenateWord(word string, opts Options, exceptions *exceptionTable) string {
	length := utf8.RuneCountInString(word)
	if length < opts.MinLength {
		return word
	}
	key := strings.ToLower(word)
	if key != word && !opts.AllowTitleCase {
		return word
	}
	if utf8.RuneCountInString(key) != length {
		// lower-casing changed the shape of the word; positions would not line up
		return word
	}
	var weight func(i int) int
	if pattern, ok := exceptions.lookup(key); ok {
		weight = func(i int) int { return pattern[i] }
	} else {
		weights := h.lang.patterns.Weights(key)
		weight = func(i int) int { return weights[i] }
	}
	last := length - max(opts.MinAfter, 0)
	inEntity := entityInteriors(word, length)
	var b strings.Builder
	b.Grow(len(word) + 4*len(opts.Hyphen))
	i := 0
	for _, r := range word {
		if i >= opts.MinBefore && i <= last && weight(i)%2 == 1 && !inEntity[i] {
			b.WriteString(opts.Hyphen)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// entityInteriors marks rune positions inside character references like
// "&eacute;", where no hyphen may be inserted.
func entityInteriors(word string, length int) []bool {
	if !strings.Contains(word, "&") {
		return make([]bool, length)
	}
	inside := make([]bool, length)
	runes := []rune(word)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '&' {
			continue
		}
		end := slices.Index(runes[i:], ';')
		if end < 0 {
			break
		}
		for j := i + 1; j <= i+end && j < length; j++ {
			inside[j] = true
		}
		i += end
	}
	return inside
}
