package softhyphen

import (
	"errors"
	"fmt"
	"io"
)

// ErrLanguageLoadFailed is wrapped by errors of LanguageLoader implementations.
var ErrLanguageLoadFailed = errors.New("hyphenation language could not be loaded")

// Language is the immutable hyphenation data for one language: a pattern trie
// plus the exceptions shipped with the language.
//
// A Language never changes after construction. It may be shared between
// Hyphenators and goroutines.
type Language struct {
	Code       string
	patterns   *PatternTrie
	exceptions []string // "hy-phen-ation"
}

// NewLanguage bundles a pattern trie and language exceptions.
// Exceptions are spelled out with '-' at every permitted break.
func NewLanguage(code string, patterns *PatternTrie, exceptions []string) *Language {
	exc := make([]string, len(exceptions))
	copy(exc, exceptions)
	return &Language{
		Code:       code,
		patterns:   patterns,
		exceptions: exc,
	}
}

// LoadLanguage compiles patterns and reads exceptions from streaming sources.
// exceptions may be nil.
func LoadLanguage(code string, patterns PatternReader, exceptions ExceptionReader) (*Language, error) {
	trie, err := BuildPatternTrie(code, patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLanguageLoadFailed, code, err)
	}
	var exc []string
	if exceptions != nil {
		for {
			word, err := exceptions.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrLanguageLoadFailed, code, err)
			}
			exc = append(exc, word)
		}
	}
	return &Language{Code: code, patterns: trie, exceptions: exc}, nil
}

// Patterns returns the pattern trie of the language.
func (lang *Language) Patterns() *PatternTrie {
	if lang == nil {
		return nil
	}
	return lang.patterns
}

// Exceptions returns a copy of the exceptions shipped with the language.
func (lang *Language) Exceptions() []string {
	if lang == nil {
		return nil
	}
	exc := make([]string, len(lang.exceptions))
	copy(exc, lang.exceptions)
	return exc
}

// LanguageLoader loads hyphenation data for a language code.
// Implementations wrap ErrLanguageLoadFailed in their errors.
type LanguageLoader interface {
	Load(code string) (*Language, error)
}
