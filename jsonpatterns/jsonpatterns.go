// Package jsonpatterns reads hyphenation languages from JSON files of the form
//
//	{
//	  "language": "en-US",
//	  "patterns": [ "_ab1", "a5ban", ... ],
//	  "exceptions": [ "as-so-ciate", ... ]
//	}
//
// Patterns use '_' to mark word boundaries. Metadata keys "language",
// "source_url", "copyright" and "version" are optional.
package jsonpatterns

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/softhyphen"
)

// File is the decoded content of a JSON language file.
type File struct {
	Language   string   `json:"language,omitempty"`
	SourceURL  string   `json:"source_url,omitempty"`
	Copyright  string   `json:"copyright,omitempty"`
	Version    string   `json:"version,omitempty"`
	Patterns   []string `json:"patterns"`
	Exceptions []string `json:"exceptions"`
}

// Decode reads a JSON language file. A file without a "patterns" array is an
// error.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("malformed language file: %w", err)
	}
	if f.Patterns == nil {
		return nil, fmt.Errorf("malformed language file: no patterns")
	}
	return &f, nil
}

// LoadLanguage reads a JSON language file and compiles it.
func LoadLanguage(code string, r io.Reader) (*softhyphen.Language, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", softhyphen.ErrLanguageLoadFailed, code, err)
	}
	return softhyphen.LoadLanguage(code, NewPatternReader(f.Patterns), NewExceptionReader(f.Exceptions))
}

// PatternReader streams decoded patterns to softhyphen.BuildPatternTrie.
type PatternReader struct {
	patterns []string
	index    int
	sequence []rune
	weights  []int
}

// NewPatternReader creates a reader over a list of patterns like "a5ban".
func NewPatternReader(patterns []string) *PatternReader {
	return &PatternReader{patterns: patterns}
}

// Next returns the next non-empty pattern, or io.EOF.
// The returned slices are reused by subsequent calls.
func (r *PatternReader) Next() ([]rune, []int, error) {
	for r.index < len(r.patterns) {
		p := r.patterns[r.index]
		r.index++
		r.sequence, r.weights = softhyphen.AppendPattern(r.sequence[:0], r.weights[:0], p)
		if len(r.sequence) > 0 {
			return r.sequence, r.weights, nil
		}
	}
	return nil, nil, io.EOF
}

// ExceptionReader streams exceptions like "as-so-ciate".
type ExceptionReader struct {
	exceptions []string
	index      int
}

// NewExceptionReader creates a reader over a list of exceptions.
func NewExceptionReader(exceptions []string) *ExceptionReader {
	return &ExceptionReader{exceptions: exceptions}
}

// Next returns the next exception, or io.EOF.
func (r *ExceptionReader) Next() (string, error) {
	if r.index >= len(r.exceptions) {
		return "", io.EOF
	}
	exc := r.exceptions[r.index]
	r.index++
	return exc, nil
}
