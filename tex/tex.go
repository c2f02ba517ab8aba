// Package tex loads hyphenation languages from TeX files.
package tex

import (
	"bytes"
	"io"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/tex/texexceptions"
	"github.com/npillmayer/softhyphen/tex/texpatterns"
)

// LoadLanguage loads a pattern dictionary and an exception list in TeX format.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	lang, err := tex.LoadLanguage("en-us", f)
//
// This will load the file temporarily into memory.
func LoadLanguage(code string, reader io.Reader) (*softhyphen.Language, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	patterns := texpatterns.NewPatternReader(bytes.NewReader(data))
	exceptions := texexceptions.NewReader(bytes.NewReader(data))
	return softhyphen.LoadLanguage(code, patterns, exceptions)
}
