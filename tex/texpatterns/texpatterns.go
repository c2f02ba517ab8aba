// Package texpatterns reads Liang patterns from TeX hyphenation files.
package texpatterns

import (
	"fmt"
	"io"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/tex/internal"
)

// PatternReader streams Liang patterns from TeX-style source files.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => positions["aban"] = [0,5,0,0].
//
// TeX marks word boundaries with '.', which is translated to
// softhyphen.Boundary. Exceptions from \hyphenation{...} are not read here,
// see package texexceptions.
type PatternReader struct {
	block    *internal.BlockScanner
	sequence []rune
	weights  []int
}

// NewPatternReader creates a PatternReader for TeX input.
func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		block:    internal.NewBlockScanner(reader, `\patterns{`),
		sequence: make([]rune, 0, 32),
		weights:  make([]int, 0, 32),
	}
}

// Identifier returns the name the file announces for itself, if any.
func (r *PatternReader) Identifier() string {
	return r.block.Identifier()
}

// Next returns the next pattern as (sequence, weights).
// It returns io.EOF when exhausted.
// The returned slices are reused by subsequent calls.
func (r *PatternReader) Next() ([]rune, []int, error) {
	entry, err := r.block.Next()
	if err != nil {
		if err != io.EOF {
			err = fmt.Errorf("TeX patterns: %w", err)
		}
		return nil, nil, err
	}
	r.sequence, r.weights = softhyphen.AppendPattern(r.sequence[:0], r.weights[:0], entry)
	for i, ch := range r.sequence {
		if ch == '.' {
			r.sequence[i] = softhyphen.Boundary
		}
	}
	return r.sequence, r.weights, nil
}
