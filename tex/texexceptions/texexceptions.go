// Package texexceptions reads hyphenation exceptions from TeX hyphenation files.
package texexceptions

import (
	"fmt"
	"io"

	"github.com/npillmayer/softhyphen/tex/internal"
)

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
// Exceptions are returned as spelled in the file, e.g. "ta-ble".
type Reader struct {
	block *internal.BlockScanner
}

// NewReader creates an exception reader for TeX input.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		block: internal.NewBlockScanner(reader, `\hyphenation{`),
	}
}

// Next returns the next exception.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	entry, err := r.block.Next()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("TeX exceptions: %w", err)
	}
	return entry, err
}
