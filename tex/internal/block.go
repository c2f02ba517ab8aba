// Package internal holds the line scanner shared by the TeX readers.
package internal

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrUnclosedBlock is returned if a file ends inside a block.
var ErrUnclosedBlock = errors.New("unexpected end of file (unclosed block)")

// BlockScanner yields whitespace separated entries of one TeX block, like
// \patterns{...} or \hyphenation{...}. Comments ('%' up to end of line) are
// stripped, lines outside of the block are ignored.
type BlockScanner struct {
	scanner    *bufio.Scanner
	command    string // e.g. `\patterns{`
	identifier string
	inside     bool
	done       bool
	fields     []string
}

// NewBlockScanner creates a scanner for the entries of the block introduced by
// command, which must include the opening brace.
func NewBlockScanner(reader io.Reader, command string) *BlockScanner {
	s := bufio.NewScanner(reader)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &BlockScanner{scanner: s, command: command}
}

// Identifier returns the value of a \message{...} or "% message:" line seen so
// far, if any.
func (b *BlockScanner) Identifier() string {
	return b.identifier
}

// Next returns the next entry. It returns io.EOF after the closing brace of
// the block, or if the block does not exist.
func (b *BlockScanner) Next() (string, error) {
	for len(b.fields) == 0 {
		if b.done {
			return "", io.EOF
		}
		if !b.scanner.Scan() {
			if err := b.scanner.Err(); err != nil {
				return "", err
			}
			b.done = true
			if b.inside {
				return "", ErrUnclosedBlock
			}
			return "", io.EOF
		}
		b.scanLine(b.scanner.Text())
	}
	entry := b.fields[0]
	b.fields = b.fields[1:]
	return entry, nil
}

func (b *BlockScanner) scanLine(line string) {
	if comment, ok := strings.CutPrefix(strings.TrimSpace(line), "%"); ok {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(comment), "message:"); ok {
			b.identifier = strings.TrimSpace(rest)
			return
		}
	}
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, `\message{`); ok {
		b.identifier = strings.TrimSuffix(rest, "}")
		return
	}
	if !b.inside {
		i := strings.Index(line, b.command)
		if i < 0 {
			return
		}
		b.inside = true
		line = line[i+len(b.command):]
	}
	if i := strings.IndexByte(line, '}'); i >= 0 {
		line = line[:i]
		b.inside, b.done = false, true
	}
	b.fields = append(b.fields, strings.Fields(line)...)
}
