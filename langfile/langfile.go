// Package langfile resolves language codes to hyphenation files and loads
// them.
//
// A Loader looks for files in an fs.FS, trying for every candidate code c
//
//	c.json
//	c.json.gz
//	hyph-<lower-case c>.tex
//
// Candidates are the code as given, its canonical BCP 47 form and its base
// language, so "de-AT" falls back to "de.json" if there is no Austrian file.
package langfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/jsonpatterns"
	"github.com/npillmayer/softhyphen/tex"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'softhyphen.langfile'
func tracer() tracing.Trace {
	return tracing.Select("softhyphen.langfile")
}

// Loader loads hyphenation languages from a file system. Every file is read
// at most once; the resulting Language is shared by all callers.
//
// A Loader is safe for concurrent use.
type Loader struct {
	fsys  fs.FS
	mu    sync.Mutex
	files map[string]*softhyphen.Language // by file path
	codes map[string]string               // requested code => file path
}

var _ softhyphen.LanguageLoader = (*Loader)(nil)

// NewLoader creates a Loader for language files in fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		files: make(map[string]*softhyphen.Language),
		codes: make(map[string]string),
	}
}

type format int

const (
	formatJSON format = iota
	formatJSONGzip
	formatTeX
)

// Load returns the Language for code. Errors wrap
// softhyphen.ErrLanguageLoadFailed.
func (l *Loader) Load(code string) (*softhyphen.Language, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if path, ok := l.codes[code]; ok {
		return l.files[path], nil
	}
	for _, c := range Candidates(code) {
		for _, f := range []format{formatJSON, formatJSONGzip, formatTeX} {
			path := fileName(c, f)
			if lang, ok := l.files[path]; ok {
				l.codes[code] = path
				return lang, nil
			}
			lang, err := l.loadFile(c, path, f)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			tracer().Infof("loaded hyphenation patterns for %q from %s", code, path)
			l.files[path] = lang
			l.codes[code] = path
			return lang, nil
		}
	}
	return nil, fmt.Errorf("%w: %q: no language file found", softhyphen.ErrLanguageLoadFailed, code)
}

func (l *Loader) loadFile(code, path string, f format) (*softhyphen.Language, error) {
	if !fs.ValidPath(path) {
		return nil, fs.ErrNotExist
	}
	file, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var r io.Reader = file
	switch f {
	case formatJSONGzip:
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", softhyphen.ErrLanguageLoadFailed, path, err)
		}
		defer zr.Close()
		r = zr
		fallthrough
	case formatJSON:
		return jsonpatterns.LoadLanguage(code, r)
	}
	return tex.LoadLanguage(code, r)
}

func fileName(code string, f format) string {
	switch f {
	case formatJSON:
		return code + ".json"
	case formatJSONGzip:
		return code + ".json.gz"
	}
	return "hyph-" + strings.ToLower(code) + ".tex"
}

// Candidates lists the codes to try for a requested language code, most
// specific first, without duplicates: the code as given, its canonical form
// and its base language.
func Candidates(code string) []string {
	code = strings.TrimSpace(code)
	if code == "" || strings.ContainsAny(code, `/\`) {
		return nil
	}
	candidates := []string{code}
	add := func(c string) {
		for _, have := range candidates {
			if have == c {
				return
			}
		}
		candidates = append(candidates, c)
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return candidates
	}
	add(tag.String())
	if base, conf := tag.Base(); conf != language.No {
		add(base.String())
	}
	return candidates
}

// Languages lists the codes of all languages loaded so far.
func (l *Loader) Languages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	codes := make([]string, 0, len(l.codes))
	for code := range l.codes {
		codes = append(codes, code)
	}
	return codes
}
