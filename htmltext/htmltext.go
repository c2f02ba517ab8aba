// Package htmltext applies token fixes to the text nodes of HTML documents.
//
// Text is hyphenated in the language given by the nearest lang attribute.
// Text inside ignored tags (like <code> or <script>) or elements with ignored
// classes is left alone.
//
// Parsing and rendering normalizes the markup: character references in text
// are written out as plain characters, except for those which need escaping.
package htmltext

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/config"
	"github.com/npillmayer/softhyphen/fix"
	"github.com/npillmayer/softhyphen/token"
)

// tracer writes to trace with key 'softhyphen.html'
func tracer() tracing.Trace {
	return tracing.Select("softhyphen.html")
}

var headings = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Processor hyphenates HTML. It is not safe for concurrent use.
type Processor struct {
	cache     *softhyphen.Cache
	settings  *config.Settings
	tokenizer *token.Tokenizer
	tags      map[string]bool
	classes   map[string]bool
	fixes     map[string]fix.TokenFix // by language code
}

// New creates a Processor which gets Hyphenators from cache.
func New(cache *softhyphen.Cache, s *config.Settings) *Processor {
	p := &Processor{
		cache:     cache,
		settings:  s,
		tokenizer: &token.Tokenizer{MaxWordRun: s.Tokenizer.MaxWordRun},
		tags:      make(map[string]bool, len(s.Ignore.Tags)),
		classes:   make(map[string]bool, len(s.Ignore.Classes)),
		fixes:     make(map[string]fix.TokenFix),
	}
	for _, tag := range s.Ignore.Tags {
		p.tags[strings.ToLower(tag)] = true
	}
	for _, class := range s.Ignore.Classes {
		p.classes[class] = true
	}
	cache.SetCustomExceptions(s.Hyphenation.CustomExceptions)
	return p
}

// ProcessFragment hyphenates an HTML fragment, as found in the body of a
// document.
func (p *Processor) ProcessFragment(src string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		p.walk(n, p.settings.Language)
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// ProcessDocument hyphenates a complete HTML document. Input in legacy
// encodings is detected by its meta tags and converted; output is always UTF-8.
func (p *Processor) ProcessDocument(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if data, err = decodeDocument(data); err != nil {
		return err
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	p.walk(doc, p.settings.Language)
	return html.Render(w, doc)
}

// decodeDocument converts data to UTF-8. Without any hint, valid UTF-8 is
// taken as is, even if charset detection would fall back to windows-1252.
func decodeDocument(data []byte) ([]byte, error) {
	e, name, _ := charset.DetermineEncoding(data, "")
	if name == "utf-8" || name == "windows-1252" && utf8.Valid(data) {
		return data, nil
	}
	tracer().Debugf("converting document from %s", name)
	return e.NewDecoder().Bytes(data)
}

func (p *Processor) walk(n *html.Node, lang string) {
	switch n.Type {
	case html.TextNode:
		n.Data = p.processText(n.Data, lang)
		return
	case html.ElementNode:
		if p.ignored(n) {
			return
		}
		lang = elementLanguage(n, lang)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, lang)
	}
}

func (p *Processor) ignored(n *html.Node) bool {
	if p.tags[n.Data] {
		return true
	}
	if !p.settings.Hyphenation.Headings && slices.Contains(headings, n.DataAtom) {
		return true
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			for _, class := range strings.Fields(a.Val) {
				if p.classes[class] {
					return true
				}
			}
		}
	}
	return false
}

// elementLanguage returns the language given by the lang attribute of n, or
// inherited if there is none or it is not a valid language tag.
func elementLanguage(n *html.Node, inherited string) string {
	for _, a := range n.Attr {
		if a.Key != "lang" {
			continue
		}
		tag, err := language.Parse(a.Val)
		if err != nil {
			tracer().Debugf("ignoring lang attribute %q: %v", a.Val, err)
			return inherited
		}
		return tag.String()
	}
	return inherited
}

func (p *Processor) processText(text, lang string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	out, err := p.ProcessText(text, lang)
	if err != nil {
		tracer().Infof("leaving text node unchanged: %v", err)
		return text
	}
	return out
}

// ProcessText hyphenates plain text in language lang. An empty lang selects
// the configured default language.
func (p *Processor) ProcessText(text, lang string) (string, error) {
	if lang == "" {
		lang = p.settings.Language
	}
	tokens, err := p.tokenizer.Tokenize(text)
	if err != nil {
		return "", err
	}
	return token.Join(p.fixFor(lang).Apply(tokens)), nil
}

// fixFor returns the fix chain for a language, creating it on first use.
func (p *Processor) fixFor(lang string) fix.TokenFix {
	if f, ok := p.fixes[lang]; ok {
		return f
	}
	h, ok := p.cache.Get(lang)
	if !ok {
		tracer().Infof("no hyphenation for language %q", lang)
	}
	hs := p.settings.Hyphenation
	opts := p.settings.HyphenOptions()
	var compounds fix.TokenFix
	if hs.Compounds {
		compounds = fix.CompoundHyphenation{H: h, Options: opts, AllCaps: hs.AllCaps}
	}
	f := fix.Chain(compounds, fix.Hyphenation{H: h, Options: opts, AllCaps: hs.AllCaps})
	p.fixes[lang] = f
	return f
}
