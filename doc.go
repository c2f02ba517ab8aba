/*
Package softhyphen computes hyphenation points for words of natural-language text
and inserts soft hyphens (or any other hyphen string) at those points.

It is based on an algorithm described by Frank Liang (F.M.Liang
http://www.tug.org/docs/liang/). Language patterns are compiled into a frozen
double-array trie (DAT) index. Hyphenation weight vectors are stored separately
in a compact payload store and referenced by trie state IDs.
Whole-word exceptions, shipped with a language or supplied by clients,
override the patterns.

The engine operates on token sequences as produced by package token:

	tokens, err := token.Tokenize("Typography is the art of arranging type.")
	...
	h := softhyphen.New(langfile.NewLoader(os.DirFS("patterns")))
	if h.SetLanguage("en-US") {
	    tokens = h.Hyphenate(tokens, softhyphen.DefaultOptions())
	}
	fmt.Println(token.Join(tokens))

A Hyphenator without a (successfully loaded) language passes tokens through
unchanged. Hyphenation is an optional enhancement of text and must never
corrupt it.

Further Reading

	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator
	https://github.com/hyphenation/tex-hyphen  (pattern files)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package softhyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'softhyphen'
func tracer() tracing.Trace {
	return tracing.Select("softhyphen")
}
