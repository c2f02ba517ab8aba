package fix

import (
	"testing"

	"github.com/npillmayer/softhyphen"
	"github.com/npillmayer/softhyphen/token"
)

func testHyphenator(t *testing.T) *softhyphen.Hyphenator {
	t.Helper()
	trie, err := softhyphen.NewPatternTrie([]string{"a1", "e1", "i1", "o1", "u1"})
	if err != nil {
		t.Fatal(err)
	}
	h := softhyphen.New(nil)
	h.SetLanguageData(softhyphen.NewLanguage("test", trie, nil))
	return h
}

var testOptions = softhyphen.Options{
	Hyphen:         "-",
	AllowTitleCase: true,
	MinLength:      4,
	MinBefore:      2,
	MinAfter:       2,
}

func process(t *testing.T, f TokenFix, text string) string {
	t.Helper()
	tokens, err := token.Tokenize(text)
	if err != nil {
		t.Fatal(err)
	}
	return token.Join(f.Apply(tokens))
}

func TestHyphenation(t *testing.T) {
	h := testHyphenator(t)
	tests := []struct {
		allCaps bool
		text    string
		want    string
	}{
		{false, "banana split", "ba-na-na split"},
		{false, "BANANA split", "BANANA split"},
		{true, "BANANA split", "BA-NA-NA split"},
		{false, "editor-in-chief", "editor-in-chief"},
	}
	for _, tt := range tests {
		f := Hyphenation{H: h, Options: testOptions, AllCaps: tt.allCaps}
		if got := process(t, f, tt.text); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCompoundHyphenation(t *testing.T) {
	h := testHyphenator(t)
	f := CompoundHyphenation{H: h, Options: testOptions}
	if got := process(t, f, "the editor-in-chief"); got != "the edi-tor-in-chi-ef" {
		t.Fatalf("got %q, want %q", got, "the edi-tor-in-chi-ef")
	}
	if got := process(t, f, "banana"); got != "banana" {
		t.Fatalf("simple words are not compounds, got %q", got)
	}
}

func TestChain(t *testing.T) {
	h := testHyphenator(t)
	f := Chain(
		CompoundHyphenation{H: h, Options: testOptions},
		nil,
		Hyphenation{H: h, Options: testOptions},
	)
	if got := process(t, f, "banana-republic banana"); got != "ba-na-na-re-pu-blic ba-na-na" {
		t.Fatalf("got %q", got)
	}
}

func TestNilHyphenatorPassesThrough(t *testing.T) {
	tokens := []token.Token{{Kind: token.Word, Value: "banana"}}
	if got := (Hyphenation{}).Apply(tokens); &got[0] != &tokens[0] {
		t.Fatalf("expected input to be returned as is")
	}
}
