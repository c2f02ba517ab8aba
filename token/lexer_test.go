package token

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize("Hello, world!")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Word, "Hello"},
		{Punctuation, ","},
		{Space, " "},
		{Word, "world"},
		{Punctuation, "!"},
	}
	assertTokens(t, tokens, want)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error for empty input: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}

func TestTokenizeEmailIsOther(t *testing.T) {
	tokens, err := Tokenize("Please mail someone@example.org now")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Word, "Please"},
		{Space, " "},
		{Word, "mail"},
		{Space, " "},
		{Other, "someone@example.org"},
		{Space, " "},
		{Word, "now"},
	}
	assertTokens(t, tokens, want)
}

func TestTokenizeURLIsOther(t *testing.T) {
	tokens, err := Tokenize("see https://example.com/path today")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Word, "see"},
		{Space, " "},
		{Other, "https://example.com/path"},
		{Space, " "},
		{Word, "today"},
	}
	assertTokens(t, tokens, want)
}

func TestTokenizeCompoundWord(t *testing.T) {
	tokens, err := Tokenize("the editor-in-chief")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[2] != (Token{Word, "editor-in-chief"}) {
		t.Fatalf("expected compound to be a single word, got %v", tokens)
	}
}

func TestTokenizeLatinLetters(t *testing.T) {
	tokens, err := Tokenize("Größe")
	if err != nil {
		t.Fatal(err)
	}
	assertTokens(t, tokens, []Token{{Word, "Größe"}})
}

func TestTokenizeNonLatinIsOther(t *testing.T) {
	tokens, err := Tokenize("Москва")
	if err != nil {
		t.Fatal(err)
	}
	assertTokens(t, tokens, []Token{{Other, "Москва"}})
}

func TestTokenizeEntities(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"a&nbsp;b", []Token{{Word, "a"}, {Space, "&nbsp;"}, {Word, "b"}}},
		{"caf&eacute; au lait", []Token{
			{Word, "caf&eacute;"}, {Space, " "}, {Word, "au"}, {Space, " "}, {Word, "lait"},
		}},
		{"yes&#33;", []Token{{Word, "yes"}, {Punctuation, "&#33;"}}},
		{"x &amp; y", []Token{
			{Word, "x"}, {Space, " "}, {Other, "&amp;"}, {Space, " "}, {Word, "y"},
		}},
		{"a &#99999999999; b", []Token{
			{Word, "a"}, {Space, " "}, {Other, "&#99999999999;"}, {Space, " "}, {Word, "b"},
		}},
		{"a &#0; &#xD800; b", []Token{
			{Word, "a"}, {Space, " "}, {Other, "&#0;"}, {Space, " "}, {Other, "&#xD800;"},
			{Space, " "}, {Word, "b"},
		}},
		{"x &bogus; y", []Token{
			{Word, "x"}, {Space, " "}, {Other, "&bogus;"}, {Space, " "}, {Word, "y"},
		}},
		{"&#xFFFD;&#65533;", []Token{{Punctuation, "&#xFFFD;&#65533;"}}},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		assertTokens(t, tokens, tt.want)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"  leading and trailing  ",
		"mail me: someone@example.org, or see https://example.com/a?b=c&d=e.",
		"caf&eacute;&nbsp;&amp;&#x2014;&bogus; und so weiter",
		"Grüße aus Köln — 2024/25 … “quoted”",
		"tab\tnew\nline nbsp​zwsp",
		"Москва, 東京 & Paris",
		"&&;&#;&#x;&a",
	}
	for _, input := range inputs {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if got := Join(tokens); got != input {
			t.Fatalf("round trip failed: got %q, want %q", got, input)
		}
	}
}

func TestTokenizeInvalidEncoding(t *testing.T) {
	_, err := Tokenize("abc\xff\xfe")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestTokenizeLongWordRun(t *testing.T) {
	long := strings.Repeat("a", DefaultMaxWordRun)
	if _, err := Tokenize(long); !errors.Is(err, ErrInputTooLong) {
		t.Fatalf("expected ErrInputTooLong, got %v", err)
	}
	tz := &Tokenizer{}
	tokens, err := tz.Tokenize(long)
	if err != nil {
		t.Fatalf("unlimited tokenizer failed: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != Word {
		t.Fatalf("expected a single word, got %d tokens", len(tokens))
	}
}

func TestWords(t *testing.T) {
	tokens, _ := Tokenize("one, two three")
	var words []string
	for i, w := range Words(tokens) {
		if tokens[i] != w {
			t.Fatalf("index %d does not match token %v", i, w)
		}
		words = append(words, w.Value)
	}
	if got := strings.Join(words, "|"); got != "one|two|three" {
		t.Fatalf("words: got %q, want %q", got, "one|two|three")
	}
}

func TestKindString(t *testing.T) {
	if Punctuation.String() != "punctuation" || Kind(42).String() != "invalid" {
		t.Fatalf("unexpected kind names")
	}
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
