package texexceptions

import (
	"io"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`% a comment
\patterns{
a1b
}
\hyphenation{
ta-ble
schön-heit % trailing comment
}`)
	r := NewReader(src)
	for _, want := range []string{"ta-ble", "schön-heit"} {
		word, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if word != want {
			t.Fatalf("word mismatch: got %q, want %q", word, want)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderWithoutBlock(t *testing.T) {
	r := NewReader(strings.NewReader("\\patterns{\na1b\n}\n"))
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
