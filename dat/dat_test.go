package dat

import "testing"

func TestAlphabetPages(t *testing.T) {
	var a Alphabet
	if !a.Set('a', 1) || !a.Set('ä', 2) || !a.Set('я', 3) {
		t.Fatalf("expected BMP runes to be accepted")
	}
	if a.Set(0x1F600, 4) {
		t.Fatalf("expected rune outside BMP to be rejected")
	}
	tests := []struct {
		r    rune
		want uint16
	}{
		{'a', 1}, {'ä', 2}, {'я', 3}, {'b', 0}, {0x1F600, 0},
	}
	for _, tt := range tests {
		if got := a.Dense(tt.r); got != tt.want {
			t.Fatalf("dense mismatch for %q: got %d, want %d", tt.r, got, tt.want)
		}
	}
	if a.NumPages() != 2 { // 'a' and 'ä' share page 0x00
		t.Fatalf("expected 2 pages, got %d", a.NumPages())
	}
}

func TestTransition(t *testing.T) {
	d := New()
	d.Alphabet.Set('x', 1)
	d.Sigma = 1
	base := d.FindBase([]uint16{1})
	d.Grow(base + 1)
	d.Base[d.Root] = int32(base)
	d.Check[base+1] = int32(d.Root)
	next, ok := d.Step(d.Root, 'x')
	if !ok || next != uint32(base+1) {
		t.Fatalf("expected transition to %d, got %d (ok=%v)", base+1, next, ok)
	}
	if _, ok := d.Step(d.Root, 'y'); ok {
		t.Fatalf("expected no transition for rune outside alphabet")
	}
	if _, ok := d.Step(next, 'x'); ok {
		t.Fatalf("expected no transition from leaf state")
	}
	used, maxState := d.Used()
	if used != 2 || maxState != base+1 {
		t.Fatalf("unexpected usage: used=%d max=%d", used, maxState)
	}
}
