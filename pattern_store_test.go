package softhyphen

import (
	"reflect"
	"testing"
)

func TestPatternStorePacked(t *testing.T) {
	s := newPatternStore(16)
	if err := s.Put(42, []int{0, 5, 0, 3}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	packed, ok := s.Packed(42)
	if !ok {
		t.Fatalf("expected payload at position 42")
	}
	want := []byte{0x15, 0x33}
	if !reflect.DeepEqual(packed, want) {
		t.Fatalf("packed mismatch: got %v, want %v", packed, want)
	}
}

func TestPatternStoreOverwrite(t *testing.T) {
	s := newPatternStore(16)
	if err := s.Put(7, []int{0, 3}); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put(7, []int{0, 9}); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	packed, ok := s.Packed(7)
	if !ok {
		t.Fatalf("expected payload at position 7")
	}
	want := []byte{0x19}
	if !reflect.DeepEqual(packed, want) {
		t.Fatalf("packed mismatch after overwrite: got %v, want %v", packed, want)
	}
}

func TestPatternStoreMergeInto(t *testing.T) {
	s := newPatternStore(16)
	if err := s.Put(7, []int{0, 7, 3}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	dst := []int{0, 2, 0, 0}
	got := s.MergeInto(7, 1, dst)
	want := []int{0, 2, 7, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge mismatch: got %v, want %v", got, want)
	}
}

func TestPatternStoreRejectsOutOfNibbleRange(t *testing.T) {
	s := newPatternStore(16)
	positions := make([]int, 17)
	positions[16] = 1
	if err := s.Put(1, positions); err == nil {
		t.Fatalf("expected out-of-range index error")
	}
}

func TestPatternStoreOffsets(t *testing.T) {
	s := newPatternStore(4)
	if err := s.Put(3, []int{0, 2, 0, 1}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	want := []Offset{{Offset: 1, Weight: 2}, {Offset: 3, Weight: 1}}
	if got := s.Offsets(3); !reflect.DeepEqual(got, want) {
		t.Fatalf("offsets mismatch: got %v, want %v", got, want)
	}
	if got := s.Offsets(2); got != nil {
		t.Fatalf("expected no offsets at empty position, got %v", got)
	}
}

func TestMergeWeights(t *testing.T) {
	got := mergeWeights([]int{0, 3}, []int{1, 2, 5})
	if want := []int{1, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("merge mismatch: got %v, want %v", got, want)
	}
}

func TestNonZero(t *testing.T) {
	tests := []struct {
		positions []int
		want      int
	}{
		{nil, 0},
		{[]int{0, 0}, 0},
		{[]int{0, 2, 0, 1, 4}, 3},
	}
	for _, tt := range tests {
		if got := nonZero(tt.positions); got != tt.want {
			t.Fatalf("nonZero(%v): got %d, want %d", tt.positions, got, tt.want)
		}
	}
}
