// Package dat implements the frozen storage for pattern tries: a double-array trie
// over a dense alphabet.
//
// States are plain integer indices into two parallel arrays, which makes a frozen
// trie a flat value without pointers between nodes. It may be shared read-only
// by any number of goroutines.
package dat

// DAT is a frozen double-array trie.
//
//   - States are indices into Base/Check; 0 is unused, Root is 1.
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
type DAT struct {
	Root  uint32 // root state index
	Sigma uint16 // size of the dense alphabet (maximum dense ID)

	// Base and Check are the classic double-array.
	Base  []int32
	Check []int32

	// Alphabet maps runes of the BMP to dense IDs [0..Sigma].
	Alphabet Alphabet
}

// New creates an empty DAT consisting of the root state only.
func New() *DAT {
	d := &DAT{Root: 1}
	d.Base = make([]int32, d.Root+1)
	d.Check = make([]int32, d.Root+1)
	return d
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Step maps r to its dense ID and performs a transition.
func (d *DAT) Step(state uint32, r rune) (uint32, bool) {
	return d.Transition(state, d.Alphabet.Dense(r))
}

// Grow makes sure idx is a valid index into Base and Check.
func (d *DAT) Grow(idx int) {
	if idx < len(d.Base) {
		return
	}
	n := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, n)...)
	d.Check = append(d.Check, make([]int32, n)...)
}

// FindBase searches the first base offset for which all labels land on free slots.
func (d *DAT) FindBase(labels []uint16) int {
	for base := 1; ; base++ {
		free := true
		for _, label := range labels {
			t := base + int(label)
			if t == int(d.Root) || (t < len(d.Check) && d.Check[t] != 0) {
				free = false
				break
			}
		}
		if free {
			return base
		}
	}
}

// Used counts occupied slots, including the root.
func (d *DAT) Used() (used, maxState int) {
	maxState = int(d.Root)
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			maxState = max(maxState, i)
		}
	}
	return
}
