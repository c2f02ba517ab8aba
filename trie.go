package softhyphen

import (
	"fmt"
	"io"
	"iter"
)

// Offset is a weight attached to a trie node: a pattern ending at that node
// carries Weight for a break immediately before rune Offset of the pattern.
type Offset struct {
	Offset int
	Weight int
}

// PatternTrie is a frozen prefix tree over hyphenation patterns.
// Nodes live in a double-array arena and are addressed by state IDs; weights
// are kept in a separate payload store indexed by the same IDs.
//
// A PatternTrie is immutable after construction and may be shared by
// concurrent readers.
type PatternTrie struct {
	name    string
	backend patternTrie
	store   *patternStore
	size    int // number of distinct pattern keys
}

// TrieNode is a node visited during a trie lookup.
type TrieNode struct {
	state int
	store *patternStore
}

// Offsets returns the (offset, weight) pairs of patterns ending at this node.
// Zero weights are not reported.
func (n TrieNode) Offsets() []Offset {
	if n.store == nil {
		return nil
	}
	return n.store.Offsets(n.state)
}

// NewPatternTrie compiles a list of digit-interleaved patterns like "a5ban"
// or "_ab1".
func NewPatternTrie(patterns []string) (*PatternTrie, error) {
	return BuildPatternTrie("inline", &stringPatternReader{patterns: patterns})
}

// BuildPatternTrie compiles patterns from a streaming, format-agnostic source.
//
// Patterns sharing the same rune sequence are merged, keeping the maximum
// weight per position. File format parsing is intentionally outside this
// package. Use adapters like package jsonpatterns or tex to parse concrete
// formats and feed this API.
func BuildPatternTrie(name string, reader PatternReader) (*PatternTrie, error) {
	backend := newDATBackend()
	pending := make(map[int][]int, 1024)
	order := make([]int, 0, 1024)
	for {
		sequence, weights, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(sequence) == 0 {
			continue
		}
		pos := backend.AllocPositionForWord(sequence)
		if pos == 0 {
			tracer().Debugf("skipping pattern %q", string(sequence))
			continue // simply skip invalid patterns
		}
		w, seen := pending[pos]
		if !seen {
			order = append(order, pos)
		}
		pending[pos] = mergeWeights(w, weights)
	}
	backend.Freeze()
	width := 0
	for _, pos := range order {
		width = max(width, nonZero(pending[pos]))
	}
	trie := &PatternTrie{
		name:    name,
		backend: backend,
		store:   newPatternStore(uint8(min(width, 16))),
		size:    len(order),
	}
	for i, pos := range order {
		state := backend.ResolvePosition(pos)
		if state == 0 {
			return nil, fmt.Errorf("could not resolve trie position after freeze for temporary position %d", pos)
		}
		if err := trie.store.Put(state, pending[pos]); err != nil {
			return nil, fmt.Errorf("pattern %d of %s: %w", i+1, name, err)
		}
	}
	stats := trie.Stats()
	tracer().Infof("pattern trie %s: %d patterns, backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		name, trie.size, stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return trie, nil
}

// Size returns the number of distinct patterns in the trie.
func (t *PatternTrie) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Stats reports density metrics for the underlying trie backend.
func (t *PatternTrie) Stats() TrieStats {
	if t == nil || t.backend == nil {
		return TrieStats{}
	}
	return t.backend.Stats()
}

// Lookup walks the trie along key, starting at the root, and yields every
// node visited. The walk ends as soon as the trie has no child for the next
// rune of key.
func (t *PatternTrie) Lookup(key string) iter.Seq[TrieNode] {
	return func(yield func(TrieNode) bool) {
		if t == nil || t.backend == nil {
			return
		}
		it := t.backend.Iterator()
		for _, r := range key {
			state := it.Next(r)
			if state == 0 {
				return
			}
			if !yield(TrieNode{state: state, store: t.store}) {
				return
			}
		}
	}
}

// Weights computes Liang hyphenation weights for a (lower-cased) word.
//
// The word is padded with Boundary on both ends. For every start offset
// in the padded word we walk the trie and merge the weights of all matching
// patterns, keeping the maximum. The result has one entry per rune of word
// plus one: entry i is the weight of a break immediately before rune i.
// Odd weights allow a break, even weights forbid it.
func (t *PatternTrie) Weights(word string) []int {
	runes := []rune(word)
	padded := make([]rune, 0, len(runes)+2)
	padded = append(padded, Boundary)
	padded = append(padded, runes...)
	padded = append(padded, Boundary)
	positions := make([]int, len(padded))
	if t == nil || t.backend == nil {
		return positions[1:]
	}
	for start := range padded { // "_word_", "word_", "ord_", ...
		positions = mergePrefixPositions(padded[start:], t.backend, t.store, start, positions)
	}
	return positions[1 : len(runes)+2]
}

// mergePrefixPositions looks up all prefixes of a fragment and merges matching
// pattern weights into positions at absolute offset at.
func mergePrefixPositions(fragment []rune, tr patternTrie, store *patternStore, at int,
	positions []int) []int {
	//
	it := tr.Iterator()
	for _, r := range fragment {
		patternID := it.Next(r)
		if patternID == 0 {
			break
		}
		positions = store.MergeInto(patternID, at, positions)
	}
	return positions
}

// stringPatternReader adapts a list of pattern strings to PatternReader.
type stringPatternReader struct {
	patterns []string
	index    int
	sequence []rune
	weights  []int
}

func (r *stringPatternReader) Next() ([]rune, []int, error) {
	for r.index < len(r.patterns) {
		s := r.patterns[r.index]
		r.index++
		r.sequence, r.weights = AppendPattern(r.sequence[:0], r.weights[:0], s)
		if len(r.sequence) == 0 {
			continue
		}
		return r.sequence, r.weights, nil
	}
	return nil, nil, io.EOF
}
