package softhyphen

// patternIterator iterates over successive prefix states for one key.
// Next returns 0 as soon as the prefix is no longer present.
type patternIterator interface {
	Next(r rune) int
}

// TrieStats reports density metrics for the backend of a pattern trie.
type TrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots.
func (s TrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// patternTrie is the internal backend abstraction for pattern-key storage.
type patternTrie interface {
	AllocPositionForWord(key []rune) int
	ResolvePosition(pos int) int
	Freeze()
	Iterator() patternIterator
	Stats() TrieStats
}
