package softhyphen

import (
	"fmt"
	"slices"

	"github.com/npillmayer/softhyphen/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datBackend collects patterns in a pointer tree first and compiles them into
// a double-array trie on Freeze. Temporary node IDs handed out during the
// build phase are translated to DAT states by ResolvePosition.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	nextNodeID  int
	nextDenseID uint16
	resolved    map[int]uint32 // tmpID -> state, valid after Freeze
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	backend := &datBackend{
		root:        &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID:  2,
		nextDenseID: 1, // reserve 1 for the word boundary
		compiled:    dat.New(),
	}
	backend.compiled.Alphabet.Set(Boundary, 1)
	return backend
}

// dense returns the dense alphabet ID for r, allocating a new one if necessary.
func (db *datBackend) dense(r rune) uint16 {
	if d := db.compiled.Alphabet.Dense(r); d != 0 {
		return d
	}
	if db.nextDenseID == ^uint16(0) {
		return 0
	}
	db.nextDenseID++
	if !db.compiled.Alphabet.Set(r, db.nextDenseID) {
		db.nextDenseID--
		return 0
	}
	return db.nextDenseID
}

// AllocPositionForWord inserts key and returns the position of its terminal
// node. It returns 0 if key cannot be stored (empty, frozen trie, or runes
// outside the BMP).
func (db *datBackend) AllocPositionForWord(key []rune) int {
	if len(key) == 0 || db.frozen {
		return 0
	}
	n := db.root
	for _, r := range key {
		c := db.dense(r)
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    db.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			db.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

// ResolvePosition translates a temporary build position into a DAT state.
func (db *datBackend) ResolvePosition(pos int) int {
	if !db.frozen {
		return pos
	}
	return int(db.resolved[pos])
}

func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	db.resolved = make(map[int]uint32, db.nextNodeID)
	db.root.state = d.Root
	db.resolved[db.root.tmpID] = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := d.FindBase(labels)
		d.Grow(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			db.resolved[child.tmpID] = child.state
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.frozen = true
}

func (db *datBackend) Iterator() patternIterator {
	if db.frozen {
		return &datIterator{
			d:     db.compiled,
			state: db.compiled.Root,
		}
	}
	return &datBuildIterator{
		backend: db,
		node:    db.root,
	}
}

type datBuildIterator struct {
	backend *datBackend
	node    *datBuildNode
	dead    bool
}

func (it *datBuildIterator) Next(r rune) int {
	if it.dead || it.node == nil {
		return 0
	}
	next := it.node.children[it.backend.compiled.Alphabet.Dense(r)]
	if next == nil {
		it.dead = true
		return 0
	}
	it.node = next
	return next.tmpID
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(r rune) int {
	if it.dead {
		return 0
	}
	next, ok := it.d.Step(it.state, r)
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() TrieStats {
	stats := TrieStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	stats.UsedSlots, stats.MaxStateID = db.compiled.Used()
	return stats
}
