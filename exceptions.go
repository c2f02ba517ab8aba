package softhyphen

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/derekparker/trie"
)

// exceptionWeight marks a break in an exception. It is the maximum pattern
// weight, so an exception always allows the break.
const exceptionWeight = 9

// exceptionKey returns the lookup key for a hyphenated exception: lower-cased,
// with literal '-' removed. Other connectors stay in place.
func exceptionKey(hyphenated string) string {
	return strings.ReplaceAll(strings.ToLower(hyphenated), "-", "")
}

// exceptionPattern derives weights by offset from a hyphenated word.
// Every '-' sets exceptionWeight for a break before the next character and
// does not count as a character itself:
//
//	"KING-desk" => {4: 9}
func exceptionPattern(hyphenated string) map[int]int {
	pattern := make(map[int]int, strings.Count(hyphenated, "-"))
	i := 0
	for _, r := range hyphenated {
		if r == '-' {
			pattern[i] = exceptionWeight
			continue
		}
		i++
	}
	return pattern
}

// exceptionTable is the merged lookup table of language and custom exceptions.
type exceptionTable struct {
	words *trie.Trie
	count int
}

// mergeExceptions builds the exception table. Custom exceptions win over
// language exceptions on key collision.
func mergeExceptions(language []string, custom map[string]string) *exceptionTable {
	merged := make(map[string]string, len(language)+len(custom))
	for _, exc := range language {
		merged[exceptionKey(exc)] = strings.ToLower(exc)
	}
	for key, exc := range custom {
		merged[key] = exc
	}
	table := &exceptionTable{words: trie.New()}
	for key, exc := range merged {
		if key == "" {
			continue
		}
		table.words.Add(key, exceptionPattern(exc))
		table.count++
	}
	tracer().Debugf("merged %d language and %d custom exceptions into %d entries",
		len(language), len(custom), table.count)
	return table
}

// lookup returns the weights for key, if key is an exception.
func (t *exceptionTable) lookup(key string) (map[int]int, bool) {
	if t == nil || t.count == 0 {
		return nil, false
	}
	node, ok := t.words.Find(key)
	if !ok {
		return nil, false
	}
	pattern, ok := node.Meta().(map[int]int)
	return pattern, ok
}

// keys lists exception keys starting with prefix, sorted.
func (t *exceptionTable) keys(prefix string) []string {
	if t == nil || t.count == 0 {
		return nil
	}
	var keys []string
	if prefix == "" {
		keys = t.words.Keys()
	} else {
		keys = t.words.PrefixSearch(prefix)
	}
	slices.Sort(keys)
	return keys
}

// canonicalExceptions normalizes a list of custom exceptions into a map
// key => lower-cased hyphenated word and returns a content hash of it.
// Later words win over earlier ones with the same key.
func canonicalExceptions(words []string) (map[string]string, uint64) {
	custom := make(map[string]string, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		custom[strings.ReplaceAll(w, "-", "")] = w
	}
	keys := make([]string, 0, len(custom))
	for key := range custom {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	d := xxhash.New()
	for _, key := range keys {
		_, _ = d.WriteString(custom[key])
		_, _ = d.WriteString("\x00")
	}
	return custom, d.Sum64()
}
