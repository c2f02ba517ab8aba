package softhyphen

import (
	"slices"
	"sync"
	"testing"
)

type countingLoader struct {
	mapLoader
	mu    sync.Mutex
	loads int
}

func (c *countingLoader) Load(code string) (*Language, error) {
	c.mu.Lock()
	c.loads++
	c.mu.Unlock()
	return c.mapLoader.Load(code)
}

func TestCacheOneHyphenatorPerLanguage(t *testing.T) {
	loader := &countingLoader{mapLoader: mapLoader{"en": {"1a"}}}
	cache := NewCache(loader)
	var wg sync.WaitGroup
	results := make([]*Hyphenator, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, ok := cache.Get("en")
			if !ok {
				t.Errorf("expected en to load")
			}
			results[i] = h
		}(i)
	}
	wg.Wait()
	for _, h := range results[1:] {
		if h != results[0] {
			t.Fatalf("expected a single Hyphenator for en")
		}
	}
	if loader.loads != 1 {
		t.Fatalf("expected 1 load, got %d", loader.loads)
	}
}

func TestCacheFailedLanguage(t *testing.T) {
	cache := NewCache(mapLoader{})
	h, ok := cache.Get("xx")
	if ok {
		t.Fatalf("expected xx to fail")
	}
	if got := h.HyphenateWord("banana", DefaultOptions()); got != "banana" {
		t.Fatalf("expected pass-through, got %q", got)
	}
	if _, ok := cache.Get("xx"); ok {
		t.Fatalf("expected cached failure for xx")
	}
	if langs := cache.Languages(); !slices.Equal(langs, []string{"xx"}) {
		t.Fatalf("languages: got %v", langs)
	}
}

func TestCacheCustomExceptions(t *testing.T) {
	cache := NewCache(mapLoader{"en": nil, "de": nil})
	en, _ := cache.Get("en")
	cache.SetCustomExceptions([]string{"KING-desk"})
	de, _ := cache.Get("de")
	opts := Options{Hyphen: "|", AllowTitleCase: true, MinLength: 2, MinBefore: 2, MinAfter: 2}
	for _, h := range []*Hyphenator{en, de} {
		if got := h.HyphenateWord("KINGdesk", opts); got != "KING|desk" {
			t.Fatalf("%s: got %q, want %q", h.Language(), got, "KING|desk")
		}
	}
}
