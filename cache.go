package softhyphen

import "sync"

// Cache holds at most one Hyphenator per language code.
//
// The Cache itself is safe for concurrent use; the Hyphenators it hands out
// are not (see Hyphenator).
type Cache struct {
	mu          sync.Mutex
	loader      LanguageLoader
	custom      []string
	hyphenators map[string]*Hyphenator
}

// NewCache creates an empty cache, loading languages with loader.
func NewCache(loader LanguageLoader) *Cache {
	return &Cache{
		loader:      loader,
		hyphenators: make(map[string]*Hyphenator),
	}
}

// Get returns the Hyphenator for code, creating it on first request.
// The boolean result reports whether the language could be loaded; if not,
// the returned Hyphenator passes input through unchanged.
func (c *Cache) Get(code string) (*Hyphenator, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.hyphenators[code]; ok {
		return h, h.lang != nil
	}
	h := New(c.loader)
	h.SetCustomExceptions(c.custom)
	ok := h.SetLanguage(code)
	c.hyphenators[code] = h
	return h, ok
}

// SetCustomExceptions sets custom exceptions for all cached and future
// Hyphenators.
func (c *Cache) SetCustomExceptions(words []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = append(c.custom[:0], words...)
	for _, h := range c.hyphenators {
		h.SetCustomExceptions(c.custom)
	}
}

// Languages returns the codes of all languages requested so far.
func (c *Cache) Languages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	codes := make([]string, 0, len(c.hyphenators))
	for code := range c.hyphenators {
		codes = append(codes, code)
	}
	return codes
}
