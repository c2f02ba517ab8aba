package dat

// Alphabet maps runes of the Basic Multilingual Plane to dense alphabet IDs.
// It's a two-level page table:
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - pages is a flat array of NumPages*256 entries.
//
// Lookup needs two array reads. Each populated page costs 512 bytes, so a
// typical Latin alphabet touches two or three pages.
type Alphabet struct {
	top   [256]uint16
	pages []uint16
}

// Dense returns the dense ID for r, or 0 if r is not part of the alphabet.
// Runes outside the BMP are never part of the alphabet.
func (a *Alphabet) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := a.top[r>>8]
	if pi == 0 {
		return 0
	}
	return a.pages[int(pi-1)<<8+int(r&0xFF)]
}

// Set maps r to dense (dense may be 0 to clear). It reports false for runes
// outside the BMP.
func (a *Alphabet) Set(r rune, dense uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	pi := a.top[hi]
	if pi == 0 {
		if dense == 0 {
			return true
		}
		a.pages = append(a.pages, make([]uint16, 256)...)
		pi = uint16(len(a.pages) >> 8)
		a.top[hi] = pi
	}
	a.pages[int(pi-1)<<8+int(r&0xFF)] = dense
	return true
}

// NumPages returns the number of allocated pages.
func (a *Alphabet) NumPages() int { return len(a.pages) >> 8 }
