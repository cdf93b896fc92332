package font

import "sync"

// runeMap is a memory-efficient memo from rune to bool.
// Uses 2 bits per rune: (checked, present).
//
// Each block covers 256 runes and is allocated on first use.
type runeMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*runeBlock // keyed by rune >> 8
}

// runeBlock holds 256 runes x 2 bits.
type runeBlock struct {
	bits [8]uint64
}

func newRuneMap() *runeMap {
	return &runeMap{blocks: make(map[uint32]*runeBlock)}
}

// get returns (present, checked).
func (m *runeMap) get(r rune) (present, checked bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[uint32(r)>>8]
	if !ok {
		return false, false
	}
	word, bit := runeBit(r)
	w := b.bits[word]
	return (w>>(bit+1))&1 != 0, (w>>bit)&1 != 0
}

// set records present for r and marks it checked.
func (m *runeMap) set(r rune, present bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := uint32(r) >> 8
	b, ok := m.blocks[idx]
	if !ok {
		b = &runeBlock{}
		m.blocks[idx] = b
	}
	word, bit := runeBit(r)
	b.bits[word] |= 1 << bit
	if present {
		b.bits[word] |= 1 << (bit + 1)
	} else {
		b.bits[word] &^= 1 << (bit + 1)
	}
}

// runeBit returns the word index and bit position of r's checked bit.
func runeBit(r rune) (word, bit uint32) {
	i := (uint32(r) & 0xFF) * 2
	return i / 64, i % 64
}
