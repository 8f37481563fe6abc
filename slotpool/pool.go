// Package slotpool hands out unique slot numbers from a fixed range.
//
// A hashcontainer.Index expects the caller to pick a free slot for each entry.
// A Pool keeps one bit per slot: 1 - in use, 0 - free.
package slotpool

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

type Pool struct {
	bitmap []uint64 // 64 slots per word
	size   uint32
	used   uint32
	hint   int // no free slot below word hint
}

func New(capacity uint32) *Pool {
	return &Pool{
		bitmap: make([]uint64, (uint64(capacity)+63)>>6),
		size:   capacity,
	}
}

// Cap returns the number of slots.
func (p *Pool) Cap() uint32 {
	return p.size
}

// Len returns the number of slots in use.
func (p *Pool) Len() uint32 {
	return p.used
}

// Free returns the number of slots that can still be acquired.
func (p *Pool) Free() uint32 {
	return p.size - p.used
}

func (p *Pool) Has(slot uint32) bool {
	if slot >= p.size {
		return false
	}
	return (p.bitmap[slot>>6]>>(slot&0x3F))&0x01 != 0
}

// Acquire marks the lowest free slot as used and returns it.
func (p *Pool) Acquire() (uint32, bool) {
	for ofs := p.hint; ofs < len(p.bitmap); ofs++ {
		bmp := p.bitmap[ofs]
		if bmp == ^uint64(0) {
			continue // all 64 slots are taken
		}
		idx := uint32(bits.TrailingZeros64(^bmp))
		slot := uint32(ofs)<<6 | idx
		if slot >= p.size {
			break // the tail of the last word is not part of the pool
		}
		p.bitmap[ofs] = bmp | (1 << idx)
		p.used++
		p.hint = ofs
		return slot, true
	}
	p.hint = len(p.bitmap)
	return 0, false
}

// Release gives a slot back. It returns false when the slot was not in use.
func (p *Pool) Release(slot uint32) bool {
	if !p.Has(slot) {
		return false
	}
	ofs := int(slot >> 6)
	p.bitmap[ofs] &^= 1 << (slot & 0x3F)
	p.used--
	if ofs < p.hint {
		p.hint = ofs
	}
	return true
}

// Rank returns the number of used slots below slot.
func (p *Pool) Rank(slot uint32) uint32 {
	if slot > p.size {
		slot = p.size
	}

	var (
		ofs = slot >> 6
		idx = slot & 0x3F // the lowest 6 bits (2**6 == 64)
		cnt uint64
	)

	for j := uint32(0); j < ofs; j++ {
		cnt += uint64(popcount.Count(p.bitmap[j]))
	}
	if idx != 0 {
		cnt += uint64(popcount.Count(p.bitmap[ofs] & ((1 << idx) - 1)))
	}

	return uint32(cnt)
}

// Recount recomputes the number of used slots from the bitmap.
func (p *Pool) Recount() uint32 {
	var cnt uint64
	for _, bmp := range p.bitmap {
		cnt += uint64(popcount.Count(bmp))
	}
	p.used = uint32(cnt)
	return p.used
}

// Reset releases every slot.
func (p *Pool) Reset() {
	for i := range p.bitmap {
		p.bitmap[i] = 0
	}
	p.used = 0
	p.hint = 0
}
