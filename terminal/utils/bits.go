package utils

import (
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a fixed size bit set. The grid uses one bit per row to
// track which rows changed since the last flush.
type StaticBitSet struct {
	bits []uint64
	size int
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	Assert(size >= 0, "negative bit set size")
	return &StaticBitSet{
		bits: make([]uint64, (size+bitSetSize-1)/bitSetSize),
		size: size,
	}
}

// NewStaticBitSetFull creates a StaticBitSet with all bits set to 1.
func NewStaticBitSetFull(size int) *StaticBitSet {
	set := NewStaticBitSet(size)
	set.SetRange(0, size)
	return set
}

// Len is the number of bits in the set.
func (s *StaticBitSet) Len() int {
	return s.size
}

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	word, offset := s.addr(idx)
	s.bits[word] |= 1 << offset
}

// SetRange sets every bit in [start, end).
func (s *StaticBitSet) SetRange(start, end int) {
	Assert(0 <= start)
	Assert(start <= end)
	Assert(end <= s.size, "End index out of bounds")
	for idx := start; idx < end; {
		word, offset := s.addr(idx)
		// Fill a whole word when the range covers it.
		if offset == 0 && end-idx >= bitSetSize {
			s.bits[word] = ^uint64(0)
			idx += bitSetSize
			continue
		}
		s.bits[word] |= 1 << offset
		idx++
	}
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	word, offset := s.addr(idx)
	return s.bits[word]&(1<<offset) != 0
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for _, word := range s.bits {
		total += bits.OnesCount64(word)
	}
	return total
}

// Each calls fn with the index of every set bit, in ascending order.
func (s *StaticBitSet) Each(fn func(idx int)) {
	for word, value := range s.bits {
		for value != 0 {
			offset := bits.TrailingZeros64(value)
			fn(word*bitSetSize + offset)
			value &= value - 1
		}
	}
}

// Clear clears the bits set
func (s *StaticBitSet) Clear() {
	clear(s.bits)
}

// addr return the index of the word containing the bit at idx and the
// offset of the bit in that word.
func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}
