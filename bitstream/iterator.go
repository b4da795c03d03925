package bitstream

import "iter"

const (
	byteWidth = 8
	msbMask   = 0x80
)

// ByteIterator produces the bits of a byte, MSB first.
// The zero value is an exhausted iterator.
type ByteIterator struct {
	value     byte
	remaining uint8
}

// Empty returns an iterator with no bits left. It is a stable placeholder
// until the first real value is known; see Reset.
func Empty() ByteIterator {
	return ByteIterator{}
}

// FromByte returns an iterator over the 8 bits of b.
func FromByte(b byte) ByteIterator {
	it := Empty()
	it.Reset(b)
	return it
}

// Reset restarts the iterator on b with 8 bits remaining.
// Bits of the previous value that were not produced yet are discarded.
func (it *ByteIterator) Reset(b byte) {
	it.value = b
	it.remaining = byteWidth
}

// Next returns the next bit and true, or false once all bits were produced.
func (it *ByteIterator) Next() (Bit, bool) {
	if it.remaining == 0 {
		return Zero, false
	}

	bit := Bit(it.value&msbMask != 0)

	// Shift the produced bit out, so the next one becomes the MSB.
	it.remaining--
	it.value <<= 1

	return bit, true
}

// Remaining returns the exact number of bits not produced yet.
func (it *ByteIterator) Remaining() int {
	return int(it.remaining)
}

// All returns a sequence draining the iterator.
func (it *ByteIterator) All() iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for {
			bit, ok := it.Next()
			if !ok || !yield(bit) {
				return
			}
		}
	}
}
