package color

import (
	"iter"

	"github.com/spacemeshos/colorbits/bitstream"
)

// Iterator produces the 24 bits of a Color, one channel at a time in the
// order fixed by O, each channel MSB first.
//
// The zero value is an exhausted iterator. An Iterator must not be shared
// between goroutines.
type Iterator[O Order] struct {
	order O
	color Color
	bits  bitstream.ByteIterator

	// cursor is the channel bits currently reflects.
	// It is noComponent once all channels were produced.
	cursor Component
}

// NewIterator returns an iterator over the bits of c using order.
//
// Pass a concrete order such as GRB{} to bind the order at compile time,
// or an Order interface value to choose it at runtime.
func NewIterator[O Order](c Color, order O) Iterator[O] {
	first := order.First()
	return Iterator[O]{
		order:  order,
		color:  c,
		bits:   bitstream.FromByte(first.Select(c)),
		cursor: first,
	}
}

// Next returns the next bit and true, or false once all channels were produced.
func (it *Iterator[O]) Next() (bitstream.Bit, bool) {
	if bit, ok := it.bits.Next(); ok {
		return bit, true
	}

	if it.cursor == noComponent {
		return bitstream.Zero, false
	}

	next, ok := it.order.Next(it.cursor)
	if !ok {
		it.cursor = noComponent
		return bitstream.Zero, false
	}

	it.cursor = next
	it.bits.Reset(next.Select(it.color))
	return it.bits.Next()
}

// Remaining returns the exact number of bits not produced yet.
func (it *Iterator[O]) Remaining() int {
	n := it.bits.Remaining()
	c := it.cursor
	for i := 0; c != noComponent && i < numComponents; i++ {
		next, ok := it.order.Next(c)
		if !ok {
			break
		}
		n += bitsPerComponent
		c = next
	}
	return n
}

// All returns a sequence draining the iterator.
func (it *Iterator[O]) All() iter.Seq[bitstream.Bit] {
	return func(yield func(bitstream.Bit) bool) {
		for {
			bit, ok := it.Next()
			if !ok || !yield(bit) {
				return
			}
		}
	}
}
