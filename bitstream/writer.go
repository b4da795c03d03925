package bitstream

import (
	"io"
	"iter"
)

// BitWriter writes bits to an io.Writer.
type BitWriter struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	bw := new(BitWriter)
	bw.stream = w
	bw.alignment = 0 // most-significant bit
	return bw
}

// WriteByte writes a single byte to the stream, regardless of the alignment.
// If the byte is to be split due to alignment, its MS bits complete the pending byte.
func (bw *BitWriter) WriteByte(b byte) error {
	// Fill the pending byte LS bits with MS bits.
	bw.pending[0] |= b >> bw.alignment

	if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
		return shortWrite(n, err)
	}

	// Fill the new pending byte MS bits with LS bits.
	bw.pending[0] = b << (byteWidth - bw.alignment)

	return nil
}

// WriteBit writes a single bit to the stream, MSB first.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bit {
		bw.pending[0] |= msbMask >> bw.alignment
	}

	bw.alignment++

	if bw.alignment == byteWidth {
		if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
			return shortWrite(n, err)
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// WriteFrom drains seq into the stream and returns the number of bits written.
func (bw *BitWriter) WriteFrom(seq iter.Seq[Bit]) (int, error) {
	var n int
	for bit := range seq {
		if err := bw.WriteBit(bit); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.alignment != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}

func shortWrite(n int, err error) error {
	if err == nil && n != 1 {
		return io.ErrShortWrite
	}
	return err
}
