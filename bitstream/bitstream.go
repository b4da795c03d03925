// Package bitstream provides bit-granularity access to byte values, following
// the MSB pattern, where most-significant bits are produced/written first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// String returns "1" for One and "0" for Zero.
func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}
