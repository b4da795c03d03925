package color

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spacemeshos/colorbits/shared"
)

// Color is a 24-bit representation of red, green, and blue components.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// New returns the color of the given red, green, and blue components.
func New(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// BitsGRB returns an iterator over the bits of c in green, red, blue order.
func (c Color) BitsGRB() Iterator[GRB] {
	return NewIterator(c, GRB{})
}

// Hex returns the color formatted as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a color given as RRGGBB or RGB, with an optional leading '#'.
// In the short form every digit is repeated, so "f80" equals "ff8800".
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")

	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return Color{}, shared.InvalidColorError{
			Input:  s,
			Reason: fmt.Sprintf("expected: 3 or 6 hex digits, given: %d", len(digits)),
		}
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, shared.InvalidColorError{Input: s, Reason: err.Error()}
	}

	return New(b[0], b[1], b[2]), nil
}
