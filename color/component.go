package color

import "fmt"

// Component identifies one of the red, green, and blue channels of a Color.
type Component uint8

const (
	noComponent Component = iota
	Red
	Green
	Blue
)

const (
	numComponents    = 3
	bitsPerComponent = 8
)

// Select returns the value of the c channel of col.
func (c Component) Select(col Color) uint8 {
	switch c {
	case Red:
		return col.Red
	case Green:
		return col.Green
	case Blue:
		return col.Blue
	}
	return 0
}

// Valid reports whether c is one of Red, Green, or Blue.
func (c Component) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Component) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Component(%d)", uint8(c))
}

func (c Component) letter() byte {
	switch c {
	case Red:
		return 'r'
	case Green:
		return 'g'
	case Blue:
		return 'b'
	}
	return '?'
}
