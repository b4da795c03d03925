package shared

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOrder  = errors.New("unknown component order")
	ErrUnknownFormat = errors.New("unknown output format")
)

// MalformedOrderError reports a component order that does not visit each of
// the 3 color components exactly once.
type MalformedOrderError struct {
	Order  string
	Reason string
}

func (err MalformedOrderError) Error() string {
	return fmt.Sprintf("malformed component order `%v`: %v", err.Order, err.Reason)
}

// InvalidColorError reports a color literal that could not be parsed.
type InvalidColorError struct {
	Input  string
	Reason string
}

func (err InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color `%v`: %v", err.Input, err.Reason)
}
