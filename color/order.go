package color

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spacemeshos/colorbits/shared"
)

// Order specifies the iteration order of color components.
//
// Starting from First, repeated calls to Next must visit each of Red, Green,
// and Blue exactly once and then report false. Iterator does not check this;
// an order that skips or repeats a channel yields the wrong number of bits.
// Use ValidateOrder to check an implementation.
type Order interface {
	// First returns the first color component.
	First() Component
	// Next returns the component following current, or false if current is the last one.
	Next(current Component) (Component, bool)
}

type sequence [numComponents]Component

func (s sequence) next(current Component) (Component, bool) {
	switch current {
	case s[0]:
		return s[1], true
	case s[1]:
		return s[2], true
	}
	return noComponent, false
}

var (
	grb = sequence{Green, Red, Blue}
	rgb = sequence{Red, Green, Blue}
	brg = sequence{Blue, Red, Green}
	bgr = sequence{Blue, Green, Red}
	gbr = sequence{Green, Blue, Red}
	rbg = sequence{Red, Blue, Green}
)

// GRB implements Green, Red, Blue ordering, as used by WS2812 and SK6812 strips.
type GRB struct{}

func (GRB) First() Component                         { return grb[0] }
func (GRB) Next(current Component) (Component, bool) { return grb.next(current) }

// RGB implements Red, Green, Blue ordering.
type RGB struct{}

func (RGB) First() Component                         { return rgb[0] }
func (RGB) Next(current Component) (Component, bool) { return rgb.next(current) }

// BRG implements Blue, Red, Green ordering.
type BRG struct{}

func (BRG) First() Component                         { return brg[0] }
func (BRG) Next(current Component) (Component, bool) { return brg.next(current) }

// BGR implements Blue, Green, Red ordering.
type BGR struct{}

func (BGR) First() Component                         { return bgr[0] }
func (BGR) Next(current Component) (Component, bool) { return bgr.next(current) }

// GBR implements Green, Blue, Red ordering.
type GBR struct{}

func (GBR) First() Component                         { return gbr[0] }
func (GBR) Next(current Component) (Component, bool) { return gbr.next(current) }

// RBG implements Red, Blue, Green ordering.
type RBG struct{}

func (RBG) First() Component                         { return rbg[0] }
func (RBG) Next(current Component) (Component, bool) { return rbg.next(current) }

var orders = map[string]Order{
	"grb": GRB{},
	"rgb": RGB{},
	"brg": BRG{},
	"bgr": BGR{},
	"gbr": GBR{},
	"rbg": RBG{},
}

// OrderByName returns the built-in order with the given name, e.g. "grb".
// Names are case-insensitive.
func OrderByName(name string) (Order, error) {
	o, ok := orders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q; expected one of: %v", shared.ErrUnknownOrder, name, strings.Join(OrderNames(), ", "))
	}
	return o, nil
}

// OrderNames returns the sorted names of the built-in orders.
func OrderNames() []string {
	return slices.Sorted(maps.Keys(orders))
}

// OrderName returns the name of o, built from the first letter of each
// component it visits. Invalid components are written as '?'.
func OrderName(o Order) string {
	var name []byte
	c := o.First()
	for i := 0; i < numComponents; i++ {
		name = append(name, c.letter())
		next, ok := o.Next(c)
		if !ok {
			break
		}
		c = next
	}
	return string(name)
}

// Walk returns the components o visits, in order. It stops after
// numComponents+1 steps so that a cyclic order cannot loop forever.
func Walk(o Order) []Component {
	components := make([]Component, 0, numComponents)
	c := o.First()
	for i := 0; i <= numComponents; i++ {
		components = append(components, c)
		next, ok := o.Next(c)
		if !ok {
			break
		}
		c = next
	}
	return components
}

// ValidateOrder returns nil if o visits each color component exactly once,
// or a shared.MalformedOrderError describing the first violation.
func ValidateOrder(o Order) error {
	name := fmt.Sprintf("%T", o)

	var seen [numComponents + 1]bool
	for i, c := range Walk(o) {
		if !c.Valid() {
			return shared.MalformedOrderError{
				Order:  name,
				Reason: fmt.Sprintf("invalid component %v at step %d", c, i+1),
			}
		}
		if seen[c] {
			return shared.MalformedOrderError{
				Order:  name,
				Reason: fmt.Sprintf("component %v visited twice", c),
			}
		}
		seen[c] = true
	}

	for _, c := range []Component{Red, Green, Blue} {
		if !seen[c] {
			return shared.MalformedOrderError{
				Order:  name,
				Reason: fmt.Sprintf("component %v never visited", c),
			}
		}
	}

	return nil
}
