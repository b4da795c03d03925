// Package color flattens 24-bit RGB colors into ordered bit sequences for
// bit-serial LED protocols.
//
// The channel order is a type parameter of Iterator: each Order
// implementation fixes which channel is produced first, second and last,
// while each channel is produced MSB first.
//
//	it := color.NewIterator(color.New(255, 0, 0), color.GRB{})
//	for bit := range it.All() {
//		// 8 zeros (green), 8 ones (red), 8 zeros (blue)
//	}
//
// Iterators never allocate; a consumer that drives many LEDs can keep a
// single Iterator per goroutine and reassign it for each color.
package color
