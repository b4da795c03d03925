// Package render writes the bit sequence of a color in human or machine
// readable form.
package render

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/spacemeshos/colorbits/bitstream"
	"github.com/spacemeshos/colorbits/color"
	"github.com/spacemeshos/colorbits/config"
	"github.com/spacemeshos/colorbits/shared"
)

// Render writes the bits of c, produced in order o, to w.
func Render(w io.Writer, c color.Color, o color.Order, opts ...OptionFunc) error {
	options := applyOpts(opts...)

	if err := color.ValidateOrder(o); err != nil {
		return err
	}

	it := color.NewIterator(c, o)

	var (
		n   int
		err error
	)
	switch options.format {
	case config.FormatBits:
		n, err = writeBits(w, &it)
	case config.FormatTable:
		n, err = writeTable(w, &it, c, o)
	case config.FormatRaw:
		n, err = writeRaw(w, &it)
	case config.FormatHex:
		n, err = writeHex(w, &it)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, options.format)
	}
	if err != nil {
		return fmt.Errorf("render %v: %w", c, err)
	}

	options.logger.Debug("rendered color",
		zap.Stringer("color", c),
		zap.String("order", color.OrderName(o)),
		zap.String("format", options.format),
		zap.Int("bits", n),
		zap.String("size", bytefmt.ByteSize(uint64(n/8))),
	)

	return nil
}

// nextByte pulls up to 8 bits from it and returns them as a string of 0s and 1s.
func nextByte(it *color.Iterator[color.Order]) string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		bit, ok := it.Next()
		if !ok {
			break
		}
		sb.WriteString(bit.String())
	}
	return sb.String()
}

func writeBits(w io.Writer, it *color.Iterator[color.Order]) (int, error) {
	var (
		groups []string
		n      int
	)
	for it.Remaining() > 0 {
		bits := nextByte(it)
		n += len(bits)
		groups = append(groups, bits)
	}

	if _, err := io.WriteString(w, strings.Join(groups, " ")+"\n"); err != nil {
		return n, err
	}
	return n, nil
}

func writeTable(w io.Writer, it *color.Iterator[color.Order], c color.Color, o color.Order) (int, error) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Channel", "Value", "Bits"})
	table.SetBorder(true)

	var n int
	for _, component := range color.Walk(o) {
		bits := nextByte(it)
		n += len(bits)
		table.Append([]string{
			component.String(),
			strconv.Itoa(int(component.Select(c))),
			bits,
		})
	}
	table.Render()

	return n, nil
}

func writeRaw(w io.Writer, it *color.Iterator[color.Order]) (int, error) {
	bw := bitstream.NewWriter(w)
	n, err := bw.WriteFrom(it.All())
	if err != nil {
		return n, err
	}
	return n, bw.Flush(bitstream.Zero)
}

func writeHex(w io.Writer, it *color.Iterator[color.Order]) (int, error) {
	buf := bytes.NewBuffer(nil)
	n, err := writeRaw(buf, it)
	if err != nil {
		return n, err
	}

	if _, err := io.WriteString(w, hex.EncodeToString(buf.Bytes())+"\n"); err != nil {
		return n, err
	}
	return n, nil
}
