package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spacemeshos/colorbits/color"
	"github.com/spacemeshos/colorbits/config"
	"github.com/spacemeshos/colorbits/internal/render"
	"github.com/spacemeshos/colorbits/shared"
)

var pink = color.New(255, 0b1010_1010, 0b1110_0001)

func TestRender_Bits(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	err := render.Render(buf, pink, color.GRB{}, render.WithLogger(zaptest.NewLogger(t)))
	req.NoError(err)
	req.Equal("10101010 11111111 11100001\n", buf.String())

	buf.Reset()
	req.NoError(render.Render(buf, pink, color.RGB{}))
	req.Equal("11111111 10101010 11100001\n", buf.String())
}

func TestRender_Raw(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	req.NoError(render.Render(buf, pink, color.GRB{}, render.WithFormat(config.FormatRaw)))
	req.Equal([]byte{0xAA, 0xFF, 0xE1}, buf.Bytes())

	buf.Reset()
	req.NoError(render.Render(buf, pink, color.BGR{}, render.WithFormat(config.FormatRaw)))
	req.Equal([]byte{0xE1, 0xAA, 0xFF}, buf.Bytes())
}

func TestRender_Hex(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer(nil)
	require.NoError(t, render.Render(buf, pink, color.GRB{}, render.WithFormat(config.FormatHex)))
	require.Equal(t, "aaffe1\n", buf.String())
}

func TestRender_Table(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	req.NoError(render.Render(buf, pink, color.GRB{}, render.WithFormat(config.FormatTable)))

	out := buf.String()
	green := strings.Index(out, "green")
	red := strings.Index(out, "red")
	blue := strings.Index(out, "blue")
	req.True(green >= 0 && green < red && red < blue, out)
	req.Contains(out, "10101010")
	req.Contains(out, "11111111")
	req.Contains(out, "11100001")
	req.Contains(out, "225")
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := render.Render(bytes.NewBuffer(nil), pink, color.GRB{}, render.WithFormat("svg"))
	require.ErrorIs(t, err, shared.ErrUnknownFormat)
}

type twoChannels struct{}

func (twoChannels) First() color.Component { return color.Red }
func (twoChannels) Next(current color.Component) (color.Component, bool) {
	if current == color.Red {
		return color.Blue, true
	}
	return 0, false
}

func TestRender_MalformedOrder(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer(nil)
	err := render.Render(buf, pink, twoChannels{})

	var malformed shared.MalformedOrderError
	require.ErrorAs(t, err, &malformed)
	require.Zero(t, buf.Len())
}

func TestRender_Logs(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	core, logs := observer.New(zap.DebugLevel)
	err := render.Render(bytes.NewBuffer(nil), pink, color.GRB{},
		render.WithLogger(zap.New(core)),
		render.WithFormat(config.FormatRaw),
	)
	req.NoError(err)

	entries := logs.FilterMessage("rendered color").All()
	req.Len(entries, 1)

	fields := entries[0].ContextMap()
	req.Equal("#ffaae1", fields["color"])
	req.Equal("grb", fields["order"])
	req.Equal(int64(24), fields["bits"])
	req.Equal("3B", fields["size"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("write failed")

func TestRender_WriteError(t *testing.T) {
	t.Parallel()

	for _, format := range []string{config.FormatBits, config.FormatRaw, config.FormatHex} {
		err := render.Render(failingWriter{}, pink, color.GRB{}, render.WithFormat(format))
		require.ErrorIs(t, err, errWrite, format)
	}
}
