package encoder_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/quacken/quacken/encoder"
	"github.com/quacken/quacken/layout"
	"github.com/quacken/quacken/resources"

	"github.com/stretchr/testify/require"
)

func newEncoder(t *testing.T, language string) *encoder.Encoder {
	t.Helper()
	tables, err := layout.Load(resources.FS, language)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return encoder.New(tables, logger, nil)
}

// Byte values used in expectations, from the embedded keyboard.properties.
const (
	keyA        = 0x04
	keyB        = 0x05
	keyC        = 0x06
	keyQ        = 0x14
	keyR        = 0x15
	keyY        = 0x1C
	keyZ        = 0x1D
	keyEnter    = 0x28
	keyEsc      = 0x29
	keyTab      = 0x2B
	keySpace    = 0x2C
	keyDelete   = 0x4C
	keyLeftBrce = 0x2F
	keyLeftCtrl = 224
	keyLeftAlt  = 226
	keyLeftGUI  = 227
	modCtrl     = 0x01
	modShift    = 0x02
	modAlt      = 0x04
	modGUI      = 0x08
	modAltGr    = 0x40
)
