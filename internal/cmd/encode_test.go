package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/quacken/quacken/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadTablesEmbedded(t *testing.T) {
	tbl, err := loadTables("", "us", discardLogger())
	require.NoError(t, err)

	b, err := tbl.Lookup("KEY_A", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x04), b)
}

func TestLoadTablesUnknownLanguageFallsBack(t *testing.T) {
	tbl, err := loadTables("", "xx", discardLogger())
	require.NoError(t, err)

	// fell back to the us layout
	v, ok := tbl.LocaleValue("ASCII_61")
	assert.True(t, ok)
	assert.Equal(t, "KEY_A", v)
}

func TestLoadTablesExternalResourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keyboard.properties"),
		[]byte("KEY_X = 0x1B\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "us.properties"),
		[]byte("ASCII_78 = KEY_X\n"), 0o644))

	tbl, err := loadTables(dir, "us", discardLogger())
	require.NoError(t, err)

	b, err := tbl.Lookup("KEY_X", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x1B), b)
}

func TestEncodeRunWritesPayloadFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.txt")
	output := filepath.Join(dir, "inject.bin")
	require.NoError(t, os.WriteFile(input, []byte("STRING ab\nDELAY 3\n"), 0o644))

	c := &Encode{Input: input, Output: output, Language: "us"}
	require.NoError(t, c.Run(discardLogger(), log.NewRaw(nil)))

	payload, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x00, 0x05, 0x00, 0x00, 0x03}, payload)
}

func TestEncodeRunMissingInput(t *testing.T) {
	c := &Encode{Language: "us", Output: filepath.Join(t.TempDir(), "out.bin")}
	err := c.Run(discardLogger(), log.NewRaw(nil))
	require.Error(t, err)

	// no partial output file
	_, statErr := os.Stat(c.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEncodeRunUnreadableInput(t *testing.T) {
	c := &Encode{Input: filepath.Join(t.TempDir(), "nope.txt"), Language: "us",
		Output: filepath.Join(t.TempDir(), "out.bin")}
	err := c.Run(discardLogger(), log.NewRaw(nil))
	require.Error(t, err)

	_, statErr := os.Stat(c.Output)
	assert.True(t, os.IsNotExist(statErr))
}
