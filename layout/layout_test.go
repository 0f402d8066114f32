package layout_test

import (
	"testing"

	"github.com/quacken/quacken/layout"
	"github.com/quacken/quacken/resources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *layout.Table {
	base := map[string]string{
		"KEY_A":             "0x04",
		"KEY_LEFT_CTRL":     "224",
		"MODIFIERKEY_SHIFT": "0x02",
		"SHARED":            "0x10",
		"BROKEN":            "0xZZ",
		"TOO_BIG":           "300",
	}
	locale := map[string]string{
		"SHARED":            "0x20",
		"MODIFIERKEY_ALTGR": "0x40",
		"ASCII_61":          "KEY_A",
	}
	return layout.New(base, locale)
}

func TestLookupParsesHexAndDecimal(t *testing.T) {
	tbl := newTable()

	b, err := tbl.Lookup("KEY_A", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x04), b)

	b, err = tbl.Lookup("KEY_LEFT_CTRL", false)
	require.NoError(t, err)
	assert.Equal(t, byte(224), b)
}

func TestLookupPrecedence(t *testing.T) {
	tbl := newTable()

	// base first
	b, err := tbl.Lookup("SHARED", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x10), b)

	// locale first
	b, err = tbl.Lookup("SHARED", true)
	require.NoError(t, err)
	assert.Equal(t, byte(0x20), b)
}

func TestLookupFallsBackToOtherTable(t *testing.T) {
	tbl := newTable()

	// only in locale, base-first lookup still finds it
	b, err := tbl.Lookup("MODIFIERKEY_ALTGR", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x40), b)

	// only in base, locale-first lookup still finds it
	b, err = tbl.Lookup("KEY_A", true)
	require.NoError(t, err)
	assert.Equal(t, byte(0x04), b)
}

func TestLookupNotFound(t *testing.T) {
	tbl := newTable()
	_, err := tbl.Lookup("KEY_NOPE", false)
	assert.ErrorIs(t, err, layout.ErrNotFound)
}

func TestLookupMalformedValue(t *testing.T) {
	tbl := newTable()

	_, err := tbl.Lookup("BROKEN", false)
	assert.ErrorIs(t, err, layout.ErrBadValue)

	// values must fit one byte
	_, err = tbl.Lookup("TOO_BIG", false)
	assert.ErrorIs(t, err, layout.ErrBadValue)
}

func TestParseByte(t *testing.T) {
	cases := []struct {
		raw  string
		want byte
	}{
		{"0x2C", 0x2C},
		{"0X2c", 0x2C},
		{"44", 44},
		{"0", 0},
		{"255", 255},
	}
	for _, tc := range cases {
		b, err := layout.ParseByte(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, b, tc.raw)
	}

	_, err := layout.ParseByte("0x")
	assert.ErrorIs(t, err, layout.ErrBadValue)
	_, err = layout.ParseByte("")
	assert.ErrorIs(t, err, layout.ErrBadValue)
}

func TestLocaleValue(t *testing.T) {
	tbl := newTable()

	v, ok := tbl.LocaleValue("ASCII_61")
	assert.True(t, ok)
	assert.Equal(t, "KEY_A", v)

	_, ok = tbl.LocaleValue("ASCII_FF")
	assert.False(t, ok)
}

func TestLoadEmbeddedResources(t *testing.T) {
	tbl, err := layout.Load(resources.FS, "us")
	require.NoError(t, err)

	b, err := tbl.Lookup("KEY_ENTER", false)
	require.NoError(t, err)
	assert.Equal(t, byte(0x28), b)

	v, ok := tbl.LocaleValue("ASCII_61")
	assert.True(t, ok)
	assert.Equal(t, "KEY_A", v)
}

func TestLoadMissingLanguage(t *testing.T) {
	_, err := layout.Load(resources.FS, "xx")
	assert.Error(t, err)
}
