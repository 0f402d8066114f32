package layout_test

import (
	"strings"
	"testing"

	"github.com/quacken/quacken/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	src := `
// header comment
KEY_A = 0x04
KEY_B = 0x05 // trailing comment
  KEY_C   =   6

KEY_A = 0x07
`
	props, err := layout.ParseProperties(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "0x05", props["KEY_B"])
	assert.Equal(t, "6", props["KEY_C"])
	// duplicate keys: last occurrence wins
	assert.Equal(t, "0x07", props["KEY_A"])
	assert.Len(t, props, 3)
}

func TestParsePropertiesValueList(t *testing.T) {
	props, err := layout.ParseProperties(strings.NewReader("ASCII_41 = KEY_A, MODIFIERKEY_SHIFT\n"))
	require.NoError(t, err)
	assert.Equal(t, "KEY_A, MODIFIERKEY_SHIFT", props["ASCII_41"])
}

func TestParsePropertiesMissingSeparator(t *testing.T) {
	_, err := layout.ParseProperties(strings.NewReader("KEY_A = 0x04\nnot a pair\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParsePropertiesCommentOnlyLines(t *testing.T) {
	props, err := layout.ParseProperties(strings.NewReader("// just a comment\n\n   \n"))
	require.NoError(t, err)
	assert.Empty(t, props)
}
