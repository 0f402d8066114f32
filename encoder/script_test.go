package encoder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeScriptCommentsAndBlanks(t *testing.T) {
	e := newEncoder(t, "us")

	script := "// a comment\n\n   \nREM also a comment\n"
	assert.Empty(t, e.EncodeScript(script))
}

func TestEncodeScriptRepeat(t *testing.T) {
	e := newEncoder(t, "us")

	one := e.EncodeLine("STRING A")
	payload := e.EncodeScript("STRING A\nREPEAT 2\n")

	// original plus two repeats
	assert.Equal(t, bytes.Repeat(one, 3), payload)
}

func TestEncodeScriptRepeatSkipsRepeatLines(t *testing.T) {
	e := newEncoder(t, "us")

	// the second REPEAT re-runs STRING A, not the first REPEAT
	one := e.EncodeLine("STRING A")
	payload := e.EncodeScript("STRING A\nREPEAT 1\nREPEAT 1\n")
	assert.Equal(t, bytes.Repeat(one, 3), payload)
}

func TestEncodeScriptRepeatWithoutPriorLine(t *testing.T) {
	e := newEncoder(t, "us")

	assert.Empty(t, e.EncodeScript("REPEAT 2\n"))

	// comments are not recorded as repeatable lines
	assert.Empty(t, e.EncodeScript("// nothing\nREPEAT 2\n"))
}

func TestEncodeScriptRepeatWithoutCount(t *testing.T) {
	e := newEncoder(t, "us")

	one := e.EncodeLine("STRING A")
	// "REPEAT " with no second token is a no-op
	payload := e.EncodeScript("STRING A\nREPEAT \n")
	assert.Equal(t, one, payload)

	// malformed count likewise
	payload = e.EncodeScript("STRING A\nREPEAT often\n")
	assert.Equal(t, one, payload)
}

func TestEncodeScriptCRLFAndWhitespace(t *testing.T) {
	e := newEncoder(t, "us")

	assert.Equal(t,
		e.EncodeScript("STRING ab\nDELAY 10\n"),
		e.EncodeScript("  STRING ab\r\nDELAY 10\r\n"))
}

func TestEncodeScriptMixedCommands(t *testing.T) {
	e := newEncoder(t, "us")

	payload := e.EncodeScript("DELAY 3\nSTRING hi\nENTER\n")
	want := []byte{
		0x00, 0x03, // DELAY 3
		0x0B, 0x00, 0x0C, 0x00, // h, i
		keyEnter, 0x00, // ENTER
	}
	assert.Equal(t, want, payload)

	// payload is always pair-aligned
	assert.Zero(t, len(payload)%2)
}

func TestEncodeScriptUnknownLinesDoNotAbort(t *testing.T) {
	e := newEncoder(t, "us")

	payload := e.EncodeScript("SOMETHINGBOGUS\nSTRING a\n")
	assert.Equal(t, []byte{keyA, 0x00}, payload)
}
