package encoder

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quacken/quacken/layout"
)

// keyAliases normalizes DuckyScript key names that have no direct KEY_ entry
// to the name the layout tables use. Applied once, after the first lookup
// misses.
var keyAliases = map[string]string{
	"ESCAPE":     "ESC",
	"RETURN":     "ENTER",
	"DEL":        "DELETE",
	"BREAK":      "PAUSE",
	"CONTROL":    "CTRL",
	"DOWNARROW":  "DOWN",
	"UPARROW":    "UP",
	"LEFTARROW":  "LEFT",
	"RIGHTARROW": "RIGHT",
	"MENU":       "APP",
	"WINDOWS":    "GUI",
	"PLAY":       "MEDIA_PLAY_PAUSE",
	"PAUSE":      "MEDIA_PLAY_PAUSE",
	"STOP":       "MEDIA_STOP",
	"MUTE":       "MEDIA_MUTE",
	"VOLUMEUP":   "MEDIA_VOLUME_INC",
	"VOLUMEDOWN": "MEDIA_VOLUME_DEC",
	"SCROLLLOCK": "SCROLL_LOCK",
	"NUMLOCK":    "NUM_LOCK",
	"CAPSLOCK":   "CAPS_LOCK",
}

// charBytes resolves a single character to its keycode+modifier pair.
// Characters below 0x80 map to ASCII_xx names, the rest to ISO_8859_1_xx;
// both classes exist only in the locale table. A missing entry skips the
// character (diagnostic, not fatal). The locale value is a comma-separated
// list of one or two table names, each resolved base-first; if only a
// keycode results, a zero modifier byte is appended.
func (e *Encoder) charBytes(c rune) []byte {
	name := fmt.Sprintf("ASCII_%02X", c)
	if c >= 0x80 {
		name = fmt.Sprintf("ISO_8859_1_%02X", c)
	}

	raw, ok := e.tables.LocaleValue(name)
	if !ok {
		e.logger.Warn("character not found in language table, skipping",
			"char", string(c), "entry", name)
		return nil
	}

	var out []byte
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		b, err := e.tables.Lookup(entry, false)
		if err != nil {
			e.reportLookup(entry, err)
			return nil
		}
		out = append(out, b)
	}
	if len(out) == 1 {
		out = append(out, 0x00)
	}
	return out
}

// keyInstrBytes resolves a named key instruction to its single keycode byte.
// A one-character instruction goes through the character path so locale
// translation applies (CTRL z on a German layout presses the key labelled Y);
// the modifier the character would carry is discarded. Longer names are
// prefixed KEY_ and looked up base-first, with one alias-normalized retry.
// An empty result means the key contributes nothing to the line.
func (e *Encoder) keyInstrBytes(instr string) []byte {
	instr = strings.TrimSpace(instr)
	if utf8.RuneCountInString(instr) == 1 {
		c, _ := utf8.DecodeRuneInString(instr)
		kb := e.charBytes(c)
		if len(kb) == 0 {
			return nil
		}
		return kb[:1]
	}

	entry := "KEY_" + instr
	b, err := e.tables.Lookup(entry, false)
	if errors.Is(err, layout.ErrNotFound) {
		if alias, ok := keyAliases[strings.ToUpper(instr)]; ok {
			entry = "KEY_" + alias
			b, err = e.tables.Lookup(entry, false)
		}
	}
	if err != nil {
		e.reportLookup(entry, err)
		return nil
	}
	return []byte{b}
}

// propByte resolves a fixed table constant (MODIFIERKEY_*, KEY_*) base-first.
func (e *Encoder) propByte(name string) (byte, bool) {
	b, err := e.tables.Lookup(name, false)
	if err != nil {
		e.reportLookup(name, err)
		return 0, false
	}
	return b, true
}

// modifierOr resolves two modifier constants and ORs their bitmasks.
func (e *Encoder) modifierOr(a, b string) (byte, bool) {
	ba, oka := e.propByte(a)
	bb, okb := e.propByte(b)
	if !oka || !okb {
		return 0, false
	}
	return ba | bb, true
}

func (e *Encoder) reportLookup(entry string, err error) {
	if errors.Is(err, layout.ErrBadValue) {
		e.logger.Error("malformed keycode value", "entry", entry, "error", err)
		return
	}
	e.logger.Error("no keycode entry", "entry", entry)
	e.logger.Warn("this could corrupt the generated output")
}
