// Package layout holds the keyboard layout tables the encoder resolves
// against: a keyboard-generic base table and a language-specific locale
// table, each mapping symbolic names to USB byte values.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

var (
	// ErrNotFound reports a name absent from every queried table.
	ErrNotFound = errors.New("layout: no table entry")
	// ErrBadValue reports a table value that is neither valid hex nor decimal,
	// or does not fit a single byte.
	ErrBadValue = errors.New("layout: malformed numeric value")
)

// Table is the immutable pair of layered lookup tables for one encoding
// session. Values stay raw strings; they are parsed on lookup so that
// character-class entries (comma-separated name lists) and numeric entries
// can share the same maps.
type Table struct {
	base   map[string]string
	locale map[string]string
}

// New builds a Table from already-parsed property maps.
func New(base, locale map[string]string) *Table {
	return &Table{base: base, locale: locale}
}

// Load reads keyboard.properties and <language>.properties from res.
// A missing language file surfaces as fs.ErrNotExist so callers can decide
// on a fallback.
func Load(res fs.FS, language string) (*Table, error) {
	base, err := loadProperties(res, "keyboard.properties")
	if err != nil {
		return nil, err
	}
	locale, err := loadProperties(res, language+".properties")
	if err != nil {
		return nil, err
	}
	return New(base, locale), nil
}

func loadProperties(res fs.FS, name string) (map[string]string, error) {
	f, err := res.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	props, err := ParseProperties(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return props, nil
}

// Lookup resolves name to a byte value. With localeFirst the locale table
// takes precedence; otherwise the base table is tried first. Absence from
// both tables yields ErrNotFound, never a substituted value.
func (t *Table) Lookup(name string, localeFirst bool) (byte, error) {
	first, second := t.base, t.locale
	if localeFirst {
		first, second = t.locale, t.base
	}
	raw, ok := first[name]
	if !ok {
		if raw, ok = second[name]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}
	return ParseByte(raw)
}

// LocaleValue returns the raw locale entry for name. Character-class names
// (ASCII_xx, ISO_8859_1_xx) live only in the locale table and their values
// are name lists, not numbers.
func (t *Table) LocaleValue(name string) (string, bool) {
	v, ok := t.locale[name]
	return v, ok
}

// ParseByte parses a stored table value: hexadecimal when prefixed 0x/0X
// (case-insensitive), decimal otherwise. The result must fit one byte.
func ParseByte(raw string) (byte, error) {
	raw = strings.TrimSpace(raw)
	base := 10
	if len(raw) >= 2 && (raw[:2] == "0x" || raw[:2] == "0X") {
		base = 16
		raw = raw[2:]
	}
	n, err := strconv.ParseUint(raw, base, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, raw)
	}
	return byte(n), nil
}
