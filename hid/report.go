// Package hid plays encoded payloads into a USB HID gadget keyboard
// endpoint such as /dev/hidg0.
package hid

// ReportSize is the fixed gadget report length: modifier, reserved byte,
// keycode, five further key slots, then eight bytes of padding.
const ReportSize = 16

// Report builds the gadget report for one (modifier, keycode) pair. Only
// the first key slot is used; a payload pair never presses more than one key.
func Report(mod, key byte) [ReportSize]byte {
	var b [ReportSize]byte
	b[0] = mod
	b[2] = key
	return b
}

// ForEachPair walks a payload two bytes at a time as (keycode, modifier)
// pairs. A trailing single byte means "no modifier byte" and terminates the
// walk without an error.
func ForEachPair(payload []byte, fn func(key, mod byte) error) error {
	for i := 0; i+1 < len(payload); i += 2 {
		if err := fn(payload[i], payload[i+1]); err != nil {
			return err
		}
	}
	return nil
}
