package encoder

import (
	"strconv"
	"strings"
)

// lineHandler encodes the argument part of one script command. Handlers
// degrade per piece: a sub-lookup that fails contributes nothing while the
// rest of the line's bytes are still emitted.
type lineHandler func(e *Encoder, args string) []byte

// lineHandlers is the closed command set. Anything not listed here falls
// through to bare-key resolution in EncodeLine.
var lineHandlers = map[string]lineHandler{
	"DELAY":          encodeDelay,
	"STRING":         encodeString,
	"STRING_DELAY":   encodeStringDelay,
	"CTRL":           encodeCtrl,
	"CONTROL":        encodeCtrl,
	"ALT":            encodeAlt,
	"SHIFT":          encodeShift,
	"CTRL-ALT":       encodeCtrlAlt,
	"CTRL-SHIFT":     encodeCtrlShift,
	"COMMAND-OPTION": encodeCommandOption,
	"ALT-SHIFT":      encodeAltShift,
	"ALT-TAB":        encodeAltTab,
	"GUI":            encodeGUI,
	"WINDOWS":        encodeGUI,
	"COMMAND":        encodeCommand,
}

// EncodeLine splits a script line at the first space into command and
// arguments and dispatches by exact (case-sensitive) command keyword.
func (e *Encoder) EncodeLine(line string) []byte {
	cmd, args, _ := strings.Cut(line, " ")
	cmd = strings.TrimSpace(cmd)
	args = strings.TrimSpace(args)

	if h, ok := lineHandlers[cmd]; ok {
		return h(e, args)
	}

	// Everything else is a bare key name; worst case the first token of a
	// line is pressed as a single key.
	key := e.keyInstrBytes(cmd)
	if len(key) == 0 {
		return nil
	}
	return append(key, 0x00)
}

func encodeDelay(e *Encoder, args string) []byte {
	ms, err := strconv.Atoi(args)
	if err != nil {
		e.logger.Error("DELAY needs an integer millisecond argument", "args", args)
		return nil
	}
	return DelayBytes(ms)
}

func encodeString(e *Encoder, args string) []byte {
	if args == "" {
		return nil
	}
	return e.EncodeText(args)
}

func encodeStringDelay(e *Encoder, args string) []byte {
	if args == "" {
		return nil
	}
	delayArg, text, _ := strings.Cut(args, " ")
	ms, err := strconv.Atoi(strings.TrimSpace(delayArg))
	if err != nil {
		e.logger.Error("STRING_DELAY needs an integer millisecond argument", "args", delayArg)
		return nil
	}
	delay := DelayBytes(ms)

	var out []byte
	for _, c := range strings.TrimSpace(text) {
		if kb := e.charBytes(c); len(kb) > 0 {
			out = append(out, kb...)
			out = append(out, delay...)
		}
	}
	return out
}

// keyWithModifier encodes "<key> <single modifier>" lines. Either piece may
// resolve to nothing; whatever did resolve is still emitted.
func (e *Encoder) keyWithModifier(args, modifier string) []byte {
	out := e.keyInstrBytes(args)
	if mod, ok := e.propByte(modifier); ok {
		out = append(out, mod)
	}
	return out
}

// standaloneKey encodes the no-argument form of CTRL/ALT/SHIFT/COMMAND: the
// plain key with a zero modifier byte.
func (e *Encoder) standaloneKey(keyName string) []byte {
	k, ok := e.propByte(keyName)
	if !ok {
		return nil
	}
	return []byte{k, 0x00}
}

// keyWithCombo encodes "<key> <modA|modB>" lines for the compound-modifier
// commands.
func (e *Encoder) keyWithCombo(args, modA, modB string) []byte {
	out := e.keyInstrBytes(args)
	if mod, ok := e.modifierOr(modA, modB); ok {
		out = append(out, mod)
	}
	return out
}

func encodeCtrl(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithModifier(args, "MODIFIERKEY_CTRL")
	}
	return e.standaloneKey("KEY_LEFT_CTRL")
}

func encodeAlt(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithModifier(args, "MODIFIERKEY_ALT")
	}
	return e.standaloneKey("KEY_LEFT_ALT")
}

func encodeShift(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithModifier(args, "MODIFIERKEY_SHIFT")
	}
	return e.standaloneKey("KEY_LEFT_SHIFT")
}

// The compound-modifier commands have no standalone default; without an
// argument the whole line is a no-op. CTRL/ALT/SHIFT/GUI above do provide
// one. The asymmetry is inherited behavior that existing payload builders
// rely on, so it stays.
func encodeCtrlAlt(e *Encoder, args string) []byte {
	if args == "" {
		return nil
	}
	return e.keyWithCombo(args, "MODIFIERKEY_CTRL", "MODIFIERKEY_ALT")
}

func encodeCtrlShift(e *Encoder, args string) []byte {
	if args == "" {
		return nil
	}
	return e.keyWithCombo(args, "MODIFIERKEY_CTRL", "MODIFIERKEY_SHIFT")
}

func encodeCommandOption(e *Encoder, args string) []byte {
	if args == "" {
		return nil
	}
	return e.keyWithCombo(args, "MODIFIERKEY_LEFT_GUI", "MODIFIERKEY_ALT")
}

func encodeAltShift(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithCombo(args, "MODIFIERKEY_LEFT_ALT", "MODIFIERKEY_SHIFT")
	}
	// No argument: the combo is applied to the left Alt key itself.
	var out []byte
	if k, ok := e.propByte("KEY_LEFT_ALT"); ok {
		out = append(out, k)
	}
	if mod, ok := e.modifierOr("MODIFIERKEY_LEFT_ALT", "MODIFIERKEY_SHIFT"); ok {
		out = append(out, mod)
	}
	return out
}

// ALT-TAB is argument-free; any argument turns the line into a no-op.
func encodeAltTab(e *Encoder, args string) []byte {
	if args != "" {
		return nil
	}
	var out []byte
	if k, ok := e.propByte("KEY_TAB"); ok {
		out = append(out, k)
	}
	if mod, ok := e.propByte("MODIFIERKEY_LEFT_ALT"); ok {
		out = append(out, mod)
	}
	return out
}

func encodeGUI(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithModifier(args, "MODIFIERKEY_LEFT_GUI")
	}
	var out []byte
	if k, ok := e.propByte("KEY_LEFT_GUI"); ok {
		out = append(out, k)
	}
	if mod, ok := e.propByte("MODIFIERKEY_LEFT_GUI"); ok {
		out = append(out, mod)
	}
	return out
}

func encodeCommand(e *Encoder, args string) []byte {
	if args != "" {
		return e.keyWithModifier(args, "MODIFIERKEY_LEFT_GUI")
	}
	return e.standaloneKey("KEY_COMMAND")
}
