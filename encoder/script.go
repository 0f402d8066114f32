package encoder

import (
	"strconv"
	"strings"
)

// EncodeScript runs the whole script through EncodeLine, skipping blanks and
// comments and expanding REPEAT against the previously recorded line. The
// returned payload is the concatenation of every line's byte pairs in order.
func (e *Encoder) EncodeScript(source string) []byte {
	var payload []byte
	var lastLine string
	haveLast := false

	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))

		// Blank lines and comments; REM requires its trailing space.
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "REM ") {
			continue
		}

		if strings.HasPrefix(line, "REPEAT ") {
			// Re-encode the recorded line N times. No count or no prior
			// line means the REPEAT is silently dropped; REPEAT lines are
			// never recorded themselves.
			_, arg, _ := strings.Cut(line, " ")
			arg = strings.TrimSpace(arg)
			if arg == "" || !haveLast {
				continue
			}
			n, err := strconv.Atoi(arg)
			if err != nil {
				e.logger.Error("REPEAT needs an integer count", "args", arg)
				continue
			}
			for i := 0; i < n; i++ {
				b := e.EncodeLine(lastLine)
				e.raw.Log(lastLine, b)
				payload = append(payload, b...)
			}
			continue
		}

		b := e.EncodeLine(line)
		e.raw.Log(line, b)
		payload = append(payload, b...)
		lastLine = line
		haveLast = true
	}
	return payload
}
