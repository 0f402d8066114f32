package layout

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseProperties reads a layout resource file: one `key = value` pair per
// line, `//` starts a trailing comment, blank lines are ignored, keys and
// values are whitespace-trimmed. Duplicate keys: last occurrence wins.
// A non-blank line without a `=` separator fails the whole load.
func ParseProperties(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '=' separator", lineNo)
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return props, nil
}
