// Package encoder turns DuckyScript source into a flat stream of
// (keycode, modifier) byte pairs resolved against a layout.Table.
package encoder

import (
	"log/slog"

	"github.com/quacken/quacken/internal/log"
	"github.com/quacken/quacken/layout"
)

// Encoder encodes scripts against one fixed layout configuration.
// It is single-pass and not safe for concurrent use; build one per session.
type Encoder struct {
	tables *layout.Table
	logger *slog.Logger
	raw    log.RawLogger
}

// New builds an Encoder. raw may be a no-op logger (log.NewRaw(nil)).
func New(tables *layout.Table, logger *slog.Logger, raw log.RawLogger) *Encoder {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Encoder{tables: tables, logger: logger, raw: raw}
}

// EncodeText encodes literal text character by character, as the rawpassthru
// mode and the type command consume it. Unresolvable characters are skipped.
func (e *Encoder) EncodeText(text string) []byte {
	var payload []byte
	for _, c := range text {
		payload = append(payload, e.charBytes(c)...)
	}
	return payload
}
