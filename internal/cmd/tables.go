package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/quacken/quacken/layout"
	"github.com/quacken/quacken/resources"
)

// loadTables builds the layout configuration for one session: the generic
// keyboard table layered with the requested language table, read from an
// external resource directory when given, else from the embedded files.
// An unknown language falls back to the us layout with a notice.
func loadTables(resourceDir, language string, logger *slog.Logger) (*layout.Table, error) {
	var res fs.FS = resources.FS
	if resourceDir != "" {
		res = os.DirFS(resourceDir)
	}
	tables, err := layout.Load(res, language)
	if errors.Is(err, fs.ErrNotExist) && language != "us" {
		logger.Warn("no layout file for language, falling back to us", "language", language)
		return layout.Load(res, "us")
	}
	return tables, err
}
