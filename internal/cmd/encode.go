package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/quacken/quacken/encoder"
	"github.com/quacken/quacken/internal/log"

	"golang.org/x/term"
)

// Encode is the default command: DuckyScript in, flat byte-pair payload out.
type Encode struct {
	Input       string `short:"i" help:"Input file in DuckyScript format" env:"QUACKEN_INPUT"`
	Output      string `short:"o" default:"inject.bin" help:"Output file for the encoded payload"`
	Language    string `short:"l" default:"us" help:"Keyboard layout (us, de, ...)" env:"QUACKEN_LANGUAGE"`
	Passthru    bool   `short:"p" help:"Read the script from stdin and write the payload to stdout (ignores -i/-o)"`
	RawPassthru bool   `short:"r" help:"Like --passthru, but stdin is typed literally instead of parsed as DuckyScript"`
	Resources   string `help:"Directory with layout .properties files (overrides the embedded set)" env:"QUACKEN_RESOURCES"`
}

// Run is called by kong when the encode command is executed.
func (c *Encode) Run(logger *slog.Logger, raw log.RawLogger) error {
	tables, err := loadTables(c.Resources, c.Language, logger)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	enc := encoder.New(tables, logger, raw)

	var source []byte
	switch {
	case c.Passthru || c.RawPassthru:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write a raw payload to a terminal; redirect stdout")
		}
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	case c.Input == "":
		return errors.New("an input file is required (-i) unless a passthru mode is given")
	default:
		source, err = os.ReadFile(c.Input)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	var payload []byte
	if c.RawPassthru {
		payload = enc.EncodeText(string(source))
	} else {
		payload = enc.EncodeScript(string(source))
	}

	if c.Passthru || c.RawPassthru {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(c.Output, payload, 0o644); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	logger.Info("payload written", "file", c.Output, "bytes", len(payload), "pairs", len(payload)/2)
	return nil
}
