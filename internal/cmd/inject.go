package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quacken/quacken/encoder"
	"github.com/quacken/quacken/hid"
	"github.com/quacken/quacken/internal/log"
)

// Inject encodes a script (or loads an already-encoded payload) and plays it
// into a HID gadget device.
type Inject struct {
	Input     string `short:"i" help:"Input file in DuckyScript format"`
	Bin       string `help:"Play an already-encoded payload file instead of encoding a script"`
	Language  string `short:"l" default:"us" help:"Keyboard layout (us, de, ...)" env:"QUACKEN_LANGUAGE"`
	Resources string `help:"Directory with layout .properties files (overrides the embedded set)" env:"QUACKEN_RESOURCES"`
	Device    string `short:"d" default:"/dev/hidg0" help:"HID gadget device to write reports to" env:"QUACKEN_DEVICE"`
}

// Run is called by kong when the inject command is executed.
func (c *Inject) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var payload []byte
	switch {
	case c.Bin != "":
		b, err := os.ReadFile(c.Bin)
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}
		payload = b
	case c.Input != "":
		tables, err := loadTables(c.Resources, c.Language, logger)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		source, err := os.ReadFile(c.Input)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		payload = encoder.New(tables, logger, raw).EncodeScript(string(source))
	default:
		return errors.New("either an input script (-i) or a payload file (--bin) is required")
	}

	w, err := hid.Open(c.Device)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("injecting payload", "device", c.Device, "pairs", len(payload)/2)
	if err := w.Play(ctx, payload); err != nil {
		return fmt.Errorf("inject: %w", err)
	}
	return nil
}
