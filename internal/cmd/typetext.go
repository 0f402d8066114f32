package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/quacken/quacken/encoder"
	"github.com/quacken/quacken/hid"
	"github.com/quacken/quacken/internal/log"
)

// Type encodes literal text per character and types it into the gadget
// device immediately.
type Type struct {
	Text      []string `arg:"" help:"Text to type"`
	Language  string   `short:"l" default:"us" help:"Keyboard layout (us, de, ...)" env:"QUACKEN_LANGUAGE"`
	Resources string   `help:"Directory with layout .properties files (overrides the embedded set)" env:"QUACKEN_RESOURCES"`
	Device    string   `short:"d" default:"/dev/hidg0" help:"HID gadget device to write reports to" env:"QUACKEN_DEVICE"`
}

// Run is called by kong when the type command is executed.
func (c *Type) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := loadTables(c.Resources, c.Language, logger)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	payload := encoder.New(tables, logger, raw).EncodeText(strings.Join(c.Text, " "))

	w, err := hid.Open(c.Device)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Play(ctx, payload)
}
