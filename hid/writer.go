package hid

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// writeTimeout bounds each report write. With no host reading from the
// gadget a write would otherwise block forever.
const writeTimeout = 250 * time.Millisecond

// deviceFile is the subset of *os.File the writer needs; tests substitute
// an in-memory implementation.
type deviceFile interface {
	Write(p []byte) (int, error)
	Sync() error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Writer streams payload pairs into a HID gadget character device.
type Writer struct {
	dev   deviceFile
	sleep func(time.Duration)
}

// Open opens the gadget device nonblocking so report writes honor deadlines.
func Open(path string) (*Writer, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open hid gadget %s: %w", path, err)
	}
	return &Writer{dev: os.NewFile(uintptr(fd), path), sleep: time.Sleep}, nil
}

func (w *Writer) Close() error {
	return w.dev.Close()
}

// Play writes the payload to the device pair by pair. A zero keycode is a
// delay code: the modifier byte holds milliseconds to sleep instead of a
// keypress. Every real pair becomes one report, flushed immediately, with no
// added inter-report delay (key release is the gadget host's concern).
func (w *Writer) Play(ctx context.Context, payload []byte) error {
	return ForEachPair(payload, func(key, mod byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if key == 0x00 {
			w.sleep(time.Duration(mod) * time.Millisecond)
			return nil
		}
		report := Report(mod, key)
		if err := w.dev.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
		if _, err := w.dev.Write(report[:]); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return w.dev.Sync()
	})
}
