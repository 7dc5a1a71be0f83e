// Package secureclip copies passwords to the system clipboard and clears
// them again after a timeout.
package secureclip

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// DefaultTimeout is how long a password stays on the clipboard.
const DefaultTimeout = 30 * time.Second

// Writer is a clipboard.
type Writer interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }

// System is the platform clipboard.
var System Writer = systemClipboard{}

// Clipper writes passwords to a clipboard.
type Clipper struct {
	w       Writer
	timeout time.Duration
	seq     uint64
}

// New returns a Clipper writing to w. The clipboard is cleared timeout after
// the most recent Clip; a zero timeout never clears it. A nil w uses System.
func New(w Writer, timeout time.Duration) *Clipper {
	if w == nil {
		w = System
	}
	return &Clipper{w: w, timeout: timeout}
}

// Timeout returns the auto-clear delay.
func (c *Clipper) Timeout() time.Duration {
	return c.timeout
}

// Clip copies the passphrase given by `passphrase` to the clipboard. An empty
// passphrase is ignored.
func (c *Clipper) Clip(passphrase string) error {
	if passphrase == "" {
		return nil
	}
	if err := c.w.WriteAll(passphrase); err != nil {
		return errors.Wrap(err, "could not write to clipboard")
	}
	seq := atomic.AddUint64(&c.seq, 1)
	if c.timeout <= 0 {
		return nil
	}
	time.AfterFunc(c.timeout, func() {
		if atomic.LoadUint64(&c.seq) == seq {
			c.w.WriteAll("")
		}
	})
	return nil
}

// Clear clears the clipboard.
func (c *Clipper) Clear() error {
	atomic.AddUint64(&c.seq, 1)
	return errors.Wrap(c.w.WriteAll(""), "could not clear clipboard")
}
