package view

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// CopyFeedback is how long the copy button shows its outcome.
const CopyFeedback = 1200 * time.Millisecond

// ErrNoClipboard is returned when no clipboard is available.
var ErrNoClipboard = errors.New("clipboard unavailable")

// Clipboard receives text copied by the user.
type Clipboard interface {
	WriteText(text string) error
}

// WriterClipboard "copies" by writing the text to W. The CLI uses stdout.
type WriterClipboard struct {
	W io.Writer
}

func (c WriterClipboard) WriteText(text string) error {
	if c.W == nil {
		return ErrNoClipboard
	}
	if _, err := fmt.Fprintln(c.W, text); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}

// CopyStatus is the transient state of the copy button.
type CopyStatus int

const (
	CopyIdle CopyStatus = iota
	CopyDone
	CopyFailed
)

// CopyIndicator remembers the last copy outcome and reverts to idle once
// CopyFeedback has passed.
type CopyIndicator struct {
	status CopyStatus
	at     time.Time
}

// Set records an outcome at now.
func (c *CopyIndicator) Set(status CopyStatus, now time.Time) {
	c.status = status
	c.at = now
}

// Expired reports whether the recorded outcome is no longer shown at now.
func (c *CopyIndicator) Expired(now time.Time) bool {
	return c.status == CopyIdle || now.Sub(c.at) >= CopyFeedback
}

// Status returns the status to show at now.
func (c *CopyIndicator) Status(now time.Time) CopyStatus {
	if c.Expired(now) {
		return CopyIdle
	}
	return c.status
}

// Label returns the button text at now.
func (c *CopyIndicator) Label(now time.Time) string {
	switch c.Status(now) {
	case CopyDone:
		return "Copiado!"
	case CopyFailed:
		return "Erro :("
	default:
		return "Copiar resumo"
	}
}
