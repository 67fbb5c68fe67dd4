package actions

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/qr"
)

// ClipboardWriter writes text to a clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
// On Linux it needs xclip, xsel or wl-copy on PATH.
type SystemClipboard struct{}

// WriteAll implements ClipboardWriter.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copier is the Copy action.
type Copier struct {
	Clipboard ClipboardWriter
}

// NewCopier creates a Copier for the system clipboard.
func NewCopier() *Copier {
	return &Copier{Clipboard: SystemClipboard{}}
}

// Copy writes text to the clipboard.
func (c *Copier) Copy(text string) error {
	if text == "" {
		return emptyError("clipboard")
	}

	err := c.Clipboard.WriteAll(text)
	logging.LogBestEffort("clipboard", err, zap.Int("length", qr.Length(text)))
	if err != nil {
		return platformError("clipboard", "could not write to the clipboard", err)
	}
	return nil
}
