package qr

import (
	"errors"
	"fmt"
	"image"
	"unicode/utf8"

	qrcode "github.com/skip2/go-qrcode"
)

// MaxPayload is the largest payload, in characters, clipbridge will encode.
const MaxPayload = 2000

// Policy sizes for the two codes clipbridge renders.
const (
	JoinSize     = 220
	TransferSize = 200
)

// Level is the error-correction level used for every code.
const Level = qrcode.Medium

var (
	// ErrEmptyPayload is returned when asked to render an empty string.
	ErrEmptyPayload = errors.New("qr: nothing to encode")

	// ErrTooLong is returned when the payload exceeds what a level-M code
	// can carry. MaxPayload counts characters, so multi-byte text can hit
	// this below the ceiling.
	ErrTooLong = errors.New("qr: payload exceeds code capacity")
)

// Code is a rendered QR code at a fixed target size.
type Code struct {
	data string
	size int
	qr   *qrcode.QRCode
}

// Length returns the payload length in characters.
func Length(data string) int {
	return utf8.RuneCountInString(data)
}

// Fits reports whether data is within MaxPayload. It does not guarantee
// Render succeeds: multi-byte text may still exceed the code's capacity.
func Fits(data string) bool {
	return Length(data) <= MaxPayload
}

// Render encodes data as a pixelSize x pixelSize code.
func Render(data string, pixelSize int) (*Code, error) {
	if data == "" {
		return nil, ErrEmptyPayload
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("qr: invalid pixel size %d", pixelSize)
	}

	q, err := qrcode.New(data, Level)
	if err != nil {
		// The level is fixed, so capacity is the only way New fails
		return nil, fmt.Errorf("%w: %d characters, %d bytes: %v", ErrTooLong, Length(data), len(data), err)
	}
	q.DisableBorder = false

	return &Code{data: data, size: pixelSize, qr: q}, nil
}

// Data returns the encoded payload.
func (c *Code) Data() string { return c.data }

// Size returns the target pixel size.
func (c *Code) Size() int { return c.size }

// Version returns the QR symbol version (1-40) chosen by the encoder.
func (c *Code) Version() int { return c.qr.VersionNumber }

// Modules returns the module grid, quiet zone included. true is dark.
func (c *Code) Modules() [][]bool { return c.qr.Bitmap() }

// Image returns the code as a size x size image.
func (c *Code) Image() image.Image { return c.qr.Image(c.size) }

// PNG returns the code as a size x size PNG.
func (c *Code) PNG() ([]byte, error) {
	png, err := c.qr.PNG(c.size)
	if err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return png, nil
}

// Terminal returns the code drawn with half-block characters. Light modules
// are drawn as blocks, so it scans on a dark terminal background.
func (c *Code) Terminal() string {
	return c.qr.ToSmallString(false)
}

// TerminalWidth returns how many columns Terminal() occupies.
func (c *Code) TerminalWidth() int {
	return len(c.qr.Bitmap())
}
