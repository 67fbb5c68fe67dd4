package actions

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeOversize indicates the Document is too long for a code-based action
	ErrTypeOversize ErrorType = iota
	// ErrTypeEmpty indicates there is no Document content to act on
	ErrTypeEmpty
	// ErrTypePlatform indicates a platform capability call failed
	ErrTypePlatform
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeOversize:
		return "Too Large"
	case ErrTypeEmpty:
		return "Empty Document"
	case ErrTypePlatform:
		return "Platform Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every action in this package.
type Error struct {
	Type       ErrorType // Category of error
	Capability string    // "clipboard", "download" or "message"
	Message    string    // Human-readable error message
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Type, so errors.Is(err, ErrEmptyDocument)
// works for every empty-document error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type && t.Capability == "" && t.Message == ""
}

// ErrEmptyDocument is returned by every action invoked on an empty Document.
var ErrEmptyDocument = &Error{Type: ErrTypeEmpty}

// OversizeMessage is shown when the Document is too long to send as a message.
const OversizeMessage = "Text is too long for SMS (limit is approx 2000 characters).\n" +
	"Please use the QR Code transfer or Copy function instead.\n\n" +
	"內容過長，無法使用簡訊傳送（上限約 2000 字），請改用 QR Code 或複製功能。"

func emptyError(capability string) error {
	return &Error{
		Type:       ErrTypeEmpty,
		Capability: capability,
		Message:    "document is empty",
	}
}

func platformError(capability, message string, err error) error {
	return &Error{
		Type:       ErrTypePlatform,
		Capability: capability,
		Message:    message,
		Err:        err,
	}
}

// IsOversize reports whether err is an oversize error.
func IsOversize(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrTypeOversize
}

// IsPlatform reports whether err is a best-effort platform failure.
func IsPlatform(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrTypePlatform
}
