package actions

import (
	"net/url"
	"strings"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/qr"
)

// URLOpener hands a URL to the OS default handler.
type URLOpener func(rawURL string) error

// Messenger is the Send via message action.
type Messenger struct {
	Open URLOpener
}

// NewMessenger creates a Messenger that opens links with the OS handler.
func NewMessenger() *Messenger {
	return &Messenger{Open: browser.OpenURL}
}

// EncodeBody percent-encodes text for a message body. Spaces become %20.
func EncodeBody(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ComposeURL returns the sms: link pre-filled with text.
func ComposeURL(text string) string {
	return "sms:?body=" + EncodeBody(text)
}

// Send opens the messaging composer with text as the body. Text longer than
// qr.MaxPayload is refused with an oversize error carrying OversizeMessage.
func (m *Messenger) Send(text string) error {
	if text == "" {
		return emptyError("message")
	}

	if !qr.Fits(text) {
		logging.Info("Message refused, document too long",
			zap.Int("length", qr.Length(text)),
			zap.Int("limit", qr.MaxPayload),
		)
		return &Error{
			Type:       ErrTypeOversize,
			Capability: "message",
			Message:    OversizeMessage,
		}
	}

	err := m.Open(ComposeURL(text))
	logging.LogBestEffort("message", err, zap.Int("length", qr.Length(text)))
	if err != nil {
		return platformError("message", "could not open the messaging app", err)
	}
	return nil
}
