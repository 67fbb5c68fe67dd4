package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/app"
	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/qr"
)

// Oversize notice shown in place of the transfer code
const (
	TooLongTitle = "Text too long for QR Code"
	TooLongHint  = "Try summarizing or splitting the text."
	TooLongTip   = "Tip: Use Download (ctrl+d) instead."
)

// TransferModel is the Transfer-Code Panel. It shows the Document as a code
// for the other device's camera and never changes the Document.
type TransferModel struct {
	state *app.State

	// Cached rendering, keyed by the Document it was built from
	synced  bool
	data    string
	code    *qr.Code
	codeErr error

	Keys   panelKeyMap
	Width  int
	Height int
}

// NewTransferModel creates a closed panel.
func NewTransferModel(state *app.State) TransferModel {
	return TransferModel{
		state: state,
		Keys:  newTransferKeyMap(),
	}
}

// Sync re-renders the code if data differs from the cached Document.
// Data over qr.MaxPayload is never handed to the encoder. Multi-byte text
// within the limit can still exceed the code's capacity; that is reported
// through Oversize as well.
func (m *TransferModel) Sync(data string) {
	if m.synced && data == m.data {
		return
	}

	m.synced = true
	m.data = data
	m.code = nil
	m.codeErr = nil

	if data == "" || !qr.Fits(data) {
		return
	}
	m.code, m.codeErr = qr.Render(data, qr.TransferSize)
	if m.codeErr != nil {
		logging.Warn("Failed to render transfer code",
			zap.Int("length", qr.Length(data)),
			zap.Error(m.codeErr),
		)
	}
}

// Code returns the rendered transfer code, or nil when the Document is too
// long or could not be encoded.
func (m TransferModel) Code() *qr.Code { return m.code }

// Oversize reports whether the panel is showing the too-long notice.
func (m TransferModel) Oversize() bool {
	return !qr.Fits(m.data) || errors.Is(m.codeErr, qr.ErrTooLong)
}

// Update closes the panel on its close keys or a click anywhere.
func (m TransferModel) Update(msg tea.Msg) (TransferModel, tea.Cmd) {
	if !m.state.TransferOpen() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Close) {
			m.state.CloseTransfer()
		}
	case tea.MouseMsg:
		if isClick(msg) {
			m.state.CloseTransfer()
		}
	}
	return m, nil
}

// View renders the panel. A closed panel renders nothing.
func (m TransferModel) View() string {
	if !m.state.TransferOpen() {
		return ""
	}

	title := TitleStyle.Render("Scan to Transfer")

	var body string
	switch {
	case m.Oversize():
		body = lipgloss.JoinVertical(lipgloss.Center,
			ErrorTextStyle.Render(TooLongTitle),
			"",
			SubtitleStyle.Render(TooLongHint),
			HintStyle.Render(TooLongTip),
		)

	case m.code == nil:
		body = ErrorTextStyle.Render(fmt.Sprintf("Could not render code: %v", m.codeErr))

	case m.code.TerminalWidth() > m.Width-6:
		// Too wide for this terminal; offer the PNG route
		body = lipgloss.JoinVertical(lipgloss.Center,
			WarningTextStyle.Render("Terminal too narrow to show this code"),
			"",
			HintStyle.Render(fmt.Sprintf("Widen the window to %d columns, or run:", m.code.TerminalWidth()+6)),
			LinkStyle.Render("clipbridge qr --out transfer.png"),
		)

	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			RenderCode(m.code.Terminal()),
			"",
			CounterStyle.Render(fmt.Sprintf("%d chars", qr.Length(m.data))),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		body,
		"",
		HintStyle.Render("esc / enter / click to close"),
	)

	return ModalStyle.Render(content)
}
