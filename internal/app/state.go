package app

import (
	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/qr"
	"github.com/muurk/clipbridge/internal/store"
)

// State is the application state shared by every view.
type State struct {
	store store.Store

	text string
	mode Mode

	transferOpen bool
	helpOpen     bool
}

// NewState loads the Document from s. A non-empty Document starts in
// ModeEditor, an empty one in ModeConnect.
func NewState(s store.Store) *State {
	text := s.Load()

	mode := ModeConnect
	if text != "" {
		mode = ModeEditor
	}

	return &State{
		store: s,
		text:  text,
		mode:  mode,
	}
}

// Text returns the Document content.
func (st *State) Text() string { return st.text }

// Len returns the Document length in characters.
func (st *State) Len() int { return qr.Length(st.text) }

// IsEmpty reports whether the Document is empty. Every editor action is
// disabled while it is.
func (st *State) IsEmpty() bool { return st.text == "" }

// FitsCode reports whether the Document is short enough for a code or message.
func (st *State) FitsCode() bool { return qr.Fits(st.text) }

// SetText replaces the Document and persists it.
func (st *State) SetText(text string) {
	if text == st.text {
		return
	}
	st.text = text
	st.store.Save(text)
}

// Clear empties the Document and persists it. Confirmation is the caller's job.
func (st *State) Clear() {
	st.text = ""
	st.store.Save("")
}

// Mode returns the current UI Mode.
func (st *State) Mode() Mode { return st.mode }

// SetMode switches screens. The Document is untouched.
func (st *State) SetMode(m Mode) {
	if m == st.mode {
		return
	}
	logging.LogModeChange(st.mode.String(), m.String())
	st.mode = m
}

// TransferOpen reports whether the Transfer-Code Panel is visible.
func (st *State) TransferOpen() bool { return st.transferOpen }

// OpenTransfer shows the Transfer-Code Panel.
func (st *State) OpenTransfer() { st.transferOpen = true }

// CloseTransfer hides the Transfer-Code Panel.
func (st *State) CloseTransfer() { st.transferOpen = false }

// HelpOpen reports whether the Help Panel is visible.
func (st *State) HelpOpen() bool { return st.helpOpen }

// OpenHelp shows the Help Panel.
func (st *State) OpenHelp() { st.helpOpen = true }

// CloseHelp hides the Help Panel.
func (st *State) CloseHelp() { st.helpOpen = false }
