package app

import "fmt"

// Mode is which top-level screen is shown.
type Mode int

const (
	// ModeConnect shows the join code for a second device.
	ModeConnect Mode = iota
	// ModeEditor shows the Document editor.
	ModeEditor
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeConnect:
		return "connect"
	case ModeEditor:
		return "editor"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
