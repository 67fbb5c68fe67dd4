package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CopiedIndicatorDuration is how long "Copied!" stays visible.
const CopiedIndicatorDuration = 2 * time.Second

// schedule delivers msg after d. Tests replace it to control time.
var schedule = func(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// flashExpiredMsg ends a flash if seq is still current.
type flashExpiredMsg struct {
	seq int
}

// flash is a flag that turns itself off after a duration. Triggering it
// again restarts the window; Cancel drops any pending expiry.
type flash struct {
	on  bool
	seq int
}

// Trigger turns the flag on and schedules its expiry.
func (f *flash) Trigger(d time.Duration) tea.Cmd {
	f.seq++
	f.on = true
	return schedule(d, flashExpiredMsg{seq: f.seq})
}

// Expire handles a scheduled expiry. Stale expiries are ignored.
func (f *flash) Expire(msg flashExpiredMsg) {
	if msg.seq == f.seq {
		f.on = false
	}
}

// Cancel turns the flag off and invalidates any pending expiry.
func (f *flash) Cancel() {
	f.seq++
	f.on = false
}

// On reports whether the flag is set.
func (f flash) On() bool { return f.on }
