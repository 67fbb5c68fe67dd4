package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeyMap holds bindings handled by the shell on every screen
type globalKeyMap struct {
	Help      key.Binding
	Reconnect key.Binding
	Quit      key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Reconnect: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "reconnect"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// connectKeyMap defines key bindings for the Connect screen
type connectKeyMap struct {
	Start key.Binding
	Skip  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k connectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Skip, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k connectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Skip},
		{k.Help, k.Quit},
	}
}

func newConnectKeyMap() connectKeyMap {
	return connectKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start editing"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// editorKeyMap defines key bindings for the Editor screen. Plain keys go
// to the text area, so every action is on a control chord.
type editorKeyMap struct {
	Copy      key.Binding
	Download  key.Binding
	Send      key.Binding
	Clear     key.Binding
	Transfer  key.Binding
	Reconnect key.Binding
	Help      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Transfer, k.Copy, k.Download, k.Send, k.Clear}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Transfer, k.Copy, k.Download},
		{k.Send, k.Clear},
		{k.Reconnect, k.Help},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "download"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sms"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
		Transfer: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "transfer"),
		),
		Reconnect: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "reconnect"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// setEnabled turns the Document actions on or off together.
func (k *editorKeyMap) setEnabled(enabled bool) {
	k.Copy.SetEnabled(enabled)
	k.Download.SetEnabled(enabled)
	k.Send.SetEnabled(enabled)
	k.Clear.SetEnabled(enabled)
	k.Transfer.SetEnabled(enabled)
}

// panelKeyMap defines key bindings while an overlay is open
type panelKeyMap struct {
	Close key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close}}
}

func newTransferKeyMap() panelKeyMap {
	return panelKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "q", "ctrl+t"),
			key.WithHelp("esc", "close"),
		),
	}
}
