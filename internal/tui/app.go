package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clipbridge/internal/app"
)

// Model is the top-level coordinator. It owns the application state and
// routes messages to the active screen and overlays.
type Model struct {
	state *app.State

	// Screens
	Connect ConnectModel
	Editor  EditorModel

	// Overlays
	Transfer TransferModel
	Guide    HelpModel

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys globalKeyMap
}

// NewModel wires every screen to state. joinURL is encoded on the Connect
// screen.
func NewModel(state *app.State, joinURL string, acts Actions) Model {
	m := Model{
		state:    state,
		Connect:  NewConnectModel(state, joinURL),
		Editor:   NewEditorModel(state, acts),
		Transfer: NewTransferModel(state),
		Guide:    NewHelpModel(state),
		Help:     help.New(),
		Keys:     newGlobalKeyMap(),
	}
	m.resize(DefaultWidth, DefaultHeight)

	if state.Mode() != app.ModeEditor {
		m.Editor.Leave()
	}
	return m
}

// State returns the shared application state.
func (m Model) State() *app.State { return m.state }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	switch m.state.Mode() {
	case app.ModeEditor:
		return m.Editor.Init()
	case app.ModeConnect:
		return m.Connect.Init()
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width - 6

	m.Connect.Width = width
	m.Connect.Height = height
	m.Editor.SetSize(width, height)
	m.Transfer.Width = width
	m.Transfer.Height = height
	m.Guide.Width = width
	m.Guide.Height = height
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.state.Mode()

	var cmd tea.Cmd
	m, cmd = m.route(msg)

	if after := m.state.Mode(); after != before {
		cmd = tea.Batch(cmd, m.modeChanged(after))
	}
	if m.state.TransferOpen() {
		m.Transfer.Sync(m.state.Text())
	}
	return m, cmd
}

func (m Model) route(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		return m.routeInput(msg)

	case tea.MouseMsg:
		return m.routeInput(msg)
	}

	// Timers and cursor blinks belong to the editor whatever is visible
	var cmd tea.Cmd
	m.Editor, cmd = m.Editor.Update(msg)
	return m, cmd
}

// routeInput delivers keys and clicks to the topmost layer only.
func (m Model) routeInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.state.HelpOpen():
		m.Guide, cmd = m.Guide.Update(msg)
		return m, cmd

	case m.state.TransferOpen():
		m.Transfer, cmd = m.Transfer.Update(msg)
		return m, cmd

	case m.state.Mode() == app.ModeEditor && m.Editor.HasModal():
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Editor, cmd = m.Editor.Update(msg)
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if isClick(msg) && msg.Y < HeaderLines {
			m.state.SetMode(app.ModeConnect)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Reconnect):
			m.state.SetMode(app.ModeConnect)
			return m, nil
		case key.Matches(msg, m.Keys.Help):
			m.state.OpenHelp()
			return m, nil
		}
	}

	switch m.state.Mode() {
	case app.ModeConnect:
		m.Connect, cmd = m.Connect.Update(msg)
	case app.ModeEditor:
		m.Editor, cmd = m.Editor.Update(msg)
	}
	return m, cmd
}

func (m *Model) modeChanged(to app.Mode) tea.Cmd {
	switch to {
	case app.ModeEditor:
		return m.Editor.Enter()
	case app.ModeConnect:
		m.Editor.Leave()
	}
	return nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.Width > 0 && m.Width < MinTerminalWidth {
		return WarningTextStyle.Render(fmt.Sprintf(
			"Terminal too narrow (%d columns). clipbridge needs at least %d.",
			m.Width, MinTerminalWidth,
		))
	}

	switch {
	case m.state.HelpOpen():
		return RenderModal(m.Guide.View(), m.Width, m.Height)
	case m.state.TransferOpen():
		return RenderModal(m.Transfer.View(), m.Width, m.Height)
	case m.state.Mode() == app.ModeEditor && m.Editor.HasModal():
		return RenderModal(m.Editor.ModalView(), m.Width, m.Height)
	}

	var content, headerHint, helpText string
	switch m.state.Mode() {
	case app.ModeConnect:
		content = m.Connect.View()
		headerHint = "f1 help"
		helpText = m.Help.View(m.Connect.Keys)
	case app.ModeEditor:
		content = m.Editor.View()
		headerHint = "ctrl+b reconnect · f1 help"
		helpText = m.Help.View(m.Editor.Keys)
	default:
		content = lipgloss.NewStyle().Foreground(ErrorColor).Render("Unknown mode")
	}

	return RenderApplicationContainer(content, headerHint, helpText, m.Width, m.Height)
}
