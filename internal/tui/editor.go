package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clipbridge/internal/actions"
	"github.com/muurk/clipbridge/internal/app"
)

// ClearConfirmPrompt is asked before a non-empty Document is cleared.
const ClearConfirmPrompt = "Are you sure you want to clear the clipboard?"

// Actions bundles the platform capabilities the editor drives.
type Actions struct {
	Copier     *actions.Copier
	Downloader *actions.Downloader
	Messenger  *actions.Messenger
}

// EditorModel is the Document editor. The text area is bound to the
// Document: every edit goes through State.SetText.
type EditorModel struct {
	state   *app.State
	actions Actions

	textarea textarea.Model
	// Document and text area value as of the last load; the text area
	// normalizes tabs and CRLF, so only a change from shown is an edit
	loaded string
	shown  string
	copied   flash

	// Non-blocking one-line notice under the editor
	status      string
	statusIsErr bool

	// Blocking editor modals
	confirmingClear bool
	alert           string

	Keys   editorKeyMap
	Width  int
	Height int
}

// NewEditorModel creates the editor showing the current Document.
func NewEditorModel(state *app.State, acts Actions) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "Paste your text or code here..."
	ta.ShowLineNumbers = false
	ta.Prompt = " "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	m := EditorModel{
		state:    state,
		actions:  acts,
		textarea: ta,
		Keys:     newEditorKeyMap(),
	}
	m.load()
	m.Keys.setEnabled(!state.IsEmpty())
	return m
}

// load shows the Document in the text area without writing it back.
func (m *EditorModel) load() {
	m.textarea.SetValue(m.state.Text())
	m.loaded = m.state.Text()
	m.shown = m.textarea.Value()
}

// Init implements tea.Model
func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize resizes the text area to fill the content region.
func (m *EditorModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height

	// Frame border (2), toolbar (1), bottom bar (2), status (1), chrome (6)
	taHeight := height - 12
	if taHeight < 3 {
		taHeight = 3
	}
	taWidth := width - 8
	if taWidth < 20 {
		taWidth = 20
	}
	m.textarea.SetWidth(taWidth)
	m.textarea.SetHeight(taHeight)
}

// Enter is called when the editor becomes the visible screen.
func (m *EditorModel) Enter() tea.Cmd {
	if m.state.Text() != m.loaded {
		m.load()
	}
	m.Keys.setEnabled(!m.state.IsEmpty())
	return m.textarea.Focus()
}

// Leave is called when the editor stops being visible. A pending
// "Copied!" reset is cancelled so it can't fire into a hidden screen.
func (m *EditorModel) Leave() {
	m.copied.Cancel()
	m.confirmingClear = false
	m.alert = ""
	m.textarea.Blur()
}

// Copied reports whether the copy confirmation is showing.
func (m EditorModel) Copied() bool { return m.copied.On() }

// ConfirmingClear reports whether the clear confirmation is showing.
func (m EditorModel) ConfirmingClear() bool { return m.confirmingClear }

// Alert returns the blocking warning being shown, if any.
func (m EditorModel) Alert() string { return m.alert }

// Status returns the non-blocking notice line.
func (m EditorModel) Status() string { return m.status }

// HasModal reports whether a confirmation or alert is capturing input.
func (m EditorModel) HasModal() bool {
	return m.confirmingClear || m.alert != ""
}

// Update handles messages for the editor
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case flashExpiredMsg:
		m.copied.Expire(msg)
		return m, nil

	case tea.KeyMsg:
		if m.confirmingClear {
			return m.updateClearConfirm(msg)
		}
		if m.alert != "" {
			// Any key dismisses the warning
			m.alert = ""
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.Copy):
			return m.copy()
		case key.Matches(msg, m.Keys.Download):
			return m.download()
		case key.Matches(msg, m.Keys.Send):
			return m.send()
		case key.Matches(msg, m.Keys.Clear):
			m.confirmingClear = true
			return m, nil
		case key.Matches(msg, m.Keys.Transfer):
			m.state.OpenTransfer()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if v := m.textarea.Value(); v != m.shown {
		m.shown = v
		m.loaded = v
		m.state.SetText(v)
		m.status = ""
		m.Keys.setEnabled(!m.state.IsEmpty())
	}
	return m, cmd
}

func (m EditorModel) updateClearConfirm(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	m.confirmingClear = false

	switch msg.String() {
	case "y", "Y":
		m.state.Clear()
		m.textarea.Reset()
		m.loaded, m.shown = "", ""
		m.copied.Cancel()
		m.Keys.setEnabled(false)
		m.setStatus("Cleared", false)
	}
	return m, nil
}

func (m EditorModel) copy() (EditorModel, tea.Cmd) {
	if err := m.actions.Copier.Copy(m.state.Text()); err != nil {
		m.reportError("Copy", err)
		return m, nil
	}
	m.status = ""
	return m, m.copied.Trigger(CopiedIndicatorDuration)
}

func (m EditorModel) download() (EditorModel, tea.Cmd) {
	path, err := m.actions.Downloader.Save(m.state.Text())
	if err != nil {
		m.reportError("Download", err)
		return m, nil
	}
	m.setStatus("Saved "+path, false)
	return m, nil
}

func (m EditorModel) send() (EditorModel, tea.Cmd) {
	err := m.actions.Messenger.Send(m.state.Text())
	switch {
	case err == nil:
		m.setStatus("Opened the messaging app", false)
	case actions.IsOversize(err):
		var e *actions.Error
		errors.As(err, &e)
		m.alert = e.Message
	default:
		m.reportError("SMS", err)
	}
	return m, nil
}

func (m *EditorModel) reportError(action string, err error) {
	if errors.Is(err, actions.ErrEmptyDocument) {
		return
	}
	var e *actions.Error
	if errors.As(err, &e) {
		m.setStatus(fmt.Sprintf("%s failed: %s", action, e.Message), true)
		return
	}
	m.setStatus(fmt.Sprintf("%s failed: %v", action, err), true)
}

func (m *EditorModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// View renders the editor screen (without its modals)
func (m EditorModel) View() string {
	toolbar := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(SecondaryColor).Render("● "),
		TitleStyle.Render("Workspace"),
		"   ",
		m.button("SMS ^S", false),
		" ",
		m.button("Download ^D", false),
		" ",
		m.button("Clear ^X", false),
	)

	counter := CounterStyle.Render(fmt.Sprintf("%d chars", m.state.Len()))

	var copyLabel string
	if m.copied.On() {
		copyLabel = CopiedStyle.Render(" Copied! ")
	} else {
		copyLabel = m.button("Copy ^Y", false)
	}
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		counter,
		"   ",
		copyLabel,
		" ",
		m.button("Transfer Data ^T", true),
	)

	frame := EditorFrameStyle.Render(m.textarea.View())

	var status string
	if m.status != "" {
		if m.statusIsErr {
			status = StatusErrorStyle.Render(m.status)
		} else {
			status = StatusStyle.Render(m.status)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left,
		toolbar,
		frame,
		bottom,
		status,
	))
}

func (m EditorModel) button(label string, primary bool) string {
	switch {
	case m.state.IsEmpty():
		return DisabledButtonStyle.Render(label)
	case primary:
		return PrimaryButtonStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

// ModalView renders the clear confirmation or oversize warning.
func (m EditorModel) ModalView() string {
	width := SafeModalWidth(64, m.Width)

	if m.confirmingClear {
		content := lipgloss.JoinVertical(lipgloss.Left,
			WarningTextStyle.Bold(true).Render("Clear"),
			"",
			ClearConfirmPrompt,
			"",
			HintStyle.Render("y confirm · any other key cancel"),
		)
		return WarningModalStyle.Width(width).Render(content)
	}

	if m.alert != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			WarningTextStyle.Bold(true).Render("⚠ Too long / 內容過長"),
			"",
			m.alert,
			"",
			HintStyle.Render("Press any key to close"),
		)
		return WarningModalStyle.Width(width).Render(content)
	}

	return ""
}
