package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/app"
	"github.com/muurk/clipbridge/internal/logging"
	"github.com/muurk/clipbridge/internal/qr"
)

// ConnectModel is the landing screen. It shows the join code so a second
// device can get clipbridge, and leads into the editor.
type ConnectModel struct {
	state   *app.State
	joinURL string
	code    *qr.Code
	codeErr error

	Keys   connectKeyMap
	Width  int
	Height int
}

// NewConnectModel renders the join code for joinURL once; it never changes
// while the program runs.
func NewConnectModel(state *app.State, joinURL string) ConnectModel {
	m := ConnectModel{
		state:   state,
		joinURL: joinURL,
		Keys:    newConnectKeyMap(),
	}

	m.code, m.codeErr = qr.Render(joinURL, qr.JoinSize)
	if m.codeErr != nil {
		logging.Warn("Failed to render join code",
			zap.String("join_url", joinURL),
			zap.Error(m.codeErr),
		)
	}
	return m
}

// Init implements tea.Model
func (m ConnectModel) Init() tea.Cmd {
	return nil
}

// Update handles input on the Connect screen. Both Start and Skip switch to
// the editor; neither touches the Document.
func (m ConnectModel) Update(msg tea.Msg) (ConnectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Start), key.Matches(msg, m.Keys.Skip):
			m.state.SetMode(app.ModeEditor)
		case key.Matches(msg, m.Keys.Help):
			m.state.OpenHelp()
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the join card
func (m ConnectModel) View() string {
	title := TitleStyle.Render("Establish Connection")

	instructions := lipgloss.JoinVertical(lipgloss.Center,
		SubtitleStyle.Render("Scan this code with your second device (phone/tablet) to open the app."),
		HintStyle.Render("(掃描此 QR Code 以在第二台設備上開啟本應用程式)"),
	)

	var code string
	if m.codeErr != nil {
		code = ErrorTextStyle.Render("Could not render the join code: " + m.codeErr.Error())
	} else {
		code = RenderCode(m.code.Terminal())
	}

	address := HintStyle.Render(m.joinURL)
	start := PrimaryButtonStyle.Render("Ready, Start Editing →")
	skip := lipgloss.JoinHorizontal(lipgloss.Top,
		HintStyle.Render("Already on the target device? "),
		LinkStyle.Render("Skip this step"),
		HintStyle.Render(" (s)"),
	)

	card := CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		instructions,
		"",
		code,
		address,
		"",
		start,
		"",
		skip,
	))

	return lipgloss.PlaceHorizontal(m.Width-4, lipgloss.Center, card)
}

// JoinURL returns the address encoded in the join code.
func (m ConnectModel) JoinURL() string {
	return m.joinURL
}
