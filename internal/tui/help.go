package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clipbridge/internal/app"
)

type guideStep struct {
	title string
	body  string
}

var englishGuide = []guideStep{
	{
		"1. Establish Connection",
		"Open the app on your primary device. Scan the Connection QR Code with your second device (e.g., phone) to open the app there.",
	},
	{
		"2. Compose Text",
		"Type or paste content into the editor on your primary device.",
	},
	{
		"3. Transfer via Clipboard",
		"Press Transfer Data (ctrl+t) to generate a Data QR Code. Scan it with your connected device to instantly copy the text to its clipboard.",
	},
}

var chineseGuide = []guideStep{
	{
		"1. 建立連線",
		"在主設備開啟本應用程式，使用第二台設備（如手機）掃描首頁的連線 QR Code，以在該設備上開啟本應用程式。",
	},
	{
		"2. 編輯內容",
		"在主設備的編輯器中輸入或貼上您想要傳輸的文字。",
	},
	{
		"3. 複製剪貼簿傳輸",
		"按下 Transfer Data (ctrl+t) 生成資料 QR Code。使用已連線的設備掃描，即可將內容複製到該設備的剪貼簿。",
	},
}

// HelpModel is the static usage guide overlay.
type HelpModel struct {
	state *app.State

	Width  int
	Height int
}

// NewHelpModel creates a closed help panel.
func NewHelpModel(state *app.State) HelpModel {
	return HelpModel{state: state}
}

// Update closes the panel on any key or click.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	if !m.state.HelpOpen() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.state.CloseHelp()
	case tea.MouseMsg:
		if isClick(msg) {
			m.state.CloseHelp()
		}
	}
	return m, nil
}

// View renders the guide. A closed panel renders nothing.
func (m HelpModel) View() string {
	if !m.state.HelpOpen() {
		return ""
	}

	width := SafeModalWidth(72, m.Width)
	textWidth := width - 6

	section := func(heading lipgloss.Style, name string, steps []guideStep) string {
		lines := []string{heading.Render(name), ""}
		for _, s := range steps {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(s.title),
				HintStyle.Width(textWidth).Render(s.body),
				"",
			)
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Usage Guide / 使用說明"),
		"",
		section(SectionEnglishStyle, "ENGLISH", englishGuide),
		section(SectionChineseStyle, "中文指南", chineseGuide),
		ButtonStyle.Render("Close / 關閉"),
	)

	return ModalStyle.Width(width).Render(content)
}
