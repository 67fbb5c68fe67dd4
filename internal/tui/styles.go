package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clipbridge/internal/version"
)

// Application branding constants
const (
	AppName     = "CLIPBOARD BRIDGE"
	AppTagline  = "Simple Cross-Device Transfer"
	ProjectURL  = "github.com/muurk/clipbridge"
	HeaderLines = 3 // outer border + header row + header divider
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60
	DefaultWidth      = 80
	DefaultHeight     = 24
	DefaultBoxPadding = 2
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#3B82F6") // Blue
	SecondaryColor = lipgloss.Color("#10B981") // Emerald
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#EF4444") // Red

	TextColor   = lipgloss.Color("#F1F5F9") // Slate 100
	SubtleColor = lipgloss.Color("#64748B") // Slate 500
	MutedColor  = lipgloss.Color("#94A3B8") // Slate 400
	BorderColor = lipgloss.Color("#334155") // Slate 700
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Card style for the Connect screen
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 3)

	// Primary action button
	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 3)

	// Secondary action button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(BorderColor).
			Padding(0, 2)

	// Disabled action button
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Background(lipgloss.Color("#1E293B")).
				Padding(0, 2)

	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	CounterStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Editor frame around the textarea
	EditorFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderColor)

	// Modal box style
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Warning modal style
	WarningModalStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(WarningColor).
				Padding(1, 2)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	SectionEnglishStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	SectionChineseStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// QR codes are drawn light-on-dark, so keep them off any background tint
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#000000"))
)

// BuildHeaderContent creates header content with app name, tagline and the
// context hint on the right.
func BuildHeaderContent(rightHint string) string {
	left := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render("▣ " + AppName)

	tagline := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppTagline + " · v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(rightHint)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", tagline, "   ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen with the application header and
// a context-sensitive footer, filling the terminal.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, headerHint, helpText, m.Width, m.Height)
//	}
//
// The header occupies the first HeaderLines rows; the shell treats a click
// there as a click on the brand.
func RenderApplicationContainer(content, headerHint, footerText string, terminalWidth, terminalHeight int) string {
	header := BuildHeaderContent(headerHint)
	footer := BuildFooterContent(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// Header, footer and the outer border take 6 rows
	contentHeight := terminalHeight - 6
	if contentHeight < 1 {
		contentHeight = 1
	}
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(contentHeight)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// SafeModalWidth returns the smaller of requestedWidth and what fits in the
// terminal, never below 40 columns.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// RenderModal centers an overlay on a dimmed backdrop filling the terminal.
func RenderModal(modalContent string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("236")),
	)
}

// RenderCode styles a terminal QR rendering so it scans on any theme.
func RenderCode(terminal string) string {
	return CodeStyle.Render(strings.TrimRight(terminal, "\n"))
}

// isClick reports whether msg is a primary-button press.
func isClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
