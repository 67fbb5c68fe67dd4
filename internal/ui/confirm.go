package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a y/N question on out, reading
// the answer from in. Only "y" or "yes" (any case) confirms; EOF declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	width := clampWidth(GetTerminalWidth())

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)),
		"",
	}
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	box := ResultBoxStyle(WarningColor, width).Render(strings.Join(lines, "\n"))
	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	return false
}
