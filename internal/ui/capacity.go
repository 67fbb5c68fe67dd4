package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Capacity shows how much of the code ceiling a Document uses.
type Capacity struct {
	Length int
	Limit  int
	Width  int
}

// NewCapacity creates a capacity meter for length characters out of limit.
func NewCapacity(length, limit int) *Capacity {
	return &Capacity{
		Length: length,
		Limit:  limit,
		Width:  GetTerminalWidth(),
	}
}

// Over reports whether the Document exceeds the limit.
func (c *Capacity) Over() bool {
	return c.Length > c.Limit
}

// Percent returns the fraction of the limit in use, capped at 1.
func (c *Capacity) Percent() float64 {
	if c.Limit <= 0 {
		return 1
	}
	p := float64(c.Length) / float64(c.Limit)
	if p > 1 {
		return 1
	}
	return p
}

// Render returns the meter line
func (c *Capacity) Render() string {
	barWidth := c.Width - 30 // Leave room for the count
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}

	opts := []progress.Option{progress.WithWidth(barWidth), progress.WithoutPercentage()}
	if c.Over() {
		opts = append(opts, progress.WithSolidFill(string(ErrorColor)))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	bar := progress.New(opts...)

	count := fmt.Sprintf("%d / %d chars", c.Length, c.Limit)
	if c.Over() {
		count = ErrorMessageStyle.Render(count + "  (too long for a code or message)")
	}

	return CapacityLabelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, bar.ViewAs(c.Percent()), "  ", count))
}

// String implements fmt.Stringer
func (c *Capacity) String() string {
	return c.Render()
}
