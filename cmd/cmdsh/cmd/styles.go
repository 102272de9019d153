package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

func printBanner(out io.Writer) {
	fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf("cmdsh v%s", Version)))
	fmt.Fprintln(out, hintStyle.Render("Type 'help' for the command list, 'quit' to leave."))
}
