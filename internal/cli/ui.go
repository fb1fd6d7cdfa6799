package cli

import "github.com/charmbracelet/lipgloss"

// Color palette for the interactive viewer.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for the viewer heading.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for key hints and scroll position.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleStatus for the status line values.
	styleStatus = lipgloss.NewStyle().Foreground(colorWhite)
)
