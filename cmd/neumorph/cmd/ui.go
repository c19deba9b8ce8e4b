package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

var (
	styleName  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)
