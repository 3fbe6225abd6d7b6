package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header  lipgloss.Style
	subtext lipgloss.Style
	button  lipgloss.Style
	status  lipgloss.Style
	notice  lipgloss.Style
	help    lipgloss.Style
	alert   lipgloss.Style
	modal   lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		subtext: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		button:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("45")).Padding(0, 2),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		help:    lipgloss.NewStyle().Faint(true),
		alert:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("203")).Padding(1, 2),
		modal:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("45")).Padding(1, 2),
	}
}
