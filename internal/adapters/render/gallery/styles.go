package gallery

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Card      lipgloss.Style
	Link      lipgloss.Style
	Submitter lipgloss.Style
	Empty     lipgloss.Style
	Warning   lipgloss.Style
	Badges    map[string]lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Submitter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Empty:     lipgloss.NewStyle().Faint(true),
		Warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Badges: map[string]lipgloss.Style{
			"confirmed": lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			"local":     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			"pending":   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			"failed":    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
