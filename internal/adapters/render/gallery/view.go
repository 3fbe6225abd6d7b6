package gallery

import (
	"fmt"
	"strings"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultColumns   = 2
	defaultCardWidth = 38
)

type RenderOptions struct {
	Address   domain.ListAddress
	Columns   int
	CardWidth int
	// Plain drops the title and header lines, leaving only the grid.
	Plain bool
}

// RenderView lays the entries out as a grid of cards, newest last.
func RenderView(view domain.ListView, opts RenderOptions, s Styles) string {
	lines := make([]string, 0, 4)
	if !opts.Plain {
		lines = append(lines, s.Title.Render("GIF Portal"), s.Header.Render(headerLine(view, opts.Address)))
	}

	switch {
	case view.Loading && len(view.Entries) == 0:
		lines = append(lines, s.Empty.Render("Loading list…"))
	case !view.Available:
		lines = append(lines, s.Warning.Render("List unavailable. Reconnect the wallet to retry."))
	case len(view.Entries) == 0:
		lines = append(lines, s.Empty.Render("No GIFs yet. Be the first to add one."))
	default:
		lines = append(lines, grid(view.Entries, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(view domain.ListView, address domain.ListAddress) string {
	parts := []string{fmt.Sprintf("gifs: %d", len(view.Entries))}
	if address != "" {
		parts = append([]string{"list: " + domain.Identity(address).Short()}, parts...)
	}
	if pending := view.CountByState(domain.EntryPending); pending > 0 {
		parts = append(parts, fmt.Sprintf("pending: %d", pending))
	}
	if failed := view.CountByState(domain.EntryFailed); failed > 0 {
		parts = append(parts, fmt.Sprintf("failed: %d", failed))
	}

	return strings.Join(parts, "  ")
}

func grid(entries []domain.Entry, opts RenderOptions, s Styles) string {
	columns := opts.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	width := opts.CardWidth
	if width <= 0 {
		width = defaultCardWidth
	}

	rows := make([]string, 0, (len(entries)+columns-1)/columns)
	for start := 0; start < len(entries); start += columns {
		end := start + columns
		if end > len(entries) {
			end = len(entries)
		}

		cards := make([]string, 0, columns)
		for _, entry := range entries[start:end] {
			cards = append(cards, card(entry, width, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func card(entry domain.Entry, width int, s Styles) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	lines := []string{s.Link.Render(truncate(string(entry.Link), inner))}

	meta := badge(entry.State, s)
	if entry.Submitter != "" {
		meta += " " + s.Submitter.Render("by "+entry.Submitter.Short())
	}
	lines = append(lines, meta)

	if entry.State == domain.EntryFailed && entry.Err != "" {
		lines = append(lines, s.Warning.Render(truncate(entry.Err, inner)))
	}

	return s.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func badge(state domain.EntryState, s Styles) string {
	style, ok := s.Badges[string(state)]
	if !ok {
		style = s.Submitter
	}
	return style.Render("[" + string(state) + "]")
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
