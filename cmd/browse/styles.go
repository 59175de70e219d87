package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header    lipgloss.Style
	FilterBar lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Price     lipgloss.Style
	Badge     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Empty     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		FilterBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginBottom(1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")),
		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("114")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("243")).
			Padding(1, 2),
	}
}
