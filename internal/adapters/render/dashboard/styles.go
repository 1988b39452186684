package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	user     lipgloss.Style
	detail   lipgloss.Style
	key      lipgloss.Style
	selected lipgloss.Style
	unread   lipgloss.Style
	read     lipgloss.Style
	warning  lipgloss.Style
	success  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		unread:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		read:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
