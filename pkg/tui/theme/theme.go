package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Panel  PanelTheme
	Option OptionTheme
	Footer FooterTheme
}

// HeaderTheme styles the banner above the panels.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
}

// OptionTheme styles option rows inside a group.
type OptionTheme struct {
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Normal   lipgloss.Style
	Price    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Panel: PanelTheme{
			Frame:   frame,
			Focused: frame.BorderForeground(accent),
			Title:   lipgloss.NewStyle().Bold(true),
			Body:    lipgloss.NewStyle(),
		},
		Option: OptionTheme{
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Cursor:   lipgloss.NewStyle().Reverse(true),
			Normal:   lipgloss.NewStyle(),
			Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
