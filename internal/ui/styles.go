package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles for the shell. The accent color comes
// from configuration.
type Styles struct {
	Display      lipgloss.Style
	Button       lipgloss.Style
	Equals       lipgloss.Style
	HistoryTitle lipgloss.Style
	HistoryItem  lipgloss.Style
	HistorySel   lipgloss.Style
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Help         lipgloss.Style
}

const (
	displayWidth = 31
	buttonWidth  = 6
)

// DefaultStyles builds the shell styles around an accent color.
func DefaultStyles(accent string) Styles {
	ac := lipgloss.Color(accent)
	dim := lipgloss.Color("240")
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(buttonWidth).
		Align(lipgloss.Center).
		MarginRight(1)
	return Styles{
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac).
			Padding(0, 1).
			Width(displayWidth).
			Align(lipgloss.Right),
		Button: button,
		Equals: button.
			Width(buttonWidth*2 + 3).
			BorderForeground(ac),
		HistoryTitle: lipgloss.NewStyle().Bold(true),
		HistoryItem:  lipgloss.NewStyle().Foreground(dim),
		HistorySel: lipgloss.NewStyle().
			Foreground(ac).
			Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().Foreground(dim),
	}
}
