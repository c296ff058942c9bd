package widgets

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	sortedHeader     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentPageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	popupStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
