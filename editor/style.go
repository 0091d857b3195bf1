package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Prompt  lipgloss.Style
	History lipgloss.Style
	Output  lipgloss.Style
	Error   lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		History:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Output:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
