package style

import (
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	Teal        = lipgloss.Color("#4396A5") // Brand teal
	Grey        = lipgloss.Color("240")     // Subtle grey
	FieldColor  = lipgloss.Color("237")     // Focused field background
	BrandStyle  = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	BannerStyle = BrandStyle.Border(lipgloss.RoundedBorder()).BorderForeground(Teal).Padding(0, 3)
	FocusStyle  = lipgloss.NewStyle().Foreground(Teal).Background(FieldColor).Bold(true)
	BlurStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	FooterStyle = lipgloss.NewStyle().Foreground(Grey)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Divider renders text between two teal rules, width wide
func Divider(text string, width int) string {
	pad := (width - lipgloss.Width(text) - 2) / 2
	if pad < 1 {
		return BrandStyle.Render(text)
	}
	rule := lipgloss.NewStyle().Foreground(Teal).Render(strings.Repeat("─", pad))
	return rule + " " + BrandStyle.Render(text) + " " + rule
}
