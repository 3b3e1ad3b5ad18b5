package guidora

import (
	"strings"

	"charm.land/lipgloss/v2"

	"guidora/nav"
	"guidora/style"
)

// RenderFooter renders the current screen and what esc will do on the left, brand on the right.
func RenderFooter(scr nav.Screen, canBack bool, brand string, width int) string {

	hint := "esc quit"
	if canBack {
		hint = "esc back"
	}
	left := scr.String() + "  " + hint
	right := brand

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}
