package screen

import (
	"charm.land/lipgloss/v2"

	"guidora/style"
)

const defaultWidth = 48

func banner(opts Options) string {
	return style.BannerStyle.Render(opts.Brand)
}

func divider(opts Options, text string) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	return style.Divider(text, width)
}

func column(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
