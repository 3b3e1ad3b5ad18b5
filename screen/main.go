package screen

import (
	tea "charm.land/bubbletea/v2"

	"guidora/style"
)

// Main is the app landing page reached once onboarding is done.
type Main struct {
	opts Options
}

func NewMain(opts Options) Main {
	return Main{opts: opts}
}

func (mn Main) Init() tea.Cmd {
	return nil
}

func (mn Main) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	return mn, nil
}

func (mn Main) Render() string {
	return column(
		banner(mn.opts),
		"",
		style.BrandStyle.Render(mn.opts.Brand+" main page"),
	)
}
