package guidora

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"guidora/config"
	"guidora/message"
	"guidora/nav"
	"guidora/screen"
	"guidora/style"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model hosting the onboarding navigator.
type Model struct {
	ctx    context.Context
	logger Logger

	flow      nav.Flow
	navigator *nav.Navigator
	render    screen.Renderer
	leaf      screen.Leaf

	brand       string
	altScreen   bool
	errorString string

	Width  int
	Height int
}

// NewModel creates a model showing the home screen.
func NewModel(ctx context.Context, cfg *config.Config, render screen.Renderer, lgr Logger) Model {

	m := Model{
		ctx:       ctx,
		logger:    lgr,
		flow:      nav.Onboarding,
		navigator: nav.New(),
		render:    render,
		brand:     cfg.Brand,
		altScreen: cfg.AltScreen,
	}
	m.leaf = m.renderCurrent()

	return m
}

// Screen returns the visible screen.
func (m Model) Screen() nav.Screen {
	return m.navigator.Current()
}

// History returns the back history.
func (m Model) History() []nav.Screen {
	return m.navigator.History()
}

// Leaf returns the visible leaf.
func (m Model) Leaf() screen.Leaf {
	return m.leaf
}

// Error returns the error shown in the footer, if any.
func (m Model) Error() string {
	return m.errorString
}

func (m Model) Init() tea.Cmd {
	m.logger.Info(m.ctx, "starting onboarding", "screen", m.navigator.Current().String())
	return m.leaf.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case nav.FireMsg:
		return m.fire(msg.Event)

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c":
			m.logger.Info(m.ctx, "quitting", "screen", m.navigator.Current().String())
			return m, tea.Quit

		case "esc":
			return m.back()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.leaf, cmd = m.leaf.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	content := m.leaf.Render()
	screenContent := lipgloss.Place(m.Width, m.Height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(m.navigator.Current(), m.navigator.CanGoBack(), m.brand, m.Width)
	if m.errorString != "" {
		footerContent = style.ErrorStyle.Render(m.errorString)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = m.altScreen
	return view
}

// unexported

// fire applies a leaf event and renders the screen it leads to.
func (m Model) fire(ev nav.Event) (tea.Model, tea.Cmd) {

	from := m.navigator.Current()
	couldGoBack := m.navigator.CanGoBack()

	tr, err := m.navigator.Fire(m.flow, ev)
	if err != nil {
		m.logger.Error(m.ctx, "failed to fire event", err, "event", ev.String(), "screen", from.String())
		m.errorString = err.Error()
		return m, nil
	}

	if tr.Kind == nav.Pop && !couldGoBack {
		m.logger.Info(m.ctx, "no screen to go back to", "screen", from.String())
		return m, nil
	}

	m.logger.Info(m.ctx, "navigated",
		"transition", tr.String(),
		"from", from.String(),
		"to", m.navigator.Current().String(),
		"history", fmt.Sprint(m.navigator.History()),
	)
	return m.show()
}

// back pops the history, leaving the app when there is nothing to pop.
func (m Model) back() (tea.Model, tea.Cmd) {

	from := m.navigator.Current()

	to, ok := m.navigator.Back()
	if !ok {
		m.logger.Info(m.ctx, "leaving app", "screen", from.String())
		return m, tea.Quit
	}

	m.logger.Info(m.ctx, "went back", "from", from.String(), "to", to.String())
	return m.show()
}

func (m Model) show() (tea.Model, tea.Cmd) {
	m.leaf = m.renderCurrent()
	return m, m.leaf.Init()
}

func (m Model) renderCurrent() screen.Leaf {
	cur := m.navigator.Current()
	return m.render(cur, screen.Bind(m.flow, cur))
}
