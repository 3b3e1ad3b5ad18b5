package nav

import tea "charm.land/bubbletea/v2"

// FireMsg asks the host to fire an event on its navigator.
type FireMsg struct {
	Event Event
}

// FireCmd returns a command that reports event to the host.
func FireCmd(ev Event) tea.Cmd {
	return func() tea.Msg {
		return FireMsg{Event: ev}
	}
}
