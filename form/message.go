package form

// PressedMsg is sent when a button is pressed
type PressedMsg struct {
	Name string
}

// ValueChangedMsg is sent when a text input value changes
type ValueChangedMsg struct {
	Name  string
	Value string
}

// SelectedMsg is sent when an operator selection changes
type SelectedMsg struct {
	Name     string
	Selected string
	Index    int
}
