package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Enter     key.Binding
	Escape    key.Binding
	Today     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day/page")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day/page")),
	PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "next month")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
