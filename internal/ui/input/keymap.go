package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Toggle   key.Binding
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Like     key.Binding
	Bookmark key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var Default = Map{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "t", "enter"),
		key.WithHelp("space", "Change scroll direction"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "j", "right", "l", "pgdown"),
		key.WithHelp("↓/→", "Next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "k", "left", "h", "pgup"),
		key.WithHelp("↑/←", "Previous"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "First"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "Last"),
	),
	Like: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "Like"),
	),
	Bookmark: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "Bookmark"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
}
