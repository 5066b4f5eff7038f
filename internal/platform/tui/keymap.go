package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap centralizes the player's key bindings.
type keyMap struct {
	Quit      key.Binding
	Cancel    key.Binding
	Advance   key.Binding
	Inventory key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "skip cutscene / clear verb"),
	),
	Advance: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "advance dialog"),
	),
	Inventory: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "cycle item"),
	),
	Up: key.NewBinding(
		key.WithKeys("w", "up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("s", "down", "j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
}
