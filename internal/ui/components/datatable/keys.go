package datatable

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the browser key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open row"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Activate, k.Copy, k.Quit}
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}
		h := b.Help()
		line += h.Key + " " + h.Desc
	}
	return line
}
