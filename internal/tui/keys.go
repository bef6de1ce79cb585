package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Sidebar key.Binding
	Attrs   key.Binding
	Help    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reset   key.Binding
	Select  key.Binding
	Mode    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "regions")),
		Attrs:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "data")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("Enter", "select")),
		Mode:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select mode")),
	}
}

// helpBindings lists the bindings shown in the footer, in order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Up, k.ZoomIn, k.Sidebar, k.Select, k.Mode, k.Attrs, k.Reset, k.Help, k.Quit}
}
