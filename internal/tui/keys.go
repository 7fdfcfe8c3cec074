package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Focus   key.Binding
	Dismiss key.Binding
	Reload  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Sidebar key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "types/designs")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close versions")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload types")),
		NextTab: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev tab")),
		Sidebar: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.Dismiss, k.Reload, k.NextTab, k.Sidebar, k.Quit}
}
