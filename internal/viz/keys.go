package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Theme  key.Binding
	Link   key.Binding
	Close  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Next:   key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next stop")),
		Prev:   key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "prev stop")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Link:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "directions link")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close popup")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Next, k.Prev},
		{k.Theme, k.Link, k.Close, k.Help, k.Quit},
	}
}
