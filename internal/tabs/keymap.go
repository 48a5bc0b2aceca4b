package tabs

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the strip's navigation and activation keys.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// KeyMapFor returns the default keys for o. Only the arrow pair along the
// strip's axis is bound.
func KeyMapFor(o Orientation) KeyMap {
	km := KeyMap{
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first tab")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select tab")),
	}
	if o == Vertical {
		km.Prev = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous tab"))
		km.Next = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next tab"))
	} else {
		km.Prev = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous tab"))
		km.Next = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab"))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last, k.Activate},
	}
}
