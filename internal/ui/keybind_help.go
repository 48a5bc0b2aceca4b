package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled for the showcase.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = Styles.Muted
	m.Styles.FullSeparator = Styles.Muted
	return m
}

// RenderKeybindHelp produces the transient help bar shown after the leader
// key, listing what may follow in section.
func RenderKeybindHelp(keyHandler *KeyHandler, section Section) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, section).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := keyHandler.Registry.Leader()
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	m := newHelpModel()
	return Styles.Muted.Render(prefix) + " " + m.ShortHelpView(bindings)
}

// componentHelp is the help.KeyMap shown in the footer: the focused
// component's keys followed by the page-level ones.
type componentHelp struct {
	component []key.Binding
	page      []key.Binding
}

func pageBindings(leader string) []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab/⇧tab", "focus")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		key.NewBinding(key.WithKeys(leader), key.WithHelp(leader, "go to…")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (c componentHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), c.component...), c.page...)
}

func (c componentHelp) FullHelp() [][]key.Binding {
	if len(c.component) == 0 {
		return [][]key.Binding{c.page}
	}
	return [][]key.Binding{c.component, c.page}
}
