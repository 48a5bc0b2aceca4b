package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.Bind("q", tea.Quit)
	reg.Bind("g q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", SectionButtons) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("g q", SectionButtons) == nil {
		t.Error("expected g q to be bound")
	}
	if reg.Lookup("unknown", SectionButtons) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_SectionFilter(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.BindWithDescForSection("g o", tea.Quit, "Orientation", []Section{SectionTabs})

	if reg.Lookup("g o", SectionTabs) == nil {
		t.Error("expected g o in tabs")
	}
	if reg.Lookup("g o", SectionAccordion) != nil {
		t.Error("g o must not apply outside tabs")
	}
	if _, ok := reg.LeaderHints("", SectionAccordion)["o"]; ok {
		t.Error("hint for g o shown outside tabs")
	}
	if got := reg.LeaderHints("", SectionTabs)["o"]; got != "Orientation" {
		t.Errorf("hint = %q, want Orientation", got)
	}
}

func TestKeybindRegistry_NestedPrefixHint(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.BindWithDesc("g x y", tea.Quit, "Deep")

	if got := reg.LeaderHints("", SectionButtons)["x"]; got != "x…" {
		t.Errorf("hint = %q, want x…", got)
	}
	if got := reg.LeaderHints("g x", SectionButtons)["y"]; got != "Deep" {
		t.Errorf("hint = %q, want Deep", got)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry("g")
	var executed bool
	reg.Bind("g x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("g"), SectionButtons)
	if !consumed || cmd != nil {
		t.Errorf("g: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after g")
	}

	consumed, cmd = h.Handle(keyMsg("x"), SectionButtons)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.Bind("g x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("g"), SectionButtons)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), SectionButtons)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_EscWithoutLeaderFallsThrough(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry("g"))
	if consumed, _ := h.Handle(keyMsg("esc"), SectionButtons); consumed {
		t.Error("esc outside leader mode must reach the page")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), SectionButtons)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_SpaceIsNotTheLeader(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.Bind("g x", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg(" "), SectionButtons)
	if consumed {
		t.Error("space must reach the focused element")
	}
	if h.LeaderWaiting {
		t.Error("space must not start leader mode")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry("g")
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), SectionButtons)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
