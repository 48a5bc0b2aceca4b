package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// sectionKeys are the keys that follow the leader to jump to a section.
var sectionKeys = []struct {
	key     string
	section Section
}{
	{"b", SectionButtons},
	{"d", SectionDialog},
	{"a", SectionAccordion},
	{"p", SectionTooltips},
	{"t", SectionTabs},
}

// newKeybindRegistry binds the showcase's global keys.
func newKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry(DefaultLeader)
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("?", toggleHelpCmd, "Help")
	for _, sk := range sectionKeys {
		reg.BindWithDesc(DefaultLeader+" "+sk.key, focusSectionCmd(sk.section), sk.section.String())
	}
	reg.BindWithDescForSection(DefaultLeader+" m", toggleAccordionModeCmd, "Single/multiple", []Section{SectionAccordion})
	reg.BindWithDescForSection(DefaultLeader+" o", toggleOrientationCmd, "Orientation", []Section{SectionTabs})
	return reg
}

func focusSectionCmd(s Section) tea.Cmd {
	return func() tea.Msg { return FocusSectionMsg{Section: s} }
}

func toggleAccordionModeCmd() tea.Msg { return ToggleAccordionModeMsg{} }

func toggleOrientationCmd() tea.Msg { return ToggleOrientationMsg{} }

func toggleHelpCmd() tea.Msg { return ToggleHelpMsg{} }

// pressCmd reports a press on a button with no behavior of its own.
func pressCmd(id, label string) tea.Cmd {
	return func() tea.Msg { return PressMsg{ID: id, Label: label} }
}
