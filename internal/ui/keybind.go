package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLeader is the leader key. Space is taken by button and tab
// activation, so the leader is a plain letter.
const DefaultLeader = "g"

// KeybindRegistry maps key sequences to commands.
// Sequences are space separated: "q" is a single key, "g d" is the leader
// followed by d.
type KeybindRegistry struct {
	leader        string
	bindings      map[string]tea.Cmd
	descriptions  map[string]string
	sectionFilter map[string][]Section // nil/empty = applies everywhere
}

// NewKeybindRegistry creates an empty registry using leader as the prefix
// key for LeaderHints.
func NewKeybindRegistry(leader string) *KeybindRegistry {
	if leader == "" {
		leader = DefaultLeader
	}
	return &KeybindRegistry{
		leader:        leader,
		bindings:      make(map[string]tea.Cmd),
		descriptions:  make(map[string]string),
		sectionFilter: make(map[string][]Section),
	}
}

// Leader returns the leader key.
func (r *KeybindRegistry) Leader() string {
	return r.leader
}

// Bind registers a key sequence to a command, overwriting any existing
// binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies in every section.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForSection(seq, cmd, desc, nil)
}

// BindWithDescForSection registers a key sequence that only applies while
// focus is in one of sections. Nil or empty sections applies everywhere.
func (r *KeybindRegistry) BindWithDescForSection(seq string, cmd tea.Cmd, desc string, sections []Section) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(sections) > 0 {
		r.sectionFilter[n] = sections
	} else {
		delete(r.sectionFilter, n)
	}
}

// Lookup returns the command for a key sequence in section, or nil if not
// bound there.
func (r *KeybindRegistry) Lookup(seq string, section Section) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, section) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e.
// more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that may follow currentSeq in section, with
// their descriptions. An empty currentSeq means "just after the leader".
func (r *KeybindRegistry) LeaderHints(currentSeq string, section Section) map[string]string {
	out := make(map[string]string)
	prefix := r.leader + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesTo(seq, section) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			next = parts[0]
		}
		switch {
		case r.HasPrefix(prefix + next):
			out[next] = next + "…"
		case r.descriptions[seq] != "":
			out[next] = r.descriptions[seq]
		default:
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, section Section) bool {
	sections, ok := r.sectionFilter[seq]
	if !ok || len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// normalizeSeq collapses whitespace and spells the space bar "SPC".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg with focus in section. Returns (consumed, cmd).
// If consumed is true the key belongs to the keybind system and must not
// reach the page or the focused element.
func (h *KeyHandler) Handle(msg tea.KeyMsg, section Section) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Cancel()
			return true, nil
		}
		return false, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, section); c != nil {
			h.Cancel()
			return true, c
		}
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Cancel()
		return true, nil
	}

	if s == h.Registry.Leader() {
		h.LeaderWaiting = true
		h.Buffer = []string{h.Registry.Leader()}
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), section); c != nil {
		return true, c
	}
	return false, nil
}

// Cancel leaves leader mode.
func (h *KeyHandler) Cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the leader hints for one section.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	section    Section
}

// NewKeyMap creates a KeyMap for the given registry, handler, and section.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, section Section) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		section:    section,
	}
}

// ShortHelp returns the hints that may follow the current sequence, sorted,
// with esc to cancel.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil && len(km.keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(km.keyHandler.Buffer, " ")
	}
	hints := km.registry.LeaderHints(currentSeq, km.section)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
	return bindings
}

// FullHelp returns a single column with the ShortHelp bindings.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
