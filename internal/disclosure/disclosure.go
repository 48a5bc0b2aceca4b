// Package disclosure implements an accordion-style group of panels whose
// open/closed state follows a single- or multiple-open policy.
package disclosure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"uikit/internal/a11y"
)

// ErrUnknownMode is returned by ParseMode for unrecognised values.
var ErrUnknownMode = errors.New("unknown disclosure mode")

// Mode is the open policy of a Group.
type Mode int

const (
	// Single allows at most one open panel.
	Single Mode = iota
	// Multiple lets panels open and close independently.
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// ParseMode parses "single" or "multiple".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return Single, nil
	case "multiple":
		return Multiple, nil
	}
	return Single, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// PanelItem is one header/content pair supplied by the host. Identity is ID.
type PanelItem struct {
	ID      string
	Header  string
	Content string
}

// KeyMap holds the keys that toggle a focused header.
type KeyMap struct {
	Toggle key.Binding
}

// DefaultKeyMap toggles on Enter or Space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle panel")),
	}
}

// Group owns the open set of one accordion instance.
type Group struct {
	items  []PanelItem
	mode   Mode
	open   []string
	ids    a11y.Scope
	keys   KeyMap
	logger zerolog.Logger
}

// Option configures a Group.
type Option func(*Group)

// WithIDSuffix fixes the suffix used for trigger/panel ids.
func WithIDSuffix(suffix string) Option {
	return func(g *Group) { g.ids = a11y.NewScope(suffix) }
}

// WithKeyMap overrides the toggle keys.
func WithKeyMap(km KeyMap) Option {
	return func(g *Group) { g.keys = km }
}

// WithLogger sets the logger for transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Group) { g.logger = logger }
}

// New creates a group. defaultOpen seeds the open set and is truncated to its
// first entry in Single mode.
func New(items []PanelItem, mode Mode, defaultOpen []string, opts ...Option) *Group {
	g := &Group{
		items:  append([]PanelItem(nil), items...),
		mode:   mode,
		keys:   DefaultKeyMap(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.ids.Suffix() == "" {
		g.ids = a11y.NewScope("")
	}
	seed := defaultOpen
	if mode == Single && len(seed) > 1 {
		seed = seed[:1]
	}
	for _, id := range seed {
		if !g.IsOpen(id) {
			g.open = append(g.open, id)
		}
	}
	return g
}

// Toggle flips id's membership in the open set. In Single mode opening id
// closes whichever panel was open. Ids absent from the item list are
// accepted as-is.
func (g *Group) Toggle(id string) {
	opened := g.IsOpen(id)
	switch g.mode {
	case Single:
		if opened {
			g.open = nil
		} else {
			g.open = []string{id}
		}
	default:
		if opened {
			g.open = remove(g.open, id)
		} else {
			g.open = append(g.open, id)
		}
	}
	g.logger.Debug().Str("panel", id).Bool("open", !opened).Str("mode", g.mode.String()).Msg("disclosure toggled")
}

// IsOpen reports whether id is open.
func (g *Group) IsOpen(id string) bool {
	for _, o := range g.open {
		if o == id {
			return true
		}
	}
	return false
}

// OpenIDs returns the open ids in the order they were opened.
func (g *Group) OpenIDs() []string {
	return append([]string(nil), g.open...)
}

// Items returns the panel list.
func (g *Group) Items() []PanelItem {
	return g.items
}

// Mode returns the open policy.
func (g *Group) Mode() Mode {
	return g.mode
}

// KeyMap returns the toggle keys.
func (g *Group) KeyMap() KeyMap {
	return g.keys
}

// HandleKey toggles id when msg matches the toggle binding.
func (g *Group) HandleKey(id string, msg tea.KeyMsg) bool {
	if !key.Matches(msg, g.keys.Toggle) {
		return false
	}
	g.Toggle(id)
	return true
}

// TriggerID returns the element id of id's header button.
func (g *Group) TriggerID(id string) string {
	return g.ids.ID("acc-btn", id)
}

// PanelID returns the element id of id's content region.
func (g *Group) PanelID(id string) string {
	return g.ids.ID("acc-panel", id)
}

// TriggerAttrs describes id's header button.
func (g *Group) TriggerAttrs(id string) a11y.Attrs {
	return a11y.Attrs{}.
		Set(a11y.ID, g.TriggerID(id)).
		SetBool(a11y.AriaExpanded, g.IsOpen(id)).
		Set(a11y.AriaControls, g.PanelID(id))
}

// PanelAttrs describes id's content region.
func (g *Group) PanelAttrs(id string) a11y.Attrs {
	open := g.IsOpen(id)
	return a11y.Attrs{}.
		Set(a11y.ID, g.PanelID(id)).
		Set(a11y.Role, a11y.RoleRegion).
		Set(a11y.AriaLabelledBy, g.TriggerID(id)).
		SetBool(a11y.DataOpen, open).
		SetIf(!open, a11y.Hidden, "true")
}

func remove(ids []string, id string) []string {
	out := ids[:0:0]
	for _, o := range ids {
		if o != id {
			out = append(out, o)
		}
	}
	return out
}
