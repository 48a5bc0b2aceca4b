// Package tabs implements a tab strip with a roving focus cursor and manual
// activation, plus lazily mounted panels.
//
// The selected value belongs to the host. Arrow keys only move the cursor;
// Enter, Space or a pointer press report the cursor's value through the
// value-change callback, and the host decides whether to pass it back in
// through SetValue.
package tabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"uikit/internal/a11y"
)

// ErrUnknownOrientation is returned by ParseOrientation for unrecognised
// values.
var ErrUnknownOrientation = errors.New("unknown orientation")

// Orientation selects which arrow pair moves the cursor.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation parses "horizontal" or "vertical". Empty means
// Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Item is one tab. Content builds the panel model and is only called while
// the tab is selected.
type Item struct {
	Value   string
	Label   string
	Content func() tea.Model
}

// Set is one tab strip and its panel.
type Set struct {
	items         []Item
	value         string
	focused       int
	orientation   Orientation
	keys          *KeyMap
	onValueChange func(string)
	ids           a11y.Scope
	logger        zerolog.Logger

	panel      tea.Model
	panelValue string
}

// Option configures a Set.
type Option func(*Set)

// WithOrientation sets the strip orientation.
func WithOrientation(o Orientation) Option {
	return func(s *Set) { s.orientation = o }
}

// WithOnValueChange sets the activation callback.
func WithOnValueChange(fn func(value string)) Option {
	return func(s *Set) { s.onValueChange = fn }
}

// WithKeyMap overrides the orientation's default keys.
func WithKeyMap(km KeyMap) Option {
	return func(s *Set) { s.keys = &km }
}

// WithIDSuffix fixes the suffix used for tab and panel ids.
func WithIDSuffix(suffix string) Option {
	return func(s *Set) { s.ids = a11y.NewScope(suffix) }
}

// WithLogger sets the logger for transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Set) { s.logger = logger }
}

// New creates a tab set showing value. The cursor starts on the selected
// tab, or on the first one when value matches nothing.
func New(items []Item, value string, opts ...Option) *Set {
	s := &Set{
		items:  append([]Item(nil), items...),
		value:  value,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.keys == nil {
		km := KeyMapFor(s.orientation)
		s.keys = &km
	}
	if s.ids.Suffix() == "" {
		s.ids = a11y.NewScope("")
	}
	s.resetCursor()
	s.mount()
	return s
}

// Init returns the mounted panel's init command.
func (s *Set) Init() tea.Cmd {
	if s.panel == nil {
		return nil
	}
	return s.panel.Init()
}

// SetValue is the host's controlled input. When the selection changes, the
// previous panel is discarded and the new one is mounted; the returned
// command is the new panel's Init.
func (s *Set) SetValue(value string) tea.Cmd {
	if value == s.value {
		return nil
	}
	s.logger.Debug().Str("from", s.value).Str("to", value).Msg("tab selected")
	s.value = value
	if i := s.SelectedIndex(); i >= 0 {
		s.focused = i
	}
	if !s.mount() {
		return nil
	}
	return s.Init()
}

// SetItems replaces the tab list and remounts the selected panel from the
// new list.
func (s *Set) SetItems(items []Item) tea.Cmd {
	s.items = append([]Item(nil), items...)
	s.resetCursor()
	s.panelValue = ""
	s.panel = nil
	if !s.mount() {
		return nil
	}
	return s.Init()
}

// Value returns the selected value.
func (s *Set) Value() string {
	return s.value
}

// Items returns the tab list.
func (s *Set) Items() []Item {
	return s.items
}

// Orientation returns the strip orientation.
func (s *Set) Orientation() Orientation {
	return s.orientation
}

// KeyMap returns the navigation keys.
func (s *Set) KeyMap() KeyMap {
	return *s.keys
}

// SelectedIndex returns the index of the selected item, or -1 when the
// value matches nothing.
func (s *Set) SelectedIndex() int {
	for i, it := range s.items {
		if it.Value == s.value {
			return i
		}
	}
	return -1
}

// Focused returns the cursor index, or -1 when there are no items.
func (s *Set) Focused() int {
	return s.focused
}

// FocusedValue returns the value under the cursor.
func (s *Set) FocusedValue() string {
	if s.focused < 0 || s.focused >= len(s.items) {
		return ""
	}
	return s.items[s.focused].Value
}

// HandleKey moves the cursor or activates the focused tab. Returns true if
// the key was one of the strip's keys.
func (s *Set) HandleKey(msg tea.KeyMsg) bool {
	if len(s.items) == 0 {
		return false
	}
	switch {
	case key.Matches(msg, s.keys.Prev):
		s.MoveFocus(-1)
	case key.Matches(msg, s.keys.Next):
		s.MoveFocus(1)
	case key.Matches(msg, s.keys.First):
		s.setFocus(0)
	case key.Matches(msg, s.keys.Last):
		s.setFocus(len(s.items) - 1)
	case key.Matches(msg, s.keys.Activate):
		s.Activate(s.focused)
	default:
		return false
	}
	return true
}

// MoveFocus moves the cursor by delta, wrapping at both ends.
func (s *Set) MoveFocus(delta int) {
	n := len(s.items)
	if n == 0 {
		return
	}
	s.setFocus(((s.focused+delta)%n + n) % n)
}

// Activate reports item i's value to the host, as a press on its trigger
// does. The cursor follows.
func (s *Set) Activate(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.focused = i
	value := s.items[i].Value
	s.logger.Debug().Str("tab", value).Msg("tab activated")
	if s.onValueChange != nil {
		s.onValueChange(value)
	}
}

// TabIndex returns 0 for the selected trigger and -1 for every other one.
func (s *Set) TabIndex(i int) int {
	if i >= 0 && i < len(s.items) && s.items[i].Value == s.value {
		return 0
	}
	return -1
}

// Panel returns the mounted panel model, or nil when nothing is selected.
func (s *Set) Panel() tea.Model {
	return s.panel
}

// UpdatePanel forwards msg to the mounted panel.
func (s *Set) UpdatePanel(msg tea.Msg) tea.Cmd {
	if s.panel == nil {
		return nil
	}
	var cmd tea.Cmd
	s.panel, cmd = s.panel.Update(msg)
	return cmd
}

// PanelView renders the mounted panel.
func (s *Set) PanelView() string {
	if s.panel == nil {
		return ""
	}
	return s.panel.View()
}

// Unmount discards the panel.
func (s *Set) Unmount() {
	s.panel = nil
	s.panelValue = ""
}

// TabID returns the element id of the trigger for value.
func (s *Set) TabID(value string) string {
	return s.ids.ID("tab", value)
}

// PanelID returns the element id of the panel for value.
func (s *Set) PanelID(value string) string {
	return s.ids.ID("tabpanel", value)
}

// ListAttrs describes the strip.
func (s *Set) ListAttrs() a11y.Attrs {
	return a11y.Attrs{}.
		Set(a11y.Role, a11y.RoleTablist).
		Set(a11y.AriaOrientation, s.orientation.String())
}

// TabAttrs describes trigger i.
func (s *Set) TabAttrs(i int) a11y.Attrs {
	if i < 0 || i >= len(s.items) {
		return a11y.Attrs{}
	}
	v := s.items[i].Value
	return a11y.Attrs{}.
		Set(a11y.ID, s.TabID(v)).
		Set(a11y.Role, a11y.RoleTab).
		SetBool(a11y.AriaSelected, v == s.value).
		Set(a11y.AriaControls, s.PanelID(v)).
		SetInt(a11y.TabIndex, s.TabIndex(i))
}

// PanelAttrs describes the panel for item i. Only the selected panel is
// visible.
func (s *Set) PanelAttrs(i int) a11y.Attrs {
	if i < 0 || i >= len(s.items) {
		return a11y.Attrs{}
	}
	v := s.items[i].Value
	return a11y.Attrs{}.
		Set(a11y.ID, s.PanelID(v)).
		Set(a11y.Role, a11y.RoleTabpanel).
		Set(a11y.AriaLabelledBy, s.TabID(v)).
		SetIf(v != s.value, a11y.Hidden, "true")
}

func (s *Set) setFocus(i int) {
	if i == s.focused {
		return
	}
	s.focused = i
	s.logger.Debug().Int("cursor", i).Str("tab", s.items[i].Value).Msg("tab cursor moved")
}

func (s *Set) resetCursor() {
	switch i := s.SelectedIndex(); {
	case len(s.items) == 0:
		s.focused = -1
	case i >= 0:
		s.focused = i
	default:
		s.focused = 0
	}
}

// mount instantiates the selected panel unless it is already mounted.
// Reports whether a new panel was created.
func (s *Set) mount() bool {
	i := s.SelectedIndex()
	if i < 0 || s.items[i].Content == nil {
		s.panel = nil
		s.panelValue = ""
		return false
	}
	if s.panel != nil && s.panelValue == s.value {
		return false
	}
	s.panel = s.items[i].Content()
	s.panelValue = s.value
	return s.panel != nil
}
