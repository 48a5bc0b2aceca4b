// Package catalog loads the showcase content: the buttons, dialog text,
// accordion panels, tooltips and tabs the demo program renders.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"uikit/internal/disclosure"
	"uikit/internal/popover"
)

var (
	// ErrMissingID is returned when a panel or tab has no identity.
	ErrMissingID = errors.New("missing id")
	// ErrDuplicateID is returned when two panels or two tabs share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnsupportedVersion is returned for catalogs newer than this build.
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
)

// Version is the catalog format this build reads.
const Version = 1

const defaultCatalogTOML = `version = 1
title = "UI Components"

[[buttons]]
row = "01. Large"
label = "Primary"
variant = "primary"
size = "large"

[[buttons]]
row = "01. Large"
label = "Secondary"
variant = "secondary"
size = "large"

[[buttons]]
row = "01. Large"
label = "Outline"
variant = "outline"
size = "large"

[[buttons]]
row = "02. Medium"
label = "Primary"
variant = "primary"
size = "medium"

[[buttons]]
row = "02. Medium"
label = "Secondary"
variant = "secondary"
size = "medium"

[[buttons]]
row = "02. Medium"
label = "Outline"
variant = "outline"
size = "medium"

[[buttons]]
row = "03. Small"
label = "Primary"
variant = "primary"
size = "small"

[[buttons]]
row = "03. Small"
label = "Secondary"
variant = "secondary"
size = "small"

[[buttons]]
row = "03. Small"
label = "Outline"
variant = "outline"
size = "small"

[[buttons]]
row = "04. Disabled"
label = "Primary"
variant = "primary"
size = "small"
disabled = true

[[buttons]]
row = "04. Disabled"
label = "Secondary"
variant = "secondary"
size = "small"
disabled = true

[[buttons]]
row = "04. Disabled"
label = "Outline"
variant = "outline"
size = "small"
disabled = true

[dialog]
open_label = "Open dialog"
title = "Heads up"
body = "This is the portfolio dialog. Tab stays inside until it closes."
input_placeholder = "Type something"
close_label = "Close"

[accordion]
default_open = ["a1"]

[[accordion.items]]
id = "a1"
header = "01 Example"
content = "Example one"

[[accordion.items]]
id = "a2"
header = "02 Example"
content = "Example two"

[[accordion.items]]
id = "a3"
header = "03 Example"
content = "Example three"

[[tooltips]]
label = "Hover me"
content = "Default (bottom) tooltip"
variant = "secondary"

[[tooltips]]
label = "Top"
content = "Shown above"
placement = "top"
variant = "outline"

[[tooltips]]
label = "Text target"
content = "Shown to the right"
placement = "right"

[[tooltips]]
label = "Delay 600ms"
content = "Shown after 600ms"
delay = "600ms"
variant = "primary"

[tabs]
value = "guide"

[[tabs.items]]
value = "guide"
label = "Guide"
content = "Arrow keys move between tabs. Enter or Space selects."

[[tabs.items]]
value = "examples"
label = "Examples"
content = "Only the selected panel is built. Switching tabs discards the old one."

[[tabs.items]]
value = "notes"
label = "Notes"
content = "Exactly one tab is reachable with Tab: the selected one."
`

// Duration is a TOML string such as "600ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Catalog is the whole showcase.
type Catalog struct {
	Version   int       `toml:"version"`
	Title     string    `toml:"title"`
	Buttons   []Button  `toml:"buttons"`
	Dialog    Dialog    `toml:"dialog"`
	Accordion Accordion `toml:"accordion"`
	Tooltips  []Tooltip `toml:"tooltips"`
	Tabs      Tabs      `toml:"tabs"`
}

// Button is one presentation-only button.
type Button struct {
	Row      string `toml:"row"`
	Label    string `toml:"label"`
	Variant  string `toml:"variant"`
	Size     string `toml:"size"`
	Disabled bool   `toml:"disabled"`
}

// Dialog is the modal's text. Empty Title falls back to configuration.
type Dialog struct {
	OpenLabel        string `toml:"open_label"`
	Title            string `toml:"title"`
	Body             string `toml:"body"`
	InputPlaceholder string `toml:"input_placeholder"`
	CloseLabel       string `toml:"close_label"`
}

// Accordion is the disclosure group. Empty Mode falls back to
// configuration.
type Accordion struct {
	Mode        string       `toml:"mode"`
	DefaultOpen []string     `toml:"default_open"`
	Items       []PanelEntry `toml:"items"`
}

// PanelEntry is one accordion panel.
type PanelEntry struct {
	ID      string `toml:"id"`
	Header  string `toml:"header"`
	Content string `toml:"content"`
}

// Tooltip is one popover and its trigger. Empty Placement and zero Delay
// fall back to configuration.
type Tooltip struct {
	Label     string   `toml:"label"`
	Content   string   `toml:"content"`
	Placement string   `toml:"placement"`
	Delay     Duration `toml:"delay"`
	Variant   string   `toml:"variant"`
}

// Tabs is the tab set.
type Tabs struct {
	Value string     `toml:"value"`
	Items []TabEntry `toml:"items"`
}

// TabEntry is one tab.
type TabEntry struct {
	Value   string `toml:"value"`
	Label   string `toml:"label"`
	Content string `toml:"content"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalogTOML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog text.
func Parse(data string) (Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks identities and enumerated fields.
func (c Catalog) Validate() error {
	if c.Version > Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if c.Accordion.Mode != "" {
		if _, err := disclosure.ParseMode(c.Accordion.Mode); err != nil {
			return fmt.Errorf("accordion: %w", err)
		}
	}
	seen := make(map[string]bool, len(c.Accordion.Items))
	for i, it := range c.Accordion.Items {
		if strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("accordion.items[%d]: %w", i, ErrMissingID)
		}
		if seen[it.ID] {
			return fmt.Errorf("accordion.items[%d] %q: %w", i, it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
	}
	for i, tip := range c.Tooltips {
		if _, err := popover.ParsePlacement(tip.Placement); err != nil {
			return fmt.Errorf("tooltips[%d]: %w", i, err)
		}
		if tip.Delay.Duration < 0 {
			return fmt.Errorf("tooltips[%d]: negative delay %s", i, tip.Delay)
		}
	}
	seen = make(map[string]bool, len(c.Tabs.Items))
	for i, it := range c.Tabs.Items {
		if strings.TrimSpace(it.Value) == "" {
			return fmt.Errorf("tabs.items[%d]: %w", i, ErrMissingID)
		}
		if seen[it.Value] {
			return fmt.Errorf("tabs.items[%d] %q: %w", i, it.Value, ErrDuplicateID)
		}
		seen[it.Value] = true
	}
	return nil
}

// PanelItems converts the accordion entries.
func (a Accordion) PanelItems() []disclosure.PanelItem {
	out := make([]disclosure.PanelItem, 0, len(a.Items))
	for _, it := range a.Items {
		out = append(out, disclosure.PanelItem{ID: it.ID, Header: it.Header, Content: it.Content})
	}
	return out
}
