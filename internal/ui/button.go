package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uikit/internal/ui/textutil"
)

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("unknown button variant")

// ErrUnknownSize is returned by ParseSize.
var ErrUnknownSize = errors.New("unknown button size")

// ButtonVariant selects a button's colors.
type ButtonVariant int

const (
	Primary ButtonVariant = iota
	Secondary
	Outline
)

// ButtonSize selects a button's padding.
type ButtonSize int

const (
	Medium ButtonSize = iota
	Small
	Large
)

// ParseVariant parses primary, secondary or outline. Empty means Primary.
func ParseVariant(s string) (ButtonVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "":
		return Primary, nil
	case "secondary":
		return Secondary, nil
	case "outline":
		return Outline, nil
	}
	return Primary, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// ParseSize parses small, medium or large. Empty means Medium.
func ParseSize(s string) (ButtonSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "":
		return Medium, nil
	case "small":
		return Small, nil
	case "large":
		return Large, nil
	}
	return Medium, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// Button is a presentation-only button. It has no behavior of its own; the
// host decides what a press does.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
}

// maxButtonLabel caps label width so rows stay on screen.
const maxButtonLabel = 24

// Render draws the button. Disabled buttons ignore focus and hover.
func (b Button) Render(focused, hovered bool) string {
	style := lipgloss.NewStyle().Bold(true)
	switch b.Size {
	case Small:
		style = style.Padding(0, 1)
	case Large:
		style = style.Padding(0, 3)
	default:
		style = style.Padding(0, 2)
	}

	switch {
	case b.Disabled:
		style = style.
			Foreground(lipgloss.Color(ColorMuted)).
			Background(lipgloss.Color(ColorDim)).
			Faint(true)
	case b.Variant == Secondary && hovered:
		style = style.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(ColorAccent))
	case b.Variant == Secondary:
		style = style.Foreground(lipgloss.Color("#6B3E26")).Background(lipgloss.Color("#E6E2DD"))
	case b.Variant == Outline && hovered:
		style = style.Foreground(lipgloss.Color(ColorAccentInk)).Background(lipgloss.Color("#F5F2EF")).
			Border(lipgloss.NormalBorder(), false, true).BorderForeground(lipgloss.Color(ColorAccent))
	case b.Variant == Outline:
		style = style.Foreground(lipgloss.Color(ColorAccent)).
			Border(lipgloss.NormalBorder(), false, true).BorderForeground(lipgloss.Color(ColorAccent))
	case hovered:
		style = style.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#A47551"))
	default:
		style = style.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6B3E26"))
	}
	if focused && !b.Disabled {
		style = style.Inherit(Styles.Focused)
	}
	return style.Render(textutil.Truncate(b.Label, maxButtonLabel))
}
