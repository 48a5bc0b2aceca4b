package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the showcase.
const (
	ColorAccent    = "#C89F65" // Brass - primary buttons, focus ring
	ColorAccentInk = "#1E1A14" // Text on accent
	ColorSecondary = "#5B4E3C" // Secondary buttons
	ColorMuted     = "241"     // Gray - hints, disabled text
	ColorText      = "252"     // Light gray - body text
	ColorDim       = "236"     // Disabled background, scrim shadow
	ColorTooltip   = "#2B2520" // Tooltip bubble background
)

// Styles contains shared style definitions used by the renderers.
var Styles = struct {
	Title   lipgloss.Style // Page heading
	Section lipgloss.Style // "## Section" headings
	RowHead lipgloss.Style // Button row captions
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Hint    lipgloss.Style
	Status  lipgloss.Style

	Focused  lipgloss.Style // Focus ring applied on top of an element's own style
	Selected lipgloss.Style // Selected tab, open accordion header

	Header     lipgloss.Style // Accordion header
	PanelBody  lipgloss.Style // Accordion panel content
	TextTarget lipgloss.Style // Non-button tooltip trigger
	Bubble     lipgloss.Style // Tooltip bubble

	Tab      lipgloss.Style
	TabPanel lipgloss.Style

	DialogBox   lipgloss.Style
	DialogTitle lipgloss.Style
	DialogInput lipgloss.Style
	Scrim       lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginTop(1),
	RowHead: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Width(14),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Italic(true),
	Focused: lipgloss.NewStyle().
		Underline(true).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	PanelBody: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		PaddingLeft(4),
	TextTarget: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Border(lipgloss.HiddenBorder(), false, true).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Bubble: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorTooltip)).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabPanel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	DialogBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	DialogTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	DialogInput: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Scrim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
}
