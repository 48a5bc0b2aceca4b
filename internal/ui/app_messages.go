package ui

// FocusSectionMsg moves focus to the first focusable element of a section.
type FocusSectionMsg struct {
	Section Section
}

// ToggleAccordionModeMsg switches the accordion between single and
// multiple mode.
type ToggleAccordionModeMsg struct{}

// ToggleOrientationMsg switches the tab strip between horizontal and
// vertical.
type ToggleOrientationMsg struct{}

// ToggleHelpMsg shows or hides the full help.
type ToggleHelpMsg struct{}

// PressMsg reports a press on a button that has no behavior of its own.
type PressMsg struct {
	ID    string
	Label string
}
