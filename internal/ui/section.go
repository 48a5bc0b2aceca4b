package ui

// Section is one showcase area. The section owning the focused element
// decides which leader bindings and help entries apply.
type Section int

const (
	SectionButtons Section = iota
	SectionDialog
	SectionAccordion
	SectionTooltips
	SectionTabs
)

func (s Section) String() string {
	switch s {
	case SectionButtons:
		return "Buttons"
	case SectionDialog:
		return "Dialog"
	case SectionAccordion:
		return "Accordion"
	case SectionTooltips:
		return "Tooltips"
	case SectionTabs:
		return "Tabs"
	default:
		return "Unknown"
	}
}
