package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/catalog"
)

const dialogInnerWidth = 44

// DialogBody is the content of the showcase dialog: a heading with a close
// button, body text, a text input and a dismiss button. The dialog
// primitive owns the behavior; DialogBody only draws and edits text.
type DialogBody struct {
	Title string
	Text  string

	CloseLabel string
	CloseID    string
	InputID    string
	DismissID  string

	input   textinput.Model
	focus   string
	hovered string
	width   int
}

// NewDialogBody creates the body from catalog text.
func NewDialogBody(title string, d catalog.Dialog, closeID, inputID, dismissID string) *DialogBody {
	ti := textinput.New()
	ti.Placeholder = d.InputPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 64
	label := d.CloseLabel
	if label == "" {
		label = "Close"
	}
	b := &DialogBody{
		Title:      title,
		Text:       d.Body,
		CloseLabel: label,
		CloseID:    closeID,
		InputID:    inputID,
		DismissID:  dismissID,
		input:      ti,
	}
	b.SetWidth(dialogInnerWidth)
	return b
}

// SetWidth sets the inner width of the surface.
func (b *DialogBody) SetWidth(w int) {
	if w < 12 {
		w = 12
	}
	b.width = w
	b.input.Width = w - 4
}

// SetFocus records which element holds focus. Focusing the input starts
// its cursor; the returned command drives the blink.
func (b *DialogBody) SetFocus(id string) tea.Cmd {
	b.focus = id
	if id == b.InputID {
		return b.input.Focus()
	}
	b.input.Blur()
	return nil
}

// SetHovered records the element under the pointer.
func (b *DialogBody) SetHovered(id string) {
	b.hovered = id
}

// Value returns the input text.
func (b *DialogBody) Value() string {
	return b.input.Value()
}

// Reset clears the input.
func (b *DialogBody) Reset() {
	b.input.Reset()
}

// Init has no startup work; the input blinks only once focused.
func (b *DialogBody) Init() tea.Cmd {
	return nil
}

// Update forwards msg to the input. Keys only reach it while it is focused.
func (b *DialogBody) Update(msg tea.Msg) (*DialogBody, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && b.focus != b.InputID {
		return b, nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

// render draws the surface and returns where its controls landed,
// relative to the surface's top-left corner.
func (b *DialogBody) render() (string, Layout) {
	var c canvas

	title := Styles.DialogTitle.Render(b.Title)
	closeBtn := Button{Label: "✕", Variant: Outline, Size: Small}.
		Render(b.focus == b.CloseID, b.hovered == b.CloseID)
	c.row("", b.width-lipgloss.Width(title)-lipgloss.Width(closeBtn),
		cell{s: title}, cell{id: b.CloseID, s: closeBtn})
	c.blank()
	if b.Text != "" {
		c.add(Styles.Normal.Width(b.width).Render(b.Text))
		c.blank()
	}
	input := Styles.DialogInput.Render(b.input.View())
	if b.focus == b.InputID {
		input = Styles.Focused.Render(b.input.View())
	}
	c.row("", 1, cell{id: b.InputID, s: input})
	c.blank()
	dismiss := Button{Label: b.CloseLabel, Variant: Secondary, Size: Small}.
		Render(b.focus == b.DismissID, b.hovered == b.DismissID)
	c.row("", 1, cell{id: b.DismissID, s: dismiss})

	box := Styles.DialogBox.Width(b.width + Styles.DialogBox.GetHorizontalPadding())
	out := box.Render(c.String())

	var l Layout
	dx := box.GetBorderLeftSize() + box.GetPaddingLeft()
	dy := box.GetBorderTopSize() + box.GetPaddingTop()
	l.Merge(c.layout, dx, dy)
	return out, l
}
