package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/schedule"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case schedule.FireMsg:
		if a.loop != nil {
			a.loop.Fire(msg)
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))
	case tea.MouseMsg:
		a.handleMouse(msg)
	case FocusSectionMsg:
		a.focusSection(msg.Section)
	case ToggleAccordionModeMsg:
		a.toggleAccordionMode()
	case ToggleOrientationMsg:
		a.toggleOrientation()
	case ToggleHelpMsg:
		a.fullHelp = !a.fullHelp
	case PressMsg:
		a.status = fmt.Sprintf("Pressed %s", msg.Label)
		a.logger.Info().Str("button", msg.ID).Str("label", msg.Label).Msg("button pressed")
	default:
		// Cursor blink and panel messages.
		if a.dialogOpen {
			_, cmd := a.body.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, a.tabs.UpdatePanel(msg))
	}
	cmds = append(cmds, a.pending...)
	a.pending = nil
	a.refresh()
	return a, tea.Batch(cmds...)
}

// handleKey routes a key press. While the dialog is open only the page
// (its Escape listener and the focus trap) and the dialog's own controls
// see keys; otherwise global bindings come first, then page navigation,
// then the focused element.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.dialogOpen {
		if a.page.HandleKey(msg) {
			return nil
		}
		return a.dialogKey(msg)
	}
	if consumed, cmd := a.keys.Handle(msg, a.section()); consumed {
		return cmd
	}
	if a.page.HandleKey(msg) {
		return nil
	}
	return a.elementKey(msg)
}

func (a *App) dialogKey(msg tea.KeyMsg) tea.Cmd {
	switch a.page.Doc.Active() {
	case a.body.InputID:
		_, cmd := a.body.Update(msg)
		return cmd
	case a.body.CloseID, a.body.DismissID:
		if key.Matches(msg, activateKey) {
			a.dialog.RequestClose()
		}
	}
	return nil
}

func (a *App) elementKey(msg tea.KeyMsg) tea.Cmd {
	id := a.page.Doc.Active()
	if id == "" {
		return nil
	}
	if a.tabIndexOf(id) >= 0 {
		if a.tabs.HandleKey(msg) {
			a.page.Doc.Focus(a.tabs.TabID(a.tabs.FocusedValue()))
		}
		return nil
	}
	if itemID, ok := a.panelOf(id); ok {
		if a.accordion.HandleKey(itemID, msg) {
			a.recordToggle(itemID)
		}
		return nil
	}
	if key.Matches(msg, activateKey) {
		return a.press(id)
	}
	return nil
}

// press activates id as a pointer press or Enter/Space on it would.
func (a *App) press(id string) tea.Cmd {
	if !a.page.Doc.CanFocus(id) {
		return nil
	}
	switch {
	case id == a.openerID:
		a.setDialogOpen(true)
	case id == a.body.CloseID, id == a.body.DismissID:
		a.dialog.RequestClose()
	case a.tabIndexOf(id) >= 0:
		a.tabs.Activate(a.tabIndexOf(id))
	default:
		if itemID, ok := a.panelOf(id); ok {
			a.togglePanel(itemID)
			return nil
		}
		if b, ok := a.buttonByID(id); ok {
			return pressCmd(id, b.btn.Label)
		}
		if t := a.tipByID(id); t != nil {
			return pressCmd(id, t.button.Label)
		}
	}
	return nil
}
