package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse hit-tests pointer events against the last render. While the
// dialog is open the body below the scrim receives nothing but is still
// scroll-locked for wheel events.
func (a *App) handleMouse(msg tea.MouseMsg) {
	if a.page.HandleMouse(msg) {
		return
	}
	if a.dialogOpen {
		a.dialogMouse(msg)
		return
	}

	var hit Panel
	if msg.Y < a.bodyHeight() {
		hit, _ = a.layout.At(msg.X, msg.Y+a.page.YOffset())
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		a.setHovered(hit.ID)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.setHovered(hit.ID)
		if hit.ID != "" && a.page.Doc.Focus(hit.ID) {
			a.pend(a.press(hit.ID))
		}
	}
}

func (a *App) dialogMouse(msg tea.MouseMsg) {
	hit, _ := a.overlay.At(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionMotion:
		a.body.SetHovered(hit.ID)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if hit.ID != "" && a.page.Doc.Focus(hit.ID) {
			a.pend(a.press(hit.ID))
			return
		}
		a.dialog.HandlePointer(msg.X, msg.Y, a.surface)
	}
}
