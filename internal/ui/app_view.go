package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/a11y"
	"uikit/internal/page"
	"uikit/internal/tabs"
	"uikit/internal/ui/textutil"
)

// refresh re-renders the body and the dialog surface and records their hit
// regions. It runs after every Update, so View only composes.
func (a *App) refresh() {
	content, layout := a.renderBody()
	a.layout = layout

	a.footerView = a.renderFooter()
	a.page.SetSize(a.width, a.bodyHeight())
	a.page.SetContent(content)

	a.overlay = Layout{}
	a.surface = page.Rect{}
	a.surfaceView = ""
	if !a.dialogOpen {
		return
	}
	a.body.SetWidth(min(dialogInnerWidth, a.width-8))
	view, l := a.body.render()
	a.surface = centerRect(view, a.width, a.height)
	a.surfaceView = view
	a.overlay.Merge(l, a.surface.X, a.surface.Y)
}

func (a *App) bodyHeight() int {
	return max(1, a.height-lipgloss.Height(a.footerView))
}

// View implements tea.Model.
func (a *App) View() string {
	body := a.page.View()
	if !a.dialogOpen {
		body = a.drawBubbles(body)
	}
	screen := body + "\n" + a.footerView
	if a.dialogOpen {
		screen = overlayAt(scrim(screen), a.surfaceView, a.surface.X, a.surface.Y, a.width)
	}
	return screen
}

// drawBubbles overlays every shown tooltip next to its trigger.
func (a *App) drawBubbles(body string) string {
	for _, t := range a.tips {
		if !t.pop.Open() {
			continue
		}
		p, ok := a.layout.Lookup(t.id)
		if !ok {
			continue
		}
		r := p.Bounds
		r.Y -= a.page.YOffset()
		bubble := Styles.Bubble.Render(t.content)
		w, h := lipgloss.Width(bubble), lipgloss.Height(bubble)
		x, y := placeBubble(r, w, h, t.pop.Placement())
		if x+w > a.width {
			x = max(0, a.width-w)
		}
		body = overlayAt(body, bubble, x, y, a.width)
	}
	return body
}

func (a *App) renderBody() (string, Layout) {
	var c canvas
	c.add(Styles.Title.Render(a.cat.Title))
	a.renderButtons(&c)
	a.renderDialogOpener(&c)
	a.renderAccordion(&c)
	a.renderTooltips(&c)
	a.renderTabs(&c)
	return c.String(), c.layout
}

func (a *App) isFocused(id string) bool {
	return a.page.Doc.Active() == id
}

func (a *App) renderButtons(c *canvas) {
	if len(a.buttons) == 0 {
		return
	}
	c.add(Styles.Section.Render("Buttons"))
	var row string
	var cells []cell
	flush := func() {
		if len(cells) > 0 {
			c.row(Styles.RowHead.Render(row), 1, cells...)
		}
		cells = nil
	}
	for _, b := range a.buttons {
		if b.row != row {
			flush()
			row = b.row
		}
		cells = append(cells, cell{id: b.id, s: b.btn.Render(a.isFocused(b.id), a.hovered == b.id)})
	}
	flush()
}

func (a *App) renderDialogOpener(c *canvas) {
	c.add(Styles.Section.Render("Dialog"))
	label := a.cat.Dialog.OpenLabel
	if label == "" {
		label = "Open dialog"
	}
	opener := Button{Label: label, Variant: Primary}.Render(a.isFocused(a.openerID), a.hovered == a.openerID)
	hint := "backdrop click closes"
	if !a.dialog.CloseOnBackdrop() {
		hint = "backdrop click ignored"
	}
	c.row("", 2, cell{id: a.openerID, s: opener}, cell{s: Styles.Hint.Render(hint)})
}

func (a *App) renderAccordion(c *canvas) {
	items := a.accordion.Items()
	if len(items) == 0 {
		return
	}
	c.add(Styles.Section.Render("Accordion") + Styles.Muted.Render(" ("+a.accordion.Mode().String()+")"))
	for _, it := range items {
		id := a.accordion.TriggerID(it.ID)
		open := a.accordion.IsOpen(it.ID)
		marker := "▸ "
		style := Styles.Header
		if open {
			marker = "▾ "
			style = Styles.Selected
		}
		if a.isFocused(id) || a.hovered == id {
			style = style.Inherit(Styles.Focused)
		}
		c.row("", 1, cell{id: id, s: style.Render(marker + it.Header)})
		if open {
			c.add(Styles.PanelBody.Render(it.Content))
		}
	}
}

func (a *App) renderTooltips(c *canvas) {
	if len(a.tips) == 0 {
		return
	}
	c.add(Styles.Section.Render("Tooltips"))
	cells := make([]cell, 0, len(a.tips))
	for _, t := range a.tips {
		var s string
		if t.plain {
			style := Styles.TextTarget
			if a.isFocused(t.id) {
				style = style.Inherit(Styles.Focused)
			}
			s = style.Render(t.button.Label)
		} else {
			s = t.button.Render(a.isFocused(t.id), a.hovered == t.id)
		}
		cells = append(cells, cell{id: t.id, s: s})
	}
	c.row("", 2, cells...)
	// Room for bubbles placed below the row.
	c.blank()
	c.blank()
}

func (a *App) renderTabs(c *canvas) {
	items := a.tabs.Items()
	if len(items) == 0 {
		return
	}
	c.add(Styles.Section.Render("Tabs") + Styles.Muted.Render(" ("+a.tabs.Orientation().String()+")"))
	selected := a.tabs.SelectedIndex()
	cells := make([]cell, 0, len(items))
	for i, it := range items {
		id := a.tabs.TabID(it.Value)
		style := Styles.Tab
		if i == selected {
			style = style.Foreground(lipgloss.Color(ColorAccent)).Bold(true)
		}
		if a.isFocused(id) {
			style = style.Inherit(Styles.Focused)
		}
		cells = append(cells, cell{id: id, s: style.Render(it.Label)})
	}
	panel := Styles.TabPanel.Render(a.tabs.PanelView())

	if a.tabs.Orientation() == tabs.Vertical {
		var col canvas
		col.column(0, cells...)
		y := c.y()
		c.add(lipgloss.JoinHorizontal(lipgloss.Top, col.String(), "  ", panel))
		c.layout.Merge(col.layout, 0, y)
		return
	}
	c.row("", 1, cells...)
	c.add(panel)
}

func (a *App) renderFooter() string {
	left := Styles.Status.Render(a.status)
	right := Styles.Muted.Render(textutil.Truncate(a.attrsFor(a.page.Doc.Active()).String(), max(0, a.width/2)))
	status := textutil.SpreadRow(left, right, a.width)

	var hints string
	if a.keys.LeaderWaiting {
		hints = RenderKeybindHelp(a.keys, a.section())
	} else {
		a.help.ShowAll = a.fullHelp
		hints = a.help.View(componentHelp{
			component: a.componentKeys(),
			page:      pageBindings(a.keys.Registry.Leader()),
		})
	}
	return strings.Join([]string{status, hints}, "\n")
}

// componentKeys returns the keys the focused element responds to.
func (a *App) componentKeys() []key.Binding {
	id := a.page.Doc.Active()
	switch {
	case a.dialogOpen:
		return []key.Binding{a.dialog.KeyMap().Close, activateKey}
	case a.tabIndexOf(id) >= 0:
		return a.tabs.KeyMap().ShortHelp()
	}
	if _, ok := a.panelOf(id); ok {
		return []key.Binding{a.accordion.KeyMap().Toggle}
	}
	if id != "" {
		return []key.Binding{activateKey}
	}
	return nil
}

// attrsFor returns the accessibility attributes of element id as the
// primitives expose them.
func (a *App) attrsFor(id string) a11y.Attrs {
	if id == "" {
		return a11y.Attrs{}
	}
	if i := a.tabIndexOf(id); i >= 0 {
		return a.tabs.TabAttrs(i)
	}
	if itemID, ok := a.panelOf(id); ok {
		return a.accordion.TriggerAttrs(itemID)
	}
	if t := a.tipByID(id); t != nil {
		return t.pop.TriggerAttrs().Set(a11y.ID, id)
	}
	switch id {
	case a.body.CloseID:
		return a.dialog.CloseButtonAttrs()
	case a.dialog.ContentID():
		return a.dialog.ContentAttrs()
	}
	return a11y.Attrs{}.Set(a11y.ID, id)
}
