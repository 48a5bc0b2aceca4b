// Package page models the host page the interaction primitives are embedded
// in: the focus document, window-level key listeners, the body scroll lock,
// and the scrollable body itself.
//
// These are the page-global resources a dialog saves and restores. Each
// primitive talks to them through small interfaces so tests can substitute
// their own.
package page

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is an on-screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ScrollLock is the body's scroll suppression flag.
type ScrollLock struct {
	locked bool
}

// Locked reports whether body scrolling is suppressed.
func (s *ScrollLock) Locked() bool { return s.locked }

// SetLocked sets the flag.
func (s *ScrollLock) SetLocked(locked bool) { s.locked = locked }

// Page bundles the page-global state with a scrollable body.
type Page struct {
	Doc    *Document
	Scroll *ScrollLock
	Keys   *Listeners
	body   viewport.Model
}

// New creates a page whose body viewport has the given size.
func New(width, height int) *Page {
	return &Page{
		Doc:    NewDocument(),
		Scroll: &ScrollLock{},
		Keys:   &Listeners{},
		body:   viewport.New(width, height),
	}
}

// SetSize resizes the body viewport.
func (p *Page) SetSize(width, height int) {
	p.body.Width = width
	p.body.Height = height
}

// SetContent replaces the body content, keeping the scroll offset.
func (p *Page) SetContent(s string) {
	p.body.SetContent(s)
}

// YOffset returns the body's vertical scroll offset.
func (p *Page) YOffset() int {
	return p.body.YOffset
}

// View renders the visible part of the body.
func (p *Page) View() string {
	return p.body.View()
}

// HandleKey routes a key press through window listeners, then sequential
// focus navigation, then body scrolling. Returns true if the key was
// consumed at page level.
func (p *Page) HandleKey(msg tea.KeyMsg) bool {
	if p.Keys.Dispatch(msg) {
		return true
	}
	switch msg.String() {
	case "tab":
		p.Doc.Next()
		return true
	case "shift+tab":
		p.Doc.Prev()
		return true
	case "pgup", "pgdown":
		if !p.Scroll.Locked() {
			p.body, _ = p.body.Update(msg)
		}
		return true
	}
	return false
}

// HandleMouse scrolls the body on wheel events unless scrolling is locked.
// Returns true if the event was a wheel event.
func (p *Page) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
		return false
	}
	if !p.Scroll.Locked() {
		p.body.MouseWheelEnabled = true
		p.body, _ = p.body.Update(msg)
	}
	return true
}
