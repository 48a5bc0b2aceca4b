package ui

import "uikit/internal/page"

// Panel is a named, hit-testable region of rendered output.
type Panel struct {
	ID     string
	Bounds page.Rect
}

// Layout records where interactive elements landed while rendering.
// Later panels sit on top of earlier ones.
type Layout struct {
	Panels []Panel
}

// Add records id at r.
func (l *Layout) Add(id string, r page.Rect) {
	l.Panels = append(l.Panels, Panel{ID: id, Bounds: r})
}

// Merge appends other's panels shifted by (dx, dy).
func (l *Layout) Merge(other Layout, dx, dy int) {
	for _, p := range other.Panels {
		r := p.Bounds
		r.X += dx
		r.Y += dy
		l.Add(p.ID, r)
	}
}

// At returns the topmost panel containing (x, y).
func (l Layout) At(x, y int) (Panel, bool) {
	for i := len(l.Panels) - 1; i >= 0; i-- {
		if l.Panels[i].Bounds.Contains(x, y) {
			return l.Panels[i], true
		}
	}
	return Panel{}, false
}

// Lookup returns the panel recorded for id.
func (l Layout) Lookup(id string) (Panel, bool) {
	for _, p := range l.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}
