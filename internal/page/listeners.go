package page

import tea "github.com/charmbracelet/bubbletea"

// ListenerID identifies a registered key listener.
type ListenerID int

// KeyListener observes window-level key presses. Returning true marks the
// key as consumed.
type KeyListener func(tea.KeyMsg) bool

type listener struct {
	id ListenerID
	fn KeyListener
}

// Listeners is the window-level key listener registry.
type Listeners struct {
	next    ListenerID
	entries []listener
}

// Add registers fn and returns its id.
func (l *Listeners) Add(fn KeyListener) ListenerID {
	l.next++
	l.entries = append(l.entries, listener{id: l.next, fn: fn})
	return l.next
}

// Remove unregisters id. Returns false if it was not registered.
func (l *Listeners) Remove(id ListenerID) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	return len(l.entries)
}

// Dispatch calls every listener in registration order. A listener removed
// during dispatch is not called afterwards.
func (l *Listeners) Dispatch(msg tea.KeyMsg) bool {
	snapshot := append([]listener(nil), l.entries...)
	consumed := false
	for _, e := range snapshot {
		if !l.registered(e.id) {
			continue
		}
		if e.fn(msg) {
			consumed = true
		}
	}
	return consumed
}

func (l *Listeners) registered(id ListenerID) bool {
	for _, e := range l.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
