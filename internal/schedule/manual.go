package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. It never starts
// goroutines.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualEntry
}

type manualEntry struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &manualEntry{due: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, e)
	return manualHandle{m: m, e: e}
}

// Advance moves the clock forward by d and runs every callback that became
// due, in due-time order. Callbacks scheduled while advancing run too if
// they fall within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.due
		m.remove(e)
		e.fn()
	}
	m.now = target
}

// Flush runs callbacks that are already due, such as zero-delay ones.
func (m *Manual) Flush() {
	m.Advance(0)
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of armed callbacks.
func (m *Manual) Pending() int { return len(m.pending) }

func (m *Manual) nextDue(target time.Duration) *manualEntry {
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due != m.pending[j].due {
			return m.pending[i].due < m.pending[j].due
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if len(m.pending) == 0 || m.pending[0].due > target {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(e *manualEntry) {
	for i, p := range m.pending {
		if p == e {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

type manualHandle struct {
	m *Manual
	e *manualEntry
}

func (h manualHandle) Cancel() {
	if h.e.cancelled {
		return
	}
	h.e.cancelled = true
	h.m.remove(h.e)
}
