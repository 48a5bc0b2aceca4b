package schedule

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// FireMsg is posted to the program when a Loop timer expires.
type FireMsg struct {
	ID uint64
}

type loopEntry struct {
	timer *time.Timer
	fn    func()
}

// Loop is the production Scheduler. Timers run on the runtime's timer
// goroutine but only post a FireMsg; the callback itself runs when the host
// passes that message to Fire from its Update.
type Loop struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]*loopEntry
	send    func(tea.Msg)
	logger  zerolog.Logger
}

// NewLoop creates a Loop. Messages are dropped until SetSender is called.
func NewLoop(logger zerolog.Logger) *Loop {
	return &Loop{
		pending: make(map[uint64]*loopEntry),
		logger:  logger,
	}
}

// SetSender installs the function used to post FireMsg, typically
// (*tea.Program).Send.
func (l *Loop) SetSender(send func(tea.Msg)) {
	l.mu.Lock()
	l.send = send
	l.mu.Unlock()
}

// After implements Scheduler.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	id := l.next
	entry := &loopEntry{fn: fn}
	entry.timer = time.AfterFunc(d, func() {
		l.mu.Lock()
		_, ok := l.pending[id]
		send := l.send
		l.mu.Unlock()
		if ok && send != nil {
			send(FireMsg{ID: id})
		}
	})
	l.pending[id] = entry
	l.logger.Debug().Uint64("id", id).Dur("delay", d).Msg("timer armed")
	return loopHandle{loop: l, id: id}
}

// Fire runs the callback for msg if it is still pending. It reports whether
// a callback ran; a timer cancelled after its FireMsg was posted does not run.
func (l *Loop) Fire(msg FireMsg) bool {
	l.mu.Lock()
	entry, ok := l.pending[msg.ID]
	if ok {
		delete(l.pending, msg.ID)
	}
	l.mu.Unlock()
	if !ok {
		l.logger.Debug().Uint64("id", msg.ID).Msg("stale timer ignored")
		return false
	}
	l.logger.Debug().Uint64("id", msg.ID).Msg("timer fired")
	entry.fn()
	return true
}

// Pending returns the number of armed timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Stop cancels every pending timer.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, entry := range l.pending {
		entry.timer.Stop()
		l.logger.Debug().Uint64("id", id).Msg("timer stopped (cleanup)")
	}
	l.pending = make(map[uint64]*loopEntry)
}

func (l *Loop) cancel(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok := l.pending[id]; ok {
		entry.timer.Stop()
		delete(l.pending, id)
		l.logger.Debug().Uint64("id", id).Msg("timer cancelled")
	}
}

type loopHandle struct {
	loop *Loop
	id   uint64
}

func (h loopHandle) Cancel() { h.loop.cancel(h.id) }
