// Package popover implements a tooltip-style bubble that appears after a
// delay when its trigger is hovered or focused and disappears immediately
// when the pointer leaves or focus moves away.
package popover

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"uikit/internal/a11y"
	"uikit/internal/schedule"
)

// DefaultDelay is how long the trigger must stay hovered or focused before
// the bubble shows.
const DefaultDelay = 200 * time.Millisecond

// ErrUnknownPlacement is returned by ParsePlacement for unrecognised values.
var ErrUnknownPlacement = errors.New("unknown placement")

// Placement is the side of the trigger the bubble is drawn on.
type Placement int

const (
	Bottom Placement = iota
	Top
	Right
	Left
)

func (p Placement) String() string {
	switch p {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParsePlacement parses top, right, bottom or left. Empty means Bottom.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom", "":
		return Bottom, nil
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Bottom, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// State is the visibility state of a Popover.
type State int

const (
	Hidden State = iota
	Pending
	Shown
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Pending:
		return "pending"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

// Handlers are the trigger's pointer and focus callbacks. Nil fields are
// skipped.
type Handlers struct {
	PointerEnter func()
	PointerLeave func()
	Focus        func()
	Blur         func()
}

// Popover is one tooltip instance.
type Popover struct {
	sched        schedule.Scheduler
	delay        time.Duration
	placement    Placement
	onOpenChange func(open bool)
	ids          a11y.Scope
	logger       zerolog.Logger

	state State
	timer schedule.Slot
}

// Option configures a Popover.
type Option func(*Popover)

// WithDelay sets the show delay. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(p *Popover) {
		if d < 0 {
			d = 0
		}
		p.delay = d
	}
}

// WithPlacement sets the side the bubble is drawn on.
func WithPlacement(pl Placement) Option {
	return func(p *Popover) { p.placement = pl }
}

// WithOnOpenChange sets the visibility callback.
func WithOnOpenChange(fn func(open bool)) Option {
	return func(p *Popover) { p.onOpenChange = fn }
}

// WithIDSuffix fixes the suffix used for the bubble id.
func WithIDSuffix(suffix string) Option {
	return func(p *Popover) { p.ids = a11y.NewScope(suffix) }
}

// WithLogger sets the logger for transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Popover) { p.logger = logger }
}

// New creates a hidden popover that schedules its delay on sched.
func New(sched schedule.Scheduler, opts ...Option) *Popover {
	p := &Popover{
		sched:     sched,
		delay:     DefaultDelay,
		placement: Bottom,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ids.Suffix() == "" {
		p.ids = a11y.NewScope("")
	}
	return p
}

// Show starts the delay. Any timer already pending is replaced, so repeated
// enters never stack. Showing an already shown bubble does nothing.
func (p *Popover) Show() {
	if p.state == Shown {
		return
	}
	p.state = Pending
	p.timer.Arm(p.sched, p.delay, p.elapse)
	p.logger.Debug().Str("tooltip", p.BubbleID()).Dur("delay", p.delay).Msg("tooltip pending")
}

// Hide cancels any pending show and hides the bubble immediately.
func (p *Popover) Hide() {
	p.timer.Cancel()
	prev := p.state
	p.state = Hidden
	if prev == Hidden {
		return
	}
	p.logger.Debug().Str("tooltip", p.BubbleID()).Str("from", prev.String()).Msg("tooltip hidden")
	p.notify(false)
}

// Unmount cancels any pending timer.
func (p *Popover) Unmount() {
	p.timer.Cancel()
	p.state = Hidden
}

func (p *Popover) elapse() {
	if p.state != Pending {
		return
	}
	p.state = Shown
	p.logger.Debug().Str("tooltip", p.BubbleID()).Msg("tooltip shown")
	p.notify(true)
}

func (p *Popover) notify(open bool) {
	if p.onOpenChange != nil {
		p.onOpenChange(open)
	}
}

// State returns the visibility state.
func (p *Popover) State() State {
	return p.state
}

// Open reports whether the bubble is shown.
func (p *Popover) Open() bool {
	return p.state == Shown
}

// TimerPending reports whether a show is scheduled.
func (p *Popover) TimerPending() bool {
	return p.timer.Pending()
}

// Placement returns the configured side.
func (p *Popover) Placement() Placement {
	return p.placement
}

// Delay returns the configured show delay.
func (p *Popover) Delay() time.Duration {
	return p.delay
}

// Wrap composes the popover's triggers with the caller's own handlers. The
// caller's handler runs first and is never replaced.
func (p *Popover) Wrap(h Handlers) Handlers {
	return Handlers{
		PointerEnter: chain(h.PointerEnter, p.Show),
		PointerLeave: chain(h.PointerLeave, p.Hide),
		Focus:        chain(h.Focus, p.Show),
		Blur:         chain(h.Blur, p.Hide),
	}
}

func chain(first, then func()) func() {
	if first == nil {
		return then
	}
	return func() {
		first()
		then()
	}
}

// BubbleID returns the element id of the bubble.
func (p *Popover) BubbleID() string {
	return p.ids.ID("tooltip")
}

// TriggerAttrs describes the trigger. It is described by the bubble only
// while the bubble is shown.
func (p *Popover) TriggerAttrs() a11y.Attrs {
	return a11y.Attrs{}.SetIf(p.Open(), a11y.AriaDescribedBy, p.BubbleID())
}

// BubbleAttrs describes the bubble.
func (p *Popover) BubbleAttrs() a11y.Attrs {
	open := p.Open()
	return a11y.Attrs{}.
		Set(a11y.ID, p.BubbleID()).
		Set(a11y.Role, a11y.RoleTooltip).
		SetBool(a11y.AriaHidden, !open).
		SetBool(a11y.DataOpen, open).
		Set(a11y.DataPlacement, p.placement.String())
}
