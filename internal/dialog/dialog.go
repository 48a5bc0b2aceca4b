// Package dialog implements a modal overlay whose visibility is driven
// entirely by the host's open flag.
//
// Every side effect is derived from the transition between the previous and
// current flag passed to Sync:
//
//	Closed -> Open:  capture focus, lock body scroll, listen for Escape,
//	                 trap sequential focus, move focus into the content on
//	                 the next tick.
//	Open -> Closed:  undo all of the above in reverse and restore focus to the
//	                 captured element when it can still take focus.
//
// Unmount behaves like Open -> Closed when the dialog is open.
package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"uikit/internal/a11y"
	"uikit/internal/page"
	"uikit/internal/schedule"
)

// FocusTarget is the page's focus document as seen by a dialog.
type FocusTarget interface {
	Active() string
	Focus(id string) bool
	CanFocus(id string) bool
}

// ScrollLocker is the body scroll flag.
type ScrollLocker interface {
	Locked() bool
	SetLocked(locked bool)
}

// KeyRegistry registers window-level key listeners.
type KeyRegistry interface {
	Add(fn page.KeyListener) page.ListenerID
	Remove(id page.ListenerID) bool
}

// FocusTrapper restricts sequential focus navigation to a scope.
type FocusTrapper interface {
	Trap(scope []string) (release func())
}

// Env is the set of page-global collaborators a dialog mutates.
// Trap may be nil.
type Env struct {
	Focus     FocusTarget
	Scroll    ScrollLocker
	Keys      KeyRegistry
	Trap      FocusTrapper
	Scheduler schedule.Scheduler
}

// PageEnv builds an Env from a page and scheduler.
func PageEnv(p *page.Page, sched schedule.Scheduler) Env {
	return Env{Focus: p.Doc, Scroll: p.Scroll, Keys: p.Keys, Trap: p.Doc, Scheduler: sched}
}

// KeyMap holds the dialog's dismissal key.
type KeyMap struct {
	Close key.Binding
}

// DefaultKeyMap closes on Escape.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Dialog is one modal instance.
type Dialog struct {
	env             Env
	title           string
	closeOnBackdrop bool
	onClose         func()
	scope           []string
	keys            KeyMap
	ids             a11y.Scope
	logger          zerolog.Logger

	open       bool
	restoreID  string
	prevLocked bool
	listener   page.ListenerID
	engaged    bool
	focusMove  schedule.Slot
	release    func()
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithTitle sets the heading; the surface is labelled by it.
func WithTitle(title string) Option {
	return func(d *Dialog) { d.title = title }
}

// WithCloseOnBackdrop controls backdrop dismissal. Enabled by default.
func WithCloseOnBackdrop(enabled bool) Option {
	return func(d *Dialog) { d.closeOnBackdrop = enabled }
}

// WithOnClose sets the close-request callback. The dialog never closes
// itself; the host is expected to clear its open flag in response.
func WithOnClose(fn func()) Option {
	return func(d *Dialog) { d.onClose = fn }
}

// WithFocusScope lists the element ids Tab may visit while the dialog is
// open, in order. The content region and close button are always included.
func WithFocusScope(ids ...string) Option {
	return func(d *Dialog) { d.scope = append(d.scope, ids...) }
}

// WithKeyMap overrides the dismissal key.
func WithKeyMap(km KeyMap) Option {
	return func(d *Dialog) { d.keys = km }
}

// WithIDSuffix fixes the suffix used for element ids.
func WithIDSuffix(suffix string) Option {
	return func(d *Dialog) { d.ids = a11y.NewScope(suffix) }
}

// WithLogger sets the logger for transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dialog) { d.logger = logger }
}

// New creates a closed dialog.
func New(env Env, opts ...Option) *Dialog {
	d := &Dialog{
		env:             env,
		closeOnBackdrop: true,
		keys:            DefaultKeyMap(),
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.ids.Suffix() == "" {
		d.ids = a11y.NewScope("")
	}
	return d
}

// Sync feeds the host's open flag. Calling it repeatedly with the same value
// is a no-op.
func (d *Dialog) Sync(open bool) {
	switch {
	case open && !d.open:
		d.open = true
		d.activate()
	case !open && d.open:
		d.open = false
		d.deactivate()
	}
}

// Open reports the last flag passed to Sync.
func (d *Dialog) Open() bool {
	return d.open
}

// Engaged reports whether the scroll lock and key listener are applied.
// They are only ever applied and removed together.
func (d *Dialog) Engaged() bool {
	return d.engaged
}

// FocusPending reports whether the deferred move into the content region
// has not happened yet.
func (d *Dialog) FocusPending() bool {
	return d.focusMove.Pending()
}

// Unmount releases everything an open dialog holds.
func (d *Dialog) Unmount() {
	d.Sync(false)
}

// RequestClose invokes the close callback, as the close button does.
func (d *Dialog) RequestClose() {
	if !d.open {
		return
	}
	d.logger.Debug().Str("dialog", d.SurfaceID()).Msg("close requested")
	if d.onClose != nil {
		d.onClose()
	}
}

// HandlePointer routes a pointer press at (x, y). Presses on the surface are
// consumed without reaching the backdrop; presses elsewhere are backdrop
// presses. Returns true when the dialog consumed the event, which it always
// does while open.
func (d *Dialog) HandlePointer(x, y int, surface page.Rect) bool {
	if !d.open {
		return false
	}
	if surface.Contains(x, y) {
		return true
	}
	d.HandleBackdrop()
	return true
}

// HandleBackdrop handles a press on the area outside the surface.
func (d *Dialog) HandleBackdrop() {
	if d.open && d.closeOnBackdrop {
		d.RequestClose()
	}
}

// CloseOnBackdrop reports whether backdrop presses request close.
func (d *Dialog) CloseOnBackdrop() bool {
	return d.closeOnBackdrop
}

// Title returns the heading text.
func (d *Dialog) Title() string {
	return d.title
}

// KeyMap returns the dismissal keys.
func (d *Dialog) KeyMap() KeyMap {
	return d.keys
}

func (d *Dialog) activate() {
	d.restoreID = d.env.Focus.Active()

	d.prevLocked = d.env.Scroll.Locked()
	d.env.Scroll.SetLocked(true)
	d.listener = d.env.Keys.Add(d.onKey)
	d.engaged = true

	if d.env.Trap != nil {
		d.release = d.env.Trap.Trap(d.FocusScope())
	}

	content := d.ContentID()
	d.focusMove.Arm(d.env.Scheduler, 0, func() {
		if d.open {
			d.env.Focus.Focus(content)
		}
	})
	d.logger.Debug().Str("dialog", d.SurfaceID()).Str("restore", d.restoreID).Msg("dialog opened")
}

func (d *Dialog) deactivate() {
	d.focusMove.Cancel()

	if d.engaged {
		d.env.Keys.Remove(d.listener)
		d.env.Scroll.SetLocked(d.prevLocked)
		d.engaged = false
	}
	if d.release != nil {
		d.release()
		d.release = nil
	}

	restore := d.restoreID
	d.restoreID = ""
	if restore != "" && d.env.Focus.CanFocus(restore) {
		d.env.Focus.Focus(restore)
	}
	d.logger.Debug().Str("dialog", d.SurfaceID()).Str("restore", restore).Msg("dialog closed")
}

func (d *Dialog) onKey(msg tea.KeyMsg) bool {
	if !key.Matches(msg, d.keys.Close) {
		return false
	}
	d.RequestClose()
	return true
}

// FocusScope returns the ids Tab cycles through while open.
func (d *Dialog) FocusScope() []string {
	scope := make([]string, 0, len(d.scope)+2)
	scope = append(scope, d.CloseButtonID(), d.ContentID())
	return append(scope, d.scope...)
}

// SurfaceID returns the element id of the dialog surface.
func (d *Dialog) SurfaceID() string { return d.ids.ID("modal") }

// TitleID returns the element id of the heading.
func (d *Dialog) TitleID() string { return d.ids.ID("modal-title") }

// ContentID returns the element id of the focusable content region.
func (d *Dialog) ContentID() string { return d.ids.ID("modal-content") }

// CloseButtonID returns the element id of the close button.
func (d *Dialog) CloseButtonID() string { return d.ids.ID("modal-close") }

// BackdropAttrs describes the dimmed backdrop.
func (d *Dialog) BackdropAttrs() a11y.Attrs {
	return a11y.Attrs{}.SetBool(a11y.AriaHidden, true)
}

// SurfaceAttrs describes the dialog surface.
func (d *Dialog) SurfaceAttrs() a11y.Attrs {
	return a11y.Attrs{}.
		Set(a11y.ID, d.SurfaceID()).
		Set(a11y.Role, a11y.RoleDialog).
		SetBool(a11y.AriaModal, true).
		SetIf(d.title != "", a11y.AriaLabelledBy, d.TitleID())
}

// TitleAttrs describes the heading.
func (d *Dialog) TitleAttrs() a11y.Attrs {
	return a11y.Attrs{}.Set(a11y.ID, d.TitleID())
}

// ContentAttrs describes the content region, focusable only
// programmatically.
func (d *Dialog) ContentAttrs() a11y.Attrs {
	return a11y.Attrs{}.
		Set(a11y.ID, d.ContentID()).
		SetInt(a11y.TabIndex, -1)
}

// CloseButtonAttrs describes the close button.
func (d *Dialog) CloseButtonAttrs() a11y.Attrs {
	return a11y.Attrs{}.
		Set(a11y.ID, d.CloseButtonID()).
		Set(a11y.AriaLabel, "Close dialog")
}
