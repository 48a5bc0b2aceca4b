package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"uikit/internal/a11y"
	"uikit/internal/catalog"
	"uikit/internal/config"
	"uikit/internal/dialog"
	"uikit/internal/disclosure"
	"uikit/internal/page"
	"uikit/internal/popover"
	"uikit/internal/schedule"
	"uikit/internal/tabs"
	"uikit/internal/telemetry"
)

// App is the showcase root model. It owns the page, hosts one instance of
// each primitive, and routes keys and pointer events between them.
type App struct {
	cfg    config.Config
	cat    catalog.Catalog
	logger zerolog.Logger
	rec    *telemetry.Recorder
	sched  schedule.Scheduler
	loop   *schedule.Loop
	ids    a11y.Scope

	page     *page.Page
	keys     *KeyHandler
	help     help.Model
	fullHelp bool
	width    int
	height   int

	buttons    []buttonEntry
	openerID   string
	dialog     *dialog.Dialog
	dialogOpen bool
	body       *DialogBody
	accordion  *disclosure.Group
	accSuffix  string
	tips       []*tooltip
	tabs       *tabs.Set
	tabSuffix  string

	order       []string
	owners      map[string]Section
	layout      Layout
	overlay     Layout
	surface     page.Rect
	surfaceView string
	footerView  string
	hovered     string
	status      string
	pending     []tea.Cmd
}

type buttonEntry struct {
	id  string
	row string
	btn Button
}

// tooltip is one popover and the trigger it is attached to.
type tooltip struct {
	id       string
	content  string
	button   Button
	plain    bool
	pop      *popover.Popover
	handlers popover.Handlers
}

// Option configures an App.
type Option func(*App)

// WithScheduler sets the scheduler primitives arm their timers on.
func WithScheduler(s schedule.Scheduler) Option {
	return func(a *App) { a.sched = s }
}

// WithLoop uses l as the scheduler and routes its FireMsg values back to it.
func WithLoop(l *schedule.Loop) Option {
	return func(a *App) {
		a.loop = l
		a.sched = l
	}
}

// WithLogger sets the logger handed to every primitive.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithRecorder sets the interaction span recorder.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(a *App) { a.rec = r }
}

var activateKey = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "press"))

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// NewApp builds the showcase from cfg and cat. Elements are registered with
// the focus document in the order they are drawn.
func NewApp(cfg config.Config, cat catalog.Catalog, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		cat:    cat,
		logger: zerolog.Nop(),
		ids:    a11y.NewScope(""),
		width:  defaultWidth,
		height: defaultHeight,
		owners: make(map[string]Section),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sched == nil {
		a.loop = schedule.NewLoop(a.logger)
		a.sched = a.loop
	}
	a.page = page.New(a.width, a.height)
	a.page.Doc.OnChange = a.onFocusChange
	a.keys = NewKeyHandler(newKeybindRegistry())
	a.help = newHelpModel()

	a.buildButtons()
	a.buildDialog()
	a.buildAccordion()
	a.buildTooltips()
	a.buildTabs()

	a.refresh()
	return a
}

func (a *App) register(id string, tabIndex int, s Section) {
	a.page.Doc.Register(id, tabIndex)
	a.owners[id] = s
	a.order = append(a.order, id)
}

func (a *App) buildButtons() {
	for i, b := range a.cat.Buttons {
		v, err := ParseVariant(b.Variant)
		if err != nil {
			a.logger.Warn().Err(err).Int("button", i).Msg("using primary variant")
		}
		sz, err := ParseSize(b.Size)
		if err != nil {
			a.logger.Warn().Err(err).Int("button", i).Msg("using medium size")
		}
		e := buttonEntry{
			id:  a.ids.ID("btn", strconv.Itoa(i)),
			row: b.Row,
			btn: Button{Label: b.Label, Variant: v, Size: sz, Disabled: b.Disabled},
		}
		a.buttons = append(a.buttons, e)
		a.register(e.id, 0, SectionButtons)
		if b.Disabled {
			a.page.Doc.SetDisabled(e.id, true)
		}
	}
}

func (a *App) buildDialog() {
	a.openerID = a.ids.ID("open-dialog")
	a.register(a.openerID, 0, SectionDialog)

	title := a.cat.Dialog.Title
	if title == "" {
		title = a.cfg.Dialog.Title
	}
	inputID := a.ids.ID("dialog-input")
	dismissID := a.ids.ID("dialog-dismiss")
	a.dialog = dialog.New(dialog.PageEnv(a.page, a.sched),
		dialog.WithTitle(title),
		dialog.WithCloseOnBackdrop(a.cfg.Dialog.CloseOnBackdrop),
		dialog.WithOnClose(func() { a.setDialogOpen(false) }),
		dialog.WithFocusScope(inputID, dismissID),
		dialog.WithLogger(a.logger),
	)
	a.body = NewDialogBody(title, a.cat.Dialog, a.dialog.CloseButtonID(), inputID, dismissID)
}

func (a *App) buildAccordion() {
	mode := a.cfg.Mode()
	if a.cat.Accordion.Mode != "" {
		if m, err := disclosure.ParseMode(a.cat.Accordion.Mode); err == nil {
			mode = m
		}
	}
	a.accSuffix = a11y.NewScope("").Suffix()
	a.accordion = a.newAccordion(mode, a.cat.Accordion.DefaultOpen)
	for _, it := range a.accordion.Items() {
		a.register(a.accordion.TriggerID(it.ID), 0, SectionAccordion)
	}
}

func (a *App) newAccordion(mode disclosure.Mode, open []string) *disclosure.Group {
	return disclosure.New(a.cat.Accordion.PanelItems(), mode, open,
		disclosure.WithIDSuffix(a.accSuffix),
		disclosure.WithLogger(a.logger),
	)
}

func (a *App) buildTooltips() {
	for i, t := range a.cat.Tooltips {
		placement := a.cfg.Placement()
		if t.Placement != "" {
			if p, err := popover.ParsePlacement(t.Placement); err == nil {
				placement = p
			}
		}
		delay := a.cfg.Tooltip.Delay
		if t.Delay.Duration > 0 {
			delay = t.Delay.Duration
		}
		v, err := ParseVariant(t.Variant)
		if err != nil {
			a.logger.Warn().Err(err).Int("tooltip", i).Msg("using primary variant")
		}
		tip := &tooltip{
			id:      a.ids.ID("tip", strconv.Itoa(i)),
			content: t.Content,
			button:  Button{Label: t.Label, Variant: v, Size: Small},
			plain:   t.Variant == "",
		}
		tip.pop = popover.New(a.sched,
			popover.WithDelay(delay),
			popover.WithPlacement(placement),
			popover.WithOnOpenChange(func(open bool) { a.onTooltipChange(tip, open) }),
			popover.WithLogger(a.logger),
		)
		tip.handlers = tip.pop.Wrap(popover.Handlers{
			PointerEnter: func() { a.logger.Debug().Str("trigger", tip.id).Msg("pointer enter") },
			PointerLeave: func() { a.logger.Debug().Str("trigger", tip.id).Msg("pointer leave") },
		})
		a.tips = append(a.tips, tip)
		a.register(tip.id, 0, SectionTooltips)
	}
}

func (a *App) buildTabs() {
	a.tabSuffix = a11y.NewScope("").Suffix()
	a.tabs = a.newTabs(a.cfg.Orientation(), a.cat.Tabs.Value)
	for i, it := range a.tabs.Items() {
		a.register(a.tabs.TabID(it.Value), a.tabs.TabIndex(i), SectionTabs)
	}
}

func (a *App) newTabs(o tabs.Orientation, value string) *tabs.Set {
	items := make([]tabs.Item, 0, len(a.cat.Tabs.Items))
	for _, it := range a.cat.Tabs.Items {
		items = append(items, tabs.Item{Value: it.Value, Label: it.Label, Content: newTextPanel(it.Content)})
	}
	return tabs.New(items, value,
		tabs.WithOrientation(o),
		tabs.WithOnValueChange(a.onTabChange),
		tabs.WithIDSuffix(a.tabSuffix),
		tabs.WithLogger(a.logger),
	)
}

// syncTabIndex re-derives the roving tab index after the selection moves.
func (a *App) syncTabIndex() {
	for i, it := range a.tabs.Items() {
		a.page.Doc.SetTabIndex(a.tabs.TabID(it.Value), a.tabs.TabIndex(i))
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.tabs.Init(), a.body.Init())
}

// Focused returns the id of the element holding focus.
func (a *App) Focused() string {
	return a.page.Doc.Active()
}

// DialogOpen reports the host's open flag for the dialog.
func (a *App) DialogOpen() bool {
	return a.dialogOpen
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

// Close releases everything the primitives hold: the dialog's page state,
// pending tooltip timers and the tab panel.
func (a *App) Close() {
	a.setDialogOpen(false)
	a.dialog.Unmount()
	for _, t := range a.tips {
		t.pop.Unmount()
	}
	a.tabs.Unmount()
	if a.loop != nil {
		a.loop.Stop()
	}
}

func (a *App) pend(cmd tea.Cmd) {
	if cmd != nil {
		a.pending = append(a.pending, cmd)
	}
}

// section returns the section owning the focused element.
func (a *App) section() Section {
	if a.dialogOpen {
		return SectionDialog
	}
	if s, ok := a.owners[a.page.Doc.Active()]; ok {
		return s
	}
	return SectionButtons
}

func (a *App) tipByID(id string) *tooltip {
	if id == "" {
		return nil
	}
	for _, t := range a.tips {
		if t.id == id {
			return t
		}
	}
	return nil
}

// tabIndexOf returns the position of the tab whose trigger is id, or -1.
func (a *App) tabIndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range a.tabs.Items() {
		if a.tabs.TabID(it.Value) == id {
			return i
		}
	}
	return -1
}

// panelOf returns the accordion item whose trigger is id.
func (a *App) panelOf(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, it := range a.accordion.Items() {
		if a.accordion.TriggerID(it.ID) == id {
			return it.ID, true
		}
	}
	return "", false
}

func (a *App) buttonByID(id string) (buttonEntry, bool) {
	for _, b := range a.buttons {
		if b.id == id {
			return b, true
		}
	}
	return buttonEntry{}, false
}

// dialogIDs are the elements that exist only while the dialog is open.
func (a *App) dialogIDs() []string {
	return []string{a.body.CloseID, a.dialog.ContentID(), a.body.InputID, a.body.DismissID}
}

// setDialogOpen is the host's open flag. The dialog's elements are mounted
// before the flag is synced and unmounted after.
func (a *App) setDialogOpen(open bool) {
	if open == a.dialogOpen {
		return
	}
	a.dialogOpen = open
	if open {
		a.setHovered("")
		a.body.Reset()
		for _, id := range a.dialogIDs() {
			tabIndex := 0
			if id == a.dialog.ContentID() {
				tabIndex = -1
			}
			a.page.Doc.Register(id, tabIndex)
		}
		a.dialog.Sync(true)
		a.rec.Begin(a.dialog.SurfaceID(), telemetry.SpanDialogSession, map[string]string{
			"title":             a.dialog.Title(),
			"close_on_backdrop": strconv.FormatBool(a.dialog.CloseOnBackdrop()),
		})
		a.status = "Dialog open"
		return
	}
	a.dialog.Sync(false)
	for _, id := range a.dialogIDs() {
		a.page.Doc.Remove(id)
	}
	a.pend(a.body.SetFocus(""))
	a.rec.End(a.dialog.SurfaceID(), map[string]string{
		"input_length": strconv.Itoa(len(a.body.Value())),
	})
	a.status = "Dialog closed"
}

// onFocusChange drives focus-dependent behavior: tooltip focus triggers,
// the dialog input cursor and the tab cursor.
func (a *App) onFocusChange(from, to string) {
	if t := a.tipByID(from); t != nil {
		t.handlers.Blur()
	}
	if t := a.tipByID(to); t != nil {
		t.handlers.Focus()
	}
	if a.dialogOpen {
		a.pend(a.body.SetFocus(to))
	}
	if i := a.tabIndexOf(to); i >= 0 && i != a.tabs.Focused() {
		a.tabs.MoveFocus(i - a.tabs.Focused())
	}
}

// setHovered moves the pointer to id, firing tooltip enter and leave.
func (a *App) setHovered(id string) {
	if id == a.hovered {
		return
	}
	if t := a.tipByID(a.hovered); t != nil {
		t.handlers.PointerLeave()
	}
	a.hovered = id
	if t := a.tipByID(id); t != nil {
		t.handlers.PointerEnter()
	}
}

func (a *App) onTooltipChange(t *tooltip, open bool) {
	if open {
		a.rec.Begin(t.pop.BubbleID(), telemetry.SpanTooltipShown, map[string]string{
			"trigger":   t.id,
			"placement": t.pop.Placement().String(),
			"delay":     t.pop.Delay().String(),
		})
		return
	}
	a.rec.End(t.pop.BubbleID(), nil)
}

func (a *App) onTabChange(value string) {
	from := a.tabs.Value()
	a.pend(a.tabs.SetValue(value))
	a.syncTabIndex()
	if from != value {
		a.rec.Event(a.tabs.TabID(value), telemetry.SpanTabChange, map[string]string{
			"from": from,
			"to":   value,
		})
	}
}

func (a *App) togglePanel(itemID string) {
	a.accordion.Toggle(itemID)
	a.recordToggle(itemID)
}

func (a *App) recordToggle(itemID string) {
	a.rec.Event(a.accordion.TriggerID(itemID), telemetry.SpanPanelToggle, map[string]string{
		"panel": itemID,
		"open":  strconv.FormatBool(a.accordion.IsOpen(itemID)),
		"mode":  a.accordion.Mode().String(),
	})
}

// focusSection focuses the first tabbable element of s.
func (a *App) focusSection(s Section) {
	for _, id := range a.order {
		if a.owners[id] != s {
			continue
		}
		if ti, ok := a.page.Doc.TabIndex(id); !ok || ti < 0 {
			continue
		}
		if a.page.Doc.Focus(id) {
			return
		}
	}
}

func (a *App) toggleAccordionMode() {
	mode := disclosure.Multiple
	if a.accordion.Mode() == disclosure.Multiple {
		mode = disclosure.Single
	}
	a.accordion = a.newAccordion(mode, a.accordion.OpenIDs())
	a.status = "Accordion: " + mode.String()
}

func (a *App) toggleOrientation() {
	o := tabs.Vertical
	if a.tabs.Orientation() == tabs.Vertical {
		o = tabs.Horizontal
	}
	value := a.tabs.Value()
	a.tabs.Unmount()
	a.tabs = a.newTabs(o, value)
	a.pend(a.tabs.Init())
	a.syncTabIndex()
	if i := a.tabIndexOf(a.page.Doc.Active()); i >= 0 {
		a.tabs.MoveFocus(i - a.tabs.Focused())
	}
	a.status = "Tabs: " + o.String()
}

