package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"uikit/internal/catalog"
	"uikit/internal/config"
	"uikit/internal/popover"
	"uikit/internal/schedule"
	"uikit/internal/tabs"
	"uikit/internal/telemetry"
)

func testConfig() config.Config {
	return config.Config{
		Tooltip:   config.TooltipConfig{Delay: 200 * time.Millisecond, Placement: "bottom"},
		Accordion: config.AccordionConfig{Mode: "single"},
		Dialog:    config.DialogConfig{Title: "Modal Title", CloseOnBackdrop: true},
		Tabs:      config.TabsConfig{Orientation: "horizontal"},
		Log:       config.LogConfig{Level: "info"},
	}
}

// newTestApp builds the default showcase on a manual clock, sized so the
// whole body fits on screen.
func newTestApp(t *testing.T, cfg config.Config, opts ...Option) (*App, *schedule.Manual) {
	t.Helper()
	sched := schedule.NewManual()
	a := NewApp(cfg, catalog.Default(), append([]Option{WithScheduler(sched)}, opts...)...)
	send(a, tea.WindowSizeMsg{Width: 120, Height: 60})
	return a, sched
}

// send feeds msgs through Update and returns the last command.
func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

// center returns a cell inside the element recorded for id.
func center(t *testing.T, a *App, id string) (int, int) {
	t.Helper()
	p, ok := a.layout.Lookup(id)
	require.True(t, ok, "no hit region for %s", id)
	return p.Bounds.X + p.Bounds.W/2, p.Bounds.Y + p.Bounds.H/2 - a.page.YOffset()
}

func TestApp_TabSkipsDisabledButtons(t *testing.T) {
	a, _ := newTestApp(t, testConfig())

	enabled := 0
	for _, b := range a.buttons {
		if !b.btn.Disabled {
			enabled++
		}
	}
	for i := 0; i < enabled; i++ {
		send(a, keyMsg("tab"))
		b, ok := a.buttonByID(a.Focused())
		require.True(t, ok)
		assert.False(t, b.btn.Disabled)
	}
	send(a, keyMsg("tab"))
	assert.Equal(t, a.openerID, a.Focused())
}

func TestApp_DialogTrapsFocusAndRestoresIt(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	a.page.Doc.Focus(a.openerID)

	send(a, keyMsg("enter"))
	require.True(t, a.DialogOpen())
	assert.True(t, a.page.Scroll.Locked())
	assert.Equal(t, a.openerID, a.Focused(), "focus moves on the next tick")

	sched.Flush()
	assert.Equal(t, a.dialog.ContentID(), a.Focused())

	send(a, keyMsg("tab"))
	assert.Equal(t, a.body.InputID, a.Focused(), "tab continues after the content region")
	send(a, keyMsg("tab"))
	assert.Equal(t, a.body.DismissID, a.Focused())
	send(a, keyMsg("tab"))
	assert.Equal(t, a.body.CloseID, a.Focused(), "focus wraps inside the dialog")
	send(a, keyMsg("shift+tab"))
	assert.Equal(t, a.body.DismissID, a.Focused())

	send(a, keyMsg("esc"))
	assert.False(t, a.DialogOpen())
	assert.False(t, a.page.Scroll.Locked())
	assert.Equal(t, 0, a.page.Keys.Len())
	assert.Equal(t, a.openerID, a.Focused())
	assert.False(t, a.page.Doc.Contains(a.body.CloseID))
}

func TestApp_DialogInputReceivesTyping(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	sched.Flush()

	a.page.Doc.Focus(a.body.InputID)
	send(a, keyMsg("q"), keyMsg("g"))
	assert.Equal(t, "qg", a.body.Value())
	assert.True(t, a.DialogOpen(), "global bindings are off while the dialog is open")
}

func TestApp_DismissButtonCloses(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	sched.Flush()

	a.page.Doc.Focus(a.body.DismissID)
	send(a, keyMsg(" "))
	assert.False(t, a.DialogOpen())
	assert.Equal(t, a.openerID, a.Focused())
}

func TestApp_BackdropClick(t *testing.T) {
	t.Run("closes by default", func(t *testing.T) {
		a, _ := newTestApp(t, testConfig())
		x, y := center(t, a, a.openerID)
		send(a, press(x, y))
		require.True(t, a.DialogOpen())

		send(a, press(a.surface.X+1, a.surface.Y+1))
		assert.True(t, a.DialogOpen(), "presses on the surface are not backdrop presses")

		send(a, press(0, 0))
		assert.False(t, a.DialogOpen())
	})

	t.Run("ignored when disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Dialog.CloseOnBackdrop = false
		a, _ := newTestApp(t, cfg)
		a.page.Doc.Focus(a.openerID)
		send(a, keyMsg("enter"))

		send(a, press(0, 0))
		assert.True(t, a.DialogOpen())
	})
}

func TestApp_DialogCloseButtonClick(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	sched.Flush()

	p, ok := a.overlay.Lookup(a.body.CloseID)
	require.True(t, ok)
	send(a, press(p.Bounds.X, p.Bounds.Y))
	assert.False(t, a.DialogOpen())
}

func TestApp_ScrollLockedWhileDialogOpen(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	send(a, tea.WindowSizeMsg{Width: 120, Height: 12})

	send(a, keyMsg("pgdown"))
	offset := a.page.YOffset()
	require.Positive(t, offset)

	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	require.True(t, a.DialogOpen())
	send(a, keyMsg("pgdown"), tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, offset, a.page.YOffset())
}

func TestApp_TooltipHoverAfterDelay(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	tip := a.tips[0]
	x, y := center(t, a, tip.id)

	send(a, motion(x, y))
	assert.Equal(t, popover.Pending, tip.pop.State())

	sched.Advance(199 * time.Millisecond)
	assert.False(t, tip.pop.Open())
	sched.Advance(time.Millisecond)
	require.True(t, tip.pop.Open())
	send(a, tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Contains(t, a.View(), tip.content)

	send(a, motion(0, 0))
	assert.Equal(t, popover.Hidden, tip.pop.State())
	assert.NotContains(t, a.View(), tip.content)
}

func TestApp_TooltipRepeatedEnterDoesNotStack(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	x, y := center(t, a, a.tips[0].id)

	send(a, motion(x, y), motion(0, 0), motion(x, y))
	assert.Equal(t, 1, sched.Pending())
}

func TestApp_TooltipCustomDelay(t *testing.T) {
	a, sched := newTestApp(t, testConfig())
	tip := a.tips[3]
	require.Equal(t, 600*time.Millisecond, tip.pop.Delay())

	a.page.Doc.Focus(tip.id)
	sched.Advance(599 * time.Millisecond)
	assert.False(t, tip.pop.Open())
	sched.Advance(time.Millisecond)
	assert.True(t, tip.pop.Open())

	send(a, keyMsg("tab"))
	assert.False(t, tip.pop.Open(), "blur hides immediately")
}

func TestApp_TabsArrowThenSelect(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	guide := a.tabs.TabID("guide")
	examples := a.tabs.TabID("examples")

	send(a, FocusSectionMsg{Section: SectionTabs})
	require.Equal(t, guide, a.Focused())

	send(a, keyMsg("right"))
	assert.Equal(t, examples, a.Focused())
	assert.Equal(t, "guide", a.tabs.Value(), "arrows move focus without selecting")

	send(a, keyMsg("enter"))
	assert.Equal(t, "examples", a.tabs.Value())
	ti, _ := a.page.Doc.TabIndex(examples)
	assert.Equal(t, 0, ti)
	ti, _ = a.page.Doc.TabIndex(guide)
	assert.Equal(t, -1, ti)
	assert.Contains(t, a.tabs.PanelView(), "Only the selected panel is built")
}

func TestApp_TabsWrapAtEnds(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	send(a, FocusSectionMsg{Section: SectionTabs})

	send(a, keyMsg("left"))
	assert.Equal(t, a.tabs.TabID("notes"), a.Focused())
	send(a, keyMsg("right"))
	assert.Equal(t, a.tabs.TabID("guide"), a.Focused())
}

func TestApp_TabClickSelects(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	x, y := center(t, a, a.tabs.TabID("notes"))

	send(a, press(x, y))
	assert.Equal(t, "notes", a.tabs.Value())
	assert.Equal(t, a.tabs.TabID("notes"), a.Focused())
}

func TestApp_ToggleOrientationKeepsSelection(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	send(a, FocusSectionMsg{Section: SectionTabs}, keyMsg("right"), keyMsg("enter"))
	require.Equal(t, "examples", a.tabs.Value())

	send(a, ToggleOrientationMsg{})
	assert.Equal(t, tabs.Vertical, a.tabs.Orientation())
	assert.Equal(t, "examples", a.tabs.Value())

	send(a, keyMsg("down"))
	assert.Equal(t, a.tabs.TabID("notes"), a.Focused())
	send(a, keyMsg("right"))
	assert.Equal(t, a.tabs.TabID("notes"), a.Focused(), "horizontal keys do nothing on a vertical strip")

	x, y := center(t, a, a.tabs.TabID("guide"))
	send(a, press(x, y))
	assert.Equal(t, "guide", a.tabs.Value())
}

func TestApp_AccordionSingleThenMultiple(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	require.True(t, a.accordion.IsOpen("a1"))

	a.page.Doc.Focus(a.accordion.TriggerID("a2"))
	send(a, keyMsg("enter"))
	assert.Equal(t, []string{"a2"}, a.accordion.OpenIDs())

	send(a, ToggleAccordionModeMsg{})
	a.page.Doc.Focus(a.accordion.TriggerID("a3"))
	send(a, keyMsg(" "))
	assert.Equal(t, []string{"a2", "a3"}, a.accordion.OpenIDs())
}

func TestApp_AccordionHeaderClick(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	x, y := center(t, a, a.accordion.TriggerID("a1"))

	send(a, press(x, y))
	assert.False(t, a.accordion.IsOpen("a1"))
	assert.Empty(t, a.accordion.OpenIDs())
}

func TestApp_LeaderJumpsToSection(t *testing.T) {
	a, _ := newTestApp(t, testConfig())

	send(a, keyMsg("g"))
	assert.Contains(t, a.footerView, "Tabs")
	assert.NotContains(t, a.footerView, "Orientation", "tab-only bindings are hidden elsewhere")
	cmd := send(a, keyMsg("t"))
	require.NotNil(t, cmd)
	send(a, cmd())
	assert.Equal(t, a.tabs.TabID("guide"), a.Focused())
}

func TestApp_PressButtonReportsStatus(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	b := a.buttons[0]
	a.page.Doc.Focus(b.id)

	cmd := send(a, keyMsg("enter"))
	require.NotNil(t, cmd)
	send(a, cmd())
	assert.Equal(t, "Pressed "+b.btn.Label, a.Status())
}

func TestApp_DisabledButtonIgnoresClick(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	var disabled buttonEntry
	for _, b := range a.buttons {
		if b.btn.Disabled {
			disabled = b
			break
		}
	}
	require.NotEmpty(t, disabled.id)
	x, y := center(t, a, disabled.id)

	cmd := send(a, press(x, y))
	assert.Nil(t, cmd)
	assert.NotEqual(t, disabled.id, a.Focused())
}

func TestApp_RecordsInteractionSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	rec := telemetry.NewRecorder(tp)
	a, sched := newTestApp(t, testConfig(), WithRecorder(rec))

	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	sched.Flush()
	send(a, keyMsg("esc"))

	a.page.Doc.Focus(a.tips[0].id)
	sched.Advance(time.Second)
	send(a, keyMsg("tab"))

	names := map[string]int{}
	for _, s := range sr.Ended() {
		names[s.Name()]++
	}
	assert.Equal(t, 1, names[telemetry.SpanDialogSession])
	assert.Equal(t, 1, names[telemetry.SpanTooltipShown])
	assert.Equal(t, 0, rec.Open())
}

func TestApp_CloseReleasesDialog(t *testing.T) {
	rec := telemetry.NewRecorder(sdktrace.NewTracerProvider())
	a, sched := newTestApp(t, testConfig(), WithRecorder(rec))
	a.page.Doc.Focus(a.openerID)
	send(a, keyMsg("enter"))
	require.True(t, a.DialogOpen())
	require.Equal(t, 1, rec.Open())

	a.Close()
	assert.False(t, a.DialogOpen())
	assert.False(t, a.page.Scroll.Locked())
	assert.Equal(t, 0, a.page.Keys.Len())
	assert.Equal(t, 0, rec.Open(), "the dialog session span is ended")
	for _, id := range a.dialogIDs() {
		assert.False(t, a.page.Doc.Contains(id), "%s still registered", id)
	}
	sched.Flush()
	assert.Equal(t, a.openerID, a.Focused(), "the deferred focus move was cancelled")
}
