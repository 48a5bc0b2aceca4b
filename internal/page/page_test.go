package page

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_NextPrevWrap(t *testing.T) {
	d := NewDocument()
	d.Register("a", 0)
	d.Register("b", 0)
	d.Register("c", 0)

	assert.Equal(t, "a", d.Next(), "nothing focused: Next starts at first")
	assert.Equal(t, "b", d.Next())
	assert.Equal(t, "c", d.Next())
	assert.Equal(t, "a", d.Next(), "wraps")
	assert.Equal(t, "c", d.Prev(), "wraps backwards")
}

func TestDocument_SkipsNegativeTabIndexAndDisabled(t *testing.T) {
	d := NewDocument()
	d.Register("a", 0)
	d.Register("content", -1)
	d.Register("b", 0)
	d.Register("c", 0)
	d.SetDisabled("b", true)

	assert.Equal(t, "a", d.Next())
	assert.Equal(t, "c", d.Next())
	assert.True(t, d.Focus("content"), "tabindex -1 still takes programmatic focus")
	assert.False(t, d.Focus("b"), "disabled element refuses focus")
	assert.Equal(t, "content", d.Active())
}

func TestDocument_StepResumesFromProgrammaticFocus(t *testing.T) {
	d := NewDocument()
	d.Register("first", 0)
	d.Register("tab-guide", 0)
	d.Register("tab-examples", -1)
	d.Register("after", 0)

	require.True(t, d.Focus("tab-examples"))
	assert.Equal(t, "after", d.Next(), "Tab continues after the focused element")

	require.True(t, d.Focus("tab-examples"))
	assert.Equal(t, "tab-guide", d.Prev(), "Shift+Tab continues before it")

	d.Register("tail", -1)
	require.True(t, d.Focus("tail"))
	assert.Equal(t, "first", d.Next(), "wraps past the end")
}

func TestDocument_TrapResumesFromContentRegion(t *testing.T) {
	d := NewDocument()
	for _, id := range []string{"close", "input", "dismiss"} {
		d.Register(id, 0)
	}
	d.Register("content", -1)
	d.Trap([]string{"close", "content", "input", "dismiss"})

	require.True(t, d.Focus("content"))
	assert.Equal(t, "input", d.Next())
	require.True(t, d.Focus("content"))
	assert.Equal(t, "close", d.Prev())
}

func TestDocument_OnChange(t *testing.T) {
	d := NewDocument()
	d.Register("a", 0)
	d.Register("b", 0)
	var changes []string
	d.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	d.Focus("a")
	d.Focus("a")
	d.Focus("b")
	d.Blur()
	assert.Equal(t, []string{">a", "a>b", "b>"}, changes)
}

func TestDocument_RemoveActiveClearsFocus(t *testing.T) {
	d := NewDocument()
	d.Register("a", 0)
	d.Focus("a")
	d.Remove("a")
	assert.Equal(t, "", d.Active())
	assert.False(t, d.Contains("a"))
	assert.False(t, d.Focus("a"), "stale id is ignored")
	d.Remove("a")
}

func TestDocument_TrapRestrictsAndRestores(t *testing.T) {
	d := NewDocument()
	for _, id := range []string{"page-1", "dlg-input", "dlg-close", "page-2"} {
		d.Register(id, 0)
	}
	release := d.Trap([]string{"dlg-input", "dlg-close"})
	assert.True(t, d.Trapped())
	assert.Equal(t, "dlg-input", d.Next())
	assert.Equal(t, "dlg-close", d.Next())
	assert.Equal(t, "dlg-input", d.Next())

	release()
	release()
	assert.False(t, d.Trapped())
	assert.Equal(t, "page-1", d.Prev(), "full document order is back")
}

func TestListeners_AddRemoveDispatch(t *testing.T) {
	var l Listeners
	var calls []string
	first := l.Add(func(msg tea.KeyMsg) bool { calls = append(calls, "first:"+msg.String()); return false })
	l.Add(func(msg tea.KeyMsg) bool { calls = append(calls, "second"); return msg.String() == "esc" })

	assert.True(t, l.Dispatch(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, l.Dispatch(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []string{"first:esc", "second", "first:enter", "second"}, calls)

	require.True(t, l.Remove(first))
	assert.False(t, l.Remove(first))
	assert.Equal(t, 1, l.Len())
}

func TestListeners_RemovedDuringDispatchIsSkipped(t *testing.T) {
	var l Listeners
	var second ListenerID
	called := false
	l.Add(func(tea.KeyMsg) bool { l.Remove(second); return false })
	second = l.Add(func(tea.KeyMsg) bool { called = true; return false })

	l.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, called)
}

func TestPage_ScrollLockFreezesBody(t *testing.T) {
	p := New(20, 5)
	p.SetContent(strings.Repeat("line\n", 50))

	p.Scroll.SetLocked(true)
	assert.True(t, p.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown}))
	assert.Zero(t, p.YOffset())
	assert.True(t, p.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}))
	assert.Zero(t, p.YOffset())

	p.Scroll.SetLocked(false)
	p.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Positive(t, p.YOffset())
}

func TestPage_ListenersRunBeforeNavigation(t *testing.T) {
	p := New(20, 5)
	p.Doc.Register("a", 0)
	p.Keys.Add(func(msg tea.KeyMsg) bool { return msg.String() == "tab" })

	assert.True(t, p.HandleKey(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, "", p.Doc.Active(), "listener consumed tab")
	assert.False(t, p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 2))
	assert.False(t, r.Contains(2, 3))
}
