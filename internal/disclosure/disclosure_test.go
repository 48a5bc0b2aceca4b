package disclosure

import (
	"errors"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uikit/internal/a11y"
)

func sampleItems() []PanelItem {
	return []PanelItem{
		{ID: "a1", Header: "01", Content: "first"},
		{ID: "a2", Header: "02", Content: "second"},
		{ID: "a3", Header: "03", Content: "third"},
	}
}

func TestGroup_SingleModeScenario(t *testing.T) {
	g := New(sampleItems(), Single, []string{"a1"})
	require.True(t, g.IsOpen("a1"))

	g.Toggle("a2")
	assert.False(t, g.IsOpen("a1"), "previously open panel closes silently")
	assert.True(t, g.IsOpen("a2"))

	g.Toggle("a2")
	assert.False(t, g.IsOpen("a2"))
	assert.Empty(t, g.OpenIDs())
}

func TestGroup_SingleModeNeverExceedsOne(t *testing.T) {
	ids := []string{"a1", "a2", "a3", "ghost"}
	r := rand.New(rand.NewSource(7))
	g := New(sampleItems(), Single, []string{"a1", "a2", "a3"})
	require.Len(t, g.OpenIDs(), 1, "defaults truncate to one")
	for i := 0; i < 500; i++ {
		g.Toggle(ids[r.Intn(len(ids))])
		require.LessOrEqual(t, len(g.OpenIDs()), 1)
	}
}

func TestGroup_MultipleModeRoundTrip(t *testing.T) {
	g := New(sampleItems(), Multiple, []string{"a1", "a3"})
	before := g.OpenIDs()

	g.Toggle("a2")
	assert.ElementsMatch(t, []string{"a1", "a2", "a3"}, g.OpenIDs())
	g.Toggle("a2")
	assert.Equal(t, before, g.OpenIDs())

	g.Toggle("a1")
	g.Toggle("a1")
	assert.ElementsMatch(t, before, g.OpenIDs())
}

func TestGroup_UnknownIDAccepted(t *testing.T) {
	g := New(sampleItems(), Multiple, nil)
	g.Toggle("not-an-item")
	assert.True(t, g.IsOpen("not-an-item"))
	g.Toggle("not-an-item")
	assert.False(t, g.IsOpen("not-an-item"))
}

func TestGroup_DuplicateDefaultsCollapse(t *testing.T) {
	g := New(sampleItems(), Multiple, []string{"a1", "a1"})
	assert.Equal(t, []string{"a1"}, g.OpenIDs())
	g.Toggle("a1")
	assert.False(t, g.IsOpen("a1"))
}

func TestGroup_Attrs(t *testing.T) {
	g := New(sampleItems(), Single, []string{"a1"}, WithIDSuffix("t1"))

	trig := g.TriggerAttrs("a1")
	assert.Equal(t, "acc-btn-a1-t1", trig[a11y.ID])
	assert.Equal(t, "true", trig[a11y.AriaExpanded])
	assert.Equal(t, "acc-panel-a1-t1", trig[a11y.AriaControls])

	panel := g.PanelAttrs("a1")
	assert.Equal(t, a11y.RoleRegion, panel[a11y.Role])
	assert.Equal(t, "acc-btn-a1-t1", panel[a11y.AriaLabelledBy])
	assert.False(t, panel.Has(a11y.Hidden))

	g.Toggle("a2")
	assert.Equal(t, "false", g.TriggerAttrs("a1")[a11y.AriaExpanded])
	assert.True(t, g.PanelAttrs("a1").Has(a11y.Hidden))
	assert.Equal(t, "true", g.TriggerAttrs("a2")[a11y.AriaExpanded])
}

func TestGroup_HandleKey(t *testing.T) {
	g := New(sampleItems(), Single, nil)
	assert.True(t, g.HandleKey("a2", tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, g.IsOpen("a2"))
	assert.True(t, g.HandleKey("a2", tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, g.IsOpen("a2"))
	assert.False(t, g.HandleKey("a2", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Multiple")
	require.NoError(t, err)
	assert.Equal(t, Multiple, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Single, m)

	_, err = ParseMode("some")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}
