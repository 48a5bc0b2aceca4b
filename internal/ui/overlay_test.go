package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"uikit/internal/page"
	"uikit/internal/popover"
)

func TestOverlayAt_ReplacesCells(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := overlayAt(base, "ab\ncd", 3, 1, 10)
	assert.Equal(t, strings.Join([]string{
		"..........",
		"...ab.....",
		"...cd.....",
	}, "\n"), got)
}

func TestOverlayAt_PadsShortLinesAndDropsOverflow(t *testing.T) {
	got := overlayAt("..\n..", "xy\nzw\nqq", 4, 1, 6)
	assert.Equal(t, "..\n..  xy", got)
}

func TestOverlayAt_RaggedForeground(t *testing.T) {
	got := overlayAt("......\n......", "abc\nd", 1, 0, 6)
	assert.Equal(t, ".abc..\n.d  ..", got)
}

func TestCenterRect(t *testing.T) {
	r := centerRect("abcd\nefgh", 10, 6)
	assert.Equal(t, page.Rect{X: 3, Y: 2, W: 4, H: 2}, r)

	r = centerRect("abcdefghijkl", 10, 6)
	assert.Equal(t, 0, r.X, "wider than the screen clamps to the left edge")
}

func TestPlaceBubble(t *testing.T) {
	trigger := page.Rect{X: 10, Y: 5, W: 6, H: 1}

	tests := []struct {
		name  string
		p     popover.Placement
		wantX int
		wantY int
	}{
		{"bottom", popover.Bottom, 9, 6},
		{"top", popover.Top, 9, 4},
		{"right", popover.Right, 17, 5},
		{"left", popover.Left, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := placeBubble(trigger, 8, 1, tt.p)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestPlaceBubble_ClampsToScreen(t *testing.T) {
	x, y := placeBubble(page.Rect{X: 0, Y: 0, W: 2, H: 1}, 8, 1, popover.Top)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, _ = placeBubble(page.Rect{X: 2, Y: 3, W: 2, H: 1}, 8, 1, popover.Left)
	assert.Equal(t, 0, x)
}

func TestLayout_AtPrefersLaterPanels(t *testing.T) {
	var l Layout
	l.Add("under", page.Rect{X: 0, Y: 0, W: 10, H: 10})
	l.Add("over", page.Rect{X: 2, Y: 2, W: 2, H: 2})

	p, ok := l.At(3, 3)
	assert.True(t, ok)
	assert.Equal(t, "over", p.ID)

	p, _ = l.At(0, 0)
	assert.Equal(t, "under", p.ID)

	_, ok = l.At(20, 20)
	assert.False(t, ok)
}

func TestLayout_MergeShifts(t *testing.T) {
	var inner Layout
	inner.Add("btn", page.Rect{X: 1, Y: 1, W: 3, H: 1})

	var outer Layout
	outer.Merge(inner, 10, 4)

	p, ok := outer.Lookup("btn")
	assert.True(t, ok)
	assert.Equal(t, page.Rect{X: 11, Y: 5, W: 3, H: 1}, p.Bounds)
}

func TestCanvasRow_RecordsCells(t *testing.T) {
	var c canvas
	c.add("title")
	c.row("cap", 2, cell{id: "a", s: "AA"}, cell{s: "--"}, cell{id: "b", s: "BBB"})

	a, _ := c.layout.Lookup("a")
	assert.Equal(t, page.Rect{X: 5, Y: 1, W: 2, H: 1}, a.Bounds)
	b, _ := c.layout.Lookup("b")
	assert.Equal(t, page.Rect{X: 13, Y: 1, W: 3, H: 1}, b.Bounds)
	assert.Equal(t, "title\ncap  AA  --  BBB", c.String())
}
