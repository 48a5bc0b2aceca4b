package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/page"
)

// canvas stacks rendered blocks top to bottom and records where
// interactive cells land.
type canvas struct {
	lines  []string
	layout Layout
}

// cell is one rendered piece of a row. An empty id is not hit-testable.
type cell struct {
	id string
	s  string
}

func (c *canvas) add(block string) {
	c.lines = append(c.lines, strings.Split(block, "\n")...)
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

// y is the row the next block starts on.
func (c *canvas) y() int {
	return len(c.lines)
}

// row draws caption followed by cells separated by gap columns.
func (c *canvas) row(caption string, gap int, cells ...cell) {
	if gap < 1 {
		gap = 1
	}
	y := c.y()
	x := 0
	parts := make([]string, 0, 2*len(cells)+1)
	if caption != "" {
		parts = append(parts, caption)
		x += lipgloss.Width(caption)
	}
	for i, cl := range cells {
		if i > 0 || caption != "" {
			parts = append(parts, strings.Repeat(" ", gap))
			x += gap
		}
		w, h := lipgloss.Width(cl.s), lipgloss.Height(cl.s)
		if cl.id != "" {
			c.layout.Add(cl.id, page.Rect{X: x, Y: y, W: w, H: h})
		}
		parts = append(parts, cl.s)
		x += w
	}
	c.add(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// column draws cells one per line starting at column x.
func (c *canvas) column(x int, cells ...cell) {
	for _, cl := range cells {
		y := c.y()
		if cl.id != "" {
			c.layout.Add(cl.id, page.Rect{X: x, Y: y, W: lipgloss.Width(cl.s), H: lipgloss.Height(cl.s)})
		}
		c.add(strings.Repeat(" ", x) + cl.s)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// textPanel is a tab panel showing fixed text.
type textPanel struct {
	text string
}

func newTextPanel(text string) func() tea.Model {
	return func() tea.Model { return textPanel{text: text} }
}

func (p textPanel) Init() tea.Cmd                       { return nil }
func (p textPanel) Update(tea.Msg) (tea.Model, tea.Cmd) { return p, nil }
func (p textPanel) View() string                        { return p.text }
