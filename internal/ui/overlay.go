package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"uikit/internal/page"
	"uikit/internal/popover"
)

// overlayAt draws fg over base with its top-left cell at (x, y). base is
// treated as width columns wide; fg rows falling outside base are dropped.
func overlayAt(base, fg string, x, y, width int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(base, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, l := range fgLines {
		if n := ansi.StringWidth(l); n > fgW {
			fgW = n
		}
	}
	if fgW == 0 {
		return base
	}
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		if n := ansi.StringWidth(bg); n < x+fgW {
			bg += strings.Repeat(" ", x+fgW-n)
		}
		if n := ansi.StringWidth(line); n < fgW {
			line += strings.Repeat(" ", fgW-n)
		}
		right := ""
		if width > x+fgW {
			right = ansi.Cut(bg, x+fgW, width)
		}
		bgLines[row] = ansi.Cut(bg, 0, x) + line + right
	}
	return strings.Join(bgLines, "\n")
}

// centerRect returns where a block the size of fg lands when centered in a
// w by h area.
func centerRect(fg string, w, h int) page.Rect {
	fw, fh := lipgloss.Width(fg), lipgloss.Height(fg)
	return page.Rect{X: max(0, (w-fw)/2), Y: max(0, (h-fh)/2), W: fw, H: fh}
}

// scrim strips styling from s and renders it dimmed, leaving layout
// unchanged.
func scrim(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = Styles.Scrim.Render(l)
	}
	return strings.Join(lines, "\n")
}

// placeBubble returns the top-left cell for a w by h bubble attached to
// the trigger at r on side p. Results are clamped to non-negative cells.
func placeBubble(r page.Rect, w, h int, p popover.Placement) (x, y int) {
	switch p {
	case popover.Top:
		x, y = r.X+(r.W-w)/2, r.Y-h
	case popover.Right:
		x, y = r.X+r.W+1, r.Y+(r.H-h)/2
	case popover.Left:
		x, y = r.X-w-1, r.Y+(r.H-h)/2
	default:
		x, y = r.X+(r.W-w)/2, r.Y+r.H
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
