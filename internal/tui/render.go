package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"matrixview/internal/matrix"
)

const (
	sidebarWidth = 28
	panelWidth   = 32
	headerHeight = 1
	footerHeight = 2
	maxCellWidth = 16
)

// layout holds screen geometry; View and mouse handling must agree on it.
type layout struct {
	contentW, contentH int
	sidebarW           int
	gridX, gridY       int
	gridW, gridH       int
	panelW             int
}

func (m Model) layout() layout {
	var l layout
	l.contentH = m.height - headerHeight - footerHeight
	if l.contentH < 4 {
		l.contentH = 4
	}
	l.contentW = max(10, m.width)
	if m.showSidebar {
		l.sidebarW = sidebarWidth
	}
	if !m.showRecords && !m.pasteMode && (m.showTooltip || m.showMinimap) {
		l.panelW = panelWidth
	}
	l.gridX = l.sidebarW
	if m.showSidebar {
		l.gridX++
	}
	l.gridY = headerHeight
	l.gridW = max(10, l.contentW-l.gridX-l.panelW)
	l.gridH = l.contentH
	return l
}

// minCellWidth converts the configured font size into a character width.
func (m Model) minCellWidth() int {
	return min(maxCellWidth, max(3, m.cfg.Table.CellFontSize/3))
}

// fitCellWidth sizes cells to the widest text of the grid.
func (m *Model) fitCellWidth() {
	w := m.minCellWidth()
	if m.snap != nil {
		for _, col := range m.snap.Grid.Cells {
			for _, c := range col {
				w = max(w, lipgloss.Width(c.Text()))
			}
		}
	}
	m.cellW = min(maxCellWidth, w)
}

// visibleRows is how many data rows fit after the label row.
func (m Model) visibleRows(l layout) int {
	return max(1, l.gridH-1)
}

// visibleCols is how many data columns fit after the label column.
func (m Model) visibleCols(l layout) int {
	stride := m.cellW + 1
	return max(1, l.gridW/stride-1)
}

// visibleAxis returns the pinned label index 0 followed by the scrolled window.
func visibleAxis(offset, count, limit int) []int {
	out := []int{0}
	for i := offset + 1; i <= limit && len(out) <= count; i++ {
		out = append(out, i)
	}
	return out
}

// ensureCursorVisible scrolls so the cursor is inside the window.
func (m *Model) ensureCursorVisible() {
	l := m.layout()
	rows, cols := m.visibleRows(l), m.visibleCols(l)
	if m.cursorX <= m.offsetX {
		m.offsetX = m.cursorX - 1
	}
	if m.cursorX > m.offsetX+rows {
		m.offsetX = m.cursorX - rows
	}
	if m.cursorY <= m.offsetY {
		m.offsetY = m.cursorY - 1
	}
	if m.cursorY > m.offsetY+cols {
		m.offsetY = m.cursorY - cols
	}
	m.offsetX = max(0, m.offsetX)
	m.offsetY = max(0, m.offsetY)
}

// moveCursor shifts the cursor inside the data region [1,maxX]×[1,maxY].
func (m *Model) moveCursor(dx, dy int) {
	if m.snap == nil {
		return
	}
	g := m.snap.Grid
	m.cursorX = min(max(1, m.cursorX+dx), max(1, g.MaxX))
	m.cursorY = min(max(1, m.cursorY+dy), max(1, g.MaxY))
	m.ensureCursorVisible()
}

// screenToCell maps a terminal position onto a grid position.
func (m Model) screenToCell(sx, sy int) (x, y int, ok bool) {
	if m.snap == nil {
		return 0, 0, false
	}
	l := m.layout()
	if sx < l.gridX || sx >= l.gridX+l.gridW || sy < l.gridY || sy >= l.gridY+l.gridH {
		return 0, 0, false
	}
	g := m.snap.Grid
	xs := visibleAxis(m.offsetX, m.visibleRows(l), g.MaxX)
	ys := visibleAxis(m.offsetY, m.visibleCols(l), g.MaxY)
	r := sy - l.gridY
	c := (sx - l.gridX) / (m.cellW + 1)
	if r >= len(xs) || c >= len(ys) {
		return 0, 0, false
	}
	return xs[r], ys[c], true
}

func (m Model) renderGrid(l layout) string {
	if m.snap == nil {
		msg := dimStyle.Render("no dataset loaded  (Tab to browse, p to paste)")
		return lipgloss.Place(l.gridW, l.gridH, lipgloss.Center, lipgloss.Center, msg)
	}
	g := m.snap.Grid
	xs := visibleAxis(m.offsetX, m.visibleRows(l), g.MaxX)
	ys := visibleAxis(m.offsetY, m.visibleCols(l), g.MaxY)
	lines := make([]string, 0, len(xs))
	for _, x := range xs {
		parts := make([]string, 0, len(ys))
		for _, y := range ys {
			c := g.Cells[x][y]
			parts = append(parts, m.cellStyle(c).Render(truncate(c.Text(), m.cellW)))
		}
		lines = append(lines, strings.Join(parts, m.styles.sep))
	}
	return lipgloss.NewStyle().Width(l.gridW).Height(l.gridH).MaxWidth(l.gridW).Render(strings.Join(lines, "\n"))
}

// focusCell is the cell the tooltip describes: hover wins over the cursor.
func (m Model) focusCell() (matrix.Cell, bool) {
	if m.snap == nil {
		return matrix.Cell{}, false
	}
	if m.hovering {
		if c, ok := m.snap.Grid.At(m.hoverX, m.hoverY); ok {
			return c, true
		}
	}
	return m.snap.Grid.At(m.cursorX, m.cursorY)
}

func (m Model) renderTooltip() string {
	c, ok := m.focusCell()
	if !ok {
		return ""
	}
	items := matrix.Tooltip(c)
	if len(items) == 0 {
		return boxStyle.Width(panelWidth - 2).Render(dimStyle.Render(fmt.Sprintf("Cell: %d, %d\nempty", c.X, c.Y)))
	}
	var b strings.Builder
	for i, it := range items {
		if it.Header != "" {
			b.WriteString(titleStyle.Render(it.Header))
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render(it.DisplayName + ": "))
		b.WriteString(it.Value)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	if c.Color != "" {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■ " + c.Color)
		b.WriteString("\n" + swatch)
	}
	if m.selected[c.Identity] {
		b.WriteString("\n" + titleStyle.Render("selected"))
	}
	return boxStyle.Width(panelWidth - 2).Render(b.String())
}

// renderMinimap plots occupied data cells and the current window as braille dots.
func (m Model) renderMinimap(l layout) string {
	if m.snap == nil {
		return ""
	}
	const w, h = panelWidth - 4, 6
	g := m.snap.Grid
	dots := newDotMap(w, h)
	// dot of a data coordinate; y runs across, x runs down
	px := func(y int) int { return scale(y-1, max(1, g.MaxY-1), dots.dotsWide()-1) }
	py := func(x int) int { return scale(x-1, max(1, g.MaxX-1), dots.dotsHigh()-1) }
	for x := 1; x <= g.MaxX; x++ {
		for y := 1; y <= g.MaxY; y++ {
			if g.Cells[x][y].Occupied {
				dots.mark(px(y), py(x))
			}
		}
	}
	x0, y0 := m.offsetX+1, m.offsetY+1
	x1 := min(g.MaxX, m.offsetX+m.visibleRows(l))
	y1 := min(g.MaxY, m.offsetY+m.visibleCols(l))
	if x0 <= x1 && y0 <= y1 && (x0 > 1 || y0 > 1 || x1 < g.MaxX || y1 < g.MaxY) {
		dots.frame(px(y0), py(x0), px(y1), py(x1))
	}
	occ, total := matrix.Occupancy(g)
	body := dots.String() + "\n" + dimStyle.Render(fmt.Sprintf("%d/%d occupied", occ, total))
	return boxStyle.Width(panelWidth - 2).Render(body)
}

func scale(v, span, size int) int {
	if span <= 0 {
		return 0
	}
	return v * size / span
}

func (m Model) renderPanel(l layout) string {
	var parts []string
	if m.showTooltip {
		if t := m.renderTooltip(); t != "" {
			parts = append(parts, t)
		}
	}
	if m.showMinimap {
		if mm := m.renderMinimap(l); mm != "" {
			parts = append(parts, mm)
		}
	}
	return lipgloss.NewStyle().Width(l.panelW).Height(l.gridH).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
