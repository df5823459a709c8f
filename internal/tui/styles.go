package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"matrixview/internal/matrix"
	"matrixview/internal/palette"
	"matrixview/internal/settings"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	hoverBg   = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// gridStyles are derived from the table settings once per model.
type gridStyles struct {
	sep      string
	data     lipgloss.Style
	rowLabel lipgloss.Style
	colLabel lipgloss.Style
}

func newGridStyles(t settings.Table, pal palette.Palette) gridStyles {
	var sep string
	switch {
	case t.Thickness <= 0:
		sep = " "
	case t.Thickness == 1:
		sep = "│"
	default:
		sep = "┃"
	}
	data := lipgloss.NewStyle()
	if hex, ok := pal.Resolve(t.Color); ok {
		data = data.Background(lipgloss.Color(hex)).Foreground(contrastFg(hex))
	}
	return gridStyles{
		sep:      lipgloss.NewStyle().Foreground(borderCol).Render(sep),
		data:     data,
		rowLabel: dimStyle.Align(lipgloss.Right),
		colLabel: dimStyle.Align(lipgloss.Center),
	}
}

// contrastFg picks dark text on light backgrounds and light text otherwise.
func contrastFg(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return baseFg
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return lipgloss.Color("#111111")
	}
	return baseFg
}

// cellStyle styles one grid cell for the current cursor, hover and selection.
func (m Model) cellStyle(c matrix.Cell) lipgloss.Style {
	var st lipgloss.Style
	switch c.Kind {
	case matrix.CellRowLabel:
		st = m.styles.rowLabel
	case matrix.CellColumnLabel:
		st = m.styles.colLabel
	case matrix.CellCorner:
		st = lipgloss.NewStyle()
	default:
		st = m.styles.data
		if c.Occupied && c.Color != "" {
			st = st.Foreground(lipgloss.Color(c.Color)).Bold(true)
		}
		if c.Occupied && m.selected[c.Identity] {
			st = st.Reverse(true)
		}
		if m.hovering && c.X == m.hoverX && c.Y == m.hoverY {
			st = st.Background(hoverBg)
		}
		if c.X == m.cursorX && c.Y == m.cursorY {
			st = st.Underline(true).Bold(true)
			if !c.Occupied {
				st = st.Background(accentFg)
			}
		}
	}
	return st.Width(m.cellW)
}
