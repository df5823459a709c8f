package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	title := " matrixview ─ sparse rows as a grid "
	if m.snap != nil {
		title += "─ " + m.snap.Dataset.Name + " "
	}
	header := lipgloss.NewStyle().Width(l.contentW).Padding(0).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(l.sidebarW).Render(m.l.View())
	}

	mainW := l.contentW - l.gridX
	var mainView string
	switch {
	case m.showRecords:
		// center the records table in the main area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, l.contentW-6)
		}
		maxW := min(mainW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.gridH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mainView = lipgloss.Place(mainW, l.gridH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mainW)
		m.ta.SetHeight(min(l.gridH, 12))
		mainView = lipgloss.NewStyle().Width(mainW).Height(l.gridH).Render(m.ta.View())
	default:
		mainView = m.renderGrid(l)
		if l.panelW > 0 {
			mainView = lipgloss.JoinHorizontal(lipgloss.Top, mainView, m.renderPanel(l))
		}
	}

	// Body row
	body := mainView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mainView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.snap != nil {
		coords = dimStyle.Render(fmt.Sprintf("  cell %d,%d  sel=%d  ", m.cursorX, m.cursorY, len(m.selected)))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ move",
		"space select",
		"Tab files",
		"p paste",
		"r records",
		"t tooltip",
		"m minimap",
		"^R reload",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
