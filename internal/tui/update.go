package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"matrixview/internal/matrix"
	"matrixview/internal/source"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		m.ensureCursorVisible()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "ctrl+s":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				ds, err := source.ParseCSVText(text)
				if err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				if m.apply(ds) {
					m.selPath = ""
					m.pasteMode = false
					m.ta.Blur()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showRecords {
			switch msg.String() {
			case "r", "esc":
				m.showRecords = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
			m.ensureCursorVisible()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTooltip = !m.showTooltip
			m.ensureCursorVisible()
		case "m":
			m.showMinimap = !m.showMinimap
			m.ensureCursorVisible()
		case "r":
			m.showRecords = true
			m.refreshRecords()
		case "ctrl+r":
			if m.selPath == "" {
				m.status = "nothing to reload"
			} else {
				m.loadPath(m.selPath)
			}
		case " ", "space":
			m.toggleSelection(m.cursorX, m.cursorY)
		case "esc":
			if len(m.selected) > 0 {
				m.selected = map[matrix.Identity]bool{}
				m.status = "selection cleared"
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
				return m, nil
			}
			m.toggleSelection(m.cursorX, m.cursorY)
		case "up", "k":
			if !m.showSidebar {
				m.moveCursor(-1, 0)
			}
		case "down", "j":
			if !m.showSidebar {
				m.moveCursor(1, 0)
			}
		case "left":
			if !m.showSidebar {
				m.moveCursor(0, -1)
			}
		case "right":
			if !m.showSidebar {
				m.moveCursor(0, 1)
			}
		case "pgup":
			m.moveCursor(-m.visibleRows(m.layout()), 0)
		case "pgdown":
			m.moveCursor(m.visibleRows(m.layout()), 0)
		case "home":
			m.moveCursor(0, -m.cursorY)
		case "end":
			if m.snap != nil {
				m.moveCursor(0, m.snap.Grid.MaxY)
			}
		}
	case tea.MouseMsg:
		x, y, ok := m.screenToCell(msg.X, msg.Y)
		m.hovering = ok
		if ok {
			m.hoverX, m.hoverY = x, y
		}
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.moveCursor(-1, 0)
		case msg.Button == tea.MouseButtonWheelDown:
			m.moveCursor(1, 0)
		case ok && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if x > 0 && y > 0 {
				m.cursorX, m.cursorY = x, y
				m.toggleSelection(x, y)
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// toggleSelection flips the selection of the record shown at (x, y).
func (m *Model) toggleSelection(x, y int) {
	if m.snap == nil {
		return
	}
	c, ok := m.snap.Grid.At(x, y)
	if !ok || !c.Occupied {
		m.status = fmt.Sprintf("cell %d, %d is empty", x, y)
		return
	}
	if m.selected[c.Identity] {
		delete(m.selected, c.Identity)
	} else {
		m.selected[c.Identity] = true
	}
	m.status = fmt.Sprintf("selected: %d", len(m.selected))
}
