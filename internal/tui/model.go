package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"matrixview/internal/matrix"
	"matrixview/internal/palette"
	"matrixview/internal/settings"
	"matrixview/internal/snapshot"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	cfg    settings.Settings
	colors matrix.ColorFunc
	styles gridStyles

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data of the last successful refresh; nil before the first one
	snap  *snapshot.Snapshot
	cellW int

	// first data row/column shown after the pinned label track
	offsetX int
	offsetY int

	cursorX int
	cursorY int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// selected identities of the current snapshot
	selected map[matrix.Identity]bool

	showTooltip bool
	showMinimap bool

	// hover state
	hovering bool
	hoverX   int
	hoverY   int

	// records table
	showRecords bool
	tbl         table.Model
}

func New(cfg settings.Settings) Model {
	pal := palette.Default()
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "matrixview ready",
		cfg:         cfg,
		colors:      pal.Resolve,
		styles:      newGridStyles(cfg.Table, pal),
		selected:    map[matrix.Identity]bool{},
		showTooltip: true,
		showMinimap: true,
		cursorX:     1,
		cursorY:     1,
	}
	m.cellW = m.minCellWidth()
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV rows here: x,y,value or x,y,category,values... Press Ctrl+S to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// records table setup (rows filled on refresh)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a dataset at launch.
func NewWithPath(cfg settings.Settings, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
