package tui

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"matrixview/internal/matrix"
	"matrixview/internal/snapshot"
	"matrixview/internal/source"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !source.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a dataset file and refreshes the grid from it.
func (m *Model) loadPath(p string) {
	ds, err := source.Load(p, m.cfg.Query)
	if err != nil {
		log.Printf("load %s: %v", p, err)
		m.status = "load error: " + err.Error()
		return
	}
	if m.apply(ds) {
		m.selPath = p
	}
}

// apply runs a full refresh. On failure the previous snapshot stays on screen.
func (m *Model) apply(ds source.Dataset) bool {
	snap, err := snapshot.New(ds, m.colors)
	if err != nil {
		log.Printf("refresh rejected: %v", err)
		m.status = "refresh error: " + err.Error()
		return false
	}
	m.snap = snap
	m.selected = map[matrix.Identity]bool{}
	m.cursorX, m.cursorY = 1, 1
	m.offsetX, m.offsetY = 0, 0
	m.hovering = false
	m.fitCellWidth()
	if m.showRecords {
		m.refreshRecords()
	}
	m.status = "loaded: " + snap.Summary()
	log.Printf("refresh: %s", snap.Summary())
	return true
}
