package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"matrixview/internal/matrix"
)

// refreshRecords rebuilds the records table from the current snapshot.
func (m *Model) refreshRecords() {
	if m.snap == nil || len(m.snap.Records) == 0 {
		m.showRecords = false
		m.status = "no records for current dataset"
		return
	}
	maxColW := 24
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "x", Width: 5},
		{Title: "y", Width: 5},
		{Title: "shape", Width: 15},
		{Title: "category", Width: 10},
		{Title: "color", Width: 8},
		{Title: "values", Width: 12},
		{Title: "shown", Width: 6},
	}
	rows := make([]table.Row, 0, len(m.snap.Records))
	for _, r := range m.snap.Records {
		cat := ""
		if r.HasCategory {
			cat = matrix.FormatValue(r.Category)
		}
		vals := matrix.JoinValues(r.Values)
		if w := len(vals) + 2; w > cols[6].Width {
			cols[6].Width = min(w, maxColW)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Row+1),
			fmt.Sprintf("%d", r.X),
			fmt.Sprintf("%d", r.Y),
			r.Shape.String(),
			cat,
			r.Color,
			vals,
			shownMark(m.isShown(r)),
		})
	}
	// clear rows before changing columns so widths never mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// isShown reports whether r is the record its grid cell displays. Records on
// the label tracks and shadowed duplicates are not shown.
func (m Model) isShown(r matrix.Record) bool {
	if r.X == 0 || r.Y == 0 {
		return false
	}
	first, ok := m.snap.Lookup(r.X, r.Y)
	return ok && first.Row == r.Row
}

func shownMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
