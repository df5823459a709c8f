package api

import "matrixview/internal/matrix"

// CellJSON is the wire form of a grid cell.
type CellJSON struct {
	X        int                `json:"x"`
	Y        int                `json:"y"`
	Kind     string             `json:"kind"`
	Label    *int               `json:"label,omitempty"`
	Occupied bool               `json:"occupied"`
	Text     string             `json:"text"`
	Values   []matrix.Primitive `json:"values,omitempty"`
	Category matrix.Primitive   `json:"category,omitempty"`
	Color    string             `json:"color,omitempty"`
	Identity matrix.Identity    `json:"identity,omitempty"`
}

// GridJSON is the wire form of a projected grid.
type GridJSON struct {
	Dataset string       `json:"dataset"`
	MaxX    int          `json:"max_x"`
	MaxY    int          `json:"max_y"`
	Cells   [][]CellJSON `json:"cells"`
}

// RecordJSON is the wire form of a normalized record.
type RecordJSON struct {
	Row      int                `json:"row"`
	X        int                `json:"x"`
	Y        int                `json:"y"`
	Shape    string             `json:"shape"`
	Values   []matrix.Primitive `json:"values"`
	Category matrix.Primitive   `json:"category,omitempty"`
	Color    string             `json:"color,omitempty"`
	Identity matrix.Identity    `json:"identity,omitempty"`
}

var kindNames = map[matrix.CellKind]string{
	matrix.CellCorner:      "corner",
	matrix.CellRowLabel:    "row_label",
	matrix.CellColumnLabel: "column_label",
	matrix.CellData:        "data",
}

func toCellJSON(c matrix.Cell) CellJSON {
	out := CellJSON{
		X:        c.X,
		Y:        c.Y,
		Kind:     kindNames[c.Kind],
		Occupied: c.Occupied,
		Text:     c.Text(),
	}
	if c.Kind == matrix.CellRowLabel || c.Kind == matrix.CellColumnLabel {
		label := c.Label
		out.Label = &label
	}
	if c.Occupied {
		out.Values = c.Values
		out.Category = c.Category
		out.Color = c.Color
		out.Identity = c.Identity
	}
	return out
}

func toGridJSON(name string, g matrix.Grid) GridJSON {
	cells := make([][]CellJSON, len(g.Cells))
	for x, col := range g.Cells {
		cells[x] = make([]CellJSON, len(col))
		for y, c := range col {
			cells[x][y] = toCellJSON(c)
		}
	}
	return GridJSON{Dataset: name, MaxX: g.MaxX, MaxY: g.MaxY, Cells: cells}
}

func toRecordJSON(r matrix.Record) RecordJSON {
	return RecordJSON{
		Row:      r.Row,
		X:        r.X,
		Y:        r.Y,
		Shape:    r.Shape.String(),
		Values:   r.Values,
		Category: r.Category,
		Color:    r.Color,
		Identity: r.Identity,
	}
}
