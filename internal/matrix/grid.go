package matrix

import "fmt"

// CellKind tells rendering code how to treat a grid position.
type CellKind uint8

const (
	// CellCorner is the blank top-left position (0, 0).
	CellCorner CellKind = iota
	// CellRowLabel is a position (x, 0) with x > 0; its label is x.
	CellRowLabel
	// CellColumnLabel is a position (0, y) with y > 0; its label is y.
	CellColumnLabel
	// CellData is a position with x > 0 and y > 0.
	CellData
)

// Cell is one position of a projected grid. Values, Category, Color and
// Identity are set only when Occupied.
type Cell struct {
	X, Y        int
	Kind        CellKind
	Label       int
	Occupied    bool
	Values      []Primitive
	Category    Primitive
	HasCategory bool
	Color       string
	Identity    Identity
}

// Text returns the display text of the cell.
func (c Cell) Text() string {
	switch c.Kind {
	case CellRowLabel, CellColumnLabel:
		return fmt.Sprint(c.Label)
	case CellData:
		if c.Occupied {
			return JoinValues(c.Values)
		}
	}
	return ""
}

// Grid is a dense projection indexed Cells[x][y], x in [0, MaxX] and
// y in [0, MaxY]. It is not modified after Project returns it.
type Grid struct {
	MaxX, MaxY int
	Cells      [][]Cell
}

// Rows returns the number of x positions, MaxX+1.
func (g Grid) Rows() int { return g.MaxX + 1 }

// Cols returns the number of y positions, MaxY+1.
func (g Grid) Cols() int { return g.MaxY + 1 }

// At returns the cell at (x, y), or false when outside the grid.
func (g Grid) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= len(g.Cells) || y >= len(g.Cells[x]) {
		return Cell{}, false
	}
	return g.Cells[x][y], true
}

// ComputeBounds returns the largest x and y across records, 0 for an
// empty collection.
func ComputeBounds(records []Record) (maxX, maxY int) {
	for _, r := range records {
		if r.X > maxX {
			maxX = r.X
		}
		if r.Y > maxY {
			maxY = r.Y
		}
	}
	return maxX, maxY
}

// FindFirst scans records in order and returns the first one at (x, y).
func FindFirst(records []Record, x, y int) (Record, bool) {
	for _, r := range records {
		if r.X == x && r.Y == y {
			return r, true
		}
	}
	return Record{}, false
}

// Project materializes every position of [0, maxX] × [0, maxY]. Row 0 and
// column 0 hold axis labels; data cells are filled with FindFirst, so the
// first record wins when coordinates repeat.
func Project(records []Record, maxX, maxY int) Grid {
	return project(maxX, maxY, func(x, y int) (Record, bool) {
		return FindFirst(records, x, y)
	})
}

// ProjectIndexed produces the same grid as Project using a prebuilt index.
func ProjectIndexed(idx *Index, maxX, maxY int) Grid {
	return project(maxX, maxY, idx.Lookup)
}

// Build computes bounds and projects the records in one step.
func Build(records []Record) Grid {
	maxX, maxY := ComputeBounds(records)
	return Project(records, maxX, maxY)
}

func project(maxX, maxY int, lookup func(x, y int) (Record, bool)) Grid {
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	cells := make([][]Cell, maxX+1)
	for x := 0; x <= maxX; x++ {
		row := make([]Cell, maxY+1)
		for y := 0; y <= maxY; y++ {
			c := Cell{X: x, Y: y}
			switch {
			case x == 0 && y == 0:
				c.Kind = CellCorner
			case y == 0:
				c.Kind = CellRowLabel
				c.Label = x
			case x == 0:
				c.Kind = CellColumnLabel
				c.Label = y
			default:
				c.Kind = CellData
				if r, ok := lookup(x, y); ok {
					c.Occupied = true
					c.Values = r.Values
					c.Category = r.Category
					c.HasCategory = r.HasCategory
					c.Color = r.Color
					c.Identity = r.Identity
				}
			}
			row[y] = c
		}
		cells[x] = row
	}
	return Grid{MaxX: maxX, MaxY: maxY, Cells: cells}
}

// Occupancy counts occupied data cells and the size of the data region.
func Occupancy(g Grid) (occupied, total int) {
	for x := 1; x <= g.MaxX; x++ {
		for y := 1; y <= g.MaxY; y++ {
			total++
			if g.Cells[x][y].Occupied {
				occupied++
			}
		}
	}
	return occupied, total
}
