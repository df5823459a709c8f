// Package matrix turns sparse (x, y, values...) rows into a dense grid with
// reserved axis-label tracks. It does no I/O and keeps no state between calls.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRow indicates a row with fewer than two columns.
	ErrMalformedRow = errors.New("matrix: row must have at least two columns")
	// ErrBadCoordinate indicates an x or y cell that is not a non-negative integer.
	ErrBadCoordinate = errors.New("matrix: coordinate must be a non-negative integer")
)

// MaxCoordinate is the largest accepted x or y.
const MaxCoordinate = 4096

// Primitive is a scalar cell value: float64, int, string, bool or nil.
type Primitive any

// Identity is an opaque token correlating a cell with its source row.
// Values must be comparable; the package only copies them.
type Identity any

// IdentityFunc issues the identity for the row at the given ordinal.
type IdentityFunc func(row int) Identity

// ColorFunc resolves a raw category to a display color. A false result
// leaves the record's color unresolved.
type ColorFunc func(category Primitive) (string, bool)

// Shape records which column layout a row was read with.
type Shape uint8

const (
	// ShapeCoordinateOnly is a bare (x, y) row with no values.
	ShapeCoordinateOnly Shape = iota
	// ShapeThreeColumn is (x, y, value).
	ShapeThreeColumn
	// ShapeCategorized is (x, y, category, values...).
	ShapeCategorized
)

func (s Shape) String() string {
	switch s {
	case ShapeCoordinateOnly:
		return "coordinate-only"
	case ShapeThreeColumn:
		return "three-column"
	case ShapeCategorized:
		return "categorized"
	}
	return "unknown"
}

// ShapeOf classifies a row by its column count.
func ShapeOf(columns int) (Shape, error) {
	switch {
	case columns < 2:
		return 0, ErrMalformedRow
	case columns == 2:
		return ShapeCoordinateOnly, nil
	case columns == 3:
		return ShapeThreeColumn, nil
	default:
		return ShapeCategorized, nil
	}
}

// Record is the normalized form of one input row.
type Record struct {
	X, Y        int
	Values      []Primitive
	Category    Primitive
	HasCategory bool
	Color       string // resolved from Category, empty when unresolved
	Identity    Identity
	Shape       Shape
	Row         int // ordinal in the source sequence
}

// Normalize converts one raw row into a Record.
//
// Three columns are read as x, y, value. More than three are read as
// x, y, category, values... Identity is requested from ids with the row
// index and attached as-is; a nil ids leaves it empty. colors may be nil.
func Normalize(row []Primitive, index int, ids IdentityFunc, colors ColorFunc) (Record, error) {
	shape, err := ShapeOf(len(row))
	if err != nil {
		return Record{}, fmt.Errorf("row %d: %w", index, err)
	}
	x, err := Coordinate(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("row %d x: %w", index, err)
	}
	y, err := Coordinate(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("row %d y: %w", index, err)
	}

	rec := Record{X: x, Y: y, Shape: shape, Row: index}
	switch shape {
	case ShapeCoordinateOnly:
		rec.Values = []Primitive{}
	case ShapeThreeColumn:
		rec.Values = []Primitive{row[2]}
	case ShapeCategorized:
		rec.Category = row[2]
		rec.HasCategory = true
		rec.Values = append([]Primitive(nil), row[3:]...)
		if colors != nil {
			if c, ok := colors(rec.Category); ok {
				rec.Color = c
			}
		}
	}
	if ids != nil {
		rec.Identity = ids(index)
	}
	return rec, nil
}

// NormalizeAll normalizes every row in order. The first failing row aborts
// the whole batch and no records are returned.
func NormalizeAll(rows [][]Primitive, ids IdentityFunc, colors ColorFunc) ([]Record, error) {
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := Normalize(row, i, ids, colors)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Coordinate reads a grid coordinate from a scalar. Integral floats and
// numeric strings in [0, MaxCoordinate] are accepted.
func Coordinate(v Primitive) (int, error) {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadCoordinate, t)
		}
		f = p
	default:
		return 0, fmt.Errorf("%w: %v", ErrBadCoordinate, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrBadCoordinate, v)
	}
	if f > MaxCoordinate {
		return 0, fmt.Errorf("%w: %v exceeds %d", ErrBadCoordinate, v, MaxCoordinate)
	}
	return int(f), nil
}

// FormatValue renders a scalar the way cell text shows it.
func FormatValue(v Primitive) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// JoinValues joins values with commas, in order.
func JoinValues(values []Primitive) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, ",")
}
