// Package snapshot runs one refresh cycle: raw rows in, records and grid out.
package snapshot

import (
	"errors"
	"fmt"

	"matrixview/internal/matrix"
	"matrixview/internal/source"
)

// MaxCells bounds the size of a projected grid, label tracks included.
const MaxCells = 1 << 20

// ErrGridTooLarge indicates bounds whose grid would exceed MaxCells.
var ErrGridTooLarge = errors.New("snapshot: grid too large")

// Snapshot is the complete output of one refresh. Nothing in it is
// modified after New returns.
type Snapshot struct {
	Dataset source.Dataset
	Records []matrix.Record
	Grid    matrix.Grid
	index   *matrix.Index
}

// New normalizes every row of ds and projects the grid. On error no
// partial snapshot is returned; callers keep whatever they had before.
func New(ds source.Dataset, colors matrix.ColorFunc) (*Snapshot, error) {
	recs, err := matrix.NormalizeAll(ds.Rows, ds.Identities(), colors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ds.Name, err)
	}
	maxX, maxY := matrix.ComputeBounds(recs)
	if cells := (maxX + 1) * (maxY + 1); cells > MaxCells {
		return nil, fmt.Errorf("%s: %w: %dx%d is %d cells, limit %d",
			ds.Name, ErrGridTooLarge, maxX+1, maxY+1, cells, MaxCells)
	}
	idx := matrix.NewIndex(recs)
	return &Snapshot{
		Dataset: ds,
		Records: recs,
		Grid:    matrix.ProjectIndexed(idx, maxX, maxY),
		index:   idx,
	}, nil
}

// Lookup resolves a grid position back to its record.
func (s *Snapshot) Lookup(x, y int) (matrix.Record, bool) {
	if s == nil {
		return matrix.Record{}, false
	}
	return s.index.Lookup(x, y)
}

// Summary is a one-line description for status bars and logs.
func (s *Snapshot) Summary() string {
	occ, total := matrix.Occupancy(s.Grid)
	return fmt.Sprintf("%s  rows=%d grid=%dx%d occupied=%d/%d",
		s.Dataset.Name, len(s.Records), s.Grid.Rows(), s.Grid.Cols(), occ, total)
}
