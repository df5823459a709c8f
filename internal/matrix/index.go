package matrix

// Index maps coordinates to the first record that claimed them.
type Index struct {
	records []Record
	pos     map[[2]int]int
}

// NewIndex builds an index in one pass. Later duplicates are ignored.
func NewIndex(records []Record) *Index {
	pos := make(map[[2]int]int, len(records))
	for i, r := range records {
		k := [2]int{r.X, r.Y}
		if _, seen := pos[k]; !seen {
			pos[k] = i
		}
	}
	return &Index{records: records, pos: pos}
}

// Lookup has the same result as FindFirst on the indexed records.
func (idx *Index) Lookup(x, y int) (Record, bool) {
	i, ok := idx.pos[[2]int{x, y}]
	if !ok {
		return Record{}, false
	}
	return idx.records[i], true
}

// Len returns the number of distinct coordinates.
func (idx *Index) Len() int { return len(idx.pos) }
