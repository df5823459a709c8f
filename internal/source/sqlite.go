package source

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"matrixview/internal/matrix"
)

// DefaultQuery selects the rows of a SQLite dataset when none is configured.
const DefaultQuery = "SELECT * FROM cells"

// LoadSQLite runs query against the database file at path. Result columns
// are taken positionally, like any other row.
func LoadSQLite(path, query string) (Dataset, error) {
	if query == "" {
		query = DefaultQuery
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Dataset{}, fmt.Errorf("sqlite open: %w", err)
	}
	defer db.Close()

	rs, err := db.Query(query)
	if err != nil {
		return Dataset{}, fmt.Errorf("sqlite query: %w", err)
	}
	defer rs.Close()

	columns, err := rs.Columns()
	if err != nil {
		return Dataset{}, err
	}
	var rows [][]matrix.Primitive
	for rs.Next() {
		vals := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return Dataset{}, fmt.Errorf("sqlite scan: %w", err)
		}
		row := make([]matrix.Primitive, len(vals))
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return Dataset{}, fmt.Errorf("sqlite rows: %w", err)
	}
	return newDataset(filepath.Base(path), columns, rows), nil
}
