package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"matrixview/internal/matrix"
)

// LoadJSON reads either a bare array of rows, [[x, y, ...], ...], or an
// object {"columns": [...], "rows": [[...], ...]}.
func LoadJSON(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Dataset{}, err
	}
	columns, rows, err := parseJSON(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("json %s: %w", filepath.Base(path), err)
	}
	return newDataset(filepath.Base(path), columns, rows), nil
}

func parseJSON(data []byte) ([]string, [][]matrix.Primitive, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	var (
		columns []string
		list    []any
	)
	switch t := raw.(type) {
	case []any:
		list = t
	case map[string]any:
		if cs, ok := t["columns"].([]any); ok {
			for _, c := range cs {
				s, _ := c.(string)
				columns = append(columns, s)
			}
		}
		rs, ok := t["rows"].([]any)
		if !ok {
			return nil, nil, errors.New(`missing "rows" array`)
		}
		list = rs
	default:
		return nil, nil, errors.New("expected array or object at top level")
	}
	rows := make([][]matrix.Primitive, 0, len(list))
	for i, el := range list {
		arr, ok := el.([]any)
		if !ok {
			return nil, nil, fmt.Errorf("row %d: expected array", i)
		}
		row := make([]matrix.Primitive, len(arr))
		for j, v := range arr {
			switch v.(type) {
			case nil, string, float64, bool:
				row[j] = v
			default:
				bs, _ := json.Marshal(v)
				row[j] = string(bs)
			}
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}
