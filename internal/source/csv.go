package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"matrixview/internal/matrix"
)

// LoadCSV reads rows of x, y[, category], values... from a CSV file.
// A leading header is detected when its first two cells are not numeric.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	header, rows, err := readCSV(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("csv %s: %w", filepath.Base(path), err)
	}
	return newDataset(filepath.Base(path), header, rows), nil
}

// ParseCSVText reads pasted CSV rows, same rules as LoadCSV.
func ParseCSVText(text string) (Dataset, error) {
	header, rows, err := readCSV(strings.NewReader(text))
	if err != nil {
		return Dataset{}, fmt.Errorf("csv: %w", err)
	}
	return newDataset("<pasted>", header, rows), nil
}

func readCSV(r io.Reader) ([]string, [][]matrix.Primitive, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	var header []string
	if len(recs) > 0 && isHeader(recs[0]) {
		header, recs = recs[0], recs[1:]
	}
	rows := make([][]matrix.Primitive, 0, len(recs))
	for _, rec := range recs {
		row := make([]matrix.Primitive, len(rec))
		for i, s := range rec {
			row[i] = cellValue(s)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func isHeader(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	_, err1 := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	_, err2 := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	return err1 != nil && err2 != nil
}

// cellValue turns numeric text into float64 and keeps everything else as text.
func cellValue(s string) matrix.Primitive {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return t
}
