package source_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"matrixview/internal/matrix"
	"matrixview/internal/source"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadCSV_WithHeader(t *testing.T) {
	p := writeFile(t, "cells.csv", "x,y,cat,a,b\n1,2,red,A,3.5\n2,1,blue,B,\n")
	ds, err := source.LoadCSV(p)
	require.NoError(t, err)
	require.Equal(t, "cells.csv", ds.Name)
	require.Equal(t, []string{"x", "y", "cat", "a", "b"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	require.Equal(t, []matrix.Primitive{1.0, 2.0, "red", "A", 3.5}, ds.Rows[0])
	require.Equal(t, []matrix.Primitive{2.0, 1.0, "blue", "B", nil}, ds.Rows[1])
}

func TestParseCSVText_NoHeaderRaggedRows(t *testing.T) {
	ds, err := source.ParseCSVText("1,1,5\n2,3,red,A,B\n")
	require.NoError(t, err)
	require.Nil(t, ds.Columns)
	require.Len(t, ds.Rows, 2)
	require.Len(t, ds.Rows[1], 5)

	recs, err := matrix.NormalizeAll(ds.Rows, ds.Identities(), nil)
	require.NoError(t, err)
	require.Equal(t, []matrix.Primitive{5.0}, recs[0].Values)
	require.Equal(t, "red", recs[1].Category)
	require.Equal(t, source.RowID{Dataset: ds.ID, Row: 1}, recs[1].Identity)
}

func TestParseCSVText_HeaderOnly(t *testing.T) {
	ds, err := source.ParseCSVText("x,y,v\n")
	require.NoError(t, err)
	require.Empty(t, ds.Rows)

	recs, err := matrix.NormalizeAll(ds.Rows, ds.Identities(), nil)
	require.NoError(t, err)
	g := matrix.Build(recs)
	require.Equal(t, 1, g.Rows())
	require.Equal(t, 1, g.Cols())
}

func TestLoadJSON(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		columns []string
	}{
		{"Array", `[[1, 1, "A"], [2, 2, "red", "B", {"k": 1}]]`, nil},
		{"Object", `{"columns": ["x", "y", "v"], "rows": [[1, 1, "A"], [2, 2, "red", "B", {"k": 1}]]}`, []string{"x", "y", "v"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := source.LoadJSON(writeFile(t, "cells.json", tc.body))
			require.NoError(t, err)
			require.Equal(t, tc.columns, ds.Columns)
			require.Len(t, ds.Rows, 2)
			require.Equal(t, []matrix.Primitive{1.0, 1.0, "A"}, ds.Rows[0])
			require.Equal(t, `{"k":1}`, ds.Rows[1][4])
		})
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	ds, err := source.LoadJSON(writeFile(t, "a.json", `[]`))
	require.NoError(t, err)
	require.Empty(t, ds.Rows)
	_, err = source.LoadJSON(writeFile(t, "b.json", `{"cols": []}`))
	require.Error(t, err)
	_, err = source.LoadJSON(writeFile(t, "c.json", `[1, 2]`))
	require.Error(t, err)
}

func TestLoadSQLite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cells.db")
	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE cells (x INTEGER, y INTEGER, v TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO cells VALUES (1, 1, 'a'), (3, 2, 'b')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ds, err := source.Load(p, "")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "v"}, ds.Columns)
	require.Len(t, ds.Rows, 2)

	recs, err := matrix.NormalizeAll(ds.Rows, ds.Identities(), nil)
	require.NoError(t, err)
	g := matrix.Build(recs)
	require.Equal(t, 3, g.MaxX)
	require.Equal(t, 2, g.MaxY)
	require.Equal(t, "b", g.Cells[3][2].Text())

	ds, err = source.Load(p, "SELECT x, y, v FROM cells WHERE x > 10")
	require.NoError(t, err)
	require.Empty(t, ds.Rows)
}

func TestLoad_Unsupported(t *testing.T) {
	_, err := source.Load("cells.kml", "")
	require.ErrorIs(t, err, source.ErrUnsupported)
	require.True(t, source.Supported("A.CSV"))
	require.False(t, source.Supported("notes.txt"))
}

func TestIdentities_DistinctPerLoad(t *testing.T) {
	a, err := source.ParseCSVText("1,1,5\n")
	require.NoError(t, err)
	b, err := source.ParseCSVText("1,1,5\n")
	require.NoError(t, err)
	require.NotEqual(t, a.Identities()(0), b.Identities()(0))
	require.Equal(t, a.Identities()(0), a.Identities()(0))
}
