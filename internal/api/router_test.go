package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"matrixview/internal/api"
	"matrixview/internal/palette"
)

func init() { gin.SetMode(gin.TestMode) }

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func setup(t *testing.T, body string) (*api.Server, http.Handler, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cells.csv")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	s := api.NewServer(p, "", palette.Default().Resolve)
	return s, api.SetupRouter(s), p
}

func TestGridBeforeRefresh(t *testing.T) {
	_, h, _ := setup(t, "1,1,5\n")
	code, _ := do(t, h, http.MethodGet, "/api/v1/grid")
	require.Equal(t, http.StatusServiceUnavailable, code)

	code, env := do(t, h, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "matrixview is running", env.Message)
}

func TestGridAndCells(t *testing.T) {
	s, h, _ := setup(t, "x,y,v\n1,1,5\n2,1,red,A,B\n")
	_, err := s.Refresh()
	require.NoError(t, err)

	code, env := do(t, h, http.MethodGet, "/api/v1/grid")
	require.Equal(t, http.StatusOK, code)
	var g api.GridJSON
	require.NoError(t, json.Unmarshal(env.Data, &g))
	require.Equal(t, 2, g.MaxX)
	require.Equal(t, 1, g.MaxY)
	require.Len(t, g.Cells, 3)
	require.Len(t, g.Cells[0], 2)
	require.Equal(t, "corner", g.Cells[0][0].Kind)
	require.Equal(t, "row_label", g.Cells[2][0].Kind)
	require.Equal(t, "2", g.Cells[2][0].Text)
	require.Equal(t, "5", g.Cells[1][1].Text)

	code, env = do(t, h, http.MethodGet, "/api/v1/cells/2/1")
	require.Equal(t, http.StatusOK, code)
	var c api.CellJSON
	require.NoError(t, json.Unmarshal(env.Data, &c))
	require.True(t, c.Occupied)
	require.Equal(t, "A,B", c.Text)
	require.Equal(t, "red", c.Category)
	require.Equal(t, "#e5484d", c.Color)
	require.NotNil(t, c.Identity)

	code, _ = do(t, h, http.MethodGet, "/api/v1/cells/1/2")
	require.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, h, http.MethodGet, "/api/v1/cells/a/1")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestRecords(t *testing.T) {
	s, h, _ := setup(t, "1,1,5\n1,1,6\n")
	_, err := s.Refresh()
	require.NoError(t, err)
	code, env := do(t, h, http.MethodGet, "/api/v1/records")
	require.Equal(t, http.StatusOK, code)
	var body struct {
		Records []api.RecordJSON `json:"records"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Equal(t, 2, body.Count)
	require.Len(t, body.Records, 2)
	require.Equal(t, "three-column", body.Records[1].Shape)
}

func TestRefreshFailureKeepsGrid(t *testing.T) {
	s, h, p := setup(t, "1,1,5\n")
	_, err := s.Refresh()
	require.NoError(t, err)
	prev := s.Snapshot()

	require.NoError(t, os.WriteFile(p, []byte("1,1,5\n7\n"), 0o644))
	code, env := do(t, h, http.MethodPost, "/api/v1/refresh")
	require.Equal(t, http.StatusConflict, code)
	require.Contains(t, env.Message, "at least two columns")
	require.Same(t, prev, s.Snapshot())

	require.NoError(t, os.WriteFile(p, []byte("1,1,5\n3,3,9\n"), 0o644))
	code, _ = do(t, h, http.MethodPost, "/api/v1/refresh")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 3, s.Snapshot().Grid.MaxX)
}

func TestRefreshWithoutPath(t *testing.T) {
	s := api.NewServer("", "", nil)
	_, err := s.Refresh()
	require.ErrorIs(t, err, api.ErrNoSource)
}

func TestRefreshStatus(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"OK", "1,1,5\n", http.StatusOK},
		{"MalformedRow", "1,1,5\n7\n", http.StatusConflict},
		{"NegativeCoordinate", "1,1,5\n-1,2,5\n", http.StatusConflict},
		{"CoordinateOverCap", "1,1,5\n1e19,2,5\n", http.StatusConflict},
		{"GridTooLarge", "1,1,5\n4096,4096,5\n", http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, h, _ := setup(t, tc.body)
			code, env := do(t, h, http.MethodPost, "/api/v1/refresh")
			require.Equal(t, tc.want, code, env.Message)
			if tc.want != http.StatusOK {
				require.Equal(t, tc.want, env.Code)
			}
		})
	}
}

func TestRefreshStatus_Source(t *testing.T) {
	code, env := do(t, api.SetupRouter(api.NewServer("", "", nil)), http.MethodPost, "/api/v1/refresh")
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, env.Message, "no dataset path")

	p := filepath.Join(t.TempDir(), "cells.txt")
	require.NoError(t, os.WriteFile(p, []byte("1,1,5\n"), 0o644))
	code, _ = do(t, api.SetupRouter(api.NewServer(p, "", nil)), http.MethodPost, "/api/v1/refresh")
	require.Equal(t, http.StatusBadRequest, code)

	missing := filepath.Join(t.TempDir(), "missing.csv")
	code, _ = do(t, api.SetupRouter(api.NewServer(missing, "", nil)), http.MethodPost, "/api/v1/refresh")
	require.Equal(t, http.StatusInternalServerError, code)
}
