package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matrixview/internal/matrix"
	"matrixview/internal/snapshot"
	"matrixview/internal/source"
)

// SetupRouter registers the grid endpoints.
func SetupRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "matrixview is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/grid", s.getGrid)
		v1.GET("/cells/:x/:y", s.getCell)
		v1.GET("/records", s.getRecords)
		v1.POST("/refresh", s.postRefresh)
	}
	return r
}

// getGrid handles GET /api/v1/grid
func (s *Server) getGrid(c *gin.Context) {
	snap := s.Snapshot()
	if snap == nil {
		fail(c, http.StatusServiceUnavailable, "no dataset loaded")
		return
	}
	success(c, toGridJSON(snap.Dataset.Name, snap.Grid))
}

// getCell handles GET /api/v1/cells/:x/:y
func (s *Server) getCell(c *gin.Context) {
	snap := s.Snapshot()
	if snap == nil {
		fail(c, http.StatusServiceUnavailable, "no dataset loaded")
		return
	}
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(c.Param("y"))
	if errX != nil || errY != nil {
		fail(c, http.StatusBadRequest, "x and y must be integers")
		return
	}
	cell, ok := snap.Grid.At(x, y)
	if !ok {
		fail(c, http.StatusNotFound, "cell out of range")
		return
	}
	success(c, toCellJSON(cell))
}

// getRecords handles GET /api/v1/records
func (s *Server) getRecords(c *gin.Context) {
	snap := s.Snapshot()
	if snap == nil {
		fail(c, http.StatusServiceUnavailable, "no dataset loaded")
		return
	}
	out := make([]RecordJSON, len(snap.Records))
	for i, r := range snap.Records {
		out[i] = toRecordJSON(r)
	}
	success(c, gin.H{"records": out, "count": len(out)})
}

// postRefresh handles POST /api/v1/refresh
func (s *Server) postRefresh(c *gin.Context) {
	snap, err := s.Refresh()
	if err != nil {
		fail(c, refreshStatus(err), err.Error())
		return
	}
	success(c, gin.H{"summary": snap.Summary()})
}

// refreshStatus maps a refresh error to an HTTP status: 409 for rejected
// data, 400 for a missing or unsupported source, 500 otherwise.
func refreshStatus(err error) int {
	switch {
	case errors.Is(err, matrix.ErrMalformedRow),
		errors.Is(err, matrix.ErrBadCoordinate),
		errors.Is(err, snapshot.ErrGridTooLarge):
		return http.StatusConflict
	case errors.Is(err, ErrNoSource),
		errors.Is(err, source.ErrUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
