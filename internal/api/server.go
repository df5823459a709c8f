// Package api serves the current grid snapshot as JSON.
package api

import (
	"errors"
	"log"
	"sync"

	"matrixview/internal/matrix"
	"matrixview/internal/snapshot"
	"matrixview/internal/source"
)

// ErrNoSource indicates a refresh without a configured dataset path.
var ErrNoSource = errors.New("api: no dataset path configured")

// Server owns the published snapshot. A refresh builds the new snapshot
// completely before swapping it in, so readers see either the old grid or
// the new one.
type Server struct {
	path   string
	query  string
	colors matrix.ColorFunc

	// serializes refreshes
	refreshMu sync.Mutex

	mu   sync.RWMutex
	snap *snapshot.Snapshot
}

// NewServer creates a server for the dataset at path. Call Refresh to load it.
func NewServer(path, query string, colors matrix.ColorFunc) *Server {
	return &Server{path: path, query: query, colors: colors}
}

// Refresh reloads the dataset. On error the published snapshot is kept.
func (s *Server) Refresh() (*snapshot.Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if s.path == "" {
		return nil, ErrNoSource
	}
	ds, err := source.Load(s.path, s.query)
	if err != nil {
		return nil, err
	}
	return s.Publish(ds)
}

// Publish projects ds and swaps it in on success.
func (s *Server) Publish(ds source.Dataset) (*snapshot.Snapshot, error) {
	snap, err := snapshot.New(ds, s.colors)
	if err != nil {
		log.Printf("refresh rejected: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	log.Printf("refresh: %s", snap.Summary())
	return snap, nil
}

// Snapshot returns the published snapshot, nil before the first refresh.
func (s *Server) Snapshot() *snapshot.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
