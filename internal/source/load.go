package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Supported reports whether Load handles files with this name.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".json", ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load picks a loader by file extension. query applies to SQLite files only.
func Load(path, query string) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, query)
	}
	return Dataset{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
}
