package storage

import (
	"log/slog"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendAuto     = "auto"
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// Open opens the store for the given data directory. With BackendAuto it
// prefers the structured SQLite engine and falls back to plain JSON files if
// SQLite cannot be opened; the fallback is logged, not fatal. Explicit
// backend names skip the fallback.
func Open(dataDir, backend string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLite(filepath.Join(dataDir, "fitsync.db"))
	case BackendJSONFile:
		return NewFileStore(dataDir)
	default:
		store, err := NewSQLite(filepath.Join(dataDir, "fitsync.db"))
		if err == nil {
			return store, nil
		}
		slog.Warn("SQLite unavailable, falling back to JSON file storage",
			"data_dir", dataDir,
			"error", err,
		)
		return NewFileStore(dataDir)
	}
}
