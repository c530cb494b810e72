// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when no value exists for a key.
var ErrKeyNotFound = errors.New("key not found")

// Well-known storage keys. Values are whole serialized blobs; there are no
// partial reads or writes.
const (
	// KeyAppData holds the root AppData document.
	KeyAppData = "fitSyncData"

	// KeyCurrentUser holds the id of the logged-in user, replayed on the
	// next startup to restore the session.
	KeyCurrentUser = "currentUser"

	// KeyLegacySessions and KeyAchievements are the legacy progress
	// tracking stores, distinct from the document's workoutSessions2
	// collection. They are read and merged defensively, never rewritten
	// into the document.
	KeyLegacySessions = "workout_sessions"
	KeyAchievements   = "achievements"
)

// DayExercisesKey returns the key holding the selected exercise array for a
// weekday, Sunday = 0.
func DayExercisesKey(day int) string {
	return fmt.Sprintf("weekly_exercises_day_%d", day)
}

// Store defines the interface for named whole-value blob storage.
// This abstraction allows swapping storage backends (SQLite, plain JSON
// files, etc.) without changing the repository layer.
//
// Failure policy: a failed Set is reported to the caller and nothing more.
// The store does not retry and cannot roll back the caller's in-memory
// state, so in-memory and persisted data may diverge after a write failure.
type Store interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes all stored blobs.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
