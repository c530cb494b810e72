package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitsync/fitsync/internal/storage"
)

// The side blobs (session marker, per-day exercise selections, legacy
// progress stores) live beside the root document under their own keys. The
// repository is the single storage façade, so services reach them through
// these helpers rather than holding the store themselves.

// GetBlob decodes the JSON blob stored under key into v. A missing key is
// reported as storage.ErrKeyNotFound.
func (r *Repository) GetBlob(ctx context.Context, key string, v any) error {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode blob %q: %w", key, err)
	}
	return nil
}

// SetBlob stores v as a JSON blob under key.
func (r *Repository) SetBlob(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode blob %q: %w", key, err)
	}
	return r.store.Set(ctx, key, raw)
}

// DeleteBlob removes the blob under key by storing a JSON null. Backends
// have no per-key delete; a null blob decodes to the zero value, which every
// reader treats as absent.
func (r *Repository) DeleteBlob(ctx context.Context, key string) error {
	return r.store.Set(ctx, key, []byte("null"))
}

// HasBlob reports whether a non-null blob exists under key.
func (r *Repository) HasBlob(ctx context.Context, key string) (bool, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return string(raw) != "null", nil
}
