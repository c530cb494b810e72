package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fitsync/fitsync/internal/models"
)

// Export returns the whole document serialized as pretty-printed JSON.
func (r *Repository) Export() ([]byte, error) {
	data := r.Current()
	if data == nil {
		return nil, ErrDataNotLoaded
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return out, nil
}

// Import parses text as a full document and replaces the current one,
// persisting the replacement. On malformed JSON the current document is left
// untouched and ErrInvalidImport is returned. Unknown fields are tolerated so
// exports from newer releases still load.
func (r *Repository) Import(ctx context.Context, text []byte) error {
	var data models.AppData
	if err := json.Unmarshal(text, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	// Imported documents can predate the password migration too.
	if migrated := backfillPasswords(&data); migrated > 0 {
		r.logger.Info("back-filled default password on imported users", "count", migrated)
	}
	return r.Save(ctx, &data)
}
