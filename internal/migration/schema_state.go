package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// recordSchemaState upserts the single-row schema_state record so operators
// can confirm which migration set a database was last stamped with.
func recordSchemaState(ctx context.Context, db *sql.DB, schemaVersion string, checksum string) error {
	if db == nil {
		return errors.New("schema state requires database handle")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	version := strings.TrimSpace(schemaVersion)
	if version == "" {
		return errors.New("schema version is required")
	}

	now := time.Now().UTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO schema_state (id, schema_version, checksum, applied_at, created_at)
		VALUES (TRUE, $1, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE
		SET schema_version = EXCLUDED.schema_version,
		    checksum = EXCLUDED.checksum,
		    applied_at = EXCLUDED.applied_at
	`, version, nullIfEmpty(checksum), now)
	if err != nil {
		return fmt.Errorf("record schema state: %w", err)
	}

	return nil
}

func nullIfEmpty(value string) any {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
