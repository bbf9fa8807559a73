package state

import (
	"context"
	"database/sql"
	"fmt"

	dbutil "github.com/llehouerou/rove/internal/db"
)

// migrations[i] moves the schema from version i to i+1.
var migrations = []string{
	`CREATE TABLE navigation_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_path TEXT NOT NULL,
		selected_name TEXT
	);
	CREATE TABLE bookmarks (
		key TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,

	// listing options
	`ALTER TABLE navigation_state ADD COLUMN sort TEXT;
	ALTER TABLE navigation_state ADD COLUMN sort_reverse INTEGER NOT NULL DEFAULT 0;
	ALTER TABLE navigation_state ADD COLUMN show_hidden INTEGER NOT NULL DEFAULT 0`,
}

func schemaVersion(q queryRower) (int, error) {
	var v int
	err := q.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&v)
	return v, err
}

// migrate applies the migrations the database has not seen yet, each in
// its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return err
	}
	current, err := schemaVersion(db)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return fmt.Errorf("schema version %d is newer than this build (%d)", current, len(migrations))
	}

	for v := current; v < len(migrations); v++ {
		err := dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(migrations[v]); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, v+1)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrating schema to version %d: %w", v+1, err)
		}
	}
	return nil
}
