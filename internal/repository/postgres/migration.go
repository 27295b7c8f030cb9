package postgres

import (
	"database/sql"
	"fmt"
	"os"
)

// RunMigrations executes the schema.sql file to initialize the database
func RunMigrations(db *sql.DB) error {
	// The binary may be started from the repo root or from cmd/api.
	possiblePaths := []string{
		"script/migration/schema.sql",
		"../script/migration/schema.sql",
		"../../script/migration/schema.sql",
		"backend/script/migration/schema.sql",
	}

	schemaPath := "script/migration/schema.sql"
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			schemaPath = path
			break
		}
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return fmt.Errorf("failed to read migration file %q (cwd %s): %w", schemaPath, wd, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}

	return nil
}
