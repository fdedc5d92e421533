package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_entries",
		SQL: `CREATE TABLE IF NOT EXISTS entries (
  id                     BIGSERIAL   PRIMARY KEY,
  full_name              TEXT        NOT NULL,
  email_address          TEXT        NOT NULL,
  contact_number         TEXT        NOT NULL DEFAULT '',
  submission_capacity    TEXT        NOT NULL DEFAULT '',
  team_members           TEXT        NOT NULL DEFAULT '',
  prize_cheque_name      TEXT        NOT NULL DEFAULT '',
  consent_declarations   TEXT        NOT NULL DEFAULT '',
  challenge              TEXT        NOT NULL DEFAULT '',
  insight                TEXT        NOT NULL DEFAULT '',
  strategic_idea         TEXT        NOT NULL DEFAULT '',
  strategy_execution     TEXT        NOT NULL DEFAULT '',
  expected_results       TEXT        NOT NULL DEFAULT '',
  entry_topic            TEXT        NOT NULL DEFAULT '',
  concept_strategy       TEXT        NOT NULL DEFAULT '',
  objective              TEXT        NOT NULL DEFAULT '',
  rationale              TEXT        NOT NULL DEFAULT '',
  measurement            TEXT        NOT NULL DEFAULT '',
  insight_description    TEXT        NOT NULL DEFAULT '',
  strategic_solution     TEXT        NOT NULL DEFAULT '',
  creative_plan          TEXT        NOT NULL DEFAULT '',
  communication_strategy TEXT        NOT NULL DEFAULT '',
  result_impact          TEXT        NOT NULL DEFAULT '',
  why_outstanding        TEXT        NOT NULL DEFAULT '',
  result_scope           TEXT        NOT NULL DEFAULT '',
  visual_links           TEXT        NULL,
  created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_entries_email_address",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_entries_email_address ON entries (email_address);`,
	},
	{
		Name: "create_index_entries_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries (created_at);`,
	},
}

// EnsureMigrated checks if the 'entries' table exists and runs the schema
// steps if it doesn't. This is startup glue, not migration tooling: it never
// alters an existing table, so a stale layout still surfaces as a schema
// mismatch at insert time.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.entries') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
