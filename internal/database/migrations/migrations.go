package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"ms-rsvp/internal/logger"
)

const responsesTable = "rsvp_responses"

const createResponsesTable = `
CREATE TABLE IF NOT EXISTS rsvp_responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    full_name TEXT NOT NULL,
    with_partner INTEGER NOT NULL DEFAULT 0,
    attending INTEGER NOT NULL DEFAULT 1
)`

// step brings the schema to some state. Every step must be a no-op when the
// state already holds, so the whole list can run on each startup.
type step struct {
	name  string
	apply func(ctx context.Context, db bun.IDB) (bool, error)
}

var steps = []step{
	{name: "create rsvp_responses", apply: createTable},
	{name: "ensure with_partner", apply: ensureColumn("with_partner", "INTEGER NOT NULL DEFAULT 0", "")},
	{name: "ensure attending", apply: ensureColumn("attending", "INTEGER NOT NULL DEFAULT 1",
		"UPDATE rsvp_responses SET attending = 1 WHERE attending IS NULL")},
}

// Runner applies the schema steps against a bun database.
type Runner struct {
	bunDB  *bun.DB
	logger *logger.Logger
}

func NewRunner(bunDB *bun.DB, log *logger.Logger) *Runner {
	return &Runner{bunDB: bunDB, logger: log}
}

// RunMigrations applies every step in order.
func (r *Runner) RunMigrations(ctx context.Context) error {
	for _, s := range steps {
		changed, err := s.apply(ctx, r.bunDB)
		if err != nil {
			return fmt.Errorf("migration %q failed: %w", s.name, err)
		}
		if changed {
			r.logger.LogDatabase("MIGRATE", responsesTable, s.name+": applied")
		} else {
			r.logger.Debug("DATABASE", fmt.Sprintf("[MIGRATE] %s - %s: up to date", responsesTable, s.name))
		}
	}
	return nil
}

func createTable(ctx context.Context, db bun.IDB) (bool, error) {
	exists, err := tableExists(ctx, db, responsesTable)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, createResponsesTable); err != nil {
		return false, fmt.Errorf("failed to create table: %w", err)
	}
	return true, nil
}

// ensureColumn adds column with the given definition when it is missing and then
// runs backfill, if any.
func ensureColumn(column, definition, backfill string) func(context.Context, bun.IDB) (bool, error) {
	return func(ctx context.Context, db bun.IDB) (bool, error) {
		cols, err := columns(ctx, db, responsesTable)
		if err != nil {
			return false, err
		}
		if _, ok := cols[column]; ok {
			return false, nil
		}

		alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", responsesTable, column, definition)
		if _, err := db.ExecContext(ctx, alter); err != nil {
			return false, fmt.Errorf("failed to add column %s: %w", column, err)
		}
		if backfill != "" {
			if _, err := db.ExecContext(ctx, backfill); err != nil {
				return false, fmt.Errorf("failed to backfill column %s: %w", column, err)
			}
		}
		return true, nil
	}
}

func tableExists(ctx context.Context, db bun.IDB, table string) (bool, error) {
	var count int
	err := db.NewRaw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).
		Scan(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return count > 0, nil
}

func columns(ctx context.Context, db bun.IDB, table string) (map[string]struct{}, error) {
	var names []string
	err := db.NewRaw("SELECT name FROM pragma_table_info(?)", table).Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out, nil
}
