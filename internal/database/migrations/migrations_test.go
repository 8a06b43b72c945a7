package migrations_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-rsvp/internal/database/migrations"
	"ms-rsvp/internal/logger"
)

func openRaw(t *testing.T) *bun.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { bunDB.Close() })
	return bunDB
}

func columnNames(t *testing.T, db *bun.DB) []string {
	t.Helper()
	var names []string
	require.NoError(t, db.NewRaw("SELECT name FROM pragma_table_info('rsvp_responses')").Scan(context.Background(), &names))
	return names
}

func TestRunMigrationsFreshDatabase(t *testing.T) {
	db := openRaw(t)
	ctx := context.Background()

	err := migrations.NewRunner(db, logger.Discard()).RunMigrations(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"id", "created_at", "full_name", "with_partner", "attending"},
		columnNames(t, db))
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openRaw(t)
	ctx := context.Background()
	runner := migrations.NewRunner(db, logger.Discard())

	require.NoError(t, runner.RunMigrations(ctx))
	_, err := db.ExecContext(ctx,
		"INSERT INTO rsvp_responses (created_at, full_name, with_partner, attending) VALUES ('2024-05-01 10:00:00', 'Jane Doe', 0, 0)")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, runner.RunMigrations(ctx))
	}

	var count, attending int
	require.NoError(t, db.NewRaw("SELECT count(*) FROM rsvp_responses").Scan(ctx, &count))
	require.NoError(t, db.NewRaw("SELECT attending FROM rsvp_responses").Scan(ctx, &attending))
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, attending, "existing answers must not be rewritten")
	assert.Len(t, columnNames(t, db), 5)
}

func TestRunMigrationsBackfillsLegacyRows(t *testing.T) {
	db := openRaw(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE rsvp_responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			full_name TEXT NOT NULL,
			with_partner INTEGER NOT NULL DEFAULT 0
		)`)
	require.NoError(t, err)
	for _, name := range []string{"Old Guest", "Older Guest"} {
		_, err := db.ExecContext(ctx,
			"INSERT INTO rsvp_responses (created_at, full_name, with_partner) VALUES ('2023-01-01 12:00:00', ?, 1)", name)
		require.NoError(t, err)
	}

	require.NoError(t, migrations.NewRunner(db, logger.Discard()).RunMigrations(ctx))

	var values []int
	require.NoError(t, db.NewRaw("SELECT attending FROM rsvp_responses ORDER BY id").Scan(ctx, &values))
	assert.Equal(t, []int{1, 1}, values)
}

func TestRunMigrationsAddsMissingWithPartner(t *testing.T) {
	db := openRaw(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE rsvp_responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			full_name TEXT NOT NULL
		)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO rsvp_responses (created_at, full_name) VALUES ('2023-01-01 12:00:00', 'First Guest')")
	require.NoError(t, err)

	require.NoError(t, migrations.NewRunner(db, logger.Discard()).RunMigrations(ctx))

	var withPartner, attending int
	require.NoError(t, db.NewRaw("SELECT with_partner, attending FROM rsvp_responses").Scan(ctx, &withPartner, &attending))
	assert.Equal(t, 0, withPartner)
	assert.Equal(t, 1, attending)
}
