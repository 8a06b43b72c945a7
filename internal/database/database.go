// Package database opens the SQLite store backing the RSVP service.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-rsvp/internal/database/migrations"
	"ms-rsvp/internal/logger"
)

// Open opens (creating if needed) the database at path and brings its schema up
// to date. path may also be an SQLite URI such as "file:x?mode=memory&cache=shared".
func Open(ctx context.Context, path string, log *logger.Logger) (*bun.DB, error) {
	if !isMemory(path) {
		if err := os.MkdirAll(filepath.Dir(filePath(path)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection at a time: SQLite allows a single writer and every
	// operation takes and returns the connection within its own call.
	sqldb.SetMaxOpenConns(1)

	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	if err := migrations.NewRunner(bunDB, log).RunMigrations(ctx); err != nil {
		bunDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.LogDatabase("OPEN", path, "database ready")
	return bunDB, nil
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// filePath strips the "file:" scheme and query of an SQLite URI.
func filePath(path string) string {
	if !strings.HasPrefix(path, "file:") {
		return path
	}
	path = strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}
