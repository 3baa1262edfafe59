// Package migrations embeds the SQL schema migrations and applies them with
// goose at start-up, one directory per dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration for dialect to db.
func Up(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	gooseDialect, dir, err := target(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}

func target(dialect dbx.Dialect) (gooseDialect, dir string, err error) {
	switch dialect {
	case dbx.DialectPostgres:
		return "postgres", "postgres", nil
	case dbx.DialectSQLite:
		return "sqlite3", "sqlite", nil
	}
	return "", "", fmt.Errorf("no migrations for dialect %q", dialect)
}
