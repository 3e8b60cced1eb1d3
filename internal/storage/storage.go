// Package storage opens the SQLite database and manages its schema through
// the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/config"
	"github.com/dmitrijs2005/weightkeeper/internal/filex"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/migrations"
)

// SchemaVersion is the newest migration shipped with this build.
const SchemaVersion int64 = 2

const driverName = "sqlite"

// BuildDSN appends the per-connection pragmas to dsn: foreign key
// enforcement and the busy timeout.
func BuildDSN(dsn string, busyTimeout time.Duration) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		dsn, sep, busyTimeout.Milliseconds())
}

// Open opens the database named by cfg.DatabaseDSN, creating the parent
// directory of a plain file path, and verifies it answers.
// The pool is limited to one connection, so every statement and transaction
// in the process is serialized.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if path := filex.DatabasePath(cfg.DatabaseDSN); path != "" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName, BuildDSN(cfg.DatabaseDSN, cfg.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// SetLogger routes goose output through l.
func SetLogger(l logging.Logger) {
	goose.SetLogger(logging.Goose(l))
}

// seams for testing goose calls.
var (
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
	gooseResetContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.ResetContext(ctx, db, dir, opts...)
	}
	gooseUpToContext = func(ctx context.Context, db *sql.DB, dir string, version int64, opts ...goose.OptionsFunc) error {
		return goose.UpToContext(ctx, db, dir, version, opts...)
	}
)

func prepare() error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Initialize creates every table and index that is missing. Running it on
// an up-to-date database is a no-op.
func Initialize(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return common.NewStorageError("initialize", err)
	}
	return nil
}

// Upgrade moves the schema from version from to version to by dropping
// every table, with all stored data, and recreating the schema at to.
// from == to does nothing.
func Upgrade(ctx context.Context, db *sql.DB, from, to int64) error {
	if from == to {
		return nil
	}
	if to < from {
		return common.NewValidationError("version", fmt.Sprintf("cannot downgrade from %d to %d", from, to))
	}
	if to > SchemaVersion {
		return common.NewValidationError("version", fmt.Sprintf("unknown schema version %d", to))
	}

	if err := prepare(); err != nil {
		return err
	}
	if err := gooseResetContext(ctx, db, "."); err != nil {
		return common.NewStorageError("upgrade", err)
	}
	if err := gooseUpToContext(ctx, db, ".", to); err != nil {
		return common.NewStorageError("upgrade", err)
	}
	return nil
}

// Migrate brings the schema to SchemaVersion. A database created by an
// older build is rebuilt with Upgrade, which discards its data; a fresh one
// is initialized. It returns the version found before migrating.
func Migrate(ctx context.Context, db *sql.DB) (int64, error) {
	from, err := Version(ctx, db)
	if err != nil {
		return 0, err
	}
	if from > 0 && from < SchemaVersion {
		if err := Upgrade(ctx, db, from, SchemaVersion); err != nil {
			return from, err
		}
	}
	return from, Initialize(ctx, db)
}

// Version returns the schema version recorded in the database, 0 for a
// fresh database.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if err := prepare(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, common.NewStorageError("version", err)
	}
	return v, nil
}

// IsUniqueViolation reports whether err comes from a UNIQUE or PRIMARY KEY
// constraint failure.
func IsUniqueViolation(err error) bool {
	return constraintFailed(err, "UNIQUE", sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

// IsForeignKeyViolation reports whether err comes from a FOREIGN KEY
// constraint failure.
func IsForeignKeyViolation(err error) bool {
	return constraintFailed(err, "FOREIGN KEY", sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY)
}

// constraintFailed matches the extended result code, or the primary
// SQLITE_CONSTRAINT code plus the engine message when extended codes are off.
func constraintFailed(err error, kind string, codes ...int) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), kind+" constraint failed")
}
