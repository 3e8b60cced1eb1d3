// Package storagetest opens migrated SQLite databases for tests.
package storagetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weightkeeper/internal/config"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/storage"
)

// NewDB returns an initialized database in a fresh temporary file. It is
// closed when the test ends.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	storage.SetLogger(logging.Discard())
	cfg := &config.Config{
		DatabaseDSN: filepath.Join(t.TempDir(), "weightkeeper.db"),
		BusyTimeout: time.Second,
	}
	db, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.Initialize(context.Background(), db))
	return db
}

// InsertAccount adds a bare account row and returns its id.
func InsertAccount(t testing.TB, db *sql.DB, username string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (username, password, phone, role) VALUES (?, 'x', '', 'user')`, username)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
