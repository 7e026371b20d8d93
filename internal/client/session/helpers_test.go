package session

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE session_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return db
}
