package sqlstore_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// testSchema mirrors the goose migration, in the dialect SQLite accepts.
// Foreign keys are intentionally not enforced here; the stores under test do
// not rely on them.
const testSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	login_id TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL
);
CREATE TABLE question (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	writer TEXT NOT NULL,
	writer_id INTEGER NOT NULL,
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE reply (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	question_id INTEGER NOT NULL,
	writer TEXT NOT NULL,
	content TEXT NOT NULL,
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);
`

// newTestDB opens an in-process SQLite database with the board schema.
// A single connection is enforced so every statement sees the same
// in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return db
}
