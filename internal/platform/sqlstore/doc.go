// Package sqlstore provides SQL-backed implementations of the store
// interfaces on top of database/sql. Production deployments run against
// PostgreSQL through the pgx driver; the queries stick to the `$N`
// placeholder and RETURNING dialect that SQLite also accepts, which lets the
// package tests run against an in-process database.
//
// The database handle is owned by whoever constructs the stores and must
// outlive all calls.
package sqlstore
