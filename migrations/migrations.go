// Package migrations embeds the goose SQL migrations for the postgres
// backend so the server binary can apply them at startup.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
