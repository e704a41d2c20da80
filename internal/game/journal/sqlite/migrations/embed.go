package migrations

import "embed"

// FS contains embedded SQLite migrations for journal storage.
//
//go:embed *.sql
var FS embed.FS
