package migrations

import "embed"

// FS contains embedded SQLite migrations for click storage.
//
//go:embed *.sql
var FS embed.FS
