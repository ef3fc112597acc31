// Package migrations embeds the SQL schema for the SQLite key-value backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
