// Package migrations embeds the schema migration scripts so the binary
// can bring the database up to date on startup without shipping the
// SQL files alongside it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
