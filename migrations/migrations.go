// Package migrations embeds the database schema migrations.
package migrations

import "embed"

// FS holds the golang-migrate SQL files.
//
//go:embed *.sql
var FS embed.FS
