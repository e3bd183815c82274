// Package migrations embeds the SQL schema so the server binary can run
// standalone and create its own tables on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
