// Package migrations embeds the SQL schema migrations so the migrate CLI,
// the server and the integration tests all apply the same files.
package migrations

import "embed"

// FS holds every *.up.sql and *.down.sql file of this directory
//
//go:embed *.sql
var FS embed.FS
