// Package migrations embeds the SQL schema for the record store tables.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
