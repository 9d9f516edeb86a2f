// Package migrations embeds the SQL that creates the registry schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
