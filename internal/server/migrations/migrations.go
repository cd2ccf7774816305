// Package migrations embeds the goose SQL migrations for the portfolio
// schema. They are applied once at startup by the repository manager.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
