// Package migrations embeds the SQL migrations owned by the auth subsystem.
// Only the users table lives here; the logistics entities' schema is managed
// elsewhere.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
