// Package migrations holds the results database schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
