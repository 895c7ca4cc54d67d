// Package migrations holds the goose SQL migrations of the submissions
// schema, embedded so the server and the integration tests apply the same
// files without depending on the working directory.
package migrations

import "embed"

// FS contains every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
