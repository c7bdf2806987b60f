// Package assets embeds the shipped puzzle files and SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed puzzles/*.puzzle sql/*.sql
var FS embed.FS

// Puzzles returns the embedded puzzle directory (*.puzzle files at its root).
func Puzzles() fs.FS {
	sub, err := fs.Sub(FS, "puzzles")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrations returns the embedded SQL migrations (*.sql files at its root).
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}
