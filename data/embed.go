// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// Package data embeds the SQL schema migrations into the binary.
package data

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations returns the migration files rooted at the migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}
