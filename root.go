// Package userboard exposes build-time assets embedded at the repository root.
package userboard

import "embed"

// Migrations contains the goose SQL migrations shipped with the binary.
//
//go:embed migrations
var Migrations embed.FS
