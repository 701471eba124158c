// Package builtin embeds the icon packs that ship with the binary.
package builtin

import "embed"

// FS holds the embedded packs, one directory per pack.
//
//go:embed outline solid
var FS embed.FS

// Packs lists the embedded pack directory names.
var Packs = []string{"outline", "solid"}
