// Package assets holds data files compiled into the binary.
package assets

import _ "embed"

// DefaultConfig is the built-in game configuration: map size, spawn
// weights and every ship definition.
//
//go:embed ships.yaml
var DefaultConfig []byte
