//go:build ignore

package main

// This file exists solely to provide a go:generate directive at the project root.
// Run `go generate` to re-render the sample screens into screens/frames.
//
// Usage:
//   go generate
//
// Single screens can be rendered directly:
//   go run ./cmd/lcd render -o screens/frames screens/menu.toml

//go:generate go run ./cmd/lcd render -o screens/frames screens/menu.toml screens/settings.toml
