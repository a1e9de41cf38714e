// Package settings is a small versioned configuration repository for the
// wswantool CLI: a JSON-backed key/value store with schema migrations
// applied on open. It is independent of the layout compiler.
package settings
