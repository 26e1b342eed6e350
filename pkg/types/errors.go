package types

import "errors"

// Store operation errors. Callers match with errors.Is; the store wraps
// these with entity-specific context.
var (
	// ErrNotFound is returned by referential lookups when the ID is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrSchemaMismatch is returned by import when the document's
	// schema_version differs from SchemaVersion. The wrapping error
	// carries the unexpected version string.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)
