// Package types defines the entity types, snapshot document, and standard
// errors for the kanban domain store. Entities carry the JSON tags of the
// snapshot format directly; the structs in this package are the wire format.
package types
