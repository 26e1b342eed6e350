// Package store implements the kanban domain store: entity lifecycle,
// sequential task identifiers, append-only task history, cross-entity
// cascades, and snapshot persistence to a single JSON document.
//
// The store is single-actor and synchronous. Every mutating operation
// rewrites the backing file in full before returning, so callers may
// treat each operation as durable on return. There is no locking
// against other processes; exactly one process owns the file at a time.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// Store owns the in-memory entity graph and its backing snapshot file.
type Store struct {
	path string

	boards    map[string]*types.Board
	stories   map[string]*types.Story
	tasks     map[string]*types.Task
	comments  map[string]*types.Comment
	reviews   map[string]*types.WeeklyReview
	sequences map[string]int

	// now supplies timestamps; overridden in tests for determinism.
	now func() time.Time
}

// Open loads the snapshot at path into a new Store. The parent
// directory is created if missing. If the file does not exist the store
// bootstraps an empty graph and persists it immediately; an unparsable
// file is a fatal initialization error.
func Open(path string) (*Store, error) {
	s := &Store{
		path:      path,
		boards:    make(map[string]*types.Board),
		stories:   make(map[string]*types.Story),
		tasks:     make(map[string]*types.Task),
		comments:  make(map[string]*types.Comment),
		reviews:   make(map[string]*types.WeeklyReview),
		sequences: make(map[string]int),
		now:       time.Now,
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing snapshot file.
func (s *Store) Path() string {
	return s.path
}

// Save persists the current graph. Mutating operations persist on their
// own; Save exists for callers that mutated entities in place.
func (s *Store) Save() error {
	return s.persist()
}

// timestamp returns the current time in the snapshot's UTC format.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(types.TimestampFormat)
}
