package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newID returns a globally unique opaque ID tagged with an entity-kind
// prefix for debuggability, e.g. "board_0f8fad5bd9cb469fa1654080552d8a8".
func newID(kind string) string {
	return kind + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// nextTaskID issues the next sequential task ID for a story code,
// formatted CODE-001, CODE-002, ... (the number grows past three digits
// without truncation). The counter is monotonic per code and never
// resets, even across story deletion and recreation. Callers must
// consume the returned ID immediately: validate inputs first, allocate
// last.
func (s *Store) nextTaskID(code string) string {
	seq := s.sequences[code] + 1
	s.sequences[code] = seq
	return fmt.Sprintf("%s-%03d", code, seq)
}

// ensureSequence initializes the sequence counter for a code if absent.
// Existing counters are never lowered.
func (s *Store) ensureSequence(code string) {
	if _, ok := s.sequences[code]; !ok {
		s.sequences[code] = 0
	}
}
