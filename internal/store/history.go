package store

import (
	"github.com/mesh-intelligence/kanban/pkg/types"
)

// recordHistory appends an immutable, timestamped event to a task's
// history log. The log is append-only: entries are never edited or
// removed individually, only dropped wholesale when the task is
// deleted. Callers persist after recording.
func (s *Store) recordHistory(t *types.Task, eventType string, payload map[string]string) {
	t.History = append(t.History, &types.HistoryEntry{
		ID:        newID("hist"),
		TaskID:    t.ID,
		Timestamp: s.timestamp(),
		EventType: eventType,
		Payload:   payload,
	})
}

// HistoryForTask returns a copy of a task's history log in insertion
// order, which the recorder keeps monotonic in timestamp.
func (s *Store) HistoryForTask(taskID string) ([]*types.HistoryEntry, error) {
	t, err := s.Task(taskID)
	if err != nil {
		return nil, err
	}
	return append([]*types.HistoryEntry(nil), t.History...), nil
}
