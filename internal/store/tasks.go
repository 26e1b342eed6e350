package store

import (
	"fmt"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// CreateTask creates a task on a board, in a column, under a story. The
// story resolves the sequential ID; board and column must exist at
// assignment time. The new task's history opens with a created entry
// capturing the board and column at creation.
//
// The optional field patch accepts the same keys as UpdateTask.
func (s *Store) CreateTask(boardID, columnID, storyID, title string, fields map[string]any) (*types.Task, error) {
	st, err := s.Story(storyID)
	if err != nil {
		return nil, err
	}
	b, err := s.Board(boardID)
	if err != nil {
		return nil, err
	}
	if b.ColumnByID(columnID) == nil {
		return nil, fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
	}
	// All references verified; the sequential ID is allocated last so a
	// failed create never leaves a speculative gap in the sequence.
	t := &types.Task{
		ID:       s.nextTaskID(st.Code),
		BoardID:  boardID,
		ColumnID: columnID,
		StoryID:  storyID,
		Title:    title,
	}
	applyTaskPatch(t, fields)
	s.recordHistory(t, types.EventCreated, map[string]string{
		"board_id":  boardID,
		"column_id": columnID,
	})
	s.tasks[t.ID] = t
	if err := s.persist(); err != nil {
		return nil, err
	}
	return t, nil
}

// Task returns the task with the given ID.
func (s *Store) Task(id string) (*types.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, types.ErrNotFound)
	}
	return t, nil
}

// UpdateTask applies a field patch to a task. Unknown keys are ignored;
// no history is emitted (history is reserved for the tracked
// transitions: move, rehome, archive, column removal).
func (s *Store) UpdateTask(id string, fields map[string]any) error {
	t, err := s.Task(id)
	if err != nil {
		return err
	}
	applyTaskPatch(t, fields)
	return s.persist()
}

// MoveTask moves a task to another column on its board and records a
// column-moved history entry. Moving to the current column is a no-op.
// This is the only path for column changes, so history stays complete.
func (s *Store) MoveTask(id, newColumnID string) error {
	t, err := s.Task(id)
	if err != nil {
		return err
	}
	if t.ColumnID == newColumnID {
		return nil
	}
	if b, err := s.Board(t.BoardID); err == nil && b.ColumnByID(newColumnID) == nil {
		return fmt.Errorf("column %s: %w", newColumnID, types.ErrNotFound)
	}
	t.ColumnID = newColumnID
	s.recordHistory(t, types.EventColumnMoved, map[string]string{"column_id": newColumnID})
	return s.persist()
}

// RehomeTask moves a task to a different story. Task IDs are sequential
// per story code, so rehoming mints a new ID under the target story's
// sequence, appends a rehome marker to the original record, and copies
// every field and the entire history into the replacement. The old ID
// no longer resolves afterward; the returned task is the new identity.
func (s *Store) RehomeTask(id, targetStoryID string) (*types.Task, error) {
	t, err := s.Task(id)
	if err != nil {
		return nil, err
	}
	target, err := s.Story(targetStoryID)
	if err != nil {
		return nil, err
	}
	newTaskID := s.nextTaskID(target.Code)
	s.recordHistory(t, types.EventRehome, map[string]string{"new_task_id": newTaskID})
	moved := &types.Task{
		ID:          newTaskID,
		BoardID:     t.BoardID,
		ColumnID:    t.ColumnID,
		StoryID:     targetStoryID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Estimate:    t.Estimate,
		Tags:        append([]string(nil), t.Tags...),
		Archived:    t.Archived,
		History:     append([]*types.HistoryEntry(nil), t.History...),
	}
	if t.DueDate != nil {
		due := *t.DueDate
		moved.DueDate = &due
	}
	if t.Color != nil {
		color := *t.Color
		moved.Color = &color
	}
	s.tasks[newTaskID] = moved
	delete(s.tasks, id)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return moved, nil
}

// ArchiveTask flips a task's archived flag and records an archived or
// unarchived history entry.
func (s *Store) ArchiveTask(id string, archived bool) error {
	t, err := s.Task(id)
	if err != nil {
		return err
	}
	t.Archived = archived
	event := types.EventArchived
	if !archived {
		event = types.EventUnarchived
	}
	s.recordHistory(t, event, map[string]string{})
	return s.persist()
}

// DeleteTask removes a task and all its comments. No history is
// appended; nothing remains to append to.
func (s *Store) DeleteTask(id string) error {
	if _, err := s.Task(id); err != nil {
		return err
	}
	s.removeTask(id)
	return s.persist()
}

// removeTask drops a task and its comments from the graph without
// persisting. Cascading deletes go through here; an already-absent
// dependent is simply skipped.
func (s *Store) removeTask(id string) {
	for commentID, c := range s.comments {
		if c.TaskID == id {
			delete(s.comments, commentID)
		}
	}
	delete(s.tasks, id)
}

// applyTaskPatch copies recognized keys from a field patch onto a task.
// Unrecognized keys and mistyped values are ignored. The ID and the
// history log are not patchable.
func applyTaskPatch(t *types.Task, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "board_id":
			if v, ok := value.(string); ok {
				t.BoardID = v
			}
		case "column_id":
			if v, ok := value.(string); ok {
				t.ColumnID = v
			}
		case "story_id":
			if v, ok := value.(string); ok {
				t.StoryID = v
			}
		case "title":
			if v, ok := value.(string); ok {
				t.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				t.Description = v
			}
		case "priority":
			if v, ok := value.(string); ok {
				t.Priority = v
			}
		case "estimate":
			if v, ok := value.(string); ok {
				t.Estimate = v
			}
		case "due_date":
			switch v := value.(type) {
			case string:
				t.DueDate = &v
			case nil:
				t.DueDate = nil
			}
		case "color":
			switch v := value.(type) {
			case string:
				t.Color = &v
			case nil:
				t.Color = nil
			}
		case "tags":
			if v, ok := toStringSlice(value); ok {
				t.Tags = v
			}
		case "archived":
			if v, ok := value.(bool); ok {
				t.Archived = v
			}
		}
	}
}

// toStringSlice normalizes a patch value to []string, accepting both
// []string and the []any produced by JSON decoding.
func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}
