package store

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// CreateBoard creates a board with the given column names, or the
// default column set when columnNames is nil.
func (s *Store) CreateBoard(name string, columnNames []string) (*types.Board, error) {
	if columnNames == nil {
		columnNames = types.DefaultColumnNames
	}
	columns := make([]*types.Column, 0, len(columnNames))
	for _, n := range columnNames {
		columns = append(columns, &types.Column{ID: newID("col"), Name: n})
	}
	b := &types.Board{
		ID:       newID("board"),
		Name:     name,
		Columns:  columns,
		Settings: types.DefaultBoardSettings(),
	}
	s.boards[b.ID] = b
	if err := s.persist(); err != nil {
		return nil, err
	}
	return b, nil
}

// Board returns the board with the given ID.
func (s *Store) Board(id string) (*types.Board, error) {
	b, ok := s.boards[id]
	if !ok {
		return nil, fmt.Errorf("board %s: %w", id, types.ErrNotFound)
	}
	return b, nil
}

// Boards lists boards sorted by name. Archived boards are excluded
// unless includeArchived is set; they are never deleted by archiving.
func (s *Store) Boards(includeArchived bool) []*types.Board {
	out := make([]*types.Board, 0, len(s.boards))
	for _, b := range s.boards {
		if includeArchived || !b.Archived {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RenameBoard sets a board's name.
func (s *Store) RenameBoard(id, newName string) error {
	b, err := s.Board(id)
	if err != nil {
		return err
	}
	b.Name = newName
	return s.persist()
}

// ArchiveBoard flips a board's archived flag. Archiving is soft: the
// board keeps its columns and tasks.
func (s *Store) ArchiveBoard(id string, archived bool) error {
	b, err := s.Board(id)
	if err != nil {
		return err
	}
	b.Archived = archived
	return s.persist()
}

// DeleteBoard removes a board and cascades: every task on the board is
// deleted, which in turn deletes those tasks' comments. Stories
// referenced by the deleted tasks are untouched.
func (s *Store) DeleteBoard(id string) error {
	if _, err := s.Board(id); err != nil {
		return err
	}
	var doomed []string
	for taskID, t := range s.tasks {
		if t.BoardID == id {
			doomed = append(doomed, taskID)
		}
	}
	for _, taskID := range doomed {
		s.removeTask(taskID)
	}
	delete(s.boards, id)
	return s.persist()
}

// AddColumn appends a new column to the end of a board's sequence.
func (s *Store) AddColumn(boardID, name string) (*types.Column, error) {
	b, err := s.Board(boardID)
	if err != nil {
		return nil, err
	}
	column := &types.Column{ID: newID("col"), Name: name}
	b.Columns = append(b.Columns, column)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return column, nil
}

// RemoveColumn removes a column from a board. Any task pointing at the
// removed column is reassigned to the board's first remaining column,
// or left with an empty column reference if none remain, and receives a
// column-removed history entry recording the old column ID. This repair
// is the one defined cascade for column references.
func (s *Store) RemoveColumn(boardID, columnID string) error {
	b, err := s.Board(boardID)
	if err != nil {
		return err
	}
	kept := b.Columns[:0]
	for _, c := range b.Columns {
		if c.ID != columnID {
			kept = append(kept, c)
		}
	}
	b.Columns = kept
	for _, t := range s.tasks {
		if t.ColumnID != columnID {
			continue
		}
		if len(b.Columns) > 0 {
			t.ColumnID = b.Columns[0].ID
		} else {
			t.ColumnID = ""
		}
		s.recordHistory(t, types.EventColumnRemoved, map[string]string{"column_id": columnID})
	}
	return s.persist()
}

// ReorderColumns replaces a board's column sequence with the supplied
// ordering. IDs that do not name an existing column are silently
// dropped; columns absent from the ordering are removed from the board.
func (s *Store) ReorderColumns(boardID string, columnIDs []string) error {
	b, err := s.Board(boardID)
	if err != nil {
		return err
	}
	byID := make(map[string]*types.Column, len(b.Columns))
	for _, c := range b.Columns {
		byID[c.ID] = c
	}
	reordered := make([]*types.Column, 0, len(columnIDs))
	for _, id := range columnIDs {
		if c, ok := byID[id]; ok {
			reordered = append(reordered, c)
		}
	}
	b.Columns = reordered
	return s.persist()
}
