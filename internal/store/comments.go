package store

import (
	"fmt"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// AddComment attaches a comment to a task, stamped with the current
// time. The task must exist.
func (s *Store) AddComment(taskID, author, body string) (*types.Comment, error) {
	if _, err := s.Task(taskID); err != nil {
		return nil, err
	}
	c := &types.Comment{
		ID:        newID("cmt"),
		TaskID:    taskID,
		Timestamp: s.timestamp(),
		Author:    author,
		Body:      body,
	}
	s.comments[c.ID] = c
	if err := s.persist(); err != nil {
		return nil, err
	}
	return c, nil
}

// Comment returns the comment with the given ID.
func (s *Store) Comment(id string) (*types.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s: %w", id, types.ErrNotFound)
	}
	return c, nil
}

// EditComment replaces a comment's body. The previous body and the
// timestamp it was visible under are appended to the comment's edit
// log, and the visible timestamp is refreshed to the edit time.
func (s *Store) EditComment(id, newBody string) error {
	c, err := s.Comment(id)
	if err != nil {
		return err
	}
	c.EditedHistory = append(c.EditedHistory, types.CommentRevision{
		Timestamp: c.Timestamp,
		Body:      c.Body,
	})
	c.Body = newBody
	c.Timestamp = s.timestamp()
	return s.persist()
}

// DeleteComment removes a comment outright. Its edit log goes with it;
// nothing else references comments, so no cascade occurs.
func (s *Store) DeleteComment(id string) error {
	if _, err := s.Comment(id); err != nil {
		return err
	}
	delete(s.comments, id)
	return s.persist()
}
