package store

import (
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// TasksForBoard lists the tasks on a board, sorted by ID. Archived
// tasks are excluded unless includeArchived is set.
func (s *Store) TasksForBoard(boardID string, includeArchived bool) []*types.Task {
	var out []*types.Task
	for _, t := range s.tasks {
		if t.BoardID == boardID && (includeArchived || !t.Archived) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TasksForStory lists the tasks under a story, sorted by ID. Archived
// tasks are excluded unless includeArchived is set.
func (s *Store) TasksForStory(storyID string, includeArchived bool) []*types.Task {
	var out []*types.Task
	for _, t := range s.tasks {
		if t.StoryID == storyID && (includeArchived || !t.Archived) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CommentsForTask lists a task's comments sorted ascending by visible
// timestamp. Timestamps sort chronologically as strings.
func (s *Store) CommentsForTask(taskID string) []*types.Comment {
	var out []*types.Comment
	for _, c := range s.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SummaryWindow assembles the read-only projection handed to the
// summarizer layer: every task on the board (archived included) with at
// least one history entry dated inside [startDate, endDate], plus the
// history entries and comments from that window. Membership is decided
// by date-prefix comparison, inclusive on both ends.
func (s *Store) SummaryWindow(boardID, startDate, endDate string) (types.SummaryContext, error) {
	if _, err := s.Board(boardID); err != nil {
		return types.SummaryContext{}, err
	}
	window := types.SummaryContext{StartDate: startDate, EndDate: endDate}
	for _, t := range s.TasksForBoard(boardID, true) {
		touched := false
		for _, h := range t.History {
			if inWindow(h.Timestamp, startDate, endDate) {
				touched = true
				break
			}
		}
		if !touched {
			continue
		}
		window.Tasks = append(window.Tasks, t)
		for _, h := range t.History {
			if inWindow(h.Timestamp, startDate, endDate) {
				window.History = append(window.History, h)
			}
		}
		for _, c := range s.CommentsForTask(t.ID) {
			if inWindow(c.Timestamp, startDate, endDate) {
				window.Comments = append(window.Comments, c)
			}
		}
	}
	return window, nil
}

// inWindow reports whether a timestamp's date prefix falls within
// [start, end] inclusive.
func inWindow(timestamp, start, end string) bool {
	day := timestamp
	if len(day) > len(types.DateFormat) {
		day = day[:len(types.DateFormat)]
	}
	return day >= start && day <= end
}
