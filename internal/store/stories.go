package store

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// CreateStory creates a story under the given code and ensures a
// sequence counter exists for that code. The optional field patch
// accepts the same keys as UpdateStory.
func (s *Store) CreateStory(code, title string, fields map[string]any) (*types.Story, error) {
	st := &types.Story{
		ID:     newID("story"),
		Code:   code,
		Title:  title,
		Color:  types.DefaultStoryColor,
		Status: types.StatusPlanned,
	}
	applyStoryPatch(st, fields)
	s.stories[st.ID] = st
	s.ensureSequence(st.Code)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return st, nil
}

// Story returns the story with the given ID.
func (s *Store) Story(id string) (*types.Story, error) {
	st, ok := s.stories[id]
	if !ok {
		return nil, fmt.Errorf("story %s: %w", id, types.ErrNotFound)
	}
	return st, nil
}

// StoryByCode returns the story with the given code. Codes are not
// indexed; a linear scan is fine at this data scale.
func (s *Store) StoryByCode(code string) (*types.Story, error) {
	for _, st := range s.stories {
		if st.Code == code {
			return st, nil
		}
	}
	return nil, fmt.Errorf("story code %s: %w", code, types.ErrNotFound)
}

// Stories lists stories sorted by code. Archived stories are excluded
// unless includeArchived is set.
func (s *Store) Stories(includeArchived bool) []*types.Story {
	out := make([]*types.Story, 0, len(s.stories))
	for _, st := range s.stories {
		if includeArchived || !st.Archived {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpdateStory applies a field patch to a story. Unknown keys are
// ignored. Patching the code ensures a sequence counter for the new
// code; the old code's counter is kept, never reset.
func (s *Store) UpdateStory(id string, fields map[string]any) error {
	st, err := s.Story(id)
	if err != nil {
		return err
	}
	applyStoryPatch(st, fields)
	if _, ok := fields["code"]; ok {
		s.ensureSequence(st.Code)
	}
	return s.persist()
}

// ArchiveStory flips a story's archived flag.
func (s *Store) ArchiveStory(id string, archived bool) error {
	st, err := s.Story(id)
	if err != nil {
		return err
	}
	st.Archived = archived
	return s.persist()
}

// DeleteStory removes a story and cascades: every task under the story
// is deleted along with its comments. The story's sequence counter
// survives so task IDs are never reissued.
func (s *Store) DeleteStory(id string) error {
	if _, err := s.Story(id); err != nil {
		return err
	}
	var doomed []string
	for taskID, t := range s.tasks {
		if t.StoryID == id {
			doomed = append(doomed, taskID)
		}
	}
	for _, taskID := range doomed {
		s.removeTask(taskID)
	}
	delete(s.stories, id)
	return s.persist()
}

// applyStoryPatch copies recognized keys from a field patch onto a
// story. Unrecognized keys and mistyped values are ignored.
func applyStoryPatch(st *types.Story, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "code":
			if v, ok := value.(string); ok {
				st.Code = v
			}
		case "title":
			if v, ok := value.(string); ok {
				st.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				st.Description = v
			}
		case "color":
			if v, ok := value.(string); ok {
				st.Color = v
			}
		case "status":
			if v, ok := value.(string); ok {
				st.Status = v
			}
		case "tags":
			if v, ok := toStringSlice(value); ok {
				st.Tags = v
			}
		case "archived":
			if v, ok := value.(bool); ok {
				st.Archived = v
			}
		}
	}
}
