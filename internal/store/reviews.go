package store

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// CreateWeeklyReview persists a generated summary as a write-once
// artifact. The store does not interpret the summary text; assembling
// it is the summarizer layer's job.
func (s *Store) CreateWeeklyReview(boardIDs, storyIDs []string, startDate, endDate, summaryMarkdown string, evidence []map[string]any) (*types.WeeklyReview, error) {
	if evidence == nil {
		evidence = []map[string]any{}
	}
	r := &types.WeeklyReview{
		ID:              newID("review"),
		BoardIDs:        append([]string(nil), boardIDs...),
		StoryIDs:        append([]string(nil), storyIDs...),
		StartDate:       startDate,
		EndDate:         endDate,
		SummaryMarkdown: summaryMarkdown,
		Evidence:        evidence,
	}
	s.reviews[r.ID] = r
	if err := s.persist(); err != nil {
		return nil, err
	}
	return r, nil
}

// Review returns the weekly review with the given ID.
func (s *Store) Review(id string) (*types.WeeklyReview, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id, types.ErrNotFound)
	}
	return r, nil
}

// Reviews lists weekly reviews sorted by start date, then ID.
func (s *Store) Reviews() []*types.WeeklyReview {
	out := make([]*types.WeeklyReview, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}
