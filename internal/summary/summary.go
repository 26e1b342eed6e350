// Package summary provides the summarizer capability layer: pure
// functions that turn a time-windowed projection of tasks, comments,
// and history into review text. Summarizers are registered explicitly;
// there is no runtime code loading.
package summary

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// Summarizer produces review text from a read-only projection. A
// summarizer must not mutate the context; the store only persists the
// returned text, it does not interpret it.
type Summarizer interface {
	// Name is the stable identifier callers select a summarizer by.
	Name() string

	// Describe returns a one-line human description.
	Describe() string

	// Summarize renders the projection as text.
	Summarize(ctx types.SummaryContext) string
}

var (
	registry = make(map[string]Summarizer)
	order    []string
)

// Register adds a summarizer to the registry. Registering two
// summarizers under the same name is a programming error.
func Register(s Summarizer) {
	name := s.Name()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("summary: duplicate summarizer %q", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Lookup returns the summarizer registered under name.
func Lookup(name string) (Summarizer, bool) {
	s, ok := registry[name]
	return s, ok
}

// All returns registered summarizers in registration order.
func All() []Summarizer {
	out := make([]Summarizer, 0, len(order))
	for _, name := range order {
		out = append(out, registry[name])
	}
	return out
}

// Evidence flattens a projection's history entries and comments into
// the record maps persisted on a weekly review.
func Evidence(ctx types.SummaryContext) []map[string]any {
	out := make([]map[string]any, 0, len(ctx.History)+len(ctx.Comments))
	for _, h := range ctx.History {
		out = append(out, map[string]any{
			"id":         h.ID,
			"task_id":    h.TaskID,
			"timestamp":  h.Timestamp,
			"event_type": h.EventType,
			"payload":    h.Payload,
		})
	}
	for _, c := range ctx.Comments {
		out = append(out, map[string]any{
			"id":        c.ID,
			"task_id":   c.TaskID,
			"timestamp": c.Timestamp,
			"author":    c.Author,
			"body":      c.Body,
		})
	}
	return out
}

// StoryIDs returns the distinct story IDs of the projection's tasks,
// sorted for stable review records.
func StoryIDs(ctx types.SummaryContext) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range ctx.Tasks {
		if !seen[t.StoryID] {
			seen[t.StoryID] = true
			out = append(out, t.StoryID)
		}
	}
	sort.Strings(out)
	return out
}
