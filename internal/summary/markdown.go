package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

// Markdown is the built-in summarizer: a heuristic weekly summary in
// markdown, no external services involved.
type Markdown struct{}

func init() {
	Register(Markdown{})
}

// Name implements Summarizer.
func (Markdown) Name() string { return "markdown" }

// Describe implements Summarizer.
func (Markdown) Describe() string {
	return "Summarize progress in the period using local heuristics."
}

// Summarize implements Summarizer.
func (Markdown) Summarize(ctx types.SummaryContext) string {
	if len(ctx.Tasks) == 0 && len(ctx.Comments) == 0 && len(ctx.History) == 0 {
		return "# Weekly Summary\n\nNo material changes for the selected period."
	}

	lines := []string{
		"# Weekly Summary",
		"",
		"## Executive Summary",
		fmt.Sprintf("Reviewed tasks between %s and %s.", ctx.StartDate, ctx.EndDate),
		"Key updates captured below.",
	}

	lines = append(lines, "", "## Highlights by Story")
	counts := make(map[string]int)
	var storyOrder []string
	for _, t := range ctx.Tasks {
		if counts[t.StoryID] == 0 {
			storyOrder = append(storyOrder, t.StoryID)
		}
		counts[t.StoryID]++
	}
	for _, storyID := range storyOrder {
		lines = append(lines, fmt.Sprintf("- Story %s: %d task(s) touched.", storyID, counts[storyID]))
	}

	lines = append(lines, "", "## Completed Tasks")
	var completed []string
	for _, t := range ctx.Tasks {
		for _, h := range t.History {
			if h.EventType == types.EventColumnMoved &&
				strings.HasPrefix(strings.ToLower(h.Payload["column_id"]), "done") {
				completed = append(completed, t.ID)
				break
			}
		}
	}
	if len(completed) > 0 {
		for _, id := range completed {
			lines = append(lines, "- "+id)
		}
	} else {
		lines = append(lines, "- None in this period.")
	}

	lines = append(lines, "", "## Blockers / Risks")
	var blockers []*types.Comment
	for _, c := range ctx.Comments {
		if strings.Contains(strings.ToLower(c.Body), "block") {
			blockers = append(blockers, c)
		}
	}
	if len(blockers) > 0 {
		for _, c := range blockers {
			lines = append(lines, fmt.Sprintf("- %s: %s", c.TaskID, c.Body))
		}
	} else {
		lines = append(lines, "- No blockers recorded.")
	}

	lines = append(lines, "", "## Next Likely Steps")
	if len(ctx.Tasks) > 0 {
		lines = append(lines, "- Continue progressing active tasks toward Done.")
	} else {
		lines = append(lines, "- Await new activity.")
	}

	lines = append(lines, "", "## Evidence Appendix")
	for _, h := range ctx.History {
		parts := []string{"-", h.Timestamp, h.EventType}
		if payload := formatPayload(h.Payload); payload != "" {
			parts = append(parts, payload)
		}
		parts = append(parts, fmt.Sprintf("(Task %s)", h.TaskID))
		lines = append(lines, strings.Join(parts, " "))
	}
	for _, c := range ctx.Comments {
		lines = append(lines, fmt.Sprintf("- %s Comment on %s: %s", c.Timestamp, c.TaskID, c.Body))
	}

	return strings.Join(lines, "\n")
}

// formatPayload renders an event payload as sorted key=value pairs.
func formatPayload(payload map[string]string) string {
	if len(payload) == 0 {
		return ""
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+payload[k])
	}
	return strings.Join(parts, " ")
}
