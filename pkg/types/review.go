package types

// WeeklyReview is a write-once artifact: a generated summary for a date
// range plus flattened copies of the history and comment records the
// summary was produced from. Nothing references a review after creation.
type WeeklyReview struct {
	ID              string           `json:"id"`
	BoardIDs        []string         `json:"board_ids"`
	StoryIDs        []string         `json:"story_ids"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	SummaryMarkdown string           `json:"summary_markdown"`
	Evidence        []map[string]any `json:"evidence"`
}

// SummaryContext is the read-only projection handed to summarizers:
// tasks on the reviewed board that saw activity in [StartDate, EndDate]
// (inclusive, by date-prefix comparison), plus the history entries and
// comments from that window. Summarizers must not mutate it.
type SummaryContext struct {
	StartDate string
	EndDate   string
	Tasks     []*Task
	Comments  []*Comment
	History   []*HistoryEntry
}
