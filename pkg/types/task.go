package types

// History event types recorded on tracked task transitions. The
// event_type field is an open string domain; these constants name the
// events the store itself emits.
const (
	EventCreated       = "created"
	EventColumnMoved   = "column-moved"
	EventColumnRemoved = "column-removed"
	EventRehome        = "rehome"
	EventArchived      = "archived"
	EventUnarchived    = "unarchived"
)

// HistoryEntry is one immutable, timestamped event in a task's history
// log. Entries are never edited or removed individually; they disappear
// only when the owning task is deleted.
type HistoryEntry struct {
	ID        string            `json:"id"`
	TaskID    string            `json:"task_id"`
	Timestamp string            `json:"timestamp"`
	EventType string            `json:"event_type"`
	Payload   map[string]string `json:"payload"`
}

// Task is the atomic unit of work. Its ID is sequential per story code
// (CODE-001, CODE-002, ...); board, column, and story are weak
// references mutable via the store's move and rehome operations.
type Task struct {
	ID          string          `json:"id"`
	BoardID     string          `json:"board_id"`
	ColumnID    string          `json:"column_id"`
	StoryID     string          `json:"story_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"`
	Estimate    string          `json:"estimate"`
	DueDate     *string         `json:"due_date"`
	Tags        []string        `json:"tags"`
	Archived    bool            `json:"archived"`
	Color       *string         `json:"color"`
	History     []*HistoryEntry `json:"history"`
}
