package types

// CommentRevision is a prior body of an edited comment together with
// the timestamp the comment carried before the edit.
type CommentRevision struct {
	Timestamp string `json:"timestamp"`
	Body      string `json:"body"`
}

// Comment is a note on a task. The visible timestamp always reflects
// the latest edit; every prior version is preserved in the append-only
// edit log. Comments are owned by exactly one task and deleted with it.
type Comment struct {
	ID            string            `json:"id"`
	TaskID        string            `json:"task_id"`
	Timestamp     string            `json:"timestamp"`
	Author        string            `json:"author"`
	Body          string            `json:"body"`
	EditedHistory []CommentRevision `json:"edited_history"`
}
