package types

// Well-known story status values. The status field is an open string
// domain; these constants name the values the tool itself uses, but the
// store accepts any string.
const (
	StatusPlanned = "Planned"
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
	StatusDone    = "Done"
)

// DefaultStoryColor is the display color assigned to new stories.
const DefaultStoryColor = "#007ACC"

// Story groups related tasks under a human code (e.g. "PROJ"). Tasks
// created under a story are numbered sequentially per code; the
// sequence counter outlives the story itself.
type Story struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	Archived    bool     `json:"archived"`
}
