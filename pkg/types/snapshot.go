package types

// SchemaVersion is the snapshot format version this store reads and
// writes. Import rejects any document carrying a different version.
const SchemaVersion = "1.0"

// Snapshot is the single structured document representing the entire
// entity graph at a point in time. The backing file, exports, and
// imports all use this shape.
type Snapshot struct {
	Boards         []*Board        `json:"boards"`
	Stories        []*Story        `json:"stories"`
	Tasks          []*Task         `json:"tasks"`
	Comments       []*Comment      `json:"comments"`
	WeeklyReviews  []*WeeklyReview `json:"weekly_reviews"`
	StorySequences map[string]int  `json:"story_sequences"`
	SchemaVersion  string          `json:"schema_version"`
}
