// Package integration exercises the full workflow across packages: open
// a store, build out a board, track work, generate a weekly review, and
// round-trip the snapshot through export and import.
package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kanban/internal/store"
	"github.com/mesh-intelligence/kanban/internal/summary"
	"github.com/mesh-intelligence/kanban/pkg/types"
)

// reviewWindow brackets the current day so operations performed during
// the test always fall inside it, even across a midnight rollover.
func reviewWindow() (start, end string) {
	now := time.Now().UTC()
	return now.AddDate(0, 0, -1).Format(types.DateFormat),
		now.AddDate(0, 0, 1).Format(types.DateFormat)
}

func TestFullLifecycle(t *testing.T) {
	snapshotPath := filepath.Join(t.TempDir(), "kanban.json")
	s, err := store.Open(snapshotPath)
	require.NoError(t, err)

	// Board and story setup.
	board, err := s.CreateBoard("Product", []string{"Todo", "Doing", "Done"})
	require.NoError(t, err)
	story, err := s.CreateStory("AUTH", "Authentication work", map[string]any{
		"status": types.StatusActive,
	})
	require.NoError(t, err)

	// Work a task through the board.
	task, err := s.CreateTask(board.ID, board.Columns[0].ID, story.ID, "Add login form", nil)
	require.NoError(t, err)
	assert.Equal(t, "AUTH-001", task.ID)

	require.NoError(t, s.MoveTask(task.ID, board.Columns[1].ID))
	_, err = s.AddComment(task.ID, "me", "Blocked on design review.")
	require.NoError(t, err)
	require.NoError(t, s.MoveTask(task.ID, board.Columns[2].ID))

	// Generate and persist a weekly review.
	start, end := reviewWindow()
	window, err := s.SummaryWindow(board.ID, start, end)
	require.NoError(t, err)
	require.Len(t, window.Tasks, 1)

	summarizer, ok := summary.Lookup("markdown")
	require.True(t, ok)
	text := summarizer.Summarize(window)
	assert.Contains(t, text, "# Weekly Summary")
	assert.Contains(t, text, "AUTH-001: Blocked on design review.")

	review, err := s.CreateWeeklyReview([]string{board.ID}, summary.StoryIDs(window),
		start, end, text, summary.Evidence(window))
	require.NoError(t, err)
	assert.Equal(t, []string{story.ID}, review.StoryIDs)
	assert.NotEmpty(t, review.Evidence)

	// Everything survives a reopen from disk.
	reopened, err := store.Open(snapshotPath)
	require.NoError(t, err)

	gotTask, err := reopened.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, board.Columns[2].ID, gotTask.ColumnID)
	assert.Len(t, gotTask.History, 3)

	gotReview, err := reopened.Review(review.ID)
	require.NoError(t, err)
	assert.Equal(t, text, gotReview.SummaryMarkdown)

	// Numbering continues after reopen, never restarting.
	next, err := reopened.CreateTask(board.ID, board.Columns[0].ID, story.ID, "Add logout", nil)
	require.NoError(t, err)
	assert.Equal(t, "AUTH-002", next.ID)
}

func TestExportImportAcrossStores(t *testing.T) {
	dir := t.TempDir()
	src, err := store.Open(filepath.Join(dir, "src.json"))
	require.NoError(t, err)

	board, err := src.CreateBoard("Shared", nil)
	require.NoError(t, err)
	story, err := src.CreateStory("OPS", "Operations", nil)
	require.NoError(t, err)
	task, err := src.CreateTask(board.ID, board.Columns[0].ID, story.ID, "Rotate certs", nil)
	require.NoError(t, err)

	exportPath := filepath.Join(dir, "export.json")
	require.NoError(t, src.ExportTo(exportPath))

	// Replace-import into a fresh store reproduces the graph.
	dst, err := store.Open(filepath.Join(dir, "dst.json"))
	require.NoError(t, err)
	require.NoError(t, dst.ImportFrom(exportPath, false))

	got, err := dst.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rotate certs", got.Title)

	// Merge-import of the same file is idempotent.
	require.NoError(t, dst.ImportFrom(exportPath, true))
	assert.Len(t, dst.TasksForBoard(board.ID, true), 1)

	// A divergent local task keeps its own number after merging.
	local, err := dst.CreateTask(board.ID, board.Columns[0].ID, story.ID, "Local addition", nil)
	require.NoError(t, err)
	assert.Equal(t, "OPS-002", local.ID)
}
