package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

func TestTasksForBoard(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	other, err := s.CreateBoard("Other", nil)
	require.NoError(t, err)

	t1, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "one", nil)
	require.NoError(t, err)
	t2, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "two", nil)
	require.NoError(t, err)
	_, err = s.CreateTask(other.ID, other.Columns[0].ID, st.ID, "elsewhere", nil)
	require.NoError(t, err)
	require.NoError(t, s.ArchiveTask(t2.ID, true))

	active := s.TasksForBoard(b.ID, false)
	require.Len(t, active, 1)
	assert.Equal(t, t1.ID, active[0].ID)

	all := s.TasksForBoard(b.ID, true)
	require.Len(t, all, 2)
	assert.Equal(t, t1.ID, all[0].ID)
	assert.Equal(t, t2.ID, all[1].ID)
}

func TestTasksForStory(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	other, err := s.CreateStory("XYZ", "other story", nil)
	require.NoError(t, err)

	mine, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "mine", nil)
	require.NoError(t, err)
	_, err = s.CreateTask(b.ID, b.Columns[0].ID, other.ID, "theirs", nil)
	require.NoError(t, err)

	got := s.TasksForStory(st.ID, false)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestCommentsForTaskSortedByTimestamp(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "host", nil)
	require.NoError(t, err)

	first, err := s.AddComment(task.ID, "me", "earliest")
	require.NoError(t, err)
	second, err := s.AddComment(task.ID, "me", "middle")
	require.NoError(t, err)
	third, err := s.AddComment(task.ID, "me", "latest")
	require.NoError(t, err)

	// Editing the first comment refreshes its visible timestamp, which
	// moves it to the end of the ordering.
	require.NoError(t, s.EditComment(first.ID, "earliest, revised"))

	got := s.CommentsForTask(task.ID)
	require.Len(t, got, 3)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, third.ID, got[1].ID)
	assert.Equal(t, first.ID, got[2].ID)
}

func TestSummaryWindow(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")

	// The stub clock starts on 2026-08-20, so everything created here
	// lands on that date.
	inside, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "inside", nil)
	require.NoError(t, err)
	require.NoError(t, s.MoveTask(inside.ID, b.Columns[1].ID))
	_, err = s.AddComment(inside.ID, "me", "progress note")
	require.NoError(t, err)

	archived, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "archived but touched", nil)
	require.NoError(t, err)
	require.NoError(t, s.ArchiveTask(archived.ID, true))

	window, err := s.SummaryWindow(b.ID, "2026-08-17", "2026-08-23")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-17", window.StartDate)
	assert.Equal(t, "2026-08-23", window.EndDate)

	// Archived tasks still count when their history falls in the window.
	require.Len(t, window.Tasks, 2)
	assert.Equal(t, inside.ID, window.Tasks[0].ID)
	assert.Equal(t, archived.ID, window.Tasks[1].ID)
	assert.Len(t, window.History, 4)
	require.Len(t, window.Comments, 1)
	assert.Equal(t, "progress note", window.Comments[0].Body)
}

func TestSummaryWindowExcludesOutOfRange(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	_, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "outside", nil)
	require.NoError(t, err)

	window, err := s.SummaryWindow(b.ID, "2026-01-01", "2026-01-07")
	require.NoError(t, err)
	assert.Empty(t, window.Tasks)
	assert.Empty(t, window.History)
	assert.Empty(t, window.Comments)
}

func TestSummaryWindowBoundsAreInclusive(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "edge", nil)
	require.NoError(t, err)
	day := task.History[0].Timestamp[:len(types.DateFormat)]

	window, err := s.SummaryWindow(b.ID, day, day)
	require.NoError(t, err)
	assert.Len(t, window.Tasks, 1)
}

func TestSummaryWindowUnknownBoard(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SummaryWindow("board_missing", "2026-08-17", "2026-08-23")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
