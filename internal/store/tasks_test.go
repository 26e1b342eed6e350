package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

func TestCreateTaskSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")

	first, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "first", nil)
	require.NoError(t, err)
	second, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "second", nil)
	require.NoError(t, err)

	assert.Equal(t, "ABC-001", first.ID)
	assert.Equal(t, "ABC-002", second.ID)
}

func TestCreateTaskRecordsCreatedHistory(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")

	task, err := s.CreateTask(b.ID, b.Columns[1].ID, st.ID, "tracked", nil)
	require.NoError(t, err)

	require.Len(t, task.History, 1)
	entry := task.History[0]
	assert.Equal(t, types.EventCreated, entry.EventType)
	assert.Equal(t, task.ID, entry.TaskID)
	assert.Equal(t, map[string]string{
		"board_id":  b.ID,
		"column_id": b.Columns[1].ID,
	}, entry.Payload)
}

func TestCreateTaskValidatesBeforeAllocating(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")

	_, err := s.CreateTask("board_missing", b.Columns[0].ID, st.ID, "x", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.CreateTask(b.ID, "col_missing", st.ID, "x", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.CreateTask(b.ID, b.Columns[0].ID, "story_missing", "x", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Failed creates must not burn sequence numbers.
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "real", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC-001", task.ID)
}

func TestDeletedTaskIDIsNeverReissued(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")

	first, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "first", nil)
	require.NoError(t, err)
	_, err = s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "second", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(first.ID))

	third, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "third", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC-003", third.ID)
}

func TestUpdateTaskPatchesFieldsWithoutHistory(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "plain", nil)
	require.NoError(t, err)

	err = s.UpdateTask(task.ID, map[string]any{
		"title":       "updated",
		"description": "more detail",
		"priority":    "high",
		"estimate":    "3d",
		"due_date":    "2026-09-01",
		"color":       "#00FF00",
		"tags":        []string{"urgent"},
		"bogus_field": "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "updated", task.Title)
	assert.Equal(t, "more detail", task.Description)
	assert.Equal(t, "high", task.Priority)
	assert.Equal(t, "3d", task.Estimate)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-09-01", *task.DueDate)
	require.NotNil(t, task.Color)
	assert.Equal(t, "#00FF00", *task.Color)
	assert.Equal(t, []string{"urgent"}, task.Tags)

	// Field edits are not tracked transitions.
	assert.Len(t, task.History, 1)

	require.NoError(t, s.UpdateTask(task.ID, map[string]any{"due_date": nil, "color": nil}))
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.Color)
}

func TestMoveTask(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "mover", nil)
	require.NoError(t, err)

	t.Run("records a column-moved entry", func(t *testing.T) {
		require.NoError(t, s.MoveTask(task.ID, b.Columns[2].ID))
		assert.Equal(t, b.Columns[2].ID, task.ColumnID)
		require.Len(t, task.History, 2)
		last := task.History[1]
		assert.Equal(t, types.EventColumnMoved, last.EventType)
		assert.Equal(t, map[string]string{"column_id": b.Columns[2].ID}, last.Payload)
	})

	t.Run("same-column move is a no-op", func(t *testing.T) {
		require.NoError(t, s.MoveTask(task.ID, task.ColumnID))
		assert.Len(t, task.History, 2)
	})

	t.Run("unknown column is rejected", func(t *testing.T) {
		err := s.MoveTask(task.ID, "col_missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, b.Columns[2].ID, task.ColumnID)
	})
}

func TestRehomeTaskMintsNewIdentity(t *testing.T) {
	s := newTestStore(t)
	b, source := makeBoardAndStory(t, s, "ABC")
	target, err := s.CreateStory("XYZ", "target story", nil)
	require.NoError(t, err)

	task, err := s.CreateTask(b.ID, b.Columns[0].ID, source.ID, "wanderer", map[string]any{
		"due_date": "2026-09-15",
		"tags":     []string{"carry-over"},
	})
	require.NoError(t, err)
	require.NoError(t, s.MoveTask(task.ID, b.Columns[1].ID))

	moved, err := s.RehomeTask(task.ID, target.ID)
	require.NoError(t, err)

	assert.Equal(t, "XYZ-001", moved.ID)
	assert.Equal(t, target.ID, moved.StoryID)
	assert.Equal(t, "wanderer", moved.Title)
	assert.Equal(t, b.Columns[1].ID, moved.ColumnID)
	require.NotNil(t, moved.DueDate)
	assert.Equal(t, "2026-09-15", *moved.DueDate)
	assert.Equal(t, []string{"carry-over"}, moved.Tags)

	// Full history travels: created, column-moved, then the rehome
	// marker pointing at the new identity.
	require.Len(t, moved.History, 3)
	assert.Equal(t, types.EventCreated, moved.History[0].EventType)
	assert.Equal(t, types.EventColumnMoved, moved.History[1].EventType)
	assert.Equal(t, types.EventRehome, moved.History[2].EventType)
	assert.Equal(t, map[string]string{"new_task_id": "XYZ-001"}, moved.History[2].Payload)

	// The old ID no longer resolves.
	_, err = s.Task("ABC-001")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRehomeTaskUnknownStory(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "stuck", nil)
	require.NoError(t, err)

	_, err = s.RehomeTask(task.ID, "story_missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The original identity is untouched by the failed rehome.
	got, err := s.Task(task.ID)
	require.NoError(t, err)
	assert.Len(t, got.History, 1)
}

func TestArchiveTaskRecordsBothTransitions(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "flip", nil)
	require.NoError(t, err)

	require.NoError(t, s.ArchiveTask(task.ID, true))
	assert.True(t, task.Archived)
	require.NoError(t, s.ArchiveTask(task.ID, false))
	assert.False(t, task.Archived)

	require.Len(t, task.History, 3)
	assert.Equal(t, types.EventArchived, task.History[1].EventType)
	assert.Equal(t, types.EventUnarchived, task.History[2].EventType)
}

func TestDeleteTaskRemovesComments(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "doomed", nil)
	require.NoError(t, err)
	c, err := s.AddComment(task.ID, "me", "soon gone")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(task.ID))

	_, err = s.Task(task.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.Comment(c.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
