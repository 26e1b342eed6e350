package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kanban/pkg/types"
)

func TestHistoryForTaskInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	b, st := makeBoardAndStory(t, s, "ABC")
	task, err := s.CreateTask(b.ID, b.Columns[0].ID, st.ID, "tracked", nil)
	require.NoError(t, err)
	require.NoError(t, s.MoveTask(task.ID, b.Columns[1].ID))
	require.NoError(t, s.ArchiveTask(task.ID, true))

	got, err := s.HistoryForTask(task.ID)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, types.EventCreated, got[0].EventType)
	assert.Equal(t, types.EventColumnMoved, got[1].EventType)
	assert.Equal(t, types.EventArchived, got[2].EventType)
	assert.Less(t, got[0].Timestamp, got[1].Timestamp)
	assert.Less(t, got[1].Timestamp, got[2].Timestamp)

	// The returned slice is a copy of the log, not the log itself.
	got[0] = nil
	fresh, err := s.HistoryForTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, types.EventCreated, fresh[0].EventType)

	_, err = s.HistoryForTask("ABC-999")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
