package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquation(t *testing.T) {
	eq, err := NewEquation(1, "  Euler  ", "identity", "e^{i\\pi}+1=0")
	require.NoError(t, err)
	assert.Equal(t, "Euler", eq.Name)
	assert.Equal(t, eq.CreatedAt, eq.LastEditTime)

	_, err = NewEquation(0, "Euler", "", "")
	assert.Error(t, err)

	_, err = NewEquation(1, "   ", "", "")
	assert.Error(t, err)
}

func TestNewTodo(t *testing.T) {
	t.Run("due time is optional", func(t *testing.T) {
		todo, err := NewTodo(1, "write the migration", nil)
		require.NoError(t, err)
		assert.Nil(t, todo.DueTime)
		assert.False(t, todo.Completed)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := NewTodo(1, "   ", nil)
		assert.Error(t, err)
	})
}

func TestTodo_Edit(t *testing.T) {
	todo, err := NewTodo(1, "write the migration", nil)
	require.NoError(t, err)

	due := time.Now().Add(24 * time.Hour)
	require.NoError(t, todo.Edit("ship the migration", &due, true))
	assert.True(t, todo.Completed)

	// Un-completing must stick; completed is not a one-way flag.
	require.NoError(t, todo.Edit("ship the migration", &due, false))
	assert.False(t, todo.Completed)
}

func TestNewEvent(t *testing.T) {
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	t.Run("valid window", func(t *testing.T) {
		ev, err := NewEvent(1, "standup", "", start, end)
		require.NoError(t, err)
		assert.Equal(t, "standup", ev.Name)
	})

	t.Run("zero-length window is allowed", func(t *testing.T) {
		_, err := NewEvent(1, "reminder", "", start, start)
		assert.NoError(t, err)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewEvent(1, "backwards", "", end, start)
		assert.Error(t, err)
	})
}

func TestNewFile(t *testing.T) {
	f, err := NewFile(3, "diagram.png", "ab12", 1024)
	require.NoError(t, err)
	assert.Equal(t, uint(3), f.PageID)
	assert.Equal(t, int64(1024), f.Size)

	_, err = NewFile(3, "diagram.png", "", 1024)
	assert.Error(t, err)

	_, err = NewFile(0, "diagram.png", "ab12", 1024)
	assert.Error(t, err)
}
