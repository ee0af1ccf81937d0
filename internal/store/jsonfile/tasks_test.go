package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvales/taskpad/internal/core/task"
)

func newStore(t *testing.T) *TaskFile {
	t.Helper()
	return NewTaskFile(filepath.Join(t.TempDir(), "tasks.v1.json"), zerolog.Nop())
}

func TestTaskFile_RoundTrip(t *testing.T) {
	s := newStore(t)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "a", Title: "first", CreatedAt: now, UpdatedAt: now},
		{ID: "b", Title: "second", Description: "notes", DueDate: "2026-09-01", Completed: true, CreatedAt: now, UpdatedAt: now.Add(time.Minute)},
	}

	require.NoError(t, s.Save(tasks))
	got := s.Load()

	assert.Equal(t, tasks, got)
}

func TestTaskFile_Load_missing_file_returns_empty(t *testing.T) {
	s := newStore(t)

	got := s.Load()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTaskFile_Load_corrupted_returns_empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", "{not json"},
		{"not an array", `{"id":"a"}`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			got := s.Load()

			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestTaskFile_Save_creates_parent_dir(t *testing.T) {
	dir := t.TempDir()
	s := NewTaskFile(filepath.Join(dir, "nested", "deep", "tasks.v1.json"), zerolog.Nop())

	require.NoError(t, s.Save([]task.Task{{ID: "a", Title: "t"}}))

	got := s.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestTaskFile_Save_stores_plain_array(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save([]task.Task{}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
