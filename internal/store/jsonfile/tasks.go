// Package jsonfile persists the task collection as a single JSON array on
// disk. It is a pure serialization boundary with no business logic.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/calvales/taskpad/internal/core/task"
)

// TaskFile reads and writes the task collection at a fixed path. The file
// holds the raw JSON array of tasks, one format version, no migrations.
type TaskFile struct {
	path string
	log  zerolog.Logger
	mu   sync.RWMutex
}

// NewTaskFile creates a task file store at the given path.
func NewTaskFile(path string, log zerolog.Logger) *TaskFile {
	return &TaskFile{path: path, log: log}
}

// Path returns the backing file path.
func (s *TaskFile) Path() string {
	return s.path
}

// Load returns the stored collection. A missing file, unreadable content, or
// a payload that is not a JSON array all degrade to an empty collection;
// corruption is logged, never propagated.
func (s *TaskFile) Load() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("could not read task file, starting empty")
		}
		return []task.Task{}
	}

	if len(data) == 0 {
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("could not parse task file, starting empty")
		return []task.Task{}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	return tasks
}

// Save writes the collection to disk atomically. The returned error is
// advisory: callers log it and carry on, in-memory state never depends on
// storage success.
func (s *TaskFile) Save(tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
