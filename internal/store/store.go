// Package store owns the authoritative task collection and publishes derived
// views of it. Every mutation is copy-on-write: a successful operation
// replaces the collection, fans the new revision out to subscribers, then
// persists it best-effort.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/calvales/taskpad/internal/core/notify"
	"github.com/calvales/taskpad/internal/core/task"
)

// Persister is the durable storage boundary for the task collection.
type Persister interface {
	Load() []task.Task
	Save(tasks []task.Task) error
}

// Store holds the task collection and the active status filter. Outcomes of
// mutations surface through the notification bus; callers observe state
// through the published streams or the snapshot accessors. Published slices
// are shared snapshots and must not be mutated by subscribers.
type Store struct {
	mu     sync.Mutex
	tasks  []task.Task
	filter task.StatusFilter

	file  Persister
	bus   *notify.Bus
	chime notify.Chime
	log   zerolog.Logger

	now   func() time.Time
	newID func() string

	taskSubs   []func([]task.Task)
	filterSubs []func(task.StatusFilter)
	viewSubs   []func([]task.Task)
	statsSubs  []func(task.Stats)
}

// New creates a store seeded from the persister. The filter defaults to All
// for the lifetime of the process; it is never persisted.
func New(file Persister, bus *notify.Bus, chime notify.Chime, log zerolog.Logger) *Store {
	if chime == nil {
		chime = notify.NopChime{}
	}
	return &Store{
		tasks:  file.Load(),
		filter: task.FilterAll,
		file:   file,
		bus:    bus,
		chime:  chime,
		log:    log.With().Str("cmp", "store").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// SubscribeTasks registers a callback for every committed collection.
func (s *Store) SubscribeTasks(fn func([]task.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskSubs = append(s.taskSubs, fn)
}

// SubscribeFilter registers a callback for filter changes.
func (s *Store) SubscribeFilter(fn func(task.StatusFilter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterSubs = append(s.filterSubs, fn)
}

// SubscribeView registers a callback for the filtered, sorted task list.
func (s *Store) SubscribeView(fn func([]task.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewSubs = append(s.viewSubs, fn)
}

// SubscribeStats registers a callback for the aggregate counters.
func (s *Store) SubscribeStats(fn func(task.Stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsSubs = append(s.statsSubs, fn)
}

// Tasks returns a copy of the current collection.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// Filter returns the active status filter.
func (s *Store) Filter() task.StatusFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// View returns the filtered task list, newest first.
func (s *Store) View() []task.Task {
	s.mu.Lock()
	cur, filter := s.tasks, s.filter
	s.mu.Unlock()
	return task.Filtered(cur, filter)
}

// Stats returns the aggregate counters for the unfiltered collection.
func (s *Store) Stats() task.Stats {
	s.mu.Lock()
	cur := s.tasks
	s.mu.Unlock()
	return task.Tally(cur)
}

// Add validates the payload and appends a new task. An empty or oversized
// title aborts the operation with a validation message and no commit.
func (s *Store) Add(p task.Payload) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		s.log.Debug().Err(task.ErrEmptyTitle).Msg("add rejected")
		s.bus.Errorf("Please provide a title for the task.")
		return
	}
	if len([]rune(title)) > task.MaxTitleLen {
		s.log.Debug().Err(task.ErrTitleTooLong).Msg("add rejected")
		s.bus.Errorf("Task title must be %d characters or fewer.", task.MaxTitleLen)
		return
	}

	now := s.now()
	t := task.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		DueDate:     p.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(s.snapshot(), t)
	s.commit(next)
	s.bus.Successf("Task added to your list.")
	s.chime.Play(notify.CueAdd)
}

// Update applies a partial update to the task with the given id. Only fields
// present in changes are touched. A title that trims to empty aborts the
// whole operation; partial updates are never applied.
func (s *Store) Update(id string, c task.Changes) {
	if c.Empty() {
		return
	}

	var title string
	if c.Title != nil {
		title = strings.TrimSpace(*c.Title)
		if title == "" {
			s.log.Debug().Str("id", id).Err(task.ErrEmptyTitle).Msg("update rejected")
			s.bus.Errorf("Task title cannot be empty.")
			return
		}
		if len([]rune(title)) > task.MaxTitleLen {
			s.log.Debug().Str("id", id).Err(task.ErrTitleTooLong).Msg("update rejected")
			s.bus.Errorf("Task title must be %d characters or fewer.", task.MaxTitleLen)
			return
		}
	}

	next := s.snapshot()
	found := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		if c.Title != nil {
			next[i].Title = title
		}
		if c.Description != nil {
			next[i].Description = strings.TrimSpace(*c.Description)
		}
		if c.DueDate != nil {
			next[i].DueDate = *c.DueDate
		}
		next[i].UpdatedAt = s.now()
		break
	}

	if !found {
		s.bus.Errorf("Task could not be found.")
		return
	}

	s.commit(next)
	s.bus.Infof("Task updated.")
}

// Toggle flips the completion state of the task with the given id. The
// completion cue plays only on the active-to-completed transition.
func (s *Store) Toggle(id string) {
	next := s.snapshot()
	found := false
	nowCompleted := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		nowCompleted = !next[i].Completed
		next[i].Completed = nowCompleted
		next[i].UpdatedAt = s.now()
		break
	}

	if !found {
		s.bus.Errorf("Task could not be found.")
		return
	}

	s.commit(next)
	if nowCompleted {
		s.bus.Successf("Task completed. Nice work!")
		s.chime.Play(notify.CueComplete)
	} else {
		s.bus.Successf("Task reopened. Keep going!")
	}
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id string) {
	cur := s.snapshot()
	next := cur[:0:0]
	for _, t := range cur {
		if t.ID != id {
			next = append(next, t)
		}
	}

	if len(next) == len(cur) {
		s.bus.Errorf("Task could not be found.")
		return
	}

	s.commit(next)
	s.bus.Warnf("Task removed.")
	s.chime.Play(notify.CueDelete)
}

// ClearCompleted removes every completed task. Clearing with nothing to
// clear is an informational no-op and commits nothing.
func (s *Store) ClearCompleted() {
	cur := s.snapshot()
	next := cur[:0:0]
	for _, t := range cur {
		if !t.Completed {
			next = append(next, t)
		}
	}

	if len(next) == len(cur) {
		s.bus.Infof("No completed tasks to clear.")
		return
	}

	s.commit(next)
	s.bus.Infof("Completed tasks cleared.")
}

// SetFilter replaces the active status filter. It always succeeds and takes
// effect on the next view recomputation; stats are unaffected.
func (s *Store) SetFilter(f task.StatusFilter) {
	if !f.Valid() {
		f = task.FilterAll
	}

	s.mu.Lock()
	s.filter = f
	cur := s.tasks
	filterSubs := s.filterSubs
	viewSubs := s.viewSubs
	s.mu.Unlock()

	for _, fn := range filterSubs {
		fn(f)
	}
	view := task.Filtered(cur, f)
	for _, fn := range viewSubs {
		fn(view)
	}
}

// snapshot returns a fresh copy of the collection for copy-on-write edits.
func (s *Store) snapshot() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// commit replaces the collection, publishes the new revision to all streams
// synchronously, then persists it. Persistence failure is logged and does
// not roll back the in-memory commit.
func (s *Store) commit(next []task.Task) {
	s.mu.Lock()
	s.tasks = next
	filter := s.filter
	taskSubs := s.taskSubs
	viewSubs := s.viewSubs
	statsSubs := s.statsSubs
	s.mu.Unlock()

	for _, fn := range taskSubs {
		fn(next)
	}
	view := task.Filtered(next, filter)
	for _, fn := range viewSubs {
		fn(view)
	}
	stats := task.Tally(next)
	for _, fn := range statsSubs {
		fn(stats)
	}

	if err := s.file.Save(next); err != nil {
		s.log.Error().Err(err).Msg("could not persist tasks")
	}
}

func cloneTasks(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
