package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvales/taskpad/internal/core/notify"
	"github.com/calvales/taskpad/internal/core/task"
)

// memFile is an in-memory Persister recording every save.
type memFile struct {
	initial  []task.Task
	saved    [][]task.Task
	saveErr  error
	loadHits int
}

func (m *memFile) Load() []task.Task {
	m.loadHits++
	return m.initial
}

func (m *memFile) Save(tasks []task.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	m.saved = append(m.saved, out)
	return nil
}

// recordingChime captures played cues.
type recordingChime struct {
	cues []notify.Cue
}

func (c *recordingChime) Play(cue notify.Cue) {
	c.cues = append(c.cues, cue)
}

type fixture struct {
	store *Store
	file  *memFile
	chime *recordingChime
	notes *[]notify.Notification
}

func newFixture(t *testing.T, initial []task.Task) fixture {
	t.Helper()

	file := &memFile{initial: initial}
	bus := notify.NewBus()
	chime := &recordingChime{}
	s := New(file, bus, chime, zerolog.Nop())

	// Deterministic ids and strictly increasing timestamps.
	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var ticks int
	s.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Millisecond)
	}

	notes := &[]notify.Notification{}
	bus.Subscribe(func(n notify.Notification) {
		*notes = append(*notes, n)
	})

	return fixture{store: s, file: file, chime: chime, notes: notes}
}

func (f fixture) lastNote(t *testing.T) notify.Notification {
	t.Helper()
	require.NotEmpty(t, *f.notes)
	return (*f.notes)[len(*f.notes)-1]
}

func TestStore_Add(t *testing.T) {
	t.Run("appends and persists", func(t *testing.T) {
		f := newFixture(t, nil)

		f.store.Add(task.Payload{Title: "  Buy milk  ", Description: " 2%  ", DueDate: "2026-09-01"})

		tasks := f.store.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Title)
		assert.Equal(t, "2%", tasks[0].Description)
		assert.Equal(t, "2026-09-01", tasks[0].DueDate)
		assert.False(t, tasks[0].Completed)
		assert.Equal(t, tasks[0].CreatedAt, tasks[0].UpdatedAt)

		require.Len(t, f.file.saved, 1)
		assert.Equal(t, notify.LevelSuccess, f.lastNote(t).Level)
		assert.Equal(t, []notify.Cue{notify.CueAdd}, f.chime.cues)
	})

	t.Run("empty title is rejected without commit", func(t *testing.T) {
		f := newFixture(t, nil)

		f.store.Add(task.Payload{Title: ""})
		f.store.Add(task.Payload{Title: "   "})

		assert.Empty(t, f.store.Tasks())
		assert.Empty(t, f.file.saved)
		assert.Empty(t, f.chime.cues)
		require.Len(t, *f.notes, 2)
		for _, n := range *f.notes {
			assert.Equal(t, notify.LevelError, n.Level)
		}
	})

	t.Run("oversized title is rejected", func(t *testing.T) {
		f := newFixture(t, nil)

		long := make([]rune, task.MaxTitleLen+1)
		for i := range long {
			long[i] = 'x'
		}
		f.store.Add(task.Payload{Title: string(long)})

		assert.Empty(t, f.store.Tasks())
		assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
	})
}

func TestStore_Update(t *testing.T) {
	seed := func(t *testing.T) fixture {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "original", Description: "desc", DueDate: "2026-09-01"})
		return f
	}

	t.Run("applies only present fields", func(t *testing.T) {
		f := seed(t)
		id := f.store.Tasks()[0].ID
		before := f.store.Tasks()[0]

		title := "renamed"
		f.store.Update(id, task.Changes{Title: &title})

		got := f.store.Tasks()[0]
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, before.Description, got.Description)
		assert.Equal(t, before.DueDate, got.DueDate)
		assert.Equal(t, before.CreatedAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, notify.LevelInfo, f.lastNote(t).Level)
	})

	t.Run("clears optional fields when set to empty", func(t *testing.T) {
		f := seed(t)
		id := f.store.Tasks()[0].ID

		empty := ""
		f.store.Update(id, task.Changes{Description: &empty, DueDate: &empty})

		got := f.store.Tasks()[0]
		assert.Empty(t, got.Description)
		assert.Empty(t, got.DueDate)
	})

	t.Run("empty title aborts the whole operation", func(t *testing.T) {
		f := seed(t)
		id := f.store.Tasks()[0].ID
		before := f.store.Tasks()[0]
		saves := len(f.file.saved)

		empty := "  "
		newDesc := "should not apply"
		f.store.Update(id, task.Changes{Title: &empty, Description: &newDesc})

		got := f.store.Tasks()[0]
		assert.Equal(t, before.Title, got.Title)
		assert.Equal(t, before.Description, got.Description)
		assert.Equal(t, before.UpdatedAt, got.UpdatedAt)
		assert.Len(t, f.file.saved, saves)
		assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
	})

	t.Run("empty change-set is a silent no-op", func(t *testing.T) {
		f := seed(t)
		id := f.store.Tasks()[0].ID
		notes := len(*f.notes)
		saves := len(f.file.saved)

		f.store.Update(id, task.Changes{})

		assert.Len(t, *f.notes, notes)
		assert.Len(t, f.file.saved, saves)
	})

	t.Run("unknown id fails with not-found message", func(t *testing.T) {
		f := seed(t)
		saves := len(f.file.saved)

		title := "anything"
		f.store.Update("missing", task.Changes{Title: &title})

		assert.Len(t, f.file.saved, saves)
		assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
		assert.Equal(t, "Task could not be found.", f.lastNote(t).Message)
	})
}

func TestStore_Toggle(t *testing.T) {
	t.Run("is its own inverse with increasing timestamps", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "flip me"})
		id := f.store.Tasks()[0].ID
		t0 := f.store.Tasks()[0].UpdatedAt

		f.store.Toggle(id)
		first := f.store.Tasks()[0]
		assert.True(t, first.Completed)
		assert.True(t, first.UpdatedAt.After(t0))

		f.store.Toggle(id)
		second := f.store.Tasks()[0]
		assert.False(t, second.Completed)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	})

	t.Run("completion cue only on the completing transition", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "flip me"})
		id := f.store.Tasks()[0].ID
		f.chime.cues = nil

		f.store.Toggle(id) // completes
		f.store.Toggle(id) // reopens

		assert.Equal(t, []notify.Cue{notify.CueComplete}, f.chime.cues)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		f := newFixture(t, nil)

		f.store.Toggle("missing")

		assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes and warns", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "goner"})
		id := f.store.Tasks()[0].ID

		f.store.Remove(id)

		assert.Empty(t, f.store.Tasks())
		assert.Equal(t, notify.LevelWarning, f.lastNote(t).Level)
		assert.Contains(t, f.chime.cues, notify.CueDelete)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "keeper"})
		saves := len(f.file.saved)

		f.store.Remove("missing")

		assert.Len(t, f.store.Tasks(), 1)
		assert.Len(t, f.file.saved, saves)
		assert.Equal(t, "Task could not be found.", f.lastNote(t).Message)
	})
}

func TestStore_ClearCompleted(t *testing.T) {
	t.Run("removes only completed tasks", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "active"})
		f.store.Add(task.Payload{Title: "done"})
		f.store.Toggle(f.store.Tasks()[1].ID)

		f.store.ClearCompleted()

		tasks := f.store.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "active", tasks[0].Title)
		assert.Equal(t, "Completed tasks cleared.", f.lastNote(t).Message)
	})

	t.Run("nothing to clear is an informational no-op", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "active"})
		saves := len(f.file.saved)

		f.store.ClearCompleted()

		assert.Len(t, f.store.Tasks(), 1)
		assert.Len(t, f.file.saved, saves)
		assert.Equal(t, notify.LevelInfo, f.lastNote(t).Level)
		assert.Equal(t, "No completed tasks to clear.", f.lastNote(t).Message)
	})
}

func TestStore_Streams(t *testing.T) {
	t.Run("subscribers observe commits in order", func(t *testing.T) {
		f := newFixture(t, nil)

		var lengths []int
		f.store.SubscribeTasks(func(tasks []task.Task) {
			lengths = append(lengths, len(tasks))
		})

		f.store.Add(task.Payload{Title: "one"})
		f.store.Add(task.Payload{Title: "two"})
		f.store.Remove(f.store.Tasks()[0].ID)

		assert.Equal(t, []int{1, 2, 1}, lengths)
	})

	t.Run("stats stream keeps the invariant", func(t *testing.T) {
		f := newFixture(t, nil)

		f.store.SubscribeStats(func(s task.Stats) {
			assert.Equal(t, s.Total, s.Active+s.Completed)
		})

		f.store.Add(task.Payload{Title: "a"})
		f.store.Add(task.Payload{Title: "b"})
		f.store.Toggle(f.store.Tasks()[0].ID)
		f.store.Remove(f.store.Tasks()[1].ID)
	})

	t.Run("filter changes publish filter and view, not stats", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.Add(task.Payload{Title: "a"})
		f.store.Toggle(f.store.Tasks()[0].ID)

		var filters []task.StatusFilter
		var views [][]task.Task
		statsCalls := 0
		f.store.SubscribeFilter(func(fl task.StatusFilter) { filters = append(filters, fl) })
		f.store.SubscribeView(func(v []task.Task) { views = append(views, v) })
		f.store.SubscribeStats(func(task.Stats) { statsCalls++ })

		before := f.store.Stats()
		f.store.SetFilter(task.FilterActive)
		f.store.SetFilter(task.FilterCompleted)

		assert.Equal(t, []task.StatusFilter{task.FilterActive, task.FilterCompleted}, filters)
		require.Len(t, views, 2)
		assert.Empty(t, views[0])
		assert.Len(t, views[1], 1)
		assert.Zero(t, statsCalls)
		assert.Equal(t, before, f.store.Stats())
	})
}

func TestStore_PersistenceFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.file.saveErr = errors.New("disk full")

	f.store.Add(task.Payload{Title: "still here"})

	// The in-memory commit stands even though storage failed.
	require.Len(t, f.store.Tasks(), 1)
	assert.Equal(t, notify.LevelSuccess, f.lastNote(t).Level)
}

func TestStore_EndToEnd(t *testing.T) {
	f := newFixture(t, nil)

	f.store.Add(task.Payload{Title: "Buy milk"})
	id := f.store.Tasks()[0].ID
	f.store.Toggle(id)

	f.store.SetFilter(task.FilterCompleted)
	view := f.store.View()
	require.Len(t, view, 1)
	assert.Equal(t, "Buy milk", view[0].Title)

	f.store.SetFilter(task.FilterActive)
	assert.Empty(t, f.store.View())

	assert.Equal(t, task.Stats{Total: 1, Active: 0, Completed: 1}, f.store.Stats())
}
