// Package task defines the task domain model and the derived view helpers.
package task

import (
	"errors"
	"time"
)

// MaxTitleLen is the longest accepted task title after trimming.
const MaxTitleLen = 120

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyTitle is returned when a title trims to the empty string.
	ErrEmptyTitle = errors.New("task title is empty")
	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen after trimming.
	ErrTitleTooLong = errors.New("task title too long")
)

// StatusFilter selects which tasks a view shows. It is a display concern
// and is never persisted alongside tasks.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

// Valid reports whether f is one of the known filter values.
func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Task is a single to-do item. The JSON field names are the fixed storage
// schema; there is exactly one format version and no migration logic.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Payload carries the caller-supplied fields for creating a task.
type Payload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Changes describes a partial update. Nil fields are absent, not cleared;
// a pointer to the empty string clears the optional fields.
type Changes struct {
	Title       *string
	Description *string
	DueDate     *string
}

// Empty reports whether no fields are present.
func (c Changes) Empty() bool {
	return c.Title == nil && c.Description == nil && c.DueDate == nil
}

// Stats are aggregate counters derived from the unfiltered collection.
type Stats struct {
	Total     int
	Active    int
	Completed int
}
