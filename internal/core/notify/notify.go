// Package notify defines the notification sink and audio cue boundaries.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single user-facing message. Notifications are
// ephemeral and never persisted.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Cue identifies an audio feedback event. Synthesis is an external concern;
// the core only names the cues it wants played.
type Cue string

const (
	CueAdd      Cue = "add"
	CueComplete Cue = "complete"
	CueDelete   Cue = "delete"
	CueWarning  Cue = "warning"
	CueConfirm  Cue = "confirm"
)

// Chime plays audio cues. Implementations must be non-blocking.
type Chime interface {
	Play(cue Cue)
}

// NopChime discards all cues.
type NopChime struct{}

func (NopChime) Play(Cue) {}
