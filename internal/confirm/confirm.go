// Package confirm gates destructive actions behind an asynchronous user
// decision. At most one confirmation request is outstanding at a time; a new
// request preempts the previous one.
package confirm

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/calvales/taskpad/internal/core/notify"
)

// closeDelay is how long the surface stays open after an affirmative
// confirmation, so the confirm cue can play before the surface closes.
const closeDelay = 150 * time.Millisecond

// Tone hints how the presentation surface should render a request.
type Tone string

const (
	ToneDefault Tone = "default"
	ToneDanger  Tone = "danger"
)

// Request is the ephemeral context for one pending decision.
type Request struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Tone         Tone
}

// Surface is the external presentation for a confirmation request (toast,
// dialog, terminal prompt). Open shows a request; Close hides the surface
// programmatically and must not feed back a Dismiss signal.
type Surface interface {
	Open(req Request)
	Close()
}

// pending is one outstanding decision. It resolves exactly once.
type pending struct {
	done chan bool
	once sync.Once
}

func (p *pending) resolve(v bool) bool {
	won := false
	p.once.Do(func() {
		p.done <- v
		close(p.done)
		won = true
	})
	return won
}

// Coordinator manages at most one pending confirmation request. Confirm and
// Dismiss race to resolve the decision; whichever fires first wins and the
// other is ignored for that request.
type Coordinator struct {
	mu      sync.Mutex
	active  *pending
	surface Surface
	chime   notify.Chime
	log     zerolog.Logger
	delay   time.Duration
}

// NewCoordinator creates a coordinator presenting on the given surface.
func NewCoordinator(surface Surface, chime notify.Chime, log zerolog.Logger) *Coordinator {
	if chime == nil {
		chime = notify.NopChime{}
	}
	return &Coordinator{
		surface: surface,
		chime:   chime,
		log:     log.With().Str("cmp", "confirm").Logger(),
		delay:   closeDelay,
	}
}

// Request opens the surface with the given context and returns a channel
// that yields the single eventual decision. If a request is already pending
// it is preempted: its surface is closed and its decision resolves false so
// the waiting caller is never left blocked.
func (c *Coordinator) Request(req Request) <-chan bool {
	p := &pending{done: make(chan bool, 1)}

	c.mu.Lock()
	prev := c.active
	c.active = p
	c.mu.Unlock()

	if prev != nil {
		c.surface.Close()
		if prev.resolve(false) {
			c.log.Debug().Str("title", req.Title).Msg("preempted pending confirmation")
		}
	}

	c.surface.Open(req)
	c.chime.Play(notify.CueWarning)

	return p.done
}

// ConfirmDeletion opens a danger-tone request for removing the named task.
func (c *Coordinator) ConfirmDeletion(taskTitle string) <-chan bool {
	return c.Request(Request{
		Title:        "Delete task?",
		Message:      fmt.Sprintf("Are you sure you want to remove %q?", taskTitle),
		ConfirmLabel: "Delete",
		CancelLabel:  "Cancel",
		Tone:         ToneDanger,
	})
}

// Confirm reports that the user affirmatively confirmed the pending request.
// The decision resolves true, the confirm cue plays, and the surface closes
// after a short delay so the cue is audible.
func (c *Coordinator) Confirm() {
	c.mu.Lock()
	p := c.active
	c.mu.Unlock()
	if p == nil {
		return
	}

	if !p.resolve(true) {
		return
	}
	c.chime.Play(notify.CueConfirm)

	time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		if c.active != p {
			c.mu.Unlock()
			return
		}
		c.active = nil
		c.mu.Unlock()
		c.surface.Close()
	})
}

// Dismiss reports that the surface was closed by any means other than
// explicit confirmation. The decision resolves false unless Confirm already
// won the race.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	p := c.active
	c.active = nil
	c.mu.Unlock()
	if p == nil {
		return
	}
	p.resolve(false)
}

// Pending reports whether a request is currently awaiting a decision.
func (c *Coordinator) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}
