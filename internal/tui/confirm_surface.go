package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvales/taskpad/internal/confirm"
)

// overlaySurface presents confirmation requests as a modal overlay inside
// the TUI. The coordinator drives Open/Close; the model reads Active to
// decide whether to render the overlay and route keys to it.
type overlaySurface struct {
	mu   sync.Mutex
	req  *confirm.Request
	send func(tea.Msg)
}

func newOverlaySurface() *overlaySurface {
	return &overlaySurface{}
}

// SetSend installs the program send hook so out-of-loop closes (the
// post-confirm delayed close) trigger a redraw.
func (s *overlaySurface) SetSend(fn func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = fn
}

// Active returns the currently presented request, or nil.
func (s *overlaySurface) Active() *confirm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.req
}

// Open implements confirm.Surface.
func (s *overlaySurface) Open(req confirm.Request) {
	s.mu.Lock()
	r := req
	s.req = &r
	fn := s.send
	s.mu.Unlock()
	post(fn)
}

// Close implements confirm.Surface. It hides the overlay without emitting a
// dismiss signal.
func (s *overlaySurface) Close() {
	s.mu.Lock()
	s.req = nil
	fn := s.send
	s.mu.Unlock()
	post(fn)
}

func post(fn func(tea.Msg)) {
	if fn != nil {
		fn(surfaceChangedMsg{})
	}
}
