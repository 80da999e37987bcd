package service

import (
	"context"
	"sync"
	"time"
)

// SessionView is a point-in-time copy of a session.
type SessionView struct {
	ID       string       `json:"id,omitempty"`
	State    DisplayState `json:"state"`
	Version  int          `json:"version"`
	Complete bool         `json:"complete"`
}

// Session is one activation of the home screen. It owns the display state
// until it is closed; updates arriving after Close are dropped.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	state    DisplayState
	version  int
	complete bool
	disposed bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSession(parent context.Context, id string) *Session {
	ctx, cancel := context.WithCancel(parent)

	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		state:     InitialDisplayState(),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Context is cancelled when the session is closed.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Apply merges u into the current state and reports whether it was applied.
func (s *Session) Apply(u Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return false
	}

	s.state = s.state.Merge(u)
	s.version++
	return true
}

func (s *Session) State() DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Session) View() SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SessionView{
		ID:       s.ID,
		State:    s.state,
		Version:  s.version,
		Complete: s.complete,
	}
}

// Done is closed once resolution has finished, whatever its outcome.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) markComplete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete {
		return
	}
	s.complete = true
	close(s.done)
}

func (s *Session) Disposed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.disposed
}

// Close disposes the session and abandons its in-flight fetches.
func (s *Session) Close() {
	s.mu.Lock()
	s.disposed = true
	s.mu.Unlock()

	s.cancel()
}
