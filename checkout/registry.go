package checkout

import (
	"errors"
	"sync"
)

// ErrNoSession is returned when a session id has no active checkout.
var ErrNoSession = errors.New("no active checkout session")

// Registry tracks at most one active checkout per session id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Put installs a checkout for the session id, replacing any prior one.
// Re-entering checkout abandons the old walk, as navigating away does.
func (r *Registry) Put(sessionID string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = s
}

// Get fetches the active checkout for a session id.
func (r *Registry) Get(sessionID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// DropAll forgets the checkouts for a batch of session ids. The session
// sweeper calls this so an abandoned checkout does not outlive its session.
func (r *Registry) DropAll(sessionIDs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range sessionIDs {
		delete(r.sessions, id)
	}
}

// Drop forgets the checkout for a session id.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
