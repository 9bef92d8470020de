package store

import (
	"sync"
	"time"
)

// Manager owns one Store per session, the way the backend used to keep one
// cart row per user. Sessions expire after the TTL; any access through Get
// or Lookup extends them, so only idle sessions lapse.
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*session
}

type session struct {
	store     *Store
	expiresAt time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*session),
	}
}

// Get returns the store for a session id, creating it on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[sessionID]; ok {
		sess.expiresAt = time.Now().Add(m.ttl)
		return sess.store
	}
	sess := &session{store: New(), expiresAt: time.Now().Add(m.ttl)}
	m.sessions[sessionID] = sess
	return sess.store
}

// Lookup returns the store for a session id without creating one. A hit
// extends the session's TTL, so a session in active use never expires.
func (m *Manager) Lookup(sessionID string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	sess.expiresAt = time.Now().Add(m.ttl)
	return sess.store, true
}

// All returns a snapshot of every live session id and its store, for the
// admin aggregation endpoints.
func (m *Manager) All() map[string]*Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*Store, len(m.sessions))
	for id, sess := range m.sessions {
		out[id] = sess.store
	}
	return out
}

// Sweep drops sessions whose TTL has lapsed and reports their ids, so
// anything else keyed by session id can let go of them too.
func (m *Manager) Sweep(now time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var swept []string
	for id, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, id)
			swept = append(swept, id)
		}
	}
	return swept
}

// StartSweeper sweeps on the given interval until stop is closed. Each
// sweep's expired ids are handed to onSwept, which may be nil.
func (m *Manager) StartSweeper(interval time.Duration, stop <-chan struct{}, onSwept func(sessionIDs []string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			if swept := m.Sweep(now); len(swept) > 0 && onSwept != nil {
				onSwept(swept)
			}
		case <-stop:
			return
		}
	}
}
