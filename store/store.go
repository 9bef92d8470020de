package store

import "sync"

// Store is a single session's state cell. All writes go through Dispatch,
// which serializes reduce-and-swap under a mutex — the server-side stand-in
// for the browser's one-event-at-a-time dispatch cycle. Reads get a snapshot,
// never a live reference.
type Store struct {
	mu    sync.Mutex
	state AppState
	subs  []chan struct{}
}

func New() *Store {
	return &Store{state: NewAppState()}
}

// Dispatch runs the action through the reducer and installs the result.
// It returns the new state so callers can respond without a second lock.
func (s *Store) Dispatch(action Action) AppState {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state
	subs := s.subs
	s.mu.Unlock()

	// Coalescing notify: a subscriber that has not drained its tick yet
	// does not need another one.
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return next
}

// State returns a snapshot of the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that receives a tick after each dispatch.
// Call the returned cancel func when done listening.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}
