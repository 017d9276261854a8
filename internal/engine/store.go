package engine

import (
	"sync"

	"taskbound/internal/model"
)

// Subscriber receives every post-dispatch snapshot along with whether the
// transition must reach durable storage. Snapshots are deep copies; holding
// or reading them later is safe.
type Subscriber func(state model.AppState, persistWorthy bool)

// Store owns the single authoritative AppState and serializes every
// transition through Dispatch. Persistence and timers live outside as
// subscribers, never inside the transition itself.
type Store struct {
	mu     sync.Mutex
	state  model.AppState
	policy Policy
	subs   []Subscriber
}

func NewStore(initial model.AppState, policy Policy) *Store {
	return &Store{state: initial.Clone(), policy: policy}
}

// Subscribe registers an observer for post-dispatch notifications.
// Not safe to call concurrently with Dispatch; wire observers at startup.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies one action and notifies subscribers with the resulting
// snapshot. Events are applied strictly in arrival order.
func (s *Store) Dispatch(a Action) model.AppState {
	s.mu.Lock()
	next, persistWorthy := Reduce(s.state, a, s.policy)
	s.state = next
	snapshot := next.Clone()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot, persistWorthy)
	}
	return snapshot
}
