package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/eapd/pkg/broadcast"
	"github.com/dmitrymomot/eapd/pkg/logger"
)

// Snapshot is the client state after an event has been applied.
type Snapshot struct {
	Session State
	Profile ProfileState
	Event   string // name of the event that produced the snapshot, empty for the initial one
}

// Store holds the client state. Dispatched events are applied to both
// reducers one at a time, in dispatch order, and every resulting snapshot
// is published to subscribers.
type Store struct {
	mu         sync.Mutex
	current    Snapshot
	bc         *broadcast.MemoryBroadcaster[Snapshot]
	bufferSize int
	logger     *slog.Logger
}

// NewStore creates a store in the initial state.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		current:    Snapshot{Session: Initial(), Profile: InitialProfile()},
		bufferSize: 16,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.bc = broadcast.NewMemoryBroadcaster[Snapshot](s.bufferSize, broadcast.WithReplay())
	_, _ = s.bc.Broadcast(context.Background(), s.current)
	return s
}

// Dispatch applies evt and publishes the new snapshot.
// It has the Dispatcher signature, so a Controller can feed the store directly.
func (s *Store) Dispatch(ctx context.Context, evt Event) {
	if evt == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Session
	s.current = Snapshot{
		Session: Reduce(s.current.Session, evt),
		Profile: ReduceProfile(s.current.Profile, evt),
		Event:   evt.Name(),
	}

	s.logger.DebugContext(ctx, "session state applied",
		logger.Event(evt.Name()),
		slog.String("from", prev.Name()),
		slog.String("to", s.current.Session.Name()),
	)

	if _, err := s.bc.Broadcast(ctx, s.current); err != nil {
		s.logger.DebugContext(ctx, "snapshot not published", logger.Error(err))
	}
}

// State returns the current snapshot.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe returns a subscriber that first receives the current snapshot and
// then one snapshot per dispatched event. A slow subscriber loses its oldest
// pending snapshots, never the latest. The subscription ends with ctx.
func (s *Store) Subscribe(ctx context.Context) broadcast.Subscriber[Snapshot] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bc.Subscribe(ctx)
}

// Close closes all subscribers. Events dispatched afterwards still update
// the state but are no longer published.
func (s *Store) Close() error {
	return s.bc.Close()
}
