package presence

import (
	"context"
	"sync"
)

// In-process implementation of the PresenceStore port: one owned state
// container with an explicit update method and change notification,
// rather than an ambient mutable global. Used when no Redis address is
// configured, and as the test double for handlers.
type MemoryPresenceStore struct {
	mu     sync.Mutex
	online bool
	subs   []chan bool
}

func NewMemoryPresenceStore() *MemoryPresenceStore {
	return &MemoryPresenceStore{}
}

// Record the current connectivity state and notify subscribers.
// Notification is last-write-wins: a slow subscriber sees the latest
// state, not every intermediate one.
func (s *MemoryPresenceStore) SetOnline(ctx context.Context, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.online != online
	s.online = online
	if !changed {
		return nil
	}

	// Sends never block (buffered channel, non-blocking selects), so
	// notifying under the lock keeps sends ordered against Subscribe
	// and stop.
	for _, ch := range s.subs {
		select {
		case ch <- online:
		default:
			// Replace the stale pending value with the latest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- online:
			default:
			}
		}
	}

	return nil
}

// Return the last recorded connectivity state.
func (s *MemoryPresenceStore) Online(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online, nil
}

// Subscribe registers for flag changes. The returned channel carries the
// new state; stop removes the subscription and closes the channel.
func (s *MemoryPresenceStore) Subscribe(ctx context.Context) (<-chan bool, func() error, error) {
	ch := make(chan bool, 1)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	var once sync.Once
	stop := func() error {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub == ch {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
		return nil
	}

	return ch, stop, nil
}
