package ports

import "context"

// Port: the shared, application-wide online/offline flag.
// The flag has a single writer (whichever component observes the external
// connectivity signal) and last-write-wins semantics.
type PresenceStore interface {
	// Record the current connectivity state.
	SetOnline(ctx context.Context, online bool) error
	// Return the last recorded connectivity state.
	Online(ctx context.Context) (bool, error)
	// Register for flag changes. The channel carries the new state with
	// last-write-wins delivery; stop releases the subscription.
	Subscribe(ctx context.Context) (<-chan bool, func() error, error)
}
