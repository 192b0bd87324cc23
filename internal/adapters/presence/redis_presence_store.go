package presence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	presenceKey     = "payment-analyzer:online"
	presenceChannel = "payment-analyzer:presence"
)

// Redis-backed implementation of the PresenceStore port.
// The flag is visible to every process sharing the Redis instance;
// updates are published so subscribers observe changes without polling.
type RedisPresenceStore struct {
	client *redis.Client
}

func NewRedisPresenceStore(client *redis.Client) *RedisPresenceStore {
	return &RedisPresenceStore{client: client}
}

// Record the current connectivity state and publish the change.
func (s *RedisPresenceStore) SetOnline(ctx context.Context, online bool) error {
	if s.client == nil {
		return errors.New("presence store: redis client is nil")
	}

	value := "0"
	if online {
		value = "1"
	}

	if err := s.client.Set(ctx, presenceKey, value, 0).Err(); err != nil {
		return fmt.Errorf("set online: set %s: %w", presenceKey, err)
	}

	if err := s.client.Publish(ctx, presenceChannel, value).Err(); err != nil {
		return fmt.Errorf("set online: publish %s: %w", presenceChannel, err)
	}

	return nil
}

// Return the last recorded connectivity state.
// A missing key means no state was ever recorded and reads as offline.
func (s *RedisPresenceStore) Online(ctx context.Context) (bool, error) {
	if s.client == nil {
		return false, errors.New("presence store: redis client is nil")
	}

	value, err := s.client.Get(ctx, presenceKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get online: get %s: %w", presenceKey, err)
	}

	return value == "1", nil
}

// Subscribe registers for flag changes via Redis pub/sub. It blocks until
// the subscription is confirmed, so an update published immediately after
// Subscribe returns is never missed. cancel closes the subscription and
// the returned channel.
func (s *RedisPresenceStore) Subscribe(ctx context.Context) (<-chan bool, func() error, error) {
	if s.client == nil {
		return nil, nil, errors.New("presence store: redis client is nil")
	}

	sub := s.client.Subscribe(ctx, presenceChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe presence: confirm subscription: %w", err)
	}

	out := make(chan bool, 1)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			online := msg.Payload == "1"
			select {
			case out <- online:
			default:
				// Keep only the latest state for slow consumers.
				select {
				case <-out:
				default:
				}
				select {
				case out <- online:
				default:
				}
			}
		}
	}()

	return out, sub.Close, nil
}
