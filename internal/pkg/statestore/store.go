// Package statestore provides a path-addressable view over Redis matching the
// semantics the tracked device writes against: overwritten records, append
// logs read from the tail, and a timestamp-scored history log. Every write is
// also published on a channel named after the path so dashboard sessions
// receive push updates.
package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mototrack/mototrack/internal/pkg/database"
	"github.com/mototrack/mototrack/internal/pkg/logger"
)

// ErrNotFound is returned when a record does not exist at the given path
var ErrNotFound = errors.New("statestore: record not found")

// Store is a path-addressable state store backed by Redis
type Store struct {
	redisClient *database.RedisClient
}

// New creates a store on top of an existing Redis client
func New(redisClient *database.RedisClient) *Store {
	return &Store{redisClient: redisClient}
}

// SetRecord overwrites the record at path and notifies subscribers
func (s *Store) SetRecord(ctx context.Context, path string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.redisClient.Set(ctx, path, payload, 0); err != nil {
		return fmt.Errorf("failed to write record at %s: %w", path, err)
	}

	return s.publish(ctx, path, payload)
}

// GetRecord reads the record at path into out. Returns ErrNotFound when the
// path has never been written.
func (s *Store) GetRecord(ctx context.Context, path string, out interface{}) error {
	raw, err := s.redisClient.Get(ctx, path)
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read record at %s: %w", path, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode record at %s: %w", path, err)
	}
	return nil
}

// Append adds an entry to the append log at path and notifies subscribers
func (s *Store) Append(ctx context.Context, path string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if err := s.redisClient.RPush(ctx, path, payload); err != nil {
		return fmt.Errorf("failed to append at %s: %w", path, err)
	}

	return s.publish(ctx, path, payload)
}

// Tail returns the last n entries of the append log at path in insertion
// order (newest last), matching the upstream limit-to-last query.
func (s *Store) Tail(ctx context.Context, path string, n int) ([][]byte, error) {
	values, err := s.redisClient.LRange(ctx, path, int64(-n), -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read log tail at %s: %w", path, err)
	}

	entries := make([][]byte, 0, len(values))
	for _, v := range values {
		entries = append(entries, []byte(v))
	}
	return entries, nil
}

// AppendHistory stores a history entry scored by its epoch-millisecond timestamp
func (s *Store) AppendHistory(ctx context.Context, path string, tsMillis int64, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := s.redisClient.ZAdd(ctx, path, float64(tsMillis), payload); err != nil {
		return fmt.Errorf("failed to append history at %s: %w", path, err)
	}
	return nil
}

// HistoryRange returns history entries with timestamps in [fromMillis, toMillis],
// ascending by timestamp
func (s *Store) HistoryRange(ctx context.Context, path string, fromMillis, toMillis int64) ([][]byte, error) {
	values, err := s.redisClient.ZRangeByScore(ctx, path,
		fmt.Sprintf("%d", fromMillis), fmt.Sprintf("%d", toMillis))
	if err != nil {
		return nil, fmt.Errorf("failed to query history at %s: %w", path, err)
	}

	entries := make([][]byte, 0, len(values))
	for _, v := range values {
		entries = append(entries, []byte(v))
	}
	return entries, nil
}

// Subscribe returns a channel delivering every payload written at path, in
// write order. The returned stop function releases the subscription. Ordering
// is guaranteed per path only; writes to different paths may interleave.
func (s *Store) Subscribe(ctx context.Context, path string) (<-chan []byte, func(), error) {
	pubsub := s.redisClient.Subscribe(ctx, path)

	// Force the subscription to be established before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", path, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() {
		if err := pubsub.Close(); err != nil {
			logger.Warn("Failed to close subscription",
				logger.String("path", path),
				logger.Err(err))
		}
	}
	return out, stop, nil
}

func (s *Store) publish(ctx context.Context, path string, payload []byte) error {
	if err := s.redisClient.Publish(ctx, path, payload); err != nil {
		return fmt.Errorf("failed to publish update for %s: %w", path, err)
	}
	return nil
}
