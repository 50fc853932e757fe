package statestore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mototrack/mototrack/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(database.NewRedisClientFromConn(client)), mr
}

func TestSetRecord_GetRecord(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	err := store.SetRecord(ctx, "devices/moto-01/status", record{Name: "online", Value: 3})
	require.NoError(t, err)

	var got record
	err = store.GetRecord(ctx, "devices/moto-01/status", &got)
	require.NoError(t, err)
	assert.Equal(t, "online", got.Name)
	assert.Equal(t, 3, got.Value)
}

func TestGetRecord_NotFound(t *testing.T) {
	store, _ := setupStore(t)

	var out map[string]interface{}
	err := store.GetRecord(context.Background(), "devices/moto-01/missing", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTail_ReturnsLastNInInsertionOrder(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	type entry struct {
		Event string `json:"event"`
	}

	for _, name := range []string{"e1", "e2", "e3", "e4"} {
		require.NoError(t, store.Append(ctx, "devices/moto-01/events", entry{Event: name}))
	}

	entries, err := store.Tail(ctx, "devices/moto-01/events", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Insertion order preserved, oldest of the tail first
	assert.JSONEq(t, `{"event":"e2"}`, string(entries[0]))
	assert.JSONEq(t, `{"event":"e4"}`, string(entries[2]))
}

func TestTail_ShorterThanN(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "devices/moto-01/events", map[string]string{"event": "only"}))

	entries, err := store.Tail(ctx, "devices/moto-01/events", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistoryRange(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	type point struct {
		Timestamp int64 `json:"timestamp"`
	}

	for _, ts := range []int64{1000, 2000, 3000, 4000} {
		require.NoError(t, store.AppendHistory(ctx, "devices/moto-01/history", ts, point{Timestamp: ts}))
	}

	entries, err := store.HistoryRange(ctx, "devices/moto-01/history", 2000, 3000)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.JSONEq(t, `{"timestamp":2000}`, string(entries[0]))
	assert.JSONEq(t, `{"timestamp":3000}`, string(entries[1]))
}

func TestHistoryRange_Empty(t *testing.T) {
	store, _ := setupStore(t)

	entries, err := store.HistoryRange(context.Background(), "devices/moto-01/history", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
