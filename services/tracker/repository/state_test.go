package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/database"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/pkg/statestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDeviceID = "moto-01"

func setupRepo(t *testing.T) (*DeviceStateRepository, *statestore.Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := statestore.New(database.NewRedisClientFromConn(client))
	return NewDeviceStateRepository(store, testDeviceID), store
}

func receive(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case raw := <-ch:
		return raw
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream payload")
		return nil
	}
}

func TestSubscribe_DeliversSnapshotThenUpdates(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.SetRecord(ctx, "devices/moto-01/location",
		models.DeviceLocation{Latitude: 14.6, Longitude: 120.98}))

	ch, stop, err := repo.Subscribe(ctx, constants.StreamLocation)
	require.NoError(t, err)
	defer stop()

	assert.JSONEq(t,
		`{"latitude":14.6,"longitude":120.98,"speed":0,"satellites":0}`,
		string(receive(t, ch)))

	require.NoError(t, store.SetRecord(ctx, "devices/moto-01/location",
		models.DeviceLocation{Latitude: 14.61, Longitude: 120.99, SpeedKmh: 30, Satellites: 8}))

	assert.JSONEq(t,
		`{"latitude":14.61,"longitude":120.99,"speed":30,"satellites":8}`,
		string(receive(t, ch)))
}

func TestSubscribe_NoSnapshotWhenUnwritten(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	ch, stop, err := repo.Subscribe(ctx, constants.StreamStatus)
	require.NoError(t, err)
	defer stop()

	// nothing buffered; the first delivery is the first live write
	require.NoError(t, store.SetRecord(ctx, "devices/moto-01/status",
		models.DeviceStatus{Status: "online"}))

	var st models.DeviceStatus
	require.NoError(t, json.Unmarshal(receive(t, ch), &st))
	assert.Equal(t, "online", st.Status)
}

func TestSubscribe_UnknownStream(t *testing.T) {
	repo, _ := setupRepo(t)

	_, _, err := repo.Subscribe(context.Background(), "telemetry")
	assert.Error(t, err)
}

func TestTailTimeline(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	for _, name := range []string{"e1", "e2", "e3"} {
		require.NoError(t, store.Append(ctx, "devices/moto-01/events",
			models.TimelineEntry{Event: name}))
	}

	entries, err := repo.TailTimeline(ctx, constants.StreamEvents, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, string(entries[0]), "e2")
	assert.Contains(t, string(entries[1]), "e3")
}

func TestTailTimeline_RejectsRecordStreams(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.TailTimeline(context.Background(), constants.StreamLocation, 10)
	assert.Error(t, err)
}

func TestArmedState(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	// never reported: disarmed
	armed, err := repo.ArmedState(ctx)
	require.NoError(t, err)
	assert.False(t, armed)

	require.NoError(t, store.SetRecord(ctx, "devices/moto-01/status",
		models.DeviceStatus{Status: "online", SystemArmed: true}))

	armed, err = repo.ArmedState(ctx)
	require.NoError(t, err)
	assert.True(t, armed)
}

func TestSpeedLimit_RoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.SpeedLimit(ctx)
	assert.ErrorIs(t, err, statestore.ErrNotFound)

	require.NoError(t, repo.SetSpeedLimit(ctx, 120))

	limit, err := repo.SpeedLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, limit)
}

func TestSetPendingCommand(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPendingCommand(ctx, constants.CommandReboot))

	var pending pendingCommand
	require.NoError(t, store.GetRecord(ctx, "devices/moto-01/commands/pending", &pending))
	assert.Equal(t, constants.CommandReboot, pending.Command)
	assert.NotZero(t, pending.IssuedAt)
}

func TestSetGeofenceConfig(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	cfg := models.GeofenceConfig{
		CenterLat:    14.5995,
		CenterLng:    120.9842,
		RadiusMeters: 500,
		Name:         "Home Zone",
		Enabled:      true,
	}
	require.NoError(t, repo.SetGeofenceConfig(ctx, cfg))

	var got models.GeofenceConfig
	require.NoError(t, store.GetRecord(ctx, "devices/moto-01/geofence/config", &got))
	assert.Equal(t, cfg, got)
}

func TestHistorySince(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	for i, hour := range []int{-2, 8, 9} {
		ts := day.Add(time.Duration(hour) * time.Hour).UnixMilli()
		require.NoError(t, store.AppendHistory(ctx, "devices/moto-01/history", ts,
			models.HistoryRecord{Timestamp: ts, Latitude: 14.6, Longitude: 120.98, Satellites: i}))
	}

	records, err := repo.HistorySince(ctx, day)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, day.Add(8*time.Hour).UnixMilli(), records[0].Timestamp)
	assert.Equal(t, day.Add(9*time.Hour).UnixMilli(), records[1].Timestamp)
}
