package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/pkg/statestore"
)

// streamPaths maps stream names to their state store path formats
var streamPaths = map[string]string{
	constants.StreamLocation:      constants.PathLocation,
	constants.StreamStatus:        constants.PathStatus,
	constants.StreamGeofence:      constants.PathGeofence,
	constants.StreamStats:         constants.PathStats,
	constants.StreamEvents:        constants.PathEvents,
	constants.StreamNotifications: constants.PathNotifications,
}

// logStreams are the streams backed by append logs rather than records
var logStreams = map[string]bool{
	constants.StreamEvents:        true,
	constants.StreamNotifications: true,
}

// pendingCommand is the value written to the pending-command slot. The device
// polls this path and executes the latest command it finds.
type pendingCommand struct {
	Command  string `json:"command"`
	IssuedAt int64  `json:"issuedAt"`
}

// DeviceStateRepository implements tracker.DeviceStateRepo on the state store,
// scoped to a single device.
type DeviceStateRepository struct {
	store    *statestore.Store
	deviceID string
}

// NewDeviceStateRepository creates a repository for one device
func NewDeviceStateRepository(store *statestore.Store, deviceID string) *DeviceStateRepository {
	return &DeviceStateRepository{
		store:    store,
		deviceID: deviceID,
	}
}

func (r *DeviceStateRepository) path(format string) string {
	return fmt.Sprintf(format, r.deviceID)
}

// Subscribe delivers the stream's current value first, when one exists, then
// live updates in write order
func (r *DeviceStateRepository) Subscribe(ctx context.Context, stream string) (<-chan []byte, func(), error) {
	format, ok := streamPaths[stream]
	if !ok {
		return nil, nil, fmt.Errorf("unknown stream: %s", stream)
	}
	path := r.path(format)

	ch, stop, err := r.store.Subscribe(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	initial := r.initialPayload(ctx, stream, path)
	if initial == nil {
		return ch, stop, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		select {
		case out <- initial:
		case <-ctx.Done():
			return
		}
		for raw := range ch {
			select {
			case out <- raw:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, stop, nil
}

// initialPayload reads the current value of a stream, or nil when the path
// has never been written
func (r *DeviceStateRepository) initialPayload(ctx context.Context, stream, path string) []byte {
	if logStreams[stream] {
		tail, err := r.store.Tail(ctx, path, 1)
		if err != nil {
			logger.Warn("Failed to read initial log entry",
				logger.String("stream", stream),
				logger.Err(err))
			return nil
		}
		if len(tail) == 0 {
			return nil
		}
		return tail[0]
	}

	var raw json.RawMessage
	err := r.store.GetRecord(ctx, path, &raw)
	if err == statestore.ErrNotFound {
		return nil
	}
	if err != nil {
		logger.Warn("Failed to read initial record",
			logger.String("stream", stream),
			logger.Err(err))
		return nil
	}
	return raw
}

// TailTimeline returns the last n entries of an append log in insertion order
func (r *DeviceStateRepository) TailTimeline(ctx context.Context, kind string, n int) ([][]byte, error) {
	format, ok := streamPaths[kind]
	if !ok || !logStreams[kind] {
		return nil, fmt.Errorf("unknown timeline kind: %s", kind)
	}
	return r.store.Tail(ctx, r.path(format), n)
}

// ReadLocation returns the device's current location record
func (r *DeviceStateRepository) ReadLocation(ctx context.Context) (*models.DeviceLocation, error) {
	var loc models.DeviceLocation
	if err := r.store.GetRecord(ctx, r.path(constants.PathLocation), &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// ArmedState returns the armed flag from the current status record. A device
// that has never reported status is disarmed.
func (r *DeviceStateRepository) ArmedState(ctx context.Context) (bool, error) {
	var st models.DeviceStatus
	err := r.store.GetRecord(ctx, r.path(constants.PathStatus), &st)
	if err == statestore.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return st.SystemArmed, nil
}

// SpeedLimit returns the persisted speed limit setting
func (r *DeviceStateRepository) SpeedLimit(ctx context.Context) (int, error) {
	var limit int
	if err := r.store.GetRecord(ctx, r.path(constants.PathSpeedLimit), &limit); err != nil {
		return 0, err
	}
	return limit, nil
}

// SetSpeedLimit persists the speed limit setting
func (r *DeviceStateRepository) SetSpeedLimit(ctx context.Context, limit int) error {
	return r.store.SetRecord(ctx, r.path(constants.PathSpeedLimit), limit)
}

// SetGeofenceConfig persists the zone definition the device loads on boot
func (r *DeviceStateRepository) SetGeofenceConfig(ctx context.Context, cfg models.GeofenceConfig) error {
	return r.store.SetRecord(ctx, r.path(constants.PathGeofenceConfig), cfg)
}

// SetPendingCommand writes the pending-command slot. The latest write wins;
// there is no delivery acknowledgment from the device.
func (r *DeviceStateRepository) SetPendingCommand(ctx context.Context, command string) error {
	return r.store.SetRecord(ctx, r.path(constants.PathPendingCommand), pendingCommand{
		Command:  command,
		IssuedAt: time.Now().UnixMilli(),
	})
}

// HistorySince returns archived samples with timestamps at or after since,
// ascending. The upper bound allows modest device clock skew.
func (r *DeviceStateRepository) HistorySince(ctx context.Context, since time.Time) ([]models.HistoryRecord, error) {
	to := time.Now().Add(24 * time.Hour).UnixMilli()

	raws, err := r.store.HistoryRange(ctx, r.path(constants.PathHistory), since.UnixMilli(), to)
	if err != nil {
		return nil, err
	}

	records := make([]models.HistoryRecord, 0, len(raws))
	for _, raw := range raws {
		var rec models.HistoryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Warn("Skipping malformed history entry", logger.Err(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
