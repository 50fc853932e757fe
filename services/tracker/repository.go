package tracker

import (
	"context"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/models"
)

// DeviceStateRepo defines the interface for device state access. The backing
// store enforces no schema, so stream payloads are delivered raw and decoded
// defensively by the consumer.
type DeviceStateRepo interface {
	// Subscribe returns a channel of raw payloads for one of the device
	// streams (location, status, geofence, stats, events, notifications).
	// The current value, when one exists, is delivered first, then live
	// updates. The stop function releases the subscription.
	Subscribe(ctx context.Context, stream string) (<-chan []byte, func(), error)

	// TailTimeline returns the last n entries of an append log in insertion order
	TailTimeline(ctx context.Context, kind string, n int) ([][]byte, error)

	// Read-once operations
	ReadLocation(ctx context.Context) (*models.DeviceLocation, error)
	ArmedState(ctx context.Context) (bool, error)
	SpeedLimit(ctx context.Context) (int, error)

	// Write operations
	SetSpeedLimit(ctx context.Context, limit int) error
	SetGeofenceConfig(ctx context.Context, cfg models.GeofenceConfig) error
	SetPendingCommand(ctx context.Context, command string) error

	// HistorySince returns archived location samples with timestamps at or
	// after since, ascending
	HistorySince(ctx context.Context, since time.Time) ([]models.HistoryRecord, error)
}
