package tracker

import (
	"context"

	"github.com/mototrack/mototrack/internal/pkg/models"
)

// TrackerUC defines the interface for the tracking dashboard business logic
type TrackerUC interface {
	// Run subscribes to all device streams and dispatches updates until ctx
	// is done. Stream order is preserved per stream; no ordering is
	// guaranteed across streams.
	Run(ctx context.Context) error

	// Stream handlers; raw payloads are validated and normalized here
	OnLocation(raw []byte)
	OnStatus(raw []byte)
	OnGeofence(raw []byte)
	OnStats(raw []byte)
	OnTimelineBatch(kind string, raws [][]byte)

	// Viewport lifecycle
	KickViewports(trigger string)
	MarkContainerReady(name string)
	SetActiveViewport(name string)

	// Commands
	SendCommand(ctx context.Context, command string) error
	ToggleArm(ctx context.Context, confirmed bool) (string, error)

	// Settings
	SpeedLimit() int
	SetSpeedLimit(ctx context.Context, limit int) error
	ConfigureGeofence(ctx context.Context, cfg models.GeofenceConfig) error

	// History
	ExportToday(ctx context.Context) (filename string, csvData []byte, err error)
	RouteToday(ctx context.Context) ([]models.RoutePoint, error)
}
