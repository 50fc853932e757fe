package tracker

import (
	"context"

	"github.com/mototrack/mototrack/internal/pkg/models"
)

// EventGW defines the interface for publishing tracker events to the message bus
type EventGW interface {
	// PublishSpeedAlarm publishes a speed limit violation event
	PublishSpeedAlarm(ctx context.Context, alarm models.SpeedAlarm) error

	// PublishNotification mirrors a device notification to the bus
	PublishNotification(ctx context.Context, entry models.TimelineEntry) error
}
