package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	natspkg "github.com/mototrack/mototrack/internal/pkg/nats"
)

// EventGateway implements tracker.EventGW on NATS
type EventGateway struct {
	client *natspkg.Client
}

// NewEventGateway creates a gateway publishing on the given NATS client
func NewEventGateway(client *natspkg.Client) *EventGateway {
	return &EventGateway{client: client}
}

// PublishSpeedAlarm publishes a speed limit violation event
func (g *EventGateway) PublishSpeedAlarm(ctx context.Context, alarm models.SpeedAlarm) error {
	data, err := json.Marshal(alarm)
	if err != nil {
		return fmt.Errorf("failed to marshal speed alarm: %w", err)
	}

	if err := g.client.Publish(constants.SubjectSpeedAlarm, data); err != nil {
		return fmt.Errorf("failed to publish speed alarm: %w", err)
	}

	logger.Info("Speed alarm published",
		logger.String("device_id", alarm.DeviceID),
		logger.Float64("speed_kmh", alarm.SpeedKmh),
		logger.Int("limit_kmh", alarm.LimitKmh))
	return nil
}

// PublishNotification mirrors a device notification to the bus
func (g *EventGateway) PublishNotification(ctx context.Context, entry models.TimelineEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := g.client.Publish(constants.SubjectNotification, data); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
