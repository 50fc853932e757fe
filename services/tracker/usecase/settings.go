package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
)

// Speed limit bounds accepted from the settings form
const (
	minSpeedLimitKmh = 10
	maxSpeedLimitKmh = 200
)

var (
	// ErrSpeedLimitOutOfRange is returned for limits outside the accepted bounds
	ErrSpeedLimitOutOfRange = fmt.Errorf("speed limit must be between %d and %d km/h",
		minSpeedLimitKmh, maxSpeedLimitKmh)

	// ErrInvalidGeofence is returned for malformed zone definitions
	ErrInvalidGeofence = errors.New("invalid geofence configuration")
)

// SetSpeedLimit validates, persists, and immediately applies a new speed
// limit. Gauge and alarm checks use the new limit from the next fix on.
func (uc *TrackerUC) SetSpeedLimit(ctx context.Context, limit int) error {
	if limit < minSpeedLimitKmh || limit > maxSpeedLimitKmh {
		return ErrSpeedLimitOutOfRange
	}

	if err := uc.repo.SetSpeedLimit(ctx, limit); err != nil {
		return fmt.Errorf("failed to persist speed limit: %w", err)
	}
	uc.setLimit(limit)

	logger.Info("Speed limit updated", logger.Int("limit_kmh", limit))
	return nil
}

// ConfigureGeofence validates and persists a zone definition, then reboots
// the device so it reloads the zone
func (uc *TrackerUC) ConfigureGeofence(ctx context.Context, cfg models.GeofenceConfig) error {
	if err := validateGeofence(cfg); err != nil {
		return err
	}
	cfg.Enabled = true

	if err := uc.repo.SetGeofenceConfig(ctx, cfg); err != nil {
		return fmt.Errorf("failed to persist geofence config: %w", err)
	}

	logger.Info("Geofence configured",
		logger.String("zone", cfg.Name),
		logger.Float64("radius_m", cfg.RadiusMeters))

	if err := uc.commands.Send(ctx, constants.CommandReboot); err != nil {
		return fmt.Errorf("geofence saved but reboot not dispatched: %w", err)
	}
	return nil
}

func validateGeofence(cfg models.GeofenceConfig) error {
	switch {
	case cfg.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidGeofence)
	case cfg.RadiusMeters <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidGeofence)
	case cfg.CenterLat < -90 || cfg.CenterLat > 90:
		return fmt.Errorf("%w: latitude out of range", ErrInvalidGeofence)
	case cfg.CenterLng < -180 || cfg.CenterLng > 180:
		return fmt.Errorf("%w: longitude out of range", ErrInvalidGeofence)
	}
	return nil
}
