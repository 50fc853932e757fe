package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/pkg/statestore"
	"github.com/mototrack/mototrack/internal/utils"
	"github.com/mototrack/mototrack/services/tracker"
	"github.com/mototrack/mototrack/services/tracker/usecase"
)

// TrackerHandler handles HTTP requests for tracker operations
type TrackerHandler struct {
	trackerUC tracker.TrackerUC
	repo      tracker.DeviceStateRepo
}

// NewTrackerHandler creates a new tracker HTTP handler
func NewTrackerHandler(trackerUC tracker.TrackerUC, repo tracker.DeviceStateRepo) *TrackerHandler {
	return &TrackerHandler{
		trackerUC: trackerUC,
		repo:      repo,
	}
}

type stateSnapshot struct {
	Location      *models.DeviceLocation `json:"location,omitempty"`
	Armed         bool                   `json:"armed"`
	SpeedLimitKmh int                    `json:"speed_limit_kmh"`
}

// GetState returns a read-once snapshot of the device state
func (h *TrackerHandler) GetState(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot := stateSnapshot{SpeedLimitKmh: h.trackerUC.SpeedLimit()}

	loc, err := h.repo.ReadLocation(ctx)
	if err != nil && !errors.Is(err, statestore.ErrNotFound) {
		logger.Error("Failed to read location", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to read device state")
	}
	snapshot.Location = loc

	armed, err := h.repo.ArmedState(ctx)
	if err != nil {
		logger.Error("Failed to read armed state", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to read device state")
	}
	snapshot.Armed = armed

	return utils.SuccessResponse(c, http.StatusOK, "Device state", snapshot)
}

// UpdateSpeedLimit persists a new speed limit
func (h *TrackerHandler) UpdateSpeedLimit(c echo.Context) error {
	var req struct {
		LimitKmh int `json:"limit_kmh"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.trackerUC.SetSpeedLimit(c.Request().Context(), req.LimitKmh); err != nil {
		if errors.Is(err, usecase.ErrSpeedLimitOutOfRange) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update speed limit", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Speed limit updated",
		map[string]int{"limit_kmh": req.LimitKmh})
}

// UpdateGeofence persists a new geofence zone and reboots the device
func (h *TrackerHandler) UpdateGeofence(c echo.Context) error {
	var cfg models.GeofenceConfig
	if err := c.Bind(&cfg); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.trackerUC.ConfigureGeofence(c.Request().Context(), cfg); err != nil {
		if errors.Is(err, usecase.ErrInvalidGeofence) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to configure geofence", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence configured", cfg)
}

// SendCommand dispatches a device command. The arm-toggle pseudo-command
// reads the current armed state and requires explicit confirmation.
func (h *TrackerHandler) SendCommand(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return utils.BadRequestResponse(c, "command name is required")
	}

	ctx := c.Request().Context()

	if strings.EqualFold(name, "arm-toggle") {
		var req struct {
			Confirmed bool `json:"confirmed"`
		}
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "invalid request body")
		}

		command, err := h.trackerUC.ToggleArm(ctx, req.Confirmed)
		if err != nil {
			return h.commandError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Command dispatched",
			map[string]string{"command": command})
	}

	command := strings.ToUpper(name)
	if err := h.trackerUC.SendCommand(ctx, command); err != nil {
		return h.commandError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Command dispatched",
		map[string]string{"command": command})
}

func (h *TrackerHandler) commandError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrConfirmationRequired),
		errors.Is(err, usecase.ErrUnknownCommand):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, usecase.ErrCommandPending):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	default:
		logger.Error("Failed to dispatch command", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}

// ExportCSV streams today's history as a CSV attachment
func (h *TrackerHandler) ExportCSV(c echo.Context) error {
	filename, data, err := h.trackerUC.ExportToday(c.Request().Context())
	if err != nil {
		logger.Error("Failed to export history", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to export history")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// GetRoute returns today's route polyline
func (h *TrackerHandler) GetRoute(c echo.Context) error {
	points, err := h.trackerUC.RouteToday(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load route", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to load route")
	}

	message := "Route for today"
	if len(points) == 0 {
		message = "No route data for today"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, points)
}
