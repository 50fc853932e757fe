package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/middleware"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/tracker"
	httpHandler "github.com/mototrack/mototrack/services/tracker/handler/http"
	wsHandler "github.com/mototrack/mototrack/services/tracker/handler/websocket"
)

// HTTPHandler combines all handlers for the tracker service
type HTTPHandler struct {
	trackerHTTP *httpHandler.TrackerHandler
	hub         *wsHandler.Hub
	cfg         *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(
	trackerUC tracker.TrackerUC,
	repo tracker.DeviceStateRepo,
	hub *wsHandler.Hub,
	cfg *models.Config,
) *HTTPHandler {
	return &HTTPHandler{
		trackerHTTP: httpHandler.NewTrackerHandler(trackerUC, repo),
		hub:         hub,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all tracker routes. Everything is session-guarded;
// the websocket endpoint authenticates during the upgrade instead.
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/tracker", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.GET("/state", h.trackerHTTP.GetState)
	api.PUT("/settings/speed-limit", h.trackerHTTP.UpdateSpeedLimit)
	api.PUT("/geofence/config", h.trackerHTTP.UpdateGeofence)
	api.POST("/commands/:name", h.trackerHTTP.SendCommand)
	api.GET("/history/export", h.trackerHTTP.ExportCSV)
	api.GET("/history/route", h.trackerHTTP.GetRoute)

	e.GET("/ws/dashboard", h.hub.HandleConnection)
}
