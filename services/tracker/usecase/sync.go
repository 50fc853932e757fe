package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/pkg/statestore"
	"github.com/mototrack/mototrack/internal/utils"
	"github.com/mototrack/mototrack/services/tracker"
)

// Viewport names and initial zoom levels. The overview viewport sits on the
// main tab; the full viewport fills the dedicated map tab.
const (
	ViewportOverview = "map"
	ViewportFull     = "map-full"

	overviewZoom = 13
	fullZoom     = 15
)

// gaugeWarningRatio is the fraction of the speed limit at which the gauge
// turns to warning
const gaugeWarningRatio = 0.8

// alarmFloorKmh suppresses speed alarms at low speeds regardless of the
// configured limit, filtering GPS speed noise while stationary
const alarmFloorKmh = 10.0

// TrackerUC implements tracker.TrackerUC: it consumes the device streams,
// renders them onto the display and viewports, and serves the command,
// settings, and history operations.
type TrackerUC struct {
	cfg       *models.Config
	repo      tracker.DeviceStateRepo
	gateway   tracker.EventGW
	display   tracker.Display
	viewports *ViewportRegistry
	markers   *MarkerController
	commands  *CommandDispatcher
	exporter  *ExportService

	mu         sync.Mutex
	speedLimit int
	runCtx     context.Context

	// now is the clock; replaced in tests
	now func() time.Time
}

// NewTrackerUC creates the dashboard usecase wired to its ports
func NewTrackerUC(
	cfg *models.Config,
	repo tracker.DeviceStateRepo,
	gateway tracker.EventGW,
	display tracker.Display,
	renderer tracker.MapRenderer,
) *TrackerUC {
	center := models.Coordinates{
		Latitude:  cfg.Tracker.DefaultLatitude,
		Longitude: cfg.Tracker.DefaultLongitude,
	}
	specs := []ViewportSpec{
		{Name: ViewportOverview, Center: center, Zoom: overviewZoom, Primary: true},
		{Name: ViewportFull, Center: center, Zoom: fullZoom},
	}

	uc := &TrackerUC{
		cfg:        cfg,
		repo:       repo,
		gateway:    gateway,
		display:    display,
		viewports:  NewViewportRegistry(renderer, specs),
		markers:    NewMarkerController(renderer),
		exporter:   NewExportService(repo),
		speedLimit: cfg.Tracker.DefaultSpeedLimitKmh,
		now:        time.Now,
	}
	uc.commands = NewCommandDispatcher(repo, display.SetCommandBusy)
	return uc
}

// Run loads the persisted speed limit, subscribes to every device stream, and
// dispatches updates until ctx is done
func (uc *TrackerUC) Run(ctx context.Context) error {
	uc.mu.Lock()
	uc.runCtx = ctx
	uc.mu.Unlock()

	if limit, err := uc.repo.SpeedLimit(ctx); err == nil {
		uc.setLimit(limit)
	} else if !errors.Is(err, statestore.ErrNotFound) {
		logger.Warn("Failed to load speed limit, using default",
			logger.Err(err),
			logger.Int("default", uc.SpeedLimit()))
	}

	uc.KickViewports("session_start")

	streams := []struct {
		name    string
		handler func([]byte)
	}{
		{constants.StreamLocation, uc.OnLocation},
		{constants.StreamStatus, uc.OnStatus},
		{constants.StreamGeofence, uc.OnGeofence},
		{constants.StreamStats, uc.OnStats},
	}
	for _, s := range streams {
		ch, stop, err := uc.repo.Subscribe(ctx, s.name)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s stream: %w", s.name, err)
		}
		defer stop()
		go uc.consume(ctx, ch, s.handler)
	}

	for _, kind := range []string{constants.StreamEvents, constants.StreamNotifications} {
		ch, stop, err := uc.repo.Subscribe(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s stream: %w", kind, err)
		}
		defer stop()
		go uc.consumeTimeline(ctx, kind, ch)
	}

	logger.Info("Device state sync started",
		logger.String("device_id", uc.cfg.Tracker.DeviceID))

	<-ctx.Done()
	return nil
}

func (uc *TrackerUC) consume(ctx context.Context, ch <-chan []byte, handler func([]byte)) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-ch:
			if !ok {
				return
			}
			handler(raw)
		}
	}
}

// consumeTimeline re-reads the log tail on every append signal, so the
// rendered timeline is always the store's latest window rather than an
// accumulation of deltas.
func (uc *TrackerUC) consumeTimeline(ctx context.Context, kind string, ch <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			tail, err := uc.repo.TailTimeline(ctx, kind, constants.TimelineTail)
			if err != nil {
				logger.Warn("Failed to read timeline tail",
					logger.String("kind", kind),
					logger.Err(err))
				continue
			}
			uc.OnTimelineBatch(kind, tail)
		}
	}
}

// OnLocation renders one location payload. Zero coordinates are the device's
// no-fix sentinel: the coordinate fields show a placeholder and no marker or
// camera state changes.
func (uc *TrackerUC) OnLocation(raw []byte) {
	var loc models.DeviceLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		logger.Warn("Dropping malformed location payload", logger.Err(err))
		return
	}

	if !loc.Valid() {
		for _, field := range []string{
			constants.FieldLatitude, constants.FieldLongitude,
			constants.FieldLatitudeMap, constants.FieldLongitudeMap,
		} {
			uc.display.SetField(field, constants.DisplayAcquiring)
		}
		return
	}

	lat := strconv.FormatFloat(loc.Latitude, 'f', 6, 64)
	lng := strconv.FormatFloat(loc.Longitude, 'f', 6, 64)
	sats := strconv.Itoa(loc.Satellites)

	uc.display.SetField(constants.FieldLatitude, lat)
	uc.display.SetField(constants.FieldLongitude, lng)
	uc.display.SetField(constants.FieldLatitudeMap, lat)
	uc.display.SetField(constants.FieldLongitudeMap, lng)
	uc.display.SetField(constants.FieldSpeed, strconv.Itoa(int(math.Round(loc.SpeedKmh))))
	uc.display.SetField(constants.FieldSpeedMap, strconv.FormatFloat(loc.SpeedKmh, 'f', 1, 64))
	uc.display.SetField(constants.FieldSatellites, sats)
	uc.display.SetField(constants.FieldSatellitesMap, sats)

	limit := uc.SpeedLimit()
	uc.display.SetField(constants.FieldSpeedGauge, gaugeState(loc.SpeedKmh, limit))

	if loc.SpeedKmh > float64(limit) && loc.SpeedKmh > alarmFloorKmh {
		uc.raiseSpeedAlarm(loc, limit)
	}

	if uc.viewports.MissingAny() {
		uc.viewports.Kick("location_update")
	}

	active := uc.viewports.Active()
	for _, vp := range uc.viewports.All() {
		uc.markers.PlaceOrMove(vp, &loc, vp.Name == active)
	}
}

func gaugeState(speedKmh float64, limit int) string {
	switch {
	case speedKmh > float64(limit):
		return constants.GaugeOver
	case speedKmh > gaugeWarningRatio*float64(limit):
		return constants.GaugeWarning
	default:
		return constants.GaugeNormal
	}
}

func (uc *TrackerUC) raiseSpeedAlarm(loc models.DeviceLocation, limit int) {
	uc.display.Alert("Speed Alert!",
		fmt.Sprintf("Vehicle exceeding speed limit: %.0f km/h (limit: %d km/h)", loc.SpeedKmh, limit))

	alarm := models.SpeedAlarm{
		DeviceID: uc.cfg.Tracker.DeviceID,
		SpeedKmh: loc.SpeedKmh,
		LimitKmh: limit,
		At:       uc.now(),
	}
	if err := uc.gateway.PublishSpeedAlarm(uc.ctx(), alarm); err != nil {
		logger.Warn("Failed to publish speed alarm", logger.Err(err))
	}
}

// OnStatus renders one status payload. Missing connection and boolean fields
// default to WiFi, stopped, and disarmed.
func (uc *TrackerUC) OnStatus(raw []byte) {
	var st models.DeviceStatus
	if err := json.Unmarshal(raw, &st); err != nil {
		logger.Warn("Dropping malformed status payload", logger.Err(err))
		return
	}

	status := st.Status
	if status == "" {
		status = "offline"
	}
	conn := st.Connection
	if conn == "" {
		conn = "WiFi"
	}

	uc.display.SetField(constants.FieldSystemStatus,
		fmt.Sprintf("%s (%s)", capitalize(status), conn))

	color := constants.ColorOK
	if strings.EqualFold(conn, "GSM") {
		color = constants.ColorWarning
	}
	uc.display.SetField(constants.FieldStatusColor, color)

	engine := constants.EngineStopped
	if st.EngineRunning {
		engine = constants.EngineRunning
	}
	uc.display.SetField(constants.FieldEngineStatus, engine)

	armed, armLabel := constants.SystemDisarmed, "Arm System"
	if st.SystemArmed {
		armed, armLabel = constants.SystemArmed, "Disarm System"
	}
	uc.display.SetField(constants.FieldArmedStatus, armed)
	uc.display.SetField(constants.FieldArmLabel, armLabel)

	lastUpdate := st.LastUpdate
	if lastUpdate == "" {
		lastUpdate = utils.FormatEpoch(st.Timestamp, uc.now())
	}
	uc.display.SetField(constants.FieldLastUpdate, lastUpdate)

	if st.Uptime > 0 {
		uc.display.SetField(constants.FieldUptime, formatUptime(st.Uptime))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatUptime(seconds int64) string {
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// OnGeofence renders one geofence payload
func (uc *TrackerUC) OnGeofence(raw []byte) {
	var g models.GeofenceState
	if err := json.Unmarshal(raw, &g); err != nil {
		logger.Warn("Dropping malformed geofence payload", logger.Err(err))
		return
	}

	zone := g.ZoneName(constants.DefaultZoneName)
	if g.Inside {
		uc.display.SetField(constants.FieldGeofence, fmt.Sprintf("Inside %s ✓", zone))
		uc.display.SetField(constants.FieldGeofenceColor, constants.ColorOK)
		return
	}
	uc.display.SetField(constants.FieldGeofence,
		fmt.Sprintf("Outside %s (%dm)", zone, int(math.Round(g.Distance))))
	uc.display.SetField(constants.FieldGeofenceColor, constants.ColorAlert)
}

// OnStats renders one trip statistics payload. Missing fields decode as zero
// and render as zero values rather than being skipped.
func (uc *TrackerUC) OnStats(raw []byte) {
	var stats models.TripStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.Warn("Dropping malformed stats payload", logger.Err(err))
		return
	}

	uc.display.SetField(constants.FieldDistanceToday,
		fmt.Sprintf("%.2f km", stats.DistanceTodayKm))
	uc.display.SetField(constants.FieldMaxSpeed,
		fmt.Sprintf("%d km/h", int(math.Round(stats.MaxSpeedKmh))))
}

// OnTimelineBatch replaces one timeline region with the given raw tail,
// re-ordered newest first. A fresh notifications batch also raises an alert
// for its newest entry and mirrors it to the bus.
func (uc *TrackerUC) OnTimelineBatch(kind string, raws [][]byte) {
	entries := make([]models.TimelineEntry, 0, len(raws))
	for _, raw := range raws {
		var e models.TimelineEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			logger.Warn("Dropping malformed timeline entry",
				logger.String("kind", kind),
				logger.Err(err))
			continue
		}
		entries = append(entries, e)
	}

	// store order is oldest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	uc.display.ReplaceTimeline(kind, entries)

	if kind == constants.StreamNotifications && len(entries) > 0 {
		latest := entries[0]
		title := latest.Title
		if title == "" {
			title = "Vehicle Notification"
		}
		uc.display.Alert(title, latest.Body)

		if err := uc.gateway.PublishNotification(uc.ctx(), latest); err != nil {
			logger.Warn("Failed to mirror notification to bus", logger.Err(err))
		}
	}
}

// KickViewports runs the viewport creation retry schedule
func (uc *TrackerUC) KickViewports(trigger string) {
	uc.viewports.Kick(trigger)
}

// MarkContainerReady retries viewport creation after a container appears
func (uc *TrackerUC) MarkContainerReady(name string) {
	logger.Debug("Container ready", logger.String("container", name))
	uc.viewports.Kick("container_ready")
}

// SetActiveViewport records the focused viewport and snaps its camera back to
// the vehicle if it already has a marker
func (uc *TrackerUC) SetActiveViewport(name string) {
	uc.viewports.SetActive(name)
	if vp := uc.viewports.Get(name); vp != nil {
		uc.markers.Refocus(vp)
	}
}

// SendCommand dispatches one device command
func (uc *TrackerUC) SendCommand(ctx context.Context, command string) error {
	return uc.commands.Send(ctx, command)
}

// ToggleArm dispatches the inverse of the current armed state
func (uc *TrackerUC) ToggleArm(ctx context.Context, confirmed bool) (string, error) {
	return uc.commands.ToggleArm(ctx, confirmed)
}

// ExportToday returns today's history as a CSV download
func (uc *TrackerUC) ExportToday(ctx context.Context) (string, []byte, error) {
	return uc.exporter.ExportToday(ctx)
}

// RouteToday returns today's route polyline
func (uc *TrackerUC) RouteToday(ctx context.Context) ([]models.RoutePoint, error) {
	return uc.exporter.RouteToday(ctx)
}

// SpeedLimit returns the limit currently applied to gauge and alarm checks
func (uc *TrackerUC) SpeedLimit() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.speedLimit
}

func (uc *TrackerUC) setLimit(limit int) {
	uc.mu.Lock()
	uc.speedLimit = limit
	uc.mu.Unlock()
}

// ctx returns the session context once Run has started
func (uc *TrackerUC) ctx() context.Context {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.runCtx != nil {
		return uc.runCtx
	}
	return context.Background()
}
