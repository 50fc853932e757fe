// Package websocket carries the dashboard session: it implements the display
// and map-renderer surfaces on top of the shared connection manager, mirrors
// every render call to connected clients, and replays the last-known state to
// sessions that connect or refresh mid-stream.
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	ws "github.com/mototrack/mototrack/internal/pkg/websocket"
	"github.com/mototrack/mototrack/services/tracker"
	"github.com/mototrack/mototrack/services/tracker/usecase"
)

// tabViewports maps dashboard tabs to the viewport they focus
var tabViewports = map[string]string{
	constants.TabOverview: usecase.ViewportOverview,
	constants.TabMap:      usecase.ViewportFull,
}

// Hub is the server side of every dashboard session. It remembers the current
// rendered state so that render calls are broadcast as deltas while new
// sessions get a full replay.
type Hub struct {
	manager *ws.Manager
	tracker tracker.TrackerUC

	mu          sync.RWMutex
	containers  map[string]bool
	activeTab   string
	fields      map[string]string
	timelines   map[string][]models.TimelineEntry
	markers     map[string]models.MarkerUpdate
	cameras     map[string]models.RecenterUpdate
	routes      map[string]models.RouteUpdate
	commandBusy bool

	// postSwitch hooks run in registration order after every tab switch
	postSwitch []func(tab string)
}

// NewHub creates a hub on top of the shared connection manager
func NewHub(manager *ws.Manager) *Hub {
	h := &Hub{
		manager:    manager,
		containers: make(map[string]bool),
		activeTab:  constants.TabOverview,
		fields:     make(map[string]string),
		timelines:  make(map[string][]models.TimelineEntry),
		markers:    make(map[string]models.MarkerUpdate),
		cameras:    make(map[string]models.RecenterUpdate),
		routes:     make(map[string]models.RouteUpdate),
	}
	h.postSwitch = []func(string){
		h.refocusViewport,
		h.refreshRoute,
	}
	return h
}

// SetTracker wires the usecase in after construction; the usecase needs the
// hub as its display and renderer, so the wiring is necessarily two-phase.
func (h *Hub) SetTracker(uc tracker.TrackerUC) {
	h.tracker = uc
}

// HandleConnection upgrades and serves one dashboard session
func (h *Hub) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *Hub) handleClient(client *models.WebSocketClient, conn *gorilla.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("Dashboard session connected",
		logger.String("user_id", client.UserID))

	h.replayState(conn)
	h.tracker.KickViewports("client_connect")

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Info("Dashboard session closed",
				logger.String("user_id", client.UserID))
			return nil
		}

		if err := h.handleMessage(client, msg); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, err.Error())
		}
	}
}

func (h *Hub) handleMessage(client *models.WebSocketClient, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client.Conn, constants.EventPong, nil)

	case constants.EventContainerReady:
		var ready models.ContainerReadyMessage
		if err := json.Unmarshal(msg.Data, &ready); err != nil {
			return err
		}
		h.mu.Lock()
		h.containers[ready.Name] = true
		h.mu.Unlock()
		h.tracker.MarkContainerReady(ready.Name)
		return nil

	case constants.EventTabSwitch:
		var sw models.TabSwitchMessage
		if err := json.Unmarshal(msg.Data, &sw); err != nil {
			return err
		}
		h.switchTab(sw.Tab)
		return nil

	case constants.EventRefresh:
		h.replayState(client.Conn)
		return nil

	default:
		logger.Debug("Ignoring unknown client event",
			logger.String("event", msg.Event))
		return nil
	}
}

func (h *Hub) switchTab(tab string) {
	h.mu.Lock()
	h.activeTab = tab
	hooks := h.postSwitch
	h.mu.Unlock()

	logger.Debug("Tab switched", logger.String("tab", tab))

	for _, hook := range hooks {
		hook(tab)
	}
}

// refocusViewport keeps the usecase's notion of the focused viewport in step
// with the visible tab
func (h *Hub) refocusViewport(tab string) {
	h.tracker.SetActiveViewport(tabViewports[tab])
	h.manager.Broadcast(constants.EventViewportActive, models.TabSwitchMessage{Tab: tab})

	if _, ok := tabViewports[tab]; ok {
		h.tracker.KickViewports("tab_switch")
	}
}

// refreshRoute redraws the day's route when the history tab opens
func (h *Hub) refreshRoute(tab string) {
	if tab != constants.TabHistory {
		return
	}

	points, err := h.tracker.RouteToday(context.Background())
	if err != nil {
		logger.Warn("Failed to load today's route", logger.Err(err))
		return
	}
	h.ReplaceRoute(usecase.ViewportFull, points)
}

// replayState sends the full last-known rendered state to one connection, so
// a session that attaches mid-stream starts from current data instead of
// waiting for the next device write
func (h *Hub) replayState(conn *gorilla.Conn) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for field, value := range h.fields {
		h.manager.SendMessage(conn, constants.EventDisplayUpdate,
			models.DisplayUpdate{Field: field, Value: value})
	}
	for _, marker := range h.markers {
		h.manager.SendMessage(conn, constants.EventMarkerUpdate, marker)
	}
	for _, camera := range h.cameras {
		h.manager.SendMessage(conn, constants.EventRecenter, camera)
	}
	for kind, entries := range h.timelines {
		h.manager.SendMessage(conn, constants.EventTimeline,
			models.TimelineUpdate{Kind: kind, Entries: entries})
	}
	for _, route := range h.routes {
		h.manager.SendMessage(conn, constants.EventRouteReplace, route)
	}
	h.manager.SendMessage(conn, constants.EventCommandState,
		models.CommandStateMessage{Busy: h.commandBusy})
}

// SetField implements tracker.Display
func (h *Hub) SetField(field, value string) {
	h.mu.Lock()
	h.fields[field] = value
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventDisplayUpdate,
		models.DisplayUpdate{Field: field, Value: value})
}

// ReplaceTimeline implements tracker.Display
func (h *Hub) ReplaceTimeline(kind string, entries []models.TimelineEntry) {
	h.mu.Lock()
	h.timelines[kind] = entries
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventTimeline,
		models.TimelineUpdate{Kind: kind, Entries: entries})
}

// Alert implements tracker.Display
func (h *Hub) Alert(title, body string) {
	h.manager.Broadcast(constants.EventAlert,
		models.AlertMessage{Title: title, Body: body})
}

// SetCommandBusy implements tracker.Display
func (h *Hub) SetCommandBusy(busy bool) {
	h.mu.Lock()
	h.commandBusy = busy
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventCommandState,
		models.CommandStateMessage{Busy: busy})
}

// ContainerReady implements tracker.MapRenderer
func (h *Hub) ContainerReady(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.containers[name]
}

// PlaceMarker implements tracker.MapRenderer
func (h *Hub) PlaceMarker(viewport string, pos models.Coordinates, popup models.MarkerPopup) {
	h.sendMarker(viewport, pos, popup)
}

// MoveMarker implements tracker.MapRenderer. The client keys markers by
// viewport, so placement and movement share one wire event.
func (h *Hub) MoveMarker(viewport string, pos models.Coordinates, popup models.MarkerPopup) {
	h.sendMarker(viewport, pos, popup)
}

func (h *Hub) sendMarker(viewport string, pos models.Coordinates, popup models.MarkerPopup) {
	update := models.MarkerUpdate{Viewport: viewport, Position: pos, Popup: popup}

	h.mu.Lock()
	h.markers[viewport] = update
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventMarkerUpdate, update)
}

// Recenter implements tracker.MapRenderer
func (h *Hub) Recenter(viewport string, center models.Coordinates, zoom int) {
	update := models.RecenterUpdate{Viewport: viewport, Center: center, Zoom: zoom}

	h.mu.Lock()
	h.cameras[viewport] = update
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventRecenter, update)
}

// ReplaceRoute implements tracker.MapRenderer
func (h *Hub) ReplaceRoute(viewport string, points []models.RoutePoint) {
	update := models.RouteUpdate{Viewport: viewport, Points: points}

	h.mu.Lock()
	h.routes[viewport] = update
	h.mu.Unlock()

	h.manager.Broadcast(constants.EventRouteReplace, update)
}
