package tracker

import "github.com/mototrack/mototrack/internal/pkg/models"

// Display is the scalar side of a dashboard session: named display regions
// whose content is fully replaced on every update, plus the timeline regions
// and local user-facing alerts. Implemented by the websocket hub.
type Display interface {
	// SetField replaces the content of one scalar display region
	SetField(field, value string)

	// ReplaceTimeline replaces a timeline region (events or notifications)
	// with entries ordered newest first
	ReplaceTimeline(kind string, entries []models.TimelineEntry)

	// Alert raises a local user-facing alert
	Alert(title, body string)

	// SetCommandBusy reflects whether a device command is in flight, so the
	// command controls can be disabled while one is pending
	SetCommandBusy(busy bool)
}

// MapRenderer is the widget-library side of a dashboard session: marker
// placement and camera control for named viewports. Implemented by the
// websocket hub, which mirrors the calls to the browser map widgets.
type MapRenderer interface {
	// ContainerReady reports whether the backing container for a viewport
	// exists in the page yet
	ContainerReady(name string) bool

	// PlaceMarker creates the vehicle marker on a viewport
	PlaceMarker(viewport string, pos models.Coordinates, popup models.MarkerPopup)

	// MoveMarker repositions an existing marker and refreshes its popup
	MoveMarker(viewport string, pos models.Coordinates, popup models.MarkerPopup)

	// Recenter moves a viewport's camera
	Recenter(viewport string, center models.Coordinates, zoom int)

	// ReplaceRoute replaces the route polyline on a viewport
	ReplaceRoute(viewport string, points []models.RoutePoint)
}
