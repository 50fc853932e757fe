package usecase

import (
	"math/rand"
	"sync"

	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/tracker"
)

// recenterProbability is the chance the overview viewport follows the vehicle
// on any given fix. The focused viewport always follows while active.
const recenterProbability = 0.3

// MarkerController owns the vehicle marker on each viewport. Markers are
// created on the first valid fix, then only ever moved; last write wins.
type MarkerController struct {
	mu       sync.Mutex
	renderer tracker.MapRenderer

	// randFloat drives the stochastic overview recentre; replaced in tests
	randFloat func() float64
}

// NewMarkerController creates a marker controller backed by the renderer
func NewMarkerController(renderer tracker.MapRenderer) *MarkerController {
	return &MarkerController{
		renderer:  renderer,
		randFloat: rand.Float64,
	}
}

// PlaceOrMove applies a valid fix to one viewport: creates the marker if it
// does not exist yet, moves it otherwise, and recentres the camera per the
// viewport's follow policy. active reports whether the viewport is the
// currently focused view.
func (mc *MarkerController) PlaceOrMove(vp *Viewport, loc *models.DeviceLocation, active bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	pos := loc.Coordinates()
	popup := buildPopup(loc)

	if vp.Marker == nil {
		vp.Marker = &Marker{Position: pos, Popup: popup}
		mc.renderer.PlaceMarker(vp.Name, pos, popup)
	} else {
		vp.Marker.Position = pos
		vp.Marker.Popup = popup
		mc.renderer.MoveMarker(vp.Name, pos, popup)
	}

	if mc.shouldRecenter(vp, active) {
		vp.Center = pos
		mc.renderer.Recenter(vp.Name, pos, vp.Zoom)
	}
}

// Refocus snaps a viewport's camera back to its marker, if one exists. Used
// when a viewport becomes the focused view again.
func (mc *MarkerController) Refocus(vp *Viewport) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if vp.Marker == nil {
		return
	}
	vp.Center = vp.Marker.Position
	mc.renderer.Recenter(vp.Name, vp.Marker.Position, vp.Zoom)
}

// shouldRecenter applies the follow policy: the overview viewport follows the
// vehicle on a fraction of fixes so the user can still pan around, while the
// focused viewport tracks every fix but only while it is actually on screen.
func (mc *MarkerController) shouldRecenter(vp *Viewport, active bool) bool {
	if vp.Primary {
		return mc.randFloat() < recenterProbability
	}
	return active
}

func buildPopup(loc *models.DeviceLocation) models.MarkerPopup {
	return models.MarkerPopup{
		SpeedKmh:   loc.SpeedKmh,
		Satellites: loc.Satellites,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
	}
}
