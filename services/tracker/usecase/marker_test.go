package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
)

func fix(lat, lng, speed float64, sats int) *models.DeviceLocation {
	return &models.DeviceLocation{Latitude: lat, Longitude: lng, SpeedKmh: speed, Satellites: sats}
}

func TestPlaceOrMove_CreatesThenMoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	mc := NewMarkerController(renderer)
	mc.randFloat = func() float64 { return 1 }

	vp := &Viewport{Name: ViewportOverview, Zoom: overviewZoom, Primary: true}

	first := fix(14.6, 120.98, 30, 7)
	second := fix(14.61, 120.99, 45.5, 9)

	renderer.EXPECT().PlaceMarker(ViewportOverview,
		models.Coordinates{Latitude: 14.6, Longitude: 120.98},
		models.MarkerPopup{SpeedKmh: 30, Satellites: 7, Latitude: 14.6, Longitude: 120.98})
	renderer.EXPECT().MoveMarker(ViewportOverview,
		models.Coordinates{Latitude: 14.61, Longitude: 120.99},
		models.MarkerPopup{SpeedKmh: 45.5, Satellites: 9, Latitude: 14.61, Longitude: 120.99})

	mc.PlaceOrMove(vp, first, false)
	mc.PlaceOrMove(vp, second, false)

	assert.NotNil(t, vp.Marker)
	assert.Equal(t, 14.61, vp.Marker.Position.Latitude)
}

func TestPlaceOrMove_PrimaryRecentersStochastically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	mc := NewMarkerController(renderer)

	vp := &Viewport{Name: ViewportOverview, Zoom: overviewZoom, Primary: true}
	loc := fix(14.6, 120.98, 30, 7)
	pos := loc.Coordinates()

	renderer.EXPECT().PlaceMarker(ViewportOverview, pos, gomock.Any())
	renderer.EXPECT().MoveMarker(ViewportOverview, pos, gomock.Any())
	// below the threshold: follow
	renderer.EXPECT().Recenter(ViewportOverview, pos, overviewZoom)

	mc.randFloat = func() float64 { return 0.1 }
	mc.PlaceOrMove(vp, loc, false)

	// above the threshold: leave the camera alone
	mc.randFloat = func() float64 { return 0.9 }
	mc.PlaceOrMove(vp, loc, false)

	assert.Equal(t, pos, vp.Center)
}

func TestPlaceOrMove_FocusedViewportFollowsWhileActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	mc := NewMarkerController(renderer)
	mc.randFloat = func() float64 { return 0 }

	vp := &Viewport{Name: ViewportFull, Zoom: fullZoom}
	loc := fix(14.6, 120.98, 30, 7)
	pos := loc.Coordinates()

	renderer.EXPECT().PlaceMarker(ViewportFull, pos, gomock.Any())
	renderer.EXPECT().Recenter(ViewportFull, pos, fullZoom)
	mc.PlaceOrMove(vp, loc, true)

	// not active: camera stays put even with the marker moving
	renderer.EXPECT().MoveMarker(ViewportFull, pos, gomock.Any())
	mc.PlaceOrMove(vp, loc, false)
}

func TestRefocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	mc := NewMarkerController(renderer)

	pos := models.Coordinates{Latitude: 14.6, Longitude: 120.98}
	vp := &Viewport{Name: ViewportFull, Zoom: fullZoom, Marker: &Marker{Position: pos}}

	renderer.EXPECT().Recenter(ViewportFull, pos, fullZoom)
	mc.Refocus(vp)

	assert.Equal(t, pos, vp.Center)
}

func TestRefocus_NoMarkerIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	mc := NewMarkerController(renderer)

	mc.Refocus(&Viewport{Name: ViewportFull, Zoom: fullZoom})
}
