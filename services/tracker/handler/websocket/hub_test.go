package websocket

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/models"
	ws "github.com/mototrack/mototrack/internal/pkg/websocket"
	"github.com/mototrack/mototrack/services/tracker/mocks"
	"github.com/mototrack/mototrack/services/tracker/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHub(ctrl *gomock.Controller) (*Hub, *mocks.MockTrackerUC) {
	uc := mocks.NewMockTrackerUC(ctrl)
	h := NewHub(ws.NewManager(models.JWTConfig{Secret: "test-secret"}))
	h.SetTracker(uc)
	return h, uc
}

func clientMessage(t *testing.T, event string, data interface{}) models.WSMessage {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return models.WSMessage{Event: event, Data: raw}
}

func TestContainerReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, uc := setupHub(ctrl)
	client := &models.WebSocketClient{UserID: "user-1"}

	assert.False(t, h.ContainerReady(usecase.ViewportOverview))

	uc.EXPECT().MarkContainerReady(usecase.ViewportOverview)
	err := h.handleMessage(client, clientMessage(t, constants.EventContainerReady,
		models.ContainerReadyMessage{Name: usecase.ViewportOverview}))

	require.NoError(t, err)
	assert.True(t, h.ContainerReady(usecase.ViewportOverview))
	assert.False(t, h.ContainerReady(usecase.ViewportFull))
}

func TestTabSwitch_MapFocusesFullViewport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, uc := setupHub(ctrl)
	client := &models.WebSocketClient{UserID: "user-1"}

	uc.EXPECT().SetActiveViewport(usecase.ViewportFull)
	uc.EXPECT().KickViewports("tab_switch")

	err := h.handleMessage(client, clientMessage(t, constants.EventTabSwitch,
		models.TabSwitchMessage{Tab: constants.TabMap}))

	require.NoError(t, err)
	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Equal(t, constants.TabMap, h.activeTab)
}

func TestTabSwitch_HistoryLoadsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, uc := setupHub(ctrl)

	points := []models.RoutePoint{{Latitude: 14.6, Longitude: 120.98, Geohash: "wdw4f88"}}
	// no viewport maps to the history tab
	uc.EXPECT().SetActiveViewport("")
	uc.EXPECT().RouteToday(gomock.Any()).Return(points, nil)

	h.switchTab(constants.TabHistory)

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Equal(t, points, h.routes[usecase.ViewportFull].Points)
}

func TestTabSwitch_HooksRunInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, uc := setupHub(ctrl)
	uc.EXPECT().SetActiveViewport(gomock.Any()).AnyTimes()
	uc.EXPECT().KickViewports(gomock.Any()).AnyTimes()

	var order []string
	h.postSwitch = []func(string){
		func(string) { order = append(order, "first") },
		func(string) { order = append(order, "second") },
	}

	h.switchTab(constants.TabOverview)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSetField_StateKeptForReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := setupHub(ctrl)

	h.SetField(constants.FieldSpeed, "42")
	h.SetField(constants.FieldSpeed, "43")

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Equal(t, "43", h.fields[constants.FieldSpeed])
}

func TestMarkerState_LastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := setupHub(ctrl)

	h.PlaceMarker(usecase.ViewportOverview, models.Coordinates{Latitude: 14.6, Longitude: 120.98}, models.MarkerPopup{})
	h.MoveMarker(usecase.ViewportOverview, models.Coordinates{Latitude: 14.61, Longitude: 120.99}, models.MarkerPopup{})

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Equal(t, 14.61, h.markers[usecase.ViewportOverview].Position.Latitude)
}

func TestSetCommandBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := setupHub(ctrl)

	h.SetCommandBusy(true)
	h.mu.RLock()
	assert.True(t, h.commandBusy)
	h.mu.RUnlock()

	h.SetCommandBusy(false)
	h.mu.RLock()
	assert.False(t, h.commandBusy)
	h.mu.RUnlock()
}

func TestUnknownClientEventIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := setupHub(ctrl)
	client := &models.WebSocketClient{UserID: "user-1"}

	err := h.handleMessage(client, models.WSMessage{Event: "telepathy"})
	assert.NoError(t, err)
}
