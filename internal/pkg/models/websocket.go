package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WSMessage is the envelope for every websocket frame in both directions
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage is sent to the client when an operation fails
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents an authenticated dashboard session
type WebSocketClient struct {
	UserID string
	Email  string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by a websocket connection
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ContainerReadyMessage announces that a map container exists in the page
type ContainerReadyMessage struct {
	Name string `json:"name"`
}

// TabSwitchMessage announces that the user switched dashboard tabs
type TabSwitchMessage struct {
	Tab string `json:"tab"`
}

// DisplayUpdate carries one scalar display field to the client
type DisplayUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// MarkerUpdate carries a marker placement or move to the client
type MarkerUpdate struct {
	Viewport string      `json:"viewport"`
	Position Coordinates `json:"position"`
	Popup    MarkerPopup `json:"popup"`
}

// RecenterUpdate instructs the client to move a viewport's camera
type RecenterUpdate struct {
	Viewport string      `json:"viewport"`
	Center   Coordinates `json:"center"`
	Zoom     int         `json:"zoom"`
}

// TimelineUpdate carries a full replacement of a timeline region
type TimelineUpdate struct {
	Kind    string          `json:"kind"` // events or notifications
	Entries []TimelineEntry `json:"entries"`
}

// AlertMessage is a local user-facing alert (browser notification)
type AlertMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CommandStateMessage reflects whether a device command is in flight
type CommandStateMessage struct {
	Busy bool `json:"busy"`
}

// RouteUpdate carries a full replacement of a viewport's route polyline
type RouteUpdate struct {
	Viewport string       `json:"viewport"`
	Points   []RoutePoint `json:"points"`
}
