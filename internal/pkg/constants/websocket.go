package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Client -> server
	EventContainerReady = "container_ready"
	EventTabSwitch      = "tab_switch"
	EventRefresh        = "refresh"

	// Server -> client
	EventDisplayUpdate  = "display_update"
	EventMarkerUpdate   = "marker_update"
	EventRecenter       = "recenter"
	EventTimeline       = "timeline"
	EventAlert          = "alert"
	EventCommandState   = "command_state"
	EventRouteReplace   = "route_replace"
	EventViewportActive = "viewport_active"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
)

// Dashboard tab names as reported by tab_switch messages
const (
	TabOverview = "overview"
	TabMap      = "map"
	TabHistory  = "history"
)
