package constants

// State store path formats, keyed by device ID
const (
	PathLocation       = "devices/%s/location"
	PathStatus         = "devices/%s/status"
	PathGeofence       = "devices/%s/geofence"
	PathStats          = "devices/%s/stats"
	PathEvents         = "devices/%s/events"
	PathNotifications  = "devices/%s/notifications"
	PathSpeedLimit     = "devices/%s/settings/speedLimit"
	PathPendingCommand = "devices/%s/commands/pending"
	PathGeofenceConfig = "devices/%s/geofence/config"
	PathHistory        = "devices/%s/history"
)

// Stream names used by the sync loop
const (
	StreamLocation      = "location"
	StreamStatus        = "status"
	StreamGeofence      = "geofence"
	StreamStats         = "stats"
	StreamEvents        = "events"
	StreamNotifications = "notifications"
)

// Device commands. The device polls the pending-command path and executes
// the latest value; there is no acknowledgment channel.
const (
	CommandArm    = "ARM"
	CommandDisarm = "DISARM"
	CommandReboot = "REBOOT"
)

// TimelineTail is how many entries of each append log the dashboard shows
const TimelineTail = 10
