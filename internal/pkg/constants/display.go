package constants

// Scalar display field names bound by DeviceStateSync. Each field is a
// distinct region on the dashboard; updates are full replacements.
const (
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldLatitudeMap   = "latitude-map"
	FieldLongitudeMap  = "longitude-map"
	FieldSpeed         = "current-speed"
	FieldSpeedMap      = "speed-map"
	FieldSatellites    = "satellites-mini"
	FieldSatellitesMap = "satellites-map"
	FieldSpeedGauge    = "speed-gauge"
	FieldSystemStatus  = "system-status"
	FieldStatusColor   = "status-color"
	FieldEngineStatus  = "engine-status"
	FieldArmedStatus   = "armed-status"
	FieldArmLabel      = "arm-label"
	FieldLastUpdate    = "last-update"
	FieldUptime        = "uptime"
	FieldGeofence      = "geofence-status"
	FieldGeofenceColor = "geofence-color"
	FieldDistanceToday = "distance-today"
	FieldMaxSpeed      = "max-speed"
)

// Display values for fields with a fixed vocabulary
const (
	DisplayAcquiring = "Acquiring..."

	GaugeNormal  = "normal"
	GaugeWarning = "warning" // above 80% of the speed limit
	GaugeOver    = "over"

	EngineRunning  = "Running"
	EngineStopped  = "Stopped"
	SystemArmed    = "Armed"
	SystemDisarmed = "Disarmed"

	ColorOK      = "green"
	ColorWarning = "amber"
	ColorAlert   = "red"

	// DefaultZoneName is used when the geofence record carries no name
	DefaultZoneName = "Home Zone"
)
