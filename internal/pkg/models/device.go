package models

import "time"

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeviceLocation represents a GPS fix pushed by the device.
// The device reports latitude=0 and longitude=0 while it has no satellite fix.
type DeviceLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	SpeedKmh   float64 `json:"speed"`
	Satellites int     `json:"satellites"`
	Altitude   float64 `json:"altitude,omitempty"`
	Timestamp  int64   `json:"timestamp,omitempty"` // epoch, seconds or milliseconds depending on firmware
}

// Valid reports whether the location carries a real GPS fix.
// Zero coordinates are the device's "no fix yet" sentinel and must never
// move markers or recentre viewports.
func (l *DeviceLocation) Valid() bool {
	return l != nil && l.Latitude != 0 && l.Longitude != 0
}

// Coordinates returns the fix as a Coordinates pair
func (l *DeviceLocation) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// DeviceStatus represents the device's operational status record
type DeviceStatus struct {
	Status        string `json:"status"`     // online, offline, idle
	Connection    string `json:"connection"` // WiFi or GSM
	EngineRunning bool   `json:"engineRunning"`
	SystemArmed   bool   `json:"systemArmed"`
	LastUpdate    string `json:"lastUpdate,omitempty"`
	Timestamp     int64  `json:"timestamp,omitempty"`
	Uptime        int64  `json:"uptime,omitempty"` // seconds
}

// GeofenceState represents the device-evaluated geofence position
type GeofenceState struct {
	Fence    string  `json:"fence,omitempty"`
	Name     string  `json:"name,omitempty"`
	Distance float64 `json:"distance"` // meters from the zone boundary
	Inside   bool    `json:"inside"`
}

// ZoneName returns the configured zone name, falling back to the default
func (g *GeofenceState) ZoneName(fallback string) string {
	if g.Fence != "" {
		return g.Fence
	}
	if g.Name != "" {
		return g.Name
	}
	return fallback
}

// GeofenceConfig is the zone definition written back to the device
type GeofenceConfig struct {
	CenterLat    float64 `json:"centerLat"`
	CenterLng    float64 `json:"centerLng"`
	RadiusMeters float64 `json:"radiusMeters"`
	Name         string  `json:"name"`
	Enabled      bool    `json:"enabled"`
}

// TripStats represents the device's daily trip statistics record
type TripStats struct {
	DistanceTodayKm float64 `json:"distanceToday"`
	MaxSpeedKmh     float64 `json:"maxSpeed"`
}

// TimelineEntry is one event or notification from the device's append logs.
// Events carry only Event; notifications carry Title and Body.
type TimelineEntry struct {
	Event     string `json:"event,omitempty"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// HistoryRecord is one archived location sample, queryable by timestamp
type HistoryRecord struct {
	Timestamp  int64   `json:"timestamp"` // epoch milliseconds
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Speed      float64 `json:"speed"`
	Altitude   float64 `json:"altitude"`
	Satellites int     `json:"satellites"`
}

// RoutePoint is one vertex of the day's route polyline
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash,omitempty"`
}

// SpeedAlarm is emitted whenever a valid fix exceeds the configured limit
type SpeedAlarm struct {
	DeviceID string    `json:"device_id"`
	SpeedKmh float64   `json:"speed_kmh"`
	LimitKmh int       `json:"limit_kmh"`
	At       time.Time `json:"at"`
}

// MarkerPopup holds the fields rendered in a vehicle marker's popup
type MarkerPopup struct {
	SpeedKmh   float64 `json:"speed_kmh"`
	Satellites int     `json:"satellites"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
