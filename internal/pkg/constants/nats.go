package constants

// NATS subjects
const (
	// Tracker service
	SubjectSpeedAlarm   = "tracker.alarm.speed"
	SubjectNotification = "tracker.notification"
)
