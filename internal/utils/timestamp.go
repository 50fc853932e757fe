package utils

import "time"

// Epoch magnitude thresholds used to disambiguate device timestamps. The
// firmware emits epoch seconds on some builds and epoch milliseconds on
// others, so the magnitude is the only signal available.
const (
	epochMillisThreshold  = 1_000_000_000_000 // values above this are milliseconds
	epochSecondsThreshold = 1_000_000_000     // values above this are seconds
)

// NormalizeEpoch converts an ambiguous device epoch value into a time.Time.
// Values that fit neither magnitude fall back to the provided time.
func NormalizeEpoch(v int64, fallback time.Time) time.Time {
	switch {
	case v > epochMillisThreshold:
		return time.UnixMilli(v)
	case v > epochSecondsThreshold:
		return time.Unix(v, 0)
	default:
		return fallback
	}
}

// FormatEpoch renders an ambiguous device epoch value for display
func FormatEpoch(v int64, fallback time.Time) string {
	return NormalizeEpoch(v, fallback).Format("2006-01-02 15:04:05")
}

// StartOfDay returns midnight of the day containing t, in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
