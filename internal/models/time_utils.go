package models

import "time"

// UnixMilliToTimeOptional converts an optional int64 (Unix milliseconds) to time.Time.
// If the input pointer is nil, it returns a zero time.Time value.
func UnixMilliToTimeOptional(ms *int64) time.Time {
	if ms == nil {
		return time.Time{}
	}
	return time.UnixMilli(*ms)
}

// TimeToUnixMilli returns t as Unix milliseconds, 0 for the zero time.
func TimeToUnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
