package utils

import "time"

// Western Indonesia Time (WIB, +07:00)
var wibLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsWIB converts epoch seconds to WIB. Returns the zero time for t<=0.
func FromUnixSecondsWIB(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(wibLoc)
}

func FormatRFC3339WIB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(wibLoc).Format(time.RFC3339)
}

// FormatUnixWIB renders stored audit timestamps for API responses.
func FormatUnixWIB(t int64) string {
	return FormatRFC3339WIB(FromUnixSecondsWIB(t))
}
