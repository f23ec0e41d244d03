package internal

import "time"

const (
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

// Format renders t in location, or in t's own zone when location is nil.
func Format(t time.Time, location *time.Location) string {
	if location != nil {
		t = t.In(location)
	}
	return t.Format(formatDDMMYYYYHHMM)
}
