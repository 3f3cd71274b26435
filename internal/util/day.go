package util

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Timezone names the UI sends when it wants the server's own zone.
const (
	TimezoneLocal   = "local"
	TimezoneBrowser = "browser"
)

// ResolveLocation maps a dashboard timezone to a location. Unknown zone names
// carry no usable offset, so they fall back to UTC.
func ResolveLocation(tz string) *time.Location {
	switch strings.ToLower(strings.TrimSpace(tz)) {
	case "", TimezoneLocal, TimezoneBrowser:
		return time.Local
	case "utc", "z":
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn().Err(err).Str("timezone", tz).Msg("Unknown timezone, assuming UTC")
		return time.UTC
	}
	return loc
}

// LocalDay returns midnight of t's calendar day in loc.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DaySequence lists every calendar day from start's day through end's day,
// both inclusive, as LocalDay instants.
func DaySequence(start, end time.Time, loc *time.Location) []time.Time {
	first := LocalDay(start, loc)
	last := LocalDay(end, loc)
	if last.Before(first) {
		return nil
	}

	var days []time.Time
	for day := first; !day.After(last); {
		days = append(days, day)
		// Step by calendar date: a fixed 24h step drifts off midnight on DST days.
		year, month, d := day.Date()
		day = time.Date(year, month, d+1, 0, 0, 0, 0, day.Location())
	}
	return days
}
