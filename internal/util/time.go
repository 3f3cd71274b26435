package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// apiTimeLayout matches the ISO-8601 form App Center expects: UTC, millisecond precision.
const apiTimeLayout = "2006-01-02T15:04:05.000Z07:00"

func ParseTimeFlexible(timeStr string) (time.Time, error) {
	timeStr = strings.TrimSpace(timeStr)

	// Try parsing as RFC3339 (ISO 8601)
	t, err := time.Parse(time.RFC3339Nano, timeStr)
	if err == nil {
		return t.UTC(), nil
	}

	// Try parsing as epoch milliseconds
	ms, err := strconv.ParseInt(timeStr, 10, 64)
	if err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
}

// FormatAPITime renders t the way the remote API's start/end parameters are written.
func FormatAPITime(t time.Time) string {
	return t.UTC().Format(apiTimeLayout)
}
