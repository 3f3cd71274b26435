package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appcenter-datasource-backend/internal/util"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestLocalDay_SameDaySameInstant(t *testing.T) {
	loc := mustLoad(t, "America/Sao_Paulo")

	morning := time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC) // 08:00 local
	evening := time.Date(2024, 3, 11, 1, 30, 0, 0, time.UTC) // 22:30 local, same day

	assert.True(t, util.LocalDay(morning, loc).Equal(util.LocalDay(evening, loc)))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), util.LocalDay(morning, loc))
}

func TestLocalDay_AcrossBoundary(t *testing.T) {
	loc := mustLoad(t, "Asia/Tokyo")

	a := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC) // 23:00 local May 1
	b := a.Add(24 * time.Hour)

	diff := util.LocalDay(b, loc).Sub(util.LocalDay(a, loc))
	assert.Equal(t, 24*time.Hour, diff)
}

func TestLocalDay_ZoneShiftsDay(t *testing.T) {
	instant := time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC)

	utcDay := util.LocalDay(instant, time.UTC)
	nyDay := util.LocalDay(instant, mustLoad(t, "America/New_York"))

	assert.Equal(t, 1, utcDay.Day())
	assert.Equal(t, 31, nyDay.Day())
	assert.Equal(t, time.December, nyDay.Month())
}

func TestDaySequence(t *testing.T) {
	start := time.Date(2024, 2, 27, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{name: "same instant", end: start, want: 1},
		{name: "later same day", end: start.Add(8 * time.Hour), want: 1},
		{name: "three days later", end: start.Add(3 * 24 * time.Hour), want: 4},
		{name: "across leap day", end: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: 4},
		{name: "end before start", end: start.Add(-48 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := util.DaySequence(start, tt.end, time.UTC)
			assert.Len(t, days, tt.want)
			for i := 1; i < len(days); i++ {
				assert.Equal(t, 24*time.Hour, days[i].Sub(days[i-1]))
			}
		})
	}
}

func TestDaySequence_MatchesLocalDayAcrossDST(t *testing.T) {
	loc := mustLoad(t, "Europe/Berlin")
	start := time.Date(2024, 3, 29, 12, 0, 0, 0, loc)
	end := time.Date(2024, 4, 2, 12, 0, 0, 0, loc)

	days := util.DaySequence(start, end, loc)
	require.Len(t, days, 5)
	for _, day := range days {
		assert.Equal(t, 0, day.Hour())
		assert.True(t, day.Equal(util.LocalDay(day.Add(6*time.Hour), loc)))
	}
}

func TestResolveLocation(t *testing.T) {
	assert.Equal(t, time.Local, util.ResolveLocation(""))
	assert.Equal(t, time.Local, util.ResolveLocation("browser"))
	assert.Equal(t, time.Local, util.ResolveLocation("local"))
	assert.Equal(t, time.UTC, util.ResolveLocation("utc"))
	assert.Equal(t, time.UTC, util.ResolveLocation("Not/AZone"))
	assert.Equal(t, "Europe/Lisbon", util.ResolveLocation("Europe/Lisbon").String())
}
