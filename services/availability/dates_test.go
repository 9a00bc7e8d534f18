package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDayOfWeek(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{0, 0}, // Sunday, 0-6 convention
		{3, 3},
		{6, 6},
		{7, 0}, // Sunday, 1-7 convention
		{8, 1},
		{14, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, NormalizeDayOfWeek(test.raw), "raw=%d", test.raw)
	}
}

func TestNormalizeDayOfWeekIdempotent(t *testing.T) {
	for raw := -14; raw <= 20; raw++ {
		once := NormalizeDayOfWeek(raw)
		assert.Equal(t, once, NormalizeDayOfWeek(once), "raw=%d", raw)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock  string
		hour   int
		minute int
		ok     bool
	}{
		{"09:00", 9, 0, true},
		{"18:30", 18, 30, true},
		{"9:05", 9, 5, true},
		{"ab:10", 0, 0, false},
		{"10:cd", 0, 0, false},
		{"1000", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, test := range tests {
		hour, minute, ok := ParseClock(test.clock)
		assert.Equal(t, test.ok, ok, "clock=%q", test.clock)
		if test.ok {
			assert.Equal(t, test.hour, hour, "clock=%q", test.clock)
			assert.Equal(t, test.minute, minute, "clock=%q", test.clock)
		}
	}
}

func TestLocalDateKeyUsesCalendarComponents(t *testing.T) {
	// Midnight in a zone far ahead of UTC: a UTC conversion would land on
	// the previous day.
	loc := time.FixedZone("UTC+13", 13*60*60)
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", LocalDateKey(d))

	behind := time.FixedZone("UTC-11", -11*60*60)
	d = time.Date(2026, 3, 1, 23, 30, 0, 0, behind)
	assert.Equal(t, "2026-03-01", LocalDateKey(d))
}

func TestParseLocalDateRoundTrip(t *testing.T) {
	parsed, ok := ParseLocalDate("2026-01-05")
	require.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 5, parsed.Day())
	assert.Equal(t, "2026-01-05", LocalDateKey(parsed))

	_, ok = ParseLocalDate("2026-01")
	assert.False(t, ok)
	_, ok = ParseLocalDate("not-a-date")
	assert.False(t, ok)
	_, ok = ParseLocalDate("")
	assert.False(t, ok)
}

func TestAnchorClockKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)
	anchored := AnchorClock(date, 18, 30)
	assert.Equal(t, 18, anchored.Hour())
	assert.Equal(t, 30, anchored.Minute())
	assert.Equal(t, loc, anchored.Location())
	assert.Equal(t, "2026-01-05", LocalDateKey(anchored))
}
