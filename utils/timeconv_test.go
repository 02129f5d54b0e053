package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := MinutesToTime(h*60 + m)
			assert.True(t, IsValidTimeFormat(s), s)
			assert.Equal(t, s, MinutesToTime(TimeToMinutes(s)))
		}
	}
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 570, TimeToMinutes("09:30"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestIsValidTimeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"09-00", false},
		{"", false},
		{"09:00:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTimeFormat(tt.in))
		})
	}
}

func TestIsValidDateFormat(t *testing.T) {
	assert.True(t, IsValidDateFormat("2026-02-23"))
	assert.True(t, IsValidDateFormat("2028-02-29"))
	assert.False(t, IsValidDateFormat("2026-02-30"))
	assert.False(t, IsValidDateFormat("2026-2-3"))
	assert.False(t, IsValidDateFormat("23/02/2026"))
	assert.False(t, IsValidDateFormat(""))
}

func TestParseDateUTCIgnoresLocalZone(t *testing.T) {
	want := time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC)

	orig := time.Local
	defer func() { time.Local = orig }()

	for _, zone := range []string{"UTC", "America/Los_Angeles", "Asia/Tokyo", "Pacific/Kiritimati"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			continue
		}
		time.Local = loc
		got := ParseDateUTC("2026-02-23")
		assert.True(t, want.Equal(got), zone)
		assert.Equal(t, want.UnixMilli(), got.UnixMilli(), zone)
	}
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "monday", DayOfWeek("2026-02-23"))
	assert.Equal(t, "sunday", DayOfWeek("2026-03-01"))
	assert.Equal(t, "saturday", DayOfWeek("2028-02-26"))
}

func TestTruncateAndMinutesOfDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 45, 10, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), TruncateToDateUTC(now))
	assert.Equal(t, 14*60+45, MinutesOfDayUTC(now))
	assert.Equal(t, "2026-03-02", FormatDate(now))
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), SlotInstant(now, "09:30"))
}
