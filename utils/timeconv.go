package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	timeFormatRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidTimeFormat reports whether s is a zero-padded 24-hour "HH:MM" value.
func IsValidTimeFormat(s string) bool {
	return timeFormatRe.MatchString(s)
}

// IsValidDateFormat reports whether s is a "YYYY-MM-DD" value naming a real calendar day.
func IsValidDateFormat(s string) bool {
	if !dateFormatRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// The input is not validated; call IsValidTimeFormat first.
func TimeToMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) == 2 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

// MinutesToTime converts minutes since midnight to "HH:MM".
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func splitDate(s string) (int, time.Month, int) {
	parts := strings.SplitN(s, "-", 3)
	nums := [3]int{}
	for i := 0; i < len(parts) && i < 3; i++ {
		nums[i], _ = strconv.Atoi(parts[i])
	}
	return nums[0], time.Month(nums[1]), nums[2]
}

// ParseDateUTC builds the UTC midnight instant for a "YYYY-MM-DD" string.
// The local timezone of the process never takes part.
func ParseDateUTC(s string) time.Time {
	y, m, d := splitDate(s)
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayOfWeek returns the lowercase weekday name for a "YYYY-MM-DD" string.
func DayOfWeek(s string) string {
	y, m, d := splitDate(s)
	return strings.ToLower(time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Weekday().String())
}

// FormatDate renders a calendar date as "YYYY-MM-DD" in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TruncateToDateUTC drops the time component of t after converting it to UTC.
func TruncateToDateUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MinutesOfDayUTC returns the minutes elapsed since UTC midnight for t.
func MinutesOfDayUTC(t time.Time) int {
	u := t.UTC()
	return u.Hour()*60 + u.Minute()
}

// SlotInstant combines a calendar date and a "HH:MM" start into a UTC instant.
func SlotInstant(date time.Time, hhmm string) time.Time {
	return TruncateToDateUTC(date).Add(time.Duration(TimeToMinutes(hhmm)) * time.Minute)
}
