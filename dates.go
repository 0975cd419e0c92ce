package gantry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeUnit is a calendar granularity used for axis steps, durations, and
// date arithmetic.
type TimeUnit uint8

const (
	UnitMillisecond TimeUnit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// String returns the unit name used in duration strings and diagnostics.
func (u TimeUnit) String() string {
	switch u {
	case UnitMillisecond:
		return "ms"
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "min"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	case UnitWeek:
		return "w"
	case UnitMonth:
		return "mo"
	case UnitYear:
		return "y"
	default:
		return "?"
	}
}

// Duration is a count of calendar units, e.g. {4, UnitDay} for "4d".
type Duration struct {
	Count int
	Unit  TimeUnit
}

// IsZero reports whether the duration has no extent.
func (d Duration) IsZero() bool { return d.Count == 0 }

// String formats the duration as a duration string ("4d", "2mo").
func (d Duration) String() string {
	return strconv.Itoa(d.Count) + d.Unit.String()
}

// Scale factors relative to one millisecond. Months and years use the fixed
// 30-day / 360-day approximation so fractional diffs stay proportional to
// pixel columns regardless of calendar month length.
const (
	msPerSecond = 1000.0
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerMonth  = 30 * msPerDay
	msPerYear   = 12 * msPerMonth
)

// unitMillis returns how many milliseconds one unit spans under the fixed
// scale approximation.
func unitMillis(u TimeUnit) float64 {
	switch u {
	case UnitMillisecond:
		return 1
	case UnitSecond:
		return msPerSecond
	case UnitMinute:
		return msPerMinute
	case UnitHour:
		return msPerHour
	case UnitDay:
		return msPerDay
	case UnitWeek:
		return msPerWeek
	case UnitMonth:
		return msPerMonth
	case UnitYear:
		return msPerYear
	default:
		return 1
	}
}

// dateFormats are the accepted textual date layouts, tried in order.
var dateFormats = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a date string in any of the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("gantry: unparseable date %q", value)
}

// FormatDate formats a date with a Go reference layout. An empty layout
// defaults to "2006-01-02".
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// dateAdd shifts a date by n calendar units. Year, month, and day shifts are
// calendar-aware; smaller units are fixed durations.
func dateAdd(t time.Time, n int, unit TimeUnit) time.Time {
	switch unit {
	case UnitYear:
		return t.AddDate(n, 0, 0)
	case UnitMonth:
		return t.AddDate(0, n, 0)
	case UnitWeek:
		return t.AddDate(0, 0, 7*n)
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case UnitSecond:
		return t.Add(time.Duration(n) * time.Second)
	default:
		return t.Add(time.Duration(n) * time.Millisecond)
	}
}

// dateAddMillis shifts a date by a (possibly fractional) millisecond count.
func dateAddMillis(t time.Time, ms float64) time.Time {
	return t.Add(time.Duration(ms * float64(time.Millisecond)))
}

// dateDiff returns a - b expressed in the given unit. Months and years use
// the fixed 30-day / 360-day scale, matching unitMillis.
func dateDiff(a, b time.Time, unit TimeUnit) float64 {
	ms := float64(a.Sub(b)) / float64(time.Millisecond)
	return ms / unitMillis(unit)
}

// startOf truncates a date to the beginning of the given unit. Weeks start
// on Monday.
func startOf(t time.Time, unit TimeUnit) time.Time {
	switch unit {
	case UnitYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	case UnitMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case UnitWeek:
		day := startOf(t, UnitDay)
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case UnitDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case UnitHour:
		return t.Truncate(time.Hour)
	case UnitMinute:
		return t.Truncate(time.Minute)
	case UnitSecond:
		return t.Truncate(time.Second)
	default:
		return t
	}
}

// ParseTaskDuration parses a duration string of the form "<count><unit>",
// where unit is one of ms, s, min, h, d, w, mo, y (e.g. "4d", "2mo").
func ParseTaskDuration(text string) (Duration, error) {
	text = strings.TrimSpace(text)
	i := 0
	for i < len(text) && (text[i] >= '0' && text[i] <= '9') {
		i++
	}
	if i == 0 || i == len(text) {
		return Duration{}, fmt.Errorf("gantry: unparseable duration %q", text)
	}
	count, err := strconv.Atoi(text[:i])
	if err != nil {
		return Duration{}, fmt.Errorf("gantry: unparseable duration %q: %w", text, err)
	}
	var unit TimeUnit
	switch text[i:] {
	case "ms":
		unit = UnitMillisecond
	case "s":
		unit = UnitSecond
	case "min":
		unit = UnitMinute
	case "h":
		unit = UnitHour
	case "d":
		unit = UnitDay
	case "w":
		unit = UnitWeek
	case "mo":
		unit = UnitMonth
	case "y":
		unit = UnitYear
	default:
		return Duration{}, fmt.Errorf("gantry: unknown duration unit %q", text[i:])
	}
	return Duration{Count: count, Unit: unit}, nil
}

// ConvertScales re-expresses a duration in another unit under the fixed
// scale approximation, e.g. ConvertScales({2, UnitWeek}, UnitDay) = 14.
func ConvertScales(d Duration, to TimeUnit) float64 {
	return float64(d.Count) * unitMillis(d.Unit) / unitMillis(to)
}

// roundToMultiple rounds v to the nearest multiple of step. A non-positive
// step returns v unchanged.
func roundToMultiple(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
