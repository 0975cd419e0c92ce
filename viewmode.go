package gantry

import "time"

// ViewMode is a named time-granularity configuration: how wide a column is,
// how much calendar time one column spans, how far the axis pads past the
// task range, and how drag deltas snap.
type ViewMode struct {
	Name string
	// Step is the calendar span of one column.
	Step Duration
	// ColumnWidth is the default pixel width of one column. A chart-level
	// column width override takes precedence.
	ColumnWidth float64
	// Padding is added before the earliest task start and after the latest
	// task end when resolving the axis bounds.
	Padding Duration
	// Snap rounds drag date deltas to the nearest multiple. Zero disables
	// snapping.
	Snap Duration
	// DateFormat is the Go layout for column lower labels.
	DateFormat string
	// ThickLine reports whether the grid line at a column date should be
	// drawn emphasized (e.g. Mondays in Day view).
	ThickLine func(t time.Time) bool
	// UpperText returns the header group label when the column starts a new
	// period relative to prev, or "" to skip. LowerText labels every column.
	UpperText func(t, prev time.Time) string
	LowerText func(t time.Time) string
}

// Built-in view modes, keyed by the names accepted by Chart.SetViewMode.
var (
	ViewModeHour = ViewMode{
		Name:        "Hour",
		Step:        Duration{1, UnitHour},
		ColumnWidth: 38,
		Padding:     Duration{7, UnitDay},
		DateFormat:  "2006-01-02 15:04",
		LowerText:   func(t time.Time) string { return t.Format("15") },
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Day() != prev.Day() {
				return t.Format("2 January")
			}
			return ""
		},
	}

	ViewModeQuarterDay = ViewMode{
		Name:        "Quarter Day",
		Step:        Duration{6, UnitHour},
		ColumnWidth: 38,
		Padding:     Duration{7, UnitDay},
		DateFormat:  "2006-01-02 15:04",
		LowerText:   func(t time.Time) string { return t.Format("15") },
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Day() != prev.Day() {
				return t.Format("2 Jan")
			}
			return ""
		},
	}

	ViewModeHalfDay = ViewMode{
		Name:        "Half Day",
		Step:        Duration{12, UnitHour},
		ColumnWidth: 38,
		Padding:     Duration{14, UnitDay},
		DateFormat:  "2006-01-02 15:04",
		LowerText:   func(t time.Time) string { return t.Format("15") },
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Day() != prev.Day() {
				if prev.IsZero() || t.Month() != prev.Month() {
					return t.Format("2 Jan")
				}
				return t.Format("2")
			}
			return ""
		},
	}

	ViewModeDay = ViewMode{
		Name:        "Day",
		Step:        Duration{1, UnitDay},
		ColumnWidth: 38,
		Padding:     Duration{7, UnitDay},
		Snap:        Duration{1, UnitDay},
		DateFormat:  "2006-01-02",
		ThickLine:   func(t time.Time) bool { return t.Weekday() == time.Monday },
		LowerText:   func(t time.Time) string { return t.Format("2") },
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Month() != prev.Month() {
				return t.Format("January")
			}
			return ""
		},
	}

	ViewModeWeek = ViewMode{
		Name:        "Week",
		Step:        Duration{7, UnitDay},
		ColumnWidth: 140,
		Padding:     Duration{1, UnitMonth},
		Snap:        Duration{1, UnitDay},
		DateFormat:  "2006-01-02",
		ThickLine:   func(t time.Time) bool { return t.Day() <= 7 },
		LowerText: func(t time.Time) string {
			return t.Format("2 Jan") + " - " + dateAdd(t, 6, UnitDay).Format("2 Jan")
		},
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Month() != prev.Month() {
				return t.Format("January")
			}
			return ""
		},
	}

	ViewModeMonth = ViewMode{
		Name:        "Month",
		Step:        Duration{1, UnitMonth},
		ColumnWidth: 120,
		Padding:     Duration{1, UnitMonth},
		Snap:        Duration{1, UnitDay},
		DateFormat:  "2006-01",
		ThickLine:   func(t time.Time) bool { return t.Month() == time.January },
		LowerText:   func(t time.Time) string { return t.Format("January") },
		UpperText: func(t, prev time.Time) string {
			if prev.IsZero() || t.Year() != prev.Year() {
				return t.Format("2006")
			}
			return ""
		},
	}

	ViewModeYear = ViewMode{
		Name:        "Year",
		Step:        Duration{1, UnitYear},
		ColumnWidth: 120,
		Padding:     Duration{1, UnitYear},
		Snap:        Duration{1, UnitDay},
		DateFormat:  "2006",
		LowerText:   func(t time.Time) string { return t.Format("2006") },
		UpperText:   func(t, prev time.Time) string { return "" },
	}
)

// viewModes is the registry consulted by Chart.SetViewMode.
var viewModes = map[string]ViewMode{
	ViewModeHour.Name:       ViewModeHour,
	ViewModeQuarterDay.Name: ViewModeQuarterDay,
	ViewModeHalfDay.Name:    ViewModeHalfDay,
	ViewModeDay.Name:        ViewModeDay,
	ViewModeWeek.Name:       ViewModeWeek,
	ViewModeMonth.Name:      ViewModeMonth,
	ViewModeYear.Name:       ViewModeYear,
}

// RegisterViewMode adds or replaces a view mode in the registry.
func RegisterViewMode(mode ViewMode) {
	viewModes[mode.Name] = mode
}

// ViewModeByName looks up a registered view mode.
func ViewModeByName(name string) (ViewMode, bool) {
	m, ok := viewModes[name]
	return m, ok
}
