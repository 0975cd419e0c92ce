package gantry

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// date parses a test date or fails the test.
func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", value, err)
	}
	return d
}

// testDayMode is a Day-like view mode with zero padding and a 30px column,
// so the axis starts exactly at the earliest task and pixel positions are
// easy to reason about. No snapping unless a test opts in.
var testDayMode = ViewMode{
	Name:        "test-day",
	Step:        Duration{1, UnitDay},
	ColumnWidth: 30,
	Padding:     Duration{0, UnitDay},
	DateFormat:  "2006-01-02",
}

// newTestChart builds a chart on testDayMode with callbacks silenced.
func newTestChart(t *testing.T, opts Options, tasks []Task) *Chart {
	t.Helper()
	c := New(opts)
	c.mode = testDayMode
	c.Logf = func(format string, args ...any) {}
	if err := c.Load(tasks); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

// --- DragMode ---

func TestDragModeString(t *testing.T) {
	tests := []struct {
		mode DragMode
		want string
	}{
		{DragNone, "none"},
		{DragMove, "move"},
		{DragResizeLeft, "resize-left"},
		{DragResizeRight, "resize-right"},
		{DragProgress, "progress"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("DragMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
