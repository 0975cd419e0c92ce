package gantry

import "errors"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bar is the computed pixel geometry of a task: position, extent, and the
// width of the filled progress portion. Bars are derived values; they are
// recomputed from the task dates and the current axis, never stored back.
type Bar struct {
	X, Y          float64
	Width, Height float64
	ProgressWidth float64
}

// Rect returns the bar's bounding rectangle.
func (b Bar) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// DragMode identifies which part of a bar a drag gesture manipulates.
type DragMode uint8

const (
	DragNone        DragMode = iota // no drag in progress
	DragMove                        // bar body: shift start and end together
	DragResizeLeft                  // left edge: shift start only
	DragResizeRight                 // right edge: shift end only
	DragProgress                    // progress handle: edit completion
)

// String returns the drag mode name for diagnostics.
func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragResizeLeft:
		return "resize-left"
	case DragResizeRight:
		return "resize-right"
	case DragProgress:
		return "progress"
	default:
		return "none"
	}
}

// --- Layout defaults ---

// Default layout values, applied by DefaultOptions.
const (
	DefaultHeaderHeight    = 65.0
	DefaultColumnWidth     = 30.0
	DefaultBarHeight       = 30.0
	DefaultBarCornerRadius = 3.0
	DefaultPadding         = 18.0
	DefaultArrowCurve      = 5.0

	// handleWidth is the pixel width of the resize hit zones on each bar edge.
	handleWidth = 8.0
)

// Options configures a Chart. The zero value is not usable; start from
// DefaultOptions and override fields.
type Options struct {
	// ViewModeName selects the active view mode by name ("Day", "Week", ...).
	ViewModeName string
	// ColumnWidth overrides the view mode's column width when > 0.
	ColumnWidth float64

	HeaderHeight    float64
	BarHeight       float64
	BarCornerRadius float64
	// Padding is the vertical gap between bar rows. It also sets the
	// horizontal clearance used by arrow routing.
	Padding    float64
	ArrowCurve float64

	// MoveDependencies cascades a bar move to all transitive dependents.
	MoveDependencies bool
	// InfinitePadding lets the axis grow on demand when scrolled near an
	// edge instead of being fixed at load time.
	InfinitePadding bool

	// Readonly disables all drag interaction. ReadonlyDates and
	// ReadonlyProgress disable only date edits or only progress edits.
	Readonly         bool
	ReadonlyDates    bool
	ReadonlyProgress bool

	// Holidays and Ignore list dates excluded from duration and progress
	// accounting. Ignore additionally accepts the "weekend" shorthand.
	Holidays []string
	Ignore   []string

	Language string
}

// DefaultOptions returns the standard chart configuration: Day view,
// dependency cascading on, editable dates and progress.
func DefaultOptions() Options {
	return Options{
		ViewModeName:     "Day",
		HeaderHeight:     DefaultHeaderHeight,
		BarHeight:        DefaultBarHeight,
		BarCornerRadius:  DefaultBarCornerRadius,
		Padding:          DefaultPadding,
		ArrowCurve:       DefaultArrowCurve,
		MoveDependencies: true,
		InfinitePadding:  true,
		Language:         "en",
	}
}

// --- Errors ---

// ErrConfiguration marks fatal geometry configuration faults, such as a
// non-positive column width or step. Geometry passes abort on it rather
// than recovering silently.
var ErrConfiguration = errors.New("gantry: invalid configuration")

// ErrUnknownTask is returned when a task id is not in the working set.
var ErrUnknownTask = errors.New("gantry: unknown task")

// ErrUnknownViewMode is returned for view mode names with no registered mode.
var ErrUnknownViewMode = errors.New("gantry: unknown view mode")
