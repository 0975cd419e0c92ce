package gantry

import "fmt"

// barGeometry derives a task's pixel geometry from the axis and layout
// options. Pure: identical inputs yield identical bars.
func barGeometry(t *Task, a *Axis, opts Options) (Bar, error) {
	if a == nil || a.ColumnWidth <= 0 || a.StepCount <= 0 {
		return Bar{}, fmt.Errorf("%w: axis not resolvable", ErrConfiguration)
	}

	x := a.X(t.Start)
	width := a.X(t.End) - x
	if width < 0 {
		width = 0
	}
	y := opts.HeaderHeight + (opts.Padding+opts.BarHeight)*float64(t.Index) + opts.Padding/2

	return Bar{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        opts.BarHeight,
		ProgressWidth: progressWidth(a, x, width, t.Progress),
	}, nil
}

// progressWidth computes the pixel width of the filled progress portion.
//
// Ignored columns do not count toward progress: the usable width is the bar
// width minus the ignored area inside it, the filled fraction is taken of
// that, and then any ignored area the fill spans is added back so the
// progress edge visually jumps over ignored columns instead of stopping
// inside them. If the edge still lands inside an ignored range, it is pushed
// right one whole column at a time until it clears every range.
func progressWidth(a *Axis, x, width, progress float64) float64 {
	if width <= 0 || progress <= 0 {
		return 0
	}
	totalIgnored := a.ignoredArea(x, x+width)
	pw := (width - totalIgnored) * progress / 100
	pw += a.ignoredArea(x, x+pw)
	for a.inIgnored(x + pw) {
		pw += a.ColumnWidth
	}
	if pw > width {
		pw = width
	}
	return pw
}

// handleZones returns the hit rectangles for a bar's drag handles:
// left/right resize strips inside the bar edges and the progress handle
// region straddling the progress edge. Bars too narrow for distinct side
// handles fall back to body-only hits.
func handleZones(b Bar) (left, right, progress Rect) {
	if b.Width > 2*handleWidth {
		left = Rect{X: b.X, Y: b.Y, Width: handleWidth, Height: b.Height}
		right = Rect{X: b.X + b.Width - handleWidth, Y: b.Y, Width: handleWidth, Height: b.Height}
	}
	progress = Rect{
		X:      b.X + b.ProgressWidth - handleWidth/2,
		Y:      b.Y + b.Height - handleWidth,
		Width:  handleWidth,
		Height: handleWidth,
	}
	return left, right, progress
}
