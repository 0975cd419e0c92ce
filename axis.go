package gantry

import (
	"fmt"
	"time"
)

// PixelRange is a half-open horizontal pixel interval [Start, End) on the
// current axis. The axis ignored region is a set of these.
type PixelRange struct {
	Start, End float64
}

// contains reports whether px falls inside the range.
func (r PixelRange) contains(px float64) bool {
	return px >= r.Start && px < r.End
}

// ignoreSet resolves which calendar dates are excluded from duration and
// progress accounting: explicit holiday/ignore dates plus the optional
// weekend shorthand.
type ignoreSet struct {
	weekends bool
	dates    map[string]bool // keyed by "2006-01-02"
}

// newIgnoreSet parses holiday and ignore date lists. The ignore list accepts
// the literal "weekend" in addition to dates.
func newIgnoreSet(holidays, ignore []string) (ignoreSet, error) {
	s := ignoreSet{dates: make(map[string]bool)}
	for _, h := range holidays {
		t, err := ParseDate(h)
		if err != nil {
			return s, fmt.Errorf("gantry: holiday: %w", err)
		}
		s.dates[t.Format("2006-01-02")] = true
	}
	for _, ig := range ignore {
		if ig == "weekend" {
			s.weekends = true
			continue
		}
		t, err := ParseDate(ig)
		if err != nil {
			return s, fmt.Errorf("gantry: ignore list: %w", err)
		}
		s.dates[t.Format("2006-01-02")] = true
	}
	return s, nil
}

// contains reports whether the day containing t is ignored.
func (s ignoreSet) contains(t time.Time) bool {
	if s.weekends {
		wd := t.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return true
		}
	}
	if len(s.dates) == 0 {
		return false
	}
	return s.dates[t.Format("2006-01-02")]
}

// empty reports whether nothing is ignored.
func (s ignoreSet) empty() bool {
	return !s.weekends && len(s.dates) == 0
}

// Axis is the resolved column grid for one (task set, view mode) pair: an
// ordered sequence of column boundary dates spaced exactly one step apart,
// each occupying ColumnWidth pixels, plus the derived ignored pixel region.
type Axis struct {
	Start time.Time
	End   time.Time
	// Unit and StepCount define the step: one column spans StepCount Units.
	Unit      TimeUnit
	StepCount int
	// ColumnWidth is the pixel width of every column.
	ColumnWidth float64
	// Columns holds the column boundary dates, strictly increasing.
	Columns []time.Time

	ignore  ignoreSet
	ignored []PixelRange // sorted, non-overlapping
}

// newAxis resolves the visible span of the task set under the view mode and
// generates the column grid. columnWidth == 0 uses the mode default.
func newAxis(tasks []*Task, mode ViewMode, columnWidth float64, ignore ignoreSet) (*Axis, error) {
	if columnWidth == 0 {
		columnWidth = mode.ColumnWidth
	}
	if columnWidth <= 0 {
		return nil, fmt.Errorf("%w: column width %v", ErrConfiguration, columnWidth)
	}
	if mode.Step.Count <= 0 {
		return nil, fmt.Errorf("%w: step %v", ErrConfiguration, mode.Step)
	}

	minStart, maxEnd := taskSpan(tasks)

	// Pad past the task range, then quantize the lower bound to a whole
	// step boundary so grid lines align with period starts. A 7-day step
	// aligns to week starts rather than arbitrary days.
	lower := dateAdd(minStart, -mode.Padding.Count, mode.Padding.Unit)
	upper := dateAdd(maxEnd, mode.Padding.Count, mode.Padding.Unit)
	lower = startOf(lower, quantizeUnit(mode.Step))

	a := &Axis{
		Start:       lower,
		Unit:        mode.Step.Unit,
		StepCount:   mode.Step.Count,
		ColumnWidth: columnWidth,
		ignore:      ignore,
	}
	for cur := lower; cur.Before(upper); cur = dateAdd(cur, a.StepCount, a.Unit) {
		a.Columns = append(a.Columns, cur)
	}
	if len(a.Columns) == 0 {
		a.Columns = append(a.Columns, lower)
	}
	a.End = dateAdd(a.Columns[len(a.Columns)-1], a.StepCount, a.Unit)
	a.recomputeIgnored()
	return a, nil
}

// quantizeUnit picks the truncation unit for the axis lower bound.
func quantizeUnit(step Duration) TimeUnit {
	if step.Unit == UnitDay && step.Count == 7 {
		return UnitWeek
	}
	return step.Unit
}

// taskSpan returns the earliest start and latest end across valid tasks.
// With no tasks the span is today plus one step on each side.
func taskSpan(tasks []*Task) (time.Time, time.Time) {
	var minStart, maxEnd time.Time
	for _, t := range tasks {
		if t.Invalid {
			continue
		}
		if minStart.IsZero() || t.Start.Before(minStart) {
			minStart = t.Start
		}
		if maxEnd.IsZero() || t.End.After(maxEnd) {
			maxEnd = t.End
		}
	}
	if minStart.IsZero() {
		today := startOf(time.Now(), UnitDay)
		return today, dateAdd(today, 1, UnitDay)
	}
	return minStart, maxEnd
}

// stepMillis returns the millisecond span of one column under the fixed
// scale approximation.
func (a *Axis) stepMillis() float64 {
	return float64(a.StepCount) * unitMillis(a.Unit)
}

// X converts a date to its pixel offset from the axis start.
func (a *Axis) X(t time.Time) float64 {
	return dateDiff(t, a.Start, a.Unit) / float64(a.StepCount) * a.ColumnWidth
}

// DateAt converts a pixel offset back to a date.
func (a *Axis) DateAt(px float64) time.Time {
	return dateAddMillis(a.Start, px/a.ColumnWidth*a.stepMillis())
}

// TotalWidth is the pixel width of the whole grid.
func (a *Axis) TotalWidth() float64 {
	return float64(len(a.Columns)) * a.ColumnWidth
}

// IgnoredRanges returns the ignored pixel region, sorted and non-overlapping.
// The returned slice is the caller's to keep; axis rebuilds do not alias it.
func (a *Axis) IgnoredRanges() []PixelRange {
	return append([]PixelRange(nil), a.ignored...)
}

// recomputeIgnored rebuilds the ignored pixel region from the ignore set.
// Ranges are recorded per ignored day, so a day falling inside a coarser
// column (a weekend in Week view, a holiday in Month view) still yields its
// proportional slice of that column. Adjacent ignored days merge into a
// single range.
func (a *Axis) recomputeIgnored() {
	a.ignored = a.ignored[:0]
	if a.ignore.empty() {
		return
	}
	for cur := startOf(a.Start, UnitDay); cur.Before(a.End); cur = dateAdd(cur, 1, UnitDay) {
		if !a.ignore.contains(cur) {
			continue
		}
		start := a.X(cur)
		end := a.X(dateAdd(cur, 1, UnitDay))
		if n := len(a.ignored); n > 0 && a.ignored[n-1].End == start {
			a.ignored[n-1].End = end
		} else {
			a.ignored = append(a.ignored, PixelRange{Start: start, End: end})
		}
	}
}

// ignoredArea sums the ignored pixel width inside [x0, x1).
func (a *Axis) ignoredArea(x0, x1 float64) float64 {
	var total float64
	for _, r := range a.ignored {
		if r.Start >= x1 {
			break
		}
		lo := max(r.Start, x0)
		hi := min(r.End, x1)
		if hi > lo {
			total += hi - lo
		}
	}
	return total
}

// inIgnored reports whether the pixel position lies inside an ignored range.
func (a *Axis) inIgnored(px float64) bool {
	for _, r := range a.ignored {
		if r.contains(px) {
			return true
		}
		if r.Start > px {
			break
		}
	}
	return false
}

// ignoredDays counts the ignored days inside the date span [s, e).
func (a *Axis) ignoredDays(s, e time.Time) int {
	if a.ignore.empty() {
		return 0
	}
	count := 0
	for cur := startOf(s, UnitDay); cur.Before(e); cur = dateAdd(cur, 1, UnitDay) {
		if a.ignore.contains(cur) {
			count++
		}
	}
	return count
}

// GrowBefore prepends n columns to the axis and returns the pixel width
// added, so callers can keep their scroll position stable. Used by
// infinite-padding scrolling; the column generation rule is unchanged.
func (a *Axis) GrowBefore(n int) float64 {
	if n <= 0 {
		return 0
	}
	prepended := make([]time.Time, n, n+len(a.Columns))
	cur := a.Columns[0]
	for i := n - 1; i >= 0; i-- {
		cur = dateAdd(cur, -a.StepCount, a.Unit)
		prepended[i] = cur
	}
	a.Columns = append(prepended, a.Columns...)
	a.Start = a.Columns[0]
	a.recomputeIgnored()
	return float64(n) * a.ColumnWidth
}

// GrowAfter appends n columns to the axis.
func (a *Axis) GrowAfter(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		a.Columns = append(a.Columns, a.End)
		a.End = dateAdd(a.End, a.StepCount, a.Unit)
	}
	a.recomputeIgnored()
}
