package gantry

import (
	"fmt"
	"os"
	"time"
)

// Chart is the top-level engine object. It owns the task working set, the
// resolved axis, the dependency graph, and the interaction state, and is the
// only writer of task dates and progress after load.
//
// Chart holds no rendering state. Frontends pull Geometry, Arrows, and
// GridColumns each frame and push pointer events in.
type Chart struct {
	opts   Options
	mode   ViewMode
	axis   *Axis
	ignore ignoreSet

	tasks []*Task
	byID  map[string]*Task
	graph *DependencyGraph

	drag        dragState
	handlers    handlerRegistry
	scroll      scrollState
	injectQueue []syntheticPointerEvent

	debug bool

	// Logf receives validation and warn reports. Defaults to a stderr
	// printer with a "[gantry]" prefix.
	Logf func(format string, args ...any)
}

// New creates a chart with the given options. Zero layout fields fall back
// to the package defaults; an empty view mode name selects Day view.
func New(opts Options) *Chart {
	if opts.ViewModeName == "" {
		opts.ViewModeName = ViewModeDay.Name
	}
	if opts.HeaderHeight == 0 {
		opts.HeaderHeight = DefaultHeaderHeight
	}
	if opts.BarHeight == 0 {
		opts.BarHeight = DefaultBarHeight
	}
	if opts.Padding == 0 {
		opts.Padding = DefaultPadding
	}
	if opts.ArrowCurve == 0 {
		opts.ArrowCurve = DefaultArrowCurve
	}

	c := &Chart{
		opts: opts,
		byID: make(map[string]*Task),
		Logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "[gantry] "+format+"\n", args...)
		},
	}
	if mode, ok := ViewModeByName(opts.ViewModeName); ok {
		c.mode = mode
	} else {
		c.mode = ViewModeDay
	}
	return c
}

// Options returns the chart's effective options.
func (c *Chart) Options() Options { return c.opts }

// ViewMode returns the active view mode.
func (c *Chart) ViewMode() ViewMode { return c.mode }

// Axis returns the resolved axis, or nil before the first Load.
func (c *Chart) Axis() *Axis { return c.axis }

// Tasks returns the working set in row order. The slice is owned by the
// chart; callers must not reorder it.
func (c *Chart) Tasks() []*Task { return c.tasks }

// Task looks up a working-set task by id.
func (c *Chart) Task(id string) (*Task, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// SetDebug toggles per-pass diagnostics on stderr.
func (c *Chart) SetDebug(enabled bool) { c.debug = enabled }

// Load validates the given tasks, rebuilds the axis and dependency graph,
// and replaces the working set. Tasks failing validation are reported
// through Logf and skipped; load continues for the rest. Only configuration
// faults (unparseable ignore dates, non-positive column width or step)
// abort the load.
func (c *Chart) Load(tasks []Task) error {
	t0 := time.Now()

	ignore, err := newIgnoreSet(c.opts.Holidays, c.opts.Ignore)
	if err != nil {
		return err
	}
	c.ignore = ignore

	working := make([]*Task, 0, len(tasks))
	byID := make(map[string]*Task, len(tasks))
	rejected := 0
	for i := range tasks {
		t := tasks[i] // copy; the caller's slice stays untouched
		if t.ID == "" {
			t.ID = fmt.Sprintf("task_%d", i)
		}
		if _, dup := byID[t.ID]; dup {
			c.Logf("task %q rejected: duplicate id", t.ID)
			rejected++
			continue
		}
		if err := normalizeTask(&t, c.Logf); err != nil {
			c.Logf("task rejected: %v", err)
			rejected++
			continue
		}
		t.Invalid = false
		t.Index = len(working)
		working = append(working, &t)
		byID[t.ID] = &t
	}

	c.tasks = working
	c.byID = byID
	c.graph = newDependencyGraph(working)
	c.drag = dragState{}

	if err := c.rebuildAxis(); err != nil {
		return err
	}

	if c.debug {
		fmt.Fprintf(os.Stderr,
			"[gantry] load: %d tasks (%d rejected) | %d columns | %v\n",
			len(working), rejected, len(c.axis.Columns), time.Since(t0))
	}
	return nil
}

// Refresh reloads the task list, preserving the current scroll position by
// date rather than by pixel.
func (c *Chart) Refresh(tasks []Task) error {
	var anchor time.Time
	if c.axis != nil {
		anchor = c.axis.DateAt(c.scroll.offsetX)
	}
	if err := c.Load(tasks); err != nil {
		return err
	}
	if !anchor.IsZero() {
		c.scroll.stop()
		c.scroll.offsetX = c.clampScroll(c.axis.X(anchor))
	}
	return nil
}

// SetViewMode switches the active view mode by name and rebuilds the axis.
// The scroll position is preserved by date.
func (c *Chart) SetViewMode(name string) error {
	mode, ok := ViewModeByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownViewMode, name)
	}
	var anchor time.Time
	if c.axis != nil {
		anchor = c.axis.DateAt(c.scroll.offsetX)
	}
	c.mode = mode
	if err := c.rebuildAxis(); err != nil {
		return err
	}
	if !anchor.IsZero() {
		c.scroll.stop()
		c.scroll.offsetX = c.clampScroll(c.axis.X(anchor))
	}
	return nil
}

// rebuildAxis re-resolves the axis from the working set and recomputes each
// task's ignored-duration count.
func (c *Chart) rebuildAxis() error {
	axis, err := newAxis(c.tasks, c.mode, c.opts.ColumnWidth, c.ignore)
	if err != nil {
		return err
	}
	c.axis = axis
	for _, t := range c.tasks {
		t.ignoredDuration = axis.ignoredDays(t.Start, t.End)
	}
	return nil
}

// Geometry computes the bar for the given task id.
func (c *Chart) Geometry(id string) (Bar, error) {
	t, ok := c.byID[id]
	if !ok {
		return Bar{}, fmt.Errorf("%w: %q", ErrUnknownTask, id)
	}
	return barGeometry(t, c.axis, c.opts)
}

// Arrows routes one arrow per dependency edge, from the prerequisite bar to
// the dependent bar. Edges to ids outside the working set are skipped.
func (c *Chart) Arrows() ([]Arrow, error) {
	var arrows []Arrow
	for _, t := range c.tasks {
		toBar, err := barGeometry(t, c.axis, c.opts)
		if err != nil {
			return nil, err
		}
		for _, dep := range t.Dependencies {
			from, ok := c.byID[dep]
			if !ok {
				continue
			}
			fromBar, err := barGeometry(from, c.axis, c.opts)
			if err != nil {
				return nil, err
			}
			arrows = append(arrows, Arrow{
				FromID: from.ID,
				ToID:   t.ID,
				Path: routeArrow(fromBar, toBar, from.Index, t.Index,
					c.opts.Padding, c.opts.ArrowCurve),
			})
		}
	}
	return arrows, nil
}

// UpdateTask applies a partial update to a task and revalidates it. On a
// validation failure the task is left unchanged and the error returned.
// Date or dependency changes rebuild the axis and dependency graph.
func (c *Chart) UpdateTask(id string, update TaskUpdate) error {
	t, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTask, id)
	}

	snapshot := *t
	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.Start != nil {
		t.Start = *update.Start
	}
	if update.End != nil {
		t.End = *update.End
	}
	if update.Duration != nil {
		t.Duration = *update.Duration
		if update.End == nil {
			t.End = time.Time{} // re-derive from the new duration
		}
	}
	if update.Progress != nil {
		t.SetProgress(*update.Progress)
	}
	if update.Dependencies != nil {
		t.Dependencies = append([]string(nil), (*update.Dependencies)...)
	}

	if err := normalizeTask(t, c.Logf); err != nil {
		*t = snapshot
		return err
	}

	if update.Dependencies != nil {
		c.graph = newDependencyGraph(c.tasks)
	}
	if update.Start != nil || update.End != nil || update.Duration != nil {
		return c.rebuildAxis()
	}
	return nil
}

// GridColumn is renderer-facing metadata for one axis column.
type GridColumn struct {
	Date      time.Time
	X         float64
	Width     float64
	ThickLine bool
	Today     bool
	Ignored   bool
	UpperText string
	LowerText string
}

// GridColumns returns label and highlight metadata for every axis column.
// UpperText is non-empty only on columns that begin a new upper period.
func (c *Chart) GridColumns() []GridColumn {
	if c.axis == nil {
		return nil
	}
	now := time.Now()
	cols := make([]GridColumn, len(c.axis.Columns))
	var prev time.Time
	for i, date := range c.axis.Columns {
		col := GridColumn{
			Date:    date,
			X:       float64(i) * c.axis.ColumnWidth,
			Width:   c.axis.ColumnWidth,
			Ignored: c.ignore.contains(date),
		}
		if c.mode.ThickLine != nil {
			col.ThickLine = c.mode.ThickLine(date)
		}
		next := dateAdd(date, c.axis.StepCount, c.axis.Unit)
		col.Today = !now.Before(date) && now.Before(next)
		if c.mode.LowerText != nil {
			col.LowerText = c.mode.LowerText(date)
		} else {
			col.LowerText = FormatDate(date, c.mode.DateFormat)
		}
		if c.mode.UpperText != nil {
			col.UpperText = c.mode.UpperText(date, prev)
		}
		prev = date
		cols[i] = col
	}
	return cols
}

// Height returns the pixel height of the chart: header plus all task rows.
func (c *Chart) Height() float64 {
	return c.opts.HeaderHeight +
		(c.opts.Padding+c.opts.BarHeight)*float64(len(c.tasks)) +
		c.opts.Padding
}

// Width returns the pixel width of the whole grid, or 0 before Load.
func (c *Chart) Width() float64 {
	if c.axis == nil {
		return 0
	}
	return c.axis.TotalWidth()
}

// Update advances animations and scripted input by one tick of dt seconds.
// Call once per frame when hosting the chart in a frontend; pure layout
// consumers (e.g. SVG export) can skip it.
func (c *Chart) Update(dt float32) {
	c.processInjectedInput()
	c.scroll.update(c, dt)
}
