package gantry

import "time"

// --- Event types ---

// EventType identifies a chart-level observation point.
type EventType uint8

const (
	EventDateChange EventType = iota
	EventProgressChange
)

// DateChange reports a committed move or resize: the task's date range
// before and after the gesture, plus the ids of dependents shifted by the
// same delta when the move cascaded.
type DateChange struct {
	TaskID   string
	OldStart time.Time
	OldEnd   time.Time
	NewStart time.Time
	NewEnd   time.Time
	Cascaded []string
}

// ProgressChange reports a committed progress edit.
type ProgressChange struct {
	TaskID string
	Old    float64
	New    float64
}

// --- Handler registry ---

type dateChangeHandler struct {
	id uint32
	fn func(DateChange)
}

type progressChangeHandler struct {
	id uint32
	fn func(ProgressChange)
}

type handlerRegistry struct {
	dateChange     []dateChangeHandler
	progressChange []progressChangeHandler
	nextID         uint32
}

// CallbackHandle allows removing a registered chart-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDateChange:
		s := h.reg.dateChange
		for i := range s {
			if s[i].id == h.id {
				copy(s[i:], s[i+1:])
				h.reg.dateChange = s[:len(s)-1]
				return
			}
		}
	case EventProgressChange:
		s := h.reg.progressChange
		for i := range s {
			if s[i].id == h.id {
				copy(s[i:], s[i+1:])
				h.reg.progressChange = s[:len(s)-1]
				return
			}
		}
	}
}

// OnDateChange registers a callback fired exactly once per committed move or
// resize gesture.
func (c *Chart) OnDateChange(fn func(DateChange)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.dateChange = append(c.handlers.dateChange, dateChangeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventDateChange}
}

// OnProgressChange registers a callback fired exactly once per committed
// progress-edit gesture.
func (c *Chart) OnProgressChange(fn func(ProgressChange)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.progressChange = append(c.handlers.progressChange, progressChangeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventProgressChange}
}

// --- Drag state ---

// dateSnapshot is the pre-drag date range of one task.
type dateSnapshot struct {
	start, end time.Time
}

// dragState is the between-events state of the active gesture. One drag at a
// time; the event source never overlaps gestures.
type dragState struct {
	active  bool
	mode    DragMode
	taskID  string
	originX float64
	moved   bool

	bar          Bar // geometry snapshot at pointer-down
	origProgress float64

	// snapshots holds the pre-drag dates for the primary task and every
	// cascaded dependent. affected memoizes the dependent closure for the
	// whole gesture so it is not recomputed per pointer-move.
	snapshots map[string]dateSnapshot
	affected  []string
}

// --- Hit testing ---

// HitTest reports which task and drag mode a pointer position over the chart
// content targets. Returns ("", DragNone) over empty space. Useful for
// cursor styling in frontends.
func (c *Chart) HitTest(x, y float64) (string, DragMode) {
	if c.axis == nil {
		return "", DragNone
	}
	for _, t := range c.tasks {
		bar, err := barGeometry(t, c.axis, c.opts)
		if err != nil {
			return "", DragNone
		}
		if !bar.Rect().Contains(x, y) {
			continue
		}
		left, right, progress := handleZones(bar)
		switch {
		case progress.Contains(x, y):
			return t.ID, DragProgress
		case left.Width > 0 && left.Contains(x, y):
			return t.ID, DragResizeLeft
		case right.Width > 0 && right.Contains(x, y):
			return t.ID, DragResizeRight
		default:
			return t.ID, DragMove
		}
	}
	return "", DragNone
}

// --- State machine ---

// PointerDown starts a gesture when (x, y) hits a bar body or handle.
// Readonly flags are checked here, before entering the dragging state: a
// blocked mode never starts, making the whole gesture a no-op.
func (c *Chart) PointerDown(x, y float64) {
	if c.axis == nil || c.drag.active {
		return
	}
	id, mode := c.HitTest(x, y)
	if mode == DragNone {
		return
	}
	if c.opts.Readonly {
		return
	}
	if mode == DragProgress && c.opts.ReadonlyProgress {
		return
	}
	if mode != DragProgress && c.opts.ReadonlyDates {
		return
	}

	t := c.byID[id]
	bar, err := barGeometry(t, c.axis, c.opts)
	if err != nil {
		return
	}

	c.drag = dragState{
		active:       true,
		mode:         mode,
		taskID:       id,
		originX:      x,
		bar:          bar,
		origProgress: t.Progress,
		snapshots:    map[string]dateSnapshot{id: {t.Start, t.End}},
	}
	if mode == DragMove && c.opts.MoveDependencies {
		c.drag.affected = c.graph.AllDependents(id)
		for _, depID := range c.drag.affected {
			if dep, ok := c.byID[depID]; ok {
				c.drag.snapshots[depID] = dateSnapshot{dep.Start, dep.End}
			}
		}
	}
}

// PointerMove applies the current pointer position to the active gesture.
// Dates are always recomputed from the pointer-down snapshot, so moves are
// order-independent within a gesture and a drag back to the origin restores
// the original dates exactly.
func (c *Chart) PointerMove(x, y float64) {
	if !c.drag.active {
		return
	}
	t := c.byID[c.drag.taskID]
	dx := x - c.drag.originX

	if c.drag.mode == DragProgress {
		if c.drag.bar.Width > 0 {
			t.SetProgress(c.drag.origProgress + dx/c.drag.bar.Width*100)
			c.drag.moved = true
		}
		return
	}

	// Pixel delta to date delta, snapped to the view mode threshold.
	deltaMS := dx / c.axis.ColumnWidth * c.axis.stepMillis()
	if !c.mode.Snap.IsZero() {
		deltaMS = roundToMultiple(deltaMS, ConvertScales(c.mode.Snap, UnitMillisecond))
	}

	snap := c.drag.snapshots[t.ID]
	switch c.drag.mode {
	case DragMove:
		t.Start = dateAddMillis(snap.start, deltaMS)
		t.End = dateAddMillis(snap.end, deltaMS)
		// Cascade: every transitive dependent shifts by the identical
		// delta, fully applied before the caller redraws.
		for _, depID := range c.drag.affected {
			dep, ok := c.byID[depID]
			if !ok {
				continue
			}
			depSnap := c.drag.snapshots[depID]
			dep.Start = dateAddMillis(depSnap.start, deltaMS)
			dep.End = dateAddMillis(depSnap.end, deltaMS)
		}
	case DragResizeLeft:
		newStart := dateAddMillis(snap.start, deltaMS)
		if floor := dateAdd(snap.end, -1, c.axis.Unit); newStart.After(floor) {
			newStart = floor
		}
		t.Start = newStart
	case DragResizeRight:
		newEnd := dateAddMillis(snap.end, deltaMS)
		if floor := dateAdd(snap.start, 1, c.axis.Unit); newEnd.Before(floor) {
			newEnd = floor
		}
		t.End = newEnd
	}
	c.drag.moved = true
}

// PointerUp commits the active gesture. The change observation fires exactly
// once here, never per pointer-move, and only when something actually
// changed relative to the pointer-down snapshot.
func (c *Chart) PointerUp() {
	if !c.drag.active {
		return
	}
	drag := c.drag
	c.drag = dragState{}
	if !drag.moved {
		return
	}
	t := c.byID[drag.taskID]

	if drag.mode == DragProgress {
		if t.Progress != drag.origProgress {
			change := ProgressChange{TaskID: t.ID, Old: drag.origProgress, New: t.Progress}
			for _, h := range c.handlers.progressChange {
				h.fn(change)
			}
		}
		return
	}

	snap := drag.snapshots[t.ID]
	if t.Start.Equal(snap.start) && t.End.Equal(snap.end) {
		return
	}
	t.ignoredDuration = c.axis.ignoredDays(t.Start, t.End)
	for _, depID := range drag.affected {
		if dep, ok := c.byID[depID]; ok {
			dep.ignoredDuration = c.axis.ignoredDays(dep.Start, dep.End)
		}
	}
	change := DateChange{
		TaskID:   t.ID,
		OldStart: snap.start,
		OldEnd:   snap.end,
		NewStart: t.Start,
		NewEnd:   t.End,
		Cascaded: drag.affected,
	}
	for _, h := range c.handlers.dateChange {
		h.fn(change)
	}
}

// PointerCancel abandons the active gesture, reverting every touched task to
// its pointer-down snapshot. Used when the pointer leaves the tracked
// surface without a pointer-up. No observations fire.
func (c *Chart) PointerCancel() {
	if !c.drag.active {
		return
	}
	for id, snap := range c.drag.snapshots {
		if t, ok := c.byID[id]; ok {
			t.Start = snap.start
			t.End = snap.end
		}
	}
	if t, ok := c.byID[c.drag.taskID]; ok && c.drag.mode == DragProgress {
		t.Progress = c.drag.origProgress
	}
	c.drag = dragState{}
}

// Dragging reports whether a gesture is active and its mode.
func (c *Chart) Dragging() (bool, DragMode) {
	return c.drag.active, c.drag.mode
}
