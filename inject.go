package gantry

// syntheticPointerEvent is a single injected pointer event in chart content
// coordinates, matching what a frontend would deliver from real input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	cancel  bool
}

// InjectPress queues a pointer press at the given content coordinates.
// The event is consumed on the next Update call.
func (c *Chart) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (c *Chart) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release.
func (c *Chart) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectCancel queues a gesture abort, as when the pointer leaves the
// tracked surface mid-drag.
func (c *Chart) InjectCancel() {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` Update calls; minimum is 2.
func (c *Chart) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it through the same
// state machine as real pointer input. One event per Update keeps injected
// sequences frame-accurate.
func (c *Chart) processInjectedInput() {
	if len(c.injectQueue) == 0 {
		return
	}
	ev := c.injectQueue[0]
	c.injectQueue = c.injectQueue[1:]

	switch {
	case ev.cancel:
		c.PointerCancel()
	case ev.pressed && !c.drag.active:
		c.PointerDown(ev.x, ev.y)
	case ev.pressed:
		c.PointerMove(ev.x, ev.y)
	default:
		c.PointerMove(ev.x, ev.y)
		c.PointerUp()
	}
}
