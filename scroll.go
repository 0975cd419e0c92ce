package gantry

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollState holds the horizontal view offset and any active scroll tween.
type scrollState struct {
	offsetX float64
	// viewWidth is the frontend-reported visible width, used for edge
	// detection under infinite padding. Zero disables growth.
	viewWidth float64
	tween     *gween.Tween
	done      bool
}

func (s *scrollState) stop() {
	s.tween = nil
	s.done = false
}

// growThresholdColumns is how close (in columns) the view edge may get to an
// axis edge before the axis grows under infinite padding.
const growThresholdColumns = 5

// growChunkColumns is how many columns are added per growth step.
const growChunkColumns = 30

// ScrollX returns the current horizontal scroll offset in pixels.
func (c *Chart) ScrollX() float64 { return c.scroll.offsetX }

// SetScrollX sets the scroll offset directly (e.g. from a drag on the chart
// background), clamped to the grid and grown on demand under infinite
// padding.
func (c *Chart) SetScrollX(x float64) {
	c.scroll.stop()
	c.scroll.offsetX = c.clampScroll(x)
	c.maybeGrow()
}

// SetViewWidth tells the chart how wide the visible viewport is. Frontends
// call this on resize; it drives edge detection for infinite padding.
func (c *Chart) SetViewWidth(w float64) {
	c.scroll.viewWidth = w
}

// ScrollToDate animates the scroll offset so the given date lands at the
// left edge of the view, over duration seconds.
func (c *Chart) ScrollToDate(date time.Time, duration float32, easeFn ease.TweenFunc) {
	if c.axis == nil {
		return
	}
	target := c.clampScroll(c.axis.X(date))
	if duration <= 0 {
		c.scroll.stop()
		c.scroll.offsetX = target
		return
	}
	c.scroll.tween = gween.New(float32(c.scroll.offsetX), float32(target), duration, easeFn)
	c.scroll.done = false
}

// ScrollToToday scrolls to the current date.
func (c *Chart) ScrollToToday(duration float32, easeFn ease.TweenFunc) {
	c.ScrollToDate(startOf(time.Now(), UnitDay), duration, easeFn)
}

// ScrollToOldest scrolls to the earliest task start.
func (c *Chart) ScrollToOldest(duration float32, easeFn ease.TweenFunc) {
	if len(c.tasks) == 0 {
		return
	}
	oldest := c.tasks[0].Start
	for _, t := range c.tasks[1:] {
		if t.Start.Before(oldest) {
			oldest = t.Start
		}
	}
	c.ScrollToDate(oldest, duration, easeFn)
}

// clampScroll keeps the offset inside the grid, leaving room for the view.
func (c *Chart) clampScroll(x float64) float64 {
	if c.axis == nil {
		return 0
	}
	maxX := c.axis.TotalWidth() - c.scroll.viewWidth
	if maxX < 0 {
		maxX = 0
	}
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	return x
}

// update advances the scroll tween and grows the axis near edges.
// Called from Chart.Update.
func (s *scrollState) update(c *Chart, dt float32) {
	if s.tween != nil && !s.done {
		val, done := s.tween.Update(dt)
		s.offsetX = float64(val)
		s.done = done
		if done {
			s.tween = nil
		}
	}
	c.maybeGrow()
}

// maybeGrow extends the axis when the view is scrolled near an edge under
// infinite padding. Growing left shifts every pixel coordinate right by the
// added width, so the offset is compensated to keep the view stable.
func (c *Chart) maybeGrow() {
	if !c.opts.InfinitePadding || c.axis == nil || c.scroll.viewWidth <= 0 {
		return
	}
	threshold := growThresholdColumns * c.axis.ColumnWidth
	if c.scroll.offsetX < threshold {
		shift := c.axis.GrowBefore(growChunkColumns)
		c.scroll.offsetX += shift
	}
	if c.scroll.offsetX+c.scroll.viewWidth > c.axis.TotalWidth()-threshold {
		c.axis.GrowAfter(growChunkColumns)
	}
}
