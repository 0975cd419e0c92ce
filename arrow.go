package gantry

// Arrow is a routed dependency connector between two bars. Path is fully
// recomputed whenever either endpoint moves, never patched incrementally.
type Arrow struct {
	FromID string
	ToID   string
	Path   []PathSegment
}

// SVGPath returns the arrow path serialized to SVG path text.
func (a Arrow) SVGPath() string {
	return SerializePath(a.Path)
}

// arrowOriginStep is how far the origin is pulled left per iteration when
// the bars nearly overlap horizontally.
const arrowOriginStep = 10.0

// arrowEndClearance is the fixed gap kept before the target bar's left edge.
const arrowEndClearance = 13.0

// routeArrow computes the path from the bar of the prerequisite task to the
// bar of the dependent task. padding is the row padding, curve the arc
// radius; both come from the chart options.
//
// Two shapes are produced. When the target starts after the source (the
// common forward case) the path drops from under the source bar, arcs once,
// and runs straight into the target's left edge. When the target starts at
// or before the source, the path first escapes left around the target
// column before aligning with the target row.
func routeArrow(from, to Bar, fromIndex, toIndex int, padding, curve float64) []PathSegment {
	// Pull the origin leftward while the target would start inside the
	// origin clearance, so near-overlapping bars don't yield a degenerate
	// near-zero path. One extra step applies unconditionally.
	startX := from.X + from.Width/2
	for to.X < startX+padding && startX > from.X+padding {
		startX -= arrowOriginStep
	}
	startX -= arrowOriginStep

	startY := from.Y + from.Height/2
	endX := to.X - arrowEndClearance
	endY := to.Y + to.Height/2

	fromBelow := fromIndex > toIndex
	clockwise := 0
	if fromBelow {
		clockwise = 1
	}
	curveY := func() float64 {
		if fromBelow {
			return -curve
		}
		return curve
	}

	if to.X <= from.X+padding {
		// Backward case: drop, arc left, run under/over to the target
		// column, arc back, align with the target row.
		down1 := padding/2 - curve
		if down1 < 0 {
			// Never arc with a radius larger than the available drop.
			curve = padding / 2
			down1 = 0
		}
		cy := curveY()
		down2 := to.Y + to.Height/2 - cy
		left := to.X - padding

		return appendArrowHead([]PathSegment{
			moveTo(startX, startY),
			verticalBy(down1),
			arcBy(curve, 1, -curve, curve),
			horizontalTo(left),
			arcBy(curve, clockwise, -curve, cy),
			verticalTo(down2),
			arcBy(curve, clockwise, curve, cy),
			lineTo(endX, endY),
		})
	}

	// Forward case. Shrink the arc when the target edge is closer than one
	// radius, so the arc cannot overshoot past it.
	if endX-startX < curve {
		curve = endX - startX
		if curve < 0 {
			curve = 0
		}
	}
	cy := curveY()
	offset := endY - cy

	return appendArrowHead([]PathSegment{
		moveTo(startX, startY),
		verticalTo(offset),
		arcBy(curve, clockwise, curve, cy),
		lineTo(endX, endY),
	})
}

// appendArrowHead terminates a path with the fixed chevron: a relative move
// up-left of the endpoint and two relative strokes forming the point.
func appendArrowHead(path []PathSegment) []PathSegment {
	return append(path,
		moveBy(-5, -5),
		lineBy(5, 5),
		lineBy(-5, 5),
	)
}
