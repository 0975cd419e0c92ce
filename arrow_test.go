package gantry

import (
	"strings"
	"testing"
)

// arcSweeps extracts the sweep flags of all arc segments in order.
func arcSweeps(path []PathSegment) []int {
	var out []int
	for _, s := range path {
		if s.Kind == PathArc {
			out = append(out, s.Sweep)
		}
	}
	return out
}

// --- forward case ---

func TestRouteArrowForwardConcrete(t *testing.T) {
	// A [x=0, w=120] on row 0 feeding B [x=60] on row 1.
	from := Bar{X: 0, Y: 74, Width: 120, Height: 30}
	to := Bar{X: 60, Y: 122, Width: 150, Height: 30}
	path := routeArrow(from, to, 0, 1, DefaultPadding, DefaultArrowCurve)

	// Origin pulled left from the bar midpoint (60) while B starts inside
	// the clearance, then one unconditional step: 60 -> 50 -> 40 -> 30.
	if path[0].Kind != PathMove {
		t.Fatalf("path[0] = %+v, want MoveTo", path[0])
	}
	assertNear(t, "start x", path[0].X, 30)
	assertNear(t, "start y", path[0].Y, 89)

	sweeps := arcSweeps(path)
	if len(sweeps) != 1 || sweeps[0] != 0 {
		t.Errorf("sweeps = %v, want [0] (source above target)", sweeps)
	}

	// Straight run into 13px before the target's left edge, at its mid-line.
	line := path[3]
	if line.Kind != PathLine || line.Rel {
		t.Fatalf("path[3] = %+v, want absolute LineTo", line)
	}
	assertNear(t, "end x", line.X, 60-13)
	assertNear(t, "end y", line.Y, 137)

	got := SerializePath(path)
	want := "M 30 89 V 132 a 5 5 0 0 0 5 5 L 47 137 m -5 -5 l 5 5 l -5 5"
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestRouteArrowClockwiseByRowOrder(t *testing.T) {
	above := Bar{X: 0, Y: 74, Width: 60, Height: 30}
	below := Bar{X: 200, Y: 122, Width: 60, Height: 30}

	// Source above target: counter-clockwise.
	sweeps := arcSweeps(routeArrow(above, below, 0, 1, DefaultPadding, DefaultArrowCurve))
	for _, s := range sweeps {
		if s != 0 {
			t.Errorf("from above: sweep = %d, want 0", s)
		}
	}
	// Source below target: clockwise.
	sweeps = arcSweeps(routeArrow(below, above, 1, 0, DefaultPadding, DefaultArrowCurve))
	if len(sweeps) == 0 {
		t.Fatal("no arcs in path")
	}
	for _, s := range sweeps {
		if s != 1 {
			t.Errorf("from below: sweep = %d, want 1", s)
		}
	}
}

func TestRouteArrowForwardCurveShrinks(t *testing.T) {
	// Target edge closer than one curve radius to the origin: the arc
	// shrinks to the exact remaining distance so it cannot overshoot.
	// Origin lands at 5 (midpoint 15, no pull possible, minus one step);
	// the end is at 19-13=6, so the radius collapses from 5 to 1.
	from := Bar{X: 0, Y: 74, Width: 30, Height: 30}
	to := Bar{X: 19, Y: 122, Width: 60, Height: 30}
	path := routeArrow(from, to, 0, 1, DefaultPadding, DefaultArrowCurve)
	var arc *PathSegment
	for i := range path {
		if path[i].Kind == PathArc {
			arc = &path[i]
			break
		}
	}
	if arc == nil {
		t.Fatal("no arc in path")
	}
	assertNear(t, "shrunk radius", arc.RX, 1)
}

// --- backward case ---

func TestRouteArrowBackwardShape(t *testing.T) {
	// Target starts before the source: the path must escape left around
	// the target column. Three arcs instead of one.
	from := Bar{X: 300, Y: 74, Width: 120, Height: 30}
	to := Bar{X: 60, Y: 122, Width: 60, Height: 30}
	path := routeArrow(from, to, 0, 1, DefaultPadding, DefaultArrowCurve)

	sweeps := arcSweeps(path)
	if len(sweeps) != 3 {
		t.Fatalf("backward path arcs = %d, want 3", len(sweeps))
	}
	// First arc always turns left (sweep 1); the rest follow row order.
	if sweeps[0] != 1 {
		t.Errorf("first arc sweep = %d, want 1", sweeps[0])
	}
	if sweeps[1] != 0 || sweeps[2] != 0 {
		t.Errorf("row-order sweeps = %v, want [.. 0 0]", sweeps)
	}

	// The horizontal run reaches one padding left of the target.
	var h *PathSegment
	for i := range path {
		if path[i].Kind == PathHorizontal {
			h = &path[i]
			break
		}
	}
	if h == nil {
		t.Fatal("no horizontal segment in backward path")
	}
	assertNear(t, "left escape", h.X, to.X-DefaultPadding)
}

func TestRouteArrowBackwardCurveClampedToDrop(t *testing.T) {
	// Arc radius larger than half the padding: the radius is reduced to
	// the available drop so the first vertical run never goes negative.
	from := Bar{X: 300, Y: 74, Width: 120, Height: 30}
	to := Bar{X: 60, Y: 122, Width: 60, Height: 30}
	path := routeArrow(from, to, 0, 1, DefaultPadding, 50)

	v := path[1]
	if v.Kind != PathVertical || !v.Rel {
		t.Fatalf("path[1] = %+v, want relative vertical", v)
	}
	if v.Y < 0 {
		t.Errorf("first drop = %v, want >= 0", v.Y)
	}
	for _, s := range path {
		if s.Kind == PathArc {
			assertNear(t, "clamped radius", s.RX, DefaultPadding/2)
		}
	}
}

// --- arrowhead ---

func TestRouteArrowChevronTerminator(t *testing.T) {
	from := Bar{X: 0, Y: 74, Width: 120, Height: 30}
	to := Bar{X: 200, Y: 122, Width: 60, Height: 30}
	path := routeArrow(from, to, 0, 1, DefaultPadding, DefaultArrowCurve)
	got := SerializePath(path)
	if !strings.HasSuffix(got, "m -5 -5 l 5 5 l -5 5") {
		t.Errorf("path %q does not end with the chevron", got)
	}
}

// --- chart-level routing ---

func TestChartArrowsPerDependency(t *testing.T) {
	c := newTestChart(t, DefaultOptions(), []Task{
		{ID: "a", Start: date(t, "2024-01-01"), End: date(t, "2024-01-05")},
		{ID: "b", Start: date(t, "2024-01-03"), End: date(t, "2024-01-08"), Dependencies: []string{"a"}},
		{ID: "c", Start: date(t, "2024-01-05"), End: date(t, "2024-01-09"), Dependencies: []string{"a", "b", "ghost"}},
	})
	arrows, err := c.Arrows()
	if err != nil {
		t.Fatalf("Arrows: %v", err)
	}
	if len(arrows) != 3 {
		t.Fatalf("arrows = %d, want 3 (ghost dependency skipped)", len(arrows))
	}
	for _, a := range arrows {
		if len(a.Path) == 0 {
			t.Errorf("arrow %s->%s has empty path", a.FromID, a.ToID)
		}
		if a.SVGPath() == "" {
			t.Errorf("arrow %s->%s serializes empty", a.FromID, a.ToID)
		}
	}
}
