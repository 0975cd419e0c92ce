package gantry

import (
	"strconv"
	"strings"
)

// PathKind distinguishes path segment variants.
type PathKind uint8

const (
	PathMove       PathKind = iota // M / m
	PathLine                       // L / l
	PathVertical                   // V / v
	PathHorizontal                 // H / h
	PathArc                        // A / a
)

// PathSegment is one typed step of an arrow path. Routing works on segment
// lists; the textual SVG grammar appears only at serialization time.
//
// For PathVertical only Y is meaningful, for PathHorizontal only X. Arcs
// carry their radii and sweep flag; rotation and the large-arc flag are
// always zero for the shapes routed here.
type PathSegment struct {
	Kind  PathKind
	Rel   bool
	X, Y  float64
	RX    float64
	RY    float64
	Sweep int
}

// moveTo, lineTo, etc. are routing-side constructors.

func moveTo(x, y float64) PathSegment { return PathSegment{Kind: PathMove, X: x, Y: y} }

func moveBy(dx, dy float64) PathSegment {
	return PathSegment{Kind: PathMove, Rel: true, X: dx, Y: dy}
}

func lineTo(x, y float64) PathSegment { return PathSegment{Kind: PathLine, X: x, Y: y} }

func lineBy(dx, dy float64) PathSegment {
	return PathSegment{Kind: PathLine, Rel: true, X: dx, Y: dy}
}

func verticalTo(y float64) PathSegment { return PathSegment{Kind: PathVertical, Y: y} }

func verticalBy(dy float64) PathSegment {
	return PathSegment{Kind: PathVertical, Rel: true, Y: dy}
}

func horizontalTo(x float64) PathSegment { return PathSegment{Kind: PathHorizontal, X: x} }

func arcBy(r float64, sweep int, dx, dy float64) PathSegment {
	return PathSegment{Kind: PathArc, Rel: true, RX: r, RY: r, Sweep: sweep, X: dx, Y: dy}
}

// letter returns the SVG command letter for the segment.
func (s PathSegment) letter() byte {
	var abs, rel byte
	switch s.Kind {
	case PathMove:
		abs, rel = 'M', 'm'
	case PathLine:
		abs, rel = 'L', 'l'
	case PathVertical:
		abs, rel = 'V', 'v'
	case PathHorizontal:
		abs, rel = 'H', 'h'
	case PathArc:
		abs, rel = 'A', 'a'
	default:
		abs, rel = '?', '?'
	}
	if s.Rel {
		return rel
	}
	return abs
}

// SerializePath renders a segment list as SVG path text, e.g.
// "M 160 51 V 76 a 5 5 0 0 0 5 5 L 187 81 m -5 -5 l 5 5 l -5 5".
func SerializePath(segments []PathSegment) string {
	var sb strings.Builder
	for i, s := range segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(s.letter())
		switch s.Kind {
		case PathVertical:
			sb.WriteByte(' ')
			sb.WriteString(num(s.Y))
		case PathHorizontal:
			sb.WriteByte(' ')
			sb.WriteString(num(s.X))
		case PathArc:
			for _, v := range []float64{s.RX, s.RY, 0, 0, float64(s.Sweep), s.X, s.Y} {
				sb.WriteByte(' ')
				sb.WriteString(num(v))
			}
		default:
			sb.WriteByte(' ')
			sb.WriteString(num(s.X))
			sb.WriteByte(' ')
			sb.WriteString(num(s.Y))
		}
	}
	return sb.String()
}

// num formats a coordinate compactly: integers without a decimal point,
// everything else with minimal digits.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
