package sdf

// SegmentType classifies outline segments by their geometric type.
type SegmentType int

const (
	// SegmentLine is a straight line segment between two points.
	SegmentLine SegmentType = iota

	// SegmentQuad is a quadratic Bezier curve (one control point).
	SegmentQuad

	// SegmentCubic is a cubic Bezier curve (two control points).
	SegmentCubic
)

// String returns a string representation of the segment type.
func (t SegmentType) String() string {
	switch t {
	case SegmentLine:
		return "Line"
	case SegmentQuad:
		return "Quad"
	case SegmentCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is one atomic piece of a vector outline: a straight line,
// a quadratic Bezier, or a cubic Bezier. Segments are value types and
// every operation on them is pure.
//
// Coordinates live in the normalized unit square (see the package doc).
// Within one contour the end point of each segment must coincide with the
// start point of the next; closure is the caller's responsibility.
type Segment struct {
	// Type is the geometric type of this segment.
	Type SegmentType

	// Points contains the control and end points for this segment.
	// Line: P0 (start), P1 (end)
	// Quad: P0 (start), P1 (control), P2 (end)
	// Cubic: P0 (start), P1 (control1), P2 (control2), P3 (end)
	Points [4]Point
}

// NewLine creates a straight line segment from start to end.
func NewLine(start, end Point) Segment {
	return Segment{
		Type:   SegmentLine,
		Points: [4]Point{start, end, {}, {}},
	}
}

// NewQuad creates a quadratic Bezier segment.
func NewQuad(start, control, end Point) Segment {
	return Segment{
		Type:   SegmentQuad,
		Points: [4]Point{start, control, end, {}},
	}
}

// NewCubic creates a cubic Bezier segment.
func NewCubic(start, control1, control2, end Point) Segment {
	return Segment{
		Type:   SegmentCubic,
		Points: [4]Point{start, control1, control2, end},
	}
}

// Start returns the starting point of the segment.
func (s Segment) Start() Point {
	return s.Points[0]
}

// End returns the ending point of the segment.
func (s Segment) End() Point {
	switch s.Type {
	case SegmentLine:
		return s.Points[1]
	case SegmentQuad:
		return s.Points[2]
	case SegmentCubic:
		return s.Points[3]
	default:
		return s.Points[0]
	}
}

// PointAt evaluates the segment at parameter t in [0, 1].
func (s Segment) PointAt(t float32) Point {
	switch s.Type {
	case SegmentLine:
		return s.Points[0].Lerp(s.Points[1], t)
	case SegmentQuad:
		return evalQuad(s.Points[0], s.Points[1], s.Points[2], t)
	case SegmentCubic:
		return evalCubic(s.Points[0], s.Points[1], s.Points[2], s.Points[3], t)
	default:
		return s.Points[0]
	}
}

// Normalize returns the segment with every coordinate divided componentwise
// by (width, height). It maps a segment expressed in a [0,width]x[0,height]
// box into the unit square.
func (s Segment) Normalize(width, height float32) Segment {
	p := Pt(width, height)
	out := s
	for i := 0; i < s.pointCount(); i++ {
		out.Points[i] = s.Points[i].DivPoint(p)
	}
	return out
}

// NormalizeOffset returns the segment translated by (-x, -y) and then
// divided componentwise by (width, height). It maps a segment expressed in
// an arbitrary [x,x+width]x[y,y+height] box into the unit square.
func (s Segment) NormalizeOffset(x, y, width, height float32) Segment {
	o := Pt(x, y)
	p := Pt(width, height)
	out := s
	for i := 0; i < s.pointCount(); i++ {
		out.Points[i] = s.Points[i].Sub(o).DivPoint(p)
	}
	return out
}

// FlipY returns the segment reflected about the unit square's horizontal
// midline (y' = 1 - y). It is used when an outline's vertical axis
// convention is opposite the raster's. Assumes normalized coordinates.
func (s Segment) FlipY() Segment {
	out := s
	for i := 0; i < s.pointCount(); i++ {
		out.Points[i] = Point{X: s.Points[i].X, Y: 1 - s.Points[i].Y}
	}
	return out
}

// pointCount returns the number of meaningful entries in Points.
func (s Segment) pointCount() int {
	switch s.Type {
	case SegmentLine:
		return 2
	case SegmentQuad:
		return 3
	case SegmentCubic:
		return 4
	default:
		return 0
	}
}

// evalQuad evaluates a quadratic Bezier curve at parameter t.
func evalQuad(p0, p1, p2 Point, t float32) Point {
	mt := 1 - t
	// (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic Bezier curve at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float32) Point {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	// (1-t)^3*P0 + 3(1-t)^2*t*P1 + 3(1-t)*t^2*P2 + t^3*P3
	return Point{
		X: mt3*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t3*p3.X,
		Y: mt3*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t3*p3.Y,
	}
}
