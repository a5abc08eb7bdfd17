package sdf

import "github.com/chewxy/math32"

// Distance returns the unsigned nearest distance from point p to the
// segment. Zero means p lies exactly on the segment.
func (s Segment) Distance(p Point) float32 {
	switch s.Type {
	case SegmentLine:
		return lineDistance(s.Points[0], s.Points[1], p)
	case SegmentQuad:
		return quadDistance(s.Points[0], s.Points[1], s.Points[2], p)
	case SegmentCubic:
		return cubicDistance(s.Points[0], s.Points[1], s.Points[2], s.Points[3], p)
	default:
		return math32.MaxFloat32
	}
}

// lineDistance is the closed-form point-to-segment distance: project p onto
// the infinite line, clamp the parameter to [0, 1] so the distance is to the
// segment rather than the line, and measure to the projected point.
func lineDistance(start, end, p Point) float32 {
	pa := p.Sub(start)
	ba := end.Sub(start)
	h := clamp(pa.Dot(ba)/ba.Dot(ba), 0, 1)
	return pa.Sub(ba.Mul(h)).Length()
}

// quadDistance is the closed-form global minimum distance to a quadratic
// Bezier. Substituting the Bezier parametrization into the squared distance
// yields a depressed cubic in t, solved via its discriminant: the Cardano
// radical formula when one real root exists, the trigonometric method when
// three do. Credits to https://www.shadertoy.com/view/MlKcDD
func quadDistance(start, control, end, p Point) float32 {
	pa := control.Sub(start)
	pb := start.Sub(control.Mul(2)).Add(end)
	pc := pa.Mul(2)
	pd := start.Sub(p)

	kk := 1 / pb.Dot(pb)
	kx := kk * pa.Dot(pb)
	ky := kk * (2*pa.Dot(pa) + pd.Dot(pb)) / 3
	kz := kk * pd.Dot(pa)

	var res float32

	q := kx*(2*kx*kx-3*ky) + kz
	dp := ky - kx*kx
	p3 := dp * dp * dp
	q2 := q * q
	h := q2 + 4*p3

	if h >= 0 {
		// One real root: Cardano's radical formula with signed cube roots.
		h = math32.Sqrt(h)
		x := Pt(h, -h).Sub(Pt(q, q)).Div(2)
		uv := x.Sign().MulPoint(x.Abs().Pow(Pt(1.0/3.0, 1.0/3.0)))
		t := clamp(uv.X+uv.Y-kx, 0, 1)
		w := pd.Add(pc.Add(pb.Mul(t)).Mul(t))
		res = w.Dot(w)
	} else {
		// Three real roots: the cosine method. Only the first two
		// candidates can realize the minimum for a quadratic.
		z := math32.Sqrt(-dp)
		v := math32.Acos(clamp(q/(dp*z*2), -1, 1)) / 3
		m := math32.Cos(v)
		n := math32.Sin(v) * 1.732050808
		t0 := clamp((m+m)*z-kx, 0, 1)
		t1 := clamp((-n-m)*z-kx, 0, 1)
		qx := pd.Add(pc.Add(pb.Mul(t0)).Mul(t0))
		dx := qx.Dot(qx)
		qy := pd.Add(pc.Add(pb.Mul(t1)).Mul(t1))
		dy := qy.Dot(qy)
		res = math32.Min(dx, dy)
	}

	return math32.Sqrt(res)
}

// cubicDistanceSteps is the sample count per refinement level of the cubic
// distance scan (31 curve evaluations per level, step 1/30).
const cubicDistanceSteps = 30

// cubicDistance approximates the minimum distance to a cubic Bezier with a
// two-level uniform scan: a coarse pass over [0, 1], then a fine pass over
// the interval bracketing the best coarse sample. A closed-form solution
// would require solving a quintic; see for yourself:
// https://www.shadertoy.com/view/4sKyzW
//
// The result is a local minimizer and can be off for highly oscillatory
// curves, which do not occur in well-formed glyph outlines.
func cubicDistance(start, control1, control2, end, p Point) float32 {
	minDistance := float32(math32.MaxFloat32)
	closestStep := 0

	// Squared distances throughout; the square root happens once at the end.
	solve := func(i int, t float32) {
		pt := evalCubic(start, control1, control2, end, t)
		x := p.X - pt.X
		y := p.Y - pt.Y
		distance := x*x + y*y
		if distance < minDistance {
			minDistance = distance
			closestStep = i
		}
	}

	coarseStep := float32(1) / cubicDistanceSteps
	for i := 0; i <= cubicDistanceSteps; i++ {
		solve(i, coarseStep*float32(i))
	}

	boundsMin := float32(0)
	if closestStep != 0 {
		boundsMin = float32(closestStep-1) * coarseStep
	}
	boundsMax := float32(1)
	if closestStep != cubicDistanceSteps {
		boundsMax = float32(closestStep+1) * coarseStep
	}

	fineStep := (boundsMax - boundsMin) / cubicDistanceSteps
	for i := 0; i <= cubicDistanceSteps; i++ {
		solve(i, boundsMin+float32(i)*fineStep)
	}

	return math32.Sqrt(minDistance)
}
