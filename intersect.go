package sdf

import "github.com/chewxy/math32"

// Intersections writes the x-coordinates where the segment crosses the
// horizontal line at height y into out, and returns how many were written.
// A cubic segment can cross a horizontal line at up to 3 points; the fixed
// output keeps the per-row scan allocation free.
func (s Segment) Intersections(y float32, out *[3]float32) int {
	switch s.Type {
	case SegmentLine:
		return lineIntersections(s.Points[0], s.Points[1], y, out)
	case SegmentQuad:
		return quadIntersections(s.Points[0], s.Points[1], s.Points[2], y, out)
	case SegmentCubic:
		return cubicIntersections(s.Points[0], s.Points[1], s.Points[2], s.Points[3], y, out)
	default:
		return 0
	}
}

// lineIntersections interpolates x at the row height. The range test is
// half-open on the descending branch so a row through a shared vertex is
// not counted by both adjoining segments.
func lineIntersections(start, end Point, y float32, out *[3]float32) int {
	if (y >= start.Y && y <= end.Y) || (y >= end.Y && y < start.Y) {
		h := (y - start.Y) / (end.Y - start.Y)
		out[0] = mix(start.X, end.X, h)
		return 1
	}
	return 0
}

// quadIntersections solves the quadratic in t formed by the Bernstein
// y-coefficients of the curve translated so the row sits at y=0, then maps
// the roots in [0, 1] through the Bernstein x-polynomial.
// Implementation from https://github.com/Pomax/bezierjs
func quadIntersections(start, control, end Point, y float32, out *[3]float32) int {
	minY := math32.Min(start.Y, math32.Min(control.Y, end.Y))
	maxY := math32.Max(start.Y, math32.Max(control.Y, end.Y))
	if y < minY || y > maxY {
		return 0
	}

	x0 := start.X
	x1 := control.X
	x2 := end.X
	solve := func(t float32) float32 {
		t2 := t * t
		mt := 1 - t
		mt2 := mt * mt
		return x0*mt2 + x1*2*mt*t + x2*t2
	}

	// Translate so the target row is y=0.
	a := start.Y - y
	b := control.Y - y
	c := end.Y - y
	d := a - 2*b + c

	count := 0
	if d != 0 {
		m1 := -math32.Sqrt(b*b - a*c)
		m2 := -a + b
		r0 := -(m1 + m2) / d
		r1 := -(-m1 + m2) / d

		if 0 <= r0 && r0 <= 1 {
			out[count] = solve(r0)
			count++
		}
		if r0 != r1 && 0 <= r1 && r1 <= 1 {
			out[count] = solve(r1)
			count++
		}
	} else if b != c {
		// Degenerate leading coefficient: the equation is linear in t.
		r0 := (2*b - c) / (2*b - 2*c)
		if 0 <= r0 && r0 <= 1 {
			out[0] = solve(r0)
			count = 1
		}
	}

	return count
}

// cubicIntersections forms the depressed cubic in t from the Bernstein
// y-coefficients of the translated curve and branches on its discriminant:
// three real roots via the trigonometric method, a double root, or a single
// root via Cardano's formula. Roots in [0, 1] are mapped through the
// Bernstein x-polynomial.
// Implementation from https://github.com/Pomax/bezierjs
func cubicIntersections(start, control1, control2, end Point, y float32, out *[3]float32) int {
	x0 := start.X
	x1 := control1.X
	x2 := control2.X
	x3 := end.X
	solve := func(t float32) float32 {
		t2 := t * t
		t3 := t2 * t
		mt := 1 - t
		mt2 := mt * mt
		mt3 := mt2 * mt
		return x0*mt3 + 3*x1*mt2*t + 3*x2*mt*t2 + x3*t3
	}

	// Translate so the target row is y=0.
	pa := start.Y - y
	pb := control1.Y - y
	pc := control2.Y - y
	pd := end.Y - y

	d := -pa + 3*pb - 3*pc + pd
	a := (3*pa - 6*pb + 3*pc) / d
	b := (-3*pa + 3*pb) / d
	c := pa / d

	p := (3*b - a*a) / 3
	p3 := p / 3
	q := (2*a*a*a - 9*a*b + 27*c) / 27
	q2 := q / 2
	discriminant := q2*q2 + p3*p3*p3

	count := 0
	switch {
	case discriminant < 0:
		const tau = 2 * math32.Pi
		mp3 := -p / 3
		mp33 := mp3 * mp3 * mp3
		r := math32.Sqrt(mp33)
		t := -q / (r * 2)
		cosphi := clamp(t, -1, 1)
		phi := math32.Acos(cosphi)
		crtr := crt(r)
		t1 := 2 * crtr

		r0 := t1*math32.Cos(phi/3) - a/3
		r1 := t1*math32.Cos((phi+tau)/3) - a/3
		r2 := t1*math32.Cos((phi+2*tau)/3) - a/3

		if 0 <= r0 && r0 <= 1 {
			out[count] = solve(r0)
			count++
		}
		if 0 <= r1 && r1 <= 1 {
			out[count] = solve(r1)
			count++
		}
		if 0 <= r2 && r2 <= 1 {
			out[count] = solve(r2)
			count++
		}

	case discriminant == 0:
		var u1 float32
		if q2 < 0 {
			u1 = crt(-q2)
		} else {
			u1 = -crt(q2)
		}

		r0 := 2*u1 - a/3
		r1 := -u1 - a/3
		if 0 <= r0 && r0 <= 1 {
			out[count] = solve(r0)
			count++
		}
		if r0 != r1 && 0 <= r1 && r1 <= 1 {
			out[count] = solve(r1)
			count++
		}

	default:
		sd := math32.Sqrt(discriminant)
		u1 := crt(-q2 + sd)
		v1 := crt(q2 + sd)
		r := u1 - v1 - a/3
		if 0 <= r && r <= 1 {
			out[count] = solve(r)
			count++
		}
	}

	return count
}

// crt is the real (signed) cube root.
func crt(v float32) float32 {
	if v < 0 {
		return -math32.Pow(-v, 1.0/3.0)
	}
	return math32.Pow(v, 1.0/3.0)
}
