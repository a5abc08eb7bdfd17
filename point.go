package sdf

import "github.com/chewxy/math32"

// Point represents a 2D point or vector with float32 precision.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// MulPoint returns the componentwise product of two points.
func (p Point) MulPoint(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// DivPoint returns the componentwise quotient of two points.
func (p Point) DivPoint(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Sign returns the componentwise sign of the vector: each component is
// -1 for negative values, 0 for zero, and 1 for positive values.
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

// Abs returns the componentwise absolute value of the vector.
func (p Point) Abs() Point {
	return Point{X: math32.Abs(p.X), Y: math32.Abs(p.Y)}
}

// Pow returns the componentwise power p^q.
func (p Point) Pow(q Point) Point {
	return Point{X: math32.Pow(p.X, q.X), Y: math32.Pow(p.Y, q.Y)}
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Orthonormal returns a unit vector perpendicular to p. The polarity
// selects the side: true rotates counter-clockwise, false clockwise.
// For a zero-length vector the convention is (0, 1) or (0, -1) rather
// than NaN.
func (p Point) Orthonormal(polarity bool) Point {
	length := p.Length()
	if length == 0 {
		if polarity {
			return Point{X: 0, Y: 1}
		}
		return Point{X: 0, Y: -1}
	}
	if polarity {
		return Point{X: -p.Y / length, Y: p.X / length}
	}
	return Point{X: p.Y / length, Y: -p.X / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// sign returns -1, 0, or 1 according to the sign of x.
func sign(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return 1
	}
}

// mix linearly interpolates between two values by the given weight.
func mix(v1, v2, weight float32) float32 {
	return v1 + (v2-v1)*weight
}

// clamp restricts v to the range [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
