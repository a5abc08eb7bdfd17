package sdf

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-6

func nearEqual(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func pointsNearEqual(a, b Point) bool {
	return nearEqual(a.X, b.X) && nearEqual(a.Y, b.Y)
}

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"Sub", Pt(3, 4).Sub(Pt(1, 2)), Pt(2, 2)},
		{"Mul", Pt(1, 2).Mul(3), Pt(3, 6)},
		{"Div", Pt(3, 6).Div(3), Pt(1, 2)},
		{"MulPoint", Pt(2, 3).MulPoint(Pt(4, 5)), Pt(8, 15)},
		{"DivPoint", Pt(8, 15).DivPoint(Pt(4, 5)), Pt(2, 3)},
		{"Lerp", Pt(0, 0).Lerp(Pt(2, 4), 0.5), Pt(1, 2)},
		{"LerpStart", Pt(1, 1).Lerp(Pt(9, 9), 0), Pt(1, 1)},
		{"LerpEnd", Pt(1, 1).Lerp(Pt(9, 9), 1), Pt(9, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointsNearEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointProducts(t *testing.T) {
	if got := Pt(1, 2).Dot(Pt(3, 4)); !nearEqual(got, 11) {
		t.Errorf("Dot: got %v, want 11", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); !nearEqual(got, 1) {
		t.Errorf("Cross: got %v, want 1", got)
	}
	if got := Pt(0, 1).Cross(Pt(1, 0)); !nearEqual(got, -1) {
		t.Errorf("Cross reversed: got %v, want -1", got)
	}
}

func TestPointLength(t *testing.T) {
	if got := Pt(3, 4).Length(); !nearEqual(got, 5) {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := Pt(3, 4).LengthSquared(); !nearEqual(got, 25) {
		t.Errorf("LengthSquared: got %v, want 25", got)
	}
}

func TestPointSignAbsPow(t *testing.T) {
	if got := Pt(-3, 0.5).Sign(); got != Pt(-1, 1) {
		t.Errorf("Sign: got %v, want (-1, 1)", got)
	}
	if got := Pt(0, -0.0).Sign(); got != Pt(0, 0) {
		t.Errorf("Sign zero: got %v, want (0, 0)", got)
	}
	if got := Pt(-3, 4).Abs(); got != Pt(3, 4) {
		t.Errorf("Abs: got %v, want (3, 4)", got)
	}
	if got := Pt(8, 27).Pow(Pt(1.0/3.0, 1.0/3.0)); !pointsNearEqual(got, Pt(2, 3)) {
		t.Errorf("Pow: got %v, want (2, 3)", got)
	}
}

func TestPointNormalize(t *testing.T) {
	got := Pt(3, 4).Normalize()
	if !pointsNearEqual(got, Pt(0.6, 0.8)) {
		t.Errorf("got %v, want (0.6, 0.8)", got)
	}
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Errorf("zero vector: got %v, want (0, 0)", got)
	}
}

func TestPointOrthonormal(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		polarity bool
		want     Point
	}{
		{"CCW", Pt(1, 0), true, Pt(0, 1)},
		{"CW", Pt(1, 0), false, Pt(0, -1)},
		{"ZeroCCW", Pt(0, 0), true, Pt(0, 1)},
		{"ZeroCW", Pt(0, 0), false, Pt(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Orthonormal(tt.polarity)
			if !pointsNearEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.p != (Point{}) && !nearEqual(got.Dot(tt.p), 0) {
				t.Errorf("result %v is not perpendicular to %v", got, tt.p)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("below: got %v, want 0", got)
	}
	if got := clamp(1.5, 0, 1); got != 1 {
		t.Errorf("above: got %v, want 1", got)
	}
	if got := clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("inside: got %v, want 0.25", got)
	}
}
