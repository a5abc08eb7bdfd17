package sdf

import "slices"

// Scanline holds the x-coordinates where a segment set crosses one fixed
// horizontal row, sorted ascending. It is rebuilt per raster row and feeds
// the even-odd interior test.
type Scanline struct {
	intersections []float32
}

// NewScanline collects every intersection of the segment set with the
// horizontal line at normalized height y.
func NewScanline(y float32, segments []Segment) *Scanline {
	sl := &Scanline{intersections: make([]float32, 0, 16)}
	var x [3]float32

	for _, s := range segments {
		count := s.Intersections(y, &x)
		sl.intersections = append(sl.intersections, x[:count]...)
	}

	if len(sl.intersections) > 0 {
		// NaN intersections are unreachable for finite closed contours;
		// slices.Sort orders any that do appear first.
		slices.Sort(sl.intersections)
	}

	return sl
}

// Scan reports whether the point at x lies inside the shape, using the
// even-odd rule: cast a ray toward +inf and count boundary crossings.
// An odd count means inside.
func (sl *Scanline) Scan(x float32) bool {
	count := 0
	for _, inter := range sl.intersections {
		if x < inter {
			count++
		}
	}
	return count%2 == 1
}
