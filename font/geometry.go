package font

import (
	"math"

	"github.com/chewxy/math32"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/sdf"
)

// Bounds is the bounding box of a glyph outline in subpixels. The origin
// convention follows the font: ymin is the bottom-most edge relative to
// the baseline.
type Bounds struct {
	// XMin is the offset of the left-most edge of the outline.
	XMin float32

	// YMin is the offset of the bottom-most edge of the outline.
	YMin float32

	// Width of the outline.
	Width float32

	// Height of the outline.
	Height float32
}

// Scale returns the bounds scaled by the given factor.
func (b Bounds) Scale(scale float32) Bounds {
	return Bounds{
		XMin:   b.XMin * scale,
		YMin:   b.YMin * scale,
		Width:  b.Width * scale,
		Height: b.Height * scale,
	}
}

// outlineBuilder converts a glyph outline into sdf segments. The outline
// ops carry absolute coordinates with an implicit current point; contours
// are closed automatically, either at the next MoveTo or at the end.
type outlineBuilder struct {
	start    sdf.Point
	current  sdf.Point
	open     bool
	segments []sdf.Segment
}

func newOutlineBuilder() *outlineBuilder {
	return &outlineBuilder{segments: make([]sdf.Segment, 0, 32)}
}

func (ob *outlineBuilder) build(outline gotext.GlyphOutline) {
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			ob.moveTo(sdf.Pt(s.Args[0].X, s.Args[0].Y))
		case opentype.SegmentOpLineTo:
			ob.lineTo(sdf.Pt(s.Args[0].X, s.Args[0].Y))
		case opentype.SegmentOpQuadTo:
			ob.quadTo(sdf.Pt(s.Args[0].X, s.Args[0].Y), sdf.Pt(s.Args[1].X, s.Args[1].Y))
		case opentype.SegmentOpCubeTo:
			ob.cubeTo(
				sdf.Pt(s.Args[0].X, s.Args[0].Y),
				sdf.Pt(s.Args[1].X, s.Args[1].Y),
				sdf.Pt(s.Args[2].X, s.Args[2].Y),
			)
		}
	}
	ob.closeContour()
}

func (ob *outlineBuilder) moveTo(p sdf.Point) {
	ob.closeContour()
	ob.start = p
	ob.current = p
	ob.open = true
}

func (ob *outlineBuilder) lineTo(p sdf.Point) {
	ob.segments = append(ob.segments, sdf.NewLine(ob.current, p))
	ob.current = p
}

func (ob *outlineBuilder) quadTo(control, end sdf.Point) {
	ob.segments = append(ob.segments, sdf.NewQuad(ob.current, control, end))
	ob.current = end
}

func (ob *outlineBuilder) cubeTo(control1, control2, end sdf.Point) {
	ob.segments = append(ob.segments, sdf.NewCubic(ob.current, control1, control2, end))
	ob.current = end
}

// closeContour synthesizes the closing line when the contour did not end
// where it started. Equality is bitwise so that -0 and 0 endpoints do not
// produce a degenerate closing segment pair.
func (ob *outlineBuilder) closeContour() {
	if ob.open && !samePoint(ob.current, ob.start) {
		ob.segments = append(ob.segments, sdf.NewLine(ob.current, ob.start))
	}
	ob.open = false
	ob.current = ob.start
}

// finalize computes the outline bounds from the segment endpoints, then
// maps every segment into the unit square and flips the vertical axis
// from the font's y-up convention to the raster's y-down one.
func (ob *outlineBuilder) finalize() ([]sdf.Segment, Bounds) {
	xmin := math32.Inf(1)
	xmax := math32.Inf(-1)
	ymin := math32.Inf(1)
	ymax := math32.Inf(-1)

	// Control points are intentionally excluded, matching how glyph
	// bounds are reported in font metrics.
	for _, s := range ob.segments {
		for _, p := range [2]sdf.Point{s.Start(), s.End()} {
			xmin = math32.Min(xmin, p.X)
			xmax = math32.Max(xmax, p.X)
			ymin = math32.Min(ymin, p.Y)
			ymax = math32.Max(ymax, p.Y)
		}
	}

	if math32.IsInf(xmin, 1) || math32.IsInf(ymin, 1) {
		return ob.segments, Bounds{}
	}

	bounds := Bounds{
		XMin:   xmin,
		YMin:   ymin,
		Width:  xmax - xmin,
		Height: ymax - ymin,
	}
	for i, s := range ob.segments {
		ob.segments[i] = s.NormalizeOffset(bounds.XMin, bounds.YMin, bounds.Width, bounds.Height).FlipY()
	}
	return ob.segments, bounds
}

func samePoint(a, b sdf.Point) bool {
	return math.Float32bits(a.X) == math.Float32bits(b.X) &&
		math.Float32bits(a.Y) == math.Float32bits(b.Y)
}
