// Package sdf generates signed distance fields from 2D vector outlines.
//
// # Overview
//
// sdf is a pure Go signed distance field rasterizer designed to integrate
// with the GoGPU ecosystem. It converts a closed vector outline, a list of
// straight and Bezier [Segment] values, into a small float texture in which
// every pixel stores its distance to the nearest edge, signed by
// interior/exterior membership. A GPU shader (or [RenderImage]) can later
// reconstruct crisp, resolution-independent edges from that texture at any
// scale, which is the standard technique for scalable glyph rendering.
//
// # Quick Start
//
//	import "github.com/gogpu/sdf"
//
//	// A triangle in the unit square.
//	segments := []sdf.Segment{
//	    sdf.NewLine(sdf.Pt(0.5, 0), sdf.Pt(1, 1)),
//	    sdf.NewLine(sdf.Pt(1, 1), sdf.Pt(0, 1)),
//	    sdf.NewLine(sdf.Pt(0, 1), sdf.Pt(0.5, 0)),
//	}
//
//	raster := sdf.Generate(32, 32, 2, 5.0, segments)
//	bitmap := raster.ToBitmap() // single-byte grayscale, GPU upload ready
//
// # Coordinate System
//
// Segment coordinates are normalized: the drawable area is the unit square
// with the origin at the top-left, x increasing right and y increasing down.
// Use [Segment.Normalize] and [Segment.FlipY] to bring outlines expressed in
// other conventions into this space. The font subpackage does this for glyph
// outlines automatically.
//
// # Interior Test
//
// Inside/outside classification uses the even-odd rule (scanline parity),
// so winding direction of the contours is irrelevant. Contours must be
// closed; the rasterizer does not verify or repair them.
//
// # Precision
//
// All geometry is float32. The output buffer stores values in [0, 1] with
// 0.5 exactly on an edge, values above 0.5 inside and below 0.5 outside.
package sdf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
