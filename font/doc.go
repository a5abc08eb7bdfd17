// Package font extracts glyph outlines from TrueType and OpenType fonts
// and rasterizes them as signed distance fields.
//
// A [Font] is parsed once from raw font bytes and can then generate an SDF
// for any character the face covers:
//
//	f, err := font.Parse(ttfData, font.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	metrics, raster, err := f.GenerateSDF('a', 64, 2, 8.0)
//
// Glyph outlines arrive from the font in y-up font units. The package
// normalizes each glyph to the unit square and flips the vertical axis so
// the segments match the raster convention of the parent sdf package.
// Converted glyphs are cached per rune; a Font is safe for concurrent use.
package font
