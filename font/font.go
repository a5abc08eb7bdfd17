package font

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"

	"github.com/gogpu/sdf"
)

var (
	// ErrGlyphNotFound is returned when the face has no glyph for a rune.
	ErrGlyphNotFound = errors.New("font: glyph not found")

	// ErrEmptyOutline is returned for glyphs without a drawable outline,
	// such as the space character.
	ErrEmptyOutline = errors.New("font: glyph outline is empty")
)

// Options controls font parsing behavior.
type Options struct {
	// CollectionIndex is the index of the face to use when the data is a
	// font collection (.ttc). Ignored for single-face fonts, which always
	// load face 0.
	CollectionIndex int
}

// DefaultOptions returns the default parsing options.
func DefaultOptions() Options {
	return Options{CollectionIndex: 0}
}

// LineMetrics carries the metrics associated with line positioning,
// scaled to a requested pixel size.
type LineMetrics struct {
	// Ascent is the highest point any glyph extends to above the
	// baseline. Typically positive.
	Ascent float32

	// Descent is the lowest point any glyph extends to below the
	// baseline. Typically negative.
	Descent float32

	// LineGap is the gap to leave between the descent of one line and
	// the ascent of the next.
	LineGap float32

	// NewLineSize is ascent - descent + line gap, the vertical advance
	// between consecutive baselines.
	NewLineSize float32
}

func (m LineMetrics) scale(scale float32) LineMetrics {
	return LineMetrics{
		Ascent:      m.Ascent * scale,
		Descent:     m.Descent * scale,
		LineGap:     m.LineGap * scale,
		NewLineSize: m.NewLineSize * scale,
	}
}

// Metrics describes a glyph scaled to a requested pixel size.
type Metrics struct {
	// Width of the glyph bitmap in whole pixels.
	Width int

	// Height of the glyph bitmap in whole pixels.
	Height int

	// AdvanceWidth of the glyph in subpixels.
	AdvanceWidth float32

	// Bounds contains the glyph's outline at the offsets specified by
	// the font.
	Bounds Bounds
}

// glyph is a converted outline, cached per rune. Segments are normalized
// to the unit square with y pointing down.
type glyph struct {
	bounds       Bounds
	advanceWidth float32
	segments     []sdf.Segment
}

// Font is a parsed font face. Glyph outlines are converted lazily on
// first use and cached; all methods are safe for concurrent use.
type Font struct {
	face       *gotext.Face
	name       string
	unitsPerEm float32
	hmetrics   LineMetrics

	mu     sync.RWMutex
	glyphs map[rune]*glyph
}

// Parse loads a font from raw TTF/OTF/TTC bytes.
func Parse(data []byte, opts Options) (*Font, error) {
	faces, err := gotext.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: parsing face: %w", err)
	}
	if opts.CollectionIndex < 0 || opts.CollectionIndex >= len(faces) {
		return nil, fmt.Errorf("font: collection index %d out of range (%d faces)",
			opts.CollectionIndex, len(faces))
	}
	face := faces[opts.CollectionIndex]

	f := &Font{
		face:       face,
		name:       face.Describe().Family,
		unitsPerEm: float32(face.Upem()),
		glyphs:     make(map[rune]*glyph),
	}
	if ext, ok := face.FontHExtents(); ok {
		f.hmetrics = LineMetrics{
			Ascent:      ext.Ascender,
			Descent:     ext.Descender,
			LineGap:     ext.LineGap,
			NewLineSize: ext.Ascender - ext.Descender + ext.LineGap,
		}
	}

	sdf.Logger().Info("font: parsed face",
		"name", f.name, "unitsPerEm", f.unitsPerEm)
	return f, nil
}

// Name returns the family name of the font, or "" if the face does not
// carry one.
func (f *Font) Name() string {
	return f.name
}

// UnitsPerEm returns the units-per-em value of the face.
func (f *Font) UnitsPerEm() float32 {
	return f.unitsPerEm
}

// Metrics returns the metrics of rune r scaled to a font size of px
// pixels per em. Returns ErrGlyphNotFound if the face has no glyph for r.
func (f *Font) Metrics(r rune, px float32) (Metrics, error) {
	g, err := f.lookup(r)
	if err != nil {
		return Metrics{}, err
	}
	return f.glyphMetrics(g, px), nil
}

// HorizontalLineMetrics returns the face's line metrics scaled to a font
// size of px pixels per em. For horizontally laid out fonts; the zero
// value if the face does not provide them.
func (f *Font) HorizontalLineMetrics(px float32) LineMetrics {
	return f.hmetrics.scale(f.scaleFactor(px))
}

// CharHeightToFontSize returns the font size in px at which rune r
// renders with a height of height pixels. Useful when packing glyph SDFs
// into an atlas: sizing every glyph by its own height gives uniform
// rendering quality regardless of the glyph's natural proportions.
func (f *Font) CharHeightToFontSize(r rune, height float32) (float32, error) {
	g, err := f.lookup(r)
	if err != nil {
		return 0, err
	}
	if g.bounds.Height == 0 {
		return 0, ErrEmptyOutline
	}
	return height / g.bounds.Height * f.unitsPerEm, nil
}

// GenerateSDF rasterizes the signed distance field for rune r.
//
// Parameters:
//   - r: the character to render.
//   - px: font size, in pixels per em. Determines the output size.
//   - padding: margin in pixels around the glyph, see [sdf.Generate].
//     Should be > 0.
//   - spread: gradient steepness, see [sdf.Generate].
//
// Returns ErrGlyphNotFound if the face has no glyph for r, and
// ErrEmptyOutline for glyphs with no drawable outline.
//
// GenerateSDF panics if px is smaller than 1.
func (f *Font) GenerateSDF(r rune, px float32, padding int, spread float32) (Metrics, *sdf.Raster, error) {
	if px < 1 {
		panic(fmt.Sprintf("font: sdf render size cannot be smaller than 1.0 (got %v)", px))
	}

	g, err := f.lookup(r)
	if err != nil {
		return Metrics{}, nil, err
	}

	metrics := f.glyphMetrics(g, px)
	if metrics.Width <= 0 || metrics.Height <= 0 {
		return Metrics{}, nil, ErrEmptyOutline
	}

	raster := sdf.Generate(metrics.Width, metrics.Height, padding, spread, g.segments)
	return metrics, raster, nil
}

func (f *Font) glyphMetrics(g *glyph, px float32) Metrics {
	scale := f.scaleFactor(px)
	bounds := g.bounds.Scale(scale)
	return Metrics{
		Width:        int(bounds.Width),
		Height:       int(bounds.Height),
		AdvanceWidth: g.advanceWidth * scale,
		Bounds:       bounds,
	}
}

// scaleFactor converts a pixels-per-em size to a font unit multiplier.
func (f *Font) scaleFactor(px float32) float32 {
	return px / f.unitsPerEm
}

// lookup returns the cached glyph for r, converting it on first use.
// Misses are cached too, so repeated lookups of absent runes stay cheap.
func (f *Font) lookup(r rune) (*glyph, error) {
	f.mu.RLock()
	g, ok := f.glyphs[r]
	f.mu.RUnlock()
	if ok {
		if g == nil {
			return nil, ErrGlyphNotFound
		}
		return g, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.glyphs[r]; ok {
		if g == nil {
			return nil, ErrGlyphNotFound
		}
		return g, nil
	}

	g = f.convertGlyph(r)
	f.glyphs[r] = g
	if g == nil {
		return nil, ErrGlyphNotFound
	}
	return g, nil
}

// convertGlyph extracts and normalizes the outline for r, or returns nil
// when the face has no usable outline glyph for it.
func (f *Font) convertGlyph(r rune) *glyph {
	gid, ok := f.face.Cmap.Lookup(r)
	if !ok {
		return nil
	}
	outline, ok := f.face.GlyphData(gid).(gotext.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph; nothing to build segments from.
		return nil
	}

	builder := newOutlineBuilder()
	builder.build(outline)
	segments, bounds := builder.finalize()

	sdf.Logger().Debug("font: converted glyph",
		"rune", string(r), "segments", len(segments))

	return &glyph{
		bounds:       bounds,
		advanceWidth: f.face.HorizontalAdvance(gid),
		segments:     segments,
	}
}
