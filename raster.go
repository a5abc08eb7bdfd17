package sdf

import (
	"sync"

	"github.com/chewxy/math32"
)

// Raster is the generated signed distance field. Each cell stores a value
// in [0, 1]: 0.5 lies exactly on an edge, values above trend toward the
// interior, values below toward the exterior.
type Raster struct {
	// Width of the buffer in pixels.
	Width int

	// Height of the buffer in pixels.
	Height int

	// Buffer is the row-major field data, addressed as Buffer[x + Width*y].
	Buffer []float32
}

// Bitmap is a Raster quantized to one byte per cell, usually what gets
// uploaded to a GPU texture. Values range from 0 (outside) to 255 (inside)
// with 127 directly on an edge.
type Bitmap struct {
	// Width of the buffer in pixels.
	Width int

	// Height of the buffer in pixels.
	Height int

	// Data is the row-major byte data, addressed as Data[x + Width*y].
	Data []byte
}

// generateWorkers is the number of goroutines the distance passes fan out
// to. Rows are independent, so the split needs no synchronization beyond
// the final join.
const generateWorkers = 4

// Generate rasterizes the signed distance field of the shape described by
// segments into a width x height buffer.
//
// Parameters:
//   - width, height: output raster size in pixels. Must be positive;
//     this precondition is not runtime-checked.
//   - padding: margin in pixels reserved inside the fixed-size buffer.
//     Shapes with edges at the unit square boundary need padding > 0,
//     otherwise the distance gradient at those edges is clipped.
//   - spread: gradient steepness; a higher value means a narrower gradient.
//     8.0 is a good default for small rasters.
//   - segments: the closed outline, normalized to the unit square. Read
//     only; never mutated.
//
// The raster is computed in two passes per row: the minimum unsigned
// distance over all segments, stored as clamp(1 - d*spread - 0.5, 0, 1),
// then an even-odd scanline pass that flips interior pixels to 1 - value.
func Generate(width, height, padding int, spread float32, segments []Segment) *Raster {
	if padding != 0 {
		// Shrink the drawing area inside the fixed-size buffer so the
		// gradient has room around shapes touching the unit square edge.
		padX := float32(padding) / float32(width)
		padY := float32(padding) / float32(height)
		padded := make([]Segment, len(segments))
		for i, s := range segments {
			padded[i] = s.NormalizeOffset(-padX, -padY, 1+padX*2, 1+padY*2)
		}
		segments = padded
	}

	Logger().Debug("sdf: generating raster",
		"width", width, "height", height,
		"padding", padding, "spread", spread,
		"segments", len(segments))

	raster := &Raster{
		Width:  width,
		Height: height,
		Buffer: make([]float32, width*height),
	}

	var wg sync.WaitGroup
	rowsPerWorker := (height + generateWorkers - 1) / generateWorkers
	for w := 0; w < generateWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, height)
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			generateRows(raster, segments, spread, start, end)
		}(startRow, endRow)
	}
	wg.Wait()

	return raster
}

// generateRows fills the raster rows [startRow, endRow). Each row gets the
// unsigned distance pass followed by its own scanline sign correction, so
// rows never touch shared state.
func generateRows(raster *Raster, segments []Segment, spread float32, startRow, endRow int) {
	invW := 1 / float32(raster.Width)
	invH := 1 / float32(raster.Height)

	for y := startRow; y < endRow; y++ {
		py := (float32(y) + 0.5) * invH

		for x := 0; x < raster.Width; x++ {
			px := (float32(x) + 0.5) * invW

			minDistance := float32(math32.MaxFloat32)
			for _, s := range segments {
				if d := s.Distance(Pt(px, py)); d < minDistance {
					minDistance = d
				}
			}

			// Center the falloff at zero distance and bound it.
			raster.Buffer[x+raster.Width*y] = clamp(1-minDistance*spread-0.5, 0, 1)
		}

		scanline := NewScanline(py, segments)
		for x := 0; x < raster.Width; x++ {
			px := (float32(x) + 0.5) * invW
			if scanline.Scan(px) {
				index := x + raster.Width*y
				raster.Buffer[index] = 1 - raster.Buffer[index]
			}
		}
	}
}

// ToBitmap quantizes the raster to one byte per cell. The conversion
// truncates (floor of value*255) rather than rounding; consumers relying
// on bit-exact output depend on this.
func (r *Raster) ToBitmap() *Bitmap {
	b := &Bitmap{
		Width:  r.Width,
		Height: r.Height,
		Data:   make([]byte, r.Width*r.Height),
	}
	for i, v := range r.Buffer {
		b.Data[i] = byte(v * 255)
	}
	return b
}

// Sample bilinearly filters the field at the normalized coordinates
// (x, y), both in [0, 1]. Texel indices are clamped to the raster edges,
// so the result always stays within the range of the stored cells.
func (r *Raster) Sample(x, y float32) float32 {
	gx := math32.Max(x*float32(r.Width)-0.5, 0)
	gy := math32.Max(y*float32(r.Height)-0.5, 0)
	left := int(math32.Floor(gx))
	top := int(math32.Floor(gy))
	wx := gx - float32(left)
	wy := gy - float32(top)

	right := min(left+1, r.Width-1)
	bottom := min(top+1, r.Height-1)

	p00 := r.Buffer[r.Width*top+left]
	p10 := r.Buffer[r.Width*top+right]
	p01 := r.Buffer[r.Width*bottom+left]
	p11 := r.Buffer[r.Width*bottom+right]

	return mix(mix(p00, p10, wx), mix(p01, p11, wx), wy)
}
