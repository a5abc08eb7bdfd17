package sdf

import "testing"

func TestGenerateTriangle(t *testing.T) {
	raster := Generate(32, 32, 2, 5.0, triangleSegments())

	if raster.Width != 32 || raster.Height != 32 {
		t.Fatalf("size = %dx%d, want 32x32", raster.Width, raster.Height)
	}
	if len(raster.Buffer) != 32*32 {
		t.Fatalf("buffer length = %d, want %d", len(raster.Buffer), 32*32)
	}

	// The centroid lands well inside, the corners well outside.
	centroid := raster.Buffer[16+32*21]
	if centroid <= 0.5 {
		t.Errorf("centroid value = %v, want > 0.5", centroid)
	}
	for _, idx := range []int{0, 31, 32 * 31} {
		if v := raster.Buffer[idx]; v >= 0.5 {
			t.Errorf("corner value at index %d = %v, want < 0.5", idx, v)
		}
	}

	for i, v := range raster.Buffer {
		if v < 0 || v > 1 {
			t.Fatalf("buffer[%d] = %v out of [0, 1]", i, v)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	// Rows are split across workers; the split must not change the output.
	a := Generate(32, 32, 2, 5.0, triangleSegments())
	b := Generate(32, 32, 2, 5.0, triangleSegments())
	for i := range a.Buffer {
		if a.Buffer[i] != b.Buffer[i] {
			t.Fatalf("buffer[%d] differs between runs: %v vs %v", i, a.Buffer[i], b.Buffer[i])
		}
	}
}

func TestGenerateDoesNotMutateSegments(t *testing.T) {
	segments := triangleSegments()
	original := make([]Segment, len(segments))
	copy(original, segments)

	Generate(16, 16, 2, 5.0, segments)

	for i := range segments {
		if segments[i] != original[i] {
			t.Errorf("segment %d mutated: %v -> %v", i, original[i], segments[i])
		}
	}
}

func TestGenerateStretched(t *testing.T) {
	// Non-square output: the unit square maps onto the full 64x32 raster.
	raster := Generate(64, 32, 0, 8.0, boxSegments(0.1, 0.1, 0.9, 0.9))

	if v := raster.Buffer[32+64*16]; v <= 0.5 {
		t.Errorf("center value = %v, want > 0.5", v)
	}
	if v := raster.Buffer[0]; v >= 0.5 {
		t.Errorf("corner value = %v, want < 0.5", v)
	}
}

func TestGeneratePaddingPullsEdgesInward(t *testing.T) {
	// A box touching the unit square boundary clips its gradient without
	// padding; with padding the border pixels clearly read as outside.
	segments := boxSegments(0, 0, 1, 1)
	raster := Generate(16, 16, 3, 8.0, segments)

	if v := raster.Buffer[0]; v >= 0.5 {
		t.Errorf("padded corner value = %v, want < 0.5", v)
	}
	if v := raster.Buffer[8+16*8]; v <= 0.5 {
		t.Errorf("center value = %v, want > 0.5", v)
	}
}

func TestGenerateHoleIsOutside(t *testing.T) {
	segments := append(boxSegments(0.1, 0.1, 0.9, 0.9), boxSegments(0.4, 0.4, 0.6, 0.6)...)
	raster := Generate(32, 32, 0, 8.0, segments)

	if v := raster.Buffer[16+32*16]; v >= 0.5 {
		t.Errorf("hole center value = %v, want < 0.5", v)
	}
	if v := raster.Buffer[8+32*16]; v <= 0.5 {
		t.Errorf("ring value = %v, want > 0.5", v)
	}
}

func TestToBitmapTruncates(t *testing.T) {
	raster := &Raster{
		Width:  4,
		Height: 1,
		Buffer: []float32{0, 0.5, 0.999, 1},
	}
	bitmap := raster.ToBitmap()

	want := []byte{0, 127, 254, 255}
	for i, w := range want {
		if bitmap.Data[i] != w {
			t.Errorf("Data[%d] = %d, want %d", i, bitmap.Data[i], w)
		}
	}
	if bitmap.Width != 4 || bitmap.Height != 1 {
		t.Errorf("size = %dx%d, want 4x1", bitmap.Width, bitmap.Height)
	}
}

func TestSamplePixelCenters(t *testing.T) {
	raster := &Raster{
		Width:  2,
		Height: 2,
		Buffer: []float32{0.1, 0.2, 0.3, 0.4},
	}

	// Sampling exactly at a pixel center returns the stored value.
	tests := []struct {
		x, y float32
		want float32
	}{
		{0.25, 0.25, 0.1},
		{0.75, 0.25, 0.2},
		{0.25, 0.75, 0.3},
		{0.75, 0.75, 0.4},
	}
	for _, tt := range tests {
		if got := raster.Sample(tt.x, tt.y); !nearEqual(got, tt.want) {
			t.Errorf("Sample(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	// Halfway between centers the sample is the average.
	if got := raster.Sample(0.5, 0.25); !nearEqual(got, 0.15) {
		t.Errorf("Sample(0.5, 0.25) = %v, want 0.15", got)
	}
	if got := raster.Sample(0.25, 0.5); !nearEqual(got, 0.2) {
		t.Errorf("Sample(0.25, 0.5) = %v, want 0.2", got)
	}
}

func TestSampleClampsToEdges(t *testing.T) {
	raster := &Raster{
		Width:  2,
		Height: 2,
		Buffer: []float32{0.1, 0.2, 0.3, 0.4},
	}

	if got := raster.Sample(0, 0); !nearEqual(got, 0.1) {
		t.Errorf("Sample(0, 0) = %v, want 0.1", got)
	}
	if got := raster.Sample(1, 1); !nearEqual(got, 0.4) {
		t.Errorf("Sample(1, 1) = %v, want 0.4", got)
	}
}
