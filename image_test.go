package sdf

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRasterImage(t *testing.T) {
	raster := Generate(16, 16, 2, 5.0, triangleSegments())
	img := raster.Image()

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Fatalf("bounds = %v, want 16x16", bounds)
	}

	// The image carries exactly the quantized bitmap bytes.
	bitmap := raster.ToBitmap()
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got, want := img.GrayAt(x, y).Y, bitmap.Data[x+16*y]; got != want {
				t.Fatalf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBitmapImage(t *testing.T) {
	bitmap := &Bitmap{
		Width:  2,
		Height: 2,
		Data:   []byte{10, 20, 30, 40},
	}
	img := bitmap.Image()
	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, p := range want {
		if got := img.GrayAt(p[0], p[1]).Y; got != bitmap.Data[i] {
			t.Errorf("pixel %v = %d, want %d", p, got, bitmap.Data[i])
		}
	}
}

func TestEncodePNG(t *testing.T) {
	raster := Generate(16, 16, 2, 5.0, triangleSegments())

	var buf bytes.Buffer
	if err := EncodePNG(&buf, raster); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decoding written png: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 16x16", bounds)
	}
}

func TestRenderImage(t *testing.T) {
	raster := Generate(16, 16, 2, 5.0, triangleSegments())
	img := RenderImage(raster, 4, 0.5, 0)

	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", bounds)
	}

	// With zero smoothing every pixel is fully on or fully off.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if v := img.GrayAt(x, y).Y; v != 0 && v != 255 {
				t.Fatalf("pixel (%d, %d) = %d, want 0 or 255", x, y, v)
			}
		}
	}

	// Interior filled, exterior empty.
	if v := img.GrayAt(32, 42).Y; v != 255 {
		t.Errorf("interior pixel = %d, want 255", v)
	}
	if v := img.GrayAt(2, 2).Y; v != 0 {
		t.Errorf("exterior pixel = %d, want 0", v)
	}
}

func TestRenderImageDownscale(t *testing.T) {
	raster := Generate(16, 16, 2, 5.0, triangleSegments())
	img := RenderImage(raster, 0.5, 0.5, 0.02)
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", bounds)
	}
}

func TestRenderImagePanicsOnEmptyOutput(t *testing.T) {
	raster := &Raster{Width: 4, Height: 4, Buffer: make([]float32, 16)}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-sized render output")
		}
	}()
	RenderImage(raster, 0.1, 0.5, 0)
}
