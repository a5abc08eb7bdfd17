package sdf

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Image converts the raster to a single-channel grayscale image using the
// same truncating quantization as [Raster.ToBitmap]. Lossless formats such
// as PNG are strongly recommended when encoding the result.
func (r *Raster) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+r.Width]
		for x := 0; x < r.Width; x++ {
			row[x] = byte(r.Buffer[x+r.Width*y] * 255)
		}
	}
	return img
}

// Image converts the bitmap to a single-channel grayscale image sharing the
// same layout.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+b.Width], b.Data[y*b.Width:(y+1)*b.Width])
	}
	return img
}

// EncodePNG writes the raster to w as a grayscale PNG.
func EncodePNG(w io.Writer, r *Raster) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("sdf: encoding png: %w", err)
	}
	return nil
}

// RenderImage reconstructs a scaled grayscale image from the distance
// field, the way a shader consuming the texture would. Each output pixel
// samples the field bilinearly and maps the sampled distance through a
// smoothstep threshold.
//
// Parameters:
//   - scale: output size relative to the raster; a 16x16 raster rendered
//     at scale 4 produces a 64x64 image. Downscaling is supported.
//   - midValue: the distance at which a pixel flips from empty to filled.
//     You usually want ~0.5.
//   - smoothing: edge smoothing width, think of it as cheap anti-aliasing.
//     Disabled at 0.0; sensible values stay below 0.05.
//
// RenderImage panics if scale produces an image with a zero dimension.
func RenderImage(r *Raster, scale, midValue, smoothing float32) *image.Gray {
	width := int(float32(r.Width) * scale)
	height := int(float32(r.Height) * scale)
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sdf: scale %v yields impossible render size %dx%d", scale, width, height))
	}

	widthF := float32(width)
	heightF := float32(height)

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := (float32(y) + 0.5) / heightF
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x := 0; x < width; x++ {
			sx := (float32(x) + 0.5) / widthF

			distance := r.Sample(sx, sy)
			if distance > midValue {
				row[x] = byte(smoothstep(midValue-smoothing, midValue+smoothing, distance) * 255)
			} else {
				row[x] = 0
			}
		}
	}
	return img
}

// smoothstep performs Hermite interpolation between edge0 and edge1,
// GLSL-style.
func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
