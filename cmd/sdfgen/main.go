// Command sdfgen rasterizes a font glyph as a signed distance field and
// writes it, plus an optional upscaled preview, as grayscale PNG files.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sdf"
	"github.com/gogpu/sdf/font"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a .ttf/.otf/.ttc font file (required)")
		char     = flag.String("char", "a", "character to rasterize")
		size     = flag.Float64("size", 64, "font size in pixels per em")
		padding  = flag.Int("padding", 2, "padding in pixels around the glyph")
		spread   = flag.Float64("spread", 8, "distance field gradient steepness")
		output   = flag.String("output", "glyph.png", "output file for the raw field")
		preview  = flag.String("preview", "", "optional output file for an upscaled preview render")
		scale    = flag.Float64("scale", 8, "preview upscale factor")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	runes := []rune(*char)
	if len(runes) != 1 {
		log.Fatalf("-char must be a single character, got %q", *char)
	}

	if *verbose {
		sdf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("Failed to read font: %v", err)
	}
	f, err := font.Parse(data, font.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}

	metrics, raster, err := f.GenerateSDF(runes[0], float32(*size), *padding, float32(*spread))
	if err != nil {
		log.Fatalf("Failed to generate SDF: %v", err)
	}

	if err := writePNG(*output, raster); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %s (%dx%d, advance %.1fpx)",
		*output, metrics.Width, metrics.Height, metrics.AdvanceWidth)

	if *preview != "" {
		img := sdf.RenderImage(raster, float32(*scale), 0.5, 0.02)
		out, err := os.Create(*preview)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *preview, err)
		}
		defer out.Close()
		if err := png.Encode(out, img); err != nil {
			log.Fatalf("Failed to write %s: %v", *preview, err)
		}
		b := img.Bounds()
		log.Printf("Wrote %s (%dx%d preview)", *preview, b.Dx(), b.Dy())
	}
}

func writePNG(path string, raster *sdf.Raster) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return sdf.EncodePNG(out, raster)
}
