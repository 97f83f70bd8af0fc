// Package sampler reads pixel samples from decoded images for palette generation.
package sampler

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Options controls how pixels are sampled from an image.
type Options struct {
	// MaxDimension bounds the longest side of the image before sampling.
	// Larger images are downscaled, preserving the aspect ratio.
	MaxDimension int

	// Step reads every Step-th pixel along both axes.
	Step int

	// AlphaThreshold drops pixels whose alpha is at or below the threshold.
	AlphaThreshold uint8
}

// DefaultOptions returns the default sampling options.
func DefaultOptions() Options {
	return Options{
		MaxDimension:   400,
		Step:           2,
		AlphaThreshold: 10,
	}
}

// Validate validates the sampling options.
func (o Options) Validate() error {
	if o.MaxDimension < 1 {
		return fmt.Errorf("max dimension must be at least 1, got %d", o.MaxDimension)
	}
	if o.Step < 1 {
		return fmt.Errorf("sample step must be at least 1, got %d", o.Step)
	}
	return nil
}

// Sample downscales img to fit opts.MaxDimension and returns every
// opts.Step-th pixel in row-major order, skipping near-transparent pixels.
func Sample(img image.Image, opts Options) ([]colour.RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	scaled := downscale(img, opts.MaxDimension)
	bounds := scaled.Bounds()

	pixels := make([]colour.RGB, 0, (bounds.Dx()/opts.Step+1)*(bounds.Dy()/opts.Step+1))
	for y := 0; y < bounds.Dy(); y += opts.Step {
		row := y * scaled.Stride
		for x := 0; x < bounds.Dx(); x += opts.Step {
			i := row + x*4
			if scaled.Pix[i+3] <= opts.AlphaThreshold {
				continue
			}
			pixels = append(pixels, colour.RGB{R: scaled.Pix[i], G: scaled.Pix[i+1], B: scaled.Pix[i+2]})
		}
	}
	return pixels, nil
}

// SampleAll samples every image and concatenates the results in order.
func SampleAll(images []image.Image, opts Options) ([]colour.RGB, error) {
	var pixels []colour.RGB
	for i, img := range images {
		sampled, err := Sample(img, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to sample image %d: %w", i+1, err)
		}
		pixels = append(pixels, sampled...)
	}
	return pixels, nil
}

// downscale returns a non-premultiplied copy of img whose longest side is at
// most maxDimension. The copy is rebased to the origin.
func downscale(img image.Image, maxDimension int) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	scale := math.Min(1, float64(maxDimension)/float64(max(width, height, 1)))
	targetWidth := max(1, int(math.Round(float64(width)*scale)))
	targetHeight := max(1, int(math.Round(float64(height)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	if width == 0 || height == 0 {
		return dst
	}
	if scale == 1 {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
