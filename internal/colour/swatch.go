package colour

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

const (
	// SwatchBands is the maximum number of colour bands drawn in a swatch.
	SwatchBands = 5

	// SwatchBandSize is the width and height of a single band.
	SwatchBandSize = 100
)

// Swatch renders up to the first SwatchBands records as equal-width vertical
// bands on a 500x100 canvas. Unused bands stay fully transparent.
func Swatch(p *Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SwatchBands*SwatchBandSize, SwatchBandSize))

	for i, rgb := range p.ToRGBSlice() {
		if i >= SwatchBands {
			break
		}
		c := color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
		x0 := i * SwatchBandSize
		for y := range SwatchBandSize {
			for x := x0; x < x0+SwatchBandSize; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	return img
}

// EncodeSwatch writes the palette swatch as a PNG.
func EncodeSwatch(w io.Writer, p *Palette) error {
	if err := png.Encode(w, Swatch(p)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}
