package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller violates an input precondition.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultStride is the sampling stride in bytes (every 8th RGBA pixel).
	DefaultStride = 32

	// OpacityThreshold is the alpha value a pixel must exceed to be sampled.
	OpacityThreshold = 128
)

// Pixel is an opaque sample point in RGB space.
type Pixel struct {
	R, G, B uint8
}

// SamplePixels reduces an interleaved RGBA buffer to its opaque sample points.
// Every pixel starting at a byte offset divisible by stride is considered, and it
// is kept only if its alpha is strictly greater than OpacityThreshold.
// An empty result is valid and means the buffer had no opaque samples.
func SamplePixels(pix []byte, stride int) ([]Pixel, error) {
	if len(pix)%4 != 0 {
		return nil, fmt.Errorf("%w: buffer length %d is not a multiple of 4", ErrInvalidArgument, len(pix))
	}
	if stride <= 0 || stride%4 != 0 {
		return nil, fmt.Errorf("%w: stride must be a positive multiple of 4, got %d", ErrInvalidArgument, stride)
	}

	samples := make([]Pixel, 0, len(pix)/stride+1)
	for i := 0; i < len(pix); i += stride {
		if pix[i+3] > OpacityThreshold {
			samples = append(samples, Pixel{R: pix[i], G: pix[i+1], B: pix[i+2]})
		}
	}
	return samples, nil
}
