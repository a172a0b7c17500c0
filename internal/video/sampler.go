package video

import (
	"context"
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettegen/internal/colour"
)

// Timestamps returns the seek offsets for sampling a video of the given duration.
// Frame i is taken at i/n*duration where n = floor(duration*rate).
func Timestamps(duration float64, rate FrameRate) []float64 {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) || rate <= 0 {
		return nil
	}

	n := int(math.Floor(duration * float64(rate)))
	times := make([]float64, n)
	for i := range n {
		times[i] = float64(i) / float64(n) * duration
	}
	return times
}

// Sampler extracts one dominant colour per sampled frame.
type Sampler struct {
	stride int
	logger hclog.Logger
}

// NewSampler creates a Sampler. A zero stride uses colour.DefaultStride and a nil
// logger discards output.
func NewSampler(stride int, logger hclog.Logger) *Sampler {
	if stride == 0 {
		stride = colour.DefaultStride
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Sampler{stride: stride, logger: logger}
}

// Run samples src at rate frames per second. Frames are decoded strictly in
// order. Cancellation is checked between frames; a cancelled run returns the
// context error and no palette.
func (s *Sampler) Run(ctx context.Context, src FrameSource, rate FrameRate) (*colour.Palette, error) {
	duration, err := src.Duration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read video duration: %w", err)
	}

	times := Timestamps(duration, rate)
	s.logger.Debug("sampling video", "duration", duration, "rate", int(rate), "frames", len(times))

	records := make([]colour.ColorRecord, 0, len(times))
	for i, t := range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, err := src.FrameAt(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}

		record, err := colour.DominantColor(colour.PixelBuffer(frame), s.stride)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		records = append(records, record.WithFrame(i+1))
		s.logger.Trace("sampled frame", "frame", i+1, "time", t, "colour", record.Hex())
	}

	return colour.NewPalette(records), nil
}
