package video

import (
	"fmt"

	"github.com/spf13/cast"
)

// FrameRate is the number of frames sampled per second of video.
type FrameRate int

// Supported frame rates.
const (
	Rate1 FrameRate = 1
	Rate2 FrameRate = 2
	Rate5 FrameRate = 5

	DefaultFrameRate = Rate2
)

// ValidFrameRates returns the supported sampling rates.
func ValidFrameRates() []FrameRate {
	return []FrameRate{Rate1, Rate2, Rate5}
}

// ParseFrameRate parses a rate from a flag or environment value.
func ParseFrameRate(v any) (FrameRate, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %v: %w", v, err)
	}

	switch r := FrameRate(n); r {
	case Rate1, Rate2, Rate5:
		return r, nil
	default:
		return 0, fmt.Errorf("unsupported frame rate: %d (valid rates: %v)", n, ValidFrameRates())
	}
}

// String implements pflag.Value.
func (r *FrameRate) String() string {
	return cast.ToString(int(*r))
}

// Set implements pflag.Value.
func (r *FrameRate) Set(s string) error {
	parsed, err := ParseFrameRate(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *FrameRate) Type() string {
	return "rate"
}
