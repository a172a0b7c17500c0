package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a "#rrggbb" or "#rgb" hex string back into its RGB triple.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: invalid hex colour %q: %v", ErrInvalidArgument, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
