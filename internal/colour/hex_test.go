package colour

import (
	"errors"
	"testing"
)

func TestParseHexRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		for _, rgb := range []RGB{
			{R: uint8(v)},
			{G: uint8(v)},
			{B: uint8(v)},
			{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)},
		} {
			got, err := ParseHex(rgb.Hex())
			if err != nil {
				t.Fatalf("ParseHex(%s) error = %v", rgb.Hex(), err)
			}
			if got != rgb {
				t.Fatalf("ParseHex(%s) = %+v, want %+v", rgb.Hex(), got, rgb)
			}
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, s := range []string{"", "ff0000", "#ff00", "#gg0000"} {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseHex(s); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidArgument", s, err)
			}
		})
	}
}
