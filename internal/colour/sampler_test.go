package colour

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rgbaBuffer builds an RGBA buffer from per-pixel colours and alphas.
func rgbaBuffer(pixels []Pixel, alpha uint8) []byte {
	buf := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		buf = append(buf, p.R, p.G, p.B, alpha)
	}
	return buf
}

func TestSamplePixelsStride(t *testing.T) {
	pixels := make([]Pixel, 20)
	for i := range pixels {
		pixels[i] = Pixel{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)}
	}

	got, err := SamplePixels(rgbaBuffer(pixels, 255), DefaultStride)
	if err != nil {
		t.Fatalf("SamplePixels() error = %v", err)
	}

	want := []Pixel{pixels[0], pixels[8], pixels[16]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SamplePixels() mismatch (-want +got):\n%s", diff)
	}
}

func TestSamplePixelsAlphaThreshold(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
		want  int
	}{
		{name: "fully transparent", alpha: 0, want: 0},
		{name: "exactly half is discarded", alpha: 128, want: 0},
		{name: "just above half is kept", alpha: 129, want: 1},
		{name: "opaque", alpha: 255, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte{10, 20, 30, tt.alpha}
			got, err := SamplePixels(buf, 4)
			if err != nil {
				t.Fatalf("SamplePixels() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("SamplePixels() returned %d samples, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSamplePixelsTransparentBufferIsEmpty(t *testing.T) {
	buf := make([]byte, 4*64)

	got, err := SamplePixels(buf, DefaultStride)
	if err != nil {
		t.Fatalf("SamplePixels() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no samples, got %d", len(got))
	}
}

func TestSamplePixelsInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		stride int
	}{
		{name: "length not multiple of four", buf: make([]byte, 7), stride: 32},
		{name: "zero stride", buf: make([]byte, 8), stride: 0},
		{name: "negative stride", buf: make([]byte, 8), stride: -4},
		{name: "unaligned stride", buf: make([]byte, 8), stride: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SamplePixels(tt.buf, tt.stride)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("SamplePixels() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
