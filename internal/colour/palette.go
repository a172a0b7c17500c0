// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Round converts a centroid to the nearest RGB triple, rounding each channel half-up.
func (c Centroid) Round() RGB {
	return RGB{R: roundChannel(c.R), G: roundChannel(c.G), B: roundChannel(c.B)}
}

func roundChannel(v float64) uint8 {
	return uint8(math.Floor(v + 0.5))
}

// ColorRecord is a single palette entry. It is a value type with no exported
// fields, so its hex and rgb() forms always describe the same rounded triple.
type ColorRecord struct {
	rgb   RGB
	count int
	frame int
}

// NewColorRecord creates a record for the given colour and membership count.
func NewColorRecord(rgb RGB, count int) ColorRecord {
	return ColorRecord{rgb: rgb, count: count}
}

// WithFrame returns a copy of the record tagged with a frame number.
func (r ColorRecord) WithFrame(frame int) ColorRecord {
	r.frame = frame
	return r
}

// Hex returns the colour as "#rrggbb".
func (r ColorRecord) Hex() string { return r.rgb.Hex() }

// RGB returns the colour as "rgb(r, g, b)".
func (r ColorRecord) RGB() string { return r.rgb.String() }

// Count returns the number of samples the colour stands for, 0 if unknown.
func (r ColorRecord) Count() int { return r.count }

// Frame returns the 1-based video frame the colour came from, 0 for image palettes.
func (r ColorRecord) Frame() int { return r.frame }

// Value returns the record's colour components.
func (r ColorRecord) Value() RGB { return r.rgb }

// Palette is an ordered list of colour records.
type Palette struct {
	Records []ColorRecord
}

// NewPalette creates a new Palette with the given records, preserving their order.
func NewPalette(records []ColorRecord) *Palette {
	return &Palette{
		Records: records,
	}
}

// BuildPalette converts clusters into records sorted by descending count.
// Clusters with equal counts keep the order they were given in.
func BuildPalette(clusters []Cluster) *Palette {
	records := make([]ColorRecord, 0, len(clusters))
	for _, c := range clusters {
		records = append(records, NewColorRecord(c.Centroid.Round(), c.Count))
	}

	slices.SortStableFunc(records, func(a, b ColorRecord) int {
		return b.count - a.count
	})

	return NewPalette(records)
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Records)
}

// ToHex returns the hex codes of the palette in order.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Records))
	for i, r := range p.Records {
		hexColours[i] = r.Hex()
	}
	return hexColours
}

// ToRGBSlice returns the colour components of the palette in order.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColours := make([]RGB, len(p.Records))
	for i, r := range p.Records {
		rgbColours[i] = r.rgb
	}
	return rgbColours
}

// Text renders the plain-text export, one line per record:
// "Color N: #rrggbb (rgb(r, g, b))", or "Frame N: ..." for video records.
func (p *Palette) Text() string {
	lines := make([]string, len(p.Records))
	for i, r := range p.Records {
		if r.frame > 0 {
			lines[i] = fmt.Sprintf("Frame %d: %s (%s)", r.frame, r.Hex(), r.RGB())
		} else {
			lines[i] = fmt.Sprintf("Color %d: %s (%s)", i+1, r.Hex(), r.RGB())
		}
	}
	return strings.Join(lines, "\n")
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex   string  `json:"hex"`
	RGB   RGB     `json:"rgb"`
	Count int     `json:"count,omitempty"`
	Frame int     `json:"frame,omitempty"`
	Share float64 `json:"share,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int         `json:"count"`
	Samples int         `json:"samples,omitempty"`
	Entropy float64     `json:"entropy,omitempty"`
	Colors  []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	stats := p.Stats()

	colors := make([]ColorJSON, len(p.Records))
	for i, r := range p.Records {
		colors[i] = ColorJSON{
			Hex:   r.Hex(),
			RGB:   r.rgb,
			Count: r.count,
			Frame: r.frame,
		}
		if len(stats.Shares) == len(p.Records) {
			colors[i].Share = stats.Shares[i]
		}
	}

	paletteJSON := PaletteJSON{
		Count:   len(p.Records),
		Samples: stats.Samples,
		Entropy: stats.Entropy,
		Colors:  colors,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Records) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Records))
	for i, r := range p.Records {
		fmt.Fprintf(&sb, "  %2d: %s (%s) x%d\n", i+1, r.Hex(), r.RGB(), r.count)
	}
	return sb.String()
}

// All returns an iterator over all records in the palette.
func (p *Palette) All() func(func(int, ColorRecord) bool) {
	return func(yield func(int, ColorRecord) bool) {
		for i, r := range p.Records {
			if !yield(i, r) {
				return
			}
		}
	}
}
