// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from a drawing surface.
	// The count parameter specifies the maximum number of colours to extract.
	Extract(surface *image.NRGBA, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses seeded k-means with random initial centroids.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmKMeansPlusPlus uses k-means++ seeding. Results vary between runs.
	AlgorithmKMeansPlusPlus Algorithm = "kmeans++"

	// AlgorithmDominant ranks colours by weighted dominance.
	AlgorithmDominant Algorithm = "dominant"
)

const (
	// DefaultColourCount is the number of colours extracted when none is given.
	DefaultColourCount = 5

	// MaxColourCount is the largest supported colour count.
	MaxColourCount = 256
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
		AlgorithmKMeansPlusPlus,
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
	// Seed drives centroid initialisation for AlgorithmKMeans.
	Seed int64
	// Stride is the sampling stride in bytes.
	Stride int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmKMeans,
		ColorCount: DefaultColourCount,
		Stride:     DefaultStride,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s (valid algorithms: %v)", c.Algorithm, ValidAlgorithms())
	}
	if err := validateCount(c.ColorCount); err != nil {
		return err
	}
	if c.Stride <= 0 || c.Stride%4 != 0 {
		return fmt.Errorf("stride must be a positive multiple of 4, got %d", c.Stride)
	}
	return nil
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > MaxColourCount {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", count, MaxColourCount)
	}
	return nil
}

// NewExtractor creates a new Extractor based on the configured algorithm.
func NewExtractor(config ExtractorConfig) (Extractor, error) {
	stride := config.Stride
	if stride == 0 {
		stride = DefaultStride
	}

	switch config.Algorithm {
	case AlgorithmKMeans:
		return NewKMeansExtractor(config.Seed, stride), nil
	case AlgorithmKMeansPlusPlus:
		return &KMeansPlusPlusExtractor{stride: stride}, nil
	case AlgorithmDominant:
		return &DominantExtractor{stride: stride}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", config.Algorithm, ValidAlgorithms())
	}
}

// KMeansExtractor samples a surface, clusters the samples and builds a palette.
type KMeansExtractor struct {
	clusterer *KMeansClusterer
	stride    int
}

// NewKMeansExtractor creates a KMeansExtractor seeded with seed.
func NewKMeansExtractor(seed int64, stride int) *KMeansExtractor {
	return &KMeansExtractor{
		clusterer: NewKMeansClusterer(seed),
		stride:    stride,
	}
}

// Extract runs the sample, cluster and build stages. A surface without opaque
// pixels yields an empty palette.
func (e *KMeansExtractor) Extract(surface *image.NRGBA, count int) (*Palette, error) {
	if surface == nil {
		return nil, fmt.Errorf("surface cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	samples, err := SamplePixels(PixelBuffer(surface), e.stride)
	if err != nil {
		return nil, fmt.Errorf("failed to sample pixels: %w", err)
	}
	if len(samples) == 0 {
		return NewPalette(nil), nil
	}

	groups, err := e.clusterer.Cluster(samples, count)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster samples: %w", err)
	}

	return BuildPalette(groups), nil
}

// KMeansPlusPlusExtractor clusters samples with k-means++ seeding.
type KMeansPlusPlusExtractor struct {
	stride int
}

// Extract samples the surface and partitions the samples with k-means++.
func (e *KMeansPlusPlusExtractor) Extract(surface *image.NRGBA, count int) (*Palette, error) {
	if surface == nil {
		return nil, fmt.Errorf("surface cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	samples, err := SamplePixels(PixelBuffer(surface), e.stride)
	if err != nil {
		return nil, fmt.Errorf("failed to sample pixels: %w", err)
	}
	if len(samples) == 0 {
		return NewPalette(nil), nil
	}

	dataset := make(clusters.Observations, len(samples))
	for i, p := range samples {
		dataset[i] = clusters.Coordinates{float64(p.R), float64(p.G), float64(p.B)}
	}

	// Partition refuses more clusters than observations.
	k := min(count, len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("failed to partition samples: %w", err)
	}

	// Partition can hand one observation to two clusters when it refills an
	// empty cluster, so membership is recounted against the final centres.
	centres := make([]Centroid, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		centres = append(centres, Centroid{R: c.Center[0], G: c.Center[1], B: c.Center[2]})
	}
	if len(centres) == 0 {
		return NewPalette(nil), nil
	}

	return BuildPalette(countMembers(samples, centres)), nil
}

// DominantExtractor ranks the dominant colours of a surface by weight.
type DominantExtractor struct {
	stride int
}

// Extract finds up to count dominant colours. Record counts are the opaque
// samples nearest to each colour, so they sum to the sample total.
func (e *DominantExtractor) Extract(surface *image.NRGBA, count int) (*Palette, error) {
	if surface == nil {
		return nil, fmt.Errorf("surface cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	samples, err := SamplePixels(PixelBuffer(surface), e.stride)
	if err != nil {
		return nil, fmt.Errorf("failed to sample pixels: %w", err)
	}
	if len(samples) == 0 {
		return NewPalette(nil), nil
	}

	// FindWeight looks at every pixel, transparent ones included, so its
	// weights are replaced by opaque sample counts against the found colours.
	found := dominantcolor.FindWeight(surface, count)
	if len(found) == 0 {
		return NewPalette(nil), nil
	}

	centres := make([]Centroid, len(found))
	for i, c := range found {
		centres[i] = Centroid{R: float64(c.RGBA.R), G: float64(c.RGBA.G), B: float64(c.RGBA.B)}
	}

	return BuildPalette(countMembers(samples, centres)), nil
}

// countMembers assigns every sample to its nearest centre and returns the
// centres that received at least one sample, in centre order.
func countMembers(samples []Pixel, centres []Centroid) []Cluster {
	counts := make([]int, len(centres))
	for _, p := range samples {
		counts[findNearestCentroid(centroidOf(p), centres)]++
	}

	result := make([]Cluster, 0, len(centres))
	for i, centre := range centres {
		if counts[i] > 0 {
			result = append(result, Cluster{Centroid: centre, Count: counts[i]})
		}
	}
	return result
}

// PixelBuffer returns the surface pixels as a contiguous row-major RGBA buffer.
func PixelBuffer(img *image.NRGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	if img.Stride == rowLen && img.PixOffset(b.Min.X, b.Min.Y) == 0 {
		return img.Pix[:rowLen*b.Dy()]
	}

	buf := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		buf = append(buf, img.Pix[off:off+rowLen]...)
	}
	return buf
}
