// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// MaxIterations caps the number of refinement passes.
	MaxIterations = 20

	// ConvergenceThreshold is the largest centroid movement still considered settled.
	ConvergenceThreshold = 1.0
)

// Centroid is a point in continuous RGB space.
type Centroid struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (c Centroid) distance(other Centroid) float64 {
	dr := c.R - other.R
	dg := c.G - other.G
	db := c.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func centroidOf(p Pixel) Centroid {
	return Centroid{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
}

// Cluster is a finalised k-means cluster: its centroid and the number of
// samples assigned to it in the last iteration.
type Cluster struct {
	Centroid Centroid
	Count    int
}

// KMeansClusterer partitions sample points into at most k clusters.
type KMeansClusterer struct {
	seed          int64
	maxIterations int
	convergence   float64
}

// NewKMeansClusterer creates a clusterer whose centroid initialisation is driven by seed.
func NewKMeansClusterer(seed int64) *KMeansClusterer {
	return &KMeansClusterer{
		seed:          seed,
		maxIterations: MaxIterations,
		convergence:   ConvergenceThreshold,
	}
}

// Cluster runs k-means over samples and returns the non-empty clusters in
// centroid index order. Results are identical for identical samples, k and seed.
func (c *KMeansClusterer) Cluster(samples []Pixel, k int) ([]Cluster, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: cluster count must not be negative, got %d", ErrInvalidArgument, k)
	}
	if len(samples) == 0 || k == 0 {
		return []Cluster{}, nil
	}

	points := make([]Centroid, len(samples))
	for i, p := range samples {
		points[i] = centroidOf(p)
	}

	// #nosec G404 -- centroid seeding only needs to be reproducible, not secure
	rng := rand.New(rand.NewSource(c.seed))
	centroids := make([]Centroid, k)
	for i := range centroids {
		centroids[i] = points[rng.Intn(len(points))]
	}

	return c.refine(points, centroids), nil
}

// refine runs Lloyd iterations from the given initial centroids, updating them
// in place, and returns the non-empty clusters of the last iteration.
func (c *KMeansClusterer) refine(points, centroids []Centroid) []Cluster {
	k := len(centroids)
	counts := make([]int, k)
	sums := make([]Centroid, k)

	for iter := 0; iter < c.maxIterations; iter++ {
		clear(counts)
		clear(sums)

		for _, p := range points {
			nearest := findNearestCentroid(p, centroids)
			counts[nearest]++
			sums[nearest].R += p.R
			sums[nearest].G += p.G
			sums[nearest].B += p.B
		}

		// Empty clusters keep their stale centroid and are never reseeded.
		converged := true
		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			n := float64(counts[i])
			updated := Centroid{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
			if updated.distance(centroids[i]) > c.convergence {
				converged = false
			}
			centroids[i] = updated
		}

		if converged {
			break
		}
	}

	result := make([]Cluster, 0, k)
	for i, centroid := range centroids {
		if counts[i] > 0 {
			result = append(result, Cluster{Centroid: centroid, Count: counts[i]})
		}
	}
	return result
}

// findNearestCentroid returns the index of the closest centroid. Only a strict
// improvement replaces the current best, so the earliest index wins ties.
func findNearestCentroid(point Centroid, centroids []Centroid) int {
	minDist := math.Inf(1)
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}
