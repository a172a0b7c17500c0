package colour

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises how samples are distributed across a palette.
type Stats struct {
	// Samples is the total membership count across all records.
	Samples int
	// Shares holds each record's fraction of Samples, in palette order.
	Shares []float64
	// Entropy is the Shannon entropy (nats) of Shares. A single-colour palette has 0.
	Entropy float64
}

// Stats computes derived statistics from the record counts. Palettes without
// counts (such as per-frame video palettes) yield zero Stats.
func (p *Palette) Stats() Stats {
	counts := make([]float64, len(p.Records))
	for i, r := range p.Records {
		counts[i] = float64(r.count)
	}

	total := floats.Sum(counts)
	if total == 0 {
		return Stats{}
	}

	floats.Scale(1/total, counts)
	return Stats{
		Samples: int(total),
		Shares:  counts,
		Entropy: stat.Entropy(counts),
	}
}
