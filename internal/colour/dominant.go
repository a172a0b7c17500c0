package colour

// DominantColor returns the most frequent exact colour among the opaque samples
// of a buffer. When several colours share the highest frequency the one sampled
// first wins. A buffer without opaque samples yields black. The record carries no
// membership count.
func DominantColor(pix []byte, stride int) (ColorRecord, error) {
	samples, err := SamplePixels(pix, stride)
	if err != nil {
		return ColorRecord{}, err
	}

	frequency := make(map[Pixel]int, len(samples))
	var best Pixel
	bestCount := 0
	for _, p := range samples {
		frequency[p]++
	}
	// Second pass in sample order keeps first-seen precedence on ties.
	for _, p := range samples {
		if n := frequency[p]; n > bestCount {
			best, bestCount = p, n
		}
	}

	return NewColorRecord(RGB(best), 0), nil
}
