package colour

// maxRGBDistance exceeds the diagonal of the RGB cube (about 441.67), so any
// threshold at or above it merges every pair.
const maxRGBDistance = 442

// Merge collapses near-duplicate swatches in a single greedy pass.
//
// Walking in order, each unlocked swatch absorbs every later unlocked swatch
// within threshold (Euclidean RGB distance) of its running count-weighted
// average. Locked swatches are emitted unchanged and never take part in a
// merge. The result keeps first-occurrence order. A threshold of 0 disables
// merging and returns a copy of the input.
func Merge(swatches []Swatch, threshold int) []Swatch {
	out := make([]Swatch, 0, len(swatches))
	if threshold <= 0 {
		return append(out, swatches...)
	}

	clamped := min(threshold, maxRGBDistance)
	limit := clamped * clamped
	used := make([]bool, len(swatches))
	for i, s := range swatches {
		if used[i] {
			continue
		}
		used[i] = true
		if s.Locked {
			out = append(out, s)
			continue
		}

		base := s
		total := max(1, s.Count)
		for j := i + 1; j < len(swatches); j++ {
			c := swatches[j]
			if used[j] || c.Locked {
				continue
			}
			if base.distanceSq(c.RGB) > limit {
				continue
			}
			w := max(1, c.Count)
			base.RGB = weightedMean(base.RGB, total, c.RGB, w)
			total += w
			used[j] = true
		}
		base.Count = total
		out = append(out, base)
	}
	return out
}

// weightedMean returns the rounded weighted average of two colours.
func weightedMean(a RGB, wa int, b RGB, wb int) RGB {
	w := wa + wb
	return RGB{
		R: roundDiv(int(a.R)*wa+int(b.R)*wb, w),
		G: roundDiv(int(a.G)*wa+int(b.G)*wb, w),
		B: roundDiv(int(a.B)*wa+int(b.B)*wb, w),
	}
}
