package colour

import "fmt"

// channelSum accumulates the pixels assigned to one centroid.
type channelSum struct {
	r, g, b, n int
}

func (s *channelSum) add(p RGB) {
	s.r += int(p.R)
	s.g += int(p.G)
	s.b += int(p.B)
	s.n++
}

// mean returns the rounded (half up) integer mean. n must be positive.
func (s channelSum) mean() RGB {
	return RGB{
		R: roundDiv(s.r, s.n),
		G: roundDiv(s.g, s.n),
		B: roundDiv(s.b, s.n),
	}
}

// roundDiv returns num/den rounded half up, for non-negative num and positive den.
// Every caller averages channel values, so the result always fits a channel.
func roundDiv(num, den int) uint8 {
	return uint8((2*num + den) / (2 * den)) // #nosec G115 -- a mean of channel values is within [0, 255]
}

// nearestCentroid returns the index of the centroid closest to p.
// Ties go to the lowest index.
func nearestCentroid(p RGB, centroids []centroid) int {
	nearest := 0
	minDist := -1
	for i, c := range centroids {
		d := p.distanceSq(c.RGB)
		if minDist < 0 || d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// workingPool returns the pixels used inside the optimisation loop: the input
// without neutrals when requested (falling back to the full input if nothing
// remains), strided down to at most about maxPoolSize pixels.
func (o *options) workingPool(pixels []RGB, ignoreNeutrals bool) []RGB {
	pts := pixels
	if ignoreNeutrals {
		filtered := make([]RGB, 0, len(pixels))
		for _, p := range pixels {
			if !p.IsNeutral() {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			pts = filtered
		} else {
			o.logger.Debug("neutral filter removed every pixel, using unfiltered pixels", "pixels", len(pixels))
		}
	}
	return subsample(pts, maxPoolSize)
}

// subsample keeps every stride-th pixel, stride = len/limit, when the input
// exceeds limit.
func subsample(pixels []RGB, limit int) []RGB {
	if len(pixels) <= limit {
		return pixels
	}
	stride := len(pixels) / limit
	out := make([]RGB, 0, len(pixels)/stride+1)
	for i := 0; i < len(pixels); i += stride {
		out = append(out, pixels[i])
	}
	return out
}

// lloyd refines the centroids in place until no position changes or the
// iteration cap is reached. Locked centroids never move. Unlocked centroids
// that attract no pixels are reseeded from a random pool pixel.
// Returns the number of iterations run and whether the loop converged.
func (o *options) lloyd(pool []RGB, centroids []centroid) (int, bool) {
	sums := make([]channelSum, len(centroids))

	for iter := range o.maxIterations {
		clear(sums)
		for _, p := range pool {
			sums[nearestCentroid(p, centroids)].add(p)
		}

		moved := false
		for i := range centroids {
			if centroids[i].locked {
				continue
			}
			var next RGB
			if sums[i].n > 0 {
				next = sums[i].mean()
			} else {
				next = pool[o.rng.IntN(len(pool))]
				o.logger.Trace("reseeding empty cluster", "centroid", i, "colour", next.Hex())
			}
			if next != centroids[i].RGB {
				centroids[i].RGB = next
				moved = true
			}
		}
		if !moved {
			return iter + 1, true
		}
	}
	return o.maxIterations, false
}

// cluster runs seeding, optimisation and final counting, returning swatches in
// centroid order (locked colours first).
//
// Counts are taken over the full pixel set. Unlocked centroids left without
// any pixel duplicate another centroid and are dropped; locked centroids are
// always kept with a count of at least 1.
func (o *options) cluster(pixels []RGB, k int, locked []RGB, ignoreNeutrals bool) ([]Swatch, error) {
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: nothing to cluster", ErrEmptyInput)
	}

	pool := o.workingPool(pixels, ignoreNeutrals)
	centroids, err := initialiseCentroids(pool, k, locked, o.rng)
	if err != nil {
		return nil, err
	}

	iterations, converged := o.lloyd(pool, centroids)
	o.logger.Debug("clustering finished",
		"pixels", len(pixels), "pool", len(pool), "centroids", len(centroids),
		"locked", len(locked), "iterations", iterations, "converged", converged)

	counts := make([]int, len(centroids))
	for _, p := range pixels {
		counts[nearestCentroid(p, centroids)]++
	}

	swatches := make([]Swatch, 0, len(centroids))
	for i, c := range centroids {
		switch {
		case c.locked:
			swatches = append(swatches, Swatch{RGB: c.RGB, Count: max(1, counts[i]), Locked: true})
		case counts[i] > 0:
			swatches = append(swatches, Swatch{RGB: c.RGB, Count: counts[i]})
		default:
			o.logger.Trace("dropping empty centroid", "centroid", i, "colour", c.Hex())
		}
	}
	return swatches, nil
}
