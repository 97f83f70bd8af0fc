package colour

import (
	"fmt"
	"slices"
)

// centroid is a cluster centre during optimisation.
type centroid struct {
	RGB
	locked bool
}

// initialiseCentroids seeds one frozen centroid per locked colour, followed by
// k-len(locked) centroids drawn from a shuffled copy of the pool. The pool is
// reused from the start when k exceeds its size.
func initialiseCentroids(pool []RGB, k int, locked []RGB, rng Rand) ([]centroid, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no pixels to seed centroids from", ErrEmptyInput)
	}

	need := max(0, k-len(locked))
	centroids := make([]centroid, 0, len(locked)+need)
	for _, c := range locked {
		centroids = append(centroids, centroid{RGB: c, locked: true})
	}
	if need == 0 {
		return centroids, nil
	}

	shuffled := slices.Clone(pool)
	shuffle(shuffled, rng)
	for i := range need {
		centroids = append(centroids, centroid{RGB: shuffled[i%len(shuffled)]})
	}
	return centroids, nil
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(pixels []RGB, rng Rand) {
	for i := len(pixels) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		pixels[i], pixels[j] = pixels[j], pixels[i]
	}
}
