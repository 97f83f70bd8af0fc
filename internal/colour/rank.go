package colour

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// RankMode selects how a palette is ordered.
type RankMode int

const (
	// RankDominant orders by pixel count, most frequent first.
	RankDominant RankMode = iota
	// RankVibrant orders by saturation × value, then by count.
	RankVibrant
	// RankUnique orders by distance to the nearest other swatch, weighted by ln(count+1).
	RankUnique
)

// String returns the lowercase name of the mode.
func (m RankMode) String() string {
	switch m {
	case RankDominant:
		return "dominant"
	case RankVibrant:
		return "vibrant"
	case RankUnique:
		return "unique"
	default:
		return fmt.Sprintf("RankMode(%d)", int(m))
	}
}

func (m RankMode) valid() bool {
	return m >= RankDominant && m <= RankUnique
}

// ValidRankModes returns all rank modes.
func ValidRankModes() []RankMode {
	return []RankMode{RankDominant, RankVibrant, RankUnique}
}

// ParseRankMode converts a mode name (case-insensitive) to a RankMode.
func ParseRankMode(s string) (RankMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range ValidRankModes() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid rank mode: %s (valid: dominant, vibrant, unique)", s)
}

type scored struct {
	Swatch
	score float64
}

// Rank returns a new slice ordered by mode. Sorting is stable, so swatches
// with equal scores keep their relative order. Lock flags are untouched.
func Rank(swatches []Swatch, mode RankMode) []Swatch {
	ranked := make([]scored, len(swatches))
	for i, s := range swatches {
		ranked[i] = scored{Swatch: s}
		switch mode {
		case RankVibrant:
			ranked[i].score = s.Vibrancy()
		case RankUnique:
			ranked[i].score = uniqueness(swatches, i)
		default:
			ranked[i].score = float64(s.Count)
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 || mode != RankVibrant {
			return c
		}
		return cmp.Compare(b.Count, a.Count)
	})

	out := make([]Swatch, len(ranked))
	for i, r := range ranked {
		out[i] = r.Swatch
	}
	return out
}

// uniqueness scores swatches[i] by its distance to the nearest other swatch,
// multiplied by ln(count+1) so that a rare outlier does not dominate on
// distinctiveness alone. A lone swatch scores +Inf.
func uniqueness(swatches []Swatch, i int) float64 {
	minDist := math.Inf(1)
	for j, o := range swatches {
		if j == i {
			continue
		}
		minDist = math.Min(minDist, math.Sqrt(float64(swatches[i].distanceSq(o.RGB))))
	}
	return minDist * math.Log(float64(swatches[i].Count)+1)
}
