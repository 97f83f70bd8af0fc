package colour

// parseLocks parses lock hex codes, dropping duplicates and keeping the first occurrence.
func parseLocks(hexes []string) ([]RGB, error) {
	locked := make([]RGB, 0, len(hexes))
	seen := make(map[RGB]bool, len(hexes))
	for _, h := range hexes {
		rgb, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		if !seen[rgb] {
			locked = append(locked, rgb)
			seen[rgb] = true
		}
	}
	return locked, nil
}

// reconcile returns a copy of swatches where Locked is true exactly for the
// colours in locked.
func reconcile(swatches []Swatch, locked []RGB) []Swatch {
	set := make(map[string]bool, len(locked))
	for _, l := range locked {
		set[l.Hex()] = true
	}
	out := make([]Swatch, len(swatches))
	for i, s := range swatches {
		s.Locked = set[s.Hex()]
		out[i] = s
	}
	return out
}

// ReconcileLocks re-marks lock flags on a final palette: a swatch is locked if
// and only if its hex matches one of the given lock codes.
func ReconcileLocks(swatches []Swatch, locked []string) ([]Swatch, error) {
	rgbs, err := parseLocks(locked)
	if err != nil {
		return nil, err
	}
	return reconcile(swatches, rgbs), nil
}
