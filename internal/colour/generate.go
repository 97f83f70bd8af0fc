package colour

import "fmt"

// Generate turns sampled pixels into a ranked palette of at most cfg.Colours swatches.
//
// The pipeline seeds centroids from the locked colours and the pixels, runs
// k-means, optionally merges close colours (re-clustering with the survivors
// pinned when the merge leaves fewer than cfg.Colours), ranks the result and
// finally re-marks the lock flags. Every locked colour is returned with its
// exact RGB value.
//
// Generate holds no state between calls and never mutates pixels or cfg.
func Generate(pixels []RGB, cfg Config, opts ...Option) (*Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}

	o := newOptions(opts)

	locked, err := parseLocks(cfg.Locked)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(locked) > cfg.Colours {
		o.logger.Warn("more locked colours than requested, keeping the first ones",
			"locked", len(locked), "colours", cfg.Colours)
		locked = locked[:cfg.Colours]
	}

	swatches, err := o.cluster(pixels, cfg.Colours, locked, cfg.IgnoreNeutrals)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster pixels: %w", err)
	}

	if cfg.MergeThreshold > 0 {
		merged := Merge(swatches, cfg.MergeThreshold)
		o.logger.Debug("merged close colours",
			"threshold", cfg.MergeThreshold, "before", len(swatches), "after", len(merged))
		swatches = merged

		if len(merged) < cfg.Colours {
			survivors := make([]RGB, 0, len(merged))
			seen := make(map[RGB]bool, len(merged))
			for _, s := range merged {
				if !seen[s.RGB] {
					survivors = append(survivors, s.RGB)
					seen[s.RGB] = true
				}
			}
			o.logger.Debug("topping up merged palette", "survivors", len(survivors), "colours", cfg.Colours)
			swatches, err = o.cluster(pixels, cfg.Colours, survivors, cfg.IgnoreNeutrals)
			if err != nil {
				return nil, fmt.Errorf("failed to top up palette: %w", err)
			}
		}
	}

	if len(swatches) > cfg.Colours {
		swatches = swatches[:cfg.Colours]
	}

	ranked := Rank(swatches, cfg.Mode)
	return NewPalette(reconcile(ranked, locked)), nil
}
