package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/sampler"
	"github.com/jmylchreest/swatch/internal/seed"
)

// generateOptions holds the flag values of the generate command.
type generateOptions struct {
	colours        int
	mode           rankModeValue
	ignoreNeutrals bool
	mergeThreshold int
	locks          []string
	prior          string

	seedMode   seed.Mode
	seedValue  int64
	iterations int

	maxDimension int
	step         int

	format  outputFormat
	output  string
	preview bool
}

func newGenerateCmd() *cobra.Command {
	defaults := colour.DefaultConfig()
	opts := &generateOptions{
		mode:     rankModeValue(defaults.Mode),
		seedMode: seed.ModeContent,
		format:   formatHex,
	}

	cmd := &cobra.Command{
		Use:   "generate [flags] <image|directory>...",
		Short: "Generate a colour palette from images",
		Long: `Generate a colour palette from the pixels of one or more images.

Pixels from every image are pooled, clustered into the requested number of
colours, optionally merged when closer than --merge, then ranked.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Eight dominant colours from a wallpaper
  swatch generate wallpaper.jpg

  # Twelve vibrant colours across a directory of images, ignoring greys
  swatch generate -c 12 -m vibrant --ignore-neutrals ~/Pictures/moodboard

  # Keep two colours while regenerating the rest
  swatch generate --lock "#1A2B3C" --lock "#F0C020" photo.png

  # Regenerate around the locked colours of a previous export
  swatch generate -f json -o palette.json photo.png
  swatch generate --prior palette.json -f json -o palette.json photo.png

  # Export a PNG palette sheet
  swatch generate -f png -o palette.png photo.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preview") {
				opts.preview = isTerminal(cmd.OutOrStdout())
			}
			if cmd.Flags().Changed("seed-value") && !cmd.Flags().Changed("seed-mode") {
				opts.seedMode = seed.ModeManual
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runGenerate(cmd, args, opts, newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.colours, "colours", "c", defaults.Colours, "number of colours in the palette")
	flags.VarP(&opts.mode, "mode", "m", "ranking mode (dominant, vibrant, unique)")
	flags.BoolVar(&opts.ignoreNeutrals, "ignore-neutrals", defaults.IgnoreNeutrals, "exclude near-grey pixels from clustering")
	flags.IntVar(&opts.mergeThreshold, "merge", defaults.MergeThreshold, "merge colours closer than this RGB distance (0 disables)")
	flags.StringArrayVar(&opts.locks, "lock", nil, "pin a colour by hex code (repeatable)")
	flags.StringVar(&opts.prior, "prior", "", "JSON palette whose locked colours are pinned")
	flags.Var(&opts.seedMode, "seed-mode", "seed mode (content, manual, random)")
	flags.Int64Var(&opts.seedValue, "seed-value", 0, "seed for manual seed mode")
	flags.IntVar(&opts.iterations, "iterations", colour.DefaultMaxIterations, "maximum k-means iterations")
	flags.IntVar(&opts.maxDimension, "max-dim", sampler.DefaultOptions().MaxDimension, "downscale images so the longest side is at most this")
	flags.IntVar(&opts.step, "step", sampler.DefaultOptions().Step, "sample every n-th pixel along each axis")
	flags.VarP(&opts.format, "format", "f", "output format (hex, rgb, table, json, css, png)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&opts.preview, "preview", false, "show colour previews (default: on when stdout is a terminal)")

	return cmd
}

// runGenerate executes one generation cycle and writes the result.
func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions, logger hclog.Logger) error {
	locks, err := opts.collectLocks()
	if err != nil {
		return err
	}

	cfg := colour.Config{
		Colours:        opts.colours,
		Mode:           colour.RankMode(opts.mode),
		IgnoreNeutrals: opts.ignoreNeutrals,
		MergeThreshold: opts.mergeThreshold,
		Locked:         locks,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", opts.iterations)
	}

	sampling := sampler.DefaultOptions()
	sampling.MaxDimension = opts.maxDimension
	sampling.Step = opts.step
	if err := sampling.Validate(); err != nil {
		return err
	}

	if opts.format.binary() && opts.output == "" && isTerminal(cmd.OutOrStdout()) {
		return errors.New("refusing to write PNG to a terminal, use --output")
	}

	paths, err := image.ExpandPaths(args)
	if err != nil {
		return err
	}
	logger.Debug("loading images", "count", len(paths))

	images, err := image.LoadAll(image.NewFileLoader(logger.Named("loader")), paths)
	if err != nil {
		return err
	}

	pixels, err := sampler.SampleAll(images, sampling)
	if err != nil {
		return err
	}
	logger.Debug("sampled pixels", "images", len(images), "pixels", len(pixels))

	seedCfg := seed.Config{Mode: opts.seedMode}
	if opts.seedMode == seed.ModeManual && cmd.Flags().Changed("seed-value") {
		seedCfg.Value = &opts.seedValue
	}
	seedValue, err := seed.Calculate(pixels, seedCfg)
	if err != nil {
		return err
	}
	logger.Debug("resolved seed", "mode", opts.seedMode, "seed", seedValue)

	palette, err := colour.Generate(pixels, cfg,
		colour.WithSeed(seedValue),
		colour.WithLogger(logger.Named("engine")),
		colour.WithMaxIterations(opts.iterations),
	)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	logger.Debug("generated palette", "colours", palette.Len(), "locked", len(palette.LockedHexes()))

	var buf bytes.Buffer
	if err := writePalette(&buf, palette, opts.format, opts.preview && opts.output == ""); err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil { // #nosec G306 - palette output is meant to be shared
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Debug("wrote palette", "path", opts.output, "format", opts.format)
	return nil
}

// collectLocks returns the --lock values followed by the locked colours of
// the --prior palette.
func (o *generateOptions) collectLocks() ([]string, error) {
	locks := append([]string(nil), o.locks...)
	if o.prior == "" {
		return locks, nil
	}

	f, err := os.Open(o.prior) // #nosec G304 - user-specified palette file
	if err != nil {
		return nil, fmt.Errorf("failed to open prior palette: %w", err)
	}
	defer f.Close()

	prior, err := export.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read prior palette %s: %w", o.prior, err)
	}
	return append(locks, prior.LockedHexes()...), nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
