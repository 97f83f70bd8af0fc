package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
)

// editOptions holds the flag values of the edit command.
type editOptions struct {
	locks   []string
	toggles []int
	moves   []string
	format  outputFormat
	output  string
}

func newEditCmd() *cobra.Command {
	opts := &editOptions{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "edit [flags] <palette.json>",
		Short: "Toggle locks and reorder swatches of an exported palette",
		Long: `Edit a palette previously exported with --format json.

Swatches are addressed by their 1-based position, as shown by --format table.
Edits are applied in this order: --locks, then every --toggle, then every
--move. The edited palette is written as JSON unless --format says otherwise,
ready to be passed back to generate with --prior.

Examples:
  # Pin the second swatch and move it to the front
  swatch edit --toggle 2 --move 2:1 -o palette.json palette.json

  # Pin exactly these colours, unpinning everything else
  swatch edit --locks "#1A2B3C,#F0C020" palette.json

  # Show the palette as a table
  swatch edit -f table palette.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runEdit(cmd, args[0], opts, newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.locks, "locks", nil, "set the locked colours to exactly these hex codes")
	flags.IntSliceVar(&opts.toggles, "toggle", nil, "flip the lock of the swatch at this position (repeatable)")
	flags.StringArrayVar(&opts.moves, "move", nil, "move a swatch, as FROM:TO positions (repeatable)")
	flags.VarP(&opts.format, "format", "f", "output format (hex, rgb, table, json, css, png)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runEdit(cmd *cobra.Command, path string, opts *editOptions, logger hclog.Logger) error {
	f, err := os.Open(path) // #nosec G304 - user-specified palette file
	if err != nil {
		return fmt.Errorf("failed to open palette: %w", err)
	}
	palette, err := export.ReadJSON(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read palette %s: %w", path, err)
	}

	if cmd.Flags().Changed("locks") {
		swatches, err := colour.ReconcileLocks(palette.Swatches, opts.locks)
		if err != nil {
			return fmt.Errorf("invalid --locks: %w", err)
		}
		palette = colour.NewPalette(swatches)
		logger.Debug("reset locks", "locked", len(palette.LockedHexes()))
	}

	for _, pos := range opts.toggles {
		if err := palette.ToggleLock(pos - 1); err != nil {
			return fmt.Errorf("invalid --toggle %d: %w", pos, err)
		}
		s, _ := palette.Get(pos - 1)
		logger.Debug("toggled lock", "position", pos, "colour", s.Hex(), "locked", s.Locked)
	}

	for _, move := range opts.moves {
		from, to, err := parseMove(move)
		if err != nil {
			return err
		}
		if err := palette.Move(from-1, to-1); err != nil {
			return fmt.Errorf("invalid --move %s: %w", move, err)
		}
		logger.Debug("moved swatch", "from", from, "to", to)
	}

	var buf bytes.Buffer
	if err := writePalette(&buf, palette, opts.format, false); err != nil {
		return err
	}
	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil { // #nosec G306 - palette output is meant to be shared
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// parseMove parses a "FROM:TO" pair of 1-based positions.
func parseMove(s string) (from, to int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --move %q: expected FROM:TO", s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("invalid --move %q: %w", s, err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, fmt.Errorf("invalid --move %q: %w", s, err)
	}
	return from, to, nil
}
