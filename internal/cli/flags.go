package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/seed"
)

var (
	_ pflag.Value = (*rankModeValue)(nil)
	_ pflag.Value = (*outputFormat)(nil)
	_ pflag.Value = (*seed.Mode)(nil)
)

// rankModeValue adapts colour.RankMode to pflag.Value.
type rankModeValue colour.RankMode

func (m *rankModeValue) String() string {
	return colour.RankMode(*m).String()
}

func (m *rankModeValue) Set(s string) error {
	mode, err := colour.ParseRankMode(s)
	if err != nil {
		return err
	}
	*m = rankModeValue(mode)
	return nil
}

func (m *rankModeValue) Type() string {
	return "mode"
}

// outputFormat selects how a generated palette is written.
type outputFormat string

const (
	formatHex   outputFormat = "hex"
	formatRGB   outputFormat = "rgb"
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatCSS   outputFormat = "css"
	formatPNG   outputFormat = "png"
)

func validFormats() []outputFormat {
	return []outputFormat{formatHex, formatRGB, formatTable, formatJSON, formatCSS, formatPNG}
}

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	format := outputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(validFormats(), format) {
		names := make([]string, 0, len(validFormats()))
		for _, v := range validFormats() {
			names = append(names, string(v))
		}
		return fmt.Errorf("unsupported format: %s (supported: %s)", s, strings.Join(names, ", "))
	}
	*f = format
	return nil
}

func (f *outputFormat) Type() string {
	return "format"
}

// binary reports whether the format cannot be written to a terminal.
func (f outputFormat) binary() bool {
	return f == formatPNG
}
