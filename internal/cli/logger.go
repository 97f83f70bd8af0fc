package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the logger handed to the engine. Warnings are always
// shown; verbose mode adds debug output.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}
