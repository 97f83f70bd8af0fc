package export

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ToCSS renders the palette as CSS custom properties on :root.
func ToCSS(palette *colour.Palette) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for i, s := range palette.Swatches {
		fmt.Fprintf(&sb, "  --swatch-%d: %s;\n", i+1, Hex(s.RGB))
	}
	sb.WriteString("}\n")
	return sb.String()
}
