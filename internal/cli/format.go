package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
)

// writePalette writes the palette to w in the requested format.
func writePalette(w io.Writer, palette *colour.Palette, format outputFormat, preview bool) error {
	switch format {
	case formatHex:
		_, err := io.WriteString(w, formatHexList(palette, preview))
		return err
	case formatRGB:
		_, err := io.WriteString(w, formatRGBList(palette, preview))
		return err
	case formatTable:
		_, err := io.WriteString(w, formatTableView(palette))
		return err
	case formatJSON:
		data, err := export.ToJSON(palette)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatCSS:
		_, err := io.WriteString(w, export.ToCSS(palette))
		return err
	case formatPNG:
		return export.WritePNG(w, palette, export.DefaultSheetOptions())
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// formatHexList prints one hex code per line. Previews add a colour block, the
// pixel count and the lock marker.
func formatHexList(palette *colour.Palette, preview bool) string {
	output := ""
	for _, s := range palette.All() {
		if preview {
			output += colour.FormatSwatch(s, true) + "\n"
		} else {
			output += s.Hex() + "\n"
		}
	}
	return output
}

// formatRGBList prints one rgb() value per line.
func formatRGBList(palette *colour.Palette, preview bool) string {
	output := ""
	for _, s := range palette.All() {
		if preview {
			output += colour.ColourPreviewWithText(s.RGB, s.Hex(), 9) + "  " + s.String() + "\n"
		} else {
			output += s.String() + "\n"
		}
	}
	return output
}

func formatTableView(palette *colour.Palette) string {
	table := NewTable([]string{"#", "Hex", "RGB", "Count", "Locked"})
	table.AlignRight(0)
	table.AlignRight(3)
	for i, s := range palette.All() {
		locked := ""
		if s.Locked {
			locked = "yes"
		}
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			export.Hex(s.RGB),
			fmt.Sprintf("%d, %d, %d", s.R, s.G, s.B),
			strconv.Itoa(s.Count),
			locked,
		})
	}
	return table.Render()
}
