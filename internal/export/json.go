// Package export writes palettes in the formats consumed outside swatch.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// DefaultPaletteName is the document name used by JSON and PNG exports.
const DefaultPaletteName = "Swatch Palette"

// SwatchJSON represents a swatch in JSON output format.
type SwatchJSON struct {
	Name   string     `json:"name"`
	Hex    string     `json:"hex"`
	RGB    colour.RGB `json:"rgb"`
	Count  int        `json:"count,omitempty"`
	Locked bool       `json:"locked,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Name   string       `json:"name"`
	Colors []SwatchJSON `json:"colors"`
}

// Hex returns the uppercase export form of a colour (e.g., "#1A2B3C").
func Hex(rgb colour.RGB) string {
	return strings.ToUpper(rgb.Hex())
}

// ToJSON converts the palette to an indented JSON document.
func ToJSON(palette *colour.Palette) ([]byte, error) {
	doc := PaletteJSON{
		Name:   DefaultPaletteName,
		Colors: make([]SwatchJSON, len(palette.Swatches)),
	}
	for i, s := range palette.Swatches {
		doc.Colors[i] = SwatchJSON{
			Name:   fmt.Sprintf("swatch_%d", i+1),
			Hex:    Hex(s.RGB),
			RGB:    s.RGB,
			Count:  s.Count,
			Locked: s.Locked,
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ReadJSON parses a palette previously written by ToJSON. The hex field is
// authoritative; rgb is ignored. Swatch order and lock flags are preserved so
// the result can seed the next generation.
func ReadJSON(r io.Reader) (*colour.Palette, error) {
	var doc PaletteJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode palette JSON: %w", err)
	}

	swatches := make([]colour.Swatch, 0, len(doc.Colors))
	for i, c := range doc.Colors {
		rgb, err := colour.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("colour %d (%s): %w", i+1, c.Name, err)
		}
		swatches = append(swatches, colour.Swatch{RGB: rgb, Count: c.Count, Locked: c.Locked})
	}
	return colour.NewPalette(swatches), nil
}
