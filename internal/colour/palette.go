// Package colour provides colour quantisation and palette curation.
package colour

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in RGB format. Sampled pixels are plain RGB values.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
// This is the canonical form used for lock matching.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// distanceSq returns the squared Euclidean distance between two colours in RGB space.
func (rgb RGB) distanceSq(other RGB) int {
	dr := int(rgb.R) - int(other.R)
	dg := int(rgb.G) - int(other.G)
	db := int(rgb.B) - int(other.B)
	return dr*dr + dg*dg + db*db
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb" (any case) into an RGB.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected #rgb or #rrggbb", hex)
	}
	for _, ch := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return RGB{}, fmt.Errorf("invalid hex colour %q: bad digit %q", hex, ch)
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Swatch is a representative colour of a palette.
// Count is the number of source pixels nearest to the swatch.
type Swatch struct {
	RGB
	Count  int  `json:"count"`
	Locked bool `json:"locked"`
}

// Palette is an ordered list of swatches. The order is meaningful: it is the
// display and export order and may be rearranged by the caller.
type Palette struct {
	Swatches []Swatch
}

// NewPalette creates a new Palette with the given swatches.
func NewPalette(swatches []Swatch) *Palette {
	return &Palette{
		Swatches: swatches,
	}
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Get returns the swatch at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Swatch, error) {
	if index < 0 || index >= len(p.Swatches) {
		return Swatch{}, fmt.Errorf("index out of bounds: %d (palette has %d swatches)", index, len(p.Swatches))
	}
	return p.Swatches[index], nil
}

// ToHex converts the palette swatches to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		hexColours[i] = s.Hex()
	}
	return hexColours
}

// LockedHexes returns the hex codes of the locked swatches in palette order.
// This is the lock set to pass into the next generation cycle.
func (p *Palette) LockedHexes() []string {
	var locked []string
	for _, s := range p.Swatches {
		if s.Locked {
			locked = append(locked, s.Hex())
		}
	}
	return locked
}

// ToggleLock flips the locked flag of the swatch at index.
func (p *Palette) ToggleLock(index int) error {
	if index < 0 || index >= len(p.Swatches) {
		return fmt.Errorf("index out of bounds: %d (palette has %d swatches)", index, len(p.Swatches))
	}
	p.Swatches[index].Locked = !p.Swatches[index].Locked
	return nil
}

// Move removes the swatch at from and reinserts it at to, shifting the
// swatches in between.
func (p *Palette) Move(from, to int) error {
	n := len(p.Swatches)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d -> %d out of bounds (palette has %d swatches)", from, to, n)
	}
	if from == to {
		return nil
	}
	moved := p.Swatches[from]
	if from < to {
		copy(p.Swatches[from:to], p.Swatches[from+1:to+1])
	} else {
		copy(p.Swatches[to+1:from+1], p.Swatches[to:from])
	}
	p.Swatches[to] = moved
	return nil
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d swatches:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		lock := ""
		if s.Locked {
			lock = " [locked]"
		}
		fmt.Fprintf(&sb, "  %2d: %s (%s) x%d%s\n", i+1, s.Hex(), s.RGB.String(), s.Count, lock)
	}
	return sb.String()
}

// All returns an iterator over all swatches in the palette.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}
