package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour preview with text overlay, in black
// or white depending on the luminance of the background.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg uint8
	if c.Luminance() <= 0.5 {
		fg = 255
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}

// Luminance returns the WCAG relative luminance of the colour, from 0 (black) to 1 (white).
func (rgb RGB) Luminance() float64 {
	r, g, b := rgb.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// FormatSwatch formats a swatch as its hex code, count and lock marker,
// optionally prefixed by a colour block.
func FormatSwatch(s Swatch, preview bool) string {
	lock := ""
	if s.Locked {
		lock = "  locked"
	}
	line := fmt.Sprintf("%s  %6d%s", s.Hex(), s.Count, lock)
	if preview {
		return ColourPreview(s.RGB, defaultWidth) + " " + line
	}
	return line
}
