package colour

import "github.com/lucasb-eyer/go-colorful"

// neutralSaturation is the HSV saturation below which a colour counts as neutral (near grey).
const neutralSaturation = 0.1

// toColorful converts an RGB value to a go-colorful colour in [0, 1].
func (rgb RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// HSV converts the colour to hue (0-360), saturation (0-1) and value (0-1).
func (rgb RGB) HSV() (h, s, v float64) {
	return rgb.toColorful().Hsv()
}

// Saturation returns the HSV saturation of the colour.
func (rgb RGB) Saturation() float64 {
	_, s, _ := rgb.HSV()
	return s
}

// Vibrancy returns saturation × value, the score used by RankVibrant.
func (rgb RGB) Vibrancy() float64 {
	_, s, v := rgb.HSV()
	return s * v
}

// IsNeutral reports whether the colour is near grey.
func (rgb RGB) IsNeutral() bool {
	return rgb.Saturation() < neutralSaturation
}
