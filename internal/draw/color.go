package draw

import "github.com/lucasb-eyer/go-colorful"

// Color is an ANSI 256-color palette index. The zero value means "unset"
// (an empty canvas pixel); palette slot 0 is plain black, which is
// indistinguishable from empty on a dark terminal, so nothing is lost.
type Color uint8

// ANSI256 maps an RGB color onto the closest entry of the 6×6×6 color cube
// (palette slots 16..231).
func ANSI256(c colorful.Color) Color {
	r := cubeIndex(c.R)
	g := cubeIndex(c.G)
	b := cubeIndex(c.B)
	return Color(16 + 36*r + 6*g + b)
}

// ANSI256Alpha maps a color faded toward black by alpha (0..1), for
// particles and text that dim as their lifetime runs out.
func ANSI256Alpha(c colorful.Color, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return ANSI256(colorful.Color{R: c.R * alpha, G: c.G * alpha, B: c.B * alpha})
}

// Gray returns a palette index from the 24-step grayscale ramp
// (slots 232..255) for an intensity in 0..1.
func Gray(intensity float64) Color {
	if intensity <= 0 {
		intensity = 0
	}
	if intensity >= 1 {
		intensity = 1
	}
	return Color(232 + int(intensity*23))
}

// cubeIndex quantizes one channel (0..1) to the cube's 6 levels, matching
// the xterm cube values 0, 95, 135, 175, 215, 255.
func cubeIndex(v float64) int {
	x := int(v*255 + 0.5)
	if x < 48 {
		return 0
	}
	if x < 115 {
		return 1
	}
	return (x - 35) / 40
}
