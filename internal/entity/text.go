package entity

import "github.com/lucasb-eyer/go-colorful"

// FloatingText is a transient score/status callout that rises and fades.
type FloatingText struct {
	X, Y    float64
	Text    string
	Color   colorful.Color
	Life    float64
	MaxLife float64
}

// NewFloatingText creates a callout at (x, y) lasting the given seconds.
func NewFloatingText(x, y float64, text string, c colorful.Color, lifetime float64) FloatingText {
	return FloatingText{
		X:       x,
		Y:       y,
		Text:    text,
		Color:   c,
		Life:    lifetime,
		MaxLife: lifetime,
	}
}
