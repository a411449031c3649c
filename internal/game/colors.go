package game

import "github.com/lucasb-eyer/go-colorful"

// Effect palette. Enemy kill bursts are tinted per class so a tank death
// reads differently from a dart death even in the corner of the eye.
var (
	colorSpark  = hex("#ffe08a")
	colorHit    = hex("#ff5d5d")
	colorScore  = hex("#b8ffb0")
	colorLevel  = hex("#8ad2ff")
	colorGrunt  = hex("#ff8c66")
	colorDart   = hex("#66e0ff")
	colorTank   = hex("#ffb347")
	colorPlayer = hex("#d6e4ff")
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad palette entry: " + s)
	}
	return c
}
