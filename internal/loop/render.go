package loop

import (
	"io"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mkovar/novastrike/internal/draw"
	"github.com/mkovar/novastrike/internal/entity"
	"github.com/mkovar/novastrike/internal/game"
)

// Ship and enemy render palette. Effect colors travel with the entities
// themselves.
var (
	shipColor   = draw.ANSI256(colorful.Color{R: 0.84, G: 0.89, B: 1})
	thrustColor = draw.ANSI256(colorful.Color{R: 1, G: 0.7, B: 0.25})
	gruntColor  = draw.ANSI256(colorful.Color{R: 1, G: 0.55, B: 0.4})
	dartColor   = draw.ANSI256(colorful.Color{R: 0.4, G: 0.88, B: 1})
	tankColor   = draw.ANSI256(colorful.Color{R: 1, G: 0.7, B: 0.28})
	shotColor   = draw.ANSI256(colorful.Color{R: 1, G: 1, B: 0.6})
	hostileShot = draw.ANSI256(colorful.Color{R: 1, G: 0.35, B: 0.35})
)

// drawFrame renders the world and UI for the current phase. It only reads
// the world; all mutation happens in the update phase.
func drawFrame(s *session, canvas *draw.Canvas, cw *draw.ChunkWriter, w io.Writer) error {
	draw.ClearScreen(w)
	canvas.Clear()

	applyShake(s, canvas, cw)

	w2 := s.world
	drawStars(w2, canvas)
	drawParticles(w2, canvas)
	drawBullets(w2, canvas)
	drawEnemies(w2, canvas)
	drawPlayer(w2, canvas)

	canvas.Render(cw)

	drawTexts(s, canvas, cw)
	drawUI(s, canvas, cw)

	return cw.Flush()
}

// applyShake jitters the whole render area by up to a couple of cells while
// shake magnitude is decaying.
func applyShake(s *session, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	shake := s.world.Shake
	if shake <= 0 {
		canvas.SetOffset(0, 0)
		cw.SetOffset(0, 0)
		return
	}
	amp := int(math.Min(shake/2, 2))
	dx := rand.Intn(2*amp+1) - amp
	dy := rand.Intn(2*amp+1) - amp
	canvas.SetOffset(dx, dy)
	cw.SetOffset(dx, dy)
}

func drawStars(w *game.World, canvas *draw.Canvas) {
	for i := range w.Stars {
		s := &w.Stars[i]
		c := draw.Gray(s.Alpha * 0.8)
		canvas.Set(s.X, s.Y, c)
		if s.Size > 1.5 {
			canvas.Set(s.X, s.Y+1, c)
		}
	}
}

func drawParticles(w *game.World, canvas *draw.Canvas) {
	for i := range w.Particles {
		p := &w.Particles[i]
		c := draw.ANSI256Alpha(p.Color, p.Alpha)
		canvas.Set(p.X, p.Y, c)
		if p.R > 2 {
			canvas.Set(p.X+2, p.Y, c)
			canvas.Set(p.X-2, p.Y, c)
			canvas.Set(p.X, p.Y+2, c)
			canvas.Set(p.X, p.Y-2, c)
		}
	}
}

func drawBullets(w *game.World, canvas *draw.Canvas) {
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Owner == entity.OwnerPlayer {
			// Short streak along the flight path.
			canvas.Set(b.X, b.Y, shotColor)
			canvas.Set(b.X, b.Y+3, shotColor)
		} else {
			canvas.Set(b.X, b.Y, hostileShot)
			canvas.Set(b.X+1, b.Y, hostileShot)
		}
	}
}

func drawEnemies(w *game.World, canvas *draw.Canvas) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		cx, cy := e.CenterX(), e.CenterY()
		pts := canvas.BorrowPoints(4)

		switch e.Type {
		case entity.EnemyDart:
			// Narrow triangle diving at the player.
			pts = pts[:3]
			pts[0] = draw.Point{X: cx, Y: e.Y + e.H}
			pts[1] = draw.Point{X: e.X, Y: e.Y}
			pts[2] = draw.Point{X: e.X + e.W, Y: e.Y}
			canvas.DrawPolygon(pts, dartColor, true)
		case entity.EnemyTank:
			// Fat hexagon-ish hull.
			pts = pts[:4]
			pts[0] = draw.Point{X: e.X, Y: cy}
			pts[1] = draw.Point{X: cx, Y: e.Y}
			pts[2] = draw.Point{X: e.X + e.W, Y: cy}
			pts[3] = draw.Point{X: cx, Y: e.Y + e.H}
			canvas.DrawPolygon(pts, tankColor, true)
			// Darker core once damaged.
			if e.HP < e.MaxHP {
				canvas.Set(cx, cy, hostileShot)
			}
		default:
			pts = pts[:4]
			pts[0] = draw.Point{X: e.X, Y: e.Y}
			pts[1] = draw.Point{X: e.X + e.W, Y: e.Y}
			pts[2] = draw.Point{X: cx + e.W/4, Y: e.Y + e.H}
			pts[3] = draw.Point{X: cx - e.W/4, Y: e.Y + e.H}
			canvas.DrawPolygon(pts, gruntColor, true)
		}
	}
}

func drawPlayer(w *game.World, canvas *draw.Canvas) {
	p := w.Player
	if p == nil {
		return
	}
	// Blink at 10Hz while invincible.
	if !shouldRenderBlink(p.Invincible, 10) {
		return
	}

	pts := canvas.BorrowPoints(4)
	pts[0] = draw.Point{X: p.CenterX(), Y: p.Y}
	pts[1] = draw.Point{X: p.X + p.W, Y: p.Y + p.H}
	pts[2] = draw.Point{X: p.CenterX(), Y: p.Y + p.H*0.72}
	pts[3] = draw.Point{X: p.X, Y: p.Y + p.H}
	canvas.DrawPolygon(pts, shipColor, true)

	// Engine flicker under the hull.
	if int(p.AnimPhase*2)%2 == 0 {
		canvas.Set(p.CenterX(), p.Y+p.H+3, thrustColor)
	}
}

// drawTexts overlays floating callouts, faded by remaining lifetime.
func drawTexts(s *session, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	for i := range s.world.Texts {
		t := &s.world.Texts[i]
		col, row := canvas.LogicalToTerminal(t.X, t.Y)
		col -= len(t.Text) / 2
		if col < 1 {
			col = 1
		}
		cw.SetForeground(draw.ANSI256Alpha(t.Color, t.Life/t.MaxLife))
		cw.WriteAt(col, row, t.Text)
	}
	cw.ResetStyle()
}

// shouldRenderBlink returns whether an entity with remaining immunity time
// should be visible this frame. Always true once the timer runs out.
func shouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	return int(remaining*frequency)%2 != 0
}
