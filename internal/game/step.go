package game

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mkovar/novastrike/internal/entity"
	"github.com/mkovar/novastrike/internal/physics"
)

// Screen-shake decay in magnitude units per second.
const shakeDecayRate = 9.0

// Floating text rise speed in px/s.
const textRiseSpeed = 40.0

// Margin beyond the viewport before bullets are discarded.
const bulletMargin = 20.0

// Margin below the viewport before enemies are discarded.
const enemyBottomMargin = 60.0

// Step advances the world by dt seconds. dt must be pre-clamped by the frame
// driver (0.05s cap). Subsystems run in a fixed order; when a hit drops
// lives to zero the step returns early, freezing the world mid-frame.
//
// A no-op before Reset has created a player.
func (w *World) Step(dt float64, in Intent) {
	if w.Player == nil || !w.Playing {
		return
	}

	w.Elapsed += dt
	w.Shake -= shakeDecayRate * dt
	if w.Shake < 0 {
		w.Shake = 0
	}

	w.movePlayer(dt, in)

	// Bullets appended by the fire and enemy phases below join the
	// simulation next step; the bullet pass only walks what exists now.
	liveBullets := len(w.Bullets)

	w.firePlayer(dt, in)
	w.tickSpawn(dt)
	if w.updateEnemies(dt) {
		return
	}
	if w.updateBullets(dt, liveBullets) {
		return
	}
	w.updateParticles(dt)
	w.updateTexts(dt)
	w.updateStars(dt)
}

// StepEffects advances only the cosmetic subsystems (shake, particles,
// floating text, starfield). The death screen uses it to keep the frozen
// world's effects animating without simulating gameplay.
func (w *World) StepEffects(dt float64) {
	if w.Player == nil {
		return
	}
	w.Elapsed += dt
	w.Shake -= shakeDecayRate * dt
	if w.Shake < 0 {
		w.Shake = 0
	}
	w.updateParticles(dt)
	w.updateTexts(dt)
	w.updateStars(dt)
}

// movePlayer applies directional intent and decays the invincibility window.
func (w *World) movePlayer(dt float64, in Intent) {
	p := w.Player

	mx := physics.Clamp(in.MoveX, -1, 1)
	my := physics.Clamp(in.MoveY, -1, 1)
	p.X = physics.Clamp(p.X+mx*p.Speed*dt, 0, w.Width-p.W)
	p.Y = physics.Clamp(p.Y+my*p.Speed*dt, 0, w.Height-p.H)

	p.Invincible -= dt
	if p.Invincible < 0 {
		p.Invincible = 0
	}
	p.AnimPhase += dt * 10
}

// firePlayer spawns bullets from the ship's nose while fire intent is held
// and the cooldown has elapsed. Level 3 unlocks the two-sided spread.
func (w *World) firePlayer(dt float64, in Intent) {
	t := &w.Tuning
	p := w.Player

	w.fireCooldown -= dt
	if !in.Fire || w.fireCooldown > 0 {
		return
	}
	w.fireCooldown = t.FireCooldown

	nx, ny := p.CenterX(), p.Y
	w.Bullets = append(w.Bullets,
		entity.NewBullet(nx, ny, 0, -t.BulletSpeed, t.BulletRadius, entity.OwnerPlayer, t.BulletDamage))
	if w.Level >= t.SpreadLevel {
		sin, cos := math.Sin(t.SpreadAngle), math.Cos(t.SpreadAngle)
		w.Bullets = append(w.Bullets,
			entity.NewBullet(nx, ny, -sin*t.BulletSpeed, -cos*t.BulletSpeed, t.BulletRadius, entity.OwnerPlayer, t.BulletDamage),
			entity.NewBullet(nx, ny, sin*t.BulletSpeed, -cos*t.BulletSpeed, t.BulletRadius, entity.OwnerPlayer, t.BulletDamage))
	}
	w.Audio.PlayerFired()
}

// updateEnemies advances descent, weave and shooting, in reverse index order
// so in-place removal does not skip elements. Returns true if a body
// collision ended the run.
func (w *World) updateEnemies(dt float64) bool {
	t := &w.Tuning
	p := w.Player

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]

		e.Y += e.VY * dt
		e.X = physics.Clamp(
			e.BaseX+math.Sin(w.Elapsed*e.Freq+e.Phase)*e.Amp,
			0, w.Width-e.W)

		if e.Shoots {
			e.ShootTimer += dt
			if e.ShootTimer >= e.ShootEvery {
				e.ShootTimer = 0
				dir := physics.Vec{X: p.CenterX() - e.CenterX(), Y: p.CenterY() - e.CenterY()}.Normalized()
				spd := t.EnemyBulletBaseSpeed + float64(w.Level)*t.EnemyBulletSpeedPerLevel
				w.Bullets = append(w.Bullets,
					entity.NewBullet(e.CenterX(), e.CenterY(), dir.X*spd, dir.Y*spd,
						t.EnemyBulletRadius, entity.OwnerEnemy, 1))
				w.Audio.EnemyFired()
			}
		}

		if e.Y > w.Height+enemyBottomMargin {
			w.removeEnemy(i)
			continue
		}

		if p.Invincible <= 0 && physics.RectsOverlap(p.X, p.Y, p.W, p.H, e.X, e.Y, e.W, e.H) {
			w.burst(e.CenterX(), e.CenterY(), 18, 140, 3, 0.7, enemyColor(e.Type))
			w.removeEnemy(i)
			if w.damagePlayer() {
				return true
			}
		}
	}
	return false
}

// updateBullets integrates and expires bullets, then resolves collisions:
// player bullets against enemies (at most one enemy per bullet per step,
// first in list order), enemy bullets against the player. n is the bullet
// count snapshot taken before this step spawned anything. Returns true if a
// hit ended the run.
func (w *World) updateBullets(dt float64, n int) bool {
	p := w.Player

	for i := n - 1; i >= 0; i-- {
		b := &w.Bullets[i]

		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Life -= dt
		if b.Life <= 0 ||
			b.X < -bulletMargin || b.X > w.Width+bulletMargin ||
			b.Y < -bulletMargin || b.Y > w.Height+bulletMargin {
			w.removeBullet(i)
			continue
		}

		if b.Owner == entity.OwnerPlayer {
			for j := 0; j < len(w.Enemies); j++ {
				e := &w.Enemies[j]
				if !physics.CircleIntersectsRect(b.X, b.Y, b.R, e.X, e.Y, e.W, e.H) {
					continue
				}
				e.HP -= b.Damage
				w.burst(b.X, b.Y, 4, 70, 1.5, 0.25, colorSpark)
				w.Audio.BulletHit()
				w.removeBullet(i)
				if e.HP <= 0 {
					w.killEnemy(j)
				}
				break
			}
			continue
		}

		if p.Invincible <= 0 &&
			physics.CircleIntersectsRect(b.X, b.Y, b.R, p.X, p.Y, p.W, p.H) {
			w.removeBullet(i)
			w.burst(p.CenterX(), p.CenterY(), 14, 120, 2.5, 0.6, colorPlayer)
			if w.damagePlayer() {
				return true
			}
		}
	}
	return false
}

// killEnemy resolves a kill at enemy index j: scoring, effects, the kill
// counter and the every-12-kills level-up.
func (w *World) killEnemy(j int) {
	t := &w.Tuning
	e := w.Enemies[j]

	gained := e.Points * w.Level
	w.Score += gained
	w.UI.ScoreChanged(w.Score)

	w.burst(e.CenterX(), e.CenterY(), 22, 160, 3.5, 0.8, enemyColor(e.Type))
	w.Audio.EnemyKilled(e.Type == entity.EnemyTank)
	w.Texts = append(w.Texts,
		entity.NewFloatingText(e.CenterX(), e.CenterY(), fmt.Sprintf("+%d", gained), colorScore, 0.9))
	w.removeEnemy(j)

	w.Kills++
	if w.Kills%t.KillsPerLevel == 0 {
		w.Level++
		w.UI.LevelChanged(w.Level)
		w.Audio.LevelUp()
		w.Texts = append(w.Texts,
			entity.NewFloatingText(w.Width/2, w.Height/2, fmt.Sprintf("LEVEL %d!", w.Level), colorLevel, 1.6))
	}
}

// damagePlayer applies one hit: invincibility window, life loss, shake and
// callouts. Returns true when lives reach zero, after firing game-over
// exactly once.
func (w *World) damagePlayer() bool {
	t := &w.Tuning
	p := w.Player

	p.Invincible = t.Invincibility
	w.Lives--
	p.HP = w.Lives
	w.UI.LivesChanged(w.Lives)
	w.Shake += 6
	w.Texts = append(w.Texts,
		entity.NewFloatingText(p.CenterX(), p.Y-10, "HIT!", colorHit, 0.8))
	w.Audio.PlayerDamaged()

	if w.Lives <= 0 {
		w.Playing = false
		w.Audio.GameOver()
		w.UI.GameOver(w.Score)
		return true
	}
	return false
}

// updateParticles integrates drift with exponential drag and radius decay.
func (w *World) updateParticles(dt float64) {
	for i := len(w.Particles) - 1; i >= 0; i-- {
		p := &w.Particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		drag := 1 - 3*dt
		p.VX *= drag
		p.VY *= drag
		p.Life -= dt
		p.R *= 1 - 0.8*dt
		if p.Life <= 0 || p.R <= 0.1 {
			w.removeParticle(i)
			continue
		}
		p.Alpha = p.Life / p.MaxLife
	}
}

// updateTexts raises and expires floating callouts.
func (w *World) updateTexts(dt float64) {
	for i := len(w.Texts) - 1; i >= 0; i-- {
		t := &w.Texts[i]
		t.Life -= dt
		if t.Life <= 0 {
			w.removeText(i)
			continue
		}
		t.Y -= textRiseSpeed * dt
	}
}

// updateStars scrolls the background; the whole field accelerates with
// level. Stars leaving the bottom recycle to a fresh random column at the
// top.
func (w *World) updateStars(dt float64) {
	mult := 30 + float64(w.Level)*2
	for i := range w.Stars {
		s := &w.Stars[i]
		s.Y += s.Speed * mult * dt
		if s.Y > w.Height {
			s.Y = 0
			s.X = w.rng.Float64() * w.Width
		}
	}
}

// burst appends an explosion of particles at (x, y).
func (w *World) burst(x, y float64, count int, speed, radius, lifetime float64, c colorful.Color) {
	w.Particles = append(w.Particles, entity.NewBurst(w.rng, x, y, count, speed, radius, lifetime, c)...)
}

// enemyColor returns the effect tint for an enemy class.
func enemyColor(t entity.EnemyType) colorful.Color {
	switch t {
	case entity.EnemyDart:
		return colorDart
	case entity.EnemyTank:
		return colorTank
	}
	return colorGrunt
}
