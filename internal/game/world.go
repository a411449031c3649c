// Package game implements the per-frame world simulation: entity lifecycle,
// collision resolution, scoring and difficulty progression. The World is the
// single mutable aggregate for one run; presentation reads it and must never
// mutate it.
package game

import (
	"math/rand"
	"time"

	"github.com/mkovar/novastrike/internal/entity"
)

// Intent is the per-frame input snapshot. MoveX/MoveY are analog deflections
// in -1..1; digital keys map to the full ±1. Analog magnitude scales speed
// proportionally; diagonal deflection is deliberately not renormalized.
type Intent struct {
	MoveX float64
	MoveY float64
	Fire  bool
}

// World is the authoritative game state for one run. It is owned by a single
// goroutine; Step and Reset must never run concurrently with a reader.
type World struct {
	Width  float64
	Height float64
	Tuning Tuning

	Player    *entity.Player
	Bullets   []entity.Bullet
	Enemies   []entity.Enemy
	Particles []entity.Particle
	Stars     []entity.Star
	Texts     []entity.FloatingText

	Score   int
	Lives   int
	Level   int
	Kills   int // Running kill counter, gates level-ups
	Elapsed float64
	Shake   float64
	Playing bool

	fireCooldown  float64
	spawnTimer    float64
	spawnInterval float64

	rng   *rand.Rand
	UI    UISink
	Audio AudioSink
}

// NewWorld creates an empty world with the given tuning and sinks. Nil sinks
// become nop consumers so every callback is still made. A nil rng gets a
// time-seeded source; tests pass a fixed seed for determinism.
func NewWorld(t Tuning, ui UISink, audio AudioSink, rng *rand.Rand) *World {
	if ui == nil {
		ui = NopUI{}
	}
	if audio == nil {
		audio = NopAudio{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		Tuning: t,
		UI:     ui,
		Audio:  audio,
		rng:    rng,
	}
}

// Reset starts a fresh run in a w×h viewport: player centered near the
// bottom, empty entity collections, score 0, full lives, level 1, a newly
// randomized starfield. Fires the score/lives/level callbacks with their
// initial values.
func (w *World) Reset(width, height float64) {
	t := &w.Tuning

	w.Width = width
	w.Height = height
	w.Player = entity.NewPlayer(width, height, t.PlayerWidth, t.PlayerHeight, t.PlayerSpeed, t.Lives)
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Particles = w.Particles[:0]
	w.Texts = w.Texts[:0]
	w.Stars = entity.NewStarfield(w.rng, t.StarCount, width, height)

	w.Score = 0
	w.Lives = t.Lives
	w.Level = 1
	w.Kills = 0
	w.Elapsed = 0
	w.Shake = 0
	w.Playing = true

	w.fireCooldown = 0
	w.spawnTimer = 0
	w.spawnInterval = t.SpawnInterval

	w.UI.ScoreChanged(w.Score)
	w.UI.LivesChanged(w.Lives)
	w.UI.LevelChanged(w.Level)
}

// removeBullet removes index i preserving order, so a reverse walk neither
// skips nor double-visits elements.
func (w *World) removeBullet(i int) {
	w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
}

func (w *World) removeEnemy(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

func (w *World) removeParticle(i int) {
	w.Particles = append(w.Particles[:i], w.Particles[i+1:]...)
}

func (w *World) removeText(i int) {
	w.Texts = append(w.Texts[:i], w.Texts[i+1:]...)
}
