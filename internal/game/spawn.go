package game

import (
	"math"

	"github.com/mkovar/novastrike/internal/entity"
)

// tickSpawn accumulates the spawn timer and, on trigger, spawns one enemy
// and shrinks the interval toward its floor. The interval never regenerates
// upward: difficulty is monotonic within a run.
func (w *World) tickSpawn(dt float64) {
	t := &w.Tuning

	w.spawnTimer += dt
	if w.spawnTimer < w.spawnInterval {
		return
	}
	w.spawnTimer = 0
	w.spawnEnemy()

	next := w.spawnInterval - float64(w.Level)*t.SpawnShrinkPerLevel
	if next < t.SpawnIntervalFloor {
		next = t.SpawnIntervalFloor
	}
	w.spawnInterval = next
}

// rollEnemyType picks a class with level-weighted probabilities: tank odds
// grow with level, then dart, then grunt as the fallback.
func (w *World) rollEnemyType() entity.EnemyType {
	t := &w.Tuning
	if w.rng.Float64() < t.TankWeightBase+float64(w.Level)*t.TankWeightPerLevel {
		return entity.EnemyTank
	}
	if w.rng.Float64() < t.DartWeight {
		return entity.EnemyDart
	}
	return entity.EnemyGrunt
}

// spawnEnemy creates one enemy just above the top edge at a random column.
// The shoot interval is jittered ±20% and the shoot timer starts at a random
// phase so simultaneous spawns do not volley in sync.
func (w *World) spawnEnemy() {
	typ := w.rollEnemyType()
	stats := w.enemyStats(typ)

	hp := stats.BaseHP + stats.HPPerLevel*(w.Level-1)
	speed := stats.BaseSpeed + stats.SpeedPerLevel*float64(w.Level-1)
	x := w.rng.Float64() * (w.Width - stats.Width)

	e := entity.Enemy{
		X:      x,
		Y:      -stats.Height,
		W:      stats.Width,
		H:      stats.Height,
		VY:     speed,
		HP:     hp,
		MaxHP:  hp,
		Type:   typ,
		Points: stats.Points,
		BaseX:  x,
		Phase:  w.rng.Float64() * 2 * math.Pi,
		Amp:    stats.WeaveAmp,
		Freq:   stats.WeaveFreq,
	}
	if stats.Shoots {
		e.Shoots = true
		e.ShootEvery = stats.ShootEvery * (0.8 + w.rng.Float64()*0.4)
		e.ShootTimer = w.rng.Float64() * e.ShootEvery
	}
	w.Enemies = append(w.Enemies, e)
}

// enemyStats returns the tuning stat table for a class.
func (w *World) enemyStats(typ entity.EnemyType) *EnemyStats {
	switch typ {
	case entity.EnemyDart:
		return &w.Tuning.Dart
	case entity.EnemyTank:
		return &w.Tuning.Tank
	}
	return &w.Tuning.Grunt
}
