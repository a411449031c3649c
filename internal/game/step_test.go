package game

import (
	"math/rand"
	"testing"

	"github.com/mkovar/novastrike/internal/entity"
)

// recordUI records every UI callback for assertions.
type recordUI struct {
	scores    []int
	lives     []int
	levels    []int
	gameOvers []int
}

func (r *recordUI) ScoreChanged(s int) { r.scores = append(r.scores, s) }
func (r *recordUI) LivesChanged(l int) { r.lives = append(r.lives, l) }
func (r *recordUI) LevelChanged(l int) { r.levels = append(r.levels, l) }
func (r *recordUI) GameOver(s int)     { r.gameOvers = append(r.gameOvers, s) }

// recordAudio counts audio events.
type recordAudio struct {
	fires, enemyFires, hits, kills, bigKills, damages, levelUps, gameOvers int
}

func (r *recordAudio) PlayerFired() { r.fires++ }
func (r *recordAudio) EnemyFired()  { r.enemyFires++ }
func (r *recordAudio) BulletHit()   { r.hits++ }
func (r *recordAudio) EnemyKilled(major bool) {
	r.kills++
	if major {
		r.bigKills++
	}
}
func (r *recordAudio) PlayerDamaged() { r.damages++ }
func (r *recordAudio) LevelUp()       { r.levelUps++ }
func (r *recordAudio) GameOver()      { r.gameOvers++ }

func newTestWorld(t *testing.T) (*World, *recordUI, *recordAudio) {
	t.Helper()
	ui := &recordUI{}
	audio := &recordAudio{}
	w := NewWorld(DefaultTuning(), ui, audio, rand.New(rand.NewSource(1)))
	w.Reset(800, 600)
	return w, ui, audio
}

// testEnemy returns a non-weaving, non-shooting enemy for collision setups.
func testEnemy(x, y float64, hp, points int) entity.Enemy {
	return entity.Enemy{
		X: x, Y: y, W: 34, H: 26,
		HP: hp, MaxHP: hp,
		Points: points,
		BaseX:  x,
	}
}

func TestResetInitialState(t *testing.T) {
	w, ui, _ := newTestWorld(t)

	if w.Lives != 3 || w.Score != 0 || w.Level != 1 {
		t.Fatalf("initial lives/score/level = %d/%d/%d, want 3/0/1", w.Lives, w.Score, w.Level)
	}
	if w.Player == nil {
		t.Fatal("expected a player after Reset")
	}
	if w.Player.X != 380 || w.Player.Y != 480 {
		t.Fatalf("player at (%f, %f), want (380, 480)", w.Player.X, w.Player.Y)
	}
	if len(w.Stars) != 180 {
		t.Fatalf("star count = %d, want 180", len(w.Stars))
	}
	if len(w.Enemies) != 0 || len(w.Bullets) != 0 {
		t.Fatalf("expected empty enemy/bullet collections, got %d/%d", len(w.Enemies), len(w.Bullets))
	}
	if len(ui.scores) != 1 || ui.scores[0] != 0 {
		t.Errorf("ScoreChanged calls = %v, want [0]", ui.scores)
	}
	if len(ui.lives) != 1 || ui.lives[0] != 3 {
		t.Errorf("LivesChanged calls = %v, want [3]", ui.lives)
	}
	if len(ui.levels) != 1 || ui.levels[0] != 1 {
		t.Errorf("LevelChanged calls = %v, want [1]", ui.levels)
	}
}

func TestStepBeforeResetIsNoop(t *testing.T) {
	w := NewWorld(DefaultTuning(), nil, nil, rand.New(rand.NewSource(1)))
	// Must not panic with no player present.
	w.Step(0.016, Intent{MoveX: 1, Fire: true})
	if len(w.Bullets) != 0 {
		t.Fatal("no bullets should spawn before a run starts")
	}
}

func TestPlayerMovementClampedToViewport(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.spawnInterval = 1e9 // Keep the spawn director quiet over long simulated time.

	for i := 0; i < 600; i++ {
		w.Step(0.016, Intent{MoveX: -1})
	}
	if w.Player.X != 0 {
		t.Errorf("player X after holding left = %f, want 0", w.Player.X)
	}
	for i := 0; i < 600; i++ {
		w.Step(0.016, Intent{MoveX: 1, MoveY: 1})
	}
	if w.Player.X != w.Width-w.Player.W {
		t.Errorf("player X after holding right = %f, want %f", w.Player.X, w.Width-w.Player.W)
	}
	if w.Player.Y != w.Height-w.Player.H {
		t.Errorf("player Y after holding down = %f, want %f", w.Player.Y, w.Height-w.Player.H)
	}
}

func TestAnalogIntentScalesSpeed(t *testing.T) {
	w, _, _ := newTestWorld(t)
	x0 := w.Player.X
	w.Step(0.1, Intent{MoveX: 0.5})
	half := w.Player.X - x0

	w.Reset(800, 600)
	x0 = w.Player.X
	w.Step(0.1, Intent{MoveX: 1})
	full := w.Player.X - x0

	if half <= 0 || full <= 0 {
		t.Fatalf("expected rightward movement, got half=%f full=%f", half, full)
	}
	if diff := full - 2*half; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("analog 0.5 moved %f, digital moved %f, want exactly half", half, full)
	}
}

func TestFireCooldownAndSpread(t *testing.T) {
	w, _, audio := newTestWorld(t)

	w.Step(0.016, Intent{Fire: true})
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets after first trigger pull = %d, want 1", len(w.Bullets))
	}
	// Cooldown holds for the next frame.
	w.Step(0.016, Intent{Fire: true})
	if audio.fires != 1 {
		t.Fatalf("fire events within cooldown = %d, want 1", audio.fires)
	}

	// Holding fire for one second lands 1/0.18 ≈ 5 more shots.
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0, Intent{Fire: true})
	}
	if audio.fires < 5 || audio.fires > 7 {
		t.Errorf("fire events after ~1s of held fire = %d, want 5..7", audio.fires)
	}

	// Level 3 unlocks the spread: three bullets per shot.
	w.Reset(800, 600)
	w.Level = 3
	w.Step(0.016, Intent{Fire: true})
	if len(w.Bullets) != 3 {
		t.Errorf("bullets per shot at level 3 = %d, want 3", len(w.Bullets))
	}
}

func TestSpawnTickAddsOneEnemyAndShrinksInterval(t *testing.T) {
	w, _, _ := newTestWorld(t)

	old := w.spawnInterval
	w.Step(old, Intent{})
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies after one full-interval step = %d, want 1", len(w.Enemies))
	}
	want := old - float64(w.Level)*w.Tuning.SpawnShrinkPerLevel
	if w.spawnInterval != want {
		t.Errorf("spawn interval after tick = %f, want %f", w.spawnInterval, want)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	w, _, _ := newTestWorld(t)

	w.spawnInterval = 0.52
	w.tickSpawn(0.52)
	if w.spawnInterval != 0.5 {
		t.Errorf("spawn interval below floor = %f, want clamped to 0.5", w.spawnInterval)
	}
	// And it never regenerates upward.
	w.tickSpawn(0.5)
	if w.spawnInterval != 0.5 {
		t.Errorf("spawn interval regenerated to %f", w.spawnInterval)
	}
}

func TestBulletKillAwardsScore(t *testing.T) {
	w, ui, audio := newTestWorld(t)

	e := testEnemy(100, 100, 1, 10)
	w.Enemies = append(w.Enemies, e)
	w.Bullets = append(w.Bullets,
		entity.NewBullet(e.X+e.W/2, e.Y+e.H/2, 0, 0, 3, entity.OwnerPlayer, 1))

	w.Step(0.001, Intent{})

	if len(w.Enemies) != 0 {
		t.Fatalf("enemy survived a lethal hit, hp=%d", w.Enemies[0].HP)
	}
	if len(w.Bullets) != 0 {
		t.Fatal("bullet survived its hit")
	}
	if w.Score != 10 {
		t.Errorf("score = %d, want 10 (points 10 × level 1)", w.Score)
	}
	if got := ui.scores[len(ui.scores)-1]; got != 10 {
		t.Errorf("last ScoreChanged = %d, want 10", got)
	}
	if audio.hits != 1 || audio.kills != 1 {
		t.Errorf("hit/kill events = %d/%d, want 1/1", audio.hits, audio.kills)
	}
	found := false
	for _, ft := range w.Texts {
		if ft.Text == "+10" {
			found = true
		}
	}
	if !found {
		t.Error("expected a +10 floating text after the kill")
	}
}

func TestScoreMultipliesByLevel(t *testing.T) {
	w, _, audio := newTestWorld(t)
	w.Level = 5

	e := testEnemy(100, 100, 1, 40)
	e.Type = entity.EnemyTank
	w.Enemies = append(w.Enemies, e)
	w.Bullets = append(w.Bullets,
		entity.NewBullet(e.X+1, e.Y+1, 0, 0, 3, entity.OwnerPlayer, 1))

	w.Step(0.001, Intent{})

	if w.Score != 200 {
		t.Errorf("score = %d, want 200 (40 × level 5)", w.Score)
	}
	if audio.bigKills != 1 {
		t.Errorf("major kill events = %d, want 1 for a tank", audio.bigKills)
	}
}

func TestLevelUpEveryTwelveKills(t *testing.T) {
	w, ui, audio := newTestWorld(t)

	for k := 0; k < 24; k++ {
		w.Enemies = w.Enemies[:0]
		w.Bullets = w.Bullets[:0]
		e := testEnemy(100, 100, 1, 10)
		w.Enemies = append(w.Enemies, e)
		w.Bullets = append(w.Bullets,
			entity.NewBullet(e.X+1, e.Y+1, 0, 0, 3, entity.OwnerPlayer, 1))
		w.Step(0.001, Intent{})

		wantLevel := 1 + (k+1)/12
		if w.Level != wantLevel {
			t.Fatalf("level after %d kills = %d, want %d", k+1, w.Level, wantLevel)
		}
	}
	// Reset fired LevelChanged(1); the two level-ups follow.
	if len(ui.levels) != 3 || ui.levels[1] != 2 || ui.levels[2] != 3 {
		t.Errorf("LevelChanged calls = %v, want [1 2 3]", ui.levels)
	}
	if audio.levelUps != 2 {
		t.Errorf("level-up events = %d, want 2", audio.levelUps)
	}
}

func TestBulletHitsAtMostOneEnemy(t *testing.T) {
	w, _, _ := newTestWorld(t)

	w.Enemies = append(w.Enemies, testEnemy(100, 100, 5, 10), testEnemy(100, 100, 5, 10))
	w.Bullets = append(w.Bullets,
		entity.NewBullet(110, 110, 0, 0, 3, entity.OwnerPlayer, 1))

	w.Step(0.001, Intent{})

	if w.Enemies[0].HP != 4 {
		t.Errorf("first enemy hp = %d, want 4", w.Enemies[0].HP)
	}
	if w.Enemies[1].HP != 5 {
		t.Errorf("second enemy hp = %d, want 5 (bullet resolves once)", w.Enemies[1].HP)
	}
	if len(w.Bullets) != 0 {
		t.Error("bullet must be removed after its single hit")
	}
}

func TestEnemyBodyHitDamagesPlayer(t *testing.T) {
	w, ui, audio := newTestWorld(t)
	p := w.Player

	w.Enemies = append(w.Enemies, testEnemy(p.X, p.Y, 3, 10))
	w.Step(0.001, Intent{})

	if w.Lives != 2 {
		t.Fatalf("lives = %d, want 2", w.Lives)
	}
	if p.Invincible != 2.5 {
		t.Errorf("invincibility = %f, want 2.5", p.Invincible)
	}
	if len(w.Enemies) != 0 {
		t.Error("colliding enemy must be removed")
	}
	if audio.damages != 1 {
		t.Errorf("damage events = %d, want 1", audio.damages)
	}
	if got := ui.lives[len(ui.lives)-1]; got != 2 {
		t.Errorf("last LivesChanged = %d, want 2", got)
	}
	if w.Shake <= 0 {
		t.Error("expected screen shake after a hit")
	}
	found := false
	for _, ft := range w.Texts {
		if ft.Text == "HIT!" {
			found = true
		}
	}
	if !found {
		t.Error("expected a HIT! floating text")
	}
}

func TestInvincibilityBlocksAllDamage(t *testing.T) {
	w, _, audio := newTestWorld(t)
	p := w.Player
	p.Invincible = 2.5

	w.Enemies = append(w.Enemies, testEnemy(p.X, p.Y, 3, 10))
	w.Bullets = append(w.Bullets,
		entity.NewBullet(p.CenterX(), p.CenterY(), 0, 0, 4, entity.OwnerEnemy, 1))

	w.Step(0.001, Intent{})

	if w.Lives != 3 {
		t.Fatalf("lives = %d, want 3 while invincible", w.Lives)
	}
	if audio.damages != 0 {
		t.Errorf("damage events while invincible = %d, want 0", audio.damages)
	}
	if len(w.Enemies) != 1 {
		t.Error("enemy must survive a blocked body collision")
	}
	if len(w.Bullets) != 1 {
		t.Error("enemy bullet must pass through an invincible player")
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w, _, _ := newTestWorld(t)
	p := w.Player

	w.Bullets = append(w.Bullets,
		entity.NewBullet(p.CenterX(), p.CenterY(), 0, 0, 4, entity.OwnerEnemy, 1))
	w.Step(0.001, Intent{})

	if w.Lives != 2 {
		t.Fatalf("lives = %d, want 2 after enemy bullet hit", w.Lives)
	}
	if len(w.Bullets) != 0 {
		t.Error("enemy bullet must be removed on hit")
	}
}

func TestGameOverFiresExactlyOnce(t *testing.T) {
	w, ui, audio := newTestWorld(t)
	w.Lives = 1
	w.Score = 70
	p := w.Player

	w.Enemies = append(w.Enemies, testEnemy(p.X, p.Y, 3, 10))
	w.Step(0.001, Intent{})

	if w.Lives != 0 {
		t.Fatalf("lives = %d, want 0", w.Lives)
	}
	if w.Playing {
		t.Fatal("world must stop playing on game over")
	}
	if len(ui.gameOvers) != 1 || ui.gameOvers[0] != 70 {
		t.Fatalf("GameOver calls = %v, want [70]", ui.gameOvers)
	}
	if audio.gameOvers != 1 {
		t.Errorf("game-over audio events = %d, want 1", audio.gameOvers)
	}

	// Further steps are frozen and never re-fire the notification.
	for i := 0; i < 10; i++ {
		w.Step(0.016, Intent{Fire: true})
	}
	if len(ui.gameOvers) != 1 {
		t.Errorf("GameOver fired %d times, want exactly once", len(ui.gameOvers))
	}
	if len(w.Bullets) != 0 {
		t.Error("no bullets may spawn after game over")
	}
}

func TestGameOverFreezesStepMidFrame(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Lives = 1
	p := w.Player

	// A colliding enemy ends the run in the enemy phase; the particle burst
	// it spawns must not be advanced by the later particle phase this frame.
	w.Enemies = append(w.Enemies, testEnemy(p.X, p.Y, 3, 10))
	w.Step(0.001, Intent{})

	if len(w.Particles) == 0 {
		t.Fatal("expected explosion particles from the fatal collision")
	}
	for _, part := range w.Particles {
		if part.Life != part.MaxLife {
			t.Fatal("particles must not be stepped after the early game-over return")
		}
	}
}

func TestNewBulletsAreNotResolvedSameStep(t *testing.T) {
	w, _, _ := newTestWorld(t)
	p := w.Player
	p.Invincible = 10 // Keep the overlapping enemy from resolving a body hit.

	// Enemy parked right on the ship's nose, where new bullets appear.
	e := testEnemy(p.CenterX()-17, p.Y-13, 5, 10)
	w.Enemies = append(w.Enemies, e)

	w.Step(0.001, Intent{Fire: true})

	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.Bullets))
	}
	if w.Enemies[0].HP != 5 {
		t.Fatal("a bullet spawned this step must not hit until next step")
	}
	if w.Bullets[0].Life != entity.BulletLifetime {
		t.Fatal("a bullet spawned this step must not age this step")
	}

	w.Step(0.001, Intent{})
	if w.Enemies[0].HP != 4 {
		t.Fatalf("enemy hp after next step = %d, want 4", w.Enemies[0].HP)
	}
}

func TestBulletExpiryAndBounds(t *testing.T) {
	w, _, _ := newTestWorld(t)

	b := entity.NewBullet(400, 300, 0, 0, 3, entity.OwnerPlayer, 1)
	b.Life = 0.1
	w.Bullets = append(w.Bullets, b)
	w.Step(0.2, Intent{})
	if len(w.Bullets) != 0 {
		t.Error("bullet must expire when lifetime runs out")
	}

	w.Bullets = append(w.Bullets, entity.NewBullet(400, -25, 0, 0, 3, entity.OwnerPlayer, 1))
	w.Step(0.001, Intent{})
	if len(w.Bullets) != 0 {
		t.Error("bullet past the 20px margin must be removed")
	}
}

func TestEnemyRemovedBelowViewport(t *testing.T) {
	w, _, _ := newTestWorld(t)

	e := testEnemy(100, w.Height+61, 3, 10)
	w.Enemies = append(w.Enemies, e)
	w.Step(0.001, Intent{})
	if len(w.Enemies) != 0 {
		t.Error("enemy past the bottom margin must be removed")
	}
}

func TestParticleAndTextLifecycle(t *testing.T) {
	w, _, _ := newTestWorld(t)

	w.burst(400, 300, 10, 100, 3, 0.5, colorSpark)
	w.Texts = append(w.Texts, entity.NewFloatingText(400, 300, "+10", colorScore, 0.5))

	y0 := w.Texts[0].Y
	w.Step(0.1, Intent{})
	if len(w.Particles) == 0 || len(w.Texts) == 0 {
		t.Fatal("effects should survive a short step")
	}
	if w.Texts[0].Y >= y0 {
		t.Error("floating text must rise")
	}
	if a := w.Particles[0].Alpha; a <= 0 || a >= 1 {
		t.Errorf("particle alpha = %f, want in (0, 1) after aging", a)
	}

	// Total elapsed time beyond every initial lifetime clears both.
	for i := 0; i < 60; i++ {
		w.Step(0.05, Intent{})
	}
	if len(w.Particles) != 0 {
		t.Errorf("particles remaining after lifetimes elapsed: %d", len(w.Particles))
	}
	if len(w.Texts) != 0 {
		t.Errorf("texts remaining after lifetimes elapsed: %d", len(w.Texts))
	}
}

func TestStarfieldRecycles(t *testing.T) {
	w, _, _ := newTestWorld(t)

	w.Stars[0].Y = w.Height - 0.01
	w.Stars[0].Speed = 1
	w.Step(0.05, Intent{})

	if len(w.Stars) != 180 {
		t.Fatalf("star population changed to %d", len(w.Stars))
	}
	s := w.Stars[0]
	if s.Y != 0 {
		t.Errorf("recycled star Y = %f, want 0", s.Y)
	}
	if s.X < 0 || s.X > w.Width {
		t.Errorf("recycled star X = %f, want within viewport", s.X)
	}
}

func TestShakeDecaysToZero(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Shake = 5
	for i := 0; i < 60; i++ {
		w.Step(0.016, Intent{})
	}
	if w.Shake != 0 {
		t.Errorf("shake = %f, want fully decayed to 0", w.Shake)
	}
}

func TestInvincibilityCountsDownAndClamps(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.Player.Invincible = 0.05
	w.Step(0.016, Intent{})
	if w.Player.Invincible >= 0.05 {
		t.Error("invincibility must count down")
	}
	w.Step(0.1, Intent{})
	if w.Player.Invincible != 0 {
		t.Errorf("invincibility = %f, want clamped at 0", w.Player.Invincible)
	}
}
