package game

// UISink receives progression callbacks from the simulation. Calls are
// synchronous, on the stepping goroutine, at most once per event per step.
type UISink interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	LevelChanged(level int)
	GameOver(finalScore int)
}

// AudioSink receives fire-and-forget sound event notifications. The
// simulation never blocks on these; implementations must return promptly.
type AudioSink interface {
	PlayerFired()
	EnemyFired()
	BulletHit()
	// EnemyKilled is called once per kill; major is true for tank-class kills.
	EnemyKilled(major bool)
	PlayerDamaged()
	LevelUp()
	GameOver()
}

// NopUI discards all UI callbacks. Used when no consumer is attached so the
// engine still makes every call.
type NopUI struct{}

func (NopUI) ScoreChanged(int) {}
func (NopUI) LivesChanged(int) {}
func (NopUI) LevelChanged(int) {}
func (NopUI) GameOver(int)     {}

// NopAudio discards all audio events.
type NopAudio struct{}

func (NopAudio) PlayerFired()      {}
func (NopAudio) EnemyFired()       {}
func (NopAudio) BulletHit()        {}
func (NopAudio) EnemyKilled(bool)  {}
func (NopAudio) PlayerDamaged()    {}
func (NopAudio) LevelUp()          {}
func (NopAudio) GameOver()         {}
