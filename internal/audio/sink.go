package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays a synthesized effect for each game event. It satisfies the
// game package's AudioSink. All methods are cheap and non-blocking: they
// only queue a streamer onto the mixer.
//
// An uninitialized Sink is safe to use and silent, so callers can wire it
// unconditionally and let Init fail on machines without an audio device.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSink creates a silent sink; call Init to open the audio device.
func NewSink() *Sink {
	return &Sink{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops all playback.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	speaker.Close()
	s.initialized = false
}

// play queues a one-shot streamer.
func (s *Sink) play(streamer beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayerFired is a short bright zap, pitch falling.
func (s *Sink) PlayerFired() {
	d := 70 * time.Millisecond
	s.play(newEnvelope(newSweep(880, 440, d, WaveSquare, sampleRate),
		d, time.Millisecond, 30*time.Millisecond, 0.12, sampleRate))
}

// EnemyFired is a duller, lower zap so it reads as hostile.
func (s *Sink) EnemyFired() {
	d := 90 * time.Millisecond
	s.play(newEnvelope(newSweep(320, 180, d, WaveSaw, sampleRate),
		d, time.Millisecond, 40*time.Millisecond, 0.1, sampleRate))
}

// BulletHit is a tiny click of noise.
func (s *Sink) BulletHit() {
	d := 50 * time.Millisecond
	s.play(newEnvelope(newOscillator(0, d, WaveNoise, sampleRate),
		d, time.Millisecond, 30*time.Millisecond, 0.1, sampleRate))
}

// EnemyKilled is a noise burst; major kills get longer and louder.
func (s *Sink) EnemyKilled(major bool) {
	d := 200 * time.Millisecond
	gain := 0.16
	if major {
		d = 400 * time.Millisecond
		gain = 0.24
	}
	s.play(newEnvelope(newOscillator(0, d, WaveNoise, sampleRate),
		d, 2*time.Millisecond, d/2, gain, sampleRate))
}

// PlayerDamaged is a harsh low buzz.
func (s *Sink) PlayerDamaged() {
	d := 250 * time.Millisecond
	s.play(newEnvelope(newSweep(140, 60, d, WaveSquare, sampleRate),
		d, 2*time.Millisecond, 100*time.Millisecond, 0.2, sampleRate))
}

// LevelUp is a rising chirp.
func (s *Sink) LevelUp() {
	d := 300 * time.Millisecond
	s.play(newEnvelope(newSweep(440, 1320, d, WaveSine, sampleRate),
		d, 5*time.Millisecond, 120*time.Millisecond, 0.18, sampleRate))
}

// GameOver is a long falling tone.
func (s *Sink) GameOver() {
	d := 900 * time.Millisecond
	s.play(newEnvelope(newSweep(330, 55, d, WaveSaw, sampleRate),
		d, 5*time.Millisecond, 400*time.Millisecond, 0.2, sampleRate))
}
