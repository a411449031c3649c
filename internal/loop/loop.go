// Package loop provides the frame driver: the fixed-cadence cycle that
// samples input, advances the simulation by a clamped delta and renders the
// world once per frame.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/mkovar/novastrike/internal/draw"
	"github.com/mkovar/novastrike/internal/game"
	"github.com/mkovar/novastrike/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxDelta caps the simulated time per frame so a stalled terminal or a
// backgrounded session cannot teleport the world forward.
const maxDelta = 0.05

// Logical viewport - the simulation runs in these dimensions and rendering
// scales them to the terminal size.
const (
	viewWidth  = 800.0
	viewHeight = 600.0
)

// Phase is the outer game phase around the simulation.
type Phase int

const (
	PhaseStart   Phase = iota // Title screen
	PhasePlaying              // Active run
	PhaseDead                 // Run over, effects still animating
)

// Options configures a game session.
type Options struct {
	// TermSize reports terminal dimensions; defaults to stdout's size.
	TermSize draw.TermSizeFunc
	// Audio receives sound events; defaults to the silent sink.
	Audio game.AudioSink
	// Tuning overrides the default game balance when non-nil.
	Tuning *game.Tuning
}

// session is one player's game: world, outer phase and HUD mirror.
// It implements game.UISink to track progression callbacks.
type session struct {
	world   *game.World
	phase   Phase
	running bool

	// HUD mirror, fed by the UISink callbacks.
	score      int
	lives      int
	level      int
	finalScore int
}

func (s *session) ScoreChanged(score int) { s.score = score }
func (s *session) LivesChanged(lives int) { s.lives = lives }
func (s *session) LevelChanged(level int) { s.level = level }
func (s *session) GameOver(finalScore int) {
	s.finalScore = finalScore
	s.phase = PhaseDead
}

// Run drives the standard Input → Update → Draw cycle until the player
// quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutTermSize
	}
	if opts.Audio == nil {
		opts.Audio = game.NopAudio{}
	}
	tuning := game.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	s := &session{phase: PhaseStart, running: true}
	s.world = game.NewWorld(tuning, s, opts.Audio, nil)

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer func() {
		draw.ResetStyle(w)
		draw.ShowCursor(w)
	}()
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, viewWidth, viewHeight)
	cw := draw.NewChunkWriter(w, 0, 0)

	lastTime := time.Now()

	for s.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart
		if dt > maxDelta {
			dt = maxDelta
		}

		// ===== INPUT PHASE =====
		frame := stream.ReadFrame()
		if frame.Quit {
			s.running = false
		}

		// Track terminal resizes.
		if tw, th, err := opts.TermSize(); err == nil {
			canvas.Resize(tw, th)
		}

		// ===== UPDATE PHASE =====
		switch s.phase {
		case PhaseStart:
			if frame.Fire || frame.Enter {
				s.start(stream)
			}
		case PhasePlaying:
			s.world.Step(dt, game.Intent{
				MoveX: frame.MoveX,
				MoveY: frame.MoveY,
				Fire:  frame.Fire,
			})
		case PhaseDead:
			s.world.StepEffects(dt)
			if frame.Fire || frame.Enter {
				s.start(stream)
			}
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(s, canvas, cw, w); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// start begins a fresh run. Input hold state is cleared so the key that
// started the run does not leak into gameplay.
func (s *session) start(stream *input.Stream) {
	stream.Reset()
	s.world.Reset(viewWidth, viewHeight)
	s.phase = PhasePlaying
}
