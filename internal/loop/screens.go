package loop

import (
	"fmt"

	"github.com/mkovar/novastrike/internal/draw"
)

// drawUI draws the overlay for the current phase on top of the canvas.
func drawUI(s *session, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch s.phase {
	case PhaseStart:
		drawStartScreen(cw, centerX, centerY)
	case PhasePlaying:
		drawPlayingHUD(s, cw, termWidth)
	case PhaseDead:
		drawPlayingHUD(s, cw, termWidth)
		drawDeadScreen(s, cw, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "N O V A S T R I K E"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to launch"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: WASD/Arrows to move, SPACE to fire, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws score, level and remaining lives.
func drawPlayingHUD(s *session, cw *draw.ChunkWriter, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", s.score))

	levelText := fmt.Sprintf("Level %d", s.level)
	cw.WriteAt(termWidth/2-len(levelText)/2, 1, levelText)

	lives := ""
	for i := 0; i < s.lives; i++ {
		lives += "▲ "
	}
	if lives == "" {
		lives = "-"
	}
	cw.WriteAt(termWidth-len([]rune(lives))-1, 1, lives)
}

// drawDeadScreen draws the game-over prompt over the frozen world.
func drawDeadScreen(s *session, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	scoreText := fmt.Sprintf("Final score: %d", s.finalScore)
	cw.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)

	prompt := "Press SPACE to fly again"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
