// Package input turns a raw terminal byte stream into per-frame intent
// snapshots. Terminals only report key presses, not releases, so each key
// is treated as held for a short window after its last press; that lets
// simultaneous combinations (move + fire) register.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Frame is one frame's merged input: movement intent for the simulation plus
// the meta keys the outer loop cares about. MoveX/MoveY are -1..1; keyboard
// always asserts the full ±1, an analog source may assert any magnitude, and
// any active source wins.
type Frame struct {
	MoveX float64
	MoveY float64
	Fire  bool

	Quit   bool
	Enter  bool
	Escape bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	fire   time.Time
	quit   time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key hold state.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadFrame drains all pending bytes without blocking and returns the
// merged intent snapshot for this frame.
func (s *Stream) ReadFrame() Frame {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	s.parse(buf, now)
	return s.frameAt(now)
}

// Reset clears all key hold state, e.g. when leaving a menu so a held key
// does not leak into gameplay.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// parse updates key timestamps from raw bytes, decoding CSI arrow sequences.
func (s *Stream) parse(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}
		s.applyByte(b, now)
	}
}

// applyByte maps a single key byte onto the hold state.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		s.state.quit = now
	case 'a', 'A', 'h', 'H':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'k', 'K':
		s.state.up = now
	case 's', 'S', 'j', 'J':
		s.state.down = now
	case ' ':
		s.state.fire = now
	case '\n', '\r':
		s.state.enter = now
	case '\x1b':
		s.state.escape = now
	}
}

// frameAt builds the snapshot from hold state. Opposite directions cancel.
func (s *Stream) frameAt(now time.Time) Frame {
	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }

	var f Frame
	if held(s.state.left) {
		f.MoveX -= 1
	}
	if held(s.state.right) {
		f.MoveX += 1
	}
	if held(s.state.up) {
		f.MoveY -= 1
	}
	if held(s.state.down) {
		f.MoveY += 1
	}
	f.Fire = held(s.state.fire)
	f.Quit = held(s.state.quit)
	f.Enter = held(s.state.enter)
	f.Escape = held(s.state.escape)
	return f
}
