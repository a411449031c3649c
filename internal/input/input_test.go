package input

import (
	"testing"
	"time"
)

func TestParseMovementKeys(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("a"), now)
	f := s.frameAt(now)
	if f.MoveX != -1 {
		t.Fatalf("MoveX after 'a' = %f, want -1", f.MoveX)
	}

	s = &Stream{}
	s.parse([]byte("d s"), now)
	f = s.frameAt(now)
	if f.MoveX != 1 || f.MoveY != 1 || !f.Fire {
		t.Fatalf("frame after 'd s' = %+v, want right+down+fire", f)
	}
}

func TestParseArrowSequences(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte{0x1b, '[', 'D', 0x1b, '[', 'A'}, now)
	f := s.frameAt(now)
	if f.MoveX != -1 || f.MoveY != -1 {
		t.Fatalf("frame after left+up arrows = %+v", f)
	}
	// A decoded CSI sequence must not also register as bare escape.
	if f.Escape {
		t.Error("arrow sequence misread as escape key")
	}
}

func TestOppositeDirectionsCancel(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("ad"), now)
	if f := s.frameAt(now); f.MoveX != 0 {
		t.Fatalf("MoveX with both left and right held = %f, want 0", f.MoveX)
	}
}

func TestHoldExpires(t *testing.T) {
	s := &Stream{}
	pressed := time.Now()
	s.parse([]byte("a"), pressed)
	if f := s.frameAt(pressed.Add(keyHoldDuration * 2)); f.MoveX != 0 {
		t.Fatalf("MoveX after hold window = %f, want released", f.MoveX)
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte(" "), now)
	s.Reset()
	if f := s.frameAt(now); f.Fire {
		t.Fatal("fire still held after Reset")
	}
}
