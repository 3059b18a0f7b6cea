package thumb2

import "testing"

func TestStreamPeekHalfword(t *testing.T) {
	s := NewStream([]byte{0x34, 0x12})
	hw, err := s.PeekHalfword()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hw != 0x1234 {
		t.Errorf("PeekHalfword() = %#x, want 0x1234", hw)
	}
	if s.Remaining() != 1 {
		t.Errorf("PeekHalfword must not consume, Remaining() = %d, want 1", s.Remaining())
	}
}

func TestStreamPeekWordOrder(t *testing.T) {
	// First half-word in stream order becomes the high 16 bits.
	s := NewStreamFromHalfwords([]uint16{0xf04f, 0x0188})
	w, err := s.PeekWord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 0xf04f0188 {
		t.Errorf("PeekWord() = %#x, want 0xf04f0188", w)
	}
}

func TestStreamIncompleteProgramLeavesPositionUnchanged(t *testing.T) {
	s := NewStreamFromHalfwords([]uint16{0xf04f})
	if _, err := s.PeekWord(); err == nil {
		t.Fatal("expected IncompleteProgram error")
	} else if e, ok := err.(*Error); !ok || e.Kind != IncompleteProgram {
		t.Errorf("got %v, want IncompleteProgram", err)
	}
	if s.Remaining() != 1 {
		t.Errorf("failed peek must not consume: Remaining() = %d, want 1", s.Remaining())
	}

	s2 := NewStreamFromHalfwords(nil)
	if _, err := s2.PeekHalfword(); err == nil {
		t.Fatal("expected IncompleteProgram error on empty stream")
	}
}

func TestStreamConsume(t *testing.T) {
	s := NewStreamFromHalfwords([]uint16{0x1111, 0x2222, 0x3333})
	s.Consume(1)
	hw, err := s.PeekHalfword()
	if err != nil || hw != 0x2222 {
		t.Errorf("after Consume(1), PeekHalfword() = %#x, %v; want 0x2222, nil", hw, err)
	}
	s.Consume(2)
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}
