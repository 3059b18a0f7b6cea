package thumb2

import "testing"

func TestNewRegisterBounds(t *testing.T) {
	r, err := NewRegister(15)
	if err != nil || r != PC {
		t.Errorf("NewRegister(15) = %v, %v; want PC, nil", r, err)
	}
	if _, err := NewRegister(16); err == nil {
		t.Error("NewRegister(16) should fail")
	}
}

func TestRegisterListRoundTrip(t *testing.T) {
	// Property P5: decoding a mask and reconstructing it must round-trip.
	for mask := uint32(0); mask < 1<<16; mask += 37 {
		l, err := NewRegisterList(mask, 16)
		if err != nil {
			t.Fatalf("NewRegisterList(%#x, 16) error: %v", mask, err)
		}
		if l.Mask() != mask {
			t.Errorf("NewRegisterList(%#x).Mask() = %#x", mask, l.Mask())
		}
	}
}

func TestRegisterListEqual(t *testing.T) {
	a, _ := NewRegisterList(0b0000_0000_0000_0101, 16)
	b, _ := NewRegisterList(0b0000_0000_0000_0101, 16)
	if !a.Equal(b) {
		t.Error("identical masks should produce equal lists")
	}
	c, _ := NewRegisterList(0b0000_0000_0000_0110, 16)
	if a.Equal(c) {
		t.Error("different masks should not be equal")
	}
	if !a.Contains(R0) || !a.Contains(R2) || a.Contains(R1) {
		t.Error("Contains did not match the expected membership for mask 0b101")
	}
}

func TestF32F64CoProcessorBounds(t *testing.T) {
	if _, err := NewF32Register(31); err != nil {
		t.Error("NewF32Register(31) should succeed")
	}
	if _, err := NewF32Register(32); err == nil {
		t.Error("NewF32Register(32) should fail")
	}
	if _, err := NewF64Register(15); err != nil {
		t.Error("NewF64Register(15) should succeed")
	}
	if _, err := NewF64Register(16); err == nil {
		t.Error("NewF64Register(16) should fail")
	}
	if _, err := NewCoProcessor(15); err != nil {
		t.Error("NewCoProcessor(15) should succeed")
	}
	if _, err := NewCoProcessor(16); err == nil {
		t.Error("NewCoProcessor(16) should fail")
	}
}
