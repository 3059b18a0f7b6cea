package thumb2

import "testing"

func TestNewShiftKindCorrectedMapping(t *testing.T) {
	cases := []struct {
		v    uint32
		want ShiftKind
	}{
		{0, LSL},
		{1, LSR},
		{2, ASR},
		{3, ROR},
	}
	for _, c := range cases {
		got, err := NewShiftKind(c.v)
		if err != nil {
			t.Fatalf("NewShiftKind(%d) error: %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("NewShiftKind(%d) = %v, want %v", c.v, got, c.want)
		}
	}
	if _, err := NewShiftKind(4); err == nil {
		t.Error("NewShiftKind(4) should fail")
	}
}

// TestImmShiftZeroNormalization is property P6 from spec.md section 8: a
// zero encoded shift amount normalizes per the ARM manual, not per the
// upstream bug that collapsed ASR into LSR.
func TestImmShiftZeroNormalization(t *testing.T) {
	cases := []struct {
		kind   ShiftKind
		amount uint8
		want   ImmShift
	}{
		{LSL, 5, ImmShift{LSL, 5}},
		{LSR, 0, ImmShift{LSR, 32}},
		{ASR, 0, ImmShift{ASR, 32}},
		{ROR, 0, ImmShift{RRX, 1}},
		{ROR, 7, ImmShift{ROR, 7}},
	}
	for _, c := range cases {
		got := NewImmShift(c.kind, c.amount)
		if got != c.want {
			t.Errorf("NewImmShift(%v, %d) = %v, want %v", c.kind, c.amount, got, c.want)
		}
	}
}

func TestDecodeImm3Imm2Shift(t *testing.T) {
	got := decodeImm3Imm2Shift(LSL, 0b011, 0b10)
	want := ImmShift{LSL, 0b01110}
	if got != want {
		t.Errorf("decodeImm3Imm2Shift = %v, want %v", got, want)
	}
}
