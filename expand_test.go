package thumb2

import "testing"

func TestExpandImm12NoRotation(t *testing.T) {
	cases := []struct {
		imm12 uint32
		want  uint32
	}{
		{0b00_00_00000001, 0x01},
		{0b00_01_00000001, 0x00010001},
		{0b00_10_00000001, 0x01000100},
		{0b00_11_00000001, 0x01010101},
	}
	for _, c := range cases {
		got, _, changed := ExpandImm12(c.imm12)
		if got != c.want {
			t.Errorf("ExpandImm12(%#x) = %#x, want %#x", c.imm12, got, c.want)
		}
		if changed {
			t.Errorf("ExpandImm12(%#x): carry should be unchanged when bits[11:10]==0", c.imm12)
		}
	}
}

// TestStitchImm12WorkedExample checks the bit-stitching scenario from
// spec.md section 8: i=1, imm3=001, imm8=10001000 stitches to the raw
// 12-bit field 0b1_001_10001000 == 0x988, as used directly (zero-extended,
// not Thumb-expanded) by encodings such as ADD{W}(immediate) T4/ADR T3.
func TestStitchImm12WorkedExample(t *testing.T) {
	imm12 := combine32([]uint32{1, 0b001, 0b10001000}, []int{1, 3, 8})
	if imm12 != 0x988 {
		t.Errorf("combine32(i,imm3,imm8) = %#x, want 0x988", imm12)
	}
}

// TestExpandImm12CarryMatchesBit31 is property P3 from spec.md section 8:
// for bits[11:10] != 0, bit 31 of the result equals the reported carry-out.
func TestExpandImm12CarryMatchesBit31(t *testing.T) {
	for imm12 := uint32(0); imm12 < 1<<12; imm12++ {
		if mask32(imm12, 10, 11) == 0 {
			continue
		}
		got, carryOut, changed := ExpandImm12(imm12)
		if !changed {
			t.Fatalf("ExpandImm12(%#x): expected carry to change", imm12)
		}
		wantCarry := mask32(got, 31, 31) == 1
		if carryOut != wantCarry {
			t.Errorf("ExpandImm12(%#x): carryOut=%v, bit31=%v", imm12, carryOut, wantCarry)
		}
	}
}

func TestRor32(t *testing.T) {
	if got := ror32(0x1, 1); got != 0x80000000 {
		t.Errorf("ror32(0x1, 1) = %#x, want 0x80000000", got)
	}
	if got := ror32(0x80000000, 0); got != 0x80000000 {
		t.Errorf("ror32(x, 0) should be identity, got %#x", got)
	}
}
