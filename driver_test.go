package thumb2

import "testing"

func TestIs32BitThumbClassification(t *testing.T) {
	cases := []struct {
		hw   uint16
		want bool
	}{
		{0x2001, false},   // MOV r0, #1 - 16-bit
		{0x4601, false},   // MOV r1, r0 - 16-bit
		{0xf04f, true},    // first half of a 32-bit data-processing
		{0xe92d, true},    // first half of STMDB (push-like), 0b11101
		{0xf7ff, true},    // first half of BL, 0b11110/11111
		{0xbf00, false},   // NOP (hint), 16-bit
	}
	for _, c := range cases {
		if got := is32BitThumb(c.hw); got != c.want {
			t.Errorf("is32BitThumb(%#04x) = %v, want %v", c.hw, got, c.want)
		}
	}
}

func TestNextOperationMovImmediate(t *testing.T) {
	// MOV r0, #1 -> 0010 0 000 00000001 = 0x2001
	s := NewStreamFromHalfwords([]uint16{0x2001})
	n, op, err := NextOperation(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("consumed = %d, want 1", n)
	}
	mov, ok := op.(MovImmediate)
	if !ok {
		t.Fatalf("op = %T, want MovImmediate", op)
	}
	if mov.Rd != R0 || mov.Imm8.Value != 1 {
		t.Errorf("got %+v, want Rd=R0 Imm8=1", mov)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}

func TestNextOperationLslImmediate(t *testing.T) {
	// LSL r1, r2, #3: 000 00 00011 010 001 = opcode bits [15:11]=00000,
	// imm5=00011, Rm=010(r2), Rd=001(r1) -> 0x00D1
	hw := uint16(0b00000_00011_010_001)
	s := NewStreamFromHalfwords([]uint16{hw})
	_, op, err := NextOperation(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lsl, ok := op.(Lsl)
	if !ok {
		t.Fatalf("op = %T, want Lsl", op)
	}
	if lsl.Rd != R1 || lsl.Rm != R2 || lsl.Imm.Amount != 3 {
		t.Errorf("got %+v, want Rd=R1 Rm=R2 Amount=3", lsl)
	}
	if lsl.SetFlags != InITBlock(false) {
		t.Errorf("SetFlags = %+v, want InITBlock(false)", lsl.SetFlags)
	}
}

func TestNextOperationDoesNotConsumeOnError(t *testing.T) {
	// An empty stream must fail without panicking and without moving pos.
	s := NewStreamFromHalfwords(nil)
	if _, _, err := NextOperation(s); err == nil {
		t.Fatal("expected error on empty stream")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}

	// A 32-bit leader half-word with nothing following must fail as
	// IncompleteProgram and leave the stream untouched.
	s2 := NewStreamFromHalfwords([]uint16{0xf04f})
	before := s2.Remaining()
	if _, _, err := NextOperation(s2); err == nil {
		t.Fatal("expected IncompleteProgram error")
	}
	if s2.Remaining() != before {
		t.Errorf("Remaining() changed after failing decode: %d != %d", s2.Remaining(), before)
	}
}

func TestNextOperationAddImmediateT4WorkedExample(t *testing.T) {
	// spec.md section 8 scenario 3, literal bytes 0x02 0xF6 0x88 0x11: the
	// two little-endian halfwords are 0xF602 then 0x1188. i=1, imm3=001,
	// imm8=10001000, op=0b00000 (ADDW), Rn=R2, Rd=R1; imm12 stitches to
	// 0x988 and is used directly (not Thumb-expanded).
	s := NewStreamFromHalfwords([]uint16{0xf602, 0x1188})
	_, op, err := NextOperation(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	add, ok := op.(AddImmediate)
	if !ok {
		t.Fatalf("op = %T, want AddImmediate", op)
	}
	if add.Imm.Value != 0x988 {
		t.Errorf("Imm = %#x, want 0x988", add.Imm.Value)
	}
	if add.Rd != R1 || add.Rn != R2 {
		t.Errorf("Rd/Rn = %v/%v, want R1/R2", add.Rd, add.Rn)
	}
}

func TestNextOperationAndRegisterWorkedExample(t *testing.T) {
	// spec.md section 8 scenario 5, bytes 0xEA01 0x0003: AND (register) T2,
	// S=0, Rn=R1, Rm=R3, no shift, Rd field 0000 (R0, not the 1111 that
	// would signal TST).
	s := NewStreamFromHalfwords([]uint16{0xea01, 0x0003})
	_, op, err := NextOperation(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, ok := op.(AndRegister)
	if !ok {
		t.Fatalf("op = %T, want AndRegister", op)
	}
	if and.S != Literal(false) {
		t.Errorf("S = %+v, want Literal(false)", and.S)
	}
	if and.Rd == nil || *and.Rd != R0 {
		t.Errorf("Rd = %v, want &R0", and.Rd)
	}
	if and.Rn != R1 || and.Rm != R3 {
		t.Errorf("Rn/Rm = %v/%v, want R1/R3", and.Rn, and.Rm)
	}
	if and.Shift != nil {
		t.Errorf("Shift = %+v, want nil", and.Shift)
	}
}

func TestNextOperationDataProcessingShiftedRegisterInvalidOpcode(t *testing.T) {
	// spec.md section 8 scenario 6, bytes 0xDF 0xEA 0x2F 0x8F -> halfwords
	// 0xEADF, 0x8F2F: op2's top bits select the shifted-register table
	// (A5_22), but the inner opcode (PKH, 0b0110) with Rn=1111 is not one
	// of the ALU operations this decoder maps, so it must fail exactly as
	// Invalid32Bit("A5_22") rather than falling through to a different
	// table's tag.
	s := NewStreamFromHalfwords([]uint16{0xeadf, 0x8f2f})
	if _, _, err := NextOperation(s); err == nil {
		t.Fatal("expected error")
	} else if ae, ok := err.(*Error); !ok || ae.Table != "A5_22" {
		t.Errorf("err = %v, want Invalid32Bit(\"A5_22\")", err)
	}
}
