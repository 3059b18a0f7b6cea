package thumb2

// ExpandImm12 performs the Thumb expand-imm operation: a 12-bit modified
// immediate constant (as used by data-processing modified-immediate
// encodings) is expanded to a full 32-bit value, along with an optional
// carry-out.
//
// Grounded on ThumbExpandImm_C in the teacher's thumb2_helpers.go (itself
// transcribed from "A5.3.2 Modified immediate constants in Thumb
// instructions" of "ARMv7-M"), restructured as a pure function returning
// (result, carryOut, carryChanged) instead of mutating CPU status flags.
//
// carryChanged is false when bits[11:10] == 0b00, in which case the
// manual's carry_out is defined as "unchanged from input" (spec.md §3); the
// caller is responsible for preserving whatever carry value was already in
// effect.
func ExpandImm12(imm12 uint32) (result uint32, carryOut bool, carryChanged bool) {
	a := mask32(imm12, 10, 11)
	b := mask32(imm12, 8, 9)
	c := mask32(imm12, 0, 7)

	if a == 0 {
		switch b {
		case 0:
			return c, false, false
		case 1:
			return (c << 16) | c, false, false
		case 2:
			return (c << 24) | (c << 8), false, false
		case 3:
			return (c << 24) | (c << 16) | (c << 8) | c, false, false
		}
	}

	rotation := combine32([]uint32{a, mask32(imm12, 7, 7)}, []int{2, 1})
	unrotated := uint32(0b1000_0000) | mask32(imm12, 0, 6)
	rotated := ror32(unrotated, rotation)
	return rotated, mask32(rotated, 31, 31) == 1, true
}

// ror32 rotates a 32-bit value right by shift bits. Grounded on ROR_C in
// the teacher's thumb2_helpers.go, with the carry-out computation split out
// into ExpandImm12 itself (ROR_C's carry bit is always bit 31 of the
// result, which ExpandImm12 computes directly).
func ror32(val uint32, shift uint32) uint32 {
	m := shift % 32
	if m == 0 {
		return val
	}
	return (val >> m) | (val << (32 - m))
}
