package thumb2

// ImmN wraps an unsigned integer with a declared bit width,
// guaranteeing val < 2^N. Width is stored alongside the value so
// SignExtend can be generic over the caller's choice of N (Go has no
// const-generic integer parameter equivalent to the original Rust
// implementation's imm!/signextend! macros in arch/src/wrapper_types.rs,
// so the width travels with the value instead of being baked into a
// distinct type per width).
type ImmN struct {
	Value uint32
	Width int
}

// NewImmN builds a bounded immediate, failing if value does not fit in
// width bits.
func NewImmN(value uint32, width int) (ImmN, error) {
	if width <= 0 || width > 32 {
		return ImmN{}, errInvalidField("ImmN width")
	}
	if value >= uint32(1)<<uint(width) {
		return ImmN{}, errInvalidField("Immediate")
	}
	return ImmN{Value: value, Width: width}, nil
}

// SignExtend sign-extends the immediate to a full 32-bit signed value,
// treating bit (Width-1) as the sign bit. Grounded on
// arch/src/wrapper_types.rs's sign_extend function.
func (i ImmN) SignExtend() int32 {
	return signExtend(i.Value, i.Width)
}

// SignExtendUnsigned is the unsigned-result form of SignExtend (the bit
// pattern is identical; only the Go type differs), matching
// arch/src/wrapper_types.rs's sign_extend_u32.
func (i ImmN) SignExtendUnsigned() uint32 {
	return signExtendU32(i.Value, i.Width)
}

// signExtend sign-extends the low `width` bits of val to a 32-bit signed
// integer, bit (width-1) being the sign bit. This is property P4 in
// spec.md §8.
func signExtend(val uint32, width int) int32 {
	return int32(signExtendU32(val, width))
}

func signExtendU32(val uint32, width int) uint32 {
	if width <= 0 || width >= 32 {
		return val
	}
	signBit := uint32(1) << uint(width-1)
	if val&signBit == 0 {
		return val
	}
	mask := ^uint32(0) << uint(width)
	return mask | val
}
