package thumb2

// ShiftKind is the kind of barrel-shifter operation encoded alongside a
// register operand.
type ShiftKind uint8

const (
	LSL ShiftKind = iota
	LSR
	ASR
	RRX
	ROR
)

func (k ShiftKind) String() string {
	switch k {
	case LSL:
		return "LSL"
	case LSR:
		return "LSR"
	case ASR:
		return "ASR"
	case RRX:
		return "RRX"
	case ROR:
		return "ROR"
	default:
		return "?"
	}
}

// NewShiftKind performs the fallible conversion from the raw 2-bit "type"
// field used throughout the data-processing encodings.
//
// The original Rust implementation's Shift::try_from(u8) mapped both 1 and
// 2 to Asr, omitting Lsr entirely (see spec.md §9, "Shift.try_from bug to
// mirror (or fix)"). Per spec.md, this implementation adopts the corrected
// mapping the ARM manual specifies: 0->LSL, 1->LSR, 2->ASR, 3->ROR.
func NewShiftKind(v uint32) (ShiftKind, error) {
	switch v {
	case 0:
		return LSL, nil
	case 1:
		return LSR, nil
	case 2:
		return ASR, nil
	case 3:
		return ROR, nil
	default:
		return 0, errInvalidField("Shift")
	}
}

// ImmShift pairs a shift kind with a shift amount in [1,32].
//
// Construction normalizes the degenerate ARM encodings for a zero shift
// amount. The original Rust implementation's From<(Shift, u8)> sets the
// resulting kind to Lsr for both the (Lsr,0) and (Asr,0) cases; spec.md §9
// ("ImmShift.from((LSR,0))/(ASR,0)") adopts the ARM manual's actual intent
// instead: the kind is preserved (LSR stays LSR, ASR stays ASR) and only
// the amount becomes 32.
type ImmShift struct {
	Kind   ShiftKind
	Amount uint8
}

// NewImmShift builds a normalized ImmShift from a decoded (kind, amount)
// pair, amount being the raw 5-bit encoded shift amount (0..31).
func NewImmShift(kind ShiftKind, amount uint8) ImmShift {
	switch {
	case kind == LSR && amount == 0:
		return ImmShift{Kind: LSR, Amount: 32}
	case kind == ASR && amount == 0:
		return ImmShift{Kind: ASR, Amount: 32}
	case kind == ROR && amount == 0:
		return ImmShift{Kind: RRX, Amount: 1}
	default:
		return ImmShift{Kind: kind, Amount: amount}
	}
}

// decodeImm3Imm2Shift reconstructs a 5-bit shift amount split as
// imm3:imm2 (imm3 the high 3 bits, imm2 the low 2), as used throughout the
// 32-bit data-processing (register) encodings, and feeds it through
// NewImmShift. See spec.md §4.6 "Shift decoding".
func decodeImm3Imm2Shift(kind ShiftKind, imm3, imm2 uint32) ImmShift {
	amount := uint8(combine32([]uint32{imm3, imm2}, []int{3, 2}))
	return NewImmShift(kind, amount)
}
