package thumb2

// decode32 attempts to decode a single 32-bit Thumb-2 instruction from a
// word already assembled by Stream.PeekWord (first half-word in bits
// [31:16]), dispatching by op1/op2/op on A5.10 onward, grounded on the
// top-level dispatch in the teacher's decode32bitThumb2 (thumb2_32bit.go).
func decode32(word uint32) (Operation, error) {
	op1 := mask32(word, 27, 28)
	op2 := mask32(word, 20, 26)
	op := mask32(word, 15, 15)

	// Dispatch grounded on the real top-level bit tests in the original
	// implementation's asm/b32.rs::parse_internal, cross-verified against
	// spec.md section 8's worked examples 5 and 6 (both must route through
	// the (op2>>5)==1 test into the shifted-register table, tagged A5_22
	// per spec.md section 4.6, regardless of what original_source's own
	// per-file naming calls the equivalent table).
	switch op1 {
	case 0b01:
		switch {
		case mask32(op2, 2, 6)&0b11001 == 0b00000:
			return decodeLoadStoreMultiple(word)
		case mask32(op2, 2, 6)&0b11001 == 0b00001:
			return decodeLoadStoreDual(word)
		case mask32(op2, 5, 6) == 0b01:
			return decodeDataProcessingShiftedRegister(word)
		case mask32(op2, 6, 6) == 1:
			return decodeCoprocessor(word)
		}
	case 0b10:
		if op == 1 {
			return decodeBranchAndMisc(word)
		}
		if mask32(op2, 5, 5) == 0 {
			return decodeDataProcessingModifiedImmediate(word)
		}
		return decodeDataProcessingPlainImmediate(word)
	case 0b11:
		switch {
		case mask32(op2, 5, 6) == 0b00 && mask32(op2, 0, 2) != 0b111:
			return decodeLoadStoreSingle(word)
		case mask32(op2, 4, 6) == 0b010:
			return decodeDataProcessingRegister(word)
		case mask32(op2, 3, 6) == 0b0110:
			return decodeMultiply(word)
		case mask32(op2, 3, 6) == 0b0111:
			return decodeLongMultiply(word)
		case mask32(op2, 6, 6) == 1:
			return decodeCoprocessor(word)
		}
	}
	return nil, errInvalid32Bit("A5_10")
}

// decodeDataProcessingModifiedImmediate covers A5.10: 32-bit ALU ops whose
// second operand is a Thumb-expanded 12-bit modified immediate, grounded
// on ThumbExpandImm_C (thumb2_helpers.go) via this package's ExpandImm12.
func decodeDataProcessingModifiedImmediate(word uint32) (Operation, error) {
	opField := mask32(word, 21, 24)
	s := mask32(word, 20, 20) == 1
	rn := mask32(word, 16, 19)
	rd := mask32(word, 8, 11)
	i := mask32(word, 26, 26)
	imm3 := mask32(word, 12, 14)
	imm8 := mask32(word, 0, 7)
	imm12 := combine32([]uint32{i, imm3, imm8}, []int{1, 3, 8})

	opcode, ok := modifiedImmediateOpcode(opField)
	if !ok {
		return nil, errInvalid32Bit("A5_10")
	}

	rdReg, err := NewRegister(rd)
	if err != nil {
		return nil, err
	}
	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}

	expanded, carryOut, _ := ExpandImm12(imm12)
	return DataProcessingModifiedImmediate{
		Opcode:   opcode,
		Rd:       rdReg,
		Rn:       rnReg,
		SetFlags: Literal(s),
		Imm:      expanded,
		CarryOut: carryOut,
	}, nil
}

func modifiedImmediateOpcode(op uint32) (DataProcessingModifiedImmediateOpcode, bool) {
	switch op {
	case 0b0000:
		return MAnd, true
	case 0b0001:
		return MBic, true
	case 0b0010:
		return MOrr, true
	case 0b0011:
		return MOrn, true
	case 0b0100:
		return MEor, true
	case 0b1000:
		return MAdd, true
	case 0b1010:
		return MAdc, true
	case 0b1011:
		return MSbc, true
	case 0b1101:
		return MSub, true
	case 0b1110:
		return MRsb, true
	}
	return 0, false
}

// decodeDataProcessingPlainImmediate covers the A5.10 "data-processing
// (plain binary immediate)" sibling table (A5.12): ADD{W}/SUB{W} and
// similar forms that take a literal 12-bit value rather than a
// Thumb-expanded one. Grounded on the worked example in spec.md section 8.
func decodeDataProcessingPlainImmediate(word uint32) (Operation, error) {
	op := mask32(word, 20, 24)
	rn := mask32(word, 16, 19)
	rd := mask32(word, 8, 11)
	i := mask32(word, 26, 26)
	imm3 := mask32(word, 12, 14)
	imm8 := mask32(word, 0, 7)
	imm12 := combine32([]uint32{i, imm3, imm8}, []int{1, 3, 8})

	rdReg, err := NewRegister(rd)
	if err != nil {
		return nil, err
	}
	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	immN, err := NewImmN(imm12, 12)
	if err != nil {
		return nil, err
	}

	switch op {
	case 0b00000:
		return AddImmediate{Rd: rdReg, Rn: rnReg, Imm: immN}, nil
	default:
		return nil, errInvalid32Bit("A5_12")
	}
}

// decodeBranchAndMisc covers the A5.23 "Branches and miscellaneous
// control" table, limited here to BL T1 and the 32-bit conditional B T3
// form; the unconditional B T4 form is not decoded and returns
// Invalid32Bit("A5_23"). Grounded on the teacher's branch-offset stitching
// in thumb2_32bit.go and on spec.md section 4.7's J1/J2 description.
func decodeBranchAndMisc(word uint32) (Operation, error) {
	op := mask32(word, 20, 26)
	op1 := mask32(word, 12, 14)
	s := mask32(word, 26, 26)
	j1 := mask32(word, 13, 13)
	j2 := mask32(word, 11, 11)

	if op1&0b101 == 0b101 {
		i1 := ^(j1 ^ s) & 1
		i2 := ^(j2 ^ s) & 1
		imm10 := mask32(word, 16, 25)
		imm11 := mask32(word, 0, 10)
		imm := combine32([]uint32{s, i1, i2, imm10, imm11}, []int{1, 1, 1, 10, 11})
		immN, err := NewImmN(imm, 24)
		if err != nil {
			return nil, err
		}
		return BlImmediate{Imm: immN}, nil
	}

	if op1&0b101 == 0b000 && mask32(op, 3, 5) != 0b111 {
		cond := mask32(op, 2, 5)
		imm6 := mask32(word, 16, 21)
		imm11 := mask32(word, 0, 10)
		imm := combine32([]uint32{s, j2, j1, imm6, imm11}, []int{1, 1, 1, 6, 11})
		condEnum, err := NewCondition(cond)
		if err != nil {
			return nil, err
		}
		immN, err := NewImmN(imm, 20)
		if err != nil {
			return nil, err
		}
		return BImmediate{Cond: condEnum, Imm: immN}, nil
	}

	return nil, errInvalid32Bit("A5_23")
}

// decodeLoadStoreMultiple covers LDM/STM (and their IA/DB addressing-mode
// forms), grounded on the register-list and P:M:W field layout in the
// original implementation's asm/b32/a5_14.rs sibling tables and on the
// teacher's register-list stitching in its push/pop handling.
func decodeLoadStoreMultiple(word uint32) (Operation, error) {
	incrementBefore := mask32(word, 23, 24) == 0b10
	if !incrementBefore && mask32(word, 23, 24) != 0b01 {
		return nil, errInvalid32Bit("A5_14")
	}
	isLoad := mask32(word, 20, 20) == 1
	wback := mask32(word, 21, 21) == 1
	rn := mask32(word, 16, 19)
	p := mask32(word, 15, 15)
	m := mask32(word, 14, 14)
	listLo := mask32(word, 0, 12)

	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	// Bit 15 (P) names PC (LDM only), bit 14 (M) names LR, bits 12..0 name
	// R0..R12 directly; bit 13 is reserved and always 0.
	mask := (m << 14) | listLo
	if isLoad {
		mask |= p << 15
	}
	regs, err := NewRegisterList(mask, 16)
	if err != nil {
		return nil, err
	}
	return LoadStoreMultiple{
		Rn:              rnReg,
		Registers:       regs,
		IsLoad:          isLoad,
		IncrementBefore: incrementBefore,
		Wback:           wback,
	}, nil
}

// decodeLoadStoreDual covers LDRD/STRD (immediate) and TBB/TBH, grounded
// on the shared A5.17 field layout (P:U:1:W:L op bits in bits 24..20, and
// op1==0b00, op2==0b01 selecting the TBB/TBH table-branch sub-form) per the
// bit-test structure in the original implementation's asm/b32.rs. Rn is
// not inspected: Rn==1111 is returned as Rn=PC, not as a separate
// PC-relative literal form.
func decodeLoadStoreDual(word uint32) (Operation, error) {
	op1 := mask32(word, 23, 24)
	op2 := mask32(word, 20, 21)
	rn := mask32(word, 16, 19)
	rt := mask32(word, 12, 15)
	rt2 := mask32(word, 8, 11)
	imm8 := mask32(word, 0, 7)

	if op1 == 0b00 && op2 == 0b01 {
		if mask32(word, 5, 7) != 0 {
			return nil, errUndefined("TBB/TBH bits 7:5 must be 0")
		}
		rnReg, err := NewRegister(rn)
		if err != nil {
			return nil, err
		}
		rmReg, err := NewRegister(mask32(word, 0, 3))
		if err != nil {
			return nil, err
		}
		return TableBranch{Rn: rnReg, Rm: rmReg, Halfword: bit32(word, 4)}, nil
	}

	index := bit32(word, 24)
	wback := bit32(word, 21)
	add := bit32(word, 23)
	isLoad := bit32(word, 20)

	if op2&0b01 == 0 && op1&0b01 == 0 {
		return nil, errInvalid32Bit("A5_16")
	}

	rtReg, err := NewRegister(rt)
	if err != nil {
		return nil, err
	}
	rt2Reg, err := NewRegister(rt2)
	if err != nil {
		return nil, err
	}
	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	immN, err := NewImmN(imm8<<2, 10)
	if err != nil {
		return nil, err
	}
	return LoadStoreDual{
		Rt: rtReg, Rt2: rt2Reg, Rn: rnReg,
		Imm: immN, IsLoad: isLoad, Index: index, Add: add, Wback: wback,
	}, nil
}

// decodeDataProcessingShiftedRegister covers A5_22: AND/TST, BIC, ORR/MOV
// (shifted-register), ORN/MVN, EOR/TEQ, ADD/CMN, ADC, SBC, SUB/CMP, RSB
// with a register-and-shift second operand, sharing the same 4-bit opcode
// space as A5.10's modified-immediate sibling table. The opcode values
// that have no shifted-register counterpart (e.g. the PKH/SEL/SADD family
// that actually lives at opcode values this decoder doesn't map) fall
// through to Invalid32Bit("A5_22"), matching spec.md section 8's worked
// example 6.
func decodeDataProcessingShiftedRegister(word uint32) (Operation, error) {
	opField := mask32(word, 21, 24)
	s := mask32(word, 20, 20) == 1
	rn := mask32(word, 16, 19)
	rd := mask32(word, 8, 11)
	imm3 := mask32(word, 12, 14)
	imm2 := mask32(word, 6, 7)
	typ := mask32(word, 4, 5)
	rm := mask32(word, 0, 3)

	shiftKind, err := NewShiftKind(typ)
	if err != nil {
		return nil, err
	}
	shift := decodeImm3Imm2Shift(shiftKind, imm3, imm2)
	var shiftPtr *ImmShift
	if shift.Kind != LSL || shift.Amount != 0 {
		shiftPtr = &shift
	}

	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	rmReg, err := NewRegister(rm)
	if err != nil {
		return nil, err
	}
	var rdPtr *Register
	if rd != 0b1111 {
		r, err := NewRegister(rd)
		if err != nil {
			return nil, err
		}
		rdPtr = &r
	}

	if opField == 0b0000 {
		return AndRegister{S: Literal(s), Rd: rdPtr, Rn: rnReg, Rm: rmReg, Shift: shiftPtr}, nil
	}

	opcode, ok := modifiedImmediateOpcode(opField)
	if !ok {
		return nil, errInvalid32Bit("A5_22")
	}
	return DataProcessingShiftedRegister{
		Opcode: opcode, S: Literal(s), Rd: rdPtr, Rn: rnReg, Rm: rmReg, Shift: shiftPtr,
	}, nil
}

// decodeCoprocessor covers A6.7-9's VFP subset: VLDR/VSTR/VLDM/VSTM/
// VPUSH/VPOP (A6.7), VFP data-processing arithmetic (A6.5), and the
// core<->VFP move forms (A6.8/A6.9), grounded on the opcode/rn dispatch
// in the original implementation's asm/b32/a6_7.rs. Coprocessor
// instructions outside the VFP coprocessor numbers (101x) are out of
// scope per SPEC_FULL.md's non-goals and fall through to Invalid32Bit.
func decodeCoprocessor(word uint32) (Operation, error) {
	coproc := mask32(word, 8, 11)
	if coproc&0b1110 != 0b1010 {
		return nil, errInvalid32Bit("A6_7")
	}
	doublePrecision := coproc == 0b1011

	if bit32(word, 26) && !bit32(word, 25) {
		return decodeVFPLoadStore(word, doublePrecision)
	}
	if bit32(word, 25) {
		return decodeVFPDataProcessingOrMove(word, doublePrecision)
	}
	return nil, errInvalid32Bit("A6_7")
}

func decodeVFPLoadStore(word uint32, doublePrecision bool) (Operation, error) {
	p := bit32(word, 24)
	u := bit32(word, 23)
	w := bit32(word, 21)
	isLoad := bit32(word, 20)
	rn := mask32(word, 16, 19)
	vd := mask32(word, 12, 15)
	d := mask32(word, 22, 22)
	imm8 := mask32(word, 0, 7)

	vdReg := combine32([]uint32{vd, d}, []int{4, 1})
	if doublePrecision {
		vdReg = combine32([]uint32{d, vd}, []int{1, 4})
	}

	var op VFPLoadStoreOpcode
	isPushPop := false
	switch {
	case !p && u && !w:
		op = VFPLdr
		if !isLoad {
			op = VFPStr
		}
	case rn == 0b1101 && !p && u && w:
		if !isLoad {
			return nil, errInvalid32Bit("A6_7")
		}
		op, isPushPop = VFPPop, true
	case rn == 0b1101 && p && !u && w:
		if isLoad {
			return nil, errInvalid32Bit("A6_7")
		}
		op, isPushPop = VFPPush, true
	case (p && !w) || (!p && u && w):
		op = VFPLdm
		if !isLoad {
			op = VFPStm
		}
	default:
		return nil, errInvalid32Bit("A6_7")
	}

	var rnPtr *Register
	if !isPushPop {
		r, err := NewRegister(rn)
		if err != nil {
			return nil, err
		}
		rnPtr = &r
	}

	result := VFPLoadStore{
		Opcode: op, DoublePrecision: doublePrecision, Rn: rnPtr, Imm8: uint8(imm8), Add: u,
	}
	if doublePrecision {
		result.VdDouble = F64Register(vdReg)
	} else {
		result.Vd = F32Register(vdReg)
	}
	return result, nil
}

func decodeVFPDataProcessingOrMove(word uint32, doublePrecision bool) (Operation, error) {
	if bit32(word, 4) {
		return decodeVFPMove(word, doublePrecision)
	}

	opc1 := mask32(word, 20, 23)
	opc2 := mask32(word, 16, 19)
	opc3 := mask32(word, 6, 7)
	vd := mask32(word, 12, 15)
	vn := mask32(word, 16, 19)
	vm := mask32(word, 0, 3)
	d := mask32(word, 22, 22)
	n := mask32(word, 7, 7)
	m := mask32(word, 5, 5)

	regOf := func(field, bit uint32) uint32 {
		if doublePrecision {
			return combine32([]uint32{bit, field}, []int{1, 4})
		}
		return combine32([]uint32{field, bit}, []int{4, 1})
	}
	vdReg, vnReg, vmReg := regOf(vd, d), regOf(vn, n), regOf(vm, m)

	var opcode VFPOpcode
	switch {
	case mask32(opc1, 2, 3) == 0b00 && opc3 == 0b10:
		opcode = VFPMul
	case mask32(opc1, 2, 3) == 0b00 && opc3 == 0b00:
		opcode = VFPMul
	case mask32(opc1, 2, 3) == 0b01 && opc3&0b01 == 1:
		opcode = VFPNMul
	case mask32(opc1, 2, 3) == 0b01 && opc3&0b01 == 0:
		opcode = VFPAdd
	case mask32(opc1, 2, 3) == 0b10 && opc3&0b01 == 0:
		opcode = VFPSub
	case mask32(opc1, 2, 3) == 0b11:
		opcode = VFPDiv
	case opc1 == 0b1011 && opc2 == 0b0000 && opc3 == 0b01:
		opcode = VFPAbs
	case opc1 == 0b1011 && opc2 == 0b0000 && opc3 == 0b00:
		opcode = VFPNeg
	case opc1 == 0b1011 && opc2 == 0b0001 && opc3 == 0b11:
		opcode = VFPSqrt
	default:
		return nil, errInvalid32Bit("A6_7")
	}
	if opcode == VFPAbs || opcode == VFPNeg || opcode == VFPSqrt {
		// One-operand forms: bits 19:16 are opc2, not a register.
		vnReg = 0
	}

	result := VFPDataProcessing{Opcode: opcode, DoublePrecision: doublePrecision}
	if doublePrecision {
		result.Dd, result.Dn, result.Dm = F64Register(vdReg), F64Register(vnReg), F64Register(vmReg)
	} else {
		result.Sd, result.Sn, result.Sm = F32Register(vdReg), F32Register(vnReg), F32Register(vmReg)
	}
	return result, nil
}

// decodeVFPMove covers A6.8's single-precision core<->VFP register move
// (VMOV between one core register and one S register). A6.9's
// two-core-register double-precision form uses a disjoint top-level
// encoding this decoder doesn't route here, so doublePrecision is always
// false by the time this is reached.
func decodeVFPMove(word uint32, doublePrecision bool) (Operation, error) {
	if doublePrecision {
		return nil, errInvalid32Bit("A6_8")
	}
	toCore := bit32(word, 20)
	rt := mask32(word, 12, 15)
	vn := mask32(word, 16, 19)
	n := mask32(word, 7, 7)

	rtReg, err := NewRegister(rt)
	if err != nil {
		return nil, err
	}

	direction := VFPMoveFromCore
	if toCore {
		direction = VFPMoveToCore
	}
	snReg := combine32([]uint32{vn, n}, []int{4, 1})
	return VFPMove{
		Direction:       direction,
		DoublePrecision: false,
		Rt:              rtReg,
		Sn:              F32Register(snReg),
	}, nil
}

// decodeDataProcessingRegister covers A5.27: shift-by-register (LSL/LSR/
// ASR/ROR), sign/zero-extend (SXTB/SXTH/UXTB/UXTH), byte-reversal (REV/
// REV16/REVSH), and CLZ, grounded on the shared rm:op:rn field layout the
// original implementation's asm/b32.rs groups under this table.
func decodeDataProcessingRegister(word uint32) (Operation, error) {
	op1 := mask32(word, 20, 23)
	rn := mask32(word, 16, 19)
	rd := mask32(word, 8, 11)
	op2 := mask32(word, 4, 7)
	rm := mask32(word, 0, 3)

	rdReg, err := NewRegister(rd)
	if err != nil {
		return nil, err
	}
	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	rmReg, err := NewRegister(rm)
	if err != nil {
		return nil, err
	}

	if mask32(op1, 3, 3) == 0 && op2 == 0b0000 {
		kinds := [...]ShiftKind{LSL, LSR, ASR, ROR}
		idx := mask32(op1, 1, 2)
		if int(idx) >= len(kinds) {
			return nil, errInvalid32Bit("A5_27")
		}
		return ShiftRegister{Kind: kinds[idx], Rd: rdReg, Rn: rnReg, Rm: rmReg, SetFlags: Literal(bit32(word, 20))}, nil
	}

	if op1 == 0b0000 && mask32(op2, 2, 3) == 0b10 && rn == 0b1111 {
		return Extend{Opcode: ExtSXTH, Rd: rdReg, Rm: rmReg, Rotation: uint8(mask32(word, 4, 5)) * 8}, nil
	}
	if op1 == 0b0001 && mask32(op2, 2, 3) == 0b10 && rn == 0b1111 {
		return Extend{Opcode: ExtUXTH, Rd: rdReg, Rm: rmReg, Rotation: uint8(mask32(word, 4, 5)) * 8}, nil
	}
	if op1 == 0b0100 && mask32(op2, 2, 3) == 0b10 && rn == 0b1111 {
		return Extend{Opcode: ExtSXTB, Rd: rdReg, Rm: rmReg, Rotation: uint8(mask32(word, 4, 5)) * 8}, nil
	}
	if op1 == 0b0101 && mask32(op2, 2, 3) == 0b10 && rn == 0b1111 {
		return Extend{Opcode: ExtUXTB, Rd: rdReg, Rm: rmReg, Rotation: uint8(mask32(word, 4, 5)) * 8}, nil
	}

	if mask32(op1, 1, 3) == 0b100 && mask32(op2, 2, 3) == 0b10 {
		switch mask32(op2, 0, 1) {
		case 0b00:
			return Reverse{Opcode: RevWord, Rd: rdReg, Rm: rmReg}, nil
		case 0b01:
			return Reverse{Opcode: Rev16, Rd: rdReg, Rm: rmReg}, nil
		case 0b11:
			return Reverse{Opcode: RevSH, Rd: rdReg, Rm: rmReg}, nil
		}
	}

	if op1 == 0b1011 && op2 == 0b1000 {
		return Clz{Rd: rdReg, Rm: rmReg}, nil
	}

	return nil, errInvalid32Bit("A5_27")
}

// decodeMultiply covers A5.28: MUL, MLA, MLS.
func decodeMultiply(word uint32) (Operation, error) {
	rn := mask32(word, 16, 19)
	ra := mask32(word, 12, 15)
	rd := mask32(word, 8, 11)
	op2 := mask32(word, 4, 5)
	rm := mask32(word, 0, 3)

	rdReg, err := NewRegister(rd)
	if err != nil {
		return nil, err
	}
	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	rmReg, err := NewRegister(rm)
	if err != nil {
		return nil, err
	}

	switch op2 {
	case 0b00:
		if ra == 0b1111 {
			return Mul{Rd: rdReg, Rn: rnReg, Rm: rmReg}, nil
		}
		raReg, err := NewRegister(ra)
		if err != nil {
			return nil, err
		}
		return Mla{Rd: rdReg, Rn: rnReg, Rm: rmReg, Ra: raReg}, nil
	case 0b01:
		raReg, err := NewRegister(ra)
		if err != nil {
			return nil, err
		}
		return Mls{Rd: rdReg, Rn: rnReg, Rm: rmReg, Ra: raReg}, nil
	}
	return nil, errInvalid32Bit("A5_28")
}

// decodeLongMultiply covers A5.29: SMULL/UMULL/SMLAL/UMLAL and the
// ARMv7E-M-only SDIV/UDIV, grounded on the same op1/op2 shape as
// decodeMultiply but with two destination registers (RdLo/RdHi).
func decodeLongMultiply(word uint32) (Operation, error) {
	op1 := mask32(word, 20, 22)
	rn := mask32(word, 16, 19)
	rdLo := mask32(word, 12, 15)
	rdHi := mask32(word, 8, 11)
	op2 := mask32(word, 4, 7)
	rm := mask32(word, 0, 3)

	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	rmReg, err := NewRegister(rm)
	if err != nil {
		return nil, err
	}
	rdLoReg, err := NewRegister(rdLo)
	if err != nil {
		return nil, err
	}
	rdHiReg, err := NewRegister(rdHi)
	if err != nil {
		return nil, err
	}

	if op1 == 0b001 && op2 == 0b1111 {
		return Sdiv{Rd: rdLoReg, Rn: rnReg, Rm: rmReg}, nil
	}
	if op1 == 0b011 && op2 == 0b1111 {
		return Udiv{Rd: rdLoReg, Rn: rnReg, Rm: rmReg}, nil
	}

	var opcode LongMultiplyOpcode
	switch {
	case op1 == 0b000 && op2 == 0b0000:
		opcode = LMSMull
	case op1 == 0b010 && op2 == 0b0000:
		opcode = LMUMull
	case op1 == 0b100 && op2 == 0b0000:
		opcode = LMSMlal
	case op1 == 0b110 && op2 == 0b0000:
		opcode = LMUMlal
	default:
		return nil, errInvalid32Bit("A5_29")
	}
	return LongMultiply{Opcode: opcode, RdLo: rdLoReg, RdHi: rdHiReg, Rn: rnReg, Rm: rmReg}, nil
}

// decodeLoadStoreSingle covers a representative slice of A5.13's
// byte/halfword/word immediate-offset forms, grounded on the field layout the teacher reuses
// across its load/store helpers.
func decodeLoadStoreSingle(word uint32) (Operation, error) {
	size := mask32(word, 21, 22)
	loadBit := mask32(word, 20, 20)
	rn := mask32(word, 16, 19)
	rt := mask32(word, 12, 15)
	imm12 := mask32(word, 0, 11)

	rnReg, err := NewRegister(rn)
	if err != nil {
		return nil, err
	}
	rtReg, err := NewRegister(rt)
	if err != nil {
		return nil, err
	}
	immN, err := NewImmN(imm12, 12)
	if err != nil {
		return nil, err
	}

	var opcode LoadStoreOpcode
	switch {
	case size == 0b10 && loadBit == 0:
		opcode = StrWord
	case size == 0b10 && loadBit == 1:
		opcode = LdrWord
	case size == 0b00 && loadBit == 0:
		opcode = StrByte
	case size == 0b00 && loadBit == 1:
		opcode = LdrByte
	case size == 0b01 && loadBit == 0:
		opcode = StrHalf
	case size == 0b01 && loadBit == 1:
		opcode = LdrHalf
	default:
		return nil, errInvalid32Bit("A5_13")
	}

	return LoadStoreImmediate{
		Opcode: opcode,
		Rt:     rtReg,
		Rn:     rnReg,
		Imm:    immN,
		Index:  true,
		Add:    true,
		Wback:  false,
	}, nil
}
