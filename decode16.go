package thumb2

// decode16 attempts to decode a single 16-bit Thumb instruction from hw,
// dispatching to the A5.2-A5.8 sub-tables by the top bits, mirroring the
// if/else bitmask cascade in the teacher's decodeThumb2 (thumb2.go), but
// returning a typed Operation instead of mutating CPU state.
func decode16(hw uint16) (Operation, error) {
	switch {
	case mask16(hw, 14, 15) == 0b00:
		return decodeA5_2(hw)
	case mask16(hw, 10, 15) == 0b010000:
		return decodeA5_3(hw)
	case mask16(hw, 10, 15) == 0b010001:
		return decodeA5_4(hw)
	case mask16(hw, 12, 15) == 0b1011:
		return decodeA5_7(hw)
	case mask16(hw, 12, 15) == 0b1101:
		return decodeA5_8(hw)
	case mask16(hw, 11, 15) == 0b11100:
		return decodeA5_5(hw)
	default:
		return nil, errInvalid16Bit("A5_2")
	}
}

// decodeA5_2 covers "Shift (immediate), add, subtract, move, and compare",
// grounded on a_5_2.rs's two-stage switch (first on opcode>>2 for the
// format-1/3 single-shape entries, then on the full 5-bit opcode for the
// format-2 three-register/three-bit-immediate entries) and on the
// teacher's thumb2.go equivalent dispatch.
func decodeA5_2(hw uint16) (Operation, error) {
	opcode := mask16(hw, 9, 13)

	switch opcode >> 2 {
	case 0b000:
		rd, rm := lowRegs2(hw)
		return Lsl{Rd: rd, Rm: rm, Imm: NewImmShift(LSL, uint8(mask16(hw, 6, 10))), SetFlags: InITBlock(false)}, nil
	case 0b001:
		rd, rm := lowRegs2(hw)
		return Lsr{Rd: rd, Rm: rm, Imm: NewImmShift(LSR, uint8(mask16(hw, 6, 10))), SetFlags: InITBlock(false)}, nil
	case 0b010:
		rd, rm := lowRegs2(hw)
		return Asr{Rd: rd, Rm: rm, Imm: NewImmShift(ASR, uint8(mask16(hw, 6, 10))), SetFlags: InITBlock(false)}, nil
	case 0b100:
		rd, imm8 := lowRegImm8(hw)
		i, err := NewImmN(imm8, 8)
		if err != nil {
			return nil, err
		}
		return MovImmediate{Rd: rd, Imm8: i, SetFlags: InITBlock(false)}, nil
	case 0b101:
		rn, imm8 := lowRegImm8(hw)
		i, err := NewImmN(imm8, 8)
		if err != nil {
			return nil, err
		}
		return CmpImmediate{Rn: rn, Imm8: i, SetFlags: Literal(true)}, nil
	case 0b110:
		rdn, imm8 := lowRegImm8(hw)
		i, err := NewImmN(imm8, 8)
		if err != nil {
			return nil, err
		}
		return AddImmediate8{Rdn: rdn, Imm8: i, SetFlags: InITBlock(false)}, nil
	case 0b111:
		rdn, imm8 := lowRegImm8(hw)
		i, err := NewImmN(imm8, 8)
		if err != nil {
			return nil, err
		}
		return SubImmediate8{Rdn: rdn, Imm8: i, SetFlags: InITBlock(false)}, nil
	}

	switch opcode {
	case 0b01100:
		rd, rn, rm := lowRegs3(hw)
		return AddRegister{Rd: rd, Rn: rn, Rm: rm, SetFlags: InITBlock(false)}, nil
	case 0b01101:
		rd, rn, rm := lowRegs3(hw)
		return SubRegister{Rd: rd, Rn: rn, Rm: rm, SetFlags: InITBlock(false)}, nil
	case 0b01110:
		rd, rn, imm3 := lowRegsImm3(hw)
		i, err := NewImmN(imm3, 3)
		if err != nil {
			return nil, err
		}
		return AddImmediate3{Rd: rd, Rn: rn, Imm3: i, SetFlags: InITBlock(false)}, nil
	case 0b01111:
		rd, rn, imm3 := lowRegsImm3(hw)
		i, err := NewImmN(imm3, 3)
		if err != nil {
			return nil, err
		}
		return SubImmediate3{Rd: rd, Rn: rn, Imm3: i, SetFlags: InITBlock(false)}, nil
	}

	return nil, errInvalid16Bit("A5_2")
}

// decodeA5_3 covers "Data processing (two low registers)". Per spec.md
// §4.6, all A5.3 opcodes report InITBlock(false) except the three
// comparison-only forms (TST/CMP/CMN), which always set flags like their
// A5.2 CMP-immediate sibling.
func decodeA5_3(hw uint16) (Operation, error) {
	opcode := DataProcessingOpcode(mask16(hw, 6, 9))
	rdn := Register(mask16(hw, 0, 2))
	rm := Register(mask16(hw, 3, 5))
	setFlags := InITBlock(false)
	switch opcode {
	case OpTST, OpCMPReg, OpCMN:
		setFlags = Literal(true)
	}
	return DataProcessingRegister{Opcode: opcode, Rdn: rdn, Rm: rm, SetFlags: setFlags}, nil
}

// decodeA5_4 covers "Special data instructions and branch and exchange".
func decodeA5_4(hw uint16) (Operation, error) {
	opcode := mask16(hw, 8, 9)
	dn := mask16(hw, 7, 7)
	rm, err := NewRegister(uint32(mask16(hw, 3, 6)))
	if err != nil {
		return nil, err
	}
	rdn, err := NewRegister(combine16To32(dn, mask16(hw, 0, 2)))
	if err != nil {
		return nil, err
	}

	switch opcode {
	case 0b00:
		if dn == 0 && rdn < R8 && rm < R8 {
			return nil, errUnpredictable("ADD (register) T2 with both operands low and DN=0 is UNPREDICTABLE")
		}
		return AddRegisterSpecial{Rdn: rdn, Rm: rm}, nil
	case 0b01:
		return CmpRegisterSpecial{Rn: rdn, Rm: rm}, nil
	case 0b10:
		return MovRegisterSpecial{Rd: rdn, Rm: rm}, nil
	case 0b11:
		if dn == 1 {
			return Blx{Rm: rm}, nil
		}
		return Bx{Rm: rm}, nil
	}
	return nil, errInvalid16Bit("A5_4")
}

// decodeA5_5 covers "Long and short branches", limited here to the
// unconditional 16-bit branch T2 encoding (0b11100).
func decodeA5_5(hw uint16) (Operation, error) {
	imm11 := uint32(mask16(hw, 0, 10))
	i, err := NewImmN(imm11, 11)
	if err != nil {
		return nil, err
	}
	return B{Imm: i}, nil
}

// decodeA5_7 covers "Miscellaneous 16-bit instructions": IT/hints,
// push/pop, CBZ/CBNZ, grounded on decodeThumb2Miscellaneous in the
// teacher's thumb2.go.
func decodeA5_7(hw uint16) (Operation, error) {
	switch {
	case mask16(hw, 8, 15) == 0b10110000:
		return decodeAddSubSP(hw)
	case mask16(hw, 12, 15) == 0b1011 && mask16(hw, 10, 11) == 0b00 && mask16(hw, 8, 8) == 1:
		return decodeCbz(hw, false)
	case mask16(hw, 12, 15) == 0b1011 && mask16(hw, 10, 11) == 0b10 && mask16(hw, 8, 8) == 1:
		return decodeCbz(hw, true)
	case mask16(hw, 9, 15) == 0b1011010:
		regs, err := pushPopRegisters(hw, LR)
		if err != nil {
			return nil, err
		}
		return Push{Registers: regs}, nil
	case mask16(hw, 9, 15) == 0b1011110:
		regs, err := pushPopRegisters(hw, PC)
		if err != nil {
			return nil, err
		}
		return Pop{Registers: regs}, nil
	case mask16(hw, 8, 15) == 0b10111111:
		if mask16(hw, 0, 3) == 0 {
			return decodeHint(hw)
		}
		return decodeIT(hw)
	}
	return nil, errInvalid16Bit("A5_7")
}

func decodeIT(hw uint16) (Operation, error) {
	firstCond4 := uint32(mask16(hw, 4, 7))
	mask4 := uint8(mask16(hw, 0, 3))
	if firstCond4 == 0b1111 {
		return nil, errUndefined("IT firstcond 0b1111 is reserved")
	}
	if firstCond4 == 0b1110 && popcount8(mask4) != 1 {
		return nil, errUnpredictable("IT firstcond AL requires a mask with exactly one bit set")
	}
	cond, err := NewCondition(firstCond4)
	if err != nil {
		return nil, err
	}
	return It{FirstCond: cond, Mask: mask4, Following: NewITCondition(cond, mask4)}, nil
}

func decodeHint(hw uint16) (Operation, error) {
	switch mask16(hw, 4, 7) {
	case 0b0000:
		return Nop{}, nil
	case 0b0001:
		return Yield{}, nil
	case 0b0010:
		return Wfe{}, nil
	case 0b0011:
		return Wfi{}, nil
	case 0b0100:
		return Sev{}, nil
	}
	return nil, errInvalid16Bit("A5_7 hints")
}

// decodeAddSubSP covers ADD (SP plus immediate) / SUB (SP minus immediate)
// T1, encoding 0b10110000xxxxxxx. Unlike the register/low-immediate A5.2
// forms, these never update the flags regardless of IT-block state, so
// SetFlags is Literal(false) rather than InITBlock(false).
func decodeAddSubSP(hw uint16) (Operation, error) {
	imm7 := uint32(mask16(hw, 0, 6))
	i, err := NewImmN(imm7, 7)
	if err != nil {
		return nil, err
	}
	if mask16(hw, 7, 7) == 1 {
		return SubImmediate8{Rdn: SP, Imm8: i, SetFlags: Literal(false)}, nil
	}
	return AddImmediate8{Rdn: SP, Imm8: i, SetFlags: Literal(false)}, nil
}

func decodeCbz(hw uint16, nonZero bool) (Operation, error) {
	rn, err := NewRegister(uint32(mask16(hw, 0, 2)))
	if err != nil {
		return nil, err
	}
	i1 := uint32(mask16(hw, 9, 9))
	imm5 := uint32(mask16(hw, 3, 7))
	imm := combine32([]uint32{i1, imm5}, []int{1, 5})
	immN, err := NewImmN(imm, 6)
	if err != nil {
		return nil, err
	}
	if nonZero {
		return Cbnz{Rn: rn, Imm: immN}, nil
	}
	return Cbz{Rn: rn, Imm: immN}, nil
}

func pushPopRegisters(hw uint16, extra Register) (RegisterList, error) {
	mask := uint32(mask16(hw, 0, 7))
	if mask16(hw, 8, 8) == 1 {
		mask |= 1 << uint(extra)
	}
	return NewRegisterList(mask, 16)
}

// decodeA5_8 covers "Conditional branch, and Supervisor Call".
func decodeA5_8(hw uint16) (Operation, error) {
	cond4 := uint32(mask16(hw, 8, 11))
	imm8 := uint32(mask16(hw, 0, 7))
	i, err := NewImmN(imm8, 8)
	if err != nil {
		return nil, err
	}
	if cond4 == 0b1111 {
		return Svc{Imm8: i}, nil
	}
	if cond4 == 0b1110 {
		return nil, errUndefined("conditional branch condition 0b1110 is permanently undefined")
	}
	cond, err := NewCondition(cond4)
	if err != nil {
		return nil, err
	}
	return BranchConditional{Cond: cond, Imm8: i}, nil
}

// --- small field-extraction helpers shared across the 16-bit table ---

func lowRegs2(hw uint16) (rd, rm Register) {
	return Register(mask16(hw, 0, 2)), Register(mask16(hw, 3, 5))
}

func lowRegs3(hw uint16) (rd, rn, rm Register) {
	return Register(mask16(hw, 0, 2)), Register(mask16(hw, 3, 5)), Register(mask16(hw, 6, 8))
}

func lowRegsImm3(hw uint16) (rd, rn Register, imm3 uint32) {
	return Register(mask16(hw, 0, 2)), Register(mask16(hw, 3, 5)), uint32(mask16(hw, 6, 8))
}

func lowRegImm8(hw uint16) (r Register, imm8 uint32) {
	return Register(mask16(hw, 8, 10)), uint32(mask16(hw, 0, 7))
}

func combine16To32(hi, lo uint16) uint32 {
	return (uint32(hi) << 3) | uint32(lo)
}

func popcount8(v uint8) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}
