package thumb2

import "fmt"

// Format renders a decoded Operation as a disassembly-style mnemonic
// line. This is a convenience for consumers (the CLI, tests comparing
// against expected text); the decoder itself never calls it.
//
// Grounded on the Operator/Operand string fields of the teacher's
// DisasmEntry (hardware/memory/cartridge/arm/disassembly_entry.go),
// adapted from "build two strings as you decode" into "render the
// already-decoded typed Operation afterwards".
func Format(op Operation) string {
	switch v := op.(type) {
	case Lsl:
		return fmt.Sprintf("LSL %s, %s, #%d", v.Rd, v.Rm, v.Imm.Amount)
	case Lsr:
		return fmt.Sprintf("LSR %s, %s, #%d", v.Rd, v.Rm, v.Imm.Amount)
	case Asr:
		return fmt.Sprintf("ASR %s, %s, #%d", v.Rd, v.Rm, v.Imm.Amount)
	case AddRegister:
		return fmt.Sprintf("ADD %s, %s, %s", v.Rd, v.Rn, v.Rm)
	case SubRegister:
		return fmt.Sprintf("SUB %s, %s, %s", v.Rd, v.Rn, v.Rm)
	case AddImmediate3:
		return fmt.Sprintf("ADD %s, %s, #%d", v.Rd, v.Rn, v.Imm3.Value)
	case SubImmediate3:
		return fmt.Sprintf("SUB %s, %s, #%d", v.Rd, v.Rn, v.Imm3.Value)
	case MovImmediate:
		return fmt.Sprintf("MOV %s, #%d", v.Rd, v.Imm8.Value)
	case CmpImmediate:
		return fmt.Sprintf("CMP %s, #%d", v.Rn, v.Imm8.Value)
	case AddImmediate8:
		return fmt.Sprintf("ADD %s, #%d", v.Rdn, v.Imm8.Value)
	case SubImmediate8:
		return fmt.Sprintf("SUB %s, #%d", v.Rdn, v.Imm8.Value)
	case DataProcessingRegister:
		return fmt.Sprintf("%s %s, %s", v.Opcode, v.Rdn, v.Rm)
	case AddRegisterSpecial:
		return fmt.Sprintf("ADD %s, %s", v.Rdn, v.Rm)
	case CmpRegisterSpecial:
		return fmt.Sprintf("CMP %s, %s", v.Rn, v.Rm)
	case MovRegisterSpecial:
		return fmt.Sprintf("MOV %s, %s", v.Rd, v.Rm)
	case Bx:
		return fmt.Sprintf("BX %s", v.Rm)
	case Blx:
		return fmt.Sprintf("BLX %s", v.Rm)
	case It:
		return fmt.Sprintf("IT%s %s", itSuffix(v.Mask), v.FirstCond)
	case Nop:
		return "NOP"
	case Yield:
		return "YIELD"
	case Wfe:
		return "WFE"
	case Wfi:
		return "WFI"
	case Sev:
		return "SEV"
	case Push:
		return fmt.Sprintf("PUSH {%v}", v.Registers.Registers())
	case Pop:
		return fmt.Sprintf("POP {%v}", v.Registers.Registers())
	case Cbz:
		return fmt.Sprintf("CBZ %s, #%d", v.Rn, v.Imm.Value*2)
	case Cbnz:
		return fmt.Sprintf("CBNZ %s, #%d", v.Rn, v.Imm.Value*2)
	case BranchConditional:
		return fmt.Sprintf("B%s #%d", v.Cond, v.Imm8.SignExtend()*2)
	case Svc:
		return fmt.Sprintf("SVC #%d", v.Imm8.Value)
	case B:
		return fmt.Sprintf("B #%d", v.Imm.SignExtend()*2)
	case BlImmediate:
		return fmt.Sprintf("BL #%d", v.Imm.SignExtend()*2)
	case BImmediate:
		return fmt.Sprintf("B%s #%d", v.Cond, v.Imm.SignExtend()*2)
	case DataProcessingModifiedImmediate:
		return fmt.Sprintf("%s %s, %s, #%#x", v.Opcode, v.Rd, v.Rn, v.Imm)
	case AddImmediate:
		return fmt.Sprintf("ADDW %s, %s, #%d", v.Rd, v.Rn, v.Imm.Value)
	case LoadStoreImmediate:
		return fmt.Sprintf("%s %s, [%s, #%d]", v.Opcode, v.Rt, v.Rn, v.Imm.Value)
	case LoadStoreRegister:
		return fmt.Sprintf("%s %s, [%s, %s]", v.Opcode, v.Rt, v.Rn, v.Rm)
	case LoadStoreMultiple:
		mnemonic := "STM"
		if v.IsLoad {
			mnemonic = "LDM"
		}
		if v.IncrementBefore {
			mnemonic += "DB"
		}
		return fmt.Sprintf("%s %s, {%v}", mnemonic, v.Rn, v.Registers.Registers())
	case LoadStoreDual:
		mnemonic := "STRD"
		if v.IsLoad {
			mnemonic = "LDRD"
		}
		return fmt.Sprintf("%s %s, %s, [%s, #%d]", mnemonic, v.Rt, v.Rt2, v.Rn, v.Imm.Value)
	case TableBranch:
		mnemonic := "TBB"
		if v.Halfword {
			mnemonic = "TBH"
		}
		return fmt.Sprintf("%s [%s, %s]", mnemonic, v.Rn, v.Rm)
	case AndRegister:
		mnemonic := "AND"
		if v.Rd == nil {
			mnemonic = "TST"
			return fmt.Sprintf("%s %s, %s", mnemonic, v.Rn, v.Rm)
		}
		return fmt.Sprintf("%s %s, %s, %s", mnemonic, *v.Rd, v.Rn, v.Rm)
	case DataProcessingShiftedRegister:
		if v.Rd == nil {
			return fmt.Sprintf("%s %s, %s", v.Opcode, v.Rn, v.Rm)
		}
		return fmt.Sprintf("%s %s, %s, %s", v.Opcode, *v.Rd, v.Rn, v.Rm)
	case ShiftRegister:
		return fmt.Sprintf("%s %s, %s, %s", v.Kind, v.Rd, v.Rn, v.Rm)
	case Extend:
		return fmt.Sprintf("%s %s, %s", v.Opcode, v.Rd, v.Rm)
	case Reverse:
		return fmt.Sprintf("%s %s, %s", v.Opcode, v.Rd, v.Rm)
	case Clz:
		return fmt.Sprintf("CLZ %s, %s", v.Rd, v.Rm)
	case Mul:
		return fmt.Sprintf("MUL %s, %s, %s", v.Rd, v.Rn, v.Rm)
	case Mla:
		return fmt.Sprintf("MLA %s, %s, %s, %s", v.Rd, v.Rn, v.Rm, v.Ra)
	case Mls:
		return fmt.Sprintf("MLS %s, %s, %s, %s", v.Rd, v.Rn, v.Rm, v.Ra)
	case LongMultiply:
		return fmt.Sprintf("%s %s, %s, %s, %s", v.Opcode, v.RdLo, v.RdHi, v.Rn, v.Rm)
	case Sdiv:
		return fmt.Sprintf("SDIV %s, %s, %s", v.Rd, v.Rn, v.Rm)
	case Udiv:
		return fmt.Sprintf("UDIV %s, %s, %s", v.Rd, v.Rn, v.Rm)
	case VFPDataProcessing:
		if v.DoublePrecision {
			return fmt.Sprintf("%s.F64 %s, %s, %s", v.Opcode, v.Dd, v.Dn, v.Dm)
		}
		return fmt.Sprintf("%s.F32 %s, %s, %s", v.Opcode, v.Sd, v.Sn, v.Sm)
	case VFPLoadStore:
		if v.DoublePrecision {
			return fmt.Sprintf("%s %s", v.Opcode, v.VdDouble)
		}
		return fmt.Sprintf("%s %s", v.Opcode, v.Vd)
	case VFPMove:
		if v.Direction == VFPMoveToCore {
			return fmt.Sprintf("VMOV %s, %s", v.Rt, v.Sn)
		}
		return fmt.Sprintf("VMOV %s, %s", v.Sn, v.Rt)
	default:
		return fmt.Sprintf("%T %+v", op, op)
	}
}

func itSuffix(mask uint8) string {
	s := ""
	for i := 2; i >= 0; i-- {
		if mask&(1<<uint(i)) == 0 {
			s += "E"
		} else {
			s += "T"
		}
	}
	return s
}

func (o DataProcessingModifiedImmediateOpcode) String() string {
	names := [...]string{"AND", "BIC", "ORR", "ORN", "EOR", "ADD", "ADC", "SBC", "SUB", "RSB"}
	if int(o) < len(names) {
		return names[o]
	}
	return "?"
}

func (o LoadStoreOpcode) String() string {
	names := [...]string{"STRB", "STRH", "STR", "LDRB", "LDRSB", "LDRH", "LDRSH", "LDR"}
	if int(o) < len(names) {
		return names[o]
	}
	return "?"
}
