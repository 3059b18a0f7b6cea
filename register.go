package thumb2

import "sort"

// Register is one of the 16 general-purpose ARM registers, 4-bit encoded.
//
// Grounded on arch/src/register.rs's reg! macro (R0..R12, SP, LR, PC) from
// the original implementation.
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	SP
	LR
	PC
)

func (r Register) String() string {
	names := [...]string{
		"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
		"R8", "R9", "R10", "R11", "R12", "SP", "LR", "PC",
	}
	if int(r) < len(names) {
		return names[r]
	}
	return "?"
}

// NewRegister performs the fallible conversion from a raw 4-bit field to a
// Register. Values above 15 cannot occur from a correctly masked field, but
// the conversion stays fallible to mirror arch/src/register.rs's
// TryFrom<u8>.
func NewRegister(v uint32) (Register, error) {
	if v > uint32(PC) {
		return 0, errInvalidRegister(v)
	}
	return Register(v), nil
}

// F32Register is one of the 32 single-precision floating point registers.
type F32Register uint8

func (r F32Register) String() string {
	return "S" + itoa(int(r))
}

// NewF32Register performs the fallible conversion from a raw 5-bit field.
func NewF32Register(v uint32) (F32Register, error) {
	if v > 31 {
		return 0, errInvalidRegister(v)
	}
	return F32Register(v), nil
}

// F64Register is one of the 16 double-precision floating point registers.
type F64Register uint8

func (r F64Register) String() string {
	return "D" + itoa(int(r))
}

// NewF64Register performs the fallible conversion from a raw 4-bit field.
func NewF64Register(v uint32) (F64Register, error) {
	if v > 15 {
		return 0, errInvalidRegister(v)
	}
	return F64Register(v), nil
}

// CoProcessor is one of the 16 coprocessor identifiers P0..P15.
//
// Grounded on arch/src/coproc.rs's coproc! macro.
type CoProcessor uint8

func (c CoProcessor) String() string {
	return "P" + itoa(int(c))
}

// NewCoProcessor performs the fallible conversion from a raw 4-bit field.
func NewCoProcessor(v uint32) (CoProcessor, error) {
	if v > 15 {
		return 0, errInvalidRegister(v)
	}
	return CoProcessor(v), nil
}

// itoa avoids pulling in strconv for this one call site pattern repeated
// across the operand atoms.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// RegisterList is an ordered, duplicate-free collection of Register,
// derived from a bitmask where bit i set means Ri is present. Iteration
// order is ascending register index.
//
// Grounded on arch/src/register.rs's RegisterList/TryFrom<u16>.
type RegisterList struct {
	regs []Register
}

// NewRegisterList builds a RegisterList from a 13..16-bit mask. bitWidth is
// the number of low bits of mask that are meaningful (callers pass the
// already-stitched mask; see spec.md §4.6 on LDM/STM register-list
// stitching in 32-bit encodings).
func NewRegisterList(mask uint32, bitWidth int) (RegisterList, error) {
	var regs []Register
	for i := 0; i < bitWidth; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		r, err := NewRegister(uint32(i))
		if err != nil {
			return RegisterList{}, err
		}
		regs = append(regs, r)
	}
	return RegisterList{regs: regs}, nil
}

// Registers returns the registers in ascending index order. The returned
// slice is owned by the caller.
func (l RegisterList) Registers() []Register {
	out := make([]Register, len(l.regs))
	copy(out, l.regs)
	return out
}

// Len returns the number of registers in the list.
func (l RegisterList) Len() int { return len(l.regs) }

// Contains reports whether r is present in the list.
func (l RegisterList) Contains(r Register) bool {
	for _, x := range l.regs {
		if x == r {
			return true
		}
	}
	return false
}

// Equal reports whether two register lists contain the same registers,
// order notwithstanding (equality is "by contents" per spec.md §3).
func (l RegisterList) Equal(other RegisterList) bool {
	if l.Len() != other.Len() {
		return false
	}
	a := l.Registers()
	b := other.Registers()
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Mask reconstructs the bitmask a RegisterList was derived from, by OR-ing
// each member register's bit. Used by property P5 (RegisterList
// round-trip).
func (l RegisterList) Mask() uint32 {
	var m uint32
	for _, r := range l.regs {
		m |= 1 << uint(r)
	}
	return m
}
