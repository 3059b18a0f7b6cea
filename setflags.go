package thumb2

// SetFlags distinguishes instructions whose flag-setting behaviour is
// fixed at decode time from those whose behaviour depends on whether the
// instruction executes inside an IT block.
//
// Grounded on arch/src/set_flags.rs's SetFlags enum. The decoder never
// evaluates this value against actual IT-block state (that interpretation
// is explicitly out of scope per spec.md §1); it only preserves the
// distinction for a downstream consumer.
type SetFlags struct {
	// InIT is true if this value depends on the runtime IT-block state.
	InIT bool
	// Value is the literal flag (when InIT is false) or the encoding's
	// raw toggle bit (when InIT is true); see Resolve.
	Value bool
}

// Literal constructs a SetFlags whose value is fixed at decode time.
func Literal(v bool) SetFlags {
	return SetFlags{InIT: false, Value: v}
}

// InITBlock constructs a SetFlags whose value depends on IT-block state,
// per the XOR relationship documented in arch/src/set_flags.rs:
// set_flags = !inITBlock XOR value.
func InITBlock(v bool) SetFlags {
	return SetFlags{InIT: true, Value: v}
}

// Resolve computes the effective flag-setting decision given whether the
// instruction is currently executing inside an IT block. This is offered
// as a convenience for consumers; the decoder itself never calls it.
func (s SetFlags) Resolve(inITBlock bool) bool {
	if !s.InIT {
		return s.Value
	}
	return (!inITBlock) != s.Value
}
