package thumb2

// NextOperation decodes the single instruction at the front of stream,
// returning the number of half-words consumed (1 or 2) and the decoded
// Operation. On any error the stream is left exactly as it was before the
// call (property P2 in spec.md section 8): no half-words are consumed on
// a failing path.
//
// Grounded on the is32BitThumb2 classification and decode-then-advance
// sequencing in the teacher's stepARM7_M (hardware/memory/cartridge/arm/arm.go),
// generalised from "decode and execute in the same pass" into "decode,
// then let the caller decide what to do with the result".
func NextOperation(stream *Stream) (consumed int, op Operation, err error) {
	hw, err := stream.PeekHalfword()
	if err != nil {
		return 0, nil, err
	}

	if !is32BitThumb(hw) {
		op, err = decode16(hw)
		if err != nil {
			return 0, nil, err
		}
		stream.Consume(1)
		return 1, op, nil
	}

	word, err := stream.PeekWord()
	if err != nil {
		return 0, nil, err
	}
	op, err = decode32(word)
	if err != nil {
		return 0, nil, err
	}
	stream.Consume(2)
	return 2, op, nil
}

// is32BitThumb reports whether the half-word at the front of an
// instruction is the first half of a 32-bit encoding, per A5.1: bits
// [15:11] of 0b11101, 0b11110, or 0b11111 select a 32-bit instruction;
// every other pattern is a complete 16-bit instruction.
//
// Grounded on is32BitThumb2 in the teacher's hardware/memory/cartridge/arm/arm.go.
func is32BitThumb(hw uint16) bool {
	top5 := mask16(hw, 11, 15)
	return top5 == 0b11101 || top5 == 0b11110 || top5 == 0b11111
}
