package thumb2

// mask16 returns bits [end:start] of word, right-justified. start and end
// are inclusive bit indices with start <= end <= 15.
//
// Grounded on the Mask trait in arch/src/lib.rs of the original
// implementation, and on the inline "word.mask::<4,10>()"-style field
// extraction used throughout the teacher's thumb2_32bit.go.
func mask16(word uint16, start, end int) uint16 {
	shifted := word >> uint(start)
	width := end - start + 1
	m := uint16(1)<<uint(width) - 1
	return shifted & m
}

// mask32 is the 32-bit form of mask16.
func mask32(word uint32, start, end int) uint32 {
	shifted := word >> uint(start)
	width := end - start + 1
	m := uint32(1)<<uint(width) - 1
	return shifted & m
}

// bit16 reports whether bit n of word is set.
func bit16(word uint16, n int) bool {
	return mask16(word, n, n) == 1
}

// bit32 reports whether bit n of word is set.
func bit32(word uint32, n int) bool {
	return mask32(word, n, n) == 1
}

// combine32 concatenates fields, most-significant first, into a single
// 32-bit integer. widths[i] is the bit-width of fields[i]. The caller is
// responsible for ensuring each field actually fits in its declared width;
// combine32 does not mask its inputs.
//
// This is the "bit stitching" operation referenced throughout spec.md,
// e.g. assembling imm12 from i:imm3:imm8 in data-processing modified
// immediate encodings.
func combine32(fields []uint32, widths []int) uint32 {
	total := 0
	for _, w := range widths {
		total += w
	}

	var result uint32
	shift := total
	for i, f := range fields {
		shift -= widths[i]
		result |= f << uint(shift)
	}
	return result
}

// combine16 is the narrow form of combine32, used when the stitched value
// is known to fit in 16 bits (e.g. register lists).
func combine16(fields []uint16, widths []int) uint16 {
	total := 0
	for _, w := range widths {
		total += w
	}

	var result uint16
	shift := total
	for i, f := range fields {
		shift -= widths[i]
		result |= f << uint(shift)
	}
	return result
}
