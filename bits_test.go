package thumb2

import "testing"

func TestMask16(t *testing.T) {
	tests := []struct {
		word       uint16
		start, end int
		want       uint16
	}{
		{0b1111_0000_0000_0000, 11, 15, 0b11110},
		{0xffff, 0, 15, 0xffff},
		{0x00f0, 4, 7, 0xf},
		{0x0001, 0, 0, 1},
	}
	for _, tt := range tests {
		if got := mask16(tt.word, tt.start, tt.end); got != tt.want {
			t.Errorf("mask16(%016b, %d, %d) = %b, want %b", tt.word, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestMask32(t *testing.T) {
	tests := []struct {
		word       uint32
		start, end int
		want       uint32
	}{
		{0xffffffff, 0, 31, 0xffffffff},
		{0x000000f0, 4, 7, 0xf},
		{0x80000000, 31, 31, 1},
	}
	for _, tt := range tests {
		if got := mask32(tt.word, tt.start, tt.end); got != tt.want {
			t.Errorf("mask32(%032b, %d, %d) = %b, want %b", tt.word, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCombine32(t *testing.T) {
	// i:imm3:imm8 stitching from a data-processing modified immediate
	// encoding, widths 1,3,8 = 12 bits total.
	got := combine32([]uint32{1, 0b001, 0b10001000}, []int{1, 3, 8})
	want := uint32(0b100110001000)
	if got != want {
		t.Errorf("combine32 = %012b, want %012b", got, want)
	}
}

func TestCombine16(t *testing.T) {
	got := combine16([]uint16{1, 0, 0b0000000000001}, []int{1, 1, 13})
	want := uint16(0b100000000000001)
	if got != want {
		t.Errorf("combine16 = %013b, want %013b", got, want)
	}
}
