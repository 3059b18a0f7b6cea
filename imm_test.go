package thumb2

import "testing"

func TestSignExtend(t *testing.T) {
	for width := 1; width <= 31; width++ {
		for _, x := range []uint32{0, 1, uint32(1)<<uint(width-1) - 1, uint32(1) << uint(width-1)} {
			if x >= uint32(1)<<uint(width) {
				continue
			}
			got := signExtendU32(x, width)
			signBit := uint32(1) << uint(width-1)
			var want uint32
			if x&signBit == 0 {
				want = x
			} else {
				want = x | (^uint32(0) << uint(width))
			}
			if got != want {
				t.Errorf("signExtendU32(%d, %d) = %#x, want %#x", x, width, got, want)
			}
		}
	}
}

func TestImmNBounds(t *testing.T) {
	if _, err := NewImmN(8, 3); err == nil {
		t.Errorf("NewImmN(8, 3) should fail: 8 >= 2^3")
	}
	v, err := NewImmN(7, 3)
	if err != nil || v.Value != 7 {
		t.Errorf("NewImmN(7, 3) = %v, %v", v, err)
	}
}
