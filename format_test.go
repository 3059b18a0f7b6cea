package thumb2

import "testing"

func TestFormatMovImmediate(t *testing.T) {
	imm, _ := NewImmN(1, 8)
	got := Format(MovImmediate{Rd: R0, Imm8: imm})
	want := "MOV R0, #1"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatLsl(t *testing.T) {
	got := Format(Lsl{Rd: R1, Rm: R2, Imm: ImmShift{Kind: LSL, Amount: 3}})
	want := "LSL R1, R2, #3"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatAddImmediateWorkedExample(t *testing.T) {
	imm, _ := NewImmN(0x988, 12)
	got := Format(AddImmediate{Rd: R1, Rn: R0, Imm: imm})
	want := "ADDW R1, R0, #2440"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
