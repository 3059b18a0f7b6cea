package thumb2

import "testing"

func TestNewConditionBounds(t *testing.T) {
	c, err := NewCondition(0b1110)
	if err != nil || c != CondNone {
		t.Errorf("NewCondition(0b1110) = %v, %v; want CondNone, nil", c, err)
	}
	if _, err := NewCondition(0b1111); err == nil {
		t.Error("NewCondition(0b1111) should fail")
	}
}

func TestConditionInvertIsInvolution(t *testing.T) {
	for c := CondEQ; c <= CondLE; c++ {
		inv := c.Invert()
		if inv.Invert() != c {
			t.Errorf("Invert(Invert(%v)) = %v, want %v", c, inv.Invert(), c)
		}
		if inv == c {
			t.Errorf("Invert(%v) = %v, should differ from input", c, inv)
		}
	}
}

func TestITConditionDerivation(t *testing.T) {
	// base EQ, all-ones mask keeps EQ at every slot.
	it := NewITCondition(CondEQ, 0b111)
	for i, c := range it.Conditions {
		if c != CondEQ {
			t.Errorf("slot %d = %v, want CondEQ", i, c)
		}
	}
	// all-zero mask inverts at every slot.
	it = NewITCondition(CondEQ, 0b000)
	for i, c := range it.Conditions {
		if c != CondNE {
			t.Errorf("slot %d = %v, want CondNE", i, c)
		}
	}
	if len(it.Conditions) != 3 {
		t.Errorf("len(Conditions) = %d, want 3", len(it.Conditions))
	}
}
