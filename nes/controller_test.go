package nes

import "testing"

func TestControllerShiftsOutLSBFirst(t *testing.T) {
	c := NewController()
	c.PressButton(ButtonA)
	c.PressButton(ButtonStart)
	c.write(1) // strobe high: continuously reload
	c.write(0) // strobe low: latch and start shifting

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := c.read(); got != w {
			t.Fatalf("bit %d: got=%d, want=%d", i, got, w)
		}
	}
}

func TestControllerReadPastEighthBitReturnsZero(t *testing.T) {
	// spec.md §4.6: read #9 onwards returns 0 (or 1 per platform); this
	// implementation picks 0.
	c := NewController()
	c.write(1)
	c.write(0)
	for i := 0; i < 8; i++ {
		c.read()
	}
	if got := c.read(); got != 0 {
		t.Fatalf("9th read: got=%d, want=0", got)
	}
}

func TestControllerStrobeHighResetsIndex(t *testing.T) {
	c := NewController()
	c.PressButton(ButtonRight)
	c.write(1)
	c.write(0)
	c.read()
	c.read()
	c.write(1) // re-strobe mid-shift
	c.write(0)
	if got := c.read(); got != 0 {
		t.Fatalf("first bit after re-strobe: got=%d, want=0 (A not pressed)", got)
	}
}

func TestControllerPeekDoesNotAdvance(t *testing.T) {
	c := NewController()
	c.PressButton(ButtonA)
	c.write(1)
	c.write(0)
	if got := c.peek(); got != 1 {
		t.Fatalf("peek: got=%d, want=1", got)
	}
	if got := c.peek(); got != 1 {
		t.Fatalf("second peek: got=%d, want=1 (unchanged)", got)
	}
	if got := c.read(); got != 1 {
		t.Fatalf("read after peek: got=%d, want=1", got)
	}
}

func TestControllerSetAndUpdateInputAgree(t *testing.T) {
	c1 := NewController()
	c1.Set([8]bool{true, false, false, true, false, false, false, false})

	c2 := NewController()
	c2.UpdateInput(0b00001001) // bit0=A, bit3=Start

	c1.write(1)
	c1.write(0)
	c2.write(1)
	c2.write(0)
	for i := 0; i < 8; i++ {
		a, b := c1.read(), c2.read()
		if a != b {
			t.Fatalf("bit %d diverged: Set=%d, UpdateInput=%d", i, a, b)
		}
	}
}
