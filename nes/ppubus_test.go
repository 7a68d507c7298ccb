package nes

import "testing"

func TestPPUBusHorizontalMirroringAliasesNametables(t *testing.T) {
	vram := NewRAM()
	mapper := newMapper0(make([]byte, prgROMSizeUnit), make([]byte, chrROMSizeUnit), true)
	bus := newPPUBus(vram, mapper, MirrorHorizontal)

	// Horizontal: {0,0,1,1} -- $2000 and $2400 alias the same physical table.
	bus.Write(0x2000, 0xAA)
	if got := bus.Read(0x2400); got != 0xAA {
		t.Fatalf("Read(0x2400): got=0x%02x, want=0xAA ($2000/$2400 should alias under horizontal mirroring)", got)
	}
	// $2800 and $2C00 alias the other physical table, distinct from $2000.
	bus.Write(0x2800, 0x55)
	if got := bus.Read(0x2C00); got != 0x55 {
		t.Fatalf("Read(0x2C00): got=0x%02x, want=0x55 ($2800/$2C00 should alias under horizontal mirroring)", got)
	}
	if got := bus.Read(0x2000); got == 0x55 {
		t.Fatal("Read(0x2000): $2000 must not alias $2800 under horizontal mirroring")
	}
}

func TestPPUBusVerticalMirroringAliasesNametables(t *testing.T) {
	vram := NewRAM()
	mapper := newMapper0(make([]byte, prgROMSizeUnit), make([]byte, chrROMSizeUnit), true)
	bus := newPPUBus(vram, mapper, MirrorVertical)

	// Vertical: {0,1,0,1} -- $2000 and $2800 alias the same physical table.
	bus.Write(0x2000, 0xAA)
	if got := bus.Read(0x2800); got != 0xAA {
		t.Fatalf("Read(0x2800): got=0x%02x, want=0xAA ($2000/$2800 should alias under vertical mirroring)", got)
	}
	// $2400 and $2C00 alias the other physical table, distinct from $2000.
	bus.Write(0x2400, 0x55)
	if got := bus.Read(0x2C00); got != 0x55 {
		t.Fatalf("Read(0x2C00): got=0x%02x, want=0x55 ($2400/$2C00 should alias under vertical mirroring)", got)
	}
	if got := bus.Read(0x2000); got == 0x55 {
		t.Fatal("Read(0x2000): $2000 must not alias $2400 under vertical mirroring")
	}
}

func TestPPUBusMirrorsThreeThousandRangeOntoTwoThousandRange(t *testing.T) {
	vram := NewRAM()
	mapper := newMapper0(make([]byte, prgROMSizeUnit), make([]byte, chrROMSizeUnit), true)
	bus := newPPUBus(vram, mapper, MirrorVertical)

	bus.Write(0x2001, 0x42)
	if got := bus.Read(0x3001); got != 0x42 {
		t.Fatalf("Read(0x3001): got=0x%02x, want=0x42 ($3000-$3EFF mirrors $2000-$2EFF)", got)
	}
}
