package nes

import "testing"

func header(prgUnits, chrUnits, flags6, flags7 byte) []byte {
	h := make([]byte, inesHeaderSizeBytes)
	copy(h, []byte{'N', 'E', 'S', msdosEOF})
	h[4] = prgUnits
	h[5] = chrUnits
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestNewCartridgeRejectsBadMagic(t *testing.T) {
	data := make([]byte, 32)
	if _, err := NewCartridge(data); err == nil {
		t.Fatal("expected error for missing iNES magic")
	}
}

func TestNewCartridgeRejectsTruncatedPRG(t *testing.T) {
	data := append(header(2, 0, 0, 0), make([]byte, prgROMSizeUnit)...) // declares 2 units, ships 1
	if _, err := NewCartridge(data); err == nil {
		t.Fatal("expected error for truncated PRG-ROM")
	}
}

func TestNewCartridgeCHRRAMWhenNoUnitsDeclared(t *testing.T) {
	data := append(header(1, 0, 0, 0), make([]byte, prgROMSizeUnit)...)
	c, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if !c.chrIsRAM {
		t.Fatal("expected chrIsRAM when header declares 0 CHR units")
	}
	if len(c.chrROM) != chrROMSizeUnit {
		t.Fatalf("chrROM size: got=%d, want=%d", len(c.chrROM), chrROMSizeUnit)
	}
}

func TestNewCartridgeMirroringFromFlags6(t *testing.T) {
	data := append(header(1, 0, 1, 0), make([]byte, prgROMSizeUnit)...)
	c, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.Mirroring() != MirrorVertical {
		t.Fatalf("mirroring: got=%v, want=MirrorVertical", c.Mirroring())
	}
}

func TestNewCartridgeMapperNumberFromFlags(t *testing.T) {
	// mapper 2 = UxROM: the mapper number's low nibble comes from the
	// upper nibble of flags6, its high nibble from the upper nibble of flags7.
	data := append(header(1, 0, 0x20, 0x00), make([]byte, prgROMSizeUnit)...)
	c, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.mapperNum != 2 {
		t.Fatalf("mapperNum: got=%d, want=2", c.mapperNum)
	}
}

func TestNewMapperUnsupported(t *testing.T) {
	data := append(header(1, 0, 0xF0, 0xF0), make([]byte, prgROMSizeUnit)...)
	c, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if _, err := c.NewMapper(); err == nil {
		t.Fatal("expected ErrUnsupportedMapper")
	}
}

func TestNewMapper0Mirrors16KiBBank(t *testing.T) {
	prg := make([]byte, prgROMSizeUnit)
	prg[0] = 0xAB
	data := append(header(1, 1, 0, 0), prg...)
	data = append(data, make([]byte, chrROMSizeUnit)...)
	c, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	m, err := c.NewMapper()
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.ReadPRG(0x8000); got != 0xAB {
		t.Fatalf("ReadPRG(0x8000): got=0x%02x, want=0xAB", got)
	}
	if got := m.ReadPRG(0xC000); got != 0xAB {
		t.Fatalf("ReadPRG(0xC000): got=0x%02x, want=0xAB (mirrored)", got)
	}
}
