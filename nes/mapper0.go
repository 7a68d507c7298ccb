package nes

// mapper0 implements NROM: https://www.nesdev.org/wiki/NROM
//
// Invariant (spec.md §3): with one PRG-ROM unit, $8000-$BFFF and
// $C000-$FFFF both mirror the same 16 KiB bank (addr&0x3FFF); with two
// units, $8000-$FFFF maps flat across both (addr-0x8000).
type mapper0 struct {
	prgROM   []byte
	chrROM   []byte
	chrIsRAM bool
}

func newMapper0(prgROM, chrROM []byte, chrIsRAM bool) *mapper0 {
	return &mapper0{prgROM: prgROM, chrROM: chrROM, chrIsRAM: chrIsRAM}
}

func (m *mapper0) ReadPRG(address uint16) byte {
	if len(m.prgROM) <= prgROMSizeUnit {
		return m.prgROM[address&0x3FFF]
	}
	return m.prgROM[address-0x8000]
}

// WritePRG is a no-op: NROM has no PRG-RAM and the ROM itself is read-only.
func (m *mapper0) WritePRG(address uint16, data byte) {}

func (m *mapper0) ReadCHR(address uint16) byte {
	return m.chrROM[address]
}

func (m *mapper0) WriteCHR(address uint16, data byte) {
	// Most NROM boards ship CHR-ROM and reject writes; boards with
	// CHR-RAM (no CHR-ROM declared in the header) allow them.
	if m.chrIsRAM {
		m.chrROM[address] = data
	}
}
