package nes

// mapper2 implements UxROM: https://www.nesdev.org/wiki/UxROM
//
// Kept from the teacher repo as additional coverage beyond spec.md's
// NROM requirement (see SPEC_FULL.md §3); not exercised by the
// documented test scenarios, only by mapper2_test.go.
type mapper2 struct {
	banks       int
	currentBank int
	prgROM      []byte
	chrROM      []byte // always CHR-RAM on UxROM boards.

	onBankSwitch func(bank int)
}

func newMapper2(prgROM, chrROM []byte) *mapper2 {
	banks := len(prgROM) / prgROMSizeUnit
	ram := make([]byte, chrROMSizeUnit)
	copy(ram, chrROM)
	return &mapper2{banks: banks, prgROM: prgROM, chrROM: ram}
}

func (m *mapper2) ReadPRG(address uint16) byte {
	if address < 0xC000 {
		return m.prgROM[m.currentBank*prgROMSizeUnit+int(address-0x8000)]
	}
	return m.prgROM[(m.banks-1)*prgROMSizeUnit+int(address-0xC000)]
}

func (m *mapper2) WritePRG(address uint16, data byte) {
	if address >= 0x8000 {
		m.currentBank = int(data) % m.banks
		if m.onBankSwitch != nil {
			m.onBankSwitch(m.currentBank)
		}
	}
}

func (m *mapper2) ReadCHR(address uint16) byte {
	return m.chrROM[address]
}

func (m *mapper2) WriteCHR(address uint16, data byte) {
	m.chrROM[address] = data
}
