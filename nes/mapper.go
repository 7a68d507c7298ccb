package nes

// Mapper resolves CPU and PPU addresses into cartridge ROM/RAM offsets.
// Reads and writes never fail: an address outside the cartridge's
// windows is a programmer error in the caller's address decode, not a
// mapper concern, so implementations index unconditionally.
type Mapper interface {
	ReadPRG(address uint16) byte
	WritePRG(address uint16, data byte)
	ReadCHR(address uint16) byte
	WriteCHR(address uint16, data byte)
}
