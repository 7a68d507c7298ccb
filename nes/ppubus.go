package nes

import "github.com/golang/glog"

// ppuBus is the Console's implementation of PPUBus: pattern tables
// route through the cartridge's Mapper, nametables through 2 KiB of
// VRAM mirrored per the cartridge's advertised layout (spec.md §4.3).
// Constructed once by NewConsole and held for the PPU's lifetime.
type ppuBus struct {
	vram   *RAM
	mapper Mapper
	mirror Mirroring
}

func newPPUBus(vram *RAM, mapper Mapper, mirror Mirroring) *ppuBus {
	return &ppuBus{vram: vram, mapper: mapper, mirror: mirror}
}

// nametableLayout maps each of the four logical 1KiB nametables
// ($2000, $2400, $2800, $2C00, in that order) onto one of the 2
// physical 1KiB tables actually present in VRAM (spec.md §4.4).
var nametableLayout = map[Mirroring][4]uint16{
	MirrorHorizontal: {0, 0, 1, 1},
	MirrorVertical:   {0, 1, 0, 1},
}

// mirrorAddress resolves a nametable address ($2000-$3EFF, including
// the $3000-$3EFF mirror of $2000-$2EFF) to its offset into the 2KiB
// VRAM array.
func (b *ppuBus) mirrorAddress(address uint16) uint16 {
	normalized := (address - 0x2000) % 0x1000 // fold the $3000-$3EFF mirror onto $2000-$2FFF
	region := normalized / 0x0400
	offset := normalized % 0x0400
	table := nametableLayout[b.mirror][region]
	return table*0x0400 + offset
}

// Read reads data.
// Address        Size	  Description
// -------------------------------------
// $0000-$0FFF	  $1000	  Pattern table 0
// $1000-$1FFF	  $1000	  Pattern table 1
// $2000-$23FF	  $0400	  Nametable 0
// $2400-$27FF	  $0400	  Nametable 1
// $2800-$2BFF	  $0400	  Nametable 2
// $2C00-$2FFF	  $0400	  Nametable 3
// $3000-$3EFF	  $0F00	  Mirrors of $2000-$2EFF
// Palette RAM ($3F00-$3FFF) is handled inside the PPU itself, never
// routed through here.
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *ppuBus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.mapper.ReadCHR(address)
	case address < 0x3F00:
		return b.vram.read(b.mirrorAddress(address))
	default:
		glog.Fatalf("Unknown PPU bus read: 0x%04x\n", address)
		return 0
	}
}

// Write writes data. Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *ppuBus) Write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.mapper.WriteCHR(address, data)
	case address < 0x3F00:
		b.vram.write(b.mirrorAddress(address), data)
	default:
		glog.Fatalf("Unknown PPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	}
}
