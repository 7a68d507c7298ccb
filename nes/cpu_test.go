package nes

import "testing"

// buildROM assembles a minimal one-bank NROM image (no CHR-ROM, so CHR-RAM
// is synthesized) with prg placed at the start of the 16KiB PRG bank and
// the reset vector pointed at it. The pack carries no nestest.nes/.log
// fixture to diff against, so these tests hand-trace small programs
// instead of replaying a golden log.
func buildROM(prg []byte) []byte {
	data := make([]byte, inesHeaderSizeBytes+prgROMSizeUnit)
	copy(data, []byte{'N', 'E', 'S', msdosEOF})
	data[4] = 1 // 1x16KiB PRG unit
	data[5] = 0 // CHR-RAM
	copy(data[inesHeaderSizeBytes:], prg)
	// reset vector -> 0x8000
	data[inesHeaderSizeBytes+0x3FFC] = 0x00
	data[inesHeaderSizeBytes+0x3FFD] = 0x80
	return data
}

func newTestConsole(t *testing.T, prg []byte) *Console {
	t.Helper()
	cartridge, err := NewCartridge(buildROM(prg))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	console, err := NewConsole(cartridge)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	console.Reset()
	return console
}

func TestCPUResetVector(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA}) // NOP
	if console.CPU.PC != 0x8000 {
		t.Fatalf("PC after reset: got=0x%04x, want=0x8000", console.CPU.PC)
	}
	if console.CPU.S != 0xFD {
		t.Fatalf("S after reset: got=0x%02x, want=0xFD", console.CPU.S)
	}
}

func TestCPULoadAndTransfer(t *testing.T) {
	console := newTestConsole(t, []byte{
		0xA9, 0x42, // LDA #$42
		0xAA,       // TAX
		0xA8,       // TAY
		0xE8,       // INX
		0x88,       // DEY
	})
	cpu := console.CPU
	for i := 0; i < 5; i++ {
		if _, err := cpu.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if cpu.A != 0x42 {
		t.Errorf("A: got=0x%02x, want=0x42", cpu.A)
	}
	if cpu.X != 0x43 {
		t.Errorf("X: got=0x%02x, want=0x43", cpu.X)
	}
	if cpu.Y != 0x41 {
		t.Errorf("Y: got=0x%02x, want=0x41", cpu.Y)
	}
}

func TestCPUBranchTakenAddsCycle(t *testing.T) {
	console := newTestConsole(t, []byte{
		0xA9, 0x00, // LDA #$00
		0xF0, 0x01, // BEQ +1 (taken, no page cross)
		0xEA,       // NOP (skipped)
		0xEA,       // NOP (branch target)
	})
	cpu := console.CPU
	if _, err := cpu.Step(); err != nil { // LDA
		t.Fatalf("Step LDA: %v", err)
	}
	cycles, err := cpu.Step() // BEQ, taken
	if err != nil {
		t.Fatalf("Step BEQ: %v", err)
	}
	if cycles != 3 {
		t.Fatalf("BEQ cycles: got=%d, want=3 (2 base + 1 taken)", cycles)
	}
	if cpu.PC != 0x8005 {
		t.Fatalf("PC after branch: got=0x%04x, want=0x8005", cpu.PC)
	}
}

func TestCPUStackPushPull(t *testing.T) {
	console := newTestConsole(t, []byte{
		0xA9, 0x7E, // LDA #$7E
		0x48,       // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	})
	cpu := console.CPU
	for i := 0; i < 4; i++ {
		if _, err := cpu.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if cpu.A != 0x7E {
		t.Fatalf("A after PLA: got=0x%02x, want=0x7E", cpu.A)
	}
	if cpu.S != 0xFD {
		t.Fatalf("S after balanced push/pull: got=0x%02x, want=0xFD", cpu.S)
	}
}

func TestCPUUnknownOpcodeCallsHook(t *testing.T) {
	console := newTestConsole(t, []byte{0x02}) // illegal: KIL/JAM slot mapped to NOP
	var gotOpcode byte
	var gotPC uint16
	console.CPU.OnUnknownOpcode = func(opcode byte, pc uint16) {
		gotOpcode, gotPC = opcode, pc
	}
	if _, err := console.CPU.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if gotOpcode != 0x02 || gotPC != 0x8000 {
		t.Fatalf("OnUnknownOpcode: got=(0x%02x, 0x%04x), want=(0x02, 0x8000)", gotOpcode, gotPC)
	}
}

func TestCPUJMPIndirectPageWrapBug(t *testing.T) {
	// JMP ($80FF) must read the high byte from $8000, not $8100, on
	// real 6502 hardware; spec.md §4.2 asks us to reproduce this.
	prg := make([]byte, 0x300)
	prg[0] = 0x6C // JMP (indirect)
	prg[1] = 0xFF
	prg[2] = 0x80
	prg[0xFF] = 0x34 // low byte of target, at $80FF
	console := newTestConsole(t, prg)
	if _, err := console.CPU.Step(); err != nil {
		t.Fatalf("Step JMP: %v", err)
	}
	// wrapped high byte comes from $8000, which holds the JMP opcode
	// itself (0x6C), giving a bogus but hardware-faithful target.
	want := uint16(0x6C)<<8 | 0x34
	if console.CPU.PC != want {
		t.Fatalf("PC after buggy JMP indirect: got=0x%04x, want=0x%04x", console.CPU.PC, want)
	}
}

func TestCPUBRKPushesReturnAddressPlusTwo(t *testing.T) {
	console := newTestConsole(t, []byte{
		0x00, 0xEA, // BRK; NOP
	})
	cpu := console.CPU
	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step BRK: %v", err)
	}
	hi := console.Peek(0x0100 | uint16(cpu.S+3))
	lo := console.Peek(0x0100 | uint16(cpu.S+2))
	pushed := uint16(hi)<<8 | uint16(lo)
	if pushed != 0x8002 {
		t.Fatalf("pushed return address: got=0x%04x, want=0x8002", pushed)
	}
	pushedStatus := console.Peek(0x0100 | uint16(cpu.S+1))
	if pushedStatus&0x10 == 0 {
		t.Fatalf("pushed status B flag: got=0x%02x, want B set", pushedStatus)
	}
}
