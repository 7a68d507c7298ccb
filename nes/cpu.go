package nes

import "fmt"

// CPU emulates the NES's 6502-family processor (Ricoh 2A03, no decimal
// mode, no second controller port wiring here).
// References:
//
//	https://en.wikipedia.org/wiki/MOS_Technology_6502
//	http://www.6502.org/tutorials/6502opcodes.html
//	https://www.nesdev.org/wiki/CPU
const CPUFrequency = 1789773

// Bus is what the CPU reads and writes through. A Console implements it
// directly (spec.md §9: the bus is a type-level address-decode concept,
// not a runtime aggregate rebuilt every step).
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, data byte)
	// Peek reads without side effects (no vblank-clear on $2002, no
	// buffer swap or address increment on $2007, no controller shift on
	// $4016). Used by debuggers and tests.
	Peek(address uint16) byte
}

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

type status struct {
	C bool // carry
	Z bool // zero
	I bool // IRQ disable
	D bool // decimal - unused on NES, kept so SED/CLD round-trip
	V bool // overflow
	N bool // negative
}

// encode packs the flags into the conventional NVRBDIZC layout. The
// break (B) and reserved (R) bits are not persistent CPU state on real
// 6502 hardware; callers pass the break value appropriate to the push
// they're doing (1 for BRK/PHP, 0 for NMI/IRQ).
func (s *status) encode(breakFlag bool) byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if breakFlag {
		res |= 1 << 4
	}
	res |= 1 << 5 // reserved bit always reads back as 1.
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

func (s *status) decodeFrom(data byte) {
	s.C = (data>>0)&1 == 1
	s.Z = (data>>1)&1 == 1
	s.I = (data>>2)&1 == 1
	s.D = (data>>3)&1 == 1
	s.V = (data>>6)&1 == 1
	s.N = (data>>7)&1 == 1
}

type instruction struct {
	mnemonic    string
	mode        addressingMode
	execute     func(addressingMode, uint16)
	size        uint16
	cycles      int
	documented  bool
	pageCrossOK bool // a page-crossing indexed/indirect read adds +1 cycle.
}

// CPU holds 6502 register state and drives fetch/decode/execute.
type CPU struct {
	P   status
	A   byte
	X   byte
	Y   byte
	PC  uint16
	S   byte
	bus Bus

	nmiPending    bool
	irqPending    bool
	lastExecution string

	instructions []instruction

	// OnUnknownOpcode, if set, is called for every opcode byte that has
	// no documented mnemonic (spec.md §4.2, §7: treated as a NOP of
	// correct length, never a fatal error, but worth surfacing to a
	// debug hook).
	OnUnknownOpcode func(opcode byte, pc uint16)
}

// NewCPU creates a CPU wired to bus and performs a power-on reset.
func NewCPU(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.instructions = c.createInstructions()
	c.Reset()
	return c
}

// Reset loads PC from the reset vector and sets the documented power-up
// register state (spec.md §3).
func (c *CPU) Reset() {
	c.PC = c.read16(0xFFFC)
	c.S = 0xFD
	c.P.decodeFrom(0x24)
}

// TriggerNMI requests an NMI be taken before the next instruction
// fetch. The Console calls this when the PPU asserts vblank-NMI.
func (c *CPU) TriggerNMI() { c.nmiPending = true }

// TriggerIRQ requests a maskable interrupt; ignored while I is set.
func (c *CPU) TriggerIRQ() { c.irqPending = true }

func (c *CPU) read(address uint16) byte     { return c.bus.Read(address) }
func (c *CPU) write(address uint16, v byte) { c.bus.Write(address, v) }

func (c *CPU) read16(address uint16) uint16 {
	lo := uint16(c.read(address))
	hi := uint16(c.read(address + 1))
	return hi<<8 | lo
}

// read16Bug reproduces the JMP (indirect) page-wrap bug: if the pointer
// sits at the last byte of a page, the high byte wraps to the start of
// the same page instead of crossing into the next one (spec.md §4.2).
func (c *CPU) read16Bug(address uint16) uint16 {
	lo := uint16(c.read(address))
	hiAddr := (address & 0xFF00) | uint16(byte(address)+1)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

func (c *CPU) push(v byte) {
	c.write(0x100|uint16(c.S), v)
	c.S--
}

func (c *CPU) pop() byte {
	c.S++
	return c.read(0x100 | uint16(c.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) setN(v byte) { c.P.N = v&0x80 != 0 }
func (c *CPU) setZ(v byte) { c.P.Z = v == 0 }

func samePage(a, b uint16) bool { return a&0xFF00 == b&0xFF00 }

// nmi services a non-maskable interrupt: 7 cycles, B=0 pushed.
func (c *CPU) nmi() {
	c.pushWord(c.PC)
	c.push(c.P.encode(false))
	c.P.I = true
	c.PC = c.read16(0xFFFA)
}

// irq services a maskable interrupt, masked when I is set.
func (c *CPU) irq() {
	c.pushWord(c.PC)
	c.push(c.P.encode(false))
	c.P.I = true
	c.PC = c.read16(0xFFFE)
}

// Step runs one unit of work: either an interrupt sequence or one full
// fetch-decode-execute instruction. It returns the number of CPU
// cycles consumed. OAM-DMA stalling is handled entirely by
// Console.stepDMA, outside the CPU (spec.md §4.3); the CPU has no
// stall state of its own.
func (c *CPU) Step() (int, error) {
	if c.nmiPending {
		c.nmiPending = false
		c.nmi()
		return 7, nil
	}
	if c.irqPending {
		c.irqPending = false
		if !c.P.I {
			c.irq()
			return 7, nil
		}
	}

	opcode := c.read(c.PC)
	inst := c.instructions[opcode]
	if !inst.documented && c.OnUnknownOpcode != nil {
		c.OnUnknownOpcode(opcode, c.PC)
	}

	var operand uint16
	pageCrossed := false
	switch inst.mode {
	case implied, accumulator:
		operand = 0
	case immediate:
		operand = c.PC + 1
	case zeropage:
		operand = uint16(c.read(c.PC + 1))
	case zeropageX:
		operand = uint16(c.read(c.PC+1)+c.X) & 0xFF
	case zeropageY:
		operand = uint16(c.read(c.PC+1)+c.Y) & 0xFF
	case relative:
		offset := c.read(c.PC + 1)
		base := c.PC + 2
		if offset < 0x80 {
			operand = base + uint16(offset)
		} else {
			operand = base + uint16(offset) - 0x100
		}
	case absolute:
		operand = c.read16(c.PC + 1)
	case absoluteX:
		base := c.read16(c.PC + 1)
		operand = base + uint16(c.X)
		pageCrossed = !samePage(base, operand)
	case absoluteY:
		base := c.read16(c.PC + 1)
		operand = base + uint16(c.Y)
		pageCrossed = !samePage(base, operand)
	case indirect:
		operand = c.read16Bug(c.read16(c.PC + 1))
	case indirectX:
		ptr := c.read(c.PC+1) + c.X
		operand = uint16(c.read(uint16(ptr))) | uint16(c.read(uint16(ptr+1)))<<8
	case indirectY:
		ptr := c.read(c.PC + 1)
		base := uint16(c.read(uint16(ptr))) | uint16(c.read(uint16(ptr+1)))<<8
		operand = base + uint16(c.Y)
		pageCrossed = !samePage(base, operand)
	}

	c.PC += inst.size
	pcAfterFetch := c.PC
	c.lastExecution = fmt.Sprintf("PC=0x%04x A=0x%02x X=0x%02x Y=0x%02x S=0x%02x op=0x%02x %s operand=0x%04x",
		pcAfterFetch, c.A, c.X, c.Y, c.S, opcode, inst.mnemonic, operand)

	inst.execute(inst.mode, operand)

	cycles := inst.cycles
	if pageCrossed && inst.pageCrossOK {
		cycles++
	}
	if inst.mode == relative && c.PC != pcAfterFetch {
		cycles++
		if !samePage(pcAfterFetch, c.PC) {
			cycles++
		}
	}
	return cycles, nil
}

// LastExecution returns a human-readable trace of the most recently
// decoded instruction, for the debug console.
func (c *CPU) LastExecution() string { return c.lastExecution }

// --- instructions ---

func (c *CPU) adc(mode addressingMode, operand uint16) {
	a := c.A
	m := c.read(operand)
	var carry byte
	if c.P.C {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + uint16(carry)
	c.A = byte(sum)
	c.P.C = sum > 0xFF
	c.P.V = (a^m)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) and(mode addressingMode, operand uint16) {
	c.A &= c.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) asl(mode addressingMode, operand uint16) {
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A <<= 1
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	v := c.read(operand)
	c.P.C = v&0x80 != 0
	v <<= 1
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}

func (c *CPU) bcc(mode addressingMode, operand uint16) {
	if !c.P.C {
		c.PC = operand
	}
}
func (c *CPU) bcs(mode addressingMode, operand uint16) {
	if c.P.C {
		c.PC = operand
	}
}
func (c *CPU) beq(mode addressingMode, operand uint16) {
	if c.P.Z {
		c.PC = operand
	}
}

func (c *CPU) bit(mode addressingMode, operand uint16) {
	v := c.read(operand)
	c.P.Z = c.A&v == 0
	c.P.V = v&0x40 != 0
	c.P.N = v&0x80 != 0
}

func (c *CPU) bmi(mode addressingMode, operand uint16) {
	if c.P.N {
		c.PC = operand
	}
}
func (c *CPU) bne(mode addressingMode, operand uint16) {
	if !c.P.Z {
		c.PC = operand
	}
}
func (c *CPU) bpl(mode addressingMode, operand uint16) {
	if !c.P.N {
		c.PC = operand
	}
}

// brk pushes PC+2 and P with B=1 (spec.md §4.2).
func (c *CPU) brk(mode addressingMode, operand uint16) {
	c.pushWord(c.PC + 1)
	c.push(c.P.encode(true))
	c.P.I = true
	c.PC = c.read16(0xFFFE)
}

func (c *CPU) bvc(mode addressingMode, operand uint16) {
	if !c.P.V {
		c.PC = operand
	}
}
func (c *CPU) bvs(mode addressingMode, operand uint16) {
	if c.P.V {
		c.PC = operand
	}
}

func (c *CPU) clc(mode addressingMode, operand uint16) { c.P.C = false }
func (c *CPU) cld(mode addressingMode, operand uint16) { c.P.D = false }
func (c *CPU) cli(mode addressingMode, operand uint16) { c.P.I = false }
func (c *CPU) clv(mode addressingMode, operand uint16) { c.P.V = false }

func (c *CPU) compare(reg byte, operand uint16) {
	m := c.read(operand)
	c.P.C = reg >= m
	r := reg - m
	c.setN(r)
	c.setZ(r)
}
func (c *CPU) cmp(mode addressingMode, operand uint16) { c.compare(c.A, operand) }
func (c *CPU) cpx(mode addressingMode, operand uint16) { c.compare(c.X, operand) }
func (c *CPU) cpy(mode addressingMode, operand uint16) { c.compare(c.Y, operand) }

func (c *CPU) dec(mode addressingMode, operand uint16) {
	v := c.read(operand) - 1
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}
func (c *CPU) dex(mode addressingMode, operand uint16) {
	c.X--
	c.setN(c.X)
	c.setZ(c.X)
}
func (c *CPU) dey(mode addressingMode, operand uint16) {
	c.Y--
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) eor(mode addressingMode, operand uint16) {
	c.A ^= c.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) inc(mode addressingMode, operand uint16) {
	v := c.read(operand) + 1
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}
func (c *CPU) inx(mode addressingMode, operand uint16) {
	c.X++
	c.setN(c.X)
	c.setZ(c.X)
}
func (c *CPU) iny(mode addressingMode, operand uint16) {
	c.Y++
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) jmp(mode addressingMode, operand uint16) { c.PC = operand }

func (c *CPU) jsr(mode addressingMode, operand uint16) {
	c.pushWord(c.PC - 1)
	c.PC = operand
}

func (c *CPU) lda(mode addressingMode, operand uint16) {
	c.A = c.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}
func (c *CPU) ldx(mode addressingMode, operand uint16) {
	c.X = c.read(operand)
	c.setN(c.X)
	c.setZ(c.X)
}
func (c *CPU) ldy(mode addressingMode, operand uint16) {
	c.Y = c.read(operand)
	c.setN(c.Y)
	c.setZ(c.Y)
}

func (c *CPU) lsr(mode addressingMode, operand uint16) {
	if mode == accumulator {
		c.P.C = c.A&1 == 1
		c.A >>= 1
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	v := c.read(operand)
	c.P.C = v&1 == 1
	v >>= 1
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}

func (c *CPU) nop(mode addressingMode, operand uint16) {}

func (c *CPU) ora(mode addressingMode, operand uint16) {
	c.A |= c.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) pha(mode addressingMode, operand uint16) { c.push(c.A) }
func (c *CPU) php(mode addressingMode, operand uint16) { c.push(c.P.encode(true)) }
func (c *CPU) pla(mode addressingMode, operand uint16) {
	c.A = c.pop()
	c.setN(c.A)
	c.setZ(c.A)
}
func (c *CPU) plp(mode addressingMode, operand uint16) { c.P.decodeFrom(c.pop()) }

func (c *CPU) rol(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 1
	}
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A = (c.A << 1) | carry
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	v := c.read(operand)
	c.P.C = v&0x80 != 0
	v = (v << 1) | carry
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}

func (c *CPU) ror(mode addressingMode, operand uint16) {
	var carry byte
	if c.P.C {
		carry = 1
	}
	if mode == accumulator {
		c.P.C = c.A&1 == 1
		c.A = (c.A >> 1) | (carry << 7)
		c.setN(c.A)
		c.setZ(c.A)
		return
	}
	v := c.read(operand)
	c.P.C = v&1 == 1
	v = (v >> 1) | (carry << 7)
	c.write(operand, v)
	c.setN(v)
	c.setZ(v)
}

func (c *CPU) rti(mode addressingMode, operand uint16) {
	c.P.decodeFrom(c.pop())
	c.PC = c.popWord()
}

func (c *CPU) rts(mode addressingMode, operand uint16) {
	c.PC = c.popWord() + 1
}

func (c *CPU) sbc(mode addressingMode, operand uint16) {
	a := c.A
	m := c.read(operand)
	var carry byte
	if c.P.C {
		carry = 1
	}
	sub := int16(a) - int16(m) - int16(1-carry)
	c.A = byte(sub)
	c.P.C = sub >= 0
	c.P.V = (a^m)&0x80 != 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
}

func (c *CPU) sec(mode addressingMode, operand uint16) { c.P.C = true }
func (c *CPU) sed(mode addressingMode, operand uint16) { c.P.D = true }
func (c *CPU) sei(mode addressingMode, operand uint16) { c.P.I = true }

func (c *CPU) sta(mode addressingMode, operand uint16) { c.write(operand, c.A) }
func (c *CPU) stx(mode addressingMode, operand uint16) { c.write(operand, c.X) }
func (c *CPU) sty(mode addressingMode, operand uint16) { c.write(operand, c.Y) }

func (c *CPU) tax(mode addressingMode, operand uint16) {
	c.X = c.A
	c.setN(c.X)
	c.setZ(c.X)
}
func (c *CPU) tay(mode addressingMode, operand uint16) {
	c.Y = c.A
	c.setN(c.Y)
	c.setZ(c.Y)
}
func (c *CPU) tsx(mode addressingMode, operand uint16) {
	c.X = c.S
	c.setN(c.X)
	c.setZ(c.X)
}
func (c *CPU) txa(mode addressingMode, operand uint16) {
	c.A = c.X
	c.setN(c.A)
	c.setZ(c.A)
}
func (c *CPU) txs(mode addressingMode, operand uint16) { c.S = c.X }
func (c *CPU) tya(mode addressingMode, operand uint16) {
	c.A = c.Y
	c.setN(c.A)
	c.setZ(c.A)
}

// createInstructions builds the full 256-entry opcode table. Official
// opcodes carry their documented mnemonic; every other slot is a NOP of
// the documented undocumented-opcode length/timing so test ROMs that
// execute illegal opcodes keep running instead of crashing (spec.md
// §4.2, §7).
func (c *CPU) createInstructions() []instruction {
	u := func(mode addressingMode, size uint16, cycles int) instruction {
		return instruction{"", mode, c.nop, size, cycles, false, false}
	}
	d := func(mnemonic string, mode addressingMode, fn func(addressingMode, uint16), size uint16, cycles int, pageCrossOK bool) instruction {
		return instruction{mnemonic, mode, fn, size, cycles, true, pageCrossOK}
	}
	return []instruction{
		d("BRK", implied, c.brk, 1, 7, false), d("ORA", indirectX, c.ora, 2, 6, false), u(implied, 1, 2), u(implied, 1, 2),
		u(zeropage, 2, 3), d("ORA", zeropage, c.ora, 2, 3, false), d("ASL", zeropage, c.asl, 2, 5, false), u(zeropage, 2, 5),
		d("PHP", implied, c.php, 1, 3, false), d("ORA", immediate, c.ora, 2, 2, false), d("ASL", accumulator, c.asl, 1, 2, false), u(implied, 1, 2),
		u(absolute, 3, 4), d("ORA", absolute, c.ora, 3, 4, false), d("ASL", absolute, c.asl, 3, 6, false), u(absolute, 3, 6),
		d("BPL", relative, c.bpl, 2, 2, false), d("ORA", indirectY, c.ora, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("ORA", zeropageX, c.ora, 2, 4, false), d("ASL", zeropageX, c.asl, 2, 6, false), u(zeropageX, 2, 6),
		d("CLC", implied, c.clc, 1, 2, false), d("ORA", absoluteY, c.ora, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("ORA", absoluteX, c.ora, 3, 4, true), d("ASL", absoluteX, c.asl, 3, 7, false), u(absoluteX, 3, 7),

		d("JSR", absolute, c.jsr, 3, 6, false), d("AND", indirectX, c.and, 2, 6, false), u(implied, 1, 2), u(indirectX, 2, 8),
		d("BIT", zeropage, c.bit, 2, 3, false), d("AND", zeropage, c.and, 2, 3, false), d("ROL", zeropage, c.rol, 2, 5, false), u(zeropage, 2, 5),
		d("PLP", implied, c.plp, 1, 4, false), d("AND", immediate, c.and, 2, 2, false), d("ROL", accumulator, c.rol, 1, 2, false), u(implied, 1, 2),
		d("BIT", absolute, c.bit, 3, 4, false), d("AND", absolute, c.and, 3, 4, false), d("ROL", absolute, c.rol, 3, 6, false), u(absolute, 3, 6),
		d("BMI", relative, c.bmi, 2, 2, false), d("AND", indirectY, c.and, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("AND", zeropageX, c.and, 2, 4, false), d("ROL", zeropageX, c.rol, 2, 6, false), u(zeropageX, 2, 6),
		d("SEC", implied, c.sec, 1, 2, false), d("AND", absoluteY, c.and, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("AND", absoluteX, c.and, 3, 4, true), d("ROL", absoluteX, c.rol, 3, 7, false), u(absoluteX, 3, 7),

		d("RTI", implied, c.rti, 1, 6, false), d("EOR", indirectX, c.eor, 2, 6, false), u(implied, 1, 2), u(indirectX, 2, 8),
		u(zeropage, 2, 3), d("EOR", zeropage, c.eor, 2, 3, false), d("LSR", zeropage, c.lsr, 2, 5, false), u(zeropage, 2, 5),
		d("PHA", implied, c.pha, 1, 3, false), d("EOR", immediate, c.eor, 2, 2, false), d("LSR", accumulator, c.lsr, 1, 2, false), u(implied, 1, 2),
		d("JMP", absolute, c.jmp, 3, 3, false), d("EOR", absolute, c.eor, 3, 4, false), d("LSR", absolute, c.lsr, 3, 6, false), u(absolute, 3, 6),
		d("BVC", relative, c.bvc, 2, 2, false), d("EOR", indirectY, c.eor, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("EOR", zeropageX, c.eor, 2, 4, false), d("LSR", zeropageX, c.lsr, 2, 6, false), u(zeropageX, 2, 6),
		d("CLI", implied, c.cli, 1, 2, false), d("EOR", absoluteY, c.eor, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("EOR", absoluteX, c.eor, 3, 4, true), d("LSR", absoluteX, c.lsr, 3, 7, false), u(absoluteX, 3, 7),

		d("RTS", implied, c.rts, 1, 6, false), d("ADC", indirectX, c.adc, 2, 6, false), u(implied, 1, 2), u(indirectX, 2, 8),
		u(zeropage, 2, 3), d("ADC", zeropage, c.adc, 2, 3, false), d("ROR", zeropage, c.ror, 2, 5, false), u(zeropage, 2, 5),
		d("PLA", implied, c.pla, 1, 4, false), d("ADC", immediate, c.adc, 2, 2, false), d("ROR", accumulator, c.ror, 1, 2, false), u(implied, 1, 2),
		d("JMP", indirect, c.jmp, 3, 5, false), d("ADC", absolute, c.adc, 3, 4, false), d("ROR", absolute, c.ror, 3, 6, false), u(absolute, 3, 6),
		d("BVS", relative, c.bvs, 2, 2, false), d("ADC", indirectY, c.adc, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("ADC", zeropageX, c.adc, 2, 4, false), d("ROR", zeropageX, c.ror, 2, 6, false), u(zeropageX, 2, 6),
		d("SEI", implied, c.sei, 1, 2, false), d("ADC", absoluteY, c.adc, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("ADC", absoluteX, c.adc, 3, 4, true), d("ROR", absoluteX, c.ror, 3, 7, false), u(absoluteX, 3, 7),

		u(indirectX, 2, 6), d("STA", indirectX, c.sta, 2, 6, false), u(immediate, 2, 2), u(indirectX, 2, 6),
		d("STY", zeropage, c.sty, 2, 3, false), d("STA", zeropage, c.sta, 2, 3, false), d("STX", zeropage, c.stx, 2, 3, false), u(zeropage, 2, 3),
		d("DEY", implied, c.dey, 1, 2, false), u(immediate, 2, 2), d("TXA", implied, c.txa, 1, 2, false), u(immediate, 2, 2),
		d("STY", absolute, c.sty, 3, 4, false), d("STA", absolute, c.sta, 3, 4, false), d("STX", absolute, c.stx, 3, 4, false), u(absolute, 3, 4),
		d("BCC", relative, c.bcc, 2, 2, false), d("STA", indirectY, c.sta, 2, 6, false), u(implied, 1, 2), u(indirectY, 2, 6),
		d("STY", zeropageX, c.sty, 2, 4, false), d("STA", zeropageX, c.sta, 2, 4, false), d("STX", zeropageY, c.stx, 2, 4, false), u(zeropageY, 2, 4),
		d("TYA", implied, c.tya, 1, 2, false), d("STA", absoluteY, c.sta, 3, 5, false), d("TXS", implied, c.txs, 1, 2, false), u(absoluteY, 3, 5),
		u(absoluteX, 3, 5), d("STA", absoluteX, c.sta, 3, 5, false), u(absoluteY, 3, 5), u(absoluteY, 3, 5),

		d("LDY", immediate, c.ldy, 2, 2, false), d("LDA", indirectX, c.lda, 2, 6, false), d("LDX", immediate, c.ldx, 2, 2, false), u(indirectX, 2, 6),
		d("LDY", zeropage, c.ldy, 2, 3, false), d("LDA", zeropage, c.lda, 2, 3, false), d("LDX", zeropage, c.ldx, 2, 3, false), u(zeropage, 2, 3),
		d("TAY", implied, c.tay, 1, 2, false), d("LDA", immediate, c.lda, 2, 2, false), d("TAX", implied, c.tax, 1, 2, false), u(immediate, 2, 2),
		d("LDY", absolute, c.ldy, 3, 4, false), d("LDA", absolute, c.lda, 3, 4, false), d("LDX", absolute, c.ldx, 3, 4, false), u(absolute, 3, 4),
		d("BCS", relative, c.bcs, 2, 2, false), d("LDA", indirectY, c.lda, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 5),
		d("LDY", zeropageX, c.ldy, 2, 4, false), d("LDA", zeropageX, c.lda, 2, 4, false), d("LDX", zeropageY, c.ldx, 2, 4, false), u(zeropageY, 2, 4),
		d("CLV", implied, c.clv, 1, 2, false), d("LDA", absoluteY, c.lda, 3, 4, true), d("TSX", implied, c.tsx, 1, 2, false), u(absoluteY, 3, 4),
		d("LDY", absoluteX, c.ldy, 3, 4, true), d("LDA", absoluteX, c.lda, 3, 4, true), d("LDX", absoluteY, c.ldx, 3, 4, true), u(absoluteY, 3, 4),

		d("CPY", immediate, c.cpy, 2, 2, false), d("CMP", indirectX, c.cmp, 2, 6, false), u(immediate, 2, 2), u(indirectX, 2, 8),
		d("CPY", zeropage, c.cpy, 2, 3, false), d("CMP", zeropage, c.cmp, 2, 3, false), d("DEC", zeropage, c.dec, 2, 5, false), u(zeropage, 2, 5),
		d("INY", implied, c.iny, 1, 2, false), d("CMP", immediate, c.cmp, 2, 2, false), d("DEX", implied, c.dex, 1, 2, false), u(immediate, 2, 2),
		d("CPY", absolute, c.cpy, 3, 4, false), d("CMP", absolute, c.cmp, 3, 4, false), d("DEC", absolute, c.dec, 3, 6, false), u(absolute, 3, 6),
		d("BNE", relative, c.bne, 2, 2, false), d("CMP", indirectY, c.cmp, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("CMP", zeropageX, c.cmp, 2, 4, false), d("DEC", zeropageX, c.dec, 2, 6, false), u(zeropageX, 2, 6),
		d("CLD", implied, c.cld, 1, 2, false), d("CMP", absoluteY, c.cmp, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("CMP", absoluteX, c.cmp, 3, 4, true), d("DEC", absoluteX, c.dec, 3, 7, false), u(absoluteX, 3, 7),

		d("CPX", immediate, c.cpx, 2, 2, false), d("SBC", indirectX, c.sbc, 2, 6, false), u(immediate, 2, 2), u(indirectX, 2, 8),
		d("CPX", zeropage, c.cpx, 2, 3, false), d("SBC", zeropage, c.sbc, 2, 3, false), d("INC", zeropage, c.inc, 2, 5, false), u(zeropage, 2, 5),
		d("INX", implied, c.inx, 1, 2, false), d("SBC", immediate, c.sbc, 2, 2, false), d("NOP", implied, c.nop, 1, 2, false), u(immediate, 2, 2),
		d("CPX", absolute, c.cpx, 3, 4, false), d("SBC", absolute, c.sbc, 3, 4, false), d("INC", absolute, c.inc, 3, 6, false), u(absolute, 3, 6),
		d("BEQ", relative, c.beq, 2, 2, false), d("SBC", indirectY, c.sbc, 2, 5, true), u(implied, 1, 2), u(indirectY, 2, 8),
		u(zeropageX, 2, 4), d("SBC", zeropageX, c.sbc, 2, 4, false), d("INC", zeropageX, c.inc, 2, 6, false), u(zeropageX, 2, 6),
		d("SED", implied, c.sed, 1, 2, false), d("SBC", absoluteY, c.sbc, 3, 4, true), u(implied, 1, 2), u(absoluteY, 3, 7),
		u(absoluteX, 3, 4), d("SBC", absoluteX, c.sbc, 3, 4, true), d("INC", absoluteX, c.inc, 3, 7, false), u(absoluteX, 3, 7),
	}
}
