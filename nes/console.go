package nes

import (
	"fmt"
	"image"

	"github.com/golang/glog"
)

type dmaState int

const (
	dmaNotRunning dmaState = iota
	dmaWaiting
	dmaRunning
)

// dmaEngine models the OAM-DMA state machine triggered by a CPU write
// to $4014 (spec.md §4.5): one alignment cycle, then 256 read/write
// cycle pairs copying a page into PPU OAM. Real hardware takes 513 or
// 514 cycles depending on CPU cycle parity at the moment of the write;
// this engine fixes it at 513 (see DESIGN.md).
type dmaEngine struct {
	state   dmaState
	page    byte
	index   int
	latch   byte
	reading bool
}

// Console wires the CPU, PPU, APU, cartridge and controller together.
// It decodes CPU addresses itself rather than through a separate bus
// object rebuilt on every step; PPU addresses go through a ppuBus that
// NewConsole constructs once (spec.md §9).
type Console struct {
	CPU        *CPU
	PPU        *PPU
	APU        *APU
	Controller *Controller

	wram      *RAM
	cartridge *Cartridge
	mapper    Mapper

	dma dmaEngine

	lastFrame    uint64
	currentFrame uint64
	buffer       *image.RGBA
}

// NewConsole builds a runnable console from a parsed cartridge.
func NewConsole(cartridge *Cartridge) (*Console, error) {
	mapper, err := cartridge.NewMapper()
	if err != nil {
		return nil, fmt.Errorf("nes: building console: %w", err)
	}
	c := &Console{
		Controller: NewController(),
		wram:       NewRAM(),
		cartridge:  cartridge,
		mapper:     mapper,
		APU:        NewAPU(),
	}
	c.PPU = NewPPU(newPPUBus(NewRAM(), mapper, cartridge.Mirroring()))
	c.CPU = NewCPU(c)
	c.CPU.OnUnknownOpcode = func(opcode byte, pc uint16) {
		glog.V(2).Infof("undocumented opcode 0x%02x at pc=0x%04x, executing as NOP\n", opcode, pc)
	}
	return c, nil
}

// Reset restores power-on state.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
	c.currentFrame = 0
	c.lastFrame = 0
}

// Read implements Bus for the CPU.
// CPU memory map:
//
//	0x0000-0x1FFF  WRAM, mirrored every 0x0800
//	0x2000-0x3FFF  PPU registers, mirrored every 8
//	0x4000-0x4013,0x4015,0x4017  APU/IO, unimplemented beyond controllers
//	0x4014         OAMDMA (write-only, see Write)
//	0x4016         controller 1
//	0x4020-0x7FFF  expansion/cartridge RAM, unimplemented
//	0x8000-0xFFFF  cartridge PRG-ROM via the mapper
func (c *Console) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return c.wram.read(address % 0x0800)
	case address < 0x4000:
		return c.PPU.ReadRegister(0x2000 + (address-0x2000)%8)
	case address == 0x4016:
		return c.Controller.read()
	case address == 0x4017:
		return 0
	case address < 0x4020:
		glog.V(2).Infof("unimplemented CPU read: address=0x%04x\n", address)
		return 0
	case address >= 0x8000:
		return c.mapper.ReadPRG(address)
	default:
		glog.V(2).Infof("open-bus CPU read: address=0x%04x\n", address)
		return 0
	}
}

// Write implements Bus for the CPU.
func (c *Console) Write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		c.wram.write(address%0x0800, data)
	case address < 0x4000:
		c.PPU.WriteRegister(0x2000+(address-0x2000)%8, data)
	case address == 0x4014:
		c.dma.state = dmaWaiting
		c.dma.page = data
		c.dma.index = 0
		c.dma.reading = true
	case address == 0x4016:
		c.Controller.write(data)
	case address < 0x4020:
		glog.V(2).Infof("unimplemented CPU write: address=0x%04x, data=0x%02x\n", address, data)
	case address >= 0x8000:
		c.mapper.WritePRG(address, data)
	default:
		glog.V(2).Infof("open-bus CPU write: address=0x%04x, data=0x%02x\n", address, data)
	}
}

// Peek is Read without side effects (no vblank-clear, no PPUDATA
// buffer swap, no controller shift), for the debug console.
func (c *Console) Peek(address uint16) byte {
	switch {
	case address < 0x2000:
		return c.wram.read(address % 0x0800)
	case address < 0x4000:
		return c.PPU.PeekRegister(0x2000 + (address-0x2000)%8)
	case address == 0x4016:
		return c.Controller.peek()
	case address >= 0x8000:
		return c.mapper.ReadPRG(address)
	default:
		return 0
	}
}

// stepDMA advances the OAM-DMA engine by one CPU cycle.
func (c *Console) stepDMA() int {
	switch c.dma.state {
	case dmaWaiting:
		c.dma.state = dmaRunning
	case dmaRunning:
		if c.dma.reading {
			c.dma.latch = c.Read(uint16(c.dma.page)<<8 | uint16(c.dma.index))
			c.dma.reading = false
		} else {
			c.PPU.WriteOAMByte(c.dma.latch)
			c.dma.index++
			c.dma.reading = true
			if c.dma.index == 256 {
				c.dma.state = dmaNotRunning
			}
		}
	}
	return 1
}

// Step runs one unit of work — either an OAM-DMA cycle or a full CPU
// instruction — then advances the PPU 3 dots and the APU 1 tick per
// CPU cycle consumed, dispatching NMI the instant the PPU asserts it
// (spec.md §4.1).
func (c *Console) Step() (int, error) {
	var cycles int
	if c.dma.state != dmaNotRunning {
		cycles = c.stepDMA()
	} else {
		var err error
		cycles, err = c.CPU.Step()
		if err != nil {
			return cycles, err
		}
	}
	for i := 0; i < cycles; i++ {
		c.APU.Step()
	}
	for i := 0; i < cycles*3; i++ {
		if c.PPU.Step() {
			c.CPU.TriggerNMI()
		}
		if ok, f := c.PPU.Frame(); ok {
			c.currentFrame++
			c.buffer = f
		}
	}
	return cycles, nil
}

// StepFrame runs Step until exactly one new frame has been produced,
// the granularity a headless driver or test wants (spec.md §6).
func (c *Console) StepFrame() (*image.RGBA, error) {
	start := c.currentFrame
	for c.currentFrame == start {
		if _, err := c.Step(); err != nil {
			return nil, err
		}
	}
	return c.buffer, nil
}

// Frame returns the most recently completed picture and whether it is
// new since the last call.
func (c *Console) Frame() (*image.RGBA, bool) {
	if c.lastFrame < c.currentFrame {
		c.lastFrame = c.currentFrame
		return c.buffer, true
	}
	return c.buffer, false
}

// SetAudioOut wires the APU's sample stream to the host's audio output.
func (c *Console) SetAudioOut(out chan float32) { c.APU.SetAudioOut(out) }

// PressButton, ReleaseButton and UpdateInput forward to the controller
// (spec.md §4.6).
func (c *Console) PressButton(b Button)   { c.Controller.PressButton(b) }
func (c *Console) ReleaseButton(b Button) { c.Controller.ReleaseButton(b) }
func (c *Console) UpdateInput(data byte)  { c.Controller.UpdateInput(data) }

// SetButtons replaces the whole button vector at once, the shape the
// host shell's per-frame keyboard poll naturally produces.
func (c *Console) SetButtons(buttons [8]bool) { c.Controller.Set(buttons) }
