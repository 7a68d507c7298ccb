package nes

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// DebugConsole wraps a Console with a line-oriented stdin REPL, enabled
// by the host shell's -debug flag.
// commands:
//
//	s [N][s|d]: execute N steps (s: N seconds worth of cycles, d: N
//	            steps with a trace line printed after each)
//	p [c|p|ca|ct|wr]: print console/cpu/ppu/cartridge/controller/wram state
//	br 0xNNNN: set a breakpoint on PC
//	r: reset
//	q: quit
type DebugConsole struct {
	*Console
	cycles      uint64
	breakpoints []uint16
}

// NewDebugConsole wraps console with the stdin REPL.
func NewDebugConsole(console *Console) *DebugConsole {
	return &DebugConsole{Console: console}
}

func (c *DebugConsole) printStack() {
	for i := 0; i < 256; i++ {
		idx := uint16(0x100 | i)
		fmt.Printf("0x%04x: 0x%02x, ", idx, c.Peek(idx))
		if i%16 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
}

func (c *DebugConsole) basePrint() {
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Executed cycles: %d\n", c.cycles)
	fmt.Printf("Rendered frame: %d\n", c.currentFrame)
	fmt.Println("Last: " + c.CPU.LastExecution())
	fmt.Printf("CPU:  PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x, P=0x%02x\n",
		c.CPU.PC, c.CPU.A, c.CPU.X, c.CPU.Y, c.CPU.S, c.CPU.P.encode(false))
	fmt.Printf("PPU: cycle=%d, scanline=%d, v=0x%04x\n",
		c.PPU.cycle, c.PPU.scanline, c.PPU.v)
}

func (c *DebugConsole) printCommand(args []string) {
	if len(args) < 2 {
		c.basePrint()
		return
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Printf("%+v\n", *c.CPU)
	case "p", "ppu":
		fmt.Printf("%+v\n", *c.PPU)
	case "ca", "cartridge":
		fmt.Printf("%+v\n", *c.cartridge)
	case "ct", "controller":
		fmt.Printf("%+v\n", *c.Controller)
	case "wr", "wram":
		fmt.Printf("%+v\n", *c.wram)
	case "stack":
		c.printStack()
	}
}

func (c *DebugConsole) checkBreak() bool {
	for _, bp := range c.breakpoints {
		if bp == c.CPU.PC {
			fmt.Printf("Break at: 0x%04x\n", bp)
			return true
		}
	}
	return false
}

func (c *DebugConsole) step() (int, error) {
	cycles, err := c.Console.Step()
	c.cycles += uint64(cycles)
	return cycles, err
}

func (c *DebugConsole) stepCommand(args []string) (int, error) {
	if len(args) < 2 {
		return c.step()
	}
	re := regexp.MustCompile("^([0-9]+)")
	if !re.MatchString(args[1]) {
		return 0, nil
	}
	num, _ := strconv.Atoi(re.FindString(args[1]))
	unit := args[1][len(args[1])-1]
	cycles := 0
	switch unit {
	case 's':
		// N seconds of CPU time, approximated as CPUFrequency*N cycles.
		steps := CPUFrequency * num
		for cycles < steps {
			v, err := c.step()
			if err != nil {
				return cycles, err
			}
			cycles += v
			if c.checkBreak() {
				return cycles, nil
			}
		}
	case 'd':
		for i := 0; i < num; i++ {
			v, err := c.step()
			c.basePrint()
			if err != nil {
				return cycles, err
			}
			cycles += v
			if c.checkBreak() {
				return cycles, nil
			}
		}
	default:
		for i := 0; i < num; i++ {
			v, err := c.step()
			if err != nil {
				return cycles, err
			}
			cycles += v
			if c.checkBreak() {
				return cycles, nil
			}
		}
	}
	return cycles, nil
}

func (c *DebugConsole) breakPointCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: br 0xNNNN")
	}
	var addr int
	if _, err := fmt.Sscanf(args[1], "0x%x", &addr); err != nil {
		return fmt.Errorf("invalid breakpoint address %q: %w", args[1], err)
	}
	c.breakpoints = append(c.breakpoints, uint16(addr))
	return nil
}

// RunREPL blocks reading one command from stdin at a time until 'q'.
func (c *DebugConsole) RunREPL() error {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("debug> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		args := strings.Split(strings.TrimSpace(line), " ")
		switch args[0] {
		case "p", "print":
			c.printCommand(args)
		case "s", "step":
			cycles, err := c.stepCommand(args)
			if err != nil {
				return err
			}
			c.basePrint()
			fmt.Printf("Executed %d CPU cycles, %d PPU dots.\n", cycles, 3*cycles)
		case "br", "breakpoint":
			if err := c.breakPointCommand(args); err != nil {
				fmt.Println(err)
			}
		case "r", "reset":
			c.Reset()
		case "q", "quit":
			return nil
		case "":
		default:
			fmt.Printf("unknown command %q\n", args[0])
		}
	}
}
